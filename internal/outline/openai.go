package outline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// OpenAIGenerator produces outlines via an OpenAI-compatible
// chat/completions endpoint.
type OpenAIGenerator struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	client    *http.Client
}

// NewOpenAIGenerator creates an OpenAI-backed generator. The API key comes
// from the OPENAI_API_KEY environment variable. The HTTP client carries no
// timeout: collaborator calls are allowed to run as long as they need.
func NewOpenAIGenerator(model string, maxTokens int) *OpenAIGenerator {
	return &OpenAIGenerator{
		apiKey:    os.Getenv("OPENAI_API_KEY"),
		baseURL:   "https://api.openai.com/v1",
		model:     model,
		maxTokens: maxTokens,
		client:    &http.Client{},
	}
}

// Generate sends the transcript to the chat/completions endpoint and parses
// the returned outline.
func (g *OpenAIGenerator) Generate(ctx context.Context, transcript string) (*types.SlideContent, error) {
	body := map[string]any{
		"model":      g.model,
		"max_tokens": g.maxTokens,
		"messages": []map[string]any{
			{"role": "user", "content": buildPrompt(transcript)},
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(g.baseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}

	return Parse(cc.Choices[0].Message.Content)
}

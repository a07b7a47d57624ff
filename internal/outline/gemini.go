package outline

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// GeminiGenerator produces outlines via the Gemini API.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator. The API key comes
// from the GEMINI_API_KEY environment variable.
func NewGeminiGenerator(model string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
	}
}

// Generate sends the transcript to Gemini and parses the returned outline.
func (g *GeminiGenerator) Generate(ctx context.Context, transcript string) (*types.SlideContent, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(transcript)), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return Parse(text)
}

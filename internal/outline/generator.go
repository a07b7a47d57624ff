package outline

import (
	"context"
	"fmt"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// Generator turns a transcript into a structured slide outline.
type Generator interface {
	Generate(ctx context.Context, transcript string) (*types.SlideContent, error)
}

// New selects a generator implementation by provider name.
func New(provider, model string, maxTokens int) (Generator, error) {
	switch provider {
	case "gemini":
		return NewGeminiGenerator(model), nil
	case "openai":
		return NewOpenAIGenerator(model, maxTokens), nil
	default:
		return nil, fmt.Errorf("unknown outline provider %q", provider)
	}
}

const outlinePrompt = `Convert the following transcript into a well-structured PowerPoint presentation outline.
Create 5-8 slides with clear titles and bullet points.
Format as JSON with this structure:
{
    "title": "Presentation Title",
    "slides": [
        {
            "title": "Slide Title",
            "content": ["Bullet point 1", "Bullet point 2", "Bullet point 3"]
        }
    ]
}
Return ONLY the JSON object, no commentary.

Transcript: %s`

// buildPrompt embeds the transcript into the outline prompt.
func buildPrompt(transcript string) string {
	return fmt.Sprintf(outlinePrompt, transcript)
}

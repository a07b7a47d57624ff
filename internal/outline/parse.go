package outline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// Parse turns a raw LLM completion into a validated SlideContent. Markdown
// code fences around the payload are stripped; beyond that the JSON is taken
// as-is. A response that fails the schema is a hard failure, never repaired.
func Parse(raw string) (*types.SlideContent, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty outline response")
	}

	if err := validateAgainstSchema([]byte(cleaned)); err != nil {
		return nil, err
	}

	var content types.SlideContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, fmt.Errorf("parse outline JSON: %w", err)
	}
	return &content, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if the model
// wrapped its answer in one. The payload itself is not modified.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

package outline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildOutlineSchema returns the JSON-Schema the LLM response must satisfy:
// a title plus at least one slide, each slide a title plus string bullets.
func buildOutlineSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string", "minLength": 1},
			"slides": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"content": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []string{"title", "content"},
				},
			},
		},
		"required": []string{"title", "slides"},
	}
}

// validateAgainstSchema validates data against the outline schema.
func validateAgainstSchema(data []byte) error {
	b, err := json.Marshal(buildOutlineSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("outline.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("outline.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal outline: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("outline does not match schema: %w", err)
	}
	return nil
}

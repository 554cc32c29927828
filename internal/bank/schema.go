package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema defines the JSON schema the question catalog must satisfy.
// Range checking of correct_answer against the options length cannot be
// expressed here and is done per entry in Load.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         map[string]any{"type": "string", "minLength": 1},
					"topic":      map[string]any{"type": "string", "minLength": 1},
					"difficulty": map[string]any{"type": "string", "minLength": 1},
					"question":   map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"correct_answer": map[string]any{"type": "integer", "minimum": 1},
					"explanation":    map[string]any{"type": "string"},
					"scenario":       map[string]any{"type": "string"},
					"company_tags": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"real_world_context": map[string]any{"type": "string"},
				},
				"required": []any{
					"id", "topic", "difficulty", "question",
					"options", "correct_answer", "explanation",
				},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// validateCatalog checks raw catalog JSON against catalogSchema.
func validateCatalog(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", catalogSchema); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://catalog.json")
	})
	if compileSchemaError != nil {
		return fmt.Errorf("compile catalog schema: %w", compileSchemaError)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

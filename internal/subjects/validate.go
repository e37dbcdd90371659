package subjects

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the structural contract every subject configuration
// document must satisfy before decoding. Required fields mirror what the
// pipeline reads unconditionally; everything else is optional data.
var documentSchema = map[string]any{
	"type": "object",
	"required": []any{
		"subject", "subject_name", "response_types",
		"theoretical_foundation", "conversation_context",
	},
	"properties": map[string]any{
		"subject":      map[string]any{"type": "string", "minLength": 1},
		"subject_name": map[string]any{"type": "string", "minLength": 1},
		"response_types": map[string]any{
			"type":          "object",
			"required":      []any{"DEFAULT"},
			"minProperties": 1,
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"name", "patterns"},
				"properties": map[string]any{
					"name": map[string]any{"type": "string", "minLength": 1},
					"patterns": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"sample_prompts": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"ai_tutor_prompt":   map[string]any{"type": "string"},
					"prompt_strategy":   map[string]any{"type": "string"},
					"theoretical_basis": map[string]any{"type": "string"},
				},
				// Every type needs something to say: at least one sample
				// prompt, or a strategy line.
				"anyOf": []any{
					map[string]any{
						"properties": map[string]any{
							"sample_prompts": map[string]any{"type": "array", "minItems": 1},
						},
						"required": []any{"sample_prompts"},
					},
					map[string]any{
						"properties": map[string]any{
							"prompt_strategy": map[string]any{"type": "string", "minLength": 1},
						},
						"required": []any{"prompt_strategy"},
					},
					map[string]any{
						"properties": map[string]any{
							"ai_tutor_prompt": map[string]any{"type": "string", "minLength": 1},
						},
						"required": []any{"ai_tutor_prompt"},
					},
				},
			},
		},
		"theoretical_foundation": map[string]any{"type": "object"},
		"conversation_context":   map[string]any{"type": "object"},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledDocumentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler wants a parsed JSON value; round-trip the map
		// through encoding/json to normalize it.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			schemaErr = err
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemaErr = err
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("subject-config.json", doc); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("subject-config.json")
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a raw configuration document against the schema.
func validateDocument(raw []byte) error {
	schema, err := compiledDocumentSchema()
	if err != nil {
		return fmt.Errorf("compile subject-config schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

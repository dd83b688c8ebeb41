package remote

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// progressPayloadSchema describes the shape of a progress pull. The
// payload is validated before it is allowed to overwrite local state;
// a malformed response degrades to "stay local" like any other remote
// failure.
var progressPayloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"categories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string", "minLength": 1},
					"title":    map[string]any{"type": "string"},
					"icon":     map[string]any{"type": "string"},
					"color":    map[string]any{"type": "string"},
					"progress": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"lessons": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"title":     map[string]any{"type": "string"},
								"completed": map[string]any{"type": "boolean"},
								"locked":    map[string]any{"type": "boolean"},
								"score":     map[string]any{"type": []any{"integer", "null"}},
							},
							"required": []any{"id"},
						},
					},
				},
				"required": []any{"id", "lessons"},
			},
		},
		"progress": map[string]any{
			"type": []any{"object", "null"},
			"properties": map[string]any{
				"totalLessonsCompleted": map[string]any{"type": "integer", "minimum": 0},
				"totalPoints":           map[string]any{"type": "integer", "minimum": 0},
				"streak":                map[string]any{"type": "integer", "minimum": 0},
				"lastStudyDate":         map[string]any{"type": []any{"string", "null"}},
			},
		},
	},
	"required": []any{"categories"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload validates a raw progress pull against the payload schema.
func validatePayload(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compileOnce.Do(func() {
		compiledSchema, compileErr = compilePayloadSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile payload schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compilePayloadSchema compiles the schema definition. The jsonschema
// library expects a parsed JSON value, so the definition is marshaled
// and re-parsed first.
func compilePayloadSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(progressPayloadSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://progress-payload.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

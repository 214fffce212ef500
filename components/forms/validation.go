package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/chatstack/botadmin/pkg/backend"
)

// FieldValidator checks form-field definitions before they are persisted.
type FieldValidator interface {
	Validate(field backend.FormField) error
}

// fieldSchemas maps each supported field type to the JSON schema its
// validation rules must satisfy.
var fieldSchemas = map[string]map[string]any{
	"text": {
		"type": "object",
		"properties": map[string]any{
			"min_length": map[string]any{"type": "integer", "minimum": 0},
			"max_length": map[string]any{"type": "integer", "minimum": 1},
			"pattern":    map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	},
	"number": {
		"type": "object",
		"properties": map[string]any{
			"min": map[string]any{"type": "number"},
			"max": map[string]any{"type": "number"},
		},
		"additionalProperties": false,
	},
	"email":    {"type": "object", "additionalProperties": false},
	"phone":    {"type": "object", "additionalProperties": false},
	"date":     {"type": "object", "additionalProperties": false},
	"textarea": {
		"type": "object",
		"properties": map[string]any{
			"max_length": map[string]any{"type": "integer", "minimum": 1},
		},
		"additionalProperties": false,
	},
	"select": {
		"type": "object",
		"additionalProperties": false,
	},
}

// JSONSchemaValidator compiles per-type schemas lazily and validates field
// definitions against them.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures the field definition is well formed: a known type, a
// non-empty name, options present for select fields, and validation rules
// matching the type's schema.
func (v *JSONSchemaValidator) Validate(field backend.FormField) error {
	if field.Name == "" {
		return fmt.Errorf("forms: field name is required")
	}
	if _, ok := fieldSchemas[field.Type]; !ok {
		return fmt.Errorf("forms: unknown field type %q", field.Type)
	}
	if field.Type == "select" && len(field.Options) == 0 {
		return fmt.Errorf("forms: select field %s needs at least one option", field.Name)
	}
	if len(field.Validation) == 0 {
		return nil
	}
	schema, err := v.schemaFor(field.Type)
	if err != nil {
		return err
	}
	data, err := json.Marshal(field.Validation)
	if err != nil {
		return fmt.Errorf("forms: marshal validation for %s: %w", field.Name, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("forms: normalize validation for %s: %w", field.Name, err)
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("forms: validation rules for %s rejected: %w", field.Name, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(fieldType string) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[fieldType]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(fieldSchemas[fieldType])
	if err != nil {
		return nil, fmt.Errorf("forms: marshal schema %s: %w", fieldType, err)
	}
	compiler := jsonschema.NewCompiler()
	name := fieldType + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("forms: load schema %s: %w", fieldType, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("forms: compile schema %s: %w", fieldType, err)
	}
	v.mu.Lock()
	v.compiled[fieldType] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopFieldValidator struct{}

func (noopFieldValidator) Validate(backend.FormField) error { return nil }

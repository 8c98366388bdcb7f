package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// JSONSchema returns the JSON Schema for the Level type.
func (Level) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Severity: 0 or off, 1 or warning, 2 or error",
		OneOf: []*jsonschema.Schema{
			{Type: "string", Enum: []any{"off", "warning", "error"}},
			{Type: "integer", Minimum: json.Number("0"), Maximum: json.Number("2")},
		},
	}
}

// JSONSchema returns the JSON Schema for the Applicability type.
func (Applicability) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Enum:        []any{"always", "never"},
		Description: "Whether the rule condition must hold or must not hold",
	}
}

// JSONSchema returns the JSON Schema for the CaseMode type.
func (CaseMode) JSONSchema() *jsonschema.Schema {
	enum := make([]any, 0, len(CaseModes))
	for _, c := range CaseModes {
		enum = append(enum, string(c))
	}

	return &jsonschema.Schema{
		Type: "string",
		Enum: enum,
	}
}

// JSONSchema returns the JSON Schema for the Limit type.
func (Limit) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Non-negative length or \"unbounded\"",
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: json.Number("0")},
			{Type: "string", Pattern: "^[0-9]+$"},
			{Type: "string", Enum: []any{"unbounded", "infinity", "inf"}},
		},
		Examples: []any{50, "unbounded"},
	}
}

// JSONSchema returns the JSON Schema for the Align type.
func (Align) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "string",
		Enum: []any{
			string(AlignTop),
			string(AlignBottom),
			string(AlignLeft),
			string(AlignCenter),
			string(AlignRight),
		},
	}
}

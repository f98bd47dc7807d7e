package jsonschema

import (
	"encoding/json"
)

// Schema represents the subset of JSON Schema used for defining extraction targets.
// It is typically sent to the backend as the parameters of a function definition
// and reused locally to validate what came back.
type Schema struct {
	//  Type Specifies the data type (e.g., "object", "array", "string", "integer")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties: Controls whether properties not defined in Properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// MaxLength bounds string values, counted in characters
	MaxLength *int `json:"maxLength,omitempty"`
	// MaxItems bounds array lengths
	MaxItems *int `json:"maxItems,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
}

// String returns the compact JSON form of the schema.
func (s *Schema) String() string {
	return s.JSONString(false)
}

// JSONString serialises the schema. When indent is true the output uses
// two-space indentation. Marshalling failures are reported inline as a JSON
// error object so the result is always printable.
func (s *Schema) JSONString(indent bool) string {
	var (
		encoded []byte
		err     error
	)
	if indent {
		encoded, err = json.MarshalIndent(s, "", "  ")
	} else {
		encoded, err = json.Marshal(s)
	}
	if err != nil {
		return "{\"error\": \"failed to marshal schema: " + err.Error() + "\"}"
	}
	return string(encoded)
}

// Int returns a pointer to n, for populating MaxLength and MaxItems.
func Int(n int) *int {
	return &n
}

package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrNilSchema is returned by Compile when no schema is given.
var ErrNilSchema = errors.New("jsonschema: nil schema")

const resourceName = "schema.json"

// Validator checks documents against a compiled Schema. It is safe for
// concurrent use.
type Validator struct {
	compiled *sjsonschema.Schema
}

// Compile prepares s for validation.
func Compile(s *Schema) (*Validator, error) {
	if s == nil {
		return nil, ErrNilSchema
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}

	compiler := sjsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Validator{compiled: compiled}, nil
}

// Validate checks doc against the schema. doc may be any JSON-marshalable
// value; it is normalised through encoding/json before validation so typed
// structs and decoded maps are treated the same way.
func (v *Validator) Validate(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to decode document for validation: %w", err)
	}
	if err := v.compiled.Validate(decoded); err != nil {
		return fmt.Errorf("document does not match schema: %w", err)
	}
	return nil
}

// Validate is a convenience that compiles s and validates doc in one step.
func Validate(s *Schema, doc any) error {
	v, err := Compile(s)
	if err != nil {
		return err
	}
	return v.Validate(doc)
}

package jsonschema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func sampleSchema() *Schema {
	return &Schema{
		Type:     "object",
		Required: []string{"title"},
		Properties: map[string]*Schema{
			"title": {Type: "string", MaxLength: Int(5)},
			"year":  {Type: "integer"},
			"tags": {
				Type:     "array",
				MaxItems: Int(2),
				Items:    &Schema{Type: "string", MaxLength: Int(3)},
			},
		},
	}
}

func TestJSONStringWithIndentation(t *testing.T) {
	s := &Schema{Type: "string", MaxLength: Int(10)}

	compact := s.String()
	if compact != `{"type":"string","maxLength":10}` {
		t.Errorf("unexpected compact form: %s", compact)
	}

	indented := s.JSONString(true)
	if !strings.Contains(indented, "\n  \"maxLength\": 10") {
		t.Errorf("expected indented output, got %s", indented)
	}
}

func TestSchemaOmitsUnsetLimits(t *testing.T) {
	raw, err := json.Marshal(&Schema{Type: "integer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"type":"integer"}` {
		t.Errorf("expected no limits in output, got %s", raw)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     any
		wantErr bool
	}{
		{
			name: "conforming document",
			doc:  map[string]any{"title": "abc", "year": 1999, "tags": []string{"a", "bcd"}},
		},
		{
			name:    "string too long",
			doc:     map[string]any{"title": "abcdef"},
			wantErr: true,
		},
		{
			name:    "too many items",
			doc:     map[string]any{"title": "a", "tags": []string{"a", "b", "c"}},
			wantErr: true,
		},
		{
			name:    "item too long",
			doc:     map[string]any{"title": "a", "tags": []string{"abcd"}},
			wantErr: true,
		},
		{
			name:    "missing required field",
			doc:     map[string]any{"year": 2000},
			wantErr: true,
		},
		{
			name: "typed struct",
			doc: struct {
				Title string `json:"title"`
				Year  int    `json:"year"`
			}{Title: "ok", Year: 3},
		},
	}

	v, err := Compile(sampleSchema())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCompileNilSchema(t *testing.T) {
	_, err := Compile(nil)
	if !errors.Is(err, ErrNilSchema) {
		t.Errorf("expected ErrNilSchema, got %v", err)
	}
}

func TestValidateConvenience(t *testing.T) {
	if err := Validate(sampleSchema(), map[string]any{"title": "x"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate(sampleSchema(), map[string]any{"title": 42}); err == nil {
		t.Error("expected type mismatch to fail validation")
	}
}

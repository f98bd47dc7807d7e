package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/llmextract/internal/jsonschema"
)

// FieldKind identifies how a field is read from the decoded JSON object.
type FieldKind int

const (
	// KindText is a JSON string, trimmed and clipped to MaxLength.
	KindText FieldKind = iota + 1
	// KindInteger is a JSON number, truncated toward zero.
	KindInteger
	// KindTextList is a JSON array of strings, clipped to MaxItems elements of
	// at most MaxLength each.
	KindTextList
)

// String returns the lowercase name of the kind.
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindTextList:
		return "list-of-text"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// FieldSpec declares one field of a target record. Zero MaxLength or MaxItems
// means unbounded.
type FieldSpec struct {
	Name        string
	Kind        FieldKind
	Required    bool
	MaxLength   int
	MaxItems    int
	Description string
}

// Text declares a text field.
func Text(name string, maxLength int) FieldSpec {
	return FieldSpec{Name: name, Kind: KindText, Required: true, MaxLength: maxLength}
}

// Integer declares an integer field.
func Integer(name string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindInteger, Required: true}
}

// TextList declares a list-of-text field.
func TextList(name string, maxItems, maxLength int) FieldSpec {
	return FieldSpec{Name: name, Kind: KindTextList, Required: true, MaxItems: maxItems, MaxLength: maxLength}
}

// Optional returns a copy of f with Required cleared.
func (f FieldSpec) Optional() FieldSpec {
	f.Required = false
	return f
}

// Describe returns a copy of f carrying a human-readable description, which
// is forwarded to the backend in the generated JSON Schema.
func (f FieldSpec) Describe(description string) FieldSpec {
	f.Description = description
	return f
}

var (
	// ErrInvalidDescription is wrapped by every NewDescription validation failure.
	ErrInvalidDescription = errors.New("invalid schema description")
)

// Description is an immutable, ordered set of FieldSpecs describing one
// target record shape. Build it once with NewDescription or MustDescription
// and share it freely between goroutines.
type Description struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// NewDescription validates fields and returns a Description holding a private
// copy of them.
func NewDescription(name string, fields ...FieldSpec) (*Description, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidDescription)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s has no fields", ErrInvalidDescription, name)
	}

	d := &Description{
		name:   name,
		fields: make([]FieldSpec, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: %s field %d has no name", ErrInvalidDescription, name, i)
		}
		if _, dup := d.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s declares %q twice", ErrInvalidDescription, name, f.Name)
		}
		switch f.Kind {
		case KindText, KindInteger, KindTextList:
		default:
			return nil, fmt.Errorf("%w: %s.%s has unknown kind %s", ErrInvalidDescription, name, f.Name, f.Kind)
		}
		if f.MaxLength < 0 || f.MaxItems < 0 {
			return nil, fmt.Errorf("%w: %s.%s has a negative limit", ErrInvalidDescription, name, f.Name)
		}
		d.fields[i] = f
		d.index[f.Name] = i
	}
	return d, nil
}

// MustDescription is like NewDescription but panics on invalid input. It is
// intended for package-level Description values.
func MustDescription(name string, fields ...FieldSpec) *Description {
	d, err := NewDescription(name, fields...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the record name, e.g. "movie_details".
func (d *Description) Name() string {
	return d.name
}

// Fields returns a copy of the field specs in declaration order.
func (d *Description) Fields() []FieldSpec {
	out := make([]FieldSpec, len(d.fields))
	copy(out, d.fields)
	return out
}

// Len returns the number of fields.
func (d *Description) Len() int {
	return len(d.fields)
}

// Field looks up a field spec by name.
func (d *Description) Field(name string) (FieldSpec, bool) {
	i, ok := d.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return d.fields[i], true
}

// JSONSchema renders the description as a JSON Schema object suitable for a
// function definition's parameters.
func (d *Description) JSONSchema() *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           make(map[string]*jsonschema.Schema, len(d.fields)),
		AdditionalProperties: false,
	}
	for _, f := range d.fields {
		var prop *jsonschema.Schema
		switch f.Kind {
		case KindText:
			prop = &jsonschema.Schema{Type: "string", MaxLength: limit(f.MaxLength)}
		case KindInteger:
			prop = &jsonschema.Schema{Type: "integer"}
		case KindTextList:
			prop = &jsonschema.Schema{
				Type:     "array",
				MaxItems: limit(f.MaxItems),
				Items:    &jsonschema.Schema{Type: "string", MaxLength: limit(f.MaxLength)},
			}
		}
		prop.Description = f.Description
		s.Properties[f.Name] = prop
		if f.Required {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}

func limit(n int) *int {
	if n <= 0 {
		return nil
	}
	return jsonschema.Int(n)
}

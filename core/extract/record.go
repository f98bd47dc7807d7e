package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/leofalp/llmextract/core/parse"
)

// value holds one bound field; which member is meaningful depends on the
// field's Kind.
type value struct {
	text string
	num  int64
	list []string
}

// Record is a bound object: every field of its Description holds a value
// that satisfies the field's constraints. The zero Record has no
// Description and represents "no result".
type Record struct {
	desc   *Description
	values []value
}

func newRecord(d *Description) Record {
	r := Record{desc: d, values: make([]value, len(d.fields))}
	for i, f := range d.fields {
		if f.Kind == KindTextList {
			r.values[i].list = []string{}
		}
	}
	return r
}

// Description returns the schema the record was bound against, or nil for
// the zero Record.
func (r Record) Description() *Description {
	return r.desc
}

// IsZero reports whether r is the zero Record.
func (r Record) IsZero() bool {
	return r.desc == nil
}

func (r Record) lookup(name string, kind FieldKind) (value, bool) {
	if r.desc == nil {
		return value{}, false
	}
	i, ok := r.desc.index[name]
	if !ok || r.desc.fields[i].Kind != kind {
		return value{}, false
	}
	return r.values[i], true
}

// Text returns the value of a text field, or "" when name is not a text
// field of the record's Description.
func (r Record) Text(name string) string {
	v, _ := r.lookup(name, KindText)
	return v.text
}

// Int returns the value of an integer field, or 0 when name is not an
// integer field.
func (r Record) Int(name string) int64 {
	v, _ := r.lookup(name, KindInteger)
	return v.num
}

// List returns a copy of a list-of-text field, or nil when name is not a
// list field.
func (r Record) List(name string) []string {
	v, ok := r.lookup(name, KindTextList)
	if !ok {
		return nil
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Map returns the record as a generic map keyed by field name.
func (r Record) Map() map[string]any {
	if r.desc == nil {
		return nil
	}
	m := make(map[string]any, len(r.values))
	for i, f := range r.desc.fields {
		m[f.Name] = r.fieldValue(i)
	}
	return m
}

func (r Record) fieldValue(i int) any {
	v := r.values[i]
	switch r.desc.fields[i].Kind {
	case KindText:
		return v.text
	case KindInteger:
		return v.num
	default:
		out := make([]string, len(v.list))
		copy(out, v.list)
		return out
	}
}

// MarshalJSON encodes the record as a JSON object whose keys follow the
// Description's field order. The zero Record encodes as null.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.desc == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.desc.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.fieldValue(i))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// As converts a record into a typed struct whose json tags name the
// record's fields.
//
// Example:
//
//	type Movie struct {
//	    Title string `json:"title"`
//	    Year  int    `json:"year"`
//	}
//	movie, err := extract.As[Movie](result.Record)
func As[T any](r Record) (T, error) {
	return parse.Into[T](r)
}

// Decode converts the record into the struct pointed to by into, matching
// fields by json tag.
func (r Record) Decode(into any) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}

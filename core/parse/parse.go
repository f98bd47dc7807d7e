package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kaptinlin/jsonrepair"
)

var (
	// ErrInvalidJSON is returned when the content is not valid JSON, including
	// after a repair attempt when repair is enabled.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject is returned when the content is valid JSON but its root is
	// not an object.
	ErrNotObject = errors.New("JSON root is not an object")
)

// Option configures Object.
type Option func(*options)

type options struct {
	repair bool
}

// WithRepair enables a single jsonrepair pass when strict decoding fails.
// Repair fixes unquoted keys, single quotes, trailing commas and missing
// closing brackets, at the cost of accepting input the model did not
// actually produce as JSON.
func WithRepair(enabled bool) Option {
	return func(o *options) {
		o.repair = enabled
	}
}

// Object decodes content as a JSON object. Numbers are returned as
// json.Number so callers can distinguish integers from floats without
// precision loss.
//
// Example:
//
//	obj, err := parse.Object(`{"title":"Alien","year":1979}`)
//	// obj["year"] == json.Number("1979")
//
//	obj, err = parse.Object(`{title: 'Alien', year: 1979,}`, parse.WithRepair(true))
func Object(content string, opts ...Option) (map[string]any, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	value, err := decodeStrict(content)
	if err != nil && cfg.repair {
		repaired, repairErr := jsonrepair.JSONRepair(content)
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %v (repair failed: %v)", ErrInvalidJSON, err, repairErr)
		}
		value, err = decodeStrict(repaired)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, value)
	}
	return obj, nil
}

// decodeStrict decodes exactly one JSON value and rejects trailing data.
func decodeStrict(content string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(content)))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return value, nil
}

// Into converts a decoded JSON value (or any JSON-marshalable value) into T by
// round-tripping it through encoding/json.
//
// Example:
//
//	type Movie struct {
//	    Title string `json:"title"`
//	    Year  int    `json:"year"`
//	}
//	movie, err := parse.Into[Movie](map[string]any{"title": "Alien", "year": 1979})
func Into[T any](value any) (T, error) {
	var result T

	raw, err := json.Marshal(value)
	if err != nil {
		return result, fmt.Errorf("failed to marshal %T: %w", value, err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal into %T: %w", result, err)
	}
	return result, nil
}

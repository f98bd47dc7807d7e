package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/leofalp/llmextract/core/parse"
)

// BindOption configures Bind.
type BindOption func(*bindOptions)

type bindOptions struct {
	repair bool
}

// WithJSONRepair lets Bind run the narrowed text through jsonrepair when it
// is not valid JSON, instead of failing.
func WithJSONRepair() BindOption {
	return func(o *bindOptions) {
		o.repair = true
	}
}

// bindStats describes the corrections applied while binding.
type bindStats struct {
	missing   []string
	truncated int
}

// Bind parses narrowed as a JSON object and maps it onto d.
//
// Fields are extracted independently: a missing or mistyped field takes its
// kind's zero value ("", 0 or an empty list) and never fails the record.
// Text values and list elements are trimmed, then clipped to MaxLength
// UTF-16 code units; lists keep their first MaxItems string elements.
//
// Bind fails only when narrowed is not valid JSON (ErrObjectParse) or its
// root is not an object (ErrNotObject).
func Bind(narrowed string, d *Description, opts ...BindOption) (Record, error) {
	cfg := bindOptions{}
	for _, opt := range opts {
		opt(&cfg)
	}
	r, _, err := bind(narrowed, d, cfg)
	return r, err
}

func bind(narrowed string, d *Description, cfg bindOptions) (Record, bindStats, error) {
	var stats bindStats
	if d == nil {
		return Record{}, stats, ErrNilDescription
	}

	obj, err := parse.Object(narrowed, parse.WithRepair(cfg.repair))
	if err != nil {
		if errors.Is(err, parse.ErrNotObject) {
			return Record{}, stats, fmt.Errorf("%w: %v", ErrNotObject, err)
		}
		return Record{}, stats, fmt.Errorf("%w: %v", ErrObjectParse, err)
	}

	r := newRecord(d)
	for i, f := range d.fields {
		raw, present := obj[f.Name]
		if !present && f.Required {
			stats.missing = append(stats.missing, f.Name)
		}

		switch f.Kind {
		case KindText:
			s, _ := raw.(string)
			text, clipped := fitText(s, f.MaxLength)
			if clipped {
				stats.truncated++
			}
			r.values[i].text = text
		case KindInteger:
			n, _ := raw.(json.Number)
			r.values[i].num = toInt64(n)
		case KindTextList:
			items, _ := raw.([]any)
			list, dropped := fitList(items, f.MaxItems, f.MaxLength)
			stats.truncated += dropped
			r.values[i].list = list
		}
	}
	return r, stats, nil
}

// fitList collects string elements of items in order, stopping at maxItems,
// and fits each to maxLength. It reports how many elements were dropped or
// clipped.
func fitList(items []any, maxItems, maxLength int) ([]string, int) {
	corrections := 0
	list := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if maxItems > 0 && len(list) == maxItems {
			corrections++
			continue
		}
		text, clipped := fitText(s, maxLength)
		if clipped {
			corrections++
		}
		list = append(list, text)
	}
	return list, corrections
}

// fitText trims s and clips it to maxLength UTF-16 code units. Whitespace
// exposed at the end by the cut is trimmed too, so the result is stable
// under a second pass.
func fitText(s string, maxLength int) (string, bool) {
	s = strings.TrimSpace(s)
	clipped := clipUTF16(s, maxLength)
	if len(clipped) == len(s) {
		return s, false
	}
	return strings.TrimRightFunc(clipped, unicode.IsSpace), true
}

// clipUTF16 returns the longest prefix of s that fits in max UTF-16 code
// units. A rune that would straddle the limit is dropped whole. max <= 0
// means unbounded.
func clipUTF16(s string, max int) string {
	if max <= 0 || len(s) <= max {
		// Each UTF-16 code unit needs at least one UTF-8 byte.
		return s
	}
	units := 0
	for i, r := range s {
		n := utf16.RuneLen(r)
		if n < 0 {
			n = 1
		}
		if units+n > max {
			return s[:i]
		}
		units += n
	}
	return s
}

// toInt64 converts a JSON number to an integer, truncating any fractional
// part toward zero. Non-numbers and values outside the int64 range yield 0.
func toInt64(n json.Number) int64 {
	if n == "" {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}

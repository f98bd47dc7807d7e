package extract

import "errors"

// Failure causes reported in Result.Err. Extract never returns them as an
// error value; callers inspect them with errors.Is when they need to tell a
// missing candidate from a malformed object.
var (
	// ErrNoCandidate means neither the envelope nor the brace scan of the raw
	// text produced candidate content.
	ErrNoCandidate = errors.New("no candidate content in completion")

	// ErrNoBounds means the candidate had no '{' ... '}' span.
	ErrNoBounds = errors.New("no JSON object bounds in candidate")

	// ErrObjectParse means the narrowed text is not valid JSON.
	ErrObjectParse = errors.New("narrowed text is not valid JSON")

	// ErrNotObject means the narrowed text is valid JSON but not an object.
	ErrNotObject = errors.New("narrowed JSON is not an object")

	// ErrNilDescription is reported when no schema description is supplied.
	ErrNilDescription = errors.New("nil schema description")

	// ErrSchemaViolation wraps Result.Violation when a bound record does not
	// match its Description's JSON Schema.
	ErrSchemaViolation = errors.New("record does not match schema")
)

package extract

import (
	"context"

	"github.com/leofalp/llmextract/internal/utils"
	"github.com/leofalp/llmextract/providers/observability"
)

// Stage is the last pipeline stage a run reached.
type Stage int

const (
	// StageNone means the run never started (no Description).
	StageNone Stage = iota
	// StageEnvelope means no candidate came out of the envelope or the brace
	// scan of the raw text.
	StageEnvelope
	// StageNarrow means the candidate had no '{' ... '}' span.
	StageNarrow
	// StageParse means the narrowed text did not decode to a JSON object.
	StageParse
	// StageBound means the record was bound.
	StageBound
)

// String returns the stage name used in logs and metrics.
func (s Stage) String() string {
	switch s {
	case StageEnvelope:
		return "envelope"
	case StageNarrow:
		return "narrow"
	case StageParse:
		return "parse"
	case StageBound:
		return "bound"
	default:
		return "none"
	}
}

// Result is the outcome of one extraction. When OK is false, Record is the
// zero Record, Stage names where the pipeline stopped and Err holds the
// cause.
type Result struct {
	Record Record
	OK     bool
	Stage  Stage
	Err    error

	// Missing lists required fields whose key was absent from the object.
	// Their values in Record are the kind's zero value.
	Missing []string

	// Truncations counts text values clipped and list elements dropped or
	// clipped while binding.
	Truncations int

	// Violation is set when schema validation is enabled and the bound
	// record fails it. It wraps ErrSchemaViolation. The record is still
	// returned.
	Violation error
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithObserver attaches an observability provider. Without one the
// Extractor records nothing.
func WithObserver(observer observability.Provider) Option {
	return func(e *Extractor) {
		e.observer = observer
	}
}

// WithRepair makes the Extractor run malformed narrowed JSON through
// jsonrepair before giving up.
func WithRepair() Option {
	return func(e *Extractor) {
		e.bind.repair = true
	}
}

// WithValidation makes the Extractor check every bound record against the
// Description's JSON Schema. Compiled schemas are cached per Description.
func WithValidation() Option {
	return func(e *Extractor) {
		e.validate = true
	}
}

// Extractor runs the envelope, narrow and bind stages in order. It holds
// only configuration and a cache of compiled schemas, and is safe for
// concurrent use.
type Extractor struct {
	observer   observability.Provider
	bind       bindOptions
	validate   bool
	validators validatorCache
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultExtractor = New()

// Extract runs the pipeline with default settings and no observer.
func Extract(raw string, d *Description) Result {
	return defaultExtractor.Extract(context.Background(), raw, d)
}

// Extract turns a raw completion into a Record of d, or reports no result.
// It never returns an error: failures are described by Result.Stage and
// Result.Err. ctx is used only to parent the observability span.
func (e *Extractor) Extract(ctx context.Context, raw string, d *Description) Result {
	if d == nil {
		return Result{Stage: StageNone, Err: ErrNilDescription}
	}

	timer := utils.NewTimer()
	var span observability.Span
	if e.observer != nil {
		ctx, span = e.observer.StartSpan(ctx, observability.SpanExtract,
			observability.String(observability.AttrExtractSchema, d.Name()),
			observability.Int(observability.AttrExtractInputSize, len(raw)),
		)
		defer span.End()
	}

	res := e.run(span, raw, d)

	timer.Stop()
	e.record(ctx, span, d, res, timer)
	return res
}

func (e *Extractor) run(span observability.Span, raw string, d *Description) Result {
	candidate, source := readEnvelope(raw)
	if source == sourceNone {
		return Result{Stage: StageEnvelope, Err: ErrNoCandidate}
	}
	if span != nil {
		span.AddEvent(observability.EventEnvelopeRead,
			observability.String(observability.AttrExtractSource, string(source)),
			observability.Int(observability.AttrExtractCandidateSize, len(candidate)),
		)
	}

	narrowed, ok := Narrow(candidate)
	if !ok {
		return Result{Stage: StageNarrow, Err: ErrNoBounds}
	}
	if span != nil {
		span.AddEvent(observability.EventNarrowed,
			observability.Int(observability.AttrExtractCandidateSize, len(narrowed)),
		)
	}

	record, stats, err := bind(narrowed, d, e.bind)
	if err != nil {
		return Result{Stage: StageParse, Err: err}
	}
	if span != nil {
		span.AddEvent(observability.EventBound,
			observability.Int(observability.AttrExtractTruncations, stats.truncated),
			observability.Strings(observability.AttrExtractMissing, stats.missing),
		)
	}
	res := Result{
		Record:      record,
		OK:          true,
		Stage:       StageBound,
		Missing:     stats.missing,
		Truncations: stats.truncated,
	}

	if e.validate {
		res.Violation = e.validators.check(d, record)
		if span != nil {
			span.AddEvent(observability.EventValidated,
				observability.Bool(observability.AttrExtractValid, res.Violation == nil),
			)
		}
	}
	return res
}

func (e *Extractor) record(ctx context.Context, span observability.Span, d *Description, res Result, timer *utils.Timer) {
	if e.observer == nil {
		return
	}

	outcome := "bound"
	if !res.OK {
		outcome = "no_result"
	}
	attrs := []observability.Attribute{
		observability.String(observability.AttrExtractSchema, d.Name()),
		observability.String(observability.AttrExtractOutcome, outcome),
		observability.String(observability.AttrExtractStage, res.Stage.String()),
	}

	span.SetAttributes(attrs[1:]...)
	if res.OK {
		span.SetStatus(observability.StatusOK, "")
	} else {
		// No result is an expected outcome, not a span error.
		span.AddEvent(observability.EventFailed, observability.Error(res.Err))
		e.observer.Debug(ctx, "extraction produced no result",
			append(attrs, observability.Error(res.Err))...)
	}
	if res.Violation != nil {
		e.observer.Warn(ctx, "bound record does not match schema",
			observability.String(observability.AttrExtractSchema, d.Name()),
			observability.Error(res.Violation),
		)
		e.observer.Counter(observability.MetricExtractViolations).Add(ctx, 1, attrs[0])
	}
	if len(res.Missing) > 0 {
		e.observer.Debug(ctx, "required fields missing",
			observability.String(observability.AttrExtractSchema, d.Name()),
			observability.Strings(observability.AttrExtractMissing, res.Missing),
		)
	}

	e.observer.Counter(observability.MetricExtractCount).Add(ctx, 1, attrs...)
	if res.Truncations > 0 {
		e.observer.Counter(observability.MetricExtractTruncations).Add(ctx, int64(res.Truncations), attrs[0])
	}
	e.observer.Histogram(observability.MetricExtractDuration).Record(ctx, timer.Milliseconds(), attrs...)
}

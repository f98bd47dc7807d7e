// Package observability defines the tracing, metrics and logging interfaces
// used by the extraction pipeline and the backend transport.
//
// [Provider] composes [Tracer], [Metrics] and [Logger] into a single
// injectable dependency. A nil Provider disables observation everywhere it
// is accepted. The active Provider and [Span] travel through a
// [context.Context] via [ContextWithObserver] and [ContextWithSpan].
//
// semconv.go holds the attribute keys, span names and metric names.
package observability

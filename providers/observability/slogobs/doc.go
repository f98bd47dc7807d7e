// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans, metrics and log events are all emitted as structured log records,
// in text or JSON form. Configuration comes from functional options or the
// LLMEXTRACT_LOG_LEVEL and LLMEXTRACT_LOG_FORMAT environment variables.
package slogobs

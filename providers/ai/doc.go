// Package ai defines the backend-agnostic request and response types used by
// provider implementations.
//
// A [Provider] turns a [ChatRequest] into a [RawResponse] whose Body is the
// unparsed response text. Interpreting that text is left to the extraction
// pipeline in core/extract, so providers never decode the completion
// envelope themselves.
package ai

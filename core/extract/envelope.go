package extract

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Envelope paths, relative to choices[0].message.
const (
	pathChoices       = "choices"
	pathMessage       = "choices.0.message"
	pathFunctionCall  = "function_call"
	pathArguments     = "arguments"
	pathToolArguments = "tool_calls.0.function.arguments"
	pathContent       = "content"
)

// envelopeSource records which branch of ReadEnvelope produced the candidate.
type envelopeSource string

const (
	sourceFunctionCall envelopeSource = "function_call"
	sourceToolCall     envelopeSource = "tool_call"
	sourceContent      envelopeSource = "content"
	sourceFallback     envelopeSource = "brace_scan"
	sourceNone         envelopeSource = ""
)

// ReadEnvelope returns the candidate text carried by a chat-completion
// response body.
//
// When raw is a chat-completion envelope, the candidate comes from
// choices[0].message: function_call.arguments if function_call is an object,
// else tool_calls[0].function.arguments, else a string content. A message
// carrying none of these yields no candidate.
//
// When raw is not valid JSON, or is JSON without an object at
// choices[0].message, the candidate is the span from the first '{' to the
// last '}' of raw itself.
func ReadEnvelope(raw string) (string, bool) {
	candidate, source := readEnvelope(raw)
	return candidate, source != sourceNone
}

func readEnvelope(raw string) (string, envelopeSource) {
	if !gjson.Valid(raw) {
		return braceScan(raw)
	}
	if !gjson.Get(raw, pathChoices).IsArray() {
		return braceScan(raw)
	}
	message := gjson.Get(raw, pathMessage)
	if !message.IsObject() {
		return braceScan(raw)
	}

	if fc := message.Get(pathFunctionCall); fc.IsObject() {
		if candidate, ok := argumentsText(fc.Get(pathArguments)); ok {
			return candidate, sourceFunctionCall
		}
	}
	if candidate, ok := argumentsText(message.Get(pathToolArguments)); ok {
		return candidate, sourceToolCall
	}
	if content := message.Get(pathContent); content.Type == gjson.String {
		return content.Str, sourceContent
	}
	return "", sourceNone
}

// argumentsText accepts the documented string form of function arguments as
// well as an already-decoded object.
func argumentsText(args gjson.Result) (string, bool) {
	switch {
	case args.Type == gjson.String:
		return args.Str, true
	case args.IsObject():
		return args.Raw, true
	default:
		return "", false
	}
}

func braceScan(raw string) (string, envelopeSource) {
	span, ok := braceSpan(raw)
	if !ok {
		return "", sourceNone
	}
	return span, sourceFallback
}

// braceSpan returns s[first '{' : last '}'] inclusive.
func braceSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

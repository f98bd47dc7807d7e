// Package parse decodes JSON text recovered from language-model output.
//
// [Object] decodes a JSON object while keeping numbers exact, optionally
// retrying a malformed document through jsonrepair. [Into] converts an
// already-decoded value into a typed Go struct.
package parse

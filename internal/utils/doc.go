// Package utils holds small helpers shared by the transport and the
// extraction pipeline: a JSON POST helper that returns the raw response body,
// log-safe string truncation, pointer construction and an elapsed-time timer.
package utils

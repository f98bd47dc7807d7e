// Package schemas holds the record descriptions served by llmextract: movie
// details and recipes. Each comes with a typed struct, a prompt builder and
// a function name for the forced function call.
//
// Use [Lookup] to resolve a description by name from user input.
package schemas

// Package client composes a backend provider with the extraction pipeline.
//
// The primary entry point is [New], which accepts an [ai.Provider] and a set
// of functional options (e.g. [WithObserver], [WithMiddleware],
// [WithMaxTokens]). [Client.Extract] sends one request whose forced function
// call is described by an extract.Description and binds the response.
// [ExtractAs], [Client.Movie] and [Client.Recipe] return typed values.
package client

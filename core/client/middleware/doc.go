// Package middleware provides built-in middleware for the llmextract client.
// Each constructor returns a [client.Middleware] ready to be passed to
// [client.WithMiddleware].
//
//   - [NewTimeoutMiddleware]: adds a per-request deadline via
//     context.WithTimeout.
//   - [NewLoggingMiddleware]: emits slog entries before and after every
//     backend call, with three verbosity levels.
//
// Usage:
//
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewTimeoutMiddleware(30*time.Second),
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// Middlewares execute outermost-first: the first entry in WithMiddleware runs
// first on the way in and last on the way out.
package middleware

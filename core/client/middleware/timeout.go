package middleware

import (
	"context"
	"time"

	"github.com/leofalp/llmextract/core/client"
	"github.com/leofalp/llmextract/providers/ai"
)

// NewTimeoutMiddleware creates a Middleware that enforces a per-request
// deadline on backend calls. The context is canceled once the provider
// returns or the deadline expires.
//
// If the caller supplies a context that already has a shorter deadline, that
// shorter deadline wins as per normal context semantics.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.RawResponse, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next(ctx, request)
		}
	}
}

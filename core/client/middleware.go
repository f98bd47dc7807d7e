package client

import (
	"context"

	"github.com/leofalp/llmextract/providers/ai"
)

// SendFunc sends a request to the backend and returns the raw response. It
// is the unit threaded through the middleware chain.
type SendFunc func(ctx context.Context, request ai.ChatRequest) (*ai.RawResponse, error)

// Middleware intercepts backend requests. Each Middleware receives the next
// SendFunc in the chain and returns a new SendFunc that wraps it.
// Middlewares are applied outermost-first: the first middleware in the slice
// is the outermost wrapper.
type Middleware func(next SendFunc) SendFunc

// buildSendChain constructs the linear middleware chain. The base function
// calls the provider directly. Middlewares are applied in reverse order so
// that the first entry in the slice becomes the outermost wrapper.
func buildSendChain(provider ai.Provider, middlewares []Middleware) SendFunc {
	var chain SendFunc = func(ctx context.Context, request ai.ChatRequest) (*ai.RawResponse, error) {
		return provider.SendRaw(ctx, request)
	}

	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}

	return chain
}

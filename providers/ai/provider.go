package ai

import (
	"context"
	"net/http"
)

// Provider is the interface every backend implementation satisfies. It
// covers one request/response exchange and returns the response body as
// text, without interpreting it.
type Provider interface {
	// SendRaw sends the request and returns the raw response. Returns an
	// error if the call fails, the context is cancelled or the backend
	// answers with a non-2xx status.
	SendRaw(ctx context.Context, request ChatRequest) (*RawResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}

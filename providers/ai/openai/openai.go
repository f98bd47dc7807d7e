package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"github.com/leofalp/llmextract/internal/utils"
	"github.com/leofalp/llmextract/providers/ai"
	"github.com/leofalp/llmextract/providers/observability"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"

	// DefaultModel is used when neither the request nor the provider names a model.
	DefaultModel = "gpt-4o-mini"

	providerName = "openai"
)

// ErrMissingAPIKey is returned by SendRaw when no API key is configured.
var ErrMissingAPIKey = errors.New("openai: API key is not set")

// OpenAIProvider implements the Provider interface for OpenAI-compatible APIs
type OpenAIProvider struct {
	apiKey       string
	baseURL      string
	model        string
	client       *http.Client
	capabilities Capabilities
}

var _ ai.Provider = (*OpenAIProvider)(nil)

// New creates a new OpenAI provider instance. The API key and base URL are
// read from OPENAI_API_KEY and OPENAI_API_BASE_URL.
func New() *OpenAIProvider {
	apiKey := os.Getenv("OPENAI_API_KEY")
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &OpenAIProvider{
		apiKey:       apiKey,
		baseURL:      baseURL,
		model:        DefaultModel,
		client:       &http.Client{},
		capabilities: detectCapabilities(baseURL),
	}
}

// WithAPIKey sets the API key for the provider
func (p *OpenAIProvider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API and re-detects capabilities.
func (p *OpenAIProvider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	p.capabilities = detectCapabilities(baseURL)
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *OpenAIProvider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// WithModel sets the model used when a request does not name one.
func (p *OpenAIProvider) WithModel(model string) *OpenAIProvider {
	p.model = model
	return p
}

// Model returns the model used when a request does not name one.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// WithCapabilities overrides the capabilities detected from the base URL.
func (p *OpenAIProvider) WithCapabilities(capabilities Capabilities) *OpenAIProvider {
	p.capabilities = capabilities
	return p
}

// Capabilities returns the capabilities in effect.
func (p *OpenAIProvider) Capabilities() Capabilities {
	return p.capabilities
}

// SendRaw implements the Provider interface. The response body is returned
// as text; a non-2xx status is an error.
func (p *OpenAIProvider) SendRaw(ctx context.Context, request ai.ChatRequest) (*ai.RawResponse, error) {
	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if request.Model == "" {
		request.Model = p.model
	}
	requestID := uuid.NewString()
	url := p.baseURL + chatCompletionsEndpoint

	if span := observability.SpanFromContext(ctx); span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrLLMProvider, providerName),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.String(observability.AttrLLMEndpoint, url),
			observability.String(observability.AttrLLMRequestID, requestID),
		}
		if request.Function != nil {
			attrs = append(attrs, observability.String(observability.AttrLLMFunction, request.Function.Name))
		}
		span.SetAttributes(attrs...)
	}

	httpResponse, body, err := utils.DoPostRaw(ctx, p.client, url, p.apiKey, requestFromGeneric(request, p.capabilities.ToolCallMode))
	if err != nil {
		return nil, fmt.Errorf("openai request %s failed: %w", requestID, err)
	}

	return &ai.RawResponse{
		RequestID:  requestID,
		Model:      request.Model,
		StatusCode: httpResponse.StatusCode,
		Body:       string(body),
	}, nil
}

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/llmextract/core/extract"
	"github.com/leofalp/llmextract/core/schemas"
	"github.com/leofalp/llmextract/providers/ai"
	"github.com/leofalp/llmextract/providers/observability"
)

// DefaultMaxTokens bounds the completion when no other limit is configured.
const DefaultMaxTokens = 1024

var (
	// ErrNilProvider is returned by New when no provider is given.
	ErrNilProvider = errors.New("llm provider cannot be nil")

	// ErrEmptyPrompt is returned by Extract for a blank prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// ClientOptions contains configuration options for creating a Client.
type ClientOptions struct {
	// Observer records spans, metrics and logs for requests and extractions.
	// Nil disables observability.
	Observer observability.Provider

	// Middlewares wrap every backend request, outermost first.
	Middlewares []Middleware

	// SystemPrompt is sent before the user prompt. Defaults to schemas.SystemPrompt.
	SystemPrompt string

	// Model overrides the provider's default model.
	Model string

	// MaxTokens bounds the completion. Defaults to DefaultMaxTokens.
	MaxTokens int

	// Temperature is forwarded when set.
	Temperature *float32

	// Repair runs malformed JSON through jsonrepair before binding.
	Repair bool

	// Validate checks every bound record against its JSON Schema and
	// reports failures in Result.Violation.
	Validate bool
}

// WithObserver sets the observability provider.
func WithObserver(observer observability.Provider) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Observer = observer
	}
}

// WithMiddleware appends middlewares to the request chain.
func WithMiddleware(middlewares ...Middleware) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}

// WithSystemPrompt replaces the default system prompt.
func WithSystemPrompt(prompt string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.SystemPrompt = prompt
	}
}

// WithModel sets the model sent with every request.
func WithModel(model string) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Model = model
	}
}

// WithMaxTokens sets the completion token limit.
func WithMaxTokens(maxTokens int) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.MaxTokens = maxTokens
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float32) func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Temperature = &temperature
	}
}

// WithRepair enables JSON repair of malformed model output.
func WithRepair() func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Repair = true
	}
}

// WithValidation enables JSON Schema validation of bound records.
func WithValidation() func(*ClientOptions) {
	return func(o *ClientOptions) {
		o.Validate = true
	}
}

// modelNamer is implemented by providers that expose their default model.
type modelNamer interface {
	Model() string
}

// Client sends structured-output requests and extracts records from the
// responses. A Client is immutable after New and safe for concurrent use.
type Client struct {
	observer     observability.Provider
	extractor    *extract.Extractor
	send         SendFunc
	systemPrompt string
	model        string
	maxTokens    int
	temperature  *float32
}

// New creates a Client for provider.
//
// Example:
//
//	c, err := client.New(openai.New(),
//	    client.WithObserver(slogobs.New()),
//	    client.WithMaxTokens(300),
//	)
func New(provider ai.Provider, opts ...func(*ClientOptions)) (*Client, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	options := &ClientOptions{
		SystemPrompt: schemas.SystemPrompt,
		MaxTokens:    DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Requests always name a model so middlewares see the one actually used.
	model := options.Model
	if named, ok := provider.(modelNamer); ok && model == "" {
		model = named.Model()
	}

	middlewares := options.Middlewares
	extractOpts := []extract.Option{}
	if options.Observer != nil {
		middlewares = append([]Middleware{NewObservabilityMiddleware(options.Observer, model)}, middlewares...)
		extractOpts = append(extractOpts, extract.WithObserver(options.Observer))
	}
	if options.Repair {
		extractOpts = append(extractOpts, extract.WithRepair())
	}
	if options.Validate {
		extractOpts = append(extractOpts, extract.WithValidation())
	}

	return &Client{
		observer:     options.Observer,
		extractor:    extract.New(extractOpts...),
		send:         buildSendChain(provider, middlewares),
		systemPrompt: options.SystemPrompt,
		model:        model,
		maxTokens:    options.MaxTokens,
		temperature:  options.Temperature,
	}, nil
}

// Request builds the backend request for prompt, forcing a call to a
// function whose parameters are d's JSON Schema.
func (c *Client) Request(prompt string, d *extract.Description) ai.ChatRequest {
	return ai.ChatRequest{
		Model:        c.model,
		SystemPrompt: c.systemPrompt,
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: prompt},
		},
		Function: &ai.FunctionDescription{
			Name:        d.Name(),
			Description: fmt.Sprintf("Return the %s record", strings.ReplaceAll(d.Name(), "_", " ")),
			Parameters:  d.JSONSchema(),
		},
		GenerationConfig: &ai.GenerationConfig{
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		},
	}
}

// Extract sends prompt to the backend and runs the extraction pipeline on
// the response body.
//
// The returned error covers the request only: transport failures, non-2xx
// responses and invalid arguments. A response that yields no record is
// reported through Result.OK with a nil error.
func (c *Client) Extract(ctx context.Context, prompt string, d *extract.Description) (extract.Result, error) {
	if d == nil {
		return extract.Result{}, extract.ErrNilDescription
	}
	if strings.TrimSpace(prompt) == "" {
		return extract.Result{}, ErrEmptyPrompt
	}

	var span observability.Span
	if c.observer != nil {
		ctx, span = c.observer.StartSpan(ctx, observability.SpanClientExtract,
			observability.String(observability.AttrExtractSchema, d.Name()),
		)
		defer span.End()
	}

	response, err := c.send(ctx, c.Request(prompt, d))
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "llm request failed")
		}
		return extract.Result{}, fmt.Errorf("llm request failed: %w", err)
	}

	result := c.extractor.Extract(ctx, response.Body, d)
	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrExtractOutcome, outcome(result)),
			observability.String(observability.AttrLLMRequestID, response.RequestID),
		)
		span.SetStatus(observability.StatusOK, "")
	}
	return result, nil
}

func outcome(result extract.Result) string {
	if result.OK {
		return "bound"
	}
	return "no_result"
}

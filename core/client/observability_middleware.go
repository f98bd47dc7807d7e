package client

import (
	"context"

	"github.com/leofalp/llmextract/internal/utils"
	"github.com/leofalp/llmextract/providers/ai"
	"github.com/leofalp/llmextract/providers/observability"
)

// NewObservabilityMiddleware creates a Middleware that records a tracing
// span, request metrics and log events for every backend request.
//
// The span and the observer are injected into the context before calling
// next, so that provider implementations can enrich them via
// [observability.SpanFromContext].
//
// The middleware is prepended to the chain by [New] when [WithObserver] is
// provided, making it the outermost wrapper. It therefore observes the final
// outcome, after any timeout middleware.
func NewObservabilityMiddleware(observer observability.Provider, defaultModel string) Middleware {
	return func(next SendFunc) SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.RawResponse, error) {
			model := effectiveModel(request.Model, defaultModel)

			ctx, span := observer.StartSpan(ctx, observability.SpanLLMRequest,
				observability.String(observability.AttrLLMModel, model),
			)
			defer span.End()
			ctx = observability.ContextWithObserver(ctx, observer)

			observer.Debug(ctx, "llm send",
				observability.String(observability.AttrLLMModel, model),
				observability.Int(observability.AttrLLMMaxTokens, maxTokens(request)),
			)

			timer := utils.NewTimer()
			response, err := next(ctx, request)
			timer.Stop()

			if err != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, "llm send failed")

				observer.Error(ctx, "llm send failed",
					observability.Error(err),
					observability.Duration(observability.AttrDuration, timer.GetDuration()),
					observability.String(observability.AttrLLMModel, model),
				)
				observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
					observability.String(observability.AttrStatus, "error"),
					observability.String(observability.AttrLLMModel, model),
				)
				return nil, err
			}

			observer.Histogram(observability.MetricClientRequestDuration).Record(ctx, timer.Milliseconds(),
				observability.String(observability.AttrLLMModel, model),
			)
			observer.Counter(observability.MetricClientRequestCount).Add(ctx, 1,
				observability.String(observability.AttrStatus, "success"),
				observability.String(observability.AttrLLMModel, model),
			)
			observer.Info(ctx, "llm send completed",
				observability.String(observability.AttrLLMModel, model),
				observability.String(observability.AttrLLMRequestID, response.RequestID),
				observability.Int(observability.AttrHTTPStatusCode, response.StatusCode),
				observability.Int(observability.AttrHTTPResponseBodySize, len(response.Body)),
				observability.Duration(observability.AttrDuration, timer.GetDuration()),
			)
			span.SetStatus(observability.StatusOK, "success")

			return response, nil
		}
	}
}

func maxTokens(request ai.ChatRequest) int {
	if request.GenerationConfig == nil {
		return 0
	}
	return request.GenerationConfig.MaxTokens
}

// effectiveModel returns the request-level model when set, falling back to the
// client's configured default. Both being empty is valid (provider chooses).
func effectiveModel(requestModel, defaultModel string) string {
	if requestModel != "" {
		return requestModel
	}

	return defaultModel
}

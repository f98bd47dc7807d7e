package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/leofalp/llmextract/core/client"
	"github.com/leofalp/llmextract/internal/utils"
	"github.com/leofalp/llmextract/providers/ai"
)

// LogLevel controls how much detail the logging middleware emits per request.
type LogLevel int

const (
	// LogLevelMinimal logs only the model name and total duration.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the function name, max tokens, status code and
	// body size. This is the recommended default for most applications.
	LogLevelStandard

	// LogLevelVerbose adds the user prompt and the response body, each
	// truncated to 500 characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. It will log raw prompt
	// and response text, which may contain sensitive user data.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware creates a Middleware that emits structured slog log
// entries before and after every backend call.
//
// The logger parameter must not be nil. Use slog.Default() if you have not
// configured a custom logger.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) client.Middleware {
	return func(next client.SendFunc) client.SendFunc {
		return func(ctx context.Context, request ai.ChatRequest) (*ai.RawResponse, error) {
			logger.InfoContext(ctx, "llm send",
				buildRequestAttrs(request, level)...,
			)

			start := time.Now()
			response, err := next(ctx, request)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "llm send failed",
					slog.String("model", request.Model),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "llm send completed",
				buildResponseAttrs(response, elapsed, level)...,
			)

			return response, nil
		}
	}
}

// buildRequestAttrs returns slog attributes for an outgoing request,
// expanding detail according to the requested verbosity level.
func buildRequestAttrs(request ai.ChatRequest, level LogLevel) []any {
	attrs := []any{
		slog.String("model", request.Model),
	}

	if level >= LogLevelStandard {
		if request.Function != nil {
			attrs = append(attrs, slog.String("function", request.Function.Name))
		}
		if request.GenerationConfig != nil {
			attrs = append(attrs, slog.Int("max_tokens", request.GenerationConfig.MaxTokens))
		}
	}

	if level >= LogLevelVerbose && len(request.Messages) > 0 {
		last := request.Messages[len(request.Messages)-1]
		attrs = append(attrs,
			slog.String("prompt", utils.TruncateString(last.Content, truncateLen)),
		)
	}

	return attrs
}

// buildResponseAttrs returns slog attributes for a completed response.
func buildResponseAttrs(response *ai.RawResponse, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("model", response.Model),
		slog.Duration("duration", elapsed),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs,
			slog.String("request_id", response.RequestID),
			slog.Int("status_code", response.StatusCode),
			slog.Int("body_size", len(response.Body)),
		)
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("body", utils.TruncateString(response.Body, truncateLen)))
	}

	return attrs
}

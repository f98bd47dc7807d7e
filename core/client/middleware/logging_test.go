package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leofalp/llmextract/core/client"
	"github.com/leofalp/llmextract/core/schemas"
	"github.com/leofalp/llmextract/providers/ai"
	"github.com/leofalp/llmextract/providers/ai/openai"
)

// testLogger creates an slog.Logger that writes to a *bytes.Buffer so tests
// can inspect emitted log lines without capturing os.Stderr.
func testLogger(buf *bytes.Buffer) *slog.Logger {
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler)
}

func testRequest() ai.ChatRequest {
	return ai.ChatRequest{
		Model:            "test-model",
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: "Describe Heat"}},
		Function:         &ai.FunctionDescription{Name: "movie_details"},
		GenerationConfig: &ai.GenerationConfig{MaxTokens: 300},
	}
}

func okSend(_ context.Context, request ai.ChatRequest) (*ai.RawResponse, error) {
	return &ai.RawResponse{
		RequestID:  "req-1",
		Model:      request.Model,
		StatusCode: 200,
		Body:       `{"choices":[]}`,
	}, nil
}

func TestLoggingMiddleware_Levels(t *testing.T) {
	tests := []struct {
		level   LogLevel
		want    []string
		notWant []string
	}{
		{
			level:   LogLevelMinimal,
			want:    []string{"llm send", "llm send completed", "model=test-model", "duration="},
			notWant: []string{"function=", "request_id=", "prompt=", "body="},
		},
		{
			level:   LogLevelStandard,
			want:    []string{"function=movie_details", "max_tokens=300", "request_id=req-1", "status_code=200", "body_size=14"},
			notWant: []string{"prompt=", "body="},
		},
		{
			level: LogLevelVerbose,
			want:  []string{`prompt="Describe Heat"`, `body="{\"choices\":[]}"`},
		},
	}

	for _, tt := range tests {
		buf := &bytes.Buffer{}
		chain := NewLoggingMiddleware(testLogger(buf), tt.level)(okSend)

		if _, err := chain(context.Background(), testRequest()); err != nil {
			t.Fatalf("level %d: unexpected error: %v", tt.level, err)
		}

		output := buf.String()
		for _, s := range tt.want {
			if !strings.Contains(output, s) {
				t.Errorf("level %d: expected %q in log, got:\n%s", tt.level, s, output)
			}
		}
		for _, s := range tt.notWant {
			if strings.Contains(output, s) {
				t.Errorf("level %d: unexpected %q in log, got:\n%s", tt.level, s, output)
			}
		}
	}
}

func TestLoggingMiddleware_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	providerErr := errors.New("connection refused")
	failing := func(context.Context, ai.ChatRequest) (*ai.RawResponse, error) {
		return nil, providerErr
	}

	chain := NewLoggingMiddleware(testLogger(buf), LogLevelStandard)(failing)
	_, err := chain(context.Background(), testRequest())
	if !errors.Is(err, providerErr) {
		t.Fatalf("expected provider error, got %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "level=ERROR") || !strings.Contains(output, `error="connection refused"`) {
		t.Errorf("expected error log, got:\n%s", output)
	}
	if strings.Contains(output, "llm send completed") {
		t.Error("completion must not be logged on error")
	}
}

func TestLoggingMiddleware_LogsProviderDefaultModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices":[]}`)
	}))
	defer server.Close()

	provider := openai.New()
	provider.WithAPIKey("k").WithBaseURL(server.URL)

	buf := &bytes.Buffer{}
	c, err := client.New(provider, client.WithMiddleware(NewLoggingMiddleware(testLogger(buf), LogLevelMinimal)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Extract(context.Background(), "Describe Heat", schemas.Movie); err != nil {
		t.Fatal(err)
	}

	firstLine, _, _ := strings.Cut(buf.String(), "\n")
	if !strings.Contains(firstLine, "model="+openai.DefaultModel) {
		t.Errorf("request log must name the default model, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), `model=""`) {
		t.Errorf("unexpected empty model in log:\n%s", buf.String())
	}
}

package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leofalp/llmextract/providers/ai"
)

// makeSendFunc returns a SendFunc that sleeps for the given duration before
// returning, simulating a slow provider.
func makeSendFunc(sleep time.Duration, resp *ai.RawResponse, err error) func(context.Context, ai.ChatRequest) (*ai.RawResponse, error) {
	return func(ctx context.Context, _ ai.ChatRequest) (*ai.RawResponse, error) {
		select {
		case <-time.After(sleep):
			return resp, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func TestTimeoutMiddleware_CompletesBeforeTimeout(t *testing.T) {
	fast := makeSendFunc(0, &ai.RawResponse{Body: "ok"}, nil)

	chain := NewTimeoutMiddleware(100 * time.Millisecond)(fast)

	resp, err := chain(context.Background(), ai.ChatRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Body != "ok" {
		t.Errorf("expected body 'ok', got %q", resp.Body)
	}
}

func TestTimeoutMiddleware_ExceedsTimeout(t *testing.T) {
	slow := makeSendFunc(time.Second, &ai.RawResponse{}, nil)

	chain := NewTimeoutMiddleware(10 * time.Millisecond)(slow)

	start := time.Now()
	_, err := chain(context.Background(), ai.ChatRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("timeout not enforced, call took %v", elapsed)
	}
}

func TestTimeoutMiddleware_ShorterParentDeadlineWins(t *testing.T) {
	slow := makeSendFunc(time.Second, &ai.RawResponse{}, nil)
	chain := NewTimeoutMiddleware(time.Hour)(slow)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := chain(ctx, ai.ChatRequest{}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestTimeoutMiddleware_PropagatesProviderError(t *testing.T) {
	providerErr := errors.New("boom")
	chain := NewTimeoutMiddleware(time.Second)(makeSendFunc(0, nil, providerErr))

	if _, err := chain(context.Background(), ai.ChatRequest{}); !errors.Is(err, providerErr) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

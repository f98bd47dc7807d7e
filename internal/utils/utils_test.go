package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// TestDoPostRaw_Success verifies that a 200 response body is returned
// byte-for-byte and that auth and content-type headers are sent.
func TestDoPostRaw_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected Authorization 'Bearer test-key', got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected Content-Type 'application/json', got %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"q":"test"}` {
			t.Errorf("unexpected request body %s", body)
		}
		fmt.Fprint(w, `Sure! {"value":42}`)
	}))
	defer server.Close()

	res, body, err := DoPostRaw(context.Background(), server.Client(), server.URL, "test-key", map[string]string{"q": "test"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", res.StatusCode)
	}
	if string(body) != `Sure! {"value":42}` {
		t.Errorf("expected raw body, got %q", body)
	}
}

// TestDoPostRaw_Non2xxStatus verifies that non-2xx responses are errors that
// include the status code and a body preview.
func TestDoPostRaw_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "invalid api key")
	}))
	defer server.Close()

	_, body, err := DoPostRaw(context.Background(), nil, server.URL, "", map[string]string{})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if body != nil {
		t.Errorf("expected nil body on error, got %q", body)
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid api key") {
		t.Errorf("expected status and body in error, got %v", err)
	}
}

func TestDoPostRaw_NoAPIKeyOmitsAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	if _, _, err := DoPostRaw(context.Background(), server.Client(), server.URL, "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoPostRaw_MarshalError(t *testing.T) {
	_, _, err := DoPostRaw(context.Background(), nil, "http://unused", "", map[string]any{"ch": make(chan int)})
	if err == nil || !strings.Contains(err.Error(), "marshaling") {
		t.Errorf("expected marshal error, got %v", err)
	}
}

func TestDoPostRaw_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := DoPostRaw(ctx, server.Client(), server.URL, "", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type errCloser struct{ err error }

func (c *errCloser) Close() error { return c.err }

// TestCloseWithLog_ErrorPath verifies CloseWithLog only logs close errors.
func TestCloseWithLog_ErrorPath(t *testing.T) {
	CloseWithLog(&errCloser{err: errors.New("close error")})
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short", "abc", 10, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"long", "abcdef", 3, "abc... (truncated, total: 6 chars)"},
		{"default", strings.Repeat("x", 10), 0, strings.Repeat("x", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if p == nil || *p != 42 {
		t.Fatalf("Ptr(42) = %v", p)
	}
	*p = 7
	if q := Ptr(42); *q != 42 {
		t.Error("expected independent pointers")
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer()
	if timer.GetDuration() != 0 {
		t.Error("expected zero duration before Stop")
	}
	time.Sleep(2 * time.Millisecond)
	timer.Stop()
	if timer.GetDuration() < 2*time.Millisecond {
		t.Errorf("expected at least 2ms, got %v", timer.GetDuration())
	}
	if timer.Milliseconds() < 2 {
		t.Errorf("expected Milliseconds() >= 2, got %f", timer.Milliseconds())
	}
}

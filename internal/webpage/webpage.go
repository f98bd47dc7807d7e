package webpage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/leofalp/llmextract/internal/utils"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "llmextract-webpage/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DefaultMaxMarkdown caps the Markdown returned, in bytes
	DefaultMaxMarkdown = 16 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// maxRedirects is the number of redirects followed before giving up
	maxRedirects = 10
)

var (
	// ErrEmptyURL is returned by Fetch for a blank URL.
	ErrEmptyURL = errors.New("URL cannot be empty")

	// ErrBodyTooLarge is returned when the page exceeds MaxBodySize.
	ErrBodyTooLarge = errors.New("response body exceeds maximum size")
)

// Page is a fetched web page.
type Page struct {
	// URL is the final URL after following all redirects
	URL string `json:"url"`
	// Markdown is the page content converted from HTML
	Markdown string `json:"markdown"`
	// Truncated reports whether Markdown was cut to the configured limit
	Truncated bool `json:"truncated,omitempty"`
}

// Option configures Fetch.
type Option func(*options)

type options struct {
	timeout     time.Duration
	userAgent   string
	maxMarkdown int
	client      *http.Client
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithMaxMarkdown overrides DefaultMaxMarkdown. Zero or less disables the cap.
func WithMaxMarkdown(maxBytes int) Option {
	return func(o *options) {
		o.maxMarkdown = maxBytes
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// Fetch retrieves the page at rawURL and returns its content as Markdown.
//
// Partial URLs (e.g. "example.com/recipe") are normalised by prepending
// "https://". Up to ten redirects are followed. Fetch returns an error when
// the URL is empty, the status is not 200 OK, the body exceeds MaxBodySize,
// the conversion fails, or the context is cancelled or times out.
func Fetch(ctx context.Context, rawURL string, opts ...Option) (Page, error) {
	cfg := options{
		timeout:     DefaultTimeout,
		userAgent:   DefaultUserAgent,
		maxMarkdown: DefaultMaxMarkdown,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	url := normalizeURL(rawURL)
	if url == "" {
		return Page{}, ErrEmptyURL
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	client := cfg.client
	if client == nil {
		client = newHTTPClient(cfg.timeout)
	}

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return Page{}, fmt.Errorf("request timeout or canceled: %w", err)
		}
		return Page{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	// Read one byte past the limit to tell "exactly at" from "over".
	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return Page{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(htmlBytes) > MaxBodySize {
		return Page{}, fmt.Errorf("%w of %d bytes", ErrBodyTooLarge, MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return Page{}, fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)

	page := Page{URL: resp.Request.URL.String(), Markdown: markdown}
	if cfg.maxMarkdown > 0 && len(markdown) > cfg.maxMarkdown {
		page.Markdown = strings.ToValidUTF8(markdown[:cfg.maxMarkdown], "")
		page.Truncated = true
	}
	return page, nil
}

func normalizeURL(rawURL string) string {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return url
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			ForceAttemptHTTP2:     true,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("too many redirects (>%d)", maxRedirects)
			}
			return nil
		},
	}
}

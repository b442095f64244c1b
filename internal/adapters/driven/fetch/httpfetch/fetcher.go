// Package httpfetch retrieves upstream sources over HTTPS and hands
// the core already-extracted text.
//
// The county republishes the roster as a formatted web page; the core
// only ever sees text. HTML responses are reduced to line-oriented
// text here, everything else passes through as-is. There is no retry
// or backoff: any failure aborts the caller's run.
package httpfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/rollcall/internal/core/ports/driven"
	"github.com/custodia-labs/rollcall/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.TextFetcher = (*Fetcher)(nil)

const (
	// maxBodyBytes caps a response body read (5MB).
	maxBodyBytes = 5 * 1024 * 1024

	// defaultRate is the polite per-second request rate against the
	// county's server.
	defaultRate = 1.0

	userAgent = "rollcall/1.0 (roster monitor)"
)

// Fetcher retrieves URLs as text with proactive rate limiting.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient overrides the HTTP client. Useful for tests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

// WithRate overrides the requests-per-second throttle.
func WithRate(perSec float64) Option {
	return func(f *Fetcher) { f.limiter = rate.NewLimiter(rate.Limit(perSec), 1) }
}

// New creates a rate-limited text fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  http.DefaultClient,
		limiter: rate.NewLimiter(rate.Limit(defaultRate), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchText retrieves rawURL and returns its extracted text content.
func (f *Fetcher) FetchText(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme: %q", u.Scheme)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	logger.Debug("Fetched %s: %d bytes (%s)", u.String(), len(body), contentType)

	if strings.Contains(contentType, "text/html") {
		return extractText(string(body)), nil
	}
	return string(body), nil
}

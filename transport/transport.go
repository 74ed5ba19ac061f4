// Package transport provides the HTTP capability the client library is
// built on. The core never talks to the network directly; it consumes
// the Transport interface so tests and alternative fetchers can slot in.
package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const defaultUserAgent = "espn-sports-api/1.0"

// Transport fetches raw bytes for a resolved request. Implementations
// must return a *StatusError for non-2xx responses so callers can
// distinguish upstream rejections from connectivity failures.
type Transport interface {
	Get(ctx context.Context, rawURL string, query url.Values, headers http.Header) ([]byte, error)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Code, e.Body)
}

// IsTimeout reports whether err represents a request timeout or
// cancellation, as opposed to an upstream rejection.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}

// HTTPTransport is the production Transport backed by net/http.
type HTTPTransport struct {
	client  *http.Client
	headers http.Header
	log     zerolog.Logger
}

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(t *HTTPTransport) {
		t.client.Timeout = d
	}
}

// WithHeader sets a default header sent on every request. Values are
// treated as opaque; credentials (cookies, session IDs) go through here
// uninspected.
func WithHeader(key, value string) Option {
	return func(t *HTTPTransport) {
		t.headers.Set(key, value)
	}
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(t *HTTPTransport) {
		t.log = log
	}
}

// New creates an HTTPTransport with sane defaults.
func New(opts ...Option) *HTTPTransport {
	t := &HTTPTransport{
		client:  &http.Client{Timeout: 30 * time.Second},
		headers: http.Header{},
		log:     zerolog.Nop(),
	}
	t.headers.Set("User-Agent", defaultUserAgent)
	t.headers.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get performs the request and returns the response body. Query values
// are appended to the URL; per-call headers override transport defaults.
func (t *HTTPTransport) Get(ctx context.Context, rawURL string, query url.Values, headers http.Header) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %q: %w", rawURL, err)
	}
	if len(query) > 0 {
		merged := u.Query()
		for key, vals := range query {
			for _, v := range vals {
				merged.Add(key, v)
			}
		}
		u.RawQuery = merged.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, vals := range t.headers {
		req.Header[key] = vals
	}
	for key, vals := range headers {
		req.Header[key] = vals
	}

	t.log.Debug().Str("url", u.String()).Msg("fetching")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: truncate(body, 200)}
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}

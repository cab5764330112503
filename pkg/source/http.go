package source

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// HTTPTransport fetches resources with a single GET request.
// No client timeout is set; bound the call through ctx if needed.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

// HTTPOption configures an HTTPTransport.
type HTTPOption func(*HTTPTransport)

// WithHTTPClient sets a custom HTTP client, e.g. one with a proxy or test transport.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(t *HTTPTransport) {
		if client != nil {
			t.client = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) HTTPOption {
	return func(t *HTTPTransport) {
		t.userAgent = ua
	}
}

func NewHTTPTransport(opts ...HTTPOption) *HTTPTransport {
	t := &HTTPTransport{client: &http.Client{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *HTTPTransport) Open(ctx context.Context, resource string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resource, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResource, err)
	}
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransportFailed, err)
	}
	return &httpResponse{resp: resp}, nil
}

type httpResponse struct {
	resp *http.Response
}

func (r *httpResponse) OK() bool {
	return r.resp.StatusCode >= 200 && r.resp.StatusCode < 300
}

// StatusText returns the reason phrase without the numeric code.
func (r *httpResponse) StatusText() string {
	return reasonPhrase(r.resp.StatusCode, r.resp.Status)
}

func (r *httpResponse) DecodeJSON(v any) error {
	return decodeJSON(r.resp.Body, v)
}

func (r *httpResponse) Close() error {
	return r.resp.Body.Close()
}

func reasonPhrase(code int, status string) string {
	prefix := strconv.Itoa(code)
	if rest, ok := strings.CutPrefix(status, prefix); ok {
		return strings.TrimSpace(rest)
	}
	if status != "" {
		return status
	}
	return http.StatusText(code)
}

package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dmitrymomot/dobcheck/pkg/logger"
	"github.com/dmitrymomot/dobcheck/pkg/user"
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"
	SchemeS3    = "s3"
)

// Fetcher retrieves user collections. It holds no per-call state and is safe
// for concurrent use once constructed.
type Fetcher struct {
	transports map[string]Transport
	logger     *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTransport registers t for a scheme, replacing any previous one.
// Use SchemeFile for bare paths.
func WithTransport(scheme string, t Transport) Option {
	return func(f *Fetcher) {
		if t != nil {
			f.transports[strings.ToLower(scheme)] = t
		}
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFetcher creates a Fetcher with HTTP and file transports registered.
// S3 has to be registered explicitly with WithTransport(SchemeS3, ...).
func NewFetcher(opts ...Option) *Fetcher {
	httpTransport := NewHTTPTransport()
	f := &Fetcher{
		transports: map[string]Transport{
			SchemeHTTP:  httpTransport,
			SchemeHTTPS: httpTransport,
			SchemeFile:  NewFileTransport(),
		},
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch opens resource once and decodes it as a user collection.
func (f *Fetcher) Fetch(ctx context.Context, resource string) (user.Collection, error) {
	scheme := schemeOf(resource)
	t, ok := f.transports[scheme]
	if !ok {
		if knownScheme(scheme) {
			return nil, fmt.Errorf("%w: %s", ErrTransportNotConfigured, scheme)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}

	f.logger.DebugContext(ctx, "opening resource",
		logger.Component("fetcher"),
		logger.Resource(resource),
		slog.String("scheme", scheme),
	)

	resp, err := t.Open(ctx, resource)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Close() }()

	if !resp.OK() {
		return nil, &ReadError{Message: MessageFetchFailed, Cause: resp.StatusText()}
	}

	var users user.Collection
	if err := resp.DecodeJSON(&users); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if users == nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, ErrNotArray)
	}
	return users, nil
}

// schemeOf returns the lower-cased URL scheme, or SchemeFile for plain paths
// (including Windows drive paths such as C:\users.json).
func schemeOf(resource string) string {
	u, err := url.Parse(resource)
	if err != nil || len(u.Scheme) <= 1 {
		return SchemeFile
	}
	return strings.ToLower(u.Scheme)
}

func knownScheme(s string) bool {
	switch s {
	case SchemeHTTP, SchemeHTTPS, SchemeFile, SchemeS3:
		return true
	}
	return false
}

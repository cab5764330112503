package source

import (
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// Response is the result of opening a resource.
type Response interface {
	// OK reports whether the resource was retrieved.
	OK() bool
	// StatusText describes a non-OK outcome, e.g. "Not Found".
	StatusText() string
	// DecodeJSON decodes the body into v.
	DecodeJSON(v any) error
	io.Closer
}

// Transport opens a resource identifier.
// An error means the transport itself failed; an unreachable or missing
// resource is reported through a non-OK Response instead.
type Transport interface {
	Open(ctx context.Context, resource string) (Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, resource string) (Response, error)

func (f TransportFunc) Open(ctx context.Context, resource string) (Response, error) {
	return f(ctx, resource)
}

// bodyResponse is a Response backed by an optional body stream.
type bodyResponse struct {
	ok     bool
	status string
	body   io.ReadCloser
}

// NewResponse returns an OK response that decodes body.
func NewResponse(body io.ReadCloser) Response {
	return &bodyResponse{ok: true, body: body}
}

// NewStatusResponse returns a non-OK response with the given status text.
func NewStatusResponse(status string) Response {
	return &bodyResponse{status: status}
}

func notFound() Response  { return NewStatusResponse(http.StatusText(http.StatusNotFound)) }
func forbidden() Response { return NewStatusResponse(http.StatusText(http.StatusForbidden)) }

func (r *bodyResponse) OK() bool           { return r.ok }
func (r *bodyResponse) StatusText() string { return r.status }

func (r *bodyResponse) DecodeJSON(v any) error {
	if r.body == nil {
		return ErrNoBody
	}
	return decodeJSON(r.body, v)
}

func (r *bodyResponse) Close() error {
	if r.body == nil {
		return nil
	}
	return r.body.Close()
}

// decodeJSON reads the whole body and decodes it as a single JSON value.
// Anything after that value, even a second valid document, is an error.
func decodeJSON(body io.Reader, v any) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

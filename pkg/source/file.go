package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileTransport reads resources from the local filesystem.
// A missing file yields a non-OK "Not Found" response and a permission
// failure yields "Forbidden", mirroring what an HTTP server would answer.
type FileTransport struct {
	baseDir string
}

// FileOption configures a FileTransport.
type FileOption func(*FileTransport)

// WithBaseDir resolves relative paths against dir instead of the working directory.
func WithBaseDir(dir string) FileOption {
	return func(t *FileTransport) {
		t.baseDir = dir
	}
}

func NewFileTransport(opts ...FileOption) *FileTransport {
	t := &FileTransport{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *FileTransport) Open(ctx context.Context, resource string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperationCanceled, err)
	}

	path, err := t.resolve(resource)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return notFound(), nil
	case errors.Is(err, os.ErrPermission):
		return forbidden(), nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrTransportFailed, err)
	case info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return notFound(), nil
	case errors.Is(err, os.ErrPermission):
		return forbidden(), nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrTransportFailed, err)
	}
	return NewResponse(f), nil
}

func (t *FileTransport) resolve(resource string) (string, error) {
	path := resource
	if strings.HasPrefix(strings.ToLower(resource), SchemeFile+"://") {
		u, err := url.Parse(resource)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidResource, err)
		}
		path = u.Path
	}
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidResource)
	}
	if t.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(t.baseDir, path)
	}
	return filepath.Clean(path), nil
}

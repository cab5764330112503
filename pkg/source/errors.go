package source

import "errors"

// MessageFetchFailed is the ReadError message for non-OK responses.
const MessageFetchFailed = "Failed to fetch data"

var (
	ErrUnsupportedScheme      = errors.New("unsupported resource scheme")
	ErrTransportNotConfigured = errors.New("transport not configured")
	ErrInvalidResource        = errors.New("invalid resource identifier")
	ErrTransportFailed        = errors.New("transport request failed")
	ErrDecodeFailed           = errors.New("failed to decode response body")
	ErrNotArray               = errors.New("response body is not a JSON array")
	ErrNoBody                 = errors.New("response has no body")
	ErrIsDirectory            = errors.New("path is a directory")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrFailedToLoadConfig     = errors.New("failed to load AWS config")
	ErrOperationCanceled      = errors.New("operation canceled")
	ErrOperationTimeout       = errors.New("operation timed out")
)

// ReadError reports a resource that the transport reached but could not retrieve.
// Cause is the transport's status text and may be empty.
type ReadError struct {
	Message string
	Cause   string
}

func (e *ReadError) Error() string {
	if e.Cause == "" {
		return e.Message
	}
	return e.Message + ": " + e.Cause
}

// IsReadError reports whether err is or wraps a *ReadError.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

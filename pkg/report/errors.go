package report

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid report format")
	ErrWriteFailed   = errors.New("failed to write report")
)

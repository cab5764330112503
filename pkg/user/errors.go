package user

import "errors"

var (
	// ErrNotObject is returned when a collection element is not a JSON object.
	ErrNotObject = errors.New("user record is not a JSON object")
)

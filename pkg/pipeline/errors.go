package pipeline

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/dobcheck/pkg/source"
	"github.com/dmitrymomot/dobcheck/pkg/validator"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	KindValidation Kind = "validation"
	KindRead       Kind = "read"
	KindUnexpected Kind = "unexpected"
)

// UnexpectedPrefix starts the message of every KindUnexpected error.
const UnexpectedPrefix = "Unexpected error: "

var ErrInvalidTransition = errors.New("invalid run state transition")

// Error is a classified pipeline failure. It carries only a message and, for
// KindRead, the cause reported by the source; wrapped context is dropped.
type Error struct {
	Kind    Kind
	Message string
	Cause   string
}

func (e *Error) Error() string {
	if e.Kind == KindRead && e.Cause != "" {
		return fmt.Sprintf("%s error: %s (%s)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// Is matches another *Error of the same Kind, so errors.Is(err, &Error{Kind: KindRead}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Classify maps any failure to exactly one classified error. It returns nil for nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var pe *Error
	if errors.As(err, &pe) {
		return &Error{Kind: pe.Kind, Message: pe.Message, Cause: pe.Cause}
	}

	var re *source.ReadError
	if errors.As(err, &re) {
		return &Error{Kind: KindRead, Message: re.Message, Cause: re.Cause}
	}

	if errs := validator.ExtractValidationErrors(err); errs != nil {
		return &Error{Kind: KindValidation, Message: errs.Message()}
	}

	return &Error{Kind: KindUnexpected, Message: UnexpectedPrefix + err.Error()}
}

// KindOf returns the classification of err, or "" for nil.
func KindOf(err error) Kind {
	if c := Classify(err); c != nil {
		return c.Kind
	}
	return ""
}

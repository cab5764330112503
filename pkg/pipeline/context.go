package pipeline

import (
	"context"

	"github.com/google/uuid"
)

type runIDKey struct{}

// RunIDKey is the context key under which run identifiers are stored, for use
// with logger.WithContextValue.
var RunIDKey any = runIDKey{}

// WithRunID stores a fresh random run identifier in ctx.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, runIDKey{}, id), id
}

// RunIDFromContext returns the run identifier stored in ctx, if any.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

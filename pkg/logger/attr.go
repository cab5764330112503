package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Resource records the resource identifier under the key "resource".
func Resource(id string) slog.Attr {
	return slog.String("resource", id)
}

// RunID records the pipeline run identifier under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}

// UserName records the user name under the key "user_name".
// If name is empty, it returns an empty Attr.
func UserName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("user_name", name)
}

// RecordIndex records the zero-based position of a record under the key "record_index".
func RecordIndex(i int) slog.Attr {
	return slog.Int("record_index", i)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// State records a state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Kind records an error classification under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

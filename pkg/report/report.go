package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dobcheck/pkg/pipeline"
	"github.com/dmitrymomot/dobcheck/pkg/user"
)

// Format selects how successful collections are rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case. Empty means json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// Reporter writes outcomes to a single writer.
type Reporter struct {
	out    io.Writer
	format Format
}

// Option configures a Reporter.
type Option func(*Reporter)

func WithFormat(f Format) Option {
	return func(r *Reporter) {
		if f != "" {
			r.format = f
		}
	}
}

// New creates a Reporter writing to out, or to os.Stdout when out is nil.
func New(out io.Writer, opts ...Option) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	r := &Reporter{out: out, format: FormatJSON}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReportSuccess writes the full collection in its original order.
func (r *Reporter) ReportSuccess(users user.Collection) error {
	if users == nil {
		users = user.Collection{}
	}

	var (
		b   []byte
		err error
	)
	switch r.format {
	case FormatYAML:
		b, err = yaml.Marshal(users)
	default:
		b, err = json.MarshalIndent(users, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	if _, err := r.out.Write(b); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

// ReportFailure classifies err and writes its kind-specific lines.
// A nil err writes nothing.
func (r *Reporter) ReportFailure(err error) error {
	c := pipeline.Classify(err)
	if c == nil {
		return nil
	}

	var text string
	switch c.Kind {
	case pipeline.KindRead:
		text = fmt.Sprintf("Read error occurred: %s\nOriginal error: %s\n", c.Message, c.Cause)
	case pipeline.KindValidation:
		text = fmt.Sprintf("Validation error occurred: %s\n", c.Message)
	default:
		text = fmt.Sprintf("Unexpected error: %s\n", c.Message)
	}

	if _, err := io.WriteString(r.out, text); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return nil
}

package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/dobcheck/pkg/pipeline"
	"github.com/dmitrymomot/dobcheck/pkg/report"
	"github.com/dmitrymomot/dobcheck/pkg/source"
	"github.com/dmitrymomot/dobcheck/pkg/user"
)

const usersJSON = `[{"name":"Alice","dateOfBirth":"1990/05/21","email":"alice@example.com"},{"name":"Carol","dateOfBirth":"2020/02/29"}]`

func decodedUsers(t *testing.T) user.Collection {
	t.Helper()
	var users user.Collection
	require.NoError(t, json.Unmarshal([]byte(usersJSON), &users))
	return users
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    report.Format
		wantErr bool
	}{
		{"", report.FormatJSON, false},
		{"json", report.FormatJSON, false},
		{"JSON", report.FormatJSON, false},
		{"yaml", report.FormatYAML, false},
		{"yml", report.FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := report.ParseFormat(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, report.ErrInvalidFormat, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestReportSuccess(t *testing.T) {
	t.Parallel()

	t.Run("json keeps collection unmodified", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		require.NoError(t, report.New(buf).ReportSuccess(decodedUsers(t)))

		assert.JSONEq(t, usersJSON, buf.String())
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("Alice")), bytes.Index(buf.Bytes(), []byte("Carol")))
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		require.NoError(t, report.New(buf, report.WithFormat(report.FormatYAML)).ReportSuccess(decodedUsers(t)))

		var back []map[string]string
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
		require.Len(t, back, 2)
		assert.Equal(t, "alice@example.com", back[0]["email"])
		assert.Equal(t, "2020/02/29", back[1]["dateOfBirth"])
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		require.NoError(t, report.New(buf).ReportSuccess(nil))
		assert.JSONEq(t, `[]`, buf.String())
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		err := report.New(failingWriter{}).ReportSuccess(decodedUsers(t))
		assert.ErrorIs(t, err, report.ErrWriteFailed)
	})
}

func TestReportFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "read",
			err:  &source.ReadError{Message: "Failed to fetch data", Cause: "Not Found"},
			want: "Read error occurred: Failed to fetch data\nOriginal error: Not Found\n",
		},
		{
			name: "validation",
			err:  &pipeline.Error{Kind: pipeline.KindValidation, Message: "Validation error for user Bob: Invalid date of birth"},
			want: "Validation error occurred: Validation error for user Bob: Invalid date of birth\n",
		},
		{
			name: "unexpected",
			err:  &pipeline.Error{Kind: pipeline.KindUnexpected, Message: "Unexpected error: fetch failed"},
			want: "Unexpected error: Unexpected error: fetch failed\n",
		},
		{
			name: "raw error is classified",
			err:  errors.New("boom"),
			want: "Unexpected error: Unexpected error: boom\n",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			require.NoError(t, report.New(buf).ReportFailure(tt.err))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		err := report.New(failingWriter{}).ReportFailure(errors.New("boom"))
		assert.ErrorIs(t, err, report.ErrWriteFailed)
	})
}

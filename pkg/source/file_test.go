package source_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dobcheck/pkg/source"
)

func writeUsers(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileTransport(t *testing.T) {
	t.Parallel()

	t.Run("absolute path", func(t *testing.T) {
		t.Parallel()
		path := writeUsers(t, t.TempDir(), "user.json", usersJSON)

		users, err := source.NewFetcher().Fetch(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alice", "Bob"}, users.Names())
	})

	t.Run("file URL", func(t *testing.T) {
		t.Parallel()
		path := writeUsers(t, t.TempDir(), "user.json", usersJSON)

		users, err := source.NewFetcher().Fetch(context.Background(), "file://"+filepath.ToSlash(path))
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("relative to base dir", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeUsers(t, dir, "user.json", usersJSON)

		f := source.NewFetcher(source.WithTransport(source.SchemeFile,
			source.NewFileTransport(source.WithBaseDir(dir))))
		users, err := f.Fetch(context.Background(), "user.json")
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("missing file is not found", func(t *testing.T) {
		t.Parallel()
		_, err := source.NewFetcher().Fetch(context.Background(), filepath.Join(t.TempDir(), "absent.json"))

		var re *source.ReadError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, "Failed to fetch data", re.Message)
		assert.Equal(t, "Not Found", re.Cause)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		_, err := source.NewFetcher().Fetch(context.Background(), t.TempDir())
		assert.ErrorIs(t, err, source.ErrIsDirectory)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := source.NewFileTransport().Open(context.Background(), "")
		assert.ErrorIs(t, err, source.ErrInvalidResource)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		path := writeUsers(t, t.TempDir(), "user.json", usersJSON)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := source.NewFileTransport().Open(ctx, path)
		assert.ErrorIs(t, err, source.ErrOperationCanceled)
	})

	t.Run("not an array", func(t *testing.T) {
		t.Parallel()
		path := writeUsers(t, t.TempDir(), "user.json", `{"name":"Alice"}`)

		_, err := source.NewFetcher().Fetch(context.Background(), path)
		assert.ErrorIs(t, err, source.ErrDecodeFailed)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		path := writeUsers(t, t.TempDir(), "user.json", `[{"name":"Alice","dateOfBirth":"1990/01/01"}] []`)

		_, err := source.NewFetcher().Fetch(context.Background(), path)
		require.Error(t, err)
		assert.ErrorIs(t, err, source.ErrDecodeFailed)
		assert.False(t, source.IsReadError(err))
	})
}

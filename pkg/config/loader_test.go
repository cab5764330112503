package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dobcheck/pkg/config"
)

type testConfig struct {
	Source  string `env:"TEST_CFG_SOURCE" envDefault:"user.json"`
	Verbose bool   `env:"TEST_CFG_VERBOSE" envDefault:"false"`
	Limit   int    `env:"TEST_CFG_LIMIT" envDefault:"10"`
}

type requiredConfig struct {
	Required string `env:"TEST_CFG_REQUIRED,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_CFG_SOURCE", "https://example.com/users.json")
	t.Setenv("TEST_CFG_VERBOSE", "true")
	t.Setenv("TEST_CFG_LIMIT", "3")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://example.com/users.json", cfg.Source)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 3, cfg.Limit)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_CFG_SOURCE")
	os.Unsetenv("TEST_CFG_VERBOSE")
	os.Unsetenv("TEST_CFG_LIMIT")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "user.json", cfg.Source)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 10, cfg.Limit)
}

func TestLoad_ReflectsCurrentEnvironment(t *testing.T) {
	t.Setenv("TEST_CFG_SOURCE", "first.json")
	var first testConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CFG_SOURCE", "second.json")
	var second testConfig
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first.json", first.Source)
	assert.Equal(t, "second.json", second.Source)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_CFG_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("TEST_CFG_LIMIT", "many")

	var cfg testConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("TEST_CFG_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads values from file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_CFG_FROM_FILE=from-file\n"), 0o600))
		t.Setenv("TEST_CFG_FROM_FILE", "")
		os.Unsetenv("TEST_CFG_FROM_FILE")

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "from-file", os.Getenv("TEST_CFG_FROM_FILE"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "absent.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: Load
// reads the default .env file once per process (a missing file is not an
// error) and then parses the environment into any struct using field tags.
// LoadEnv reads one or more explicit .env files before parsing.
//
//	type Config struct {
//	    Source string `env:"DOBCHECK_SOURCE" envDefault:"user.json"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Parsed values are not cached: every call reflects the current environment.
//
// Errors can be compared with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config

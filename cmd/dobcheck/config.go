package main

// Config is read from the environment (and an optional .env file).
type Config struct {
	Source       string `env:"DOBCHECK_SOURCE" envDefault:"user.json"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL"`
	ReportFormat string `env:"REPORT_FORMAT" envDefault:"json"`
	UserAgent    string `env:"HTTP_USER_AGENT" envDefault:"dobcheck"`

	S3 S3Config `envPrefix:"S3_"`
}

// S3Config enables the s3:// transport when Region is set.
type S3Config struct {
	Region         string `env:"REGION"`
	Endpoint       string `env:"ENDPOINT"`
	AccessKeyID    string `env:"ACCESS_KEY_ID"`
	SecretKey      string `env:"SECRET_KEY"`
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" envDefault:"false"`
}

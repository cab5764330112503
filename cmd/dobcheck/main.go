// Command dobcheck fetches a JSON list of users and validates every date of birth.
//
// The resource is taken from DOBCHECK_SOURCE (default "user.json") and may be a
// file path, an http(s) URL or an s3://bucket/key object. The outcome is
// printed to stdout; diagnostics go to stderr. A failed validation is a
// reported outcome, not a process failure, so the exit status stays zero.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/dobcheck/pkg/config"
	"github.com/dmitrymomot/dobcheck/pkg/logger"
	"github.com/dmitrymomot/dobcheck/pkg/pipeline"
	"github.com/dmitrymomot/dobcheck/pkg/report"
	"github.com/dmitrymomot/dobcheck/pkg/source"
)

const serviceName = "dobcheck"

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg, os.Stderr)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.Error("dobcheck setup failed", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.AppEnv, serviceName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(w),
		logger.WithContextExtractors(runIDFromContext),
	)
}

// runIDFromContext adds run_id to every record logged with a run context.
func runIDFromContext(ctx context.Context) (slog.Attr, bool) {
	id := pipeline.RunIDFromContext(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RunID(id), true
}

// run performs one pipeline run. It returns an error only when the run could
// not be set up; pipeline failures are reported to out.
func run(ctx context.Context, cfg Config, log *slog.Logger, out io.Writer) error {
	format, err := report.ParseFormat(cfg.ReportFormat)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(ctx, cfg, log)
	if err != nil {
		return err
	}

	ctx, _ = pipeline.WithRunID(ctx)
	rep := report.New(out, report.WithFormat(format))
	p := pipeline.New(fetcher,
		pipeline.WithReporter(rep),
		pipeline.WithLogger(log.With(logger.Component("pipeline"))),
	)

	log.InfoContext(ctx, "processing users", logger.Resource(cfg.Source))
	if _, err := p.ProcessUsers(ctx, cfg.Source); err != nil {
		return rep.ReportFailure(err)
	}
	return nil
}

func newFetcher(ctx context.Context, cfg Config, log *slog.Logger) (*source.Fetcher, error) {
	opts := []source.Option{
		source.WithLogger(log),
	}

	httpTransport := source.NewHTTPTransport(source.WithUserAgent(cfg.UserAgent))
	opts = append(opts,
		source.WithTransport(source.SchemeHTTP, httpTransport),
		source.WithTransport(source.SchemeHTTPS, httpTransport),
	)

	if cfg.S3.Region != "" {
		s3Transport, err := source.NewS3Transport(ctx, source.S3Config{
			Region:         cfg.S3.Region,
			AccessKeyID:    cfg.S3.AccessKeyID,
			SecretKey:      cfg.S3.SecretKey,
			Endpoint:       cfg.S3.Endpoint,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			return nil, err
		}
		opts = append(opts, source.WithTransport(source.SchemeS3, s3Transport))
	}

	return source.NewFetcher(opts...), nil
}

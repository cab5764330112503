// Package logger builds structured loggers on top of log/slog.
//
// New returns a *slog.Logger configured by functional options. The output
// format (text or json), level, static attributes and context extractors are
// all set through Option values. Context extractors run on every Handle call,
// which is how request-scoped values such as a run identifier reach each
// log line without being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "dobcheck"),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "users fetched",
//	    logger.Resource("user.json"),
//	    logger.Count(len(users)),
//	)
//
// Helper constructors in attr.go keep attribute keys consistent. Error and
// UserName return an empty slog.Attr for zero values, so callers can pass
// them without a nil check.
package logger

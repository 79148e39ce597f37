// Package logger builds slog loggers for the gateway and provides the
// attribute helpers used across it.
//
// New creates a *slog.Logger configured by Option functions: output format
// (json or text), minimum level, static attributes and ContextExtractor
// callbacks. Extractors run on every record and pull request-scoped values
// such as the chi request id out of the context passed to the *Context
// logging methods.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, "reqschema"),
//		logger.WithLevel(level),
//		logger.WithContextExtractors(logger.RequestIDExtractor()),
//	)
//
//	log.WarnContext(r.Context(), "request rejected",
//		logger.Field(verr.Field),
//		logger.Reason(verr.Reason),
//	)
//
// Attribute helpers (Error, RequestID, Field, Reason, Route and others) keep
// key names consistent. Helpers for optional values return an empty
// slog.Attr, which slog drops from the output.
package logger

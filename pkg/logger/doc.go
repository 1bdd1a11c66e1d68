// Package logger builds *slog.Logger instances from functional options or
// environment variables and provides attribute helpers for dispatcher
// diagnostics.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "billing"),
//	    logger.WithContextExtractors(logger.ContextValue("session", sessionKey)),
//	)
//	logger.SetAsDefault(log)
//
//	log.Error("subscriber failed",
//	    logger.Dispatcher("invoice.paid"),
//	    logger.Priority("high"),
//	    logger.Error(err),
//	)
//
// FromEnv does the same from LOG_LEVEL, LOG_FORMAT, APP_ENV and APP_NAME
// through pkg/config. Empty LOG_LEVEL and LOG_FORMAT fall back to the preset of
// APP_ENV: text at debug level for development, JSON at info otherwise.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler, applies static
// attributes, then wraps the handler with ContextHandler, which runs the
// registered ContextExtractor callbacks on every record before delegating.
//
// # Error Handling
//
// Helpers such as Error, Panic and Stack return an empty slog.Attr for empty
// input, so they can be passed unconditionally:
//
//	log.Info("dispatch finished", logger.Error(err))
package logger

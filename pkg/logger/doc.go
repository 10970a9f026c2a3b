// Package logger builds *slog.Logger instances through functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, attaches static attributes, and, when WithContextValue is used, wraps
// the handler so values stored in the context passed to InfoContext and friends
// are added to every record.
//
// # Usage
//
//	import "github.com/dmitrymomot/genling/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "genling"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "generated", logger.Word(w), logger.Attempt(3))
//
// # Configuration
//
//   • WithEnvironment – text/debug for development, JSON/info for staging and production.
//   • WithFormat, WithLevel, WithLevelName – override format and level.
//   • WithOutput – destination writer, stderr by default.
//   • WithAttr – static attributes.
//   • WithContextValue – attributes pulled from context.
//
// Discard returns a logger that drops everything; libraries use it as their
// default so they stay silent unless the caller hands them a logger.
//
// Error returns an empty Attr for a nil error, which slog drops, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger

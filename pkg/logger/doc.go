// Package logger builds the *slog.Logger used by the task engine and its
// binaries.
//
// New assembles a text or JSON slog handler from functional options, attaches
// static attributes, and wraps the handler in a decorator that pulls request- or
// attempt-scoped values (for example a dispatch id) out of context.Context on
// every record.
//
// Attribute helpers in attr.go (TaskID, TaskType, Priority, Result, Status,
// Attempt, Duration, Error, ...) keep key names consistent across the engine.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "taskengine"),
//	    logger.WithContextValue("dispatch_id", dispatchKey{}),
//	)
//	log.Info("task finished",
//	    logger.TaskType(content.Type()),
//	    logger.Result(result),
//	    logger.Duration(time.Since(start)),
//	)
//
// Config carries the same settings as environment variables and converts them
// to options with Config.Options.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger

// Package log wraps [log/slog] with a small, concurrency-safe logger used by
// every stache component.
//
// A [Logger] is an immutable value. Its configuration is fixed when it is
// created with [Make] and derived loggers are produced with [Logger.Wrap] and
// [Logger.With], so a Logger may be shared freely between goroutines.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("render complete", slog.String("path", path))
//
// The zero Logger discards everything. Library packages such as mustache
// accept a Logger through an option and stay silent when none is given.
//
// Package-level functions ([Info], [ErrorContext], ...) write to a default
// logger that the command line reconfigures with [Config].
package log

package suggest

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with index-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithIndex adds the index location to the logger.
func (l *Logger) WithIndex(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("index", name),
	}
}

// WithPrefix adds a prefix field to the logger.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		Logger: l.Logger.With("prefix", prefix),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs the construction of an index.
func (l *Logger) LogBuild(ctx context.Context, words, size int, duration time.Duration) {
	l.InfoContext(ctx, "index built",
		"words", words,
		"size", size,
		"duration", duration,
	)
}

// LogSave logs a save operation.
func (l *Logger) LogSave(ctx context.Context, name string, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"index", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "index saved",
			"index", name,
			"bytes", bytes,
		)
	}
}

// LogOpen logs an open operation. A missing index is not an error. An empty
// name omits the index field.
func (l *Logger) LogOpen(ctx context.Context, name string, size int, err error) {
	var attrs []any
	if name != "" {
		attrs = append(attrs, "index", name)
	}

	switch {
	case err == nil:
		l.DebugContext(ctx, "index opened", append(attrs, "size", size)...)
	case isNotFound(err):
		l.DebugContext(ctx, "index not found", attrs...)
	default:
		l.ErrorContext(ctx, "open failed", append(attrs, "error", err)...)
	}
}

// LogSuggest logs a suggest operation.
func (l *Logger) LogSuggest(ctx context.Context, prefix string, results int) {
	l.DebugContext(ctx, "suggest completed",
		"prefix", prefix,
		"results", results,
	)
}

package chainhash

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the field names the table uses.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr at info level is used.
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

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogResize logs a bucket array doubling.
func (l *Logger) LogResize(ctx context.Context, from, to, entries int) {
	l.DebugContext(ctx, "resizing table",
		"from", from,
		"to", to,
		"entries", entries,
	)
}

// LogGrowthRejected logs an insert refused because the table is at its
// maximum capacity.
func (l *Logger) LogGrowthRejected(ctx context.Context, err error) {
	l.WarnContext(ctx, "insert rejected",
		"error", err,
	)
}

// LogDestroy logs table teardown.
func (l *Logger) LogDestroy(ctx context.Context, capacity, entries int) {
	l.DebugContext(ctx, "table destroyed",
		"capacity", capacity,
		"entries", entries,
	)
}

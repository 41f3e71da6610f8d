package rbparams

import (
	"context"
	"iter"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with parameter-set helpers.
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

// LogParameters logs p at info level under the "parameters" key.
func (l *Logger) LogParameters(ctx context.Context, msg string, p *Parameters) {
	l.InfoContext(ctx, msg, "parameters", p)
}

// LogValue implements slog.LogValuer.
//
// The set is rendered as a group with "training" and "extra" sub-groups,
// each listing its parameters in ascending name order. Empty partitions are
// omitted by the standard handlers.
func (p *Parameters) LogValue() slog.Value {
	if p == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		groupAttr(Training.String(), p.All()),
		groupAttr(ExtraPartition.String(), p.Extra()),
	)
}

func groupAttr(key string, entries iter.Seq2[string, float64]) slog.Attr {
	var attrs []slog.Attr
	for name, v := range entries {
		attrs = append(attrs, slog.Float64(name, v))
	}
	return slog.Attr{Key: key, Value: slog.GroupValue(attrs...)}
}

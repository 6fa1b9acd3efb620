package quality

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with quality-report context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithPair adds the dimension pair fields to the logger.
func (l *Logger) WithPair(p Pair) *Logger {
	return &Logger{
		Logger: l.Logger.With("x", p.X, "y", p.Y),
	}
}

// LogPair logs the outcome of evaluating one dimension pair. Use it on a
// logger returned by WithPair.
func (l *Logger) LogPair(ctx context.Context, r PairReport, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pair evaluation failed",
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "pair evaluated",
		"sobol", r.Sobol,
		"random", r.Random,
		"net", r.Net,
	)
}

// LogReport logs a summary of a finished evaluation.
func (l *Logger) LogReport(ctx context.Context, reports []PairReport) {
	worse := 0
	for _, r := range reports {
		if r.Sobol >= r.Random {
			worse++
		}
	}
	if worse > 0 {
		l.WarnContext(ctx, "evaluation completed with pairs no better than random",
			"pairs", len(reports),
			"worse", worse,
		)
		return
	}
	l.InfoContext(ctx, "evaluation completed",
		"pairs", len(reports),
	)
}

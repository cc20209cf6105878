package logging

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is what the backend and the Library log through: leveled,
// context-aware records plus With for component fields. Anything that
// satisfies it can stand in for slog, such as a test recorder or a sink
// that drops attributes by key.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New wraps logger. A nil logger means slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard drops every record. Tests open the backend with it.
func Discard() Logger {
	return &slogLogger{logger: slog.New(slog.DiscardHandler)}
}

// OrDefault fills in a nil Config.Logger.
func OrDefault(l Logger) Logger {
	if l == nil {
		return New(nil)
	}
	return l
}

// slogLogger forwards to the *Context methods so handlers see ctx.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted stands in for a scalar, seed or digest under key. The record keeps
// the key, so it still shows which value was involved.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// RedactedValue is returned by group.Scalar's LogValue.
func RedactedValue() slog.Value {
	return slog.StringValue(redactedPlaceholder)
}

// Placeholder is the text printed in place of a secret: "[redacted]".
func Placeholder() string {
	return redactedPlaceholder
}

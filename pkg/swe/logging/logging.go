package logging

import (
	"context"
	"log/slog"
)

// Logger is what pkg/swe writes lifecycle and calculation events to.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Keys pkg/swe attaches to its events.
const (
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyState     = "state"
	KeyPath      = "path"
	KeyBody      = "body"
	KeyFlags     = "flags"
	KeyCode      = "code"
	KeyReason    = "reason"

	// Component is the KeyComponent value on every event.
	Component = "swe"
)

// New returns a Logger over an slog.Logger, tagged with the swe component.
// nil means slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return slogLogger{l: logger.With(KeyComponent, Component)}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return slogLogger{l: slog.New(slog.DiscardHandler)}
}

type slogLogger struct{ l *slog.Logger }

func (s slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.Log(ctx, slog.LevelDebug, msg, args...)
}

func (s slogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.Log(ctx, slog.LevelInfo, msg, args...)
}

func (s slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.Log(ctx, slog.LevelWarn, msg, args...)
}

func (s slogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.Log(ctx, slog.LevelError, msg, args...)
}

func (s slogLogger) With(args ...any) Logger {
	return slogLogger{l: s.l.With(args...)}
}

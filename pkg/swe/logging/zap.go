package logging

import (
	"context"

	"go.uber.org/zap"
)

// NewZap returns a Logger backed by z, tagged with the swe component.
// Key/value pairs become zap's loosely typed fields. nil means zap.L().
func NewZap(z *zap.Logger) Logger {
	if z == nil {
		z = zap.L()
	}
	return &zapLogger{sugar: z.Sugar().With(KeyComponent, Component)}
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{sugar: l.sugar.With(args...)}
}

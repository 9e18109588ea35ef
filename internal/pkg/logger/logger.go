package logger

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var global atomic.Pointer[zap.SugaredLogger]

func init() {
	global.Store(zap.NewNop().Sugar())
}

// Init replaces the process logger. Level is one of zap's level names.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	Set(l)
	return nil
}

func Set(l *zap.Logger) {
	global.Store(l.Sugar())
}

func Sync() {
	_ = global.Load().Sync()
}

// With returns a context whose logger carries the given key/value pairs.
func With(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey{}, fromContext(ctx).With(keysAndValues...))
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return global.Load()
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Debugf(format, args...)
}

func Info(ctx context.Context, msg string, keysAndValues ...any) {
	fromContext(ctx).Infow(msg, keysAndValues...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Infof(format, args...)
}

func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	fromContext(ctx).Warnw(msg, keysAndValues...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Warnf(format, args...)
}

func Error(ctx context.Context, msg string, keysAndValues ...any) {
	fromContext(ctx).Errorw(msg, keysAndValues...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Errorf(format, args...)
}

func Fatal(ctx context.Context, err error) {
	fromContext(ctx).Fatal(err)
}

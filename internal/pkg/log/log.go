package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger is the application-wide logging interface. Arguments after the
// message are key/value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

type zapLogger struct {
	z *zap.SugaredLogger
}

var global Logger = &zapLogger{z: zap.NewNop().Sugar()}

func SetupLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return logger
}

func Init(z *zap.Logger) {
	global = &zapLogger{z: z.Sugar()}
}

func GetLogger() Logger {
	return global
}

func (l *zapLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.z.Debugw(msg, args...)
}

func (l *zapLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.z.Infow(msg, args...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.z.Errorw(msg, args...)
}

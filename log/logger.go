package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultLevel = "warn"

type Logger interface {
	Debug(msg string, keyAndValues ...interface{})
	Info(msg string, keyAndValues ...interface{})
	Warn(msg string, keyAndValues ...interface{})
	Error(msg string, keyAndValues ...interface{})
	Fatal(msg string, keyAndValues ...interface{})
}

type ZapLogger struct {
	inner *zap.SugaredLogger
}

func NewZapLogger(log *zap.Logger) ZapLogger {
	return ZapLogger{inner: log.Sugar()}
}

// NewCommandLogger builds a JSON logger that writes to stderr at the given level. Standard output is
// left untouched so it only ever carries the projected document.
func NewCommandLogger(level string) (ZapLogger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return ZapLogger{}, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := cfg.Build()
	if err != nil {
		return ZapLogger{}, err
	}
	return NewZapLogger(zapLogger), nil
}

func NewNopLogger() ZapLogger {
	return NewZapLogger(zap.NewNop())
}

func (l ZapLogger) Debug(msg string, keyAndValues ...interface{}) {
	l.inner.Debugw(msg, keyAndValues...)
}

func (l ZapLogger) Info(msg string, keyAndValues ...interface{}) {
	l.inner.Infow(msg, keyAndValues...)
}

func (l ZapLogger) Warn(msg string, keyAndValues ...interface{}) {
	l.inner.Warnw(msg, keyAndValues...)
}

func (l ZapLogger) Error(msg string, keyAndValues ...interface{}) {
	l.inner.Errorw(msg, keyAndValues...)
}

func (l ZapLogger) Fatal(msg string, keyAndValues ...interface{}) {
	l.inner.Fatalw(msg, keyAndValues...)
}

// Sync flushes any buffered entries.
func (l ZapLogger) Sync() error {
	return l.inner.Sync()
}

package vantage

import "go.uber.org/zap"

// Logger is the sink for engine log output. Messages arrive fully formatted
// as "[LEVEL] [<type> <id>]: <message>".
type Logger interface {
	Log(msg string)
	Warn(msg string)
	Error(msg string)
}

// zapLogger adapts a *zap.Logger to the Logger interface.
type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps a zap logger as an engine Logger.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(msg string)   { z.l.Info(msg) }
func (z *zapLogger) Warn(msg string)  { z.l.Warn(msg) }
func (z *zapLogger) Error(msg string) { z.l.Error(msg) }

// newNopLogger returns the default silent logger. The engine produces no
// log output until Scene.SetLogger is called.
func newNopLogger() Logger {
	return &zapLogger{l: zap.NewNop()}
}

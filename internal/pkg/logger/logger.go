// Package logger adapts zap to the ports.Logger interface.
//
// Logs go to the given writer (stderr in the CLI) only when verbose is set;
// otherwise a no-op core is used so the report on stdout is the only output.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements ports.Logger.
type ZapLogger struct {
	base *zap.Logger
}

// New creates a console logger at debug level writing to out when verbose,
// a no-op logger otherwise.
func New(verbose bool, out io.Writer) *ZapLogger {
	if !verbose || out == nil {
		return &ZapLogger{base: zap.NewNop()}
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		zap.DebugLevel,
	)
	return &ZapLogger{base: zap.New(core)}
}

// NewWithCore wraps an existing core; used by tests with zaptest/observer.
func NewWithCore(core zapcore.Core) *ZapLogger {
	return &ZapLogger{base: zap.New(core)}
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.base.Error(msg, append(toFields(fields), zap.Error(err))...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.base.Sync()
}

func toFields(fields map[string]interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		out = append(out, zap.Any(key, value))
	}
	return out
}

package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/user/framecap/pkg/ports"
)

// JSONLogger writes one JSON object per message through zap.
// Messages are formatted but not translated.
type JSONLogger struct {
	z     *zap.Logger
	level ports.LogLevel
}

// NewJSON creates a JSON logger writing to w.
func NewJSON(level ports.LogLevel, w io.Writer) *JSONLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return &JSONLogger{z: zap.New(core), level: level}
}

// Debug logs a debug message.
func (l *JSONLogger) Debug(msg string, args ...interface{}) {
	if l.level > ports.LevelDebug {
		return
	}
	l.z.Debug(fmt.Sprintf(msg, args...))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, args ...interface{}) {
	if l.level > ports.LevelInfo {
		return
	}
	l.z.Info(fmt.Sprintf(msg, args...))
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, args ...interface{}) {
	if l.level > ports.LevelWarn {
		return
	}
	l.z.Warn(fmt.Sprintf(msg, args...))
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, args ...interface{}) {
	if l.level > ports.LevelError {
		return
	}
	l.z.Error(fmt.Sprintf(msg, args...))
}

// WithComponent returns a logger that adds a "component" field.
func (l *JSONLogger) WithComponent(component string) ports.Logger {
	return &JSONLogger{
		z:     l.z.With(zap.String("component", component)),
		level: l.level,
	}
}

var _ ports.Logger = (*JSONLogger)(nil)

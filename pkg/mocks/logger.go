package mocks

import (
	"fmt"
	"sync"

	"github.com/user/framecap/pkg/ports"
)

type logStore struct {
	mu    sync.Mutex
	lines []string
}

// Logger records formatted log lines for assertions.
type Logger struct {
	component string
	store     *logStore
}

// NewLogger creates a recording logger.
func NewLogger() *Logger {
	return &Logger{store: &logStore{}}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record("debug", msg, args) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record("info", msg, args) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record("warn", msg, args) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record("error", msg, args) }

func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{component: component, store: l.store}
}

func (l *Logger) record(level, msg string, args []interface{}) {
	line := fmt.Sprintf(msg, args...)
	if l.component != "" {
		line = "[" + l.component + "] " + line
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.lines = append(l.store.lines, level+": "+line)
}

// Lines returns every recorded line.
func (l *Logger) Lines() []string {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return append([]string(nil), l.store.lines...)
}

var _ ports.Logger = (*Logger)(nil)

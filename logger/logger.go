package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

var LoggerEnabled = true

type DefaultLogger struct {
	name string
	out  *log.Logger
}

func NewDefaultLogger(name string) *DefaultLogger {
	return NewDefaultLoggerWithWriter(name, os.Stderr)
}

// NewDefaultLoggerWithWriter builds a DefaultLogger that writes to w.
func NewDefaultLoggerWithWriter(name string, w io.Writer) *DefaultLogger {
	out := log.NewWithOptions(w, log.Options{
		Prefix: name,
		Level:  log.DebugLevel,
	})
	return &DefaultLogger{name: name, out: out}
}

func (d *DefaultLogger) Debug(format string, args ...any) {
	if LoggerEnabled {
		d.out.Debugf(format, args...)
	}
}

func (d *DefaultLogger) Info(format string, args ...any) {
	if LoggerEnabled {
		d.out.Infof(format, args...)
	}
}

func (d *DefaultLogger) Warn(format string, args ...any) {
	if LoggerEnabled {
		d.out.Warnf(format, args...)
	}
}

func (d *DefaultLogger) Error(format string, args ...any) {
	if LoggerEnabled {
		d.out.Errorf(format, args...)
	}
}

// Nop discards every message.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}

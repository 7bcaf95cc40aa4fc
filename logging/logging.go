// Package logging provides the ambient logging seam used throughout
// rigidcore, grounded on Gekko3D's Logger interface. The core never
// requires a logger: every call site accepts a nil Logger and is a
// no-op in that case, so embedders who don't care about diagnostics
// pay nothing for them.
package logging

import (
	"log"
	"os"
)

// Logger is the minimal structured-logging seam the core calls into.
// Embedders may supply their own implementation (e.g. wrapping zap or
// zerolog); DefaultLogger is the stdlib-backed fallback.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger writes Debug/Info to stdout and Warn/Error to stderr,
// each tagged with a level prefix.
type DefaultLogger struct {
	debug  bool
	stdout *log.Logger
	stderr *log.Logger
}

// NewDefaultLogger builds a DefaultLogger with debug logging off.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		stdout: log.New(os.Stdout, "", log.LstdFlags),
		stderr: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool { return l.debug }
func (l *DefaultLogger) SetDebug(enabled bool) { l.debug = enabled }

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.stdout.Printf("[DEBUG] "+format, args...)
	}
}

func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.stdout.Printf("[INFO] "+format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.stderr.Printf("[WARN] "+format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.stderr.Printf("[ERROR] "+format, args...)
}

// Debugf is a nil-safe helper: callers hold a possibly-nil Logger
// field and want to log without a guard at every call site.
func Debugf(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Debugf(format, args...)
	}
}

// Infof is the nil-safe Info counterpart of Debugf.
func Infof(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Infof(format, args...)
	}
}

// Warnf is the nil-safe Warn counterpart of Debugf.
func Warnf(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Warnf(format, args...)
	}
}

// Errorf is the nil-safe Error counterpart of Debugf.
func Errorf(l Logger, format string, args ...interface{}) {
	if l != nil {
		l.Errorf(format, args...)
	}
}

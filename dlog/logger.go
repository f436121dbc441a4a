// Package dlog provides the small leveled-logging interface the core
// packages (scenario, runner) use for non-fatal diagnostics, independent of
// whatever logging library a CLI or embedding application prefers.
package dlog

import (
	"log"
	"os"
	"sync"
)

// Logger is implemented by anything that can emit debug/info/warn/error
// lines. DebugEnabled/SetDebug let a caller gate verbose output without
// every call site checking a flag itself.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger wraps the standard library's log.Logger with a
// mutex-guarded debug flag.
type DefaultLogger struct {
	mu    sync.Mutex
	debug bool
	out   *log.Logger
}

// NewDefaultLogger builds a DefaultLogger writing to stderr with a
// "determinisk: " prefix.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{out: log.New(os.Stderr, "determinisk: ", log.LstdFlags)}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enabled
}

func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Printf("DEBUG "+format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.out.Printf("INFO "+format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.out.Printf("WARN "+format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.out.Printf("ERROR "+format, args...)
}

// Package log implements waitkit's leveled, subsystem-scoped logger.
// Every goroutine-owning component (Dispatch workers, PosixSignal
// listeners, the config loader) logs through a package-qualified
// sub-logger — log.Dispatch, log.Path, log.Random, log.Config — built on
// the standard library's log.Output plumbing plus level gating, rather
// than a bespoke structured-logging dependency.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"sync/atomic"
)

// Level is the minimum severity a sub-logger will emit.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var globalLevel atomic.Int32

func init() {
	globalLevel.Store(int32(LevelInfo))
}

// SetLevel changes the minimum severity every sub-logger emits, process-wide.
func SetLevel(l Level) { globalLevel.Store(int32(l)) }

// Logger is a subsystem-scoped sub-logger: a name prefix plus the shared
// level gate and standard-library *log.Logger output.
type Logger struct {
	subsystem string
	out       *stdlog.Logger
}

func newLogger(subsystem string) *Logger {
	return &Logger{
		subsystem: subsystem,
		out:       stdlog.New(os.Stderr, "", stdlog.LstdFlags),
	}
}

func (l *Logger) log(level Level, format string, args ...any) {
	if int32(level) < globalLevel.Load() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.out.Printf("[%s] %s: %s", level, l.subsystem, msg)
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

// Package-qualified sub-loggers, one per subsystem that owns goroutines or
// reports operational events.
var (
	Dispatch = newLogger("dispatch")
	Channel  = newLogger("channel")
	Path     = newLogger("path")
	Random   = newLogger("random")
	Config   = newLogger("config")
)

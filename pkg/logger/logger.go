package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger fans every record out to all attached sinks. A record is emitted
// only when its level clears both the logger threshold and the sink
// threshold, so with the default configuration every sink sees every record
// at INFO and above.
type Logger interface {
	Debug(name string, format string, args ...interface{})
	Info(name string, format string, args ...interface{})
	Warn(name string, format string, args ...interface{})
	Error(name string, format string, args ...interface{})
	Fatal(name string, format string, args ...interface{})

	// Named returns a logger bound to the given name. Named loggers share
	// the parent's sinks and threshold; records are written to the sinks
	// directly and never propagate anywhere else.
	Named(name string) *NamedLogger

	SetLevel(level LogLevel)
}

// sink is one output destination: a writer, a severity gate and a layout.
type sink struct {
	level     LogLevel
	formatter Formatter
	out       io.Writer
}

type coreLogger struct {
	mu    sync.Mutex
	level LogLevel
	sinks []*sink

	exit func(int)
}

func (cl *coreLogger) logf(level LogLevel, name string, format string, args ...interface{}) {
	if level < cl.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	entry := LogEntry{
		Timestamp: time.Now(),
		Name:      name,
		Level:     level.String(),
		Message:   msg,
	}
	entry.File, entry.Function, entry.Line = callSite()

	cl.mu.Lock()
	for _, s := range cl.sinks {
		if level < s.level {
			continue
		}
		line := s.formatter.Format(entry)
		_, _ = s.out.Write([]byte(line + "\n"))
	}
	cl.mu.Unlock()

	if level == FatalLevel {
		cl.exit(1)
	}
}

// callSite walks up the stack past this package's own frames to find the
// logging call. Frames from _test.go files are kept so the package's tests
// see themselves as the caller.
func callSite() (file, function string, line int) {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		inLogger := strings.Contains(f.Function, "/pkg/logger.") &&
			!strings.HasSuffix(f.File, "_test.go")
		if !inLogger {
			return filepath.Base(f.File), shortFuncName(f.Function), f.Line
		}
		if !more {
			break
		}
	}
	return "unknown", "unknown", 0
}

func shortFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	if i := strings.Index(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return full
}

func (cl *coreLogger) Debug(name string, format string, args ...interface{}) {
	cl.logf(DebugLevel, name, format, args...)
}
func (cl *coreLogger) Info(name string, format string, args ...interface{}) {
	cl.logf(InfoLevel, name, format, args...)
}
func (cl *coreLogger) Warn(name string, format string, args ...interface{}) {
	cl.logf(WarnLevel, name, format, args...)
}
func (cl *coreLogger) Error(name string, format string, args ...interface{}) {
	cl.logf(ErrorLevel, name, format, args...)
}
func (cl *coreLogger) Fatal(name string, format string, args ...interface{}) {
	cl.logf(FatalLevel, name, format, args...)
}

func (cl *coreLogger) Named(name string) *NamedLogger {
	return &NamedLogger{name: name, core: cl}
}

func (cl *coreLogger) SetLevel(l LogLevel) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.level = l
}

// NamedLogger is a logger bound to a fixed name. It writes to the shared
// sinks and nothing else; there is no logger hierarchy to propagate into.
type NamedLogger struct {
	name string
	core *coreLogger
}

func (nl *NamedLogger) Debug(format string, args ...interface{}) {
	nl.core.logf(DebugLevel, nl.name, format, args...)
}
func (nl *NamedLogger) Info(format string, args ...interface{}) {
	nl.core.logf(InfoLevel, nl.name, format, args...)
}
func (nl *NamedLogger) Warn(format string, args ...interface{}) {
	nl.core.logf(WarnLevel, nl.name, format, args...)
}
func (nl *NamedLogger) Error(format string, args ...interface{}) {
	nl.core.logf(ErrorLevel, nl.name, format, args...)
}
func (nl *NamedLogger) Fatal(format string, args ...interface{}) {
	nl.core.logf(FatalLevel, nl.name, format, args...)
}

func newCoreLogger(level LogLevel, sinks ...*sink) *coreLogger {
	return &coreLogger{
		level: level,
		sinks: sinks,
		exit:  os.Exit,
	}
}

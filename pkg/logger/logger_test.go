package logger

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(level LogLevel) (*coreLogger, *bytes.Buffer, *bytes.Buffer) {
	console := &bytes.Buffer{}
	file := &bytes.Buffer{}
	cl := newCoreLogger(level,
		&sink{level: level, formatter: &detailedFormatter{}, out: console},
		&sink{level: level, formatter: &textFormatter{}, out: file},
	)
	return cl, console, file
}

func TestBothSinksReceiveInfoAndAbove(t *testing.T) {
	cl, console, file := newTestLogger(InfoLevel)

	cl.Info("app", "hello %s", "world")
	cl.Warn("app", "heads up")
	cl.Error("app", "broken")

	for _, buf := range []*bytes.Buffer{console, file} {
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
		}
	}
	if !strings.Contains(console.String(), "hello world") {
		t.Errorf("console missing message: %q", console.String())
	}
}

func TestDebugFilteredAtInfo(t *testing.T) {
	cl, console, file := newTestLogger(InfoLevel)

	cl.Debug("app", "invisible")

	if console.Len() != 0 || file.Len() != 0 {
		t.Errorf("debug record leaked: console=%q file=%q", console.String(), file.String())
	}
}

func TestSetLevel(t *testing.T) {
	cl, console, _ := newTestLogger(InfoLevel)

	cl.SetLevel(DebugLevel)
	cl.Debug("app", "now visible")

	if !strings.Contains(console.String(), "now visible") {
		t.Errorf("debug record missing after SetLevel: %q", console.String())
	}
}

func TestConsoleHasSourceLocationFileDoesNot(t *testing.T) {
	cl, console, file := newTestLogger(InfoLevel)

	cl.Info("app", "where am I")

	if !strings.Contains(console.String(), "logger_test.go") {
		t.Errorf("console line missing source file: %q", console.String())
	}
	if strings.Contains(file.String(), "logger_test.go") {
		t.Errorf("file line must not contain source file: %q", file.String())
	}
}

func TestNamedLogger(t *testing.T) {
	cl, console, file := newTestLogger(InfoLevel)

	nl := cl.Named("worker")
	nl.Info("task %d done", 7)

	for _, out := range []string{console.String(), file.String()} {
		if !strings.Contains(out, " - worker - ") {
			t.Errorf("named logger output missing name: %q", out)
		}
		if !strings.Contains(out, "task 7 done") {
			t.Errorf("named logger output missing message: %q", out)
		}
	}
}

func TestPerSinkThreshold(t *testing.T) {
	console := &bytes.Buffer{}
	file := &bytes.Buffer{}
	cl := newCoreLogger(DebugLevel,
		&sink{level: DebugLevel, formatter: &textFormatter{}, out: console},
		&sink{level: ErrorLevel, formatter: &textFormatter{}, out: file},
	)

	cl.Debug("app", "chatty")
	cl.Error("app", "serious")

	if got := strings.Count(console.String(), "\n"); got != 2 {
		t.Errorf("console got %d lines, want 2", got)
	}
	if got := strings.Count(file.String(), "\n"); got != 1 {
		t.Errorf("error-gated sink got %d lines, want 1", got)
	}
}

func TestFatalCallsExit(t *testing.T) {
	cl, _, _ := newTestLogger(InfoLevel)

	exitCode := -1
	cl.exit = func(code int) { exitCode = code }

	cl.Fatal("app", "goodbye")

	if exitCode != 1 {
		t.Errorf("exit code = %d; want 1", exitCode)
	}
}

// File: logger_test.go
// Title: Core Logger Tests
// Description: Tests for the logger including level filtering, contextual
//              fields and derived logger isolation.

package log

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{Level: level, Format: FormatText, Output: buf})
	return logger, buf
}

func TestLoggerLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below the filter leaked: %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("messages above the filter missing: %q", out)
	}
}

func TestLoggerWithField(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	logger.WithField("file", "semi.truck").Info("parsing")

	if !strings.Contains(buf.String(), "file=semi.truck") {
		t.Errorf("context field missing: %q", buf.String())
	}
}

func TestLoggerWithFieldsMerge(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	derived := logger.WithFields(Fields{"a": 1, "b": 2})
	derived.Info("msg", Fields{"b": 3})

	out := buf.String()
	if !strings.Contains(out, "a=1") || !strings.Contains(out, "b=3") {
		t.Errorf("per-call fields must override context fields: %q", out)
	}
}

func TestDerivedLoggerIsolation(t *testing.T) {
	logger, buf := newTestLogger(LevelInfo)

	derived := logger.WithField("scope", "lint")
	logger.Info("plain")

	if strings.Contains(buf.String(), "scope=lint") {
		t.Errorf("parent logger picked up a derived field: %q", buf.String())
	}

	buf.Reset()
	derived.Info("scoped")
	if !strings.Contains(buf.String(), "scope=lint") {
		t.Errorf("derived logger lost its field: %q", buf.String())
	}
}

func TestWithLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelError)

	logger.WithLevel(LevelDebug).Debug("now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("WithLevel did not lower the filter: %q", buf.String())
	}
}

func TestNewWithConfigNilOutput(t *testing.T) {
	logger := NewWithConfig(Config{Level: LevelInfo})
	if logger.output == nil {
		t.Error("nil output must fall back to stderr")
	}
}

func TestGetDefault(t *testing.T) {
	if GetDefault() != GetDefault() {
		t.Error("GetDefault must return the same logger instance")
	}
}

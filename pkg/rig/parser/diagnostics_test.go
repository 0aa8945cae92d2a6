// File: diagnostics_test.go
// Title: Parse Diagnostics Tests
// Description: Tests for message formatting, the collector and the fan-out
//              sink.

package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rigworks/truckdef/pkg/core/log"
)

func TestMessageFormat(t *testing.T) {
	msg := Message{
		Severity: SeverityWarning,
		File:     "semi.truck",
		Line:     42,
		Keyword:  KeywordWheels,
		Text:     "Not enough arguments (got 10, 14 needed), skipping line",
	}
	want := "semi.truck:42 (wheels): Not enough arguments (got 10, 14 needed), skipping line"
	if got := msg.Format(); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityNotice, "notice"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollector(t *testing.T) {
	c := &Collector{}
	c.Report(Message{Severity: SeverityWarning})
	c.Report(Message{Severity: SeverityError})
	c.Report(Message{Severity: SeverityWarning})

	if got := c.Count(SeverityWarning); got != 2 {
		t.Errorf("Count(warning) = %d, want 2", got)
	}
	if got := c.Count(SeverityNotice); got != 0 {
		t.Errorf("Count(notice) = %d, want 0", got)
	}
	if !c.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestLogSinkSeverityRouting(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Output: buf})
	sink := NewLogSink(logger)

	sink.Report(Message{Severity: SeverityError, File: "a.truck", Line: 3, Text: "boom"})
	sink.Report(Message{Severity: SeverityNotice, File: "a.truck", Line: 4, Text: "fyi"})

	out := buf.String()
	if !strings.Contains(out, "ERR boom") {
		t.Errorf("error not routed to error level: %q", out)
	}
	if !strings.Contains(out, "INF fyi") {
		t.Errorf("notice not routed to info level: %q", out)
	}
	if !strings.Contains(out, "file=a.truck") || !strings.Contains(out, "line=3") {
		t.Errorf("location fields missing: %q", out)
	}
}

func TestTeeSink(t *testing.T) {
	a := &Collector{}
	b := &Collector{}
	tee := TeeSink{a, b}

	tee.Report(Message{Severity: SeverityError})

	if len(a.Messages) != 1 || len(b.Messages) != 1 {
		t.Errorf("message counts = %d/%d, want 1/1", len(a.Messages), len(b.Messages))
	}
}

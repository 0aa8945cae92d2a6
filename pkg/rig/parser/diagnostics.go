// File: diagnostics.go
// Title: Parse Diagnostics
// Description: Severity levels, the diagnostics sink contract and the two
//              bundled sinks: one collecting messages for tooling, one
//              forwarding to the structured logger. Every message is tagged
//              with file, line and the keyword being parsed.

package parser

import (
	"fmt"

	"github.com/rigworks/truckdef/pkg/core/log"
)

// Severity classifies a diagnostic message.
type Severity int

const (
	SeverityNotice Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityNotice:
		return "notice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is one diagnostic with its source location.
type Message struct {
	Severity Severity
	File     string
	Line     int
	Keyword  Keyword
	Text     string
}

// Format renders the message in the canonical "file:line (keyword): text"
// layout.
func (m *Message) Format() string {
	return fmt.Sprintf("%s:%d (%s): %s", m.File, m.Line, m.Keyword, m.Text)
}

// Sink receives diagnostics as the parser emits them.
type Sink interface {
	Report(msg Message)
}

// Collector is a Sink that retains every message, for linting and tests.
type Collector struct {
	Messages []Message
}

// Report appends the message.
func (c *Collector) Report(msg Message) {
	c.Messages = append(c.Messages, msg)
}

// Count returns the number of messages at the given severity.
func (c *Collector) Count(severity Severity) int {
	n := 0
	for i := range c.Messages {
		if c.Messages[i].Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether any message is an error.
func (c *Collector) HasErrors() bool {
	return c.Count(SeverityError) > 0
}

// logSink forwards diagnostics to a structured logger.
type logSink struct {
	logger *log.Logger
}

// NewLogSink returns a Sink writing through the given logger.
func NewLogSink(logger *log.Logger) Sink {
	return &logSink{logger: logger}
}

func (s *logSink) Report(msg Message) {
	fields := log.Fields{
		"file":    msg.File,
		"line":    msg.Line,
		"keyword": msg.Keyword.String(),
	}
	switch msg.Severity {
	case SeverityError:
		s.logger.Error(msg.Text, fields)
	case SeverityWarning:
		s.logger.Warn(msg.Text, fields)
	default:
		s.logger.Info(msg.Text, fields)
	}
}

// TeeSink fans one diagnostic stream out to several sinks.
type TeeSink []Sink

// Report forwards the message to every sink.
func (t TeeSink) Report(msg Message) {
	for _, s := range t {
		s.Report(msg)
	}
}

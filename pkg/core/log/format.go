// File: format.go
// Title: Log Output Formats
// Description: Defines output formats for log entries. Text format is the
//              default for command line use, JSON is available for tooling
//              that post-processes log output.

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText outputs human-readable text logs (default)
	FormatText Format = iota

	// FormatJSON outputs structured JSON logs
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", format)
	}
}

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Fields    Fields
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Formatter converts a log entry into its serialized form
type Formatter interface {
	Format(e *Entry) []byte
}

// TextFormatter renders entries as "time LEVEL message key=value ..."
type TextFormatter struct{}

// Format implements Formatter
func (f *TextFormatter) Format(e *Entry) []byte {
	var b strings.Builder
	b.WriteString(e.Timestamp.Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(e.Level.ShortString())
	b.WriteByte(' ')
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Fields[k])
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct{}

// Format implements Formatter
func (f *JSONFormatter) Format(e *Entry) []byte {
	obj := make(map[string]interface{}, len(e.Fields)+3)
	for k, v := range e.Fields {
		obj[k] = v
	}
	obj["time"] = e.Timestamp.Format(time.RFC3339)
	obj["level"] = e.Level.String()
	obj["message"] = e.Message

	data, err := json.Marshal(obj)
	if err != nil {
		// Marshalling a map of printable values should not fail; fall back
		// to the text form rather than dropping the entry.
		return (&TextFormatter{}).Format(e)
	}
	return append(data, '\n')
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &TextFormatter{}
	}
}

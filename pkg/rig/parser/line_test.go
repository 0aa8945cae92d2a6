// File: line_test.go
// Title: Line Sanitizer Tests
// Description: Tests for comment trimming and line sanitization, including
//              the historic trailing-slash truncation behavior.

package parser

import (
	"testing"
)

func TestTrimTrailingComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "No comment",
			input: "nodes",
			want:  "nodes",
		},
		{
			name:  "Semicolon comment",
			input: "1, 0, 0, 0 ;ref node",
			want:  "1, 0, 0, 0 ",
		},
		{
			name:  "Semicolon at line start",
			input: ";only a comment",
			want:  "",
		},
		{
			name:  "Escaped semicolon kept",
			input: `value\;more ;cut here`,
			want:  `value\;more `,
		},
		{
			name:  "Double slash comment",
			input: "abc //cmt",
			want:  "abc",
		},
		{
			name:  "Repeated slashes collapse",
			input: "abc ////cmt",
			want:  "abc",
		},
		{
			name:  "Bare slash truncates mid token",
			input: "abc/def",
			want:  "abc",
		},
		{
			name:  "Path argument loses its tail",
			input: "mesh trucks/cab.mesh",
			want:  "mesh trucks",
		},
		{
			name:  "Slash-only line",
			input: "// note",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimTrailingComment(tt.input); got != tt.want {
				t.Errorf("trimTrailingComment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain line",
			input: "nodes",
			want:  "nodes",
		},
		{
			name:  "Leading whitespace trimmed",
			input: "\t  globals",
			want:  "globals",
		},
		{
			name:  "Trailing whitespace trimmed",
			input: "globals \t\r",
			want:  "globals",
		},
		{
			name:  "Empty line",
			input: "",
			want:  "",
		},
		{
			name:  "Whitespace only",
			input: "   \t",
			want:  "",
		},
		{
			name:  "Whole-line semicolon comment",
			input: "; authors note",
			want:  "",
		},
		{
			name:  "Whole-line slash comment",
			input: "// generated",
			want:  "",
		},
		{
			name:  "Indented comment",
			input: "   ;indented",
			want:  "",
		},
		{
			name:  "Inline comment stripped",
			input: "1, 2.0, 0, 0 ;the first node",
			want:  "1, 2.0, 0, 0",
		},
		{
			name:  "Invalid UTF-8 replaced",
			input: "name \xff\xfe here",
			want:  "name ? here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLine(tt.input); got != tt.want {
				t.Errorf("sanitizeLine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeLineTruncatesLongInput(t *testing.T) {
	raw := make([]byte, lineBufferLength+500)
	for i := range raw {
		raw[i] = 'a'
	}
	got := sanitizeLine(string(raw))
	if len(got) != lineBufferLength {
		t.Errorf("sanitized length = %d, want %d", len(got), lineBufferLength)
	}
}

// File: keyword_test.go
// Title: Keyword Registry Tests
// Description: Tests for keyword identification including the
//              case-insensitive fallback and separator handling.

package parser

import (
	"testing"
)

func TestIdentifyKeyword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Keyword
	}{
		{
			name:  "Plain section",
			input: "nodes",
			want:  KeywordNodes,
		},
		{
			name:  "Uppercase falls back",
			input: "NODES",
			want:  KeywordNodes,
		},
		{
			name:  "Keyword with arguments",
			input: "set_beam_defaults 100000, -1, -1, -1",
			want:  KeywordSetBeamDefaults,
		},
		{
			name:  "Colon separated directive",
			input: "AntiLockBrakes 1000,50",
			want:  KeywordAntiLockBrakes,
		},
		{
			name:  "CamelCase canonical spelling",
			input: "TractionControl 1000, 3",
			want:  KeywordTractionControl,
		},
		{
			name:  "CamelCase with odd casing",
			input: "tractioncontrol 1000, 3",
			want:  KeywordTractionControl,
		},
		{
			name:  "Not a keyword",
			input: "1, 2, 3",
			want:  KeywordInvalid,
		},
		{
			name:  "Node name resembling nothing",
			input: "leftwheel 0 0 0",
			want:  KeywordInvalid,
		},
		{
			name:  "Empty line",
			input: "",
			want:  KeywordInvalid,
		},
		{
			name:  "Comma after keyword",
			input: "flares2,",
			want:  KeywordFlares2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := identifyKeyword(tt.input); got != tt.want {
				t.Errorf("identifyKeyword(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeywordString(t *testing.T) {
	tests := []struct {
		keyword Keyword
		want    string
	}{
		{KeywordNodes, "nodes"},
		{KeywordTractionControl, "TractionControl"},
		{KeywordAntiLockBrakes, "AntiLockBrakes"},
		{KeywordSetBeamDefaults, "set_beam_defaults"},
		{KeywordInvalid, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.keyword.String(); got != tt.want {
				t.Errorf("Keyword.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// File: tokenizer_test.go
// Title: Line Tokenizer Tests
// Description: Tests for argument span extraction with mixed separator
//              styles.

package parser

import (
	"reflect"
	"strings"
	"testing"
)

// tokenizeStrings runs tokenize and materializes the spans for comparison.
func tokenizeStrings(line string) []string {
	var spans [lineMaxArgs]argSpan
	n := tokenize(line, spans[:])
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = line[spans[i].start : spans[i].start+spans[i].length]
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "Space separated",
			input: "1 2 3",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "Comma separated",
			input: "1,2,3",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "Mixed separators",
			input: "1, 2\t3:4|5",
			want:  []string{"1", "2", "3", "4", "5"},
		},
		{
			name:  "Adjacent separators collapse",
			input: "1,,  ,2",
			want:  []string{"1", "2"},
		},
		{
			name:  "Leading and trailing separators",
			input: ", 1 2 ,",
			want:  []string{"1", "2"},
		},
		{
			name:  "Single token",
			input: "end_section",
			want:  []string{"end_section"},
		},
		{
			name:  "Empty line",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeStrings(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeArgCap(t *testing.T) {
	line := strings.Repeat("x ", lineMaxArgs+10)
	got := tokenizeStrings(line)
	if len(got) != lineMaxArgs {
		t.Errorf("token count = %d, want cap %d", len(got), lineMaxArgs)
	}
}

// File: tokenizer.go
// Title: Line Tokenizer
// Description: Splits a sanitized line into argument spans. Space, tab, ':',
//              '|' and ',' all separate arguments and adjacent separators
//              collapse, so classic and comma-styled files tokenize the same
//              way.

package parser

// lineMaxArgs caps the number of arguments recognized on one line; anything
// beyond the cap is ignored.
const lineMaxArgs = 64

// argSpan is a half-open byte range into the current line.
type argSpan struct {
	start  int
	length int
}

// tokenize fills args with the argument spans of line and returns the count.
// args must have room for lineMaxArgs entries.
func tokenize(line string, args []argSpan) int {
	n := 0
	inToken := false
	start := 0
	for i := 0; i < len(line); i++ {
		if isSeparator(line[i]) {
			if inToken {
				args[n] = argSpan{start: start, length: i - start}
				n++
				inToken = false
				if n == lineMaxArgs {
					return n
				}
			}
			continue
		}
		if !inToken {
			start = i
			inToken = true
		}
	}
	if inToken && n < lineMaxArgs {
		args[n] = argSpan{start: start, length: len(line) - start}
		n++
	}
	return n
}

package pagebrief

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace collapses every whitespace run in s to a single
// separator: a newline when the run contained a line break, a space
// otherwise. Leading and trailing whitespace is dropped. All extractor
// implementations pass their output through this so the pipeline sees one
// canonical text form regardless of the extraction engine.
func NormalizeWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	pending := false
	newline := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			if r == '\n' || r == '\r' || r == '\v' || r == '\f' {
				newline = true
			}
			continue
		}
		if pending && sb.Len() > 0 {
			if newline {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		pending = false
		newline = false
		sb.WriteRune(r)
	}

	return sb.String()
}

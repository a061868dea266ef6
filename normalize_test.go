package pagebrief_test

import (
	"testing"

	"github.com/pagebrief/pagebrief"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", " \t\n  \n ", ""},
		{"collapses spaces", "a   b\t\tc", "a b c"},
		{"newline wins within a run", "a \n  b", "a\nb"},
		{"carriage returns count as newlines", "a\r\nb", "a\nb"},
		{"trims leading and trailing", "\n  hello world  \n", "hello world"},
		{"preserves unicode text", "café  世界", "café 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pagebrief.NormalizeWhitespace(tt.in))
		})
	}
}

func TestNormalizeWhitespace_Idempotent(t *testing.T) {
	t.Parallel()

	in := "  Some   page\n\n\ncontent with\t tabs\nand lines  "
	once := pagebrief.NormalizeWhitespace(in)

	assert.Equal(t, once, pagebrief.NormalizeWhitespace(once))
}

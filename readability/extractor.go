// Package readability provides a pagebrief.Extractor backed by
// go-readability's article scoring.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pagebrief/pagebrief"
)

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article text, normalized.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "readability: %v", err)
	}

	return pagebrief.NormalizeWhitespace(article.TextContent), nil
}

// Package trafilatura provides a pagebrief.Extractor backed by
// go-trafilatura's boilerplate-removal heuristics. It tends to isolate the
// main article better than plain tag filtering on news-style pages.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagebrief/pagebrief"
)

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as normalized
// plain text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// trafilatura also fails when it finds nothing worth keeping;
		// that is the no-content case, not a parse failure.
		if strings.Contains(err.Error(), "could not extract") {
			return "", nil
		}
		return "", pagebrief.Errorf(pagebrief.EEXTRACT, "trafilatura: %v", err)
	}

	return pagebrief.NormalizeWhitespace(result.ContentText), nil
}

package mock

import "github.com/pagebrief/pagebrief"

var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagebrief.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

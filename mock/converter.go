package mock

import "github.com/pagebrief/pagebrief"

var _ pagebrief.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagebrief.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package mock

import (
	"context"

	"github.com/pagebrief/pagebrief"
)

var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagebrief.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, instruction, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	return s.SummarizeFn(ctx, instruction, text)
}

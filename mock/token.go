package mock

import (
	"context"

	"github.com/pagebrief/pagebrief"
)

var _ pagebrief.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of pagebrief.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

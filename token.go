package pagebrief

import "context"

// TokenCounter counts tokens in text for a specific model. When wired into
// the pipeline, the reduce ceiling is interpreted in tokens instead of bytes.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

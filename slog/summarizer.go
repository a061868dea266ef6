// Package slog provides logging decorators for pagebrief interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagebrief/pagebrief"
)

// Ensure Summarizer implements pagebrief.Summarizer at compile time.
var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer wraps a pagebrief.Summarizer with structured logging of each
// backend call: input size, output size, duration, and failure code.
type Summarizer struct {
	next   pagebrief.Summarizer
	logger *slog.Logger
}

// NewSummarizer creates a new logging Summarizer.
func NewSummarizer(next pagebrief.Summarizer, logger *slog.Logger) *Summarizer {
	return &Summarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the outcome.
func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	begin := time.Now()
	out, err := s.next.Summarize(ctx, instruction, text)
	if err != nil {
		s.logger.Error("summarization call failed",
			"chars", len(text),
			"duration", time.Since(begin),
			"code", pagebrief.ErrorCode(err),
		)
		return "", err
	}

	s.logger.Info("summarization call",
		"chars", len(text),
		"summary_chars", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}

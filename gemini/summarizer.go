// Package gemini provides the Google Gemini implementation of
// pagebrief.Summarizer, plus a token counter for reduce-ceiling checks.
package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/pagebrief/pagebrief"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements pagebrief.Summarizer at compile time.
var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagebrief.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize issues one generation request with the instruction as the
// system prompt and the text as the user content.
func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	if text == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "text required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: text}},
		}},
		BuildConfig(instruction),
	)
	if err != nil {
		return "", classify(err)
	}
	if result == nil || result.Text() == "" {
		return "", pagebrief.Errorf(pagebrief.ESUMMARIZE, "gemini returned an empty result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for summarization calls.
func BuildConfig(instruction string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}

// classify maps a Gemini API failure onto the transient/permanent split the
// pipeline's retry policy needs. Rate limits and server errors are
// retryable; client errors (bad request, auth) are not.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500 {
			return pagebrief.Errorf(pagebrief.EUNAVAILABLE, "gemini: %v", err)
		}
		return pagebrief.Errorf(pagebrief.ESUMMARIZE, "gemini: %v", err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// Network-level failures carry no status; treat them as transient.
	return pagebrief.Errorf(pagebrief.EUNAVAILABLE, "gemini: %v", err)
}

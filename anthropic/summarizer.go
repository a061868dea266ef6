// Package anthropic provides a pagebrief.Summarizer backed by the Claude
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pagebrief/pagebrief"
)

// DefaultModel is used when no model is configured.
const DefaultModel = string(anthropic.ModelClaudeSonnet4_0)

// maxTokens bounds one summarization response.
const maxTokens = 2048

// Ensure Summarizer implements pagebrief.Summarizer at compile time.
var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagebrief.Summarizer using Claude.
type Summarizer struct {
	client *anthropic.Client
	model  string
}

// NewClient builds a Claude API client for the given key.
func NewClient(apiKey string) *anthropic.Client {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &client
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client *anthropic.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize issues one Messages request with the instruction as the system
// prompt and the text as the user message.
func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	if text == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "text required")
	}

	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: instruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", classify(err)
	}
	if len(message.Content) == 0 {
		return "", pagebrief.Errorf(pagebrief.ESUMMARIZE, "claude returned no content")
	}

	var sb strings.Builder
	for _, block := range message.Content {
		textBlock := block.AsText()
		sb.WriteString(textBlock.Text)
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", pagebrief.Errorf(pagebrief.ESUMMARIZE, "claude returned an empty summary")
	}
	return out, nil
}

// classify maps a Claude API failure onto the transient/permanent split the
// pipeline's retry policy needs.
func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || apiErr.StatusCode == 529 || apiErr.StatusCode >= 500 {
			return pagebrief.Errorf(pagebrief.EUNAVAILABLE, "claude: %v", err)
		}
		return pagebrief.Errorf(pagebrief.ESUMMARIZE, "claude: %v", err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// Network-level failures carry no status; treat them as transient.
	return pagebrief.Errorf(pagebrief.EUNAVAILABLE, "claude: %v", err)
}

// Package openai provides a pagebrief.Summarizer backed by any
// OpenAI-compatible chat-completion API. Pointing the client at a custom
// base URL serves providers like Together or local gateways.
package openai

import (
	"context"
	"errors"
	"strings"

	"github.com/pagebrief/pagebrief"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = openai.GPT4oMini

// ChatClient is the minimal surface of *openai.Client the summarizer
// needs. It exists so tests can substitute a fake and so any
// OpenAI-compatible backend can be adapted.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Summarizer implements pagebrief.Summarizer at compile time.
var _ pagebrief.Summarizer = (*Summarizer)(nil)

// Summarizer implements pagebrief.Summarizer over a chat-completion API.
type Summarizer struct {
	client ChatClient
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects
// DefaultModel.
func NewSummarizer(client ChatClient, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// NewClient builds an *openai.Client for the given key, optionally
// pointed at a non-default base URL.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Summarize issues one chat-completion request with the instruction as the
// system message and the text as the user message.
func (s *Summarizer) Summarize(ctx context.Context, instruction, text string) (string, error) {
	if text == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "text required")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.3,
		N:           1,
	})
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", pagebrief.Errorf(pagebrief.ESUMMARIZE, "backend returned no choices")
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", pagebrief.Errorf(pagebrief.ESUMMARIZE, "backend returned an empty summary")
	}
	return out, nil
}

// classify maps an API failure onto the transient/permanent split the
// pipeline's retry policy needs.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return byStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return byStatus(reqErr.HTTPStatusCode, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// Network-level failures carry no status; treat them as transient.
	return pagebrief.Errorf(pagebrief.EUNAVAILABLE, "chat completion: %v", err)
}

func byStatus(status int, err error) error {
	if status == 429 || status >= 500 {
		return pagebrief.Errorf(pagebrief.EUNAVAILABLE, "chat completion: %v", err)
	}
	return pagebrief.Errorf(pagebrief.ESUMMARIZE, "chat completion: %v", err)
}

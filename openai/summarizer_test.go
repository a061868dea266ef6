package openai_test

import (
	"context"
	"testing"

	pbopenai "github.com/pagebrief/pagebrief/openai"

	"github.com/pagebrief/pagebrief"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient is a ChatClient test double.
type fakeClient struct {
	fn func(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

func (f *fakeClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return f.fn(ctx, req)
}

func respondWith(content string) *fakeClient {
	return &fakeClient{fn: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
		return openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: content}},
			},
		}, nil
	}}
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("sends instruction as system message and text as user message", func(t *testing.T) {
		t.Parallel()

		var captured openai.ChatCompletionRequest
		client := &fakeClient{fn: func(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			captured = req
			return openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "a summary"}},
				},
			}, nil
		}}

		s := pbopenai.NewSummarizer(client, "test-model")
		out, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "chunk text")

		require.NoError(t, err)
		assert.Equal(t, "a summary", out)
		assert.Equal(t, "test-model", captured.Model)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
		assert.Equal(t, pagebrief.MapInstruction, captured.Messages[0].Content)
		assert.Equal(t, openai.ChatMessageRoleUser, captured.Messages[1].Role)
		assert.Equal(t, "chunk text", captured.Messages[1].Content)
	})

	t.Run("trims the returned summary", func(t *testing.T) {
		t.Parallel()

		s := pbopenai.NewSummarizer(respondWith("  padded  \n"), "")
		out, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "text")

		require.NoError(t, err)
		assert.Equal(t, "padded", out)
	})

	t.Run("requires text", func(t *testing.T) {
		t.Parallel()

		s := pbopenai.NewSummarizer(respondWith("x"), "")
		_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "")

		require.Error(t, err)
		assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
	})

	t.Run("rate limit is transient", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{fn: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
		}}

		s := pbopenai.NewSummarizer(client, "")
		_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "text")

		require.Error(t, err)
		assert.Equal(t, pagebrief.EUNAVAILABLE, pagebrief.ErrorCode(err))
	})

	t.Run("server error is transient", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{fn: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 503, Message: "overloaded"}
		}}

		s := pbopenai.NewSummarizer(client, "")
		_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "text")

		require.Error(t, err)
		assert.Equal(t, pagebrief.EUNAVAILABLE, pagebrief.ErrorCode(err))
	})

	t.Run("auth failure is permanent", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{fn: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, &openai.APIError{HTTPStatusCode: 401, Message: "invalid key"}
		}}

		s := pbopenai.NewSummarizer(client, "")
		_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "text")

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARIZE, pagebrief.ErrorCode(err))
	})

	t.Run("empty choice list is permanent", func(t *testing.T) {
		t.Parallel()

		client := &fakeClient{fn: func(_ context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			return openai.ChatCompletionResponse{}, nil
		}}

		s := pbopenai.NewSummarizer(client, "")
		_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "text")

		require.Error(t, err)
		assert.Equal(t, pagebrief.ESUMMARIZE, pagebrief.ErrorCode(err))
	})
}

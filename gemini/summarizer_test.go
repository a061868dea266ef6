package gemini_test

import (
	"context"
	"testing"

	"github.com/pagebrief/pagebrief"
	"github.com/pagebrief/pagebrief/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_RequiresText(t *testing.T) {
	t.Parallel()

	s := gemini.NewSummarizer(nil, "") // nil client ok for this test

	_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "")

	require.Error(t, err)
	assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
	assert.Contains(t, pagebrief.ErrorMessage(err), "text required")
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(pagebrief.MapInstruction)

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, pagebrief.MapInstruction, config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.3, float64(*config.Temperature), 0.001)
}

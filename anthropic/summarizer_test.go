package anthropic_test

import (
	"context"
	"testing"

	pbanthropic "github.com/pagebrief/pagebrief/anthropic"

	"github.com/pagebrief/pagebrief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizer_Summarize_RequiresText(t *testing.T) {
	t.Parallel()

	s := pbanthropic.NewSummarizer(nil, "") // nil client ok for this test

	_, err := s.Summarize(context.Background(), pagebrief.MapInstruction, "")

	require.Error(t, err)
	assert.Equal(t, pagebrief.EINVALID, pagebrief.ErrorCode(err))
	assert.Contains(t, pagebrief.ErrorMessage(err), "text required")
}

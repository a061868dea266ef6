package pagebrief_test

import (
	"testing"

	"github.com/pagebrief/pagebrief"
	"github.com/stretchr/testify/assert"
)

func TestCombinePartials_OrdersByIndex(t *testing.T) {
	t.Parallel()

	// Deliberately out of order, as if chunks completed concurrently.
	partials := []pagebrief.PartialSummary{
		{Index: 2, Text: "third"},
		{Index: 0, Text: "first"},
		{Index: 1, Text: "second"},
	}

	assert.Equal(t, "first\n\nsecond\n\nthird", pagebrief.CombinePartials(partials))
}

func TestCombinePartials_SkipsEmptyParts(t *testing.T) {
	t.Parallel()

	partials := []pagebrief.PartialSummary{
		{Index: 0, Text: "first"},
		{Index: 1, Text: ""},
		{Index: 2, Text: "third"},
	}

	assert.Equal(t, "first\n\nthird", pagebrief.CombinePartials(partials))
}

func TestCombinePartials_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagebrief.CombinePartials(nil))
}

func TestCombinePartials_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	partials := []pagebrief.PartialSummary{
		{Index: 1, Text: "b"},
		{Index: 0, Text: "a"},
	}
	_ = pagebrief.CombinePartials(partials)

	assert.Equal(t, 1, partials[0].Index, "input slice order must be preserved")
}

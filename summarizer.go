package pagebrief

import (
	"context"
	"sort"
	"strings"
)

// Instructions sent to the summarization backend. The map instruction is
// applied per chunk; the reduce instruction combines partial summaries.
const (
	MapInstruction = "Summarize the following excerpt from a web page concisely. " +
		"Preserve key facts, names, and numbers. Respond with the summary only."

	ReduceInstruction = "The following are partial summaries of consecutive sections " +
		"of a single web page. Combine them into one coherent, concise summary of " +
		"the whole page. Respond with the summary only."
)

// Summarizer is the LLM backend boundary: one logical operation that
// summarizes text under an instruction and returns text.
//
// Implementations must distinguish transient failures (timeouts, rate
// limits, 5xx-equivalents) from permanent ones by returning EUNAVAILABLE
// for the former and ESUMMARIZE for the latter; the pipeline retries only
// transient failures.
type Summarizer interface {
	Summarize(ctx context.Context, instruction, text string) (string, error)
}

// PartialSummary is the result of summarizing one chunk, tagged with the
// originating chunk index for deterministic reduce ordering.
type PartialSummary struct {
	Index int
	Text  string
}

// CombinePartials concatenates partial summaries in ascending index order.
// The input is not assumed sorted; completion order never affects output.
func CombinePartials(partials []PartialSummary) string {
	sorted := make([]PartialSummary, len(partials))
	copy(sorted, partials)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	parts := make([]string, 0, len(sorted))
	for _, p := range sorted {
		if p.Text == "" {
			continue
		}
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

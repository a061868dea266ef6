package main

import (
	"fmt"

	"github.com/pagebrief/pagebrief"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	html, err := fetchPage(deps, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %s\n", c.URL, pagebrief.ErrorMessage(err))
		return err
	}

	summary, err := deps.Pipeline.Run(deps.Ctx, &pagebrief.Document{URL: c.URL, HTML: html})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary.Text)

	if c.Stats {
		fmt.Fprintf(deps.Stderr, "chunks=%d llm_calls=%d reduced=%t hash=%s\n",
			summary.Chunks, summary.LLMCalls, summary.Reduced, summary.ContentHash)
	}

	return nil
}

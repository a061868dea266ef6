package main

import (
	"fmt"

	"github.com/pagebrief/pagebrief"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := fetchPage(deps, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error fetching %s: %s\n", c.URL, pagebrief.ErrorMessage(err))
		return err
	}

	if c.Markdown {
		markdown, err := deps.Converter.Convert(html)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	content, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
		return err
	}
	if content == "" {
		fmt.Fprintf(deps.Stderr, "error: no readable content found at %s\n", c.URL)
		return pagebrief.Errorf(pagebrief.ENOCONTENT, "no readable content found at %s", c.URL)
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}

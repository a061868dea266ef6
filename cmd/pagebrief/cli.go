package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pagebrief/pagebrief"
	"github.com/pagebrief/pagebrief/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Fetcher     pagebrief.Fetcher
	Extractor   pagebrief.Extractor
	Converter   pagebrief.Converter
	Pipeline    *pipeline.Pipeline
	FetchDelays []time.Duration
}

// fetchPage retrieves the page HTML, retrying failed fetches with backoff.
func fetchPage(deps *Dependencies, url string) (string, error) {
	return pipeline.FetchWithRetryDelays(deps.Ctx, url, deps.Fetcher.Fetch,
		func(format string, args ...any) {
			fmt.Fprintf(deps.Stderr, format+"\n", args...)
		}, deps.FetchDelays)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Summarize SummarizeCmd `cmd:"" help:"Fetch a page and print its summary"`
	Extract   ExtractCmd   `cmd:"" help:"Fetch a page and print its readable content"`
	UI        UICmd        `cmd:"" name:"ui" help:"Interactive terminal UI"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL     string  `arg:"" help:"Page URL"`
	Backend string  `short:"b" default:"gemini" enum:"gemini,openai,anthropic" help:"Summarization backend"`
	Model   string  `short:"m" help:"Override the backend's default model"`
	Engine  string  `short:"e" default:"goquery" enum:"goquery,trafilatura,readability" help:"Content extraction engine"`
	Config  string  `short:"c" type:"path" help:"YAML config file with pipeline settings"`
	RPS     float64 `name:"rps" help:"Cap backend calls at this many requests per second"`
	Browser bool    `help:"Render the page in a headless browser before extracting"`
	Verbose bool    `short:"v" help:"Log pipeline progress and backend calls"`
	Stats   bool    `help:"Print chunk and call counts after the summary"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Engine   string `short:"e" default:"goquery" enum:"goquery,trafilatura,readability" help:"Content extraction engine"`
	Markdown bool   `help:"Convert the page to Markdown instead of plain text"`
	Browser  bool   `help:"Render the page in a headless browser before extracting"`
}

// UICmd is the "ui" subcommand.
type UICmd struct {
	Backend string `short:"b" default:"gemini" enum:"gemini,openai,anthropic" help:"Summarization backend"`
	Model   string `short:"m" help:"Override the backend's default model"`
	Engine  string `short:"e" default:"goquery" enum:"goquery,trafilatura,readability" help:"Content extraction engine"`
	Config  string `short:"c" type:"path" help:"YAML config file with pipeline settings"`
	Browser bool   `help:"Render pages in a headless browser before extracting"`
}

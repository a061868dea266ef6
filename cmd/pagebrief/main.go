package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pagebrief/pagebrief"
	"github.com/pagebrief/pagebrief/anthropic"
	"github.com/pagebrief/pagebrief/gemini"
	"github.com/pagebrief/pagebrief/goquery"
	pbhttp "github.com/pagebrief/pagebrief/http"
	"github.com/pagebrief/pagebrief/htmltomarkdown"
	"github.com/pagebrief/pagebrief/openai"
	"github.com/pagebrief/pagebrief/pipeline"
	"github.com/pagebrief/pagebrief/readability"
	"github.com/pagebrief/pagebrief/rod"
	pbslog "github.com/pagebrief/pagebrief/slog"
	"github.com/pagebrief/pagebrief/trafilatura"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Overrides for end-to-end testing. When set, Run wires these
	// instead of the real implementations.
	Fetcher    pagebrief.Fetcher
	Extractor  pagebrief.Extractor
	Summarizer pagebrief.Summarizer

	// FetchRetryDelays is the backoff schedule for failed page fetches.
	FetchRetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		FetchRetryDelays: pipeline.DefaultRetryDelays(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// API keys may live in a .env file; a missing file is fine.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:         ctx,
		Stdout:      stdout,
		Stderr:      stderr,
		FetchDelays: m.FetchRetryDelays,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagebrief"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagebrief --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire command-specific dependencies based on command
	switch cmd {
	case "summarize":
		if err := m.wireFetcher(deps, cli.Summarize.Browser); err != nil {
			return err
		}
		deps.Extractor = m.newExtractor(cli.Summarize.Engine)
		if err := m.wirePipeline(deps, &cli.Summarize); err != nil {
			return err
		}

	case "extract":
		if err := m.wireFetcher(deps, cli.Extract.Browser); err != nil {
			return err
		}
		deps.Extractor = m.newExtractor(cli.Extract.Engine)
		deps.Converter = htmltomarkdown.NewConverter()

	case "ui":
		if err := m.wireFetcher(deps, cli.UI.Browser); err != nil {
			return err
		}
		deps.Extractor = m.newExtractor(cli.UI.Engine)
		opts := SummarizeCmd{
			Backend: cli.UI.Backend,
			Model:   cli.UI.Model,
			Config:  cli.UI.Config,
		}
		if err := m.wirePipeline(deps, &opts); err != nil {
			return err
		}
	}

	if deps.Fetcher != nil {
		defer deps.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

// wireFetcher selects the page fetcher. The headless browser handles
// JavaScript-rendered pages; plain HTTP covers everything else and is the
// fallback when no browser is installed.
func (m *Main) wireFetcher(deps *Dependencies, browser bool) error {
	if m.Fetcher != nil {
		deps.Fetcher = m.Fetcher
		return nil
	}

	if browser {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --browser. Falling back to plain HTTP.")
			deps.Fetcher = pbhttp.NewFetcher()
			return nil
		}
		deps.Fetcher = fetcher
		return nil
	}

	deps.Fetcher = pbhttp.NewFetcher()
	return nil
}

// newExtractor selects the content extraction engine.
func (m *Main) newExtractor(engine string) pagebrief.Extractor {
	if m.Extractor != nil {
		return m.Extractor
	}
	switch engine {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// wirePipeline builds the summarization pipeline from the command's flags.
func (m *Main) wirePipeline(deps *Dependencies, c *SummarizeCmd) error {
	config, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	summarizer := m.Summarizer
	if summarizer == nil {
		summarizer, err = newSummarizer(deps.Ctx, c.Backend, c.Model, deps.Stderr)
		if err != nil {
			return err
		}
	}

	var opts []pipeline.Option
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		summarizer = pbslog.NewSummarizer(summarizer, logger)
		opts = append(opts, pipeline.WithLogger(logger))
	}
	if c.RPS > 0 {
		opts = append(opts, pipeline.WithLimiter(rate.NewLimiter(rate.Limit(c.RPS), 1)))
	}
	if m.Summarizer == nil && c.Backend == "gemini" {
		tokenCounter, err := gemini.NewTokenCounter(c.Model)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}
		opts = append(opts, pipeline.WithTokenCounter(tokenCounter))
	}

	p, err := pipeline.New(deps.Extractor, summarizer, config, opts...)
	if err != nil {
		return err
	}
	deps.Pipeline = p
	return nil
}

// newSummarizer builds the summarization backend named by the flag. Each
// backend reads its API key from the environment.
func newSummarizer(ctx context.Context, backend, model string, stderr io.Writer) (pagebrief.Summarizer, error) {
	switch backend {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set.")
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		client := openai.NewClient(apiKey, os.Getenv("OPENAI_BASE_URL"))
		return openai.NewSummarizer(client, model), nil

	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY environment variable not set.")
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
		return anthropic.NewSummarizer(anthropic.NewClient(apiKey), model), nil

	default: // gemini
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewSummarizer(client, model), nil
	}
}

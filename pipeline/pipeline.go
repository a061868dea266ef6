// Package pipeline orchestrates the extract → chunk → summarize → reduce
// flow that turns one web page into one summary.
//
// The failure policy is strict: a chunk whose summarization fails
// permanently aborts the whole invocation. A summary that silently omits
// part of the page is worse than a visible failure.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/pagebrief/pagebrief"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Stage names attached to pipeline errors for diagnosability.
const (
	StageExtract   = "extract"
	StageChunk     = "chunk"
	StageSummarize = "summarize"
	StageReduce    = "reduce"
)

// Pipeline runs the summarization flow for one document at a time. A
// Pipeline is safe for concurrent use; each invocation owns its own state.
type Pipeline struct {
	extractor   pagebrief.Extractor
	summarizer  pagebrief.Summarizer
	tokens      pagebrief.TokenCounter
	limiter     *rate.Limiter
	logger      *slog.Logger
	config      pagebrief.Config
	retryDelays []time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTokenCounter makes the reduce ceiling a token budget instead of a
// byte budget.
func WithTokenCounter(tc pagebrief.TokenCounter) Option {
	return func(p *Pipeline) { p.tokens = tc }
}

// WithLimiter installs an admission gate applied before every backend
// call, bounding the request rate against the external backend.
func WithLimiter(l *rate.Limiter) Option {
	return func(p *Pipeline) { p.limiter = l }
}

// WithLogger enables structured logging of pipeline progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithRetryDelays overrides the backoff schedule for backend calls.
// Tests use zero delays to avoid real waits.
func WithRetryDelays(delays []time.Duration) Option {
	return func(p *Pipeline) { p.retryDelays = delays }
}

// New creates a Pipeline. Invalid configuration fails here, never mid-run.
func New(extractor pagebrief.Extractor, summarizer pagebrief.Summarizer, config pagebrief.Config, opts ...Option) (*Pipeline, error) {
	if extractor == nil {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "extractor required")
	}
	if summarizer == nil {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "summarizer required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Pipeline{
		extractor:  extractor,
		summarizer: summarizer,
		config:     config,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.retryDelays == nil {
		p.retryDelays = BackoffDelays(config.MaxRetries, time.Second, 8*time.Second)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}
	return p, nil
}

// Run executes the full pipeline for one document and returns the final
// summary. Errors carry the failing stage name and an error code; a
// canceled context surfaces as ECANCELED.
func (p *Pipeline) Run(ctx context.Context, doc *pagebrief.Document) (*pagebrief.Summary, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := p.extractor.Extract(doc.HTML)
	if err != nil {
		return nil, stageErr(StageExtract, err)
	}
	if text == "" {
		return nil, pagebrief.Errorf(pagebrief.ENOCONTENT, "no readable content found at %s", doc.URL)
	}

	chunks, err := pagebrief.SplitChunks(text, p.config.MaxChunkSize, p.config.Overlap)
	if err != nil {
		return nil, stageErr(StageChunk, err)
	}

	p.logger.Info("page chunked",
		"url", doc.URL,
		"chars", len(text),
		"chunks", len(chunks),
	)

	partials, err := p.mapChunks(ctx, chunks)
	if err != nil {
		return nil, stageErr(StageSummarize, err)
	}

	final, reduced, err := p.reduce(ctx, partials)
	if err != nil {
		return nil, stageErr(StageReduce, err)
	}

	calls := len(chunks)
	if reduced {
		calls++
	}

	return &pagebrief.Summary{
		ID:          uuid.New().String(),
		URL:         doc.URL,
		Text:        final,
		ContentHash: fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		Chunks:      len(chunks),
		LLMCalls:    calls,
		Reduced:     reduced,
	}, nil
}

// mapChunks summarizes every chunk, at most config.Concurrency calls in
// flight at once. Results land in a position-indexed slice so the reduce
// order never depends on completion order. The first permanent failure
// cancels the remaining work.
func (p *Pipeline) mapChunks(ctx context.Context, chunks []pagebrief.Chunk) ([]pagebrief.PartialSummary, error) {
	partials := make([]pagebrief.PartialSummary, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Concurrency)

	for _, chunk := range chunks {
		g.Go(func() error {
			out, err := p.callBackend(gctx, pagebrief.MapInstruction, chunk.Text)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", chunk.Index, err)
			}
			partials[chunk.Index] = pagebrief.PartialSummary{Index: chunk.Index, Text: out}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// reduce concatenates the partial summaries in index order and, when the
// result exceeds the configured ceiling, compresses it with one
// second-level backend call.
func (p *Pipeline) reduce(ctx context.Context, partials []pagebrief.PartialSummary) (string, bool, error) {
	combined := pagebrief.CombinePartials(partials)

	over, err := p.exceedsCeiling(ctx, combined)
	if err != nil {
		return "", false, err
	}
	if !over {
		return combined, false, nil
	}

	p.logger.Info("combined partials exceed ceiling, running second-level reduce",
		"chars", len(combined),
		"ceiling", p.config.ReduceCeiling,
	)

	out, err := p.callBackend(ctx, pagebrief.ReduceInstruction, combined)
	if err != nil {
		return "", false, err
	}
	return out, true, nil
}

// callBackend performs one admission-controlled, retried backend call.
func (p *Pipeline) callBackend(ctx context.Context, instruction, text string) (string, error) {
	call := func(ctx context.Context) (string, error) {
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}
		return p.summarizer.Summarize(ctx, instruction, text)
	}
	return CallWithRetry(ctx, call, p.retryDelays, func(format string, args ...any) {
		p.logger.Warn(fmt.Sprintf(format, args...))
	})
}

// exceedsCeiling reports whether the combined text is over the reduce
// ceiling, measured in tokens when a token counter is configured and in
// bytes otherwise.
func (p *Pipeline) exceedsCeiling(ctx context.Context, combined string) (bool, error) {
	if p.tokens == nil {
		return len(combined) > p.config.ReduceCeiling, nil
	}
	n, err := p.tokens.CountTokens(ctx, combined)
	if err != nil {
		return false, pagebrief.Errorf(pagebrief.EINTERNAL, "token count: %v", err)
	}
	return n > p.config.ReduceCeiling, nil
}

// stageErr attaches the failing stage name while preserving the
// underlying error code.
func stageErr(stage string, err error) error {
	return fmt.Errorf("stage %q: %w", stage, err)
}

package mapreduce

import (
	"context"
	"log/slog"

	"github.com/dtnitsch/wordfreq/pkg/tokenizer"
)

// DefaultWorkers is the map-phase worker count used when none is configured.
const DefaultWorkers = 4

// Pipeline drives the tokenize, chunk, map, shuffle and reduce stages for
// one body of text. Only the map phase runs in parallel; everything else
// is single-threaded aggregation.
type Pipeline struct {
	Workers int
	// Tokenize converts raw text to tokens. Defaults to tokenizer.Tokenize;
	// swap in tokenizer.TokenizeFiltered to drop common words.
	Tokenize func(string) ([]string, error)
	Logger   *slog.Logger
}

// New returns a Pipeline with the default tokenizer.
func New(logger *slog.Logger, workers int) *Pipeline {
	return &Pipeline{Workers: workers, Tokenize: tokenizer.Tokenize, Logger: logger}
}

// Run computes the word-frequency result for text. It fails with a
// *PipelineError wrapping ErrEmptyInput when the text is empty or
// tokenizes to nothing, and with the context error when ctx is cancelled.
// Cancellation is checked at phase boundaries, so an interrupt aborts the
// run promptly without producing a partially merged result.
func (p *Pipeline) Run(ctx context.Context, text string) (*FrequencyResult, error) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := p.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}
	tokenize := p.Tokenize
	if tokenize == nil {
		tokenize = tokenizer.Tokenize
	}

	tokens, err := tokenize(text)
	if err != nil {
		// Tokenization failures are recovered into an empty sequence;
		// whether that is fatal is decided here, not inside the tokenizer.
		logger.Error("tokenization failed", "error", err)
	}
	if len(tokens) == 0 {
		if err != nil {
			return nil, &PipelineError{Stage: "tokenize", Err: err}
		}
		return nil, &PipelineError{Stage: "tokenize", Err: ErrEmptyInput}
	}
	logger.Debug("tokenized input", "tokens", len(tokens))

	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Stage: "chunk", Err: err}
	}
	chunks := SplitChunks(tokens, workers)
	logger.Debug("split tokens into chunks", "chunks", len(chunks), "workers", workers)

	partials := MapChunks(logger, chunks)

	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Stage: "shuffle", Err: err}
	}
	global := Shuffle(logger, partials)
	logger.Debug("merged partial counts", "distinct_words", global.Len(), "total", global.Total())

	if err := ctx.Err(); err != nil {
		return nil, &PipelineError{Stage: "reduce", Err: err}
	}
	return Finalize(global), nil
}

// ComputeWordFrequencies runs the whole pipeline with default settings.
func ComputeWordFrequencies(ctx context.Context, text string, workers int) (*FrequencyResult, error) {
	return New(slog.Default(), workers).Run(ctx, text)
}

package mapreduce

import (
	"errors"
	"fmt"
)

// ErrEmptyInput reports that the input text produced no tokens. It is
// raised before any chunking or mapping happens; running the parallel
// phase on an empty token sequence is disallowed rather than silently
// producing an empty result.
var ErrEmptyInput = errors.New("input text produced no tokens")

// PipelineError wraps a fatal failure with the pipeline stage it occurred
// in. Use errors.Is/As to inspect the cause (ErrEmptyInput,
// *tokenizer.TokenizationError, context.Canceled).
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

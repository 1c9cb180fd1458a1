// Package mapreduce implements the concurrent word-frequency pipeline:
// chunked parallel counting, a single-threaded shuffle/merge, and a
// read-only ranked result.
package mapreduce

import (
	"fmt"
	"log/slog"
	"sync"
)

// PartialCount holds the token occurrence counts for a single chunk.
// Order lists the chunk's distinct tokens in first-appearance order and
// drives the deterministic tie-break in the final ranking. A PartialCount
// is owned exclusively by the worker that built it until the merge step.
type PartialCount struct {
	Counts map[string]int
	Order  []string
	// Err records a worker failure for this chunk. The failure is already
	// absorbed (the chunk contributes no counts); the field makes it
	// visible to callers instead of living only in the logs.
	Err error
}

// CountChunk produces the PartialCount for one chunk. Counting is purely
// local: the accumulator is private to the chunk and workers never share
// state.
func CountChunk(chunk Chunk) *PartialCount {
	pc := &PartialCount{
		Counts: make(map[string]int, len(chunk)),
		Order:  make([]string, 0, len(chunk)),
	}
	for _, token := range chunk {
		if _, seen := pc.Counts[token]; !seen {
			pc.Order = append(pc.Order, token)
		}
		pc.Counts[token]++
	}
	return pc
}

// countFn is what each map worker runs on its chunk. Tests swap it out
// to fault a single worker; everything else uses CountChunk.
var countFn = CountChunk

// MapChunks runs one counting worker per chunk and blocks until every
// worker has finished. Results land in a slice indexed by chunk, so
// worker completion order never affects the outcome. A worker failure is
// recovered locally: the chunk contributes an empty PartialCount and the
// failure is logged, leaving the other chunks unaffected.
func MapChunks(logger *slog.Logger, chunks []Chunk) []*PartialCount {
	partials := make([]*PartialCount, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk Chunk) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("map worker failed, chunk contributes no counts",
						"chunk", i, "chunk_size", len(chunk), "error", fmt.Sprint(r))
					partials[i] = &PartialCount{
						Counts: map[string]int{},
						Err:    fmt.Errorf("map worker for chunk %d: %v", i, r),
					}
				}
			}()
			partials[i] = countFn(chunk)
		}(i, chunk)
	}
	wg.Wait()

	return partials
}

package mapreduce

import "log/slog"

// GlobalCount is the merged token occurrence table across all chunks.
// It is mutable only inside Shuffle; Finalize freezes it into a
// FrequencyResult. The insertion order of tokens is tracked so the
// ranking tie-break stays deterministic across runs.
type GlobalCount struct {
	counts map[string]int
	order  []string
	total  int
}

// Shuffle merges all partial counts into one global table. The merge runs
// single-threaded after the parallel map phase; token contributions are
// associative and commutative, so the counts are independent of merge
// order. A malformed entry (nil partial, empty token, non-positive count)
// is logged and skipped rather than aborting the merge.
func Shuffle(logger *slog.Logger, partials []*PartialCount) *GlobalCount {
	g := &GlobalCount{counts: make(map[string]int)}

	for i, partial := range partials {
		if partial == nil {
			logger.Warn("skipping nil partial count", "partial", i)
			continue
		}

		merged, skipped := 0, 0
		for _, token := range partial.Order {
			count := partial.Counts[token]
			if token == "" || count <= 0 {
				logger.Warn("skipping malformed partial count entry",
					"partial", i, "token", token, "count", count)
				skipped++
				continue
			}
			if _, seen := g.counts[token]; !seen {
				g.order = append(g.order, token)
			}
			g.counts[token] += count
			g.total += count
			merged++
		}

		if merged+skipped < len(partial.Counts) {
			logger.Warn("partial count had entries missing from its order index",
				"partial", i, "merged", merged, "skipped", skipped,
				"entries", len(partial.Counts))
		}
	}

	return g
}

// Total returns the sum of all merged occurrence counts.
func (g *GlobalCount) Total() int { return g.total }

// Len returns the number of distinct tokens in the merged table.
func (g *GlobalCount) Len() int { return len(g.counts) }

// Count returns the merged occurrence count for token, zero when absent.
func (g *GlobalCount) Count(token string) int { return g.counts[token] }

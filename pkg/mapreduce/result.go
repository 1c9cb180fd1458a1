package mapreduce

import "sort"

// Entry is one (word, count) pair in a ranking.
type Entry struct {
	Word  string
	Count int
}

// FrequencyResult is the finalized, read-only view over a merged count
// table. It is constructed once per pipeline run and never mutated; every
// query on it is deterministic and idempotent.
type FrequencyResult struct {
	counts map[string]int
	order  []string
	total  int
}

// Finalize freezes a GlobalCount into a FrequencyResult. The reduce step
// is identity-only: the table is already fully aggregated by the merge.
func Finalize(g *GlobalCount) *FrequencyResult {
	return &FrequencyResult{
		counts: g.counts,
		order:  g.order,
		total:  g.total,
	}
}

// Len returns the number of distinct words in the result.
func (r *FrequencyResult) Len() int { return len(r.counts) }

// Total returns the total number of token occurrences counted.
func (r *FrequencyResult) Total() int { return r.total }

// Count returns the occurrence count for word, zero when absent.
func (r *FrequencyResult) Count(word string) int { return r.counts[word] }

// TopN returns the n most frequent words, count descending. Equal counts
// tie-break by first-appearance order during the merge, which for
// in-order chunks equals first appearance in the original text. Fewer
// than n distinct words returns all of them; n below 1 or an empty
// result returns an empty slice.
func (r *FrequencyResult) TopN(n int) []Entry {
	if n < 1 || len(r.counts) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(r.order))
	for _, word := range r.order {
		entries = append(entries, Entry{Word: word, Count: r.counts[word]})
	}

	// Entries start in first-appearance order; a stable sort on count
	// alone keeps that order as the tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

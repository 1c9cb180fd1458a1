package mapreduce

// Chunk is an ordered, contiguous sub-sequence of the token stream,
// assigned to exactly one counting worker. Chunks share the backing array
// of the original token slice; workers only read from them.
type Chunk []string

// SplitChunks partitions tokens into min(workers, len(tokens)) contiguous
// chunks. Each chunk holds floor(N/count) tokens and the final chunk
// absorbs the remainder, so chunks never overlap, never reorder, and
// their concatenation reproduces the input exactly. Every chunk is
// non-empty; zero tokens yields zero chunks. workers below 1 is
// treated as 1.
func SplitChunks(tokens []string, workers int) []Chunk {
	n := len(tokens)
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	count := workers
	if n < count {
		count = n
	}

	size := n / count
	chunks := make([]Chunk, 0, count)
	for i := 0; i < count-1; i++ {
		chunks = append(chunks, tokens[i*size:(i+1)*size])
	}
	chunks = append(chunks, tokens[(count-1)*size:])
	return chunks
}

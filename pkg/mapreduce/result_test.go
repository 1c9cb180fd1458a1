package mapreduce

import (
	"reflect"
	"strings"
	"testing"
)

func resultFromText(t *testing.T, text string, workers int) *FrequencyResult {
	t.Helper()
	chunks := SplitChunks(strings.Fields(text), workers)
	return Finalize(Shuffle(testLogger(), MapChunks(testLogger(), chunks)))
}

func TestTopN_Ranking(t *testing.T) {
	result := resultFromText(t, "the cat sat on the mat the cat ran", 1)

	got := result.TopN(2)
	want := []Entry{{"the", 3}, {"cat", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN(2) = %v, want %v", got, want)
	}
}

func TestTopN_TieBreakByFirstAppearance(t *testing.T) {
	result := resultFromText(t, "the cat sat on the mat the cat ran", 1)

	// All the 1-count words tie; first appearance in the text decides.
	got := result.TopN(5)
	want := []Entry{{"the", 3}, {"cat", 2}, {"sat", 1}, {"on", 1}, {"mat", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN(5) = %v, want %v", got, want)
	}
}

func TestTopN_SameRankingAcrossWorkerCounts(t *testing.T) {
	text := "the cat sat on the mat the cat ran"
	single := resultFromText(t, text, 1)

	for _, workers := range []int{2, 4, 9} {
		parallel := resultFromText(t, text, workers)
		if !reflect.DeepEqual(parallel.TopN(6), single.TopN(6)) {
			t.Errorf("workers=%d: ranking %v differs from single-worker ranking %v",
				workers, parallel.TopN(6), single.TopN(6))
		}
	}
}

func TestTopN_Idempotent(t *testing.T) {
	result := resultFromText(t, "b b a a c", 2)

	first := result.TopN(3)
	second := result.TopN(3)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated TopN(3) calls differ: %v vs %v", first, second)
	}
}

func TestTopN_NExceedsDistinctWords(t *testing.T) {
	result := resultFromText(t, "x y y z", 2)

	got := result.TopN(100)
	if len(got) != 3 {
		t.Fatalf("TopN(100) returned %d entries, want all 3 distinct words", len(got))
	}

	seen := map[string]bool{}
	prev := got[0].Count
	for _, e := range got {
		if seen[e.Word] {
			t.Errorf("word %q appears more than once", e.Word)
		}
		seen[e.Word] = true
		if e.Count > prev {
			t.Errorf("entries not sorted by descending count: %v", got)
		}
		prev = e.Count
	}
}

func TestTopN_EmptyAndInvalidN(t *testing.T) {
	empty := Finalize(Shuffle(testLogger(), nil))
	if got := empty.TopN(10); len(got) != 0 {
		t.Errorf("TopN on empty result = %v, want empty", got)
	}

	result := resultFromText(t, "a b", 1)
	if got := result.TopN(0); len(got) != 0 {
		t.Errorf("TopN(0) = %v, want empty", got)
	}
	if got := result.TopN(-1); len(got) != 0 {
		t.Errorf("TopN(-1) = %v, want empty", got)
	}
}

func TestFrequencyResult_Accessors(t *testing.T) {
	result := resultFromText(t, "a b a", 1)

	if result.Len() != 2 {
		t.Errorf("Len() = %d, want 2", result.Len())
	}
	if result.Total() != 3 {
		t.Errorf("Total() = %d, want 3", result.Total())
	}
	if result.Count("a") != 2 {
		t.Errorf(`Count("a") = %d, want 2`, result.Count("a"))
	}
	if result.Count("missing") != 0 {
		t.Errorf(`Count("missing") = %d, want 0`, result.Count("missing"))
	}
}

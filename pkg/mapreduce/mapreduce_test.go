package mapreduce

import (
	"bytes"
	"io"
	"log/slog"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCountChunk(t *testing.T) {
	pc := CountChunk(Chunk{"the", "cat", "sat", "on", "the", "mat"})

	want := map[string]int{"the": 2, "cat": 1, "sat": 1, "on": 1, "mat": 1}
	if !reflect.DeepEqual(pc.Counts, want) {
		t.Errorf("CountChunk counts = %v, want %v", pc.Counts, want)
	}

	wantOrder := []string{"the", "cat", "sat", "on", "mat"}
	if !reflect.DeepEqual(pc.Order, wantOrder) {
		t.Errorf("CountChunk order = %v, want first-appearance order %v", pc.Order, wantOrder)
	}
}

func TestMapChunks_SumInvariant(t *testing.T) {
	// Total occurrences across all partial counts must equal the token count.
	text := "the cat sat on the mat the cat ran and the dog slept"
	tokens := strings.Fields(text)

	for _, workers := range []int{1, 2, 4, 8, 32} {
		chunks := SplitChunks(tokens, workers)
		partials := MapChunks(testLogger(), chunks)

		if len(partials) != len(chunks) {
			t.Fatalf("workers=%d: got %d partials for %d chunks", workers, len(partials), len(chunks))
		}

		total := 0
		for _, pc := range partials {
			for _, c := range pc.Counts {
				total += c
			}
		}
		if total != len(tokens) {
			t.Errorf("workers=%d: partial counts sum to %d, want %d", workers, total, len(tokens))
		}
	}
}

func TestShuffle_MergesAcrossChunks(t *testing.T) {
	tokens := strings.Fields("the cat sat on the mat the cat ran")
	chunks := SplitChunks(tokens, 4)
	global := Shuffle(testLogger(), MapChunks(testLogger(), chunks))

	want := map[string]int{"the": 3, "cat": 2, "sat": 1, "on": 1, "mat": 1, "ran": 1}
	for word, count := range want {
		if got := global.Count(word); got != count {
			t.Errorf("Count(%q) = %d, want %d", word, got, count)
		}
	}
	if global.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", global.Len(), len(want))
	}
	if global.Total() != len(tokens) {
		t.Errorf("Total() = %d, want %d", global.Total(), len(tokens))
	}
}

func TestShuffle_OrderIndependent(t *testing.T) {
	tokens := strings.Fields("apple banana apple cherry banana apple date cherry banana fig")
	chunks := SplitChunks(tokens, 5)
	partials := MapChunks(testLogger(), chunks)

	reference := Shuffle(testLogger(), partials)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]*PartialCount, len(partials))
		copy(shuffled, partials)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		merged := Shuffle(testLogger(), shuffled)
		if !reflect.DeepEqual(merged.counts, reference.counts) {
			t.Fatalf("trial %d: merge order changed the counts: %v vs %v",
				trial, merged.counts, reference.counts)
		}
		if merged.Total() != reference.Total() {
			t.Fatalf("trial %d: merge order changed the total", trial)
		}
	}
}

func TestShuffle_SkipsMalformedEntries(t *testing.T) {
	partials := []*PartialCount{
		nil,
		{Counts: map[string]int{"good": 2, "": 5}, Order: []string{"good", ""}},
		{Counts: map[string]int{"bad": -3, "fine": 1}, Order: []string{"bad", "fine"}},
	}

	global := Shuffle(testLogger(), partials)

	if got := global.Count("good"); got != 2 {
		t.Errorf(`Count("good") = %d, want 2`, got)
	}
	if got := global.Count("fine"); got != 1 {
		t.Errorf(`Count("fine") = %d, want 1`, got)
	}
	if global.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (malformed entries skipped)", global.Len())
	}
	if global.Total() != 3 {
		t.Errorf("Total() = %d, want 3", global.Total())
	}
}

func TestShuffle_MismatchWarningOnlyForUnaccountedEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	// One entry merged, one skipped as malformed: everything in Counts is
	// accounted for, so no order-index mismatch should be reported.
	Shuffle(logger, []*PartialCount{{
		Counts: map[string]int{"ok": 1, "": 2},
		Order:  []string{"ok", ""},
	}})
	if strings.Contains(buf.String(), "missing from its order index") {
		t.Errorf("mismatch warning fired for a fully accounted partial:\n%s", buf.String())
	}

	buf.Reset()
	// An entry absent from Order genuinely is unaccounted for.
	Shuffle(logger, []*PartialCount{{
		Counts: map[string]int{"ok": 1, "orphan": 2},
		Order:  []string{"ok"},
	}})
	if !strings.Contains(buf.String(), "missing from its order index") {
		t.Errorf("mismatch warning did not fire for an unaccounted entry:\n%s", buf.String())
	}
}

func TestMapChunks_WorkerFailureIsolated(t *testing.T) {
	// A failing worker must cost only its own chunk: that chunk comes
	// back empty with the failure recorded, the others count normally.
	defer func() { countFn = CountChunk }()
	countFn = func(chunk Chunk) *PartialCount {
		if len(chunk) > 0 && chunk[0] == "boom" {
			panic("malformed token")
		}
		return CountChunk(chunk)
	}

	chunks := []Chunk{{"a", "b", "a"}, {"boom", "c"}, {"a", "d"}}
	partials := MapChunks(testLogger(), chunks)

	if len(partials) != 3 {
		t.Fatalf("got %d partials, want 3", len(partials))
	}

	if partials[1].Err == nil {
		t.Error("failed chunk has nil Err, want the recorded failure")
	}
	if len(partials[1].Counts) != 0 {
		t.Errorf("failed chunk counts = %v, want empty", partials[1].Counts)
	}

	for _, i := range []int{0, 2} {
		if partials[i].Err != nil {
			t.Errorf("chunk %d Err = %v, want nil", i, partials[i].Err)
		}
	}
	if got := partials[0].Counts["a"]; got != 2 {
		t.Errorf("chunk 0 count for a = %d, want 2", got)
	}

	// The run carries on: surviving chunks merge as usual.
	global := Shuffle(testLogger(), partials)
	if got := global.Count("a"); got != 3 {
		t.Errorf(`merged Count("a") = %d, want 3`, got)
	}
	if got := global.Count("c"); got != 0 {
		t.Errorf(`merged Count("c") = %d, want 0 (chunk was lost)`, got)
	}
}

func TestMapChunks_IndependentAccumulators(t *testing.T) {
	// Two chunks sharing tokens must not share counts.
	chunks := []Chunk{{"a", "b", "a"}, {"a", "c"}}
	partials := MapChunks(testLogger(), chunks)

	if got := partials[0].Counts["a"]; got != 2 {
		t.Errorf("chunk 0 count for a = %d, want 2", got)
	}
	if got := partials[1].Counts["a"]; got != 1 {
		t.Errorf("chunk 1 count for a = %d, want 1", got)
	}
}

// Package chart renders a word-frequency ranking as a horizontal bar
// chart on a terminal.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
)

// DefaultBarWidth is the bar length given to the most frequent word.
const DefaultBarWidth = 40

// Render writes one line per entry: rank, word, a bar scaled against the
// highest count, and the count itself. An empty ranking prints a notice
// instead of failing; the caller treats "nothing to display" as a normal
// outcome.
func Render(w io.Writer, entries []mapreduce.Entry, barWidth int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No words to display.")
		return err
	}
	if barWidth < 1 {
		barWidth = DefaultBarWidth
	}

	wordWidth := 0
	for _, e := range entries {
		if n := len([]rune(e.Word)); n > wordWidth {
			wordWidth = n
		}
	}
	max := entries[0].Count
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}

	for i, e := range entries {
		bar := strings.Repeat("█", scale(e.Count, max, barWidth))
		if bar == "" {
			bar = "▏"
		}
		if _, err := fmt.Fprintf(w, "%3d. %-*s %s %d\n", i+1, wordWidth, e.Word, bar, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// scale maps count into [0, width] proportionally to the maximum count.
func scale(count, max, width int) int {
	if max <= 0 || count <= 0 {
		return 0
	}
	return count * width / max
}

// Package manifest writes a per-run summary artifact alongside the chart
// output, so results can be inspected without rerunning the pipeline.
package manifest

// RunSummary is the YAML structure written after each successful run.
// It carries only final aggregates, never intermediate per-chunk counts.
type RunSummary struct {
	GeneratedAt   string     `yaml:"generated_at"`
	URL           string     `yaml:"url"`
	Language      string     `yaml:"language,omitempty"`
	Workers       int        `yaml:"workers"`
	TotalTokens   int        `yaml:"total_tokens"`
	DistinctWords int        `yaml:"distinct_words"`
	DurationMS    int64      `yaml:"duration_ms"`
	CacheHit      bool       `yaml:"cache_hit"`
	TopWords      []WordRank `yaml:"top_words"`
}

// WordRank is one ranked entry in the summary.
type WordRank struct {
	Rank  int    `yaml:"rank"`
	Word  string `yaml:"word"`
	Count int    `yaml:"count"`
}

package manifest

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/wordfreq/pkg/storage"
)

// RunInfo carries the run metadata the summary is built from.
type RunInfo struct {
	URL      string
	Language string
	Workers  int
	Duration time.Duration
	CacheHit bool
}

// GenerateSummary writes the YAML summary for one run into outputDir and
// returns the path of the generated file.
func GenerateSummary(info RunInfo, result *mapreduce.FrequencyResult, entries []mapreduce.Entry, outputDir string, s *storage.Storage) (string, error) {
	summary := RunSummary{
		GeneratedAt:   time.Now().Format(time.RFC3339),
		URL:           info.URL,
		Language:      info.Language,
		Workers:       info.Workers,
		TotalTokens:   result.Total(),
		DistinctWords: result.Len(),
		DurationMS:    info.Duration.Milliseconds(),
		CacheHit:      info.CacheHit,
	}
	for i, e := range entries {
		summary.TopWords = append(summary.TopWords, WordRank{Rank: i + 1, Word: e.Word, Count: e.Count})
	}

	data, err := yaml.Marshal(&summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run summary: %w", err)
	}

	path := filepath.Join(outputDir, summaryFileName(info.URL))
	if err := s.SaveFile(path, data); err != nil {
		return "", fmt.Errorf("failed to save run summary: %w", err)
	}
	return path, nil
}

// summaryFileName generates a filesystem-friendly name from the source URL.
func summaryFileName(rawURL string) string {
	today := time.Now().Format("2006-01-02")

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		safe := strings.NewReplacer("https://", "", "http://", "", "/", "_").Replace(rawURL)
		return fmt.Sprintf("%s-%s.yaml", safe, today)
	}

	host := strings.ReplaceAll(parsed.Host, ".", "_")
	path := strings.Trim(parsed.Path, "/")
	path = strings.NewReplacer("/", "-", ".", "_").Replace(path)

	base := host
	if path != "" {
		base = fmt.Sprintf("%s-%s", host, path)
	}
	return fmt.Sprintf("%s-%s.yaml", base, today)
}

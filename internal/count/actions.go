// Package count implements the wordfreq count command: fetch a text,
// run the concurrent word-frequency pipeline, and report the ranking.
package count

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordfreq/models"
	"github.com/dtnitsch/wordfreq/pkg/caching"
	"github.com/dtnitsch/wordfreq/pkg/chart"
	"github.com/dtnitsch/wordfreq/pkg/db"
	"github.com/dtnitsch/wordfreq/pkg/detector"
	"github.com/dtnitsch/wordfreq/pkg/fetcher"
	"github.com/dtnitsch/wordfreq/pkg/manifest"
	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
	"github.com/dtnitsch/wordfreq/pkg/storage"
	"github.com/dtnitsch/wordfreq/pkg/tokenizer"
)

// CountAction fetches the configured text and runs the full pipeline.
func CountAction(c *cli.Context) error {
	logger := newLogger(c)

	config, err := buildConfig(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	// Interrupts cancel the run through this context instead of a shared
	// flag; the pipeline checks it at phase boundaries and nothing partial
	// is rendered or persisted after cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, err := caching.NewCache(config.CacheDir)
	if err != nil {
		logger.Error("failed to initialize cache", "error", err)
		os.Exit(2)
	}

	start := time.Now()

	text, cacheHit, err := loadText(ctx, logger, cache, config)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("run cancelled")
			os.Exit(130)
		}
		logger.Error("failed to fetch text", "url", config.URL, "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	language := detector.DetectLanguage(text)
	logger.Info("starting word-frequency pipeline",
		"url", config.URL, "workers", config.Workers, "language", language, "bytes", len(text))

	pipeline := mapreduce.New(logger, config.Workers)
	if config.SkipCommon {
		pipeline.Tokenize = tokenizer.TokenizeFiltered
	}

	result, err := pipeline.Run(ctx, text)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("run cancelled")
			os.Exit(130)
		}
		if errors.Is(err, mapreduce.ErrEmptyInput) {
			logger.Error("fetched text contains no words", "url", config.URL)
			return cli.Exit("Error: the fetched text contains no words to count", 1)
		}
		logger.Error("pipeline failed", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	duration := time.Since(start)
	entries := result.TopN(config.TopN)
	logger.Info("pipeline finished",
		"total_tokens", result.Total(), "distinct_words", result.Len(),
		"duration_ms", duration.Milliseconds(), "cache_hit", cacheHit)

	if err := ctx.Err(); err != nil {
		logger.Info("run cancelled")
		os.Exit(130)
	}

	if !config.NoChart {
		fmt.Printf("Top %d words in %s\n\n", len(entries), config.URL)
		if err := chart.Render(os.Stdout, entries, chart.DefaultBarWidth); err != nil {
			logger.Error("failed to render chart", "error", err)
		}
	}

	info := manifest.RunInfo{
		URL:      config.URL,
		Language: language,
		Workers:  config.Workers,
		Duration: duration,
		CacheHit: cacheHit,
	}
	summaryPath, err := manifest.GenerateSummary(info, result, entries, config.OutputDir, &storage.Storage{})
	if err != nil {
		logger.Error("failed to write run summary", "error", err)
	} else {
		logger.Info("run summary saved", "path", summaryPath)
	}

	recordRun(logger, config, result, entries, language, duration)
	return nil
}

// loadText returns the source text, preferring the cache when fresh.
func loadText(ctx context.Context, logger *slog.Logger, cache *caching.Cache, config *models.RunConfig) (string, bool, error) {
	if text, ok := cache.Get(config.URL, config.MaxAge); ok {
		logger.Info("using cached text", "url", config.URL, "bytes", len(text))
		return text, true, nil
	}

	text, err := fetcher.NewFetcher().FetchText(ctx, config.URL)
	if err != nil {
		return "", false, err
	}

	if err := cache.Set(config.URL, text); err != nil {
		logger.Warn("failed to cache fetched text", "url", config.URL, "error", err)
	}
	return text, false, nil
}

// recordRun stores the final summary row; history is best-effort and
// never fails the run.
func recordRun(logger *slog.Logger, config *models.RunConfig, result *mapreduce.FrequencyResult, entries []mapreduce.Entry, language string, duration time.Duration) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open run history database", "error", err)
		return
	}
	defer database.Close()

	topWords := make([]string, len(entries))
	for i, e := range entries {
		topWords[i] = fmt.Sprintf("%s:%d", e.Word, e.Count)
	}

	run := &db.Run{
		URL:           config.URL,
		Language:      language,
		WorkerCount:   config.Workers,
		TotalTokens:   result.Total(),
		DistinctWords: result.Len(),
		Duration:      duration,
		TopWords:      topWords,
	}
	if _, err := database.RecordRun(run); err != nil {
		logger.Warn("failed to record run", "db", database.Path(), "error", err)
		return
	}
	logger.Debug("run recorded", "db", database.Path())
}

// newLogger builds the slog JSON logger all stages share.
func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	switch c.String("log-level") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if c.Bool("quiet") {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildConfig resolves the run configuration: defaults, then the optional
// YAML config file, then explicit CLI flags.
func buildConfig(c *cli.Context) (*models.RunConfig, error) {
	config := models.NewRunConfig()

	if c.IsSet("config") {
		loaded, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if c.IsSet("url") {
		config.URL = c.String("url")
	}
	if c.IsSet("workers") {
		config.Workers = c.Int("workers")
	}
	if c.IsSet("top") {
		config.TopN = c.Int("top")
	}
	if c.IsSet("skip-common") {
		config.SkipCommon = c.Bool("skip-common")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("cache-dir") {
		config.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("no-chart") {
		config.NoChart = c.Bool("no-chart")
	}
	if c.Bool("force-fetch") {
		config.MaxAge = 0
	} else if c.IsSet("max-age") {
		maxAge, err := time.ParseDuration(c.String("max-age"))
		if err != nil {
			return nil, fmt.Errorf("invalid max-age duration: %w", err)
		}
		config.MaxAge = maxAge
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

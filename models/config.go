// Package models defines runtime configuration for the wordfreq CLI.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither flag nor config file sets a value.
const (
	DefaultURL      = "https://www.gutenberg.org/files/98/98-0.txt"
	DefaultWorkers  = 4
	DefaultTopN     = 10
	DefaultMaxAge   = 24 * time.Hour
	DefaultOutDir   = "results"
	DefaultCacheDir = ".wordfreq-cache"
)

// RunConfig holds runtime configuration for one counting run.
// Values come from CLI flags, optionally seeded from a YAML config file;
// explicit flags always win.
type RunConfig struct {
	URL        string
	Workers    int
	TopN       int
	SkipCommon bool
	OutputDir  string
	CacheDir   string
	MaxAge     time.Duration
	NoChart    bool
}

// NewRunConfig returns a config populated with the defaults.
func NewRunConfig() *RunConfig {
	return &RunConfig{
		URL:       DefaultURL,
		Workers:   DefaultWorkers,
		TopN:      DefaultTopN,
		OutputDir: DefaultOutDir,
		CacheDir:  DefaultCacheDir,
		MaxAge:    DefaultMaxAge,
	}
}

// fileConfig mirrors RunConfig for YAML decoding; durations are written
// as strings ("24h") and parsed with time.ParseDuration.
type fileConfig struct {
	URL        *string `yaml:"url"`
	Workers    *int    `yaml:"workers"`
	TopN       *int    `yaml:"top"`
	SkipCommon *bool   `yaml:"skip_common"`
	OutputDir  *string `yaml:"output_dir"`
	CacheDir   *string `yaml:"cache_dir"`
	MaxAge     *string `yaml:"max_age"`
	NoChart    *bool   `yaml:"no_chart"`
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := NewRunConfig()
	if file.URL != nil {
		config.URL = *file.URL
	}
	if file.Workers != nil {
		config.Workers = *file.Workers
	}
	if file.TopN != nil {
		config.TopN = *file.TopN
	}
	if file.SkipCommon != nil {
		config.SkipCommon = *file.SkipCommon
	}
	if file.OutputDir != nil {
		config.OutputDir = *file.OutputDir
	}
	if file.CacheDir != nil {
		config.CacheDir = *file.CacheDir
	}
	if file.NoChart != nil {
		config.NoChart = *file.NoChart
	}
	if file.MaxAge != nil {
		maxAge, err := time.ParseDuration(*file.MaxAge)
		if err != nil {
			return nil, fmt.Errorf("invalid max_age in config file: %w", err)
		}
		config.MaxAge = maxAge
	}
	return config, nil
}

// Validate rejects values the pipeline cannot run with.
func (c *RunConfig) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top must be at least 1, got %d", c.TopN)
	}
	return nil
}

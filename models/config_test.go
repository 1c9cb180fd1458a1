package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "url: https://example.com/text.txt\nworkers: 8\ntop: 5\nmax_age: 1h\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.URL != "https://example.com/text.txt" {
		t.Errorf("URL = %q, want the configured URL", config.URL)
	}
	if config.Workers != 8 {
		t.Errorf("Workers = %d, want 8", config.Workers)
	}
	if config.TopN != 5 {
		t.Errorf("TopN = %d, want 5", config.TopN)
	}
	if config.MaxAge != time.Hour {
		t.Errorf("MaxAge = %v, want 1h", config.MaxAge)
	}
	// Unset fields keep their defaults.
	if config.OutputDir != DefaultOutDir {
		t.Errorf("OutputDir = %q, want default %q", config.OutputDir, DefaultOutDir)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig() on missing file succeeded, want error")
	}
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *RunConfig) {}, false},
		{"empty url", func(c *RunConfig) { c.URL = "" }, true},
		{"zero workers", func(c *RunConfig) { c.Workers = 0 }, true},
		{"negative top", func(c *RunConfig) { c.TopN = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewRunConfig()
			tt.mutate(config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

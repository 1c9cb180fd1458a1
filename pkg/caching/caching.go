// Package caching keeps fetched source texts on disk so repeated runs
// against the same URL skip the network.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is a file-based cache of fetched texts keyed by source URL.
type Cache struct {
	dir string
}

// NewCache creates the cache directory if it doesn't exist.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// key generates a SHA256 hash of the URL to use as a filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.txt", hash)
}

// Get retrieves the cached text for url if present and younger than
// maxAge. A maxAge of zero disables the cache entirely (force refetch).
func (c *Cache) Get(url string, maxAge time.Duration) (string, bool) {
	if maxAge <= 0 {
		return "", false
	}

	path := filepath.Join(c.dir, c.key(url))
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if time.Since(info.ModTime()) > maxAge {
		return "", false // expired
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores the fetched text for url.
func (c *Cache) Set(url, text string) error {
	path := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

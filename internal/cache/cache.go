// Package cache persists the merged item list between runs so warm
// starts skip the network entirely. The snapshot is keyed on existence
// only: deleting the file is the invalidation operation.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shuttle/internal/domain"
)

// Cache stores one snapshot of items at a fixed path.
type Cache struct {
	path string
}

// New creates a cache backed by the file at path.
func New(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the backing file path.
func (c *Cache) Path() string {
	return c.path
}

// Load reads the snapshot. ok is false when no snapshot exists; a
// snapshot that exists but cannot be decoded is an error, which the
// caller treats as a miss and falls back to a fresh aggregation.
func (c *Cache) Load() (items []domain.Item, ok bool, err error) {
	data, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to parse cache: %w", err)
	}
	return items, true, nil
}

// Store writes the full item list, replacing any previous snapshot.
// The write goes through a temp file and rename so a crash never
// leaves a half-written snapshot behind.
func (c *Cache) Store(items []domain.Item) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to replace cache: %w", err)
	}
	return nil
}

// Invalidate removes the snapshot. Removing an absent snapshot is not
// an error.
func (c *Cache) Invalidate() error {
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache: %w", err)
	}
	return nil
}

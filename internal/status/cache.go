package status

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const cacheFileName = "status.json"

// Cache is the persisted status line.
type Cache struct {
	Text      string    `json:"text"`
	Global    string    `json:"global,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoadCache reads the status cache from dir.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache(dir string) (*Cache, error) {
	data, err := os.ReadFile(filepath.Join(dir, cacheFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading status cache: %w", err)
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing status cache: %w", err)
	}
	return &c, nil
}

// SaveCache writes the status cache to dir.
func SaveCache(dir string, c *Cache) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling status cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, cacheFileName), data, 0644); err != nil {
		return fmt.Errorf("writing status cache: %w", err)
	}
	return nil
}

// IsStale returns true if the cache is older than maxAge or nil.
func IsStale(c *Cache, maxAge time.Duration) bool {
	if c == nil {
		return true
	}
	return time.Since(c.UpdatedAt) > maxAge
}

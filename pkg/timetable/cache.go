package timetable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AppVersion is stamped on every cache entry. Entries written by another
// version are ignored so a release with a changed payload shape never reads
// old data.
const AppVersion = "1.2.0"

// cacheDuration determines how long schedule data is considered fresh
const cacheDuration = time.Hour

// staleRetention is how long expired entries are kept as an offline fallback
const staleRetention = 7 * 24 * time.Hour

// ErrCacheMiss is returned by a Cache when no entry exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// CacheEntry represents the stored data format shared by every backend
type CacheEntry struct {
	Timestamp  time.Time       `json:"timestamp"`
	AppVersion string          `json:"app_version"`
	Version    string          `json:"version"`
	Payload    json.RawMessage `json:"payload"`
}

// Age reports how old the entry is at now.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// Fresh reports whether the entry can be served without refetching.
func (e *CacheEntry) Fresh(now time.Time) bool {
	return e.Age(now) <= cacheDuration
}

// Cache stores API responses keyed by request.
type Cache interface {
	Get(ctx context.Context, key string) (*CacheEntry, error)
	Put(ctx context.Context, key string, entry *CacheEntry) error
	Clear(ctx context.Context) error
}

// CacheKey builds the storage key for a request, e.g. "schedule:Draft_2-CE3".
func CacheKey(kind string, req Request) string {
	return fmt.Sprintf("%s:%s-%s", kind, req.Filename, strings.ReplaceAll(req.ClassPattern, " ", ""))
}

// FileCache keeps one JSON file per key in a directory
type FileCache struct {
	dir string
}

// NewFileCache returns a file cache rooted at dir
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir}
}

// DefaultCacheDir returns ~/.easechaos_cache
func DefaultCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".easechaos_cache"), nil
}

func (c *FileCache) path(key string) (string, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// "schedule:Draft_2-CE3" -> "schedule_Draft_2-CE3.json"
	name := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(c.dir, name+".json"), nil
}

// Get reads the entry for key
func (c *FileCache) Get(_ context.Context, key string) (*CacheEntry, error) {
	path, err := c.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A corrupt file is as good as no file
		return nil, ErrCacheMiss
	}
	if entry.Age(time.Now()) > staleRetention {
		return nil, ErrCacheMiss
	}

	return &entry, nil
}

// Put saves the entry to disk
func (c *FileCache) Put(_ context.Context, key string, entry *CacheEntry) error {
	path, err := c.path(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Clear removes every cached file
func (c *FileCache) Clear(_ context.Context) error {
	files, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}
	return nil
}

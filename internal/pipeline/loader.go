// Package pipeline loads record files into memory, optionally through
// the SQLite cache.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/saldodev/finza/internal/model"
	"github.com/saldodev/finza/internal/source"
	"github.com/saldodev/finza/internal/store"
)

// LoadResult holds the output of loading one record file.
type LoadResult struct {
	Records   []model.Record
	Dropped   int
	Path      string
	FromCache bool
}

// Load parses the record file at path without touching the cache.
func Load(path string) (*LoadResult, error) {
	rr, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &LoadResult{Records: rr.Records, Dropped: rr.Dropped, Path: path}, nil
}

// LoadWithCache serves the file from the cache when its mtime and
// size are unchanged, and re-parses and re-caches it otherwise.
func LoadWithCache(path string, cache *store.Cache) (*LoadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	mtimeNs := info.ModTime().UnixNano()
	sizeBytes := info.Size()

	tracked, ok, err := cache.TrackedFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	if ok && tracked.MtimeNs == mtimeNs && tracked.SizeBytes == sizeBytes {
		records, err := cache.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading cached records: %w", err)
		}
		return &LoadResult{
			Records:   records,
			Dropped:   tracked.Dropped,
			Path:      path,
			FromCache: true,
		}, nil
	}

	rr, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Cache write failures are not fatal; the parse already succeeded.
	_ = cache.SaveFile(path, store.FileInfo{
		MtimeNs:   mtimeNs,
		SizeBytes: sizeBytes,
		Dropped:   rr.Dropped,
	}, rr.Records)

	return &LoadResult{Records: rr.Records, Dropped: rr.Dropped, Path: path}, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "finza")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "finza")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "records.db")
}

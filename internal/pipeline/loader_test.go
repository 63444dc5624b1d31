package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saldodev/finza/internal/store"
)

func writeCSV(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

const sampleCSV = `date,kind,category,description,amount
2025-01-05,income,sales,Invoice 1,900
2025-01-10,expense,rent,Office,600
garbage,expense,rent,bad row,600
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	writeCSV(t, path, sampleCSV)

	result, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(result.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(result.Records))
	}
	if result.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", result.Dropped)
	}
	if result.FromCache {
		t.Error("plain Load must not report FromCache")
	}
	if result.Path != path {
		t.Errorf("Path = %q, want %q", result.Path, path)
	}
}

func TestLoadWithCache_MissAndHit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	writeCSV(t, path, sampleCSV)

	cache, err := store.Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	first, err := LoadWithCache(path, cache)
	if err != nil {
		t.Fatalf("first LoadWithCache: %v", err)
	}
	if first.FromCache {
		t.Error("first load should parse the file, not hit the cache")
	}
	if len(first.Records) != 2 || first.Dropped != 1 {
		t.Errorf("first load = %d records / %d dropped", len(first.Records), first.Dropped)
	}

	second, err := LoadWithCache(path, cache)
	if err != nil {
		t.Fatalf("second LoadWithCache: %v", err)
	}
	if !second.FromCache {
		t.Error("second load of an unchanged file should hit the cache")
	}
	if len(second.Records) != 2 || second.Dropped != 1 {
		t.Errorf("cached load = %d records / %d dropped", len(second.Records), second.Dropped)
	}
}

func TestLoadWithCache_InvalidatedByChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	writeCSV(t, path, sampleCSV)

	cache, err := store.Open(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	if _, err := LoadWithCache(path, cache); err != nil {
		t.Fatal(err)
	}

	writeCSV(t, path, sampleCSV+"2025-01-15,expense,food,Lunch,25\n")
	// Size changed; also nudge mtime for filesystems with coarse stamps.
	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	result, err := LoadWithCache(path, cache)
	if err != nil {
		t.Fatalf("LoadWithCache after change: %v", err)
	}
	if result.FromCache {
		t.Error("changed file must be re-parsed")
	}
	if len(result.Records) != 3 {
		t.Errorf("len(Records) = %d, want 3", len(result.Records))
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCachePath_UnderCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	want := filepath.Join("/xdg/cache", "finza", "records.db")
	if got := CachePath(); got != want {
		t.Errorf("CachePath = %q, want %q", got, want)
	}
}

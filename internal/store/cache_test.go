package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saldodev/finza/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	cache, err := Open(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func testRecords(t *testing.T) []model.Record {
	t.Helper()
	day := func(s string) time.Time {
		d, err := time.Parse(model.DayLayout, s)
		require.NoError(t, err)
		return d
	}
	return []model.Record{
		{Date: day("2025-01-05"), Kind: model.Income, Category: "sales", Description: "Invoice 1", Amount: 900},
		{Date: day("2025-01-10"), Kind: model.Expense, Category: "rent", Description: "Office", Amount: 600},
		{Date: day("2025-01-12"), Kind: model.Expense, Category: "marketing", Description: "Ads", Amount: 150},
	}
}

func TestCache_SaveAndLoad(t *testing.T) {
	cache := openTestCache(t)
	records := testRecords(t)

	info := FileInfo{MtimeNs: 1000, SizeBytes: 256, Dropped: 2}
	require.NoError(t, cache.SaveFile("/data/records.csv", info, records))

	got, err := cache.LoadFile("/data/records.csv")
	require.NoError(t, err)
	require.Len(t, got, len(records))

	for i, rec := range got {
		assert.True(t, rec.Date.Equal(records[i].Date), "record %d date", i)
		assert.Equal(t, records[i].Kind, rec.Kind)
		assert.Equal(t, records[i].Category, rec.Category)
		assert.Equal(t, records[i].Description, rec.Description)
		assert.Equal(t, records[i].Amount, rec.Amount)
	}
}

func TestCache_TrackedFile(t *testing.T) {
	cache := openTestCache(t)

	_, ok, err := cache.TrackedFile("/data/records.csv")
	require.NoError(t, err)
	assert.False(t, ok, "untracked file should not be found")

	info := FileInfo{MtimeNs: 1000, SizeBytes: 256, Dropped: 2}
	require.NoError(t, cache.SaveFile("/data/records.csv", info, testRecords(t)))

	got, ok, err := cache.TrackedFile("/data/records.csv")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, info, got)
}

func TestCache_SaveReplacesOldRecords(t *testing.T) {
	cache := openTestCache(t)
	records := testRecords(t)

	require.NoError(t, cache.SaveFile("/data/records.csv", FileInfo{MtimeNs: 1}, records))
	require.NoError(t, cache.SaveFile("/data/records.csv", FileInfo{MtimeNs: 2}, records[:1]))

	got, err := cache.LoadFile("/data/records.csv")
	require.NoError(t, err)
	assert.Len(t, got, 1, "re-save must replace, not append")

	count, err := cache.RecordCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCache_FilesAreIndependent(t *testing.T) {
	cache := openTestCache(t)
	records := testRecords(t)

	require.NoError(t, cache.SaveFile("/data/a.csv", FileInfo{MtimeNs: 1}, records))
	require.NoError(t, cache.SaveFile("/data/b.csv", FileInfo{MtimeNs: 2}, records[:1]))

	a, err := cache.LoadFile("/data/a.csv")
	require.NoError(t, err)
	b, err := cache.LoadFile("/data/b.csv")
	require.NoError(t, err)

	assert.Len(t, a, 3)
	assert.Len(t, b, 1)

	count, err := cache.RecordCount()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestCache_LoadUnknownFile(t *testing.T) {
	cache := openTestCache(t)

	got, err := cache.LoadFile("/data/missing.csv")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "records.db")

	cache, err := Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, cache.SaveFile("/data/records.csv", FileInfo{MtimeNs: 1}, testRecords(t)))
	require.NoError(t, cache.Close())

	// Re-opening runs migrations against the existing schema and must
	// keep the data.
	cache, err = Open(dbPath)
	require.NoError(t, err)
	defer cache.Close()

	count, err := cache.RecordCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

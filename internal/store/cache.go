// Package store provides a SQLite-backed cache for parsed record files.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/saldodev/finza/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache persists parsed records keyed by source file, so unchanged
// files are not re-parsed on every run.
type Cache struct {
	db *sql.DB
}

// Open opens or creates the cache database at the given path and
// brings its schema up to date.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// FileInfo holds the tracked state of a parsed file. A cached entry
// is stale when the file's current mtime or size differs.
type FileInfo struct {
	MtimeNs   int64
	SizeBytes int64
	Dropped   int
}

// TrackedFile returns the tracking info for a file, and whether the
// file has a cache entry at all.
func (c *Cache) TrackedFile(path string) (FileInfo, bool, error) {
	var fi FileInfo
	err := c.db.QueryRow(
		"SELECT mtime_ns, size_bytes, dropped FROM file_tracker WHERE file_path = ?",
		path,
	).Scan(&fi.MtimeNs, &fi.SizeBytes, &fi.Dropped)
	if err == sql.ErrNoRows {
		return FileInfo{}, false, nil
	}
	if err != nil {
		return FileInfo{}, false, err
	}
	return fi, true, nil
}

// SaveFile replaces the cached records for a file and updates its
// tracking info.
func (c *Cache) SaveFile(path string, info FileInfo, records []model.Record) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM records WHERE file_path = ?", path); err != nil {
		return err
	}

	for _, rec := range records {
		_, err = tx.Exec(`INSERT INTO records
			(file_path, record_date, kind, category, description, amount)
			VALUES (?, ?, ?, ?, ?, ?)`,
			path, rec.DayKey(), string(rec.Kind), rec.Category, rec.Description, rec.Amount,
		)
		if err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`INSERT OR REPLACE INTO file_tracker
		(file_path, mtime_ns, size_bytes, dropped, parsed_at)
		VALUES (?, ?, ?, ?, ?)`,
		path, info.MtimeNs, info.SizeBytes, info.Dropped, now,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// LoadFile reads the cached records for a file, oldest first.
func (c *Cache) LoadFile(path string) ([]model.Record, error) {
	rows, err := c.db.Query(`SELECT record_date, kind, category, description, amount
		FROM records WHERE file_path = ? ORDER BY record_date, id`, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var dateStr, kind string
		var rec model.Record
		if err := rows.Scan(&dateStr, &kind, &rec.Category, &rec.Description, &rec.Amount); err != nil {
			return nil, err
		}
		rec.Date, err = time.Parse(model.DayLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("cached date %q: %w", dateStr, err)
		}
		rec.Kind = model.Kind(kind)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// RecordCount returns the number of cached records across all files.
func (c *Cache) RecordCount() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

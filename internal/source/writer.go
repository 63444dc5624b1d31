package source

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/saldodev/finza/internal/model"
)

// recordRow converts a record to its CSV field values.
func recordRow(r model.Record) []string {
	return []string{
		r.DayKey(),
		string(r.Kind),
		r.Category,
		r.Description,
		formatAmount(r.Amount),
	}
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// AppendRecord adds one record to the data file, creating the file
// with a header when it does not exist yet.
func AppendRecord(path string, rec model.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	_, statErr := os.Stat(path)
	needHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(headerEN); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := w.Write(recordRow(rec)); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// MarshalRecords renders records as CSV bytes, header included.
func MarshalRecords(records []model.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headerEN); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return nil, fmt.Errorf("writing record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteRecords writes a full record file, header included, replacing
// anything already at path.
func WriteRecords(path string, records []model.Record) error {
	data, err := MarshalRecords(records)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// dedupKey identifies a record for import de-duplication. Two rows
// with the same day, kind, category, description, and amount are the
// same transaction.
type dedupKey struct {
	day         string
	kind        model.Kind
	category    string
	description string
	amount      float64
}

func keyOf(r model.Record) dedupKey {
	return dedupKey{
		day:         r.DayKey(),
		kind:        r.Kind,
		category:    r.Category,
		description: r.Description,
		amount:      r.Amount,
	}
}

// ImportResult summarizes one import run.
type ImportResult struct {
	Added   int
	Skipped int
	Dropped int
}

// ImportFile merges records from src into the data file at dst,
// skipping rows already present. Returns how many were added, how
// many were duplicates, and how many source rows failed to parse.
func ImportFile(dst, src string) (*ImportResult, error) {
	in, err := ReadFile(src)
	if err != nil {
		return nil, err
	}

	existing := make(map[dedupKey]struct{})
	var current []model.Record
	if _, err := os.Stat(dst); err == nil {
		cur, err := ReadFile(dst)
		if err != nil {
			return nil, err
		}
		current = cur.Records
		for _, rec := range current {
			existing[keyOf(rec)] = struct{}{}
		}
	}

	result := &ImportResult{Dropped: in.Dropped}
	merged := current
	for _, rec := range in.Records {
		k := keyOf(rec)
		if _, dup := existing[k]; dup {
			result.Skipped++
			continue
		}
		existing[k] = struct{}{}
		merged = append(merged, rec)
		result.Added++
	}

	if result.Added > 0 {
		if err := WriteRecords(dst, merged); err != nil {
			return nil, err
		}
	}
	return result, nil
}

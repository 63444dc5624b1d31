// Package source reads and writes finza record CSV files.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saldodev/finza/internal/model"
)

// Header layouts a record file may carry. Files written by finza use
// the English header; the Spanish one is accepted for data coming
// from the legacy desktop app.
var (
	headerEN = []string{"date", "kind", "category", "description", "amount"}
	headerES = []string{"fecha", "tipo", "categoria", "descripcion", "monto"}
)

// ReadResult holds the outcome of loading one record file. Dropped
// counts rows that failed to parse and were skipped; the records that
// did parse are always valid.
type ReadResult struct {
	Path    string
	Records []model.Record
	Dropped int
}

// ReadFile parses a record CSV file. Rows with a bad date, unknown
// kind, empty category, or non-positive amount are dropped and
// counted, never returned as an error.
func ReadFile(path string) (*ReadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	result, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	result.Path = path
	return result, nil
}

func readRecords(r io.Reader) (*ReadResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return &ReadResult{}, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("unrecognized header %v", header)
	}

	result := &ReadResult{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row is dropped like a bad value.
			result.Dropped++
			continue
		}

		rec, err := parseRow(row)
		if err != nil {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

func headerMatches(header []string) bool {
	match := func(want []string) bool {
		if len(header) != len(want) {
			return false
		}
		for i, h := range header {
			if !strings.EqualFold(strings.TrimSpace(h), want[i]) {
				return false
			}
		}
		return true
	}
	return match(headerEN) || match(headerES)
}

func parseRow(row []string) (model.Record, error) {
	if len(row) != 5 {
		return model.Record{}, fmt.Errorf("expected 5 fields, got %d", len(row))
	}
	return ParseRecord(row[0], row[1], row[2], row[3], row[4])
}

// ParseRecord builds a validated record from raw CSV field values.
func ParseRecord(date, kind, category, description, amount string) (model.Record, error) {
	d, err := time.Parse(model.DayLayout, strings.TrimSpace(date))
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing date %q: %w", date, err)
	}

	k, err := model.ParseKind(kind)
	if err != nil {
		return model.Record{}, err
	}

	amt, err := ParseAmount(amount)
	if err != nil {
		return model.Record{}, err
	}

	rec := model.Record{
		Date:        d,
		Kind:        k,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
		Amount:      amt,
	}
	if err := rec.Validate(); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}

// ParseAmount parses a positive money amount. The string is parsed
// exactly as a decimal and rounded half-up to cents before the float
// conversion, so "19.999" becomes 20.00 rather than accumulating
// binary noise. A comma is treated as the decimal separator when no
// dot is present ("12,34"), otherwise as a thousands separator.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")

	if strings.Contains(s, ",") {
		if strings.Contains(s, ".") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	d = d.Round(2)
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: %s", model.ErrBadAmount, raw)
	}

	f, _ := d.Float64()
	return f, nil
}

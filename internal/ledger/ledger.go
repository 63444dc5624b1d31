// Package ledger holds an immutable collection of records and derives
// all aggregate series, totals, and summary statistics from it.
package ledger

import (
	"fmt"
	"time"

	"github.com/saldodev/finza/internal/model"
)

// Ledger is an immutable snapshot of records. Filtering returns a new
// Ledger; the filtered view and the full view coexist independently.
type Ledger struct {
	records []model.Record
}

// New builds a ledger from a slice of records. The slice is copied so
// later mutation by the caller cannot reach the snapshot.
func New(records []model.Record) Ledger {
	cp := make([]model.Record, len(records))
	copy(cp, records)
	return Ledger{records: cp}
}

// Records returns a copy of the ledger's records in insertion order.
func (l Ledger) Records() []model.Record {
	cp := make([]model.Record, len(l.records))
	copy(cp, l.records)
	return cp
}

// Len returns the number of records in the snapshot.
func (l Ledger) Len() int {
	return len(l.records)
}

// Period bounds a span of calendar days. A zero bound is open-ended;
// the zero Period matches every record.
type Period struct {
	From time.Time
	To   time.Time
}

// IsOpen reports whether the period has no bounds at all.
func (p Period) IsOpen() bool {
	return p.From.IsZero() && p.To.IsZero()
}

// Contains reports whether the day d falls inside the period. Both
// bounds are inclusive.
func (p Period) Contains(d time.Time) bool {
	if !p.From.IsZero() && d.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && d.After(p.To) {
		return false
	}
	return true
}

// ParseMonth returns the period spanning one "YYYY-MM" month, first
// through last calendar day. Month lengths and leap years come from
// time.Date normalization (day zero of the next month).
//
// On a malformed key the returned Period is open, so a caller that
// ignores the error ends up filtering nothing. Callers are expected to
// surface the error to the user instead.
func ParseMonth(key string) (Period, error) {
	t, err := time.Parse(model.MonthLayout, key)
	if err != nil {
		return Period{}, fmt.Errorf("parsing month %q: %w", key, err)
	}
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return Period{From: from, To: to}, nil
}

// ParseRange returns the period between two optional "YYYY-MM-DD"
// bounds. An empty string leaves that side open. Malformed bounds
// follow the same open-on-error contract as ParseMonth.
func ParseRange(from, to string) (Period, error) {
	var p Period
	if from != "" {
		t, err := time.Parse(model.DayLayout, from)
		if err != nil {
			return Period{}, fmt.Errorf("parsing range start %q: %w", from, err)
		}
		p.From = t
	}
	if to != "" {
		t, err := time.Parse(model.DayLayout, to)
		if err != nil {
			return Period{}, fmt.Errorf("parsing range end %q: %w", to, err)
		}
		p.To = t
	}
	return p, nil
}

// Filter returns a new ledger containing the records whose date falls
// inside the period. The receiver is never modified.
func (l Ledger) Filter(p Period) Ledger {
	if p.IsOpen() {
		return New(l.records)
	}

	var out []model.Record
	for _, r := range l.records {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return Ledger{records: out}
}

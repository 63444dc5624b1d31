package ledger

import (
	"testing"
	"time"

	"github.com/saldodev/finza/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DayLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func rec(t *testing.T, date string, kind model.Kind, category string, amount float64) model.Record {
	t.Helper()
	return model.Record{
		Date:     day(t, date),
		Kind:     kind,
		Category: category,
		Amount:   amount,
	}
}

func TestParseMonth_Bounds(t *testing.T) {
	p, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.From.Format(model.DayLayout); got != "2025-03-01" {
		t.Errorf("From = %s, want 2025-03-01", got)
	}
	if got := p.To.Format(model.DayLayout); got != "2025-03-31" {
		t.Errorf("To = %s, want 2025-03-31", got)
	}
}

func TestParseMonth_LeapFebruary(t *testing.T) {
	p, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.To.Format(model.DayLayout); got != "2024-02-29" {
		t.Errorf("To = %s, want 2024-02-29", got)
	}

	p, err = ParseMonth("2025-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.To.Format(model.DayLayout); got != "2025-02-28" {
		t.Errorf("To = %s, want 2025-02-28", got)
	}
}

func TestParseMonth_MalformedIsOpen(t *testing.T) {
	p, err := ParseMonth("not-a-month")
	if err == nil {
		t.Fatal("expected error for malformed month key")
	}
	if !p.IsOpen() {
		t.Error("period for malformed key should be open")
	}

	// A caller that ignores the error ends up filtering nothing.
	led := New([]model.Record{
		rec(t, "2025-01-15", model.Income, "sales", 100),
		rec(t, "2025-02-15", model.Expense, "rent", 50),
	})
	if got := led.Filter(p).Len(); got != 2 {
		t.Errorf("Filter(open) kept %d records, want 2", got)
	}
}

func TestParseRange_OpenSides(t *testing.T) {
	p, err := ParseRange("", "2025-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.From.IsZero() {
		t.Error("empty from should leave the start open")
	}
	if !p.Contains(day(t, "1999-01-01")) {
		t.Error("open start should admit arbitrarily old dates")
	}
	if p.Contains(day(t, "2025-07-01")) {
		t.Error("date past the end bound should be excluded")
	}

	if _, err := ParseRange("2025-13-01", ""); err == nil {
		t.Error("expected error for malformed range start")
	}
}

func TestPeriod_ContainsInclusiveBounds(t *testing.T) {
	p, err := ParseMonth("2025-04")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		date string
		want bool
	}{
		{"2025-03-31", false},
		{"2025-04-01", true},
		{"2025-04-30", true},
		{"2025-05-01", false},
	}
	for _, c := range cases {
		if got := p.Contains(day(t, c.date)); got != c.want {
			t.Errorf("Contains(%s) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestFilter_DoesNotModifyReceiver(t *testing.T) {
	led := New([]model.Record{
		rec(t, "2025-01-10", model.Income, "sales", 100),
		rec(t, "2025-02-10", model.Expense, "rent", 40),
		rec(t, "2025-02-20", model.Expense, "food", 20),
	})

	feb, err := ParseMonth("2025-02")
	if err != nil {
		t.Fatal(err)
	}

	filtered := led.Filter(feb)
	if filtered.Len() != 2 {
		t.Errorf("filtered Len = %d, want 2", filtered.Len())
	}
	if led.Len() != 3 {
		t.Errorf("receiver Len = %d after Filter, want 3", led.Len())
	}
}

func TestFilter_Idempotent(t *testing.T) {
	led := New([]model.Record{
		rec(t, "2025-01-10", model.Income, "sales", 100),
		rec(t, "2025-02-10", model.Expense, "rent", 40),
	})

	feb, err := ParseMonth("2025-02")
	if err != nil {
		t.Fatal(err)
	}

	once := led.Filter(feb)
	twice := once.Filter(feb)
	if once.Len() != twice.Len() {
		t.Errorf("second Filter changed Len: %d -> %d", once.Len(), twice.Len())
	}
}

func TestFilter_CompositionIsIntersection(t *testing.T) {
	led := New([]model.Record{
		rec(t, "2025-01-10", model.Income, "sales", 100),
		rec(t, "2025-02-10", model.Expense, "rent", 40),
		rec(t, "2025-02-20", model.Expense, "food", 20),
		rec(t, "2025-03-05", model.Expense, "food", 10),
	})

	firstHalf, err := ParseRange("2025-01-01", "2025-02-15")
	if err != nil {
		t.Fatal(err)
	}
	feb, err := ParseMonth("2025-02")
	if err != nil {
		t.Fatal(err)
	}

	composed := led.Filter(firstHalf).Filter(feb)
	if composed.Len() != 1 {
		t.Fatalf("composed Len = %d, want 1", composed.Len())
	}
	if got := composed.Records()[0].Category; got != "rent" {
		t.Errorf("surviving record category = %q, want rent", got)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	records := []model.Record{
		rec(t, "2025-01-10", model.Income, "sales", 100),
	}
	led := New(records)

	records[0].Amount = 999
	if got := led.Records()[0].Amount; got != 100 {
		t.Errorf("snapshot amount = %g after caller mutation, want 100", got)
	}
}

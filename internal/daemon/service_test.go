package daemon

import (
	"math"
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Records: 10,
		Income:  900,
		Expense: 700,
		Net:     200,
	}
	curr := Snapshot{
		Records: 13,
		Income:  1050,
		Expense: 780.5,
		Net:     269.5,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Records != 3 {
		t.Fatalf("Records delta = %d, want 3", delta.Records)
	}
	if math.Abs(delta.Income-150) > 1e-9 {
		t.Fatalf("Income delta = %.2f, want 150.00", delta.Income)
	}
	if math.Abs(delta.Expense-80.5) > 1e-9 {
		t.Fatalf("Expense delta = %.2f, want 80.50", delta.Expense)
	}
	if math.Abs(delta.Net-69.5) > 1e-9 {
		t.Fatalf("Net delta = %.2f, want 69.50", delta.Net)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DataFile:     "records.csv",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

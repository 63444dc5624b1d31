package ledger

import (
	"math"
	"testing"

	"github.com/saldodev/finza/internal/model"
)

func TestMovingAverage_PartialWindows(t *testing.T) {
	got := MovingAverage([]float64{10, 20, 30}, 5)
	want := []float64{10, 15, 20}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("out[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestMovingAverage_SlidesAfterWindowFills(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 2)
	want := []float64{1, 1.5, 2.5, 3.5, 4.5}

	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("out[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestMovingAverage_WindowClampedToOne(t *testing.T) {
	in := []float64{3, 7, 11}
	got := MovingAverage(in, 0)
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("out[%d] = %g, want identity %g", i, got[i], in[i])
		}
	}
}

func TestMovingAverage_Empty(t *testing.T) {
	if got := MovingAverage(nil, 5); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestCumulative(t *testing.T) {
	got := Cumulative([]float64{100, -40, 25})
	want := []float64{100, 60, 85}

	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("out[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestTopN_FoldsTailIntoOther(t *testing.T) {
	entries := make([]model.CategoryExpense, 8)
	for i := range entries {
		entries[i] = model.CategoryExpense{
			Category: string(rune('a' + i)),
			Amount:   float64(80 - 10*i),
		}
	}

	got := TopN(entries, 6)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7 (6 kept + Other)", len(got))
	}

	last := got[6]
	if last.Category != OtherBucket {
		t.Errorf("last category = %q, want %q", last.Category, OtherBucket)
	}
	if last.Amount != 20+10 {
		t.Errorf("Other amount = %g, want 30", last.Amount)
	}
}

func TestTopN_FewEntriesUnchanged(t *testing.T) {
	entries := []model.CategoryExpense{
		{Category: "rent", Amount: 600},
		{Category: "food", Amount: 200},
	}

	got := TopN(entries, 6)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Category == OtherBucket {
			t.Error("no Other bucket expected when entries fit")
		}
	}
}

func TestTopN_ExactBoundary(t *testing.T) {
	entries := []model.CategoryExpense{
		{Category: "a", Amount: 3},
		{Category: "b", Amount: 2},
		{Category: "c", Amount: 1},
	}

	if got := TopN(entries, 3); len(got) != 3 {
		t.Errorf("len(entries)==n should be unchanged, got len %d", len(got))
	}
}

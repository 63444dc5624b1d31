package insight

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/ledger"
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
	return model.Record{Date: day(t, date), Kind: kind, Category: category, Amount: amount}
}

func TestAnalyze_RunwayWhenDraining(t *testing.T) {
	// Three months each netting -100.
	led := ledger.New([]model.Record{
		rec(t, "2025-01-15", model.Expense, "rent", 100),
		rec(t, "2025-02-15", model.Expense, "rent", 100),
		rec(t, "2025-03-15", model.Expense, "rent", 100),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.InitialBalance = 300

	out := Analyze(led, cfg)
	if out.RunwayMonths == nil {
		t.Fatal("RunwayMonths = nil, want 3.0")
	}
	if math.Abs(*out.RunwayMonths-3.0) > 1e-9 {
		t.Errorf("RunwayMonths = %g, want 3.0", *out.RunwayMonths)
	}
}

func TestAnalyze_RunwayNotApplicableWhenSaving(t *testing.T) {
	led := ledger.New([]model.Record{
		rec(t, "2025-01-15", model.Income, "sales", 150),
		rec(t, "2025-01-20", model.Expense, "rent", 100),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.InitialBalance = 300

	out := Analyze(led, cfg)
	if out.RunwayMonths != nil {
		t.Errorf("RunwayMonths = %g with positive net, want nil", *out.RunwayMonths)
	}
}

func TestAnalyze_RunwayNeedsPositiveBalance(t *testing.T) {
	led := ledger.New([]model.Record{
		rec(t, "2025-01-15", model.Expense, "rent", 100),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.InitialBalance = 0

	out := Analyze(led, cfg)
	if out.RunwayMonths != nil {
		t.Errorf("RunwayMonths = %g with zero balance, want nil", *out.RunwayMonths)
	}
}

func TestAnalyze_SavingsRateEndToEnd(t *testing.T) {
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Income, "ventas", 900),
		rec(t, "2025-01-10", model.Expense, "alquiler", 600),
		rec(t, "2025-01-12", model.Expense, "marketing", 150),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.SavingsGoalPct = 10

	out := Analyze(led, cfg)
	if math.Abs(out.RealSavingsPct-16.6666) > 0.01 {
		t.Errorf("RealSavingsPct = %.4f, want 16.67", out.RealSavingsPct)
	}
	if out.SavingsGapPct >= 0 {
		t.Errorf("SavingsGapPct = %.4f, want negative (goal exceeded)", out.SavingsGapPct)
	}
	if out.SavingsPlan != nil {
		t.Error("SavingsPlan should be nil when the goal is already met")
	}
	if out.DeficitNote != nil {
		t.Error("DeficitNote should be nil with a positive net")
	}
	if out.BreakEven != 750 {
		t.Errorf("BreakEven = %g, want 750", out.BreakEven)
	}
}

func TestCapAlerts_OverCap(t *testing.T) {
	// marketing is 150/800 = 18.75% of spending, above a 15% cap.
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Income, "sales", 1000),
		rec(t, "2025-01-10", model.Expense, "rent", 650),
		rec(t, "2025-01-12", model.Expense, "marketing", 150),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.CategoryCaps = []config.CategoryCap{
		{Category: "marketing", CapPct: 15},
	}

	out := Analyze(led, cfg)
	if len(out.Alerts) != 1 {
		t.Fatalf("len(Alerts) = %d, want 1", len(out.Alerts))
	}
	al := out.Alerts[0]
	if al.Severity != model.SeverityWarn {
		t.Errorf("Severity = %v, want warn", al.Severity)
	}
	if !strings.Contains(al.Message, "18.8%") && !strings.Contains(al.Message, "18.7%") {
		t.Errorf("message %q should carry the usage share", al.Message)
	}
}

func TestCapAlerts_ZeroExpensesNeverAlert(t *testing.T) {
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Income, "sales", 1000),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.CategoryCaps = []config.CategoryCap{
		{Category: "marketing", CapPct: 15},
	}

	out := Analyze(led, cfg)
	if len(out.Alerts) != 0 {
		t.Errorf("len(Alerts) = %d with no expenses, want 0", len(out.Alerts))
	}
}

func TestGrowthAlerts_Thresholds(t *testing.T) {
	cases := []struct {
		name     string
		lastExp  float64
		wantLen  int
		severity model.Severity
	}{
		{"rise past threshold", 130, 1, model.SeverityWarn},
		{"drop past threshold", 70, 1, model.SeverityGood},
		{"inside threshold", 110, 0, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			led := ledger.New([]model.Record{
				rec(t, "2025-01-15", model.Expense, "rent", 100),
				rec(t, "2025-02-15", model.Expense, "rent", c.lastExp),
			})
			cfg := config.DefaultConfig() // growth_alert_pct 20

			out := Analyze(led, cfg)
			if len(out.Alerts) != c.wantLen {
				t.Fatalf("len(Alerts) = %d, want %d", len(out.Alerts), c.wantLen)
			}
			if c.wantLen > 0 && out.Alerts[0].Severity != c.severity {
				t.Errorf("Severity = %v, want %v", out.Alerts[0].Severity, c.severity)
			}
		})
	}
}

func TestAnalyze_AlertOrdering(t *testing.T) {
	// Trigger a growth alert and two cap alerts. Growth comes first,
	// then the caps in their declaration order.
	led := ledger.New([]model.Record{
		rec(t, "2025-01-10", model.Expense, "rent", 100),
		rec(t, "2025-02-10", model.Expense, "rent", 300),
		rec(t, "2025-02-12", model.Expense, "marketing", 200),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.CategoryCaps = []config.CategoryCap{
		{Category: "marketing", CapPct: 10},
		{Category: "rent", CapPct: 20},
	}

	out := Analyze(led, cfg)
	if len(out.Alerts) != 3 {
		t.Fatalf("len(Alerts) = %d, want 3", len(out.Alerts))
	}
	if !strings.Contains(out.Alerts[0].Message, "rose") {
		t.Errorf("first alert %q should be the growth alert", out.Alerts[0].Message)
	}
	if !strings.Contains(out.Alerts[1].Message, "marketing") {
		t.Errorf("second alert %q should be the marketing cap", out.Alerts[1].Message)
	}
	if !strings.Contains(out.Alerts[2].Message, "rent") {
		t.Errorf("third alert %q should be the rent cap", out.Alerts[2].Message)
	}
}

func TestSavingsPlan_TrimWalk(t *testing.T) {
	// Income 1000, expenses 950, savings 5% against a 10% goal:
	// gap 5 pts, target 50. Top category rent can yield 20% of 600 = 120,
	// so the first trim covers the whole target and the walk stops.
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Income, "sales", 1000),
		rec(t, "2025-01-10", model.Expense, "rent", 600),
		rec(t, "2025-01-12", model.Expense, "food", 250),
		rec(t, "2025-01-14", model.Expense, "transport", 100),
	})
	cfg := config.DefaultConfig() // goal 10%, trim 20%

	out := Analyze(led, cfg)
	if out.SavingsPlan == nil {
		t.Fatal("SavingsPlan = nil, want a plan")
	}
	plan := out.SavingsPlan
	if math.Abs(plan.Target-50) > 1e-9 {
		t.Errorf("Target = %g, want 50", plan.Target)
	}
	if len(plan.Trims) != 1 {
		t.Fatalf("len(Trims) = %d, want 1 (first cut covers the target)", len(plan.Trims))
	}
	tr := plan.Trims[0]
	if tr.Category != "rent" {
		t.Errorf("trim category = %q, want rent", tr.Category)
	}
	if math.Abs(tr.Cut-50) > 1e-9 {
		t.Errorf("Cut = %g, want 50", tr.Cut)
	}
	if math.Abs(tr.PctOfCategory-50.0/600*100) > 1e-9 {
		t.Errorf("PctOfCategory = %g, want %g", tr.PctOfCategory, 50.0/600*100)
	}
}

func TestSavingsPlan_CapsEachCut(t *testing.T) {
	// Gap target larger than any single 20% trim: each cut maxes out
	// at trimPct of its category, across the top three only.
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Income, "sales", 1000),
		rec(t, "2025-01-10", model.Expense, "rent", 400),
		rec(t, "2025-01-12", model.Expense, "food", 300),
		rec(t, "2025-01-14", model.Expense, "transport", 200),
		rec(t, "2025-01-16", model.Expense, "misc", 95),
	})
	cfg := config.DefaultConfig()
	cfg.Financial.SavingsGoalPct = 25 // savings 0.5%, gap 24.5 pts, target 245

	out := Analyze(led, cfg)
	if out.SavingsPlan == nil {
		t.Fatal("SavingsPlan = nil, want a plan")
	}
	trims := out.SavingsPlan.Trims
	if len(trims) != 3 {
		t.Fatalf("len(Trims) = %d, want 3 (top three categories)", len(trims))
	}
	wantCuts := []float64{80, 60, 40} // 20% of 400, 300, 200
	for i, w := range wantCuts {
		if math.Abs(trims[i].Cut-w) > 1e-9 {
			t.Errorf("Trims[%d].Cut = %g, want %g", i, trims[i].Cut, w)
		}
	}
}

func TestAnalyze_DeficitNote(t *testing.T) {
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Income, "sales", 500),
		rec(t, "2025-01-10", model.Expense, "rent", 800),
	})
	cfg := config.DefaultConfig()

	out := Analyze(led, cfg)
	if out.DeficitNote == nil {
		t.Fatal("DeficitNote = nil, want a note")
	}
	if out.DeficitNote.Deficit != 300 {
		t.Errorf("Deficit = %g, want 300", out.DeficitNote.Deficit)
	}
	if out.DeficitNote.BreakEven != 800 {
		t.Errorf("BreakEven = %g, want 800", out.DeficitNote.BreakEven)
	}
}

func TestAnalyze_TopExpensesCappedAtThree(t *testing.T) {
	led := ledger.New([]model.Record{
		rec(t, "2025-01-05", model.Expense, "a", 50),
		rec(t, "2025-01-06", model.Expense, "b", 40),
		rec(t, "2025-01-07", model.Expense, "c", 30),
		rec(t, "2025-01-08", model.Expense, "d", 20),
	})

	out := Analyze(led, config.DefaultConfig())
	if len(out.TopExpenses) != 3 {
		t.Fatalf("len(TopExpenses) = %d, want 3", len(out.TopExpenses))
	}
	if out.TopExpenses[0].Category != "a" {
		t.Errorf("top category = %q, want a", out.TopExpenses[0].Category)
	}
}

func TestAnalyze_EmptyLedger(t *testing.T) {
	out := Analyze(ledger.New(nil), config.DefaultConfig())
	if out.AvgMonthlyNet != 0 {
		t.Errorf("AvgMonthlyNet = %g, want 0", out.AvgMonthlyNet)
	}
	if out.RunwayMonths != nil {
		t.Error("RunwayMonths should be nil for an empty ledger")
	}
	if len(out.Alerts) != 0 || out.SavingsPlan != nil || out.DeficitNote != nil {
		t.Error("empty ledger should produce no advice")
	}
}

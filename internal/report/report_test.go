package report

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/saldodev/finza/internal/model"
)

func sampleData() Data {
	runway := 4.5
	return Data{
		Period:         "2025-01 .. 2025-02",
		InitialBalance: 1200,
		GeneratedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Stats: model.SummaryStats{
			Income:     900,
			Expense:    750,
			Net:        150,
			SavingsPct: 16.6667,
		},
		Insight: model.Insight{
			AvgMonthlyNet:  -266.67,
			RunwayMonths:   &runway,
			SavingsGoalPct: 10,
			RealSavingsPct: 16.67,
			SavingsGapPct:  -6.67,
			BreakEven:      750,
			TopExpenses: []model.CategoryExpense{
				{Category: "alquiler", Amount: 600},
				{Category: "marketing", Amount: 150},
			},
			Alerts: []model.Alert{
				{Severity: model.SeverityWarn, Message: "marketing takes 20.0% of spending, above its 15.0% cap."},
			},
		},
		Monthly: []model.MonthlyFlow{
			{Month: "2025-01", Income: 900, Expense: 750, Net: 150},
			{Month: "2025-02", Income: 0, Expense: 0, Net: 0},
		},
	}
}

// headings parses markdown and returns the text of each heading with
// its level.
func headings(t *testing.T, md string) map[string]int {
	t.Helper()
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	src := []byte(md)
	doc := parser.Parse(text.NewReader(src))

	out := make(map[string]int)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering {
			var sb strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					sb.Write(txt.Segment.Value(src))
				}
			}
			out[sb.String()] = h.Level
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown AST: %v", err)
	}
	return out
}

func TestBuild_HeadingStructure(t *testing.T) {
	md, err := Build(sampleData())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	hs := headings(t, md)
	want := map[string]int{
		"Finance Report 2025-01 .. 2025-02": 1,
		"KPIs":     2,
		"Analysis": 2,
		"Alerts":   3,
		"Monthly":  2,
	}
	for text, level := range want {
		if hs[text] != level {
			t.Errorf("heading %q level = %d, want %d", text, hs[text], level)
		}
	}
}

func TestBuild_Content(t *testing.T) {
	md, err := Build(sampleData())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, want := range []string{
		"Income: $900.00",
		"Savings rate: 16.67%",
		"Runway: 4.5 months (initial balance $1,200.00)",
		"1. alquiler: $600.00",
		"Break-even: income ≥ $750.00",
		"marketing takes 20.0% of spending",
		"| 2025-01 | $900.00 | $750.00 | $150.00 |",
		"Generated by finza on 2025-03-01",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestBuild_OmitsOptionalSections(t *testing.T) {
	d := sampleData()
	d.Insight.RunwayMonths = nil
	d.Insight.Alerts = nil
	d.Insight.SavingsPlan = nil
	d.Insight.DeficitNote = nil
	d.Monthly = nil

	md, err := Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	hs := headings(t, md)
	for _, absent := range []string{"Alerts", "Recommendations", "Monthly"} {
		if _, ok := hs[absent]; ok {
			t.Errorf("heading %q should be omitted", absent)
		}
	}
	if strings.Contains(md, "Runway") {
		t.Error("runway line should be omitted when not applicable")
	}
}

func TestBuild_Recommendations(t *testing.T) {
	d := sampleData()
	d.Insight.SavingsPlan = &model.SavingsPlan{
		Target: 50,
		Trims: []model.Trim{
			{Category: "marketing", Cut: 30, PctOfCategory: 20},
		},
	}
	d.Insight.DeficitNote = &model.DeficitNote{Deficit: 300, BreakEven: 800}

	md, err := Build(d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if hs := headings(t, md); hs["Recommendations"] != 3 {
		t.Errorf("Recommendations heading level = %d, want 3", hs["Recommendations"])
	}
	if !strings.Contains(md, "marketing: cut $30.00 (~20% of that category)") {
		t.Error("savings plan trim missing from report")
	}
	if !strings.Contains(md, "deficit of $300.00") {
		t.Error("deficit note missing from report")
	}
}

func TestBuild_MonthlyTableRows(t *testing.T) {
	md, err := Build(sampleData())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	src := []byte(md)
	doc := parser.Parse(text.NewReader(src))

	var rows int
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind().String() == "TableRow" {
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown AST: %v", err)
	}
	if rows != 2 {
		t.Errorf("table rows = %d, want 2", rows)
	}
}

package ledger

import (
	"testing"
	"time"

	"github.com/saldodev/finza/internal/model"
)

// benchRecords builds a year of synthetic data: one income and three
// expenses per day across a handful of categories.
func benchRecords(days int) []model.Record {
	categories := []string{"rent", "food", "marketing", "transport", "supplies"}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var out []model.Record
	for d := 0; d < days; d++ {
		date := start.AddDate(0, 0, d)
		out = append(out, model.Record{
			Date: date, Kind: model.Income, Category: "sales", Amount: 300 + float64(d%7)*10,
		})
		for i := 0; i < 3; i++ {
			out = append(out, model.Record{
				Date: date, Kind: model.Expense,
				Category: categories[(d+i)%len(categories)],
				Amount:   20 + float64((d*i)%50),
			})
		}
	}
	return out
}

func BenchmarkTotals(b *testing.B) {
	led := New(benchRecords(365))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = led.Totals()
	}
}

func BenchmarkExpenseByCategory(b *testing.B) {
	led := New(benchRecords(365))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = led.ExpenseByCategory()
	}
}

func BenchmarkMonthlyFlows(b *testing.B) {
	led := New(benchRecords(365))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = led.MonthlyFlows()
	}
}

func BenchmarkFilterMonth(b *testing.B) {
	led := New(benchRecords(365))
	p, err := ParseMonth("2025-06")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = led.Filter(p)
	}
}

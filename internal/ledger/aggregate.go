package ledger

import (
	"sort"
	"time"

	"github.com/saldodev/finza/internal/model"
)

// Totals sums income and expense amounts across the snapshot.
// An empty ledger yields all zeros.
func (l Ledger) Totals() model.Totals {
	var t model.Totals
	for _, r := range l.records {
		switch r.Kind {
		case model.Income:
			t.Income += r.Amount
		case model.Expense:
			t.Expense += r.Amount
		}
	}
	t.Net = t.Income - t.Expense
	return t
}

// ExpenseByCategory totals expense records per category, sorted by
// amount descending. Equal amounts keep first-encountered order.
func (l Ledger) ExpenseByCategory() []model.CategoryExpense {
	totals := make(map[string]float64)
	var order []string

	for _, r := range l.records {
		if r.Kind != model.Expense {
			continue
		}
		if _, ok := totals[r.Category]; !ok {
			order = append(order, r.Category)
		}
		totals[r.Category] += r.Amount
	}

	out := make([]model.CategoryExpense, 0, len(order))
	for _, c := range order {
		out = append(out, model.CategoryExpense{Category: c, Amount: totals[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount > out[j].Amount
	})
	return out
}

// DailyNet sums signed amounts per calendar day, ascending by date.
// Only days present in the data appear; there is no gap filling.
func (l Ledger) DailyNet() []model.DailyNet {
	dayMap := make(map[string]float64)
	for _, r := range l.records {
		dayMap[r.DayKey()] += r.Signed()
	}

	days := make([]model.DailyNet, 0, len(dayMap))
	for key, net := range dayMap {
		t, _ := time.Parse(model.DayLayout, key)
		days = append(days, model.DailyNet{Date: t, Net: net})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// MonthlyNet sums signed amounts per "YYYY-MM" month, ascending by key.
func (l Ledger) MonthlyNet() []model.MonthlyNet {
	monthMap := make(map[string]float64)
	for _, r := range l.records {
		monthMap[r.MonthKey()] += r.Signed()
	}

	months := make([]model.MonthlyNet, 0, len(monthMap))
	for key, net := range monthMap {
		months = append(months, model.MonthlyNet{Month: key, Net: net})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

// MonthlyFlows builds per-month income/expense/net triples, ascending
// by month key. The months are the union of months seen on either
// side; a month with only income shows zero expense and vice versa.
func (l Ledger) MonthlyFlows() []model.MonthlyFlow {
	flowMap := make(map[string]*model.MonthlyFlow)

	for _, r := range l.records {
		key := r.MonthKey()
		f, ok := flowMap[key]
		if !ok {
			f = &model.MonthlyFlow{Month: key}
			flowMap[key] = f
		}
		switch r.Kind {
		case model.Income:
			f.Income += r.Amount
		case model.Expense:
			f.Expense += r.Amount
		}
	}

	flows := make([]model.MonthlyFlow, 0, len(flowMap))
	for _, f := range flowMap {
		f.Net = f.Income - f.Expense
		flows = append(flows, *f)
	}
	sort.Slice(flows, func(i, j int) bool {
		return flows[i].Month < flows[j].Month
	})
	return flows
}

// Stats computes the summary line for the snapshot: totals, savings
// rate over income, and the top expense category.
func (l Ledger) Stats() model.SummaryStats {
	t := l.Totals()
	stats := model.SummaryStats{
		Income:  t.Income,
		Expense: t.Expense,
		Net:     t.Net,
	}

	if t.Income > 0 {
		stats.SavingsPct = t.Net / t.Income * 100
	}

	if byCat := l.ExpenseByCategory(); len(byCat) > 0 {
		stats.TopCategory = byCat[0].Category
		stats.TopCategoryAmount = byCat[0].Amount
	}

	return stats
}

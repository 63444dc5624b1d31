// Package insight derives planning metrics, alerts, and savings
// recommendations from a ledger snapshot and the financial settings.
package insight

import (
	"fmt"
	"math"

	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/model"
)

// Analyze computes the full insight bundle for a ledger snapshot.
// It is a pure function: neither the ledger nor the settings are
// modified, and the same inputs always produce the same bundle.
//
// Alert order is fixed: the expense growth alert (when triggered)
// comes first, then category cap alerts in the order the caps are
// declared in the settings.
func Analyze(led ledger.Ledger, cfg config.Config) model.Insight {
	totals := led.Totals()
	byCat := led.ExpenseByCategory()
	flows := led.MonthlyFlows()

	var avg float64
	if len(flows) > 0 {
		var sum float64
		for _, f := range flows {
			sum += f.Net
		}
		avg = sum / float64(len(flows))
	}

	out := model.Insight{
		AvgMonthlyNet:  avg,
		SavingsGoalPct: cfg.Financial.SavingsGoalPct,
		BreakEven:      totals.Expense,
	}

	// Runway only applies when the balance is draining.
	if avg < 0 && cfg.Financial.InitialBalance > 0 {
		runway := math.Max(0, cfg.Financial.InitialBalance/math.Abs(avg))
		out.RunwayMonths = &runway
	}

	if totals.Income > 0 {
		out.RealSavingsPct = totals.Net / totals.Income * 100
	}
	out.SavingsGapPct = out.SavingsGoalPct - out.RealSavingsPct

	out.Alerts = append(out.Alerts, growthAlerts(flows, cfg.Analysis.GrowthAlertPct)...)
	out.Alerts = append(out.Alerts, capAlerts(byCat, totals.Expense, cfg.Financial.CategoryCaps)...)

	out.SavingsPlan = savingsPlan(totals, byCat, out.SavingsGapPct, cfg.Analysis.TrimPct)

	if totals.Net < 0 {
		out.DeficitNote = &model.DeficitNote{
			Deficit:   -totals.Net,
			BreakEven: totals.Expense,
		}
	}

	top := byCat
	if len(top) > 3 {
		top = top[:3]
	}
	out.TopExpenses = top

	return out
}

// growthAlerts compares the last two months of expenses. A swing past
// the threshold in either direction produces one alert; a drop is
// reported as good news.
func growthAlerts(flows []model.MonthlyFlow, thresholdPct float64) []model.Alert {
	if len(flows) < 2 {
		return nil
	}

	last := flows[len(flows)-1]
	prev := flows[len(flows)-2]

	prevExpense := prev.Expense
	if prevExpense == 0 {
		prevExpense = 1
	}
	growth := 100 * (last.Expense/prevExpense - 1)

	switch {
	case growth > thresholdPct:
		return []model.Alert{{
			Severity: model.SeverityWarn,
			Message:  fmt.Sprintf("Expenses rose %.1f%% vs %s. Check for one-off increases.", growth, prev.Month),
		}}
	case growth < -thresholdPct:
		return []model.Alert{{
			Severity: model.SeverityGood,
			Message:  fmt.Sprintf("Expenses fell %.1f%% vs %s. Keep it up.", -growth, prev.Month),
		}}
	}
	return nil
}

// capAlerts flags categories whose share of total expenses exceeds
// their configured cap. A zero expense total uses divisor 1, so every
// usage computes to 0% instead of dividing by zero.
func capAlerts(byCat []model.CategoryExpense, totalExpense float64, caps []config.CategoryCap) []model.Alert {
	if len(caps) == 0 {
		return nil
	}

	catTotals := make(map[string]float64, len(byCat))
	for _, c := range byCat {
		catTotals[c.Category] = c.Amount
	}

	divisor := totalExpense
	if divisor == 0 {
		divisor = 1
	}

	var alerts []model.Alert
	for _, cc := range caps {
		usage := 100 * catTotals[cc.Category] / divisor
		if usage > cc.CapPct {
			alerts = append(alerts, model.Alert{
				Severity: model.SeverityWarn,
				Message: fmt.Sprintf("%s takes %.1f%% of spending, above its %.1f%% cap. Consider cutting back.",
					cc.Category, usage, cc.CapPct),
			})
		}
	}
	return alerts
}

// savingsPlan proposes cuts across the top three expense categories
// until the savings gap is covered. Each cut is limited to trimPct of
// the category; the walk stops once less than one unit remains.
func savingsPlan(totals model.Totals, byCat []model.CategoryExpense, gapPct, trimPct float64) *model.SavingsPlan {
	if totals.Income <= 0 || gapPct <= 0 {
		return nil
	}

	target := totals.Income * gapPct / 100
	plan := model.SavingsPlan{Target: target}
	remaining := target

	top := byCat
	if len(top) > 3 {
		top = top[:3]
	}

	for _, c := range top {
		cut := math.Min(c.Amount*trimPct/100, remaining)
		if cut > 0 {
			plan.Trims = append(plan.Trims, model.Trim{
				Category:      c.Category,
				Cut:           cut,
				PctOfCategory: cut / c.Amount * 100,
			})
			remaining -= cut
		}
		if remaining <= 1 {
			break
		}
	}

	if len(plan.Trims) == 0 {
		return nil
	}
	return &plan
}

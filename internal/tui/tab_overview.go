package tui

import (
	"fmt"
	"strings"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/model"
	"github.com/saldodev/finza/internal/tui/components"
	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Metric cards
	netDelta := ""
	if len(a.flows) >= 2 {
		last := a.flows[len(a.flows)-1]
		prev := a.flows[len(a.flows)-2]
		netDelta = fmt.Sprintf("%s vs %s", cli.FormatDelta(last.Net, prev.Net), cli.FormatMonth(prev.Month))
	}

	savingsDelta := fmt.Sprintf("goal %s", cli.FormatPercent(a.insight.SavingsGoalPct))
	if a.insight.SavingsGapPct > 0 {
		savingsDelta = fmt.Sprintf("%.1f pts short of %s", a.insight.SavingsGapPct, cli.FormatPercent(a.insight.SavingsGoalPct))
	}

	expenseDelta := ""
	if a.stats.TopCategory != "" {
		expenseDelta = fmt.Sprintf("top: %s", truncStr(a.stats.TopCategory, 16))
	}

	netTone := components.ToneGain
	if a.totals.Net < 0 {
		netTone = components.ToneLoss
	}
	cards := []components.Metric{
		{Label: "Income", Value: cli.FormatMoney(a.totals.Income), Note: fmt.Sprintf("%d record(s)", a.led.Len())},
		{Label: "Expenses", Value: cli.FormatMoney(a.totals.Expense), Note: expenseDelta},
		{Label: "Net", Value: cli.FormatMoney(a.totals.Net), Note: netDelta, Tone: netTone},
		{Label: "Savings", Value: cli.FormatPercent(a.stats.SavingsPct), Note: savingsDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly net, signed horizontal bars
	if len(a.flows) > 0 {
		b.WriteString(components.ContentCard(
			"Monthly Net",
			a.renderMonthlyNetBars(components.CardInnerWidth(cw)),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Top Expenses + Alerts
	halves := components.LayoutRow(cw, 2)

	var topCard string
	if len(a.insight.TopExpenses) > 0 {
		topCard = components.ContentCard(
			"Top Expenses",
			renderCategoryBars(a.insight.TopExpenses, a.totals.Expense, components.CardInnerWidth(halves[0])),
			halves[0],
		)
	}

	var alertBody strings.Builder
	if len(a.insight.Alerts) == 0 {
		alertBody.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("Nothing to flag. Spending looks steady."))
		alertBody.WriteString("\n")
	} else {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		for _, al := range a.insight.Alerts {
			line := "• " + al.Message
			if al.Severity == model.SeverityWarn {
				alertBody.WriteString(warnStyle.Render(line))
			} else {
				alertBody.WriteString(goodStyle.Render(line))
			}
			alertBody.WriteString("\n")
		}
	}
	alertCard := components.ContentCard("Alerts", alertBody.String(), halves[1])

	if a.isCompactLayout() {
		if topCard != "" {
			b.WriteString(components.ContentCard(
				"Top Expenses",
				renderCategoryBars(a.insight.TopExpenses, a.totals.Expense, components.CardInnerWidth(cw)),
				cw,
			))
			b.WriteString("\n")
		}
		b.WriteString(components.ContentCard("Alerts", alertBody.String(), cw))
	} else {
		b.WriteString(components.CardRow([]string{topCard, alertCard}))
	}

	return b.String()
}

// renderMonthlyNetBars draws one signed bar per month, green to the
// right of the axis for surplus, red for deficit.
func (a App) renderMonthlyNetBars(innerW int) string {
	t := theme.Active

	var peak float64
	for _, f := range a.flows {
		v := f.Net
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	// "Jan 2006 " prefix + amount column on the right.
	barMax := (innerW - 10 - 12) / 2
	if barMax < 4 {
		barMax = 4
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	for _, f := range a.flows {
		barLen := int(f.Net / peak * float64(barMax))
		if barLen < 0 {
			barLen = -barLen
		}

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", cli.FormatMonth(f.Month))))
		if f.Net < 0 {
			b.WriteString(lossStyle.Render(fmt.Sprintf("%*s", barMax, strings.Repeat("█", barLen))))
			b.WriteString(axisStyle.Render("│"))
			b.WriteString(axisStyle.Render(strings.Repeat(" ", barMax)))
			b.WriteString(lossStyle.Render(" " + cli.FormatMoney(f.Net)))
		} else {
			b.WriteString(axisStyle.Render(strings.Repeat(" ", barMax)))
			b.WriteString(axisStyle.Render("│"))
			b.WriteString(gainStyle.Render(fmt.Sprintf("%-*s", barMax, strings.Repeat("█", barLen))))
			b.WriteString(gainStyle.Render(" " + cli.FormatMoney(f.Net)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderCategoryBars draws one labeled bar per category with its
// share of the expense total.
func renderCategoryBars(cats []model.CategoryExpense, totalExpense float64, innerW int) string {
	t := theme.Active

	nameW := innerW / 3
	if nameW < 10 {
		nameW = 10
	}
	barMax := innerW - nameW - 18
	if barMax < 4 {
		barMax = 4
	}

	var peak float64
	for _, c := range cats {
		if c.Amount > peak {
			peak = c.Amount
		}
	}
	if peak == 0 {
		peak = 1
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for _, c := range cats {
		barLen := int(c.Amount / peak * float64(barMax))
		share := ""
		if totalExpense > 0 {
			share = fmt.Sprintf("%4.1f%%", c.Amount/totalExpense*100)
		}
		fmt.Fprintf(&b, "%s %s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW))),
			barStyle.Render(fmt.Sprintf("%-*s", barMax, strings.Repeat("█", barLen))),
			amtStyle.Render(fmt.Sprintf("%10s", cli.FormatMoney(c.Amount))),
			pctStyle.Render(share))
	}
	return b.String()
}

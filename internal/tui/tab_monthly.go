package tui

import (
	"fmt"
	"strings"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/tui/components"
	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderMonthlyTab(cw int) string {
	t := theme.Active

	if len(a.flows) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No records in the selected period.")
		return components.ContentCard("Monthly", empty+"\n", cw)
	}

	expenses := make([]float64, len(a.flows))
	labels := make([]string, len(a.flows))
	for i, f := range a.flows {
		expenses[i] = f.Expense
		labels[i] = f.Month
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(
		"Expense Trend",
		components.BarChart(expenses, labels, t.Accent, components.CardInnerWidth(cw), 8)+"\n",
		cw,
	))
	b.WriteString("\n")
	b.WriteString(components.ContentCard(
		"Income vs Expenses",
		a.renderMonthlyPairs(components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")
	b.WriteString(components.ContentCard(
		"Month by Month",
		a.renderMonthlyTable(components.CardInnerWidth(cw)),
		cw,
	))
	return b.String()
}

// renderMonthlyPairs draws an income bar and an expense bar for each
// month, both scaled to the largest side seen.
func (a App) renderMonthlyPairs(innerW int) string {
	t := theme.Active

	var maxSide float64
	for _, f := range a.flows {
		if f.Income > maxSide {
			maxSide = f.Income
		}
		if f.Expense > maxSide {
			maxSide = f.Expense
		}
	}
	if maxSide == 0 {
		maxSide = 1
	}

	barMax := innerW - 9 - 5 - 13
	if barMax < 6 {
		barMax = 6
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	inStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	outStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	for _, f := range a.flows {
		inLen := int(f.Income / maxSide * float64(barMax))
		outLen := int(f.Expense / maxSide * float64(barMax))

		b.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", cli.FormatMonth(f.Month))))
		b.WriteString(labelStyle.Render(" in  "))
		b.WriteString(inStyle.Render(fmt.Sprintf("%-*s", barMax, strings.Repeat("█", inLen))))
		b.WriteString(inStyle.Render(fmt.Sprintf(" %11s", cli.FormatMoney(f.Income))))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(strings.Repeat(" ", 9)))
		b.WriteString(labelStyle.Render(" out "))
		b.WriteString(outStyle.Render(fmt.Sprintf("%-*s", barMax, strings.Repeat("█", outLen))))
		b.WriteString(outStyle.Render(fmt.Sprintf(" %11s", cli.FormatMoney(f.Expense))))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMonthlyTable shows income, expenses, net, and expense growth
// against the prior month.
func (a App) renderMonthlyTable(innerW int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-9s %12s %12s %12s %8s", "Month", "Income", "Expenses", "Net", "Exp Δ")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	for i, f := range a.flows {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-9s", cli.FormatMonth(f.Month))))
		b.WriteString(gainStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(f.Income))))
		b.WriteString(lossStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(f.Expense))))

		netStr := fmt.Sprintf(" %12s", cli.FormatMoney(f.Net))
		if f.Net < 0 {
			b.WriteString(lossStyle.Render(netStr))
		} else {
			b.WriteString(gainStyle.Render(netStr))
		}

		if i > 0 {
			prev := a.flows[i-1].Expense
			if prev == 0 {
				prev = 1
			}
			growth := 100 * (f.Expense/prev - 1)
			growthStr := fmt.Sprintf(" %8s", cli.FormatGrowth(growth))
			if growth > a.cfg.Analysis.GrowthAlertPct {
				b.WriteString(warnStyle.Render(growthStr))
			} else {
				b.WriteString(mutedStyle.Render(growthStr))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

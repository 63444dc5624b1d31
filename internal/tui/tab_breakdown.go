package tui

import (
	"fmt"
	"strings"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/tui/components"
	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active

	if len(a.byCat) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No expenses in the selected period.")
		return components.ContentCard("Expenses by Category", empty+"\n", cw)
	}

	grouped := ledger.TopN(a.byCat, a.cfg.Analysis.TopCategories)

	var b strings.Builder
	b.WriteString(components.ContentCard(
		"Expenses by Category",
		renderCategoryBars(grouped, a.totals.Expense, components.CardInnerWidth(cw)),
		cw,
	))
	b.WriteString("\n")
	b.WriteString(components.ContentCard(
		"All Categories",
		a.renderCategoryTable(components.CardInnerWidth(cw)),
		cw,
	))
	return b.String()
}

// renderCategoryTable lists every category with amount, share, and a
// running cumulative share (pareto-style).
func (a App) renderCategoryTable(innerW int) string {
	t := theme.Active

	fixedCols := 12 + 7 + 7 // Amount, Share, Cum.
	gaps := 3
	nameW := innerW - fixedCols - gaps
	if nameW < 14 {
		nameW = 14
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	cumStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %12s %7s %7s", nameW, "Category", "Amount", "Share", "Cum.")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	var cum float64
	for _, c := range a.byCat {
		share := 0.0
		if a.totals.Expense > 0 {
			share = c.Amount / a.totals.Expense * 100
		}
		cum += share
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW))))
		b.WriteString(amtStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(c.Amount))))
		b.WriteString(rowStyle.Render(fmt.Sprintf(" %6.1f%%", share)))
		b.WriteString(cumStyle.Render(fmt.Sprintf(" %6.1f%%", cum)))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", nameW, "TOTAL")))
	b.WriteString(amtStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(a.totals.Expense))))
	b.WriteString("\n")

	return b.String()
}

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

func (a App) renderInsightsTab(cw int) string {
	ins := a.insight
	var b strings.Builder

	// Row 1: Metric cards
	runwayValue := "n/a"
	runwayDelta := "not burning cash"
	if ins.RunwayMonths != nil {
		runwayValue = fmt.Sprintf("%.1f mo", *ins.RunwayMonths)
		runwayDelta = fmt.Sprintf("balance %s", cli.FormatMoney(a.cfg.Financial.InitialBalance))
	}

	gapDelta := "goal reached"
	if ins.SavingsGapPct > 0 {
		gapDelta = fmt.Sprintf("%.1f pts to go", ins.SavingsGapPct)
	}

	avgTone := components.ToneGain
	if ins.AvgMonthlyNet < 0 {
		avgTone = components.ToneLoss
	}
	runwayTone := components.ToneNeutral
	if ins.RunwayMonths != nil {
		runwayTone = components.ToneLoss
	}
	cards := []components.Metric{
		{Label: "Avg Monthly Net", Value: cli.FormatMoney(ins.AvgMonthlyNet), Note: fmt.Sprintf("%d month(s)", len(a.flows)), Tone: avgTone},
		{Label: "Runway", Value: runwayValue, Note: runwayDelta, Tone: runwayTone},
		{Label: "Savings Rate", Value: cli.FormatPercent(ins.RealSavingsPct), Note: gapDelta},
		{Label: "Break-even", Value: cli.FormatMoney(ins.BreakEven), Note: "income to cover costs"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Savings goal + category caps
	halves := components.LayoutRow(cw, 2)
	goalCard := components.ContentCard("Savings Goal", a.renderGoalBody(components.CardInnerWidth(halves[0])), halves[0])
	capsCard := components.ContentCard("Category Caps", a.renderCapsBody(components.CardInnerWidth(halves[1])), halves[1])
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Savings Goal", a.renderGoalBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Category Caps", a.renderCapsBody(components.CardInnerWidth(cw)), cw))
	} else {
		b.WriteString(components.CardRow([]string{goalCard, capsCard}))
	}
	b.WriteString("\n")

	// Row 3: Alerts + recommendations
	b.WriteString(components.ContentCard("Alerts & Recommendations", a.renderAdviceBody(), cw))

	return b.String()
}

func (a App) renderGoalBody(innerW int) string {
	t := theme.Active
	ins := a.insight

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	progress := 0.0
	if ins.SavingsGoalPct > 0 {
		progress = ins.RealSavingsPct / ins.SavingsGoalPct
	}

	barW := innerW - 8 - 7
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	b.WriteString(components.GoalBar("toward", progress, 8, barW))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("goal ") + valueStyle.Render(cli.FormatPercent(ins.SavingsGoalPct)))
	b.WriteString(labelStyle.Render("  actual ") + valueStyle.Render(cli.FormatPercent(ins.RealSavingsPct)))
	b.WriteString(labelStyle.Render("  gap ") + valueStyle.Render(fmt.Sprintf("%.1f pts", ins.SavingsGapPct)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("cushion target: %.1f months of expenses", a.cfg.Financial.CushionMonthsTarget)))
	b.WriteString("\n")
	return b.String()
}

func (a App) renderCapsBody(innerW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	caps := a.cfg.Financial.CategoryCaps
	if len(caps) == 0 {
		return labelStyle.Render("No caps set. Try `finza config set cap.rent 40`.") + "\n"
	}

	catTotals := make(map[string]float64, len(a.byCat))
	for _, c := range a.byCat {
		catTotals[c.Category] = c.Amount
	}
	divisor := a.totals.Expense
	if divisor == 0 {
		divisor = 1
	}

	labelW := 12
	barW := innerW - labelW - 7 - 14
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, cc := range caps {
		usage := 100 * catTotals[cc.Category] / divisor
		frac := 0.0
		if cc.CapPct > 0 {
			frac = usage / cc.CapPct
		}
		b.WriteString(components.CapBar(truncStr(cc.Category, labelW), frac, labelW, barW))
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %4.1f/%.0f%%", usage, cc.CapPct)))
		b.WriteString("\n")
	}
	return b.String()
}

func (a App) renderAdviceBody() string {
	t := theme.Active
	ins := a.insight

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	badStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder

	for _, al := range ins.Alerts {
		line := "• " + al.Message
		if al.Severity == model.SeverityWarn {
			b.WriteString(warnStyle.Render(line))
		} else {
			b.WriteString(goodStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if ins.SavingsPlan != nil {
		b.WriteString(textStyle.Render(fmt.Sprintf("To reach your savings goal, free up %s:", cli.FormatMoney(ins.SavingsPlan.Target))))
		b.WriteString("\n")
		for _, tr := range ins.SavingsPlan.Trims {
			b.WriteString(labelStyle.Render(fmt.Sprintf("  • %s: cut %s (~%.0f%% of that category)",
				tr.Category, cli.FormatMoney(tr.Cut), tr.PctOfCategory)))
			b.WriteString("\n")
		}
	}

	if ins.DeficitNote != nil {
		b.WriteString(badStyle.Render(fmt.Sprintf("• Deficit of %s. Break even with income ≥ %s or cut expenses.",
			cli.FormatMoney(ins.DeficitNote.Deficit), cli.FormatMoney(ins.DeficitNote.BreakEven))))
		b.WriteString("\n")
	}

	if len(ins.Alerts) == 0 && ins.SavingsPlan == nil && ins.DeficitNote == nil {
		b.WriteString(labelStyle.Render("All clear. Income covers expenses and the savings goal is met."))
		b.WriteString("\n")
	}

	return b.String()
}

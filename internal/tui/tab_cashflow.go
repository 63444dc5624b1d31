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

func (a App) renderCashFlowTab(cw int) string {
	t := theme.Active

	if len(a.daily) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("No records in the selected period.")
		return components.ContentCard("Cash Flow", empty+"\n", cw)
	}

	nets := make([]float64, len(a.daily))
	for i, d := range a.daily {
		nets[i] = d.Net
	}

	window := a.cfg.Analysis.MAWindow
	if window < 2 {
		window = 2
	}
	ma := ledger.MovingAverage(nets, window)
	running := ledger.Cumulative(nets)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	// Daily net sparkline with min/avg/max.
	var sum, lo, hi float64
	lo, hi = nets[0], nets[0]
	for _, v := range nets {
		sum += v
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	avg := sum / float64(len(nets))

	var dailyBody strings.Builder
	dailyBody.WriteString(components.NetSparkline(nets))
	dailyBody.WriteString("\n")
	dailyBody.WriteString(labelStyle.Render(fmt.Sprintf("%s → %s   ", a.daily[0].Date.Format("Jan 2"), a.daily[len(a.daily)-1].Date.Format("Jan 2"))))
	dailyBody.WriteString(labelStyle.Render("min ") + valueStyle.Render(cli.FormatMoney(lo)))
	dailyBody.WriteString(labelStyle.Render("  avg ") + valueStyle.Render(cli.FormatMoney(avg)))
	dailyBody.WriteString(labelStyle.Render("  max ") + valueStyle.Render(cli.FormatMoney(hi)))
	dailyBody.WriteString("\n")

	// Smoothed trend.
	var maBody strings.Builder
	maBody.WriteString(components.NetSparkline(ma))
	maBody.WriteString("\n")
	maBody.WriteString(labelStyle.Render("latest ") + valueStyle.Render(cli.FormatMoney(ma[len(ma)-1])))
	maBody.WriteString(labelStyle.Render(fmt.Sprintf("  (%d-day trailing mean)", window)))
	maBody.WriteString("\n")

	// Cumulative balance on top of the starting balance.
	start := a.cfg.Financial.InitialBalance
	balances := make([]float64, len(running))
	for i, v := range running {
		balances[i] = start + v
	}
	endBalance := balances[len(balances)-1]

	var cumBody strings.Builder
	cumBody.WriteString(components.NetSparkline(balances))
	cumBody.WriteString("\n")
	cumBody.WriteString(labelStyle.Render("start ") + valueStyle.Render(cli.FormatMoney(start)))
	cumBody.WriteString(labelStyle.Render("  end "))
	cumBody.WriteString(cli.ColorizeNet(cli.FormatMoney(endBalance), endBalance))
	cumBody.WriteString("\n")

	var b strings.Builder
	b.WriteString(components.ContentCard("Daily Net", dailyBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard(fmt.Sprintf("Moving Average (%dd)", window), maBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Cumulative Balance", cumBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard(
		"Recent Days",
		a.renderRecentDays(nets, ma, balances, components.CardInnerWidth(cw)),
		cw,
	))
	return b.String()
}

// renderRecentDays tabulates the last rows of the daily series,
// newest last so the table reads like a bank statement.
func (a App) renderRecentDays(nets, ma, balances []float64, innerW int) string {
	t := theme.Active

	const maxRows = 10
	startIdx := len(a.daily) - maxRows
	if startIdx < 0 {
		startIdx = 0
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %4s %12s %12s %12s", "Date", "Day", "Net", "MA", "Balance")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	for i := startIdx; i < len(a.daily); i++ {
		d := a.daily[i]
		netStr := fmt.Sprintf("%12s", cli.FormatMoney(nets[i]))
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-12s", d.Date.Format("2006-01-02"))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %4s", cli.FormatDayOfWeek(int(d.Date.Weekday())))))
		if nets[i] < 0 {
			b.WriteString(lossStyle.Render(netStr))
		} else {
			b.WriteString(gainStyle.Render(netStr))
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(ma[i]))))
		b.WriteString(rowStyle.Render(fmt.Sprintf(" %12s", cli.FormatMoney(balances[i]))))
		b.WriteString("\n")
	}
	return b.String()
}

package components

import (
	"fmt"

	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUsage returns green/yellow/orange/red as utilization climbs.
// Used for spending caps, where high means trouble.
func ColorForUsage(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// ColorForGoal returns red/orange/yellow/green as goal progress climbs.
// Used for savings goals, where high means on track.
func ColorForGoal(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.8:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Yellow)
	case pct >= 0.25:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// GoalBar renders a labeled goal-progress bar with percentage.
func GoalBar(label string, pct float64, labelW, barWidth int) string {
	return labeledBar(label, pct, labelW, barWidth, ColorForGoal(pct))
}

// CapBar renders a labeled cap-usage bar with percentage.
func CapBar(label string, pct float64, labelW, barWidth int) string {
	return labeledBar(label, pct, labelW, barWidth, ColorForUsage(pct))
}

func labeledBar(label string, pct float64, labelW, barWidth int, fill string) string {
	t := theme.Active

	shown := pct
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(shown) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

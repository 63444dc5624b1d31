// Package components provides reusable TUI widgets for the finza dashboard.
package components

import (
	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tone selects the value color of a metric card.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneGain
	ToneLoss
)

// Metric is one KPI shown as a small bordered card: a headline value
// with a muted label above and an optional note below.
type Metric struct {
	Label string
	Value string
	Note  string
	Tone  Tone
}

func cardFrame(outerWidth int) lipgloss.Style {
	w := outerWidth - 2
	if w < 10 {
		w = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(w).
		Padding(0, 1)
}

func (m Metric) valueColor() lipgloss.Color {
	t := theme.Active
	switch m.Tone {
	case ToneGain:
		return t.Green
	case ToneLoss:
		return t.Red
	}
	return t.TextPrimary
}

// Render draws the metric at the given outer width, border included.
func (m Metric) Render(outerWidth int) string {
	t := theme.Active

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) +
		"\n" +
		lipgloss.NewStyle().Foreground(m.valueColor()).Bold(true).Render(m.Value)
	if m.Note != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Note)
	}

	return cardFrame(outerWidth).Render(body)
}

// MetricCardRow lays the metrics out side by side across totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = m.Render(widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// LayoutRow splits totalWidth into n column widths summing to exactly
// totalWidth, leftmost columns absorbing the division remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
		if i < totalWidth%n {
			widths[i]++
		}
	}
	return widths
}

// ContentCard renders a bordered card around body with an optional
// bold title line. outerWidth is the total width including border.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		content = lipgloss.NewStyle().
			Foreground(theme.Active.TextMuted).
			Bold(true).
			Render(title) + "\n" + body
	}
	return cardFrame(outerWidth).Render(content)
}

// CardRow joins pre-rendered card strings horizontally, top aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// of the given outer width (border and padding subtracted).
func CardInnerWidth(outerWidth int) int {
	if w := outerWidth - 4; w >= 10 {
		return w
	}
	return 10
}

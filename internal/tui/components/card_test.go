package components

import (
	"strings"
	"testing"

	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor so styles emit ANSI codes under `go test`.
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{90, 3, []int{30, 30, 30}},
		{91, 3, []int{31, 30, 30}},
		{92, 3, []int{31, 31, 30}},
		{10, 4, []int{3, 3, 2, 2}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		sum := 0
		for i, w := range got {
			if w != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d)[%d] = %d, want %d", tt.total, tt.n, i, w, tt.want[i])
			}
			sum += w
		}
		if tt.n > 0 && sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestMetricRenderTones(t *testing.T) {
	gain := Metric{Label: "Net", Value: "$200.00", Tone: ToneGain}.Render(24)
	if !strings.Contains(gain, "\x1b[") {
		t.Error("gain metric should carry color codes")
	}

	loss := Metric{Label: "Net", Value: "-$50.00", Tone: ToneLoss}.Render(24)
	if gain == loss {
		t.Error("gain and loss metrics should render differently")
	}

	withNote := Metric{Label: "Runway", Value: "3.0 mo", Note: "balance $300.00"}.Render(24)
	if !strings.Contains(withNote, "3.0 mo") || !strings.Contains(withNote, "balance $300.00") {
		t.Error("metric should include value and note text")
	}
	noteLines := len(strings.Split(withNote, "\n"))
	bare := Metric{Label: "Runway", Value: "3.0 mo"}.Render(24)
	if len(strings.Split(bare, "\n")) >= noteLines {
		t.Error("note should add a line to the card")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "$900.00"},
		{Label: "Expenses", Value: "$750.00"},
		{Label: "Net", Value: "$150.00", Tone: ToneGain},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("row line %d width = %d, want 90", i, w)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	short := ContentCard("Goal", "on track", 22)
	tall := ContentCard("Caps", "rent 40%\nfood 25%\nmarketing 15%\ntravel 5%", 22)

	shortLines := len(strings.Split(short, "\n"))
	tallLines := len(strings.Split(tall, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("setup: short card (%d lines) should be below tall card (%d lines)", shortLines, tallLines)
	}

	joined := CardRow([]string{tall, short})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined row has %d lines, want %d (tallest card)", got, tallLines)
	}
}

func TestContentCardTitle(t *testing.T) {
	titled := ContentCard("Alerts", "all clear", 30)
	if !strings.Contains(titled, "Alerts") || !strings.Contains(titled, "all clear") {
		t.Error("card should contain title and body")
	}

	untitled := ContentCard("", "all clear", 30)
	if len(strings.Split(untitled, "\n")) >= len(strings.Split(titled, "\n")) {
		t.Error("title should add a line")
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(8); got != 10 {
		t.Errorf("CardInnerWidth(8) = %d, want floor of 10", got)
	}
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/tui/components"
	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldBalance = iota
	settingsFieldSavingsGoal
	settingsFieldCushion
	settingsFieldGrowthAlert
	settingsFieldTopCategories
	settingsFieldTrimPct
	settingsFieldMAWindow
	settingsFieldTheme
	settingsFieldAutoRefresh
	settingsFieldRefreshInterval
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldBalance:
		ti.Placeholder = "0.00"
		ti.SetValue(fmt.Sprintf("%.2f", a.cfg.Financial.InitialBalance))
	case settingsFieldSavingsGoal:
		ti.Placeholder = "10 (percent of income)"
		ti.SetValue(fmt.Sprintf("%g", a.cfg.Financial.SavingsGoalPct))
	case settingsFieldCushion:
		ti.Placeholder = "3 (months of expenses)"
		ti.SetValue(fmt.Sprintf("%g", a.cfg.Financial.CushionMonthsTarget))
	case settingsFieldGrowthAlert:
		ti.Placeholder = "20 (percent month over month)"
		ti.SetValue(fmt.Sprintf("%g", a.cfg.Analysis.GrowthAlertPct))
	case settingsFieldTopCategories:
		ti.Placeholder = "6"
		ti.SetValue(strconv.Itoa(a.cfg.Analysis.TopCategories))
	case settingsFieldTrimPct:
		ti.Placeholder = "20 (max cut per category)"
		ti.SetValue(fmt.Sprintf("%g", a.cfg.Analysis.TrimPct))
	case settingsFieldMAWindow:
		ti.Placeholder = "5 (days)"
		ti.SetValue(strconv.Itoa(a.cfg.Analysis.MAWindow))
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, flexoki-light, catppuccin-mocha, catppuccin-latte"
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldAutoRefresh:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(a.autoRefresh))
	case settingsFieldRefreshInterval:
		ti.Placeholder = "30 (seconds, minimum 10)"
		intervalSec := int(a.refreshInterval.Seconds())
		if intervalSec < 10 {
			intervalSec = 30
		}
		ti.SetValue(strconv.Itoa(intervalSec))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	switch a.settings.cursor {
	case settingsFieldBalance:
		var v float64
		if _, err := fmt.Sscanf(val, "%f", &v); err == nil {
			a.cfg.Financial.InitialBalance = v
		}
	case settingsFieldSavingsGoal:
		var v float64
		if _, err := fmt.Sscanf(val, "%f", &v); err == nil && v >= 0 && v <= 100 {
			a.cfg.Financial.SavingsGoalPct = v
		}
	case settingsFieldCushion:
		var v float64
		if _, err := fmt.Sscanf(val, "%f", &v); err == nil && v > 0 {
			a.cfg.Financial.CushionMonthsTarget = v
		}
	case settingsFieldGrowthAlert:
		var v float64
		if _, err := fmt.Sscanf(val, "%f", &v); err == nil && v > 0 {
			a.cfg.Analysis.GrowthAlertPct = v
		}
	case settingsFieldTopCategories:
		var n int
		if _, err := fmt.Sscanf(val, "%d", &n); err == nil && n > 0 {
			a.cfg.Analysis.TopCategories = n
		}
	case settingsFieldTrimPct:
		var v float64
		if _, err := fmt.Sscanf(val, "%f", &v); err == nil && v > 0 && v <= 100 {
			a.cfg.Analysis.TrimPct = v
		}
	case settingsFieldMAWindow:
		var n int
		if _, err := fmt.Sscanf(val, "%d", &n); err == nil && n >= 2 {
			a.cfg.Analysis.MAWindow = n
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldAutoRefresh:
		a.cfg.TUI.AutoRefresh = val == "true" || val == "1" || val == "yes"
		a.autoRefresh = a.cfg.TUI.AutoRefresh
	case settingsFieldRefreshInterval:
		var interval int
		if _, err := fmt.Sscanf(val, "%d", &interval); err == nil && interval >= 10 {
			a.cfg.TUI.RefreshIntervalSec = interval
			a.refreshInterval = time.Duration(interval) * time.Second
		}
	}

	a.recompute()
	a.settings.saveErr = config.Save(a.cfg)
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	refreshIntervalSec := int(a.refreshInterval.Seconds())
	if refreshIntervalSec < 10 {
		refreshIntervalSec = 30 // match the effective default
	}

	fields := []field{
		{"Initial Balance", cli.FormatMoney(a.cfg.Financial.InitialBalance)},
		{"Savings Goal", cli.FormatPercent(a.cfg.Financial.SavingsGoalPct)},
		{"Cushion Target", fmt.Sprintf("%g months", a.cfg.Financial.CushionMonthsTarget)},
		{"Growth Alert", cli.FormatPercent(a.cfg.Analysis.GrowthAlertPct)},
		{"Top Categories", strconv.Itoa(a.cfg.Analysis.TopCategories)},
		{"Trim Limit", cli.FormatPercent(a.cfg.Analysis.TrimPct)},
		{"MA Window", fmt.Sprintf("%d days", a.cfg.Analysis.MAWindow)},
		{"Theme", a.cfg.Appearance.Theme},
		{"Auto Refresh", strconv.FormatBool(a.autoRefresh)},
		{"Refresh Interval", fmt.Sprintf("%ds", refreshIntervalSec)},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// General info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Data file:      ") + valueStyle.Render(a.dataFile) + "\n")
	infoBody.WriteString(labelStyle.Render("Records loaded: ") + valueStyle.Render(strconv.Itoa(len(a.records))) + "\n")
	if a.dropped > 0 {
		infoBody.WriteString(labelStyle.Render("Rows dropped:   ") + valueStyle.Render(strconv.Itoa(a.dropped)) + "\n")
	}
	infoBody.WriteString(labelStyle.Render("Load time:      ") + valueStyle.Render(fmt.Sprintf("%.1fs", a.loadTime.Seconds())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:    ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}

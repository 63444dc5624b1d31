package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/tui"
	"github.com/saldodev/finza/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Long:  "Open the full-screen dashboard: overview, categories, cash flow, monthly, insights, and settings tabs.",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := loadSettings()
	theme.SetActive(cfg.Appearance.Theme)

	// Without an explicit TrueColor profile lipgloss may fall back to
	// Ascii and drop the background fills the cards rely on.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(cfg, dataFilePath(cfg), flagNoCache)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/source"
	"github.com/saldodev/finza/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard answers.
type setupValues struct {
	balance string
	profile string
	theme   string
	seed    bool
}

// newSetupForm builds the first-run setup form shown when no config
// file exists yet. recordCount and dataFile are display-only context.
func newSetupForm(recordCount int, dataFile string, vals *setupValues) *huh.Form {
	vals.profile = "balanced"
	vals.theme = theme.Active.Name
	vals.seed = recordCount == 0

	profileOpts := make([]huh.Option[string], 0, len(config.Profiles()))
	for _, p := range config.Profiles() {
		profileOpts = append(profileOpts,
			huh.NewOption(fmt.Sprintf("%s — %s", p.Name, p.Description), p.Name))
	}

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	fields := []huh.Field{
		huh.NewNote().
			Title("Welcome to finza!").
			Description(fmt.Sprintf("Found %d record(s) in %s.\nA few questions and you're set.", recordCount, dataFile)),
		huh.NewInput().
			Title("Starting cash balance").
			Description("Used for the runway estimate when you run at a loss. Leave 0 to skip.").
			Value(&vals.balance).
			Placeholder("0").
			Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" || s == "0" {
					return nil
				}
				if _, err := source.ParseAmount(s); err != nil {
					return errors.New("enter a positive number")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Savings profile").
			Options(profileOpts...).
			Value(&vals.profile),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themeOpts...).
			Value(&vals.theme),
	}

	if recordCount == 0 {
		fields = append(fields, huh.NewConfirm().
			Title("Seed sample data?").
			Description("Writes a small two-month sample so the dashboard has something to show.").
			Value(&vals.seed))
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

// saveSetupConfig applies the wizard answers to the config file and
// optionally writes the sample data set.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()

	if bal := strings.TrimSpace(a.setupVals.balance); bal != "" && bal != "0" {
		if amt, err := source.ParseAmount(bal); err == nil {
			cfg.Financial.InitialBalance = amt
		}
	}

	if p, ok := config.ProfileByName(a.setupVals.profile); ok {
		p.Apply(&cfg.Financial)
	}

	if a.setupVals.theme != "" {
		cfg.Appearance.Theme = a.setupVals.theme
		theme.SetActive(a.setupVals.theme)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	if a.setupVals.seed && len(a.records) == 0 {
		if _, err := os.Stat(a.dataFile); os.IsNotExist(err) {
			if err := source.WriteSeed(a.dataFile); err != nil {
				return err
			}
			a.records = source.SeedRecords()
		}
	}

	return nil
}

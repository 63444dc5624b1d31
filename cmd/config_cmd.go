// Package cmd implements the finza CLI commands.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(config.ConfigPath())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration value",
	Long: `Set one configuration value and save the config file.

Keys:
  data_dir                 records directory
  initial_balance          starting cash balance
  savings_goal_pct         savings goal as a percent of income
  cushion_months_target    months of expenses to keep in reserve
  growth_alert_pct         expense growth alert threshold
  top_categories           categories shown before grouping into Other
  trim_pct                 suggested cut per category
  ma_window                moving average window in days
  theme                    color theme name
  cap.<category>           category spending cap in percent (0 removes)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data file: %s\n", config.DataFilePath(cfg))
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data dir:  %s (from config)\n", cfg.General.DataDir)
	}
	fmt.Println()

	fmt.Println("  [Financial]")
	fmt.Printf("    Initial balance:  %s\n", cli.FormatMoney(cfg.Financial.InitialBalance))
	fmt.Printf("    Savings goal:     %s\n", cli.FormatPercent(cfg.Financial.SavingsGoalPct))
	fmt.Printf("    Cushion target:   %.1f months\n", cfg.Financial.CushionMonthsTarget)
	if len(cfg.Financial.CategoryCaps) == 0 {
		fmt.Println("    Category caps:    none")
	} else {
		fmt.Println("    Category caps:")
		for _, cc := range cfg.Financial.CategoryCaps {
			fmt.Printf("      %-14s %s of spending\n", cc.Category, cli.FormatPercent(cc.CapPct))
		}
	}
	fmt.Println()

	fmt.Println("  [Analysis]")
	fmt.Printf("    Growth alert:     ±%s\n", cli.FormatPercent(cfg.Analysis.GrowthAlertPct))
	fmt.Printf("    Top categories:   %d\n", cfg.Analysis.TopCategories)
	fmt.Printf("    Trim suggestion:  %s per category\n", cli.FormatPercent(cfg.Analysis.TrimPct))
	fmt.Printf("    MA window:        %d days\n", cfg.Analysis.MAWindow)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `finza setup` to reconfigure.")
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cat, ok := strings.CutPrefix(key, "cap."); ok {
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("cap %q: %w", value, err)
		}
		setCategoryCap(&cfg, cat, pct)
	} else if err := setConfigKey(&cfg, key, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Set %s = %s\n", key, value)
	return nil
}

func setConfigKey(cfg *config.Config, key, value string) error {
	parseFloat := func() (float64, error) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", key, value, err)
		}
		return f, nil
	}
	parseInt := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", key, value, err)
		}
		return n, nil
	}

	switch key {
	case "data_dir":
		cfg.General.DataDir = value
	case "initial_balance":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Financial.InitialBalance = f
	case "savings_goal_pct":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Financial.SavingsGoalPct = f
	case "cushion_months_target":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Financial.CushionMonthsTarget = f
	case "growth_alert_pct":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Analysis.GrowthAlertPct = f
	case "trim_pct":
		f, err := parseFloat()
		if err != nil {
			return err
		}
		cfg.Analysis.TrimPct = f
	case "top_categories":
		n, err := parseInt()
		if err != nil {
			return err
		}
		cfg.Analysis.TopCategories = n
	case "ma_window":
		n, err := parseInt()
		if err != nil {
			return err
		}
		cfg.Analysis.MAWindow = n
	case "theme":
		cfg.Appearance.Theme = value
	default:
		return fmt.Errorf("unknown key %q (see `finza config set --help`)", key)
	}
	return nil
}

// setCategoryCap upserts a cap, keeping existing declaration order. A
// non-positive percentage removes the cap.
func setCategoryCap(cfg *config.Config, category string, pct float64) {
	caps := cfg.Financial.CategoryCaps
	for i, cc := range caps {
		if cc.Category == category {
			if pct <= 0 {
				cfg.Financial.CategoryCaps = append(caps[:i], caps[i+1:]...)
			} else {
				caps[i].CapPct = pct
			}
			return
		}
	}
	if pct > 0 {
		cfg.Financial.CategoryCaps = append(caps, config.CategoryCap{Category: category, CapPct: pct})
	}
}

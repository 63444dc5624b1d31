package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/source"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

var setupSeed bool

func init() {
	setupCmd.Flags().BoolVar(&setupSeed, "seed", false, "Write a small sample dataset if the data file is missing")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	fmt.Println()
	fmt.Println("  Welcome to finza!")
	fmt.Println()

	// 1. Data directory
	fmt.Println("  1. Where should records live?")
	fmt.Printf("     Current: %s\n", config.DataDir(cfg))
	fmt.Print("     New path (Enter to keep) > ")
	dataDir, _ := reader.ReadString('\n')
	dataDir = strings.TrimSpace(dataDir)
	if dataDir != "" {
		cfg.General.DataDir = dataDir
	}
	fmt.Println()

	// 2. Initial balance
	fmt.Println("  2. Starting cash balance")
	fmt.Println("     Used for the runway estimate when you run at a loss.")
	fmt.Printf("     Current: %.2f\n", cfg.Financial.InitialBalance)
	fmt.Print("     New balance (Enter to keep) > ")
	balance, _ := reader.ReadString('\n')
	balance = strings.TrimSpace(balance)
	if balance != "" {
		if amt, err := source.ParseAmount(balance); err == nil {
			cfg.Financial.InitialBalance = amt
		} else {
			fmt.Println("     Couldn't parse that, keeping the current value.")
		}
	}
	fmt.Println()

	// 3. Savings profile
	fmt.Println("  3. Savings profile")
	for i, p := range config.Profiles() {
		marker := ""
		if p.Name == "balanced" {
			marker = " [default]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, p.Name, marker)
		fmt.Printf("         %s\n", p.Description)
	}
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	profiles := config.Profiles()
	switch choice {
	case "1":
		profiles[0].Apply(&cfg.Financial)
	case "3":
		profiles[2].Apply(&cfg.Financial)
	default:
		profiles[1].Apply(&cfg.Financial)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Flexoki Light")
	fmt.Println("     (3) Catppuccin Mocha")
	fmt.Println("     (4) Catppuccin Latte")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "flexoki-light"
	case "3":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "4":
		cfg.Appearance.Theme = "catppuccin-latte"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())

	if setupSeed {
		path := config.DataFilePath(cfg)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  Data file already exists at %s, not seeding.\n", path)
		} else {
			if err := source.WriteSeed(path); err != nil {
				return fmt.Errorf("seeding data: %w", err)
			}
			fmt.Printf("  Wrote %d sample record(s) to %s\n", len(source.SeedRecords()), path)
		}
	}

	fmt.Println("  Run `finza setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/insight"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/model"
	"github.com/saldodev/finza/internal/pipeline"
	"github.com/saldodev/finza/internal/store"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Data file, cache, and savings goal status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg := loadSettings()
	path := dataFilePath(cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINZA STATUS"))
	fmt.Println()

	fmt.Println("  Data")
	fmt.Printf("    Records file: %s\n", path)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Println("    Status:       missing (run `finza setup`)")
		fmt.Println()
		return nil
	} else if err != nil {
		return err
	}
	fmt.Printf("    Size:         %s bytes\n", cli.FormatNumber(info.Size()))

	result, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("    Records:      %s\n", cli.FormatNumber(int64(len(result.Records))))
	if result.Dropped > 0 {
		fmt.Printf("    Skipped rows: %d\n", result.Dropped)
	}
	fmt.Println()

	fmt.Println("  Cache")
	fmt.Printf("    Database: %s\n", pipeline.CachePath())
	if cache, err := store.Open(pipeline.CachePath()); err == nil {
		tracked, ok, terr := cache.TrackedFile(path)
		count, _ := cache.RecordCount()
		_ = cache.Close()
		switch {
		case terr != nil:
			fmt.Printf("    State:    error (%v)\n", terr)
		case !ok:
			fmt.Println("    State:    cold (no entry for this file)")
		case tracked.MtimeNs == info.ModTime().UnixNano() && tracked.SizeBytes == info.Size():
			fmt.Printf("    State:    fresh (%s cached record(s))\n", cli.FormatNumber(int64(count)))
		default:
			fmt.Println("    State:    stale (will reparse on next run)")
		}
	} else {
		fmt.Println("    State:    unavailable")
	}
	fmt.Println()

	fmt.Println("  Config")
	fmt.Printf("    File: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("    Status: loaded")
	} else {
		fmt.Println("    Status: using defaults (no config file)")
	}
	fmt.Println()

	if len(result.Records) > 0 {
		led := ledger.New(result.Records)
		ins := insight.Analyze(led, cfg)
		totals := led.Totals()

		fmt.Println("  Pulse")
		fmt.Printf("    Income:   %s\n", cli.FormatMoney(totals.Income))
		fmt.Printf("    Expenses: %s\n", cli.FormatMoney(totals.Expense))
		netLine := cli.FormatMoney(totals.Net)
		if flows := led.MonthlyFlows(); len(flows) >= 2 {
			last := flows[len(flows)-1]
			prev := flows[len(flows)-2]
			netLine += fmt.Sprintf("  (%s vs %s)",
				cli.FormatDelta(last.Net, prev.Net), cli.FormatMonth(prev.Month))
		}
		fmt.Printf("    Net:      %s\n", netLine)

		progress := 0.0
		if ins.SavingsGoalPct > 0 {
			progress = ins.RealSavingsPct / ins.SavingsGoalPct
		}
		fmt.Printf("    Savings:  %s  %s of %s goal\n",
			savingsBar(progress, 20),
			cli.FormatPercent(ins.RealSavingsPct),
			cli.FormatPercent(ins.SavingsGoalPct))
		if ins.RunwayMonths != nil {
			fmt.Printf("    Runway:   %.1f months at the current burn\n", *ins.RunwayMonths)
		}

		if len(ins.Alerts) > 0 {
			fmt.Println()
			for _, a := range ins.Alerts {
				line := "    • " + a.Message
				if a.Severity == model.SeverityWarn {
					fmt.Println(cli.RenderWarn(line))
				} else {
					fmt.Println(cli.RenderGood(line))
				}
			}
		}
		fmt.Println()
	}

	return nil
}

func savingsBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	empty := width - filled

	// Color by goal attainment: short of halfway is red, close is
	// orange, near or past the goal is green.
	color := cli.ColorRed
	if pct >= 0.8 {
		color = cli.ColorGreen
	} else if pct >= 0.5 {
		color = cli.ColorOrange
	}

	barStyle := lipgloss.NewStyle().Foreground(color)
	dimStyle := lipgloss.NewStyle().Foreground(cli.ColorTextDim)

	return barStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", empty))
}

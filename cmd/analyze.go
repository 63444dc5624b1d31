package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/insight"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/model"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Savings analysis, alerts, and recommendations",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg := loadSettings()
	result, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("\n  No records yet.")
		return nil
	}

	led := ledger.New(result.Records).Filter(resolvePeriod())
	if led.Len() == 0 {
		fmt.Println("\n  No records in the selected period.")
		return nil
	}

	ins := insight.Analyze(led, cfg)
	totals := led.Totals()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ANALYSIS  %s", periodLabel())))
	fmt.Println()

	rows := [][]string{
		{"Avg monthly net", cli.FormatMoney(ins.AvgMonthlyNet)},
	}
	if ins.RunwayMonths != nil {
		rows = append(rows, []string{
			"Runway",
			fmt.Sprintf("%.1f months (balance %s)", *ins.RunwayMonths, cli.FormatMoney(cfg.Financial.InitialBalance)),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Savings goal", cli.FormatPercent(ins.SavingsGoalPct)},
		[]string{"Savings actual", cli.FormatPercent(ins.RealSavingsPct)},
		[]string{"Savings gap", fmt.Sprintf("%.1f pts", ins.SavingsGapPct)},
		[]string{"---"},
		[]string{"Break-even income", cli.FormatMoney(ins.BreakEven)},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if len(ins.TopExpenses) > 0 {
		topRows := make([][]string, 0, len(ins.TopExpenses))
		for _, c := range ins.TopExpenses {
			share := ""
			if totals.Expense > 0 {
				share = fmt.Sprintf("%.1f%%", c.Amount/totals.Expense*100)
			}
			topRows = append(topRows, []string{truncate(c.Category, 18), cli.FormatMoney(c.Amount), share})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Top Expenses",
			Headers: []string{"Category", "Amount", "Share"},
			Rows:    topRows,
		}))
	}

	if len(ins.Alerts) > 0 {
		fmt.Println("  Alerts")
		for _, a := range ins.Alerts {
			line := "  • " + a.Message
			if a.Severity == model.SeverityWarn {
				fmt.Println(cli.RenderWarn(line))
			} else {
				fmt.Println(cli.RenderGood(line))
			}
		}
		fmt.Println()
	}

	if ins.SavingsPlan != nil {
		fmt.Println("  To reach your savings goal:")
		for _, t := range ins.SavingsPlan.Trims {
			fmt.Printf("  • %s: cut %s (~%.0f%% of that category)\n",
				t.Category, cli.FormatMoney(t.Cut), t.PctOfCategory)
		}
		fmt.Println()
	}

	if ins.DeficitNote != nil {
		fmt.Println(cli.RenderBad(fmt.Sprintf(
			"  You are running a deficit of %s. Reach break-even with income ≥ %s or cut expenses.",
			cli.FormatMoney(ins.DeficitNote.Deficit),
			cli.FormatMoney(ins.DeficitNote.BreakEven))))
		fmt.Println()
	}

	return nil
}

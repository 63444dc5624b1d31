package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/ledger"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income, expenses, and savings at a glance",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg := loadSettings()
	result, err := loadRecords(cfg)
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		fmt.Println("\n  No records yet.")
		fmt.Println("  Run `finza setup` to get started, or `finza add` to enter a transaction.")
		return nil
	}

	led := ledger.New(result.Records).Filter(resolvePeriod())
	if led.Len() == 0 {
		fmt.Println("\n  No records in the selected period.")
		return nil
	}

	stats := led.Stats()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("FINZA SUMMARY  %s", periodLabel())))
	fmt.Println()

	rows := [][]string{
		{"Income", cli.FormatMoney(stats.Income)},
		{"Expenses", cli.FormatMoney(stats.Expense)},
		{"Net", cli.FormatMoney(stats.Net)},
		{"---"},
		{"Savings rate", fmt.Sprintf("%.2f%%", stats.SavingsPct)},
	}
	if stats.TopCategory != "" {
		rows = append(rows, []string{
			"Top expense",
			fmt.Sprintf("%s (%s)", stats.TopCategory, cli.FormatMoney(stats.TopCategoryAmount)),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Records", cli.FormatNumber(int64(led.Len()))})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}

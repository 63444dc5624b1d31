package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/ledger"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Expense ranking by category",
	RunE:  runCategories,
}

var categoriesAll bool

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesAll, "all", false, "Show every category instead of grouping the tail into Other")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
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
	byCat := led.ExpenseByCategory()
	if len(byCat) == 0 {
		fmt.Println("\n  No expenses in the selected period.")
		return nil
	}

	if !categoriesAll {
		byCat = ledger.TopN(byCat, cfg.Analysis.TopCategories)
	}

	totals := led.Totals()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES BY CATEGORY  %s", periodLabel())))
	fmt.Println()

	maxAmount := byCat[0].Amount
	for _, c := range byCat[1:] {
		if c.Amount > maxAmount {
			maxAmount = c.Amount
		}
	}

	rows := make([][]string, 0, len(byCat)+2)
	for _, c := range byCat {
		share := ""
		if totals.Expense > 0 {
			share = fmt.Sprintf("%.1f%%", c.Amount/totals.Expense*100)
		}
		rows = append(rows, []string{
			truncate(c.Category, 18),
			cli.FormatMoney(c.Amount),
			share,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMoney(totals.Expense), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}))

	for _, c := range byCat {
		fmt.Printf("  %-18s %s %s\n",
			truncate(c.Category, 18),
			cli.RenderHorizontalBar(c.Amount, maxAmount, 30),
			cli.FormatMoney(c.Amount))
	}
	fmt.Println()

	return nil
}

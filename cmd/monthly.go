package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/ledger"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Month-by-month income and expenses",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
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
	flows := led.MonthlyFlows()
	if len(flows) == 0 {
		fmt.Println("\n  No records in the selected period.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("MONTHLY CASH FLOW  %s", periodLabel())))
	fmt.Println()

	rows := make([][]string, 0, len(flows))
	for i, fl := range flows {
		growth := ""
		if i > 0 {
			prev := flows[i-1].Expense
			if prev == 0 {
				prev = 1
			}
			growth = cli.FormatGrowth(100 * (fl.Expense/prev - 1))
		}
		rows = append(rows, []string{
			fl.Month,
			cli.FormatMoney(fl.Income),
			cli.FormatMoney(fl.Expense),
			cli.FormatMoney(fl.Net),
			growth,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Income", "Expenses", "Net", "Exp Δ"},
		Rows:    rows,
	}))

	// Income vs expense bars, scaled to the largest side.
	var maxSide float64
	for _, fl := range flows {
		if fl.Income > maxSide {
			maxSide = fl.Income
		}
		if fl.Expense > maxSide {
			maxSide = fl.Expense
		}
	}
	for _, fl := range flows {
		fmt.Printf("  %s │ in  %s %s\n", fl.Month,
			cli.RenderHorizontalBar(fl.Income, maxSide, 30),
			cli.FormatMoney(fl.Income))
		fmt.Printf("          │ out %s %s\n",
			cli.RenderHorizontalBar(fl.Expense, maxSide, 30),
			cli.FormatMoney(fl.Expense))
	}
	fmt.Println()

	return nil
}

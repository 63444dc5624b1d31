package cmd

import (
	"fmt"
	"sort"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/model"

	"github.com/spf13/cobra"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List transactions, most recent first",
	RunE:  runRecords,
}

var recordsLimit int

func init() {
	recordsCmd.Flags().IntVarP(&recordsLimit, "limit", "l", 20, "Number of records to show")
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(_ *cobra.Command, _ []string) error {
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
	records := led.Records()
	if len(records) == 0 {
		fmt.Println("\n  No records in the selected period.")
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	total := len(records)
	if recordsLimit > 0 && len(records) > recordsLimit {
		records = records[:recordsLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RECORDS  %s (showing %d of %d)", periodLabel(), len(records), total)))
	fmt.Println()

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		amount := cli.FormatMoney(r.Amount)
		if r.Kind == model.Expense {
			amount = "-" + amount
		}
		rows = append(rows, []string{
			r.DayKey(),
			string(r.Kind),
			truncate(r.Category, 14),
			truncate(r.Description, 24),
			amount,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Kind", "Category", "Description", "Amount"},
		Rows:    rows,
	}))
	if total > len(records) {
		fmt.Println(cli.RenderMuted(fmt.Sprintf("  %d older record(s) hidden, raise --limit to see them", total-len(records))))
	}

	return nil
}

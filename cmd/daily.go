package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/ledger"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily net cash flow table",
	RunE:  runDaily,
}

var dailyWindow int

func init() {
	dailyCmd.Flags().IntVarP(&dailyWindow, "window", "w", 0, "Moving average window in days (defaults to the configured window)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
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
	days := led.DailyNet()
	if len(days) == 0 {
		fmt.Println("\n  No records in the selected period.")
		return nil
	}

	window := dailyWindow
	if window <= 0 {
		window = cfg.Analysis.MAWindow
	}
	if window < 2 {
		window = 2
	}
	if window > 60 {
		window = 60
	}

	nets := make([]float64, len(days))
	for i, d := range days {
		nets[i] = d.Net
	}
	ma := ledger.MovingAverage(nets, window)

	running := ledger.Cumulative(nets)
	balance := cfg.Financial.InitialBalance

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY NET  %s", periodLabel())))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for i, d := range days {
		rows = append(rows, []string{
			d.Date.Format("2006-01-02"),
			cli.FormatDayOfWeek(int(d.Date.Weekday())),
			cli.FormatMoney(d.Net),
			cli.FormatMoney(ma[i]),
			cli.FormatMoney(balance + running[i]),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Net", fmt.Sprintf("MA(%d)", window), "Balance"},
		Rows:    rows,
	}))

	fmt.Printf("  Trend: %s\n\n", cli.RenderSparkline(nets))

	return nil
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/saldodev/finza/internal/insight"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Markdown finance report",
	Long:  "Build the full markdown report: KPIs, analysis, alerts, recommendations, and the monthly table.",
	RunE:  runReport,
}

var (
	reportRender bool
	reportOut    string
)

func init() {
	reportCmd.Flags().BoolVar(&reportRender, "render", false, "Style the markdown for the terminal")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
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

	md, err := report.Build(report.Data{
		Period:         periodLabel(),
		Stats:          led.Stats(),
		Insight:        insight.Analyze(led, cfg),
		Monthly:        led.MonthlyFlows(),
		InitialBalance: cfg.Financial.InitialBalance,
		GeneratedAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	if reportOut != "" {
		if err := os.WriteFile(reportOut, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("\n  Report written to %s\n\n", reportOut)
		return nil
	}

	if reportRender {
		styled, err := report.Render(md)
		if err != nil {
			return err
		}
		fmt.Print(styled)
		return nil
	}

	fmt.Print(md)
	return nil
}

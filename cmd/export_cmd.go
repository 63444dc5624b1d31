package cmd

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/saldodev/finza/internal/export"
	"github.com/saldodev/finza/internal/insight"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/report"
	"github.com/saldodev/finza/internal/source"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [archive.zip]",
	Short: "Bundle report, records, and settings into a zip",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	cfg := loadSettings()
	result, err := loadRecords(cfg)
	if err != nil {
		return err
	}
	if len(result.Records) == 0 {
		fmt.Println("\n  No records yet, nothing to export.")
		return nil
	}

	led := ledger.New(result.Records).Filter(resolvePeriod())
	if led.Len() == 0 {
		fmt.Println("\n  No records in the selected period.")
		return nil
	}

	now := time.Now()
	md, err := report.Build(report.Data{
		Period:         periodLabel(),
		Stats:          led.Stats(),
		Insight:        insight.Analyze(led, cfg),
		Monthly:        led.MonthlyFlows(),
		InitialBalance: cfg.Financial.InitialBalance,
		GeneratedAt:    now,
	})
	if err != nil {
		return err
	}

	// The records entry holds the filtered set in the standard CSV
	// layout, not the raw file bytes.
	csvBody, err := source.MarshalRecords(led.Records())
	if err != nil {
		return err
	}

	var cfgBody []byte
	if buf, err := toml.Marshal(cfg); err == nil {
		cfgBody = buf
	}

	path := fmt.Sprintf("finza-export-%s.zip", now.Format("2006-01-02"))
	if len(args) == 1 {
		path = args[0]
	}

	files := []export.File{
		{Name: "report.md", Body: []byte(md)},
		{Name: "records.csv", Body: csvBody},
		{Name: "config.toml", Body: cfgBody},
	}
	if err := export.WriteZip(path, files); err != nil {
		return err
	}

	fmt.Printf("\n  Exported %d record(s) to %s\n\n", led.Len(), path)
	return nil
}

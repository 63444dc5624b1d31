package cmd

import (
	"fmt"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/source"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Merge records from another CSV file",
	Long:  "Merge records from a CSV export into the data file. Rows already present (same date, kind, category, description, and amount) are skipped.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg := loadSettings()
	dst := dataFilePath(cfg)

	result, err := source.ImportFile(dst, args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Imported %d record(s) into %s\n", result.Added, dst)
	if result.Skipped > 0 {
		fmt.Printf("  Skipped %d duplicate(s)\n", result.Skipped)
	}
	if result.Dropped > 0 {
		fmt.Printf("  Dropped %d malformed row(s)\n", result.Dropped)
	}
	if total := result.Added + result.Skipped + result.Dropped; total > 0 {
		fmt.Printf("  New rows %s\n", cli.RenderProgressBar(result.Added, total, 24))
	}
	fmt.Println()

	return nil
}

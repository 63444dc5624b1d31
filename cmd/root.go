package cmd

import (
	"fmt"
	"os"

	"github.com/saldodev/finza/internal/config"
	"github.com/saldodev/finza/internal/ledger"
	"github.com/saldodev/finza/internal/pipeline"
	"github.com/saldodev/finza/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMonth   string
	flagFrom    string
	flagTo      string
	flagFile    string
	flagDataDir string
	flagNoCache bool
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "finza",
	Short: "Small-business finance tracker",
	Long:  "Track income and expenses, analyze spending, and plan savings from a simple CSV ledger.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", `Filter to one month ("2025-09")`)
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", `Start date, inclusive ("2025-09-01")`)
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", `End date, inclusive ("2025-09-30")`)
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Record CSV file (defaults to the configured data file)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory override")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip SQLite cache, reparse the data file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress and warning output")
}

// loadSettings reads the config file. A broken config file warns and
// falls back to defaults rather than blocking every command.
func loadSettings() config.Config {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  warning: %v (using defaults)\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// dataFilePath resolves the record file for this invocation.
func dataFilePath(cfg config.Config) string {
	if flagFile != "" {
		return flagFile
	}
	return config.DataFilePath(cfg)
}

// loadRecords is the shared data loading path used by all commands.
// Uses the SQLite cache when available for fast subsequent runs. A
// missing data file is not an error; commands show a friendly hint
// when there are no records.
func loadRecords(cfg config.Config) (*pipeline.LoadResult, error) {
	path := dataFilePath(cfg)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &pipeline.LoadResult{Path: path}, nil
	}

	result, err := loadFrom(path)
	if err != nil {
		return nil, err
	}

	if result.Dropped > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  warning: skipped %d malformed row(s) in %s\n", result.Dropped, path)
	}
	return result, nil
}

func loadFrom(path string) (*pipeline.LoadResult, error) {
	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, doing full parse\n")
			}
		} else {
			defer cache.Close()

			result, err := pipeline.LoadWithCache(path, cache)
			if err != nil {
				if !flagQuiet {
					fmt.Fprintf(os.Stderr, "  Cache error, falling back to full parse\n")
				}
			} else {
				return result, nil
			}
		}
	}

	return pipeline.Load(path)
}

// resolvePeriod builds the record filter from the period flags. A
// malformed value fails open: the command warns on stderr and runs
// over all records.
func resolvePeriod() ledger.Period {
	if flagMonth != "" {
		p, err := ledger.ParseMonth(flagMonth)
		if err != nil && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  warning: ignoring bad month %q\n", flagMonth)
		}
		return p
	}

	p, err := ledger.ParseRange(flagFrom, flagTo)
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  warning: ignoring bad date range %q..%q\n", flagFrom, flagTo)
	}
	return p
}

// periodLabel describes the active period filter for titles.
func periodLabel() string {
	if flagMonth != "" {
		return flagMonth
	}
	if flagFrom != "" || flagTo != "" {
		from := flagFrom
		if from == "" {
			from = "start"
		}
		to := flagTo
		if to == "" {
			to = "today"
		}
		return from + " to " + to
	}
	return "All"
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

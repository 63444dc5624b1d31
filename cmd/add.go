package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saldodev/finza/internal/cli"
	"github.com/saldodev/finza/internal/model"
	"github.com/saldodev/finza/internal/source"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	Long:  "Record one income or expense. With no flags an interactive form opens.",
	RunE:  runAdd,
}

var (
	addDate     string
	addKind     string
	addCategory string
	addDesc     string
	addAmount   string
)

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", `Transaction date ("2025-09-25", defaults to today)`)
	addCmd.Flags().StringVar(&addKind, "kind", "expense", "income or expense")
	addCmd.Flags().StringVar(&addCategory, "category", "", "Category name")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "Optional description")
	addCmd.Flags().StringVar(&addAmount, "amount", "", `Positive amount ("120" or "120.50")`)
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	cfg := loadSettings()

	if addDate == "" {
		addDate = time.Now().Format(model.DayLayout)
	}

	// Category and amount are the minimum for a scripted add; anything
	// less opens the form.
	if addCategory == "" || addAmount == "" {
		if err := addForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	rec, err := source.ParseRecord(addDate, addKind, addCategory, addDesc, addAmount)
	if err != nil {
		return err
	}

	path := dataFilePath(cfg)
	if err := source.AppendRecord(path, rec); err != nil {
		return err
	}

	fmt.Printf("\n  Added %s: %s %s on %s\n\n",
		rec.Kind, rec.Category, cli.FormatMoney(rec.Amount), rec.DayKey())
	return nil
}

func addForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Value(&addDate).
				Validate(func(s string) error {
					_, err := time.Parse(model.DayLayout, strings.TrimSpace(s))
					if err != nil {
						return errors.New("use YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Kind").
				Options(
					huh.NewOption("Expense", "expense"),
					huh.NewOption("Income", "income"),
				).
				Value(&addKind),
			huh.NewInput().
				Title("Category").
				Value(&addCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("category is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&addDesc),
			huh.NewInput().
				Title("Amount").
				Value(&addAmount).
				Validate(func(s string) error {
					_, err := source.ParseAmount(s)
					return err
				}),
		),
	).Run()
}

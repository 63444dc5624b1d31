package source

import (
	"time"

	"github.com/saldodev/finza/internal/model"
)

// SeedRecords returns a small sample data set spanning two months,
// used by the setup wizard to give a fresh install something to show.
func SeedRecords() []model.Record {
	day := func(s string) time.Time {
		d, err := time.Parse(model.DayLayout, s)
		if err != nil {
			panic(err)
		}
		return d
	}
	return []model.Record{
		{Date: day("2025-09-25"), Kind: model.Income, Category: "sales", Description: "Basic package", Amount: 900},
		{Date: day("2025-09-26"), Kind: model.Expense, Category: "rent", Description: "Office rent", Amount: 600},
		{Date: day("2025-09-27"), Kind: model.Expense, Category: "marketing", Description: "Ads", Amount: 150},
		{Date: day("2025-09-28"), Kind: model.Income, Category: "services", Description: "Premium service", Amount: 1400},
		{Date: day("2025-09-29"), Kind: model.Expense, Category: "payroll", Description: "Assistant", Amount: 450},
		{Date: day("2025-09-30"), Kind: model.Expense, Category: "supplies", Description: "Materials", Amount: 180},
		{Date: day("2025-10-01"), Kind: model.Income, Category: "sales", Description: "Product A", Amount: 1500},
		{Date: day("2025-10-02"), Kind: model.Expense, Category: "rent", Description: "Office rent", Amount: 600},
		{Date: day("2025-10-03"), Kind: model.Expense, Category: "marketing", Description: "Social ads", Amount: 120},
		{Date: day("2025-10-04"), Kind: model.Income, Category: "services", Description: "Consulting", Amount: 800},
		{Date: day("2025-10-05"), Kind: model.Expense, Category: "payroll", Description: "Assistant pay", Amount: 400},
		{Date: day("2025-10-06"), Kind: model.Expense, Category: "supplies", Description: "Materials", Amount: 220},
		{Date: day("2025-10-07"), Kind: model.Income, Category: "other", Description: "Refund", Amount: 150},
	}
}

// WriteSeed writes the sample data set to path, replacing any
// existing file.
func WriteSeed(path string) error {
	return WriteRecords(path, SeedRecords())
}

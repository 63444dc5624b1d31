package model

import "time"

// Totals holds the income/expense/net sums for a set of records.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// CategoryExpense is one row of the per-category expense breakdown.
type CategoryExpense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DailyNet holds the signed cash flow for one calendar day.
type DailyNet struct {
	Date time.Time `json:"date"`
	Net  float64   `json:"net"`
}

// MonthlyNet holds the signed cash flow for one "YYYY-MM" month.
type MonthlyNet struct {
	Month string  `json:"month"`
	Net   float64 `json:"net"`
}

// MonthlyFlow holds income, expense, and net for one "YYYY-MM" month.
type MonthlyFlow struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// SummaryStats holds the top-level aggregate for a ledger snapshot.
// SavingsPct is net over income as a percentage, 0 when there is no
// income. TopCategory is empty when there are no expenses.
type SummaryStats struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`

	TopCategory       string  `json:"top_category"`
	TopCategoryAmount float64 `json:"top_category_amount"`
	SavingsPct        float64 `json:"savings_pct"`
}

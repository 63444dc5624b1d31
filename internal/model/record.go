// Package model defines domain types for finza records and derived metrics.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date layouts used for record keys and CSV fields.
const (
	DayLayout   = "2006-01-02"
	MonthLayout = "2006-01"
)

// Kind classifies a record as money coming in or going out.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Validation errors for records and kind tokens.
var (
	ErrZeroDate      = errors.New("date is required")
	ErrInvalidKind   = errors.New("kind must be income or expense")
	ErrEmptyCategory = errors.New("category is required")
	ErrBadAmount     = errors.New("amount must be greater than zero")
)

// ParseKind normalizes a raw kind token into the closed enumeration.
// Tokens are case-insensitive; the Spanish forms used by legacy data
// files ("ingreso"/"gasto") are accepted as aliases.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "income", "ingreso":
		return Income, nil
	case "expense", "gasto":
		return Expense, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, raw)
}

// Record is one dated income or expense transaction. The amount is
// always a positive magnitude; the sign is implied by Kind.
type Record struct {
	Date        time.Time
	Kind        Kind
	Category    string
	Description string
	Amount      float64
}

// Validate checks the record invariants. Loaders drop records that
// fail validation before they reach any aggregation.
func (r Record) Validate() error {
	if r.Date.IsZero() {
		return ErrZeroDate
	}
	if r.Kind != Income && r.Kind != Expense {
		return fmt.Errorf("%w: %q", ErrInvalidKind, string(r.Kind))
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if r.Amount <= 0 {
		return fmt.Errorf("%w: %g", ErrBadAmount, r.Amount)
	}
	return nil
}

// Signed returns the amount with its cash-flow sign applied:
// positive for income, negative for expense.
func (r Record) Signed() float64 {
	if r.Kind == Expense {
		return -r.Amount
	}
	return r.Amount
}

// DayKey returns the record's calendar day as "YYYY-MM-DD".
func (r Record) DayKey() string {
	return r.Date.Format(DayLayout)
}

// MonthKey returns the record's calendar month as "YYYY-MM".
func (r Record) MonthKey() string {
	return r.Date.Format(MonthLayout)
}

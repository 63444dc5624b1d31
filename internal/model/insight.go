package model

// Severity classifies an alert.
type Severity string

const (
	SeverityWarn Severity = "warn"
	SeverityGood Severity = "good"
)

// Alert is one analyzer finding, ready for display.
type Alert struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Trim proposes cutting part of one expense category's spend.
type Trim struct {
	Category      string  `json:"category"`
	Cut           float64 `json:"cut"`
	PctOfCategory float64 `json:"pct_of_category"`
}

// SavingsPlan suggests category cuts that would close the savings gap.
// Target is the extra amount that needs to be saved to hit the goal.
type SavingsPlan struct {
	Target float64 `json:"target"`
	Trims  []Trim  `json:"trims"`
}

// DeficitNote flags a negative net and the income needed to break even.
type DeficitNote struct {
	Deficit   float64 `json:"deficit"`
	BreakEven float64 `json:"break_even"`
}

// Insight is the full analyzer result bundle.
//
// RunwayMonths is nil when not applicable (non-negative average monthly
// net, or no initial balance). Nil means "does not apply", which is
// distinct from a runway of zero months. Renderers present SavingsPlan
// before DeficitNote when both are set.
type Insight struct {
	AvgMonthlyNet  float64  `json:"avg_monthly_net"`
	RunwayMonths   *float64 `json:"runway_months,omitempty"`
	SavingsGoalPct float64  `json:"savings_goal_pct"`
	RealSavingsPct float64  `json:"real_savings_pct"`
	SavingsGapPct  float64  `json:"savings_gap_pct"`
	BreakEven      float64  `json:"break_even"`

	Alerts      []Alert           `json:"alerts,omitempty"`
	SavingsPlan *SavingsPlan      `json:"savings_plan,omitempty"`
	DeficitNote *DeficitNote      `json:"deficit_note,omitempty"`
	TopExpenses []CategoryExpense `json:"top_expenses,omitempty"`
}

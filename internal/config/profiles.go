package config

// Profile bundles preset savings targets offered by the setup wizard.
type Profile struct {
	Name                string
	Description         string
	SavingsGoalPct      float64
	CushionMonthsTarget float64
}

// Profiles returns the built-in savings profiles, in display order.
func Profiles() []Profile {
	return []Profile{
		{
			Name:                "conservative",
			Description:         "Save 5% of income, keep 6 months of expenses in reserve",
			SavingsGoalPct:      5,
			CushionMonthsTarget: 6,
		},
		{
			Name:                "balanced",
			Description:         "Save 10% of income, keep 3 months of expenses in reserve",
			SavingsGoalPct:      10,
			CushionMonthsTarget: 3,
		},
		{
			Name:                "aggressive",
			Description:         "Save 20% of income, keep 2 months of expenses in reserve",
			SavingsGoalPct:      20,
			CushionMonthsTarget: 2,
		},
	}
}

// ProfileByName looks up a profile by its name.
func ProfileByName(name string) (Profile, bool) {
	for _, p := range Profiles() {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Apply copies the profile's targets onto the financial settings.
func (p Profile) Apply(fc *FinancialConfig) {
	fc.SavingsGoalPct = p.SavingsGoalPct
	fc.CushionMonthsTarget = p.CushionMonthsTarget
}

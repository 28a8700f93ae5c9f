package entity

// UserProfile is the single per-installation user record. Monetary amounts
// are kept as strings, matching the way the settings forms submit them.
type UserProfile struct {
	FirstName            string `json:"firstName"`
	LastName             string `json:"lastName"`
	Email                string `json:"email"`
	MonthlyIncome        string `json:"monthlyIncome"`
	MonthlyExpenses      string `json:"monthlyExpenses"`
	MonthlySavings       string `json:"monthlySavings"`
	RiskTolerance        int    `json:"riskTolerance"`
	InvestmentHorizon    string `json:"investmentHorizon"`
	FinancialGoals       string `json:"financialGoals"`
	InvestmentCategories string `json:"investmentCategories"`
}

// DefaultUserProfile returns the profile used until the user saves one.
func DefaultUserProfile() UserProfile {
	return UserProfile{
		FirstName:            "John",
		LastName:             "Doe",
		Email:                "john.doe@example.com",
		MonthlyIncome:        "5000",
		MonthlyExpenses:      "3500",
		MonthlySavings:       "1500",
		RiskTolerance:        5,
		InvestmentHorizon:    "medium",
		FinancialGoals:       "retirement",
		InvestmentCategories: "tech",
	}
}

// UserProfileUpdate is a partial profile; nil fields are left untouched by
// Apply.
type UserProfileUpdate struct {
	FirstName            *string `json:"firstName,omitempty"`
	LastName             *string `json:"lastName,omitempty"`
	Email                *string `json:"email,omitempty"`
	MonthlyIncome        *string `json:"monthlyIncome,omitempty"`
	MonthlyExpenses      *string `json:"monthlyExpenses,omitempty"`
	MonthlySavings       *string `json:"monthlySavings,omitempty"`
	RiskTolerance        *int    `json:"riskTolerance,omitempty"`
	InvestmentHorizon    *string `json:"investmentHorizon,omitempty"`
	FinancialGoals       *string `json:"financialGoals,omitempty"`
	InvestmentCategories *string `json:"investmentCategories,omitempty"`
}

// Apply shallow-merges the update into the profile.
func (u UserProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.MonthlyIncome != nil {
		p.MonthlyIncome = *u.MonthlyIncome
	}
	if u.MonthlyExpenses != nil {
		p.MonthlyExpenses = *u.MonthlyExpenses
	}
	if u.MonthlySavings != nil {
		p.MonthlySavings = *u.MonthlySavings
	}
	if u.RiskTolerance != nil {
		p.RiskTolerance = *u.RiskTolerance
	}
	if u.InvestmentHorizon != nil {
		p.InvestmentHorizon = *u.InvestmentHorizon
	}
	if u.FinancialGoals != nil {
		p.FinancialGoals = *u.FinancialGoals
	}
	if u.InvestmentCategories != nil {
		p.InvestmentCategories = *u.InvestmentCategories
	}
	return p
}

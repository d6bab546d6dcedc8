package models

// BudgetPlan is the visitor's budget input.
type BudgetPlan struct {
	TotalBudget   float64  `json:"totalBudget"`
	DurationDays  int      `json:"durationDays"`
	TravelerCount int      `json:"travelerCount"`
	Priorities    []string `json:"priorities,omitempty"`
}

// BudgetBreakdown splits a total budget into category envelopes. Each amount
// is rounded independently, so the four envelopes need not sum exactly to the
// total.
type BudgetBreakdown struct {
	Accommodation  int `json:"accommodation"`
	Transportation int `json:"transportation"`
	Food           int `json:"food"`
	Shopping       int `json:"shopping"`
}

// Recommendation is one static spending suggestion attached to a budget plan.
type Recommendation struct {
	Category string  `json:"category"`
	Option   string  `json:"option"`
	Price    string  `json:"price"`
	Rating   float64 `json:"rating"`
	Distance string  `json:"distance"`
	Savings  string  `json:"savings"`
}

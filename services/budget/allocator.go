package budget

import (
	"math"

	"mutawwif/models"
)

// Documented input bounds for a budget plan.
const (
	MinTotalBudget = 500
	MaxTotalBudget = 5000

	MinDurationDays = 1
	MaxDurationDays = 30

	MinTravelerCount = 1
	MaxTravelerCount = 10
)

// Envelope fractions of the total budget. They sum to 1.0; that invariant is
// asserted by the tests.
const (
	accommodationFraction  = 0.45
	transportationFraction = 0.20
	foodFraction           = 0.25
	shoppingFraction       = 0.10
)

func (s *DefaultBudgetService) ValidatePlan(plan models.BudgetPlan) error {
	if plan.TotalBudget < MinTotalBudget || plan.TotalBudget > MaxTotalBudget {
		return OutOfRangeError{Field: "totalBudget", Min: MinTotalBudget, Max: MaxTotalBudget, Value: plan.TotalBudget}
	}
	if plan.DurationDays < MinDurationDays || plan.DurationDays > MaxDurationDays {
		return OutOfRangeError{Field: "durationDays", Min: MinDurationDays, Max: MaxDurationDays, Value: float64(plan.DurationDays)}
	}
	if plan.TravelerCount < MinTravelerCount || plan.TravelerCount > MaxTravelerCount {
		return OutOfRangeError{Field: "travelerCount", Min: MinTravelerCount, Max: MaxTravelerCount, Value: float64(plan.TravelerCount)}
	}
	return nil
}

// Allocate rounds each envelope independently. The rounded amounts may not
// sum exactly to the total; the remainder is intentionally not redistributed.
func (s *DefaultBudgetService) Allocate(totalBudget float64) models.BudgetBreakdown {
	return models.BudgetBreakdown{
		Accommodation:  int(math.Round(totalBudget * accommodationFraction)),
		Transportation: int(math.Round(totalBudget * transportationFraction)),
		Food:           int(math.Round(totalBudget * foodFraction)),
		Shopping:       int(math.Round(totalBudget * shoppingFraction)),
	}
}

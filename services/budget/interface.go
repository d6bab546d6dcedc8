package budget

import "mutawwif/models"

type BudgetService interface {
	// ValidatePlan checks the plan's input ranges and returns an
	// OutOfRangeError for any field outside its documented bounds. Values are
	// surfaced, never silently clamped; the caller decides whether to reject
	// or clamp.
	ValidatePlan(plan models.BudgetPlan) error
	// Allocate splits a total budget into fixed-ratio category envelopes.
	// Precondition: totalBudget has already been validated (or clamped) to
	// [MinTotalBudget, MaxTotalBudget] by the caller; the range is not
	// re-checked here.
	Allocate(totalBudget float64) models.BudgetBreakdown
	// Recommend returns the static spending recommendations for a plan.
	// Priorities are advisory only and do not alter the output.
	Recommend(priorities []string) []models.Recommendation
}

// DefaultBudgetService is the production implementation.
type DefaultBudgetService struct{}

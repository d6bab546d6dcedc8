package budget

import "mutawwif/models"

// EstimatedSavings is the advertised total saving versus premium options, in SAR.
const EstimatedSavings = 425

// PriorityOptions is the vocabulary of priority tags a visitor may select.
// Priorities are collected as advisory state; the recommendation output does
// not currently vary by priority.
var PriorityOptions = []string{"comfort", "location", "transport", "food"}

// Recommend returns the static spending recommendations. The priorities
// argument is accepted for interface stability but does not alter the result.
func (s *DefaultBudgetService) Recommend(priorities []string) []models.Recommendation {
	return []models.Recommendation{
		{
			Category: "Accommodation",
			Option:   "Fairmont Makkah",
			Price:    "180 SAR/night",
			Rating:   4.7,
			Distance: "500m from Haram",
			Savings:  "Save 25% vs premium hotels",
		},
		{
			Category: "Transportation",
			Option:   "Shuttle + Occasional Taxi",
			Price:    "40 SAR/day",
			Rating:   4.5,
			Distance: "Every 15 minutes",
			Savings:  "60% vs private car",
		},
		{
			Category: "Dining",
			Option:   "Mix of hotel & local restaurants",
			Price:    "80 SAR/day per person",
			Rating:   4.6,
			Distance: "Within 300m",
			Savings:  "40% vs hotel-only dining",
		},
	}
}

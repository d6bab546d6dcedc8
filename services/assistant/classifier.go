package assistant

import "strings"

// Intent is the closed category a free-text query is classified into.
type Intent string

const (
	IntentTawafTiming    Intent = "tawaf_timing"
	IntentHotelInquiry   Intent = "hotel_inquiry"
	IntentBudgetInquiry  Intent = "budget_inquiry"
	IntentTrafficInquiry Intent = "traffic_inquiry"
	IntentFallback       Intent = "fallback"
)

// classifierRule binds a keyword set to an intent. Matching is substring
// containment over the lower-cased input, not word-boundary matching; the
// rule set is small and closed, so the looseness is acceptable.
type classifierRule struct {
	keywords []string
	intent   Intent
}

// classifierRules is evaluated top to bottom, first match wins. The order is
// load-bearing: a message containing both "tawaf" and "hotel" resolves to
// tawaf_timing because that rule is checked first.
var classifierRules = []classifierRule{
	{keywords: []string{"tawaf", "طواف"}, intent: IntentTawafTiming},
	{keywords: []string{"hotel", "فندق"}, intent: IntentHotelInquiry},
	{keywords: []string{"budget", "ميزانية"}, intent: IntentBudgetInquiry},
	{keywords: []string{"traffic", "مرور"}, intent: IntentTrafficInquiry},
}

// Classify maps free text to an intent. It is total: unmatched input resolves
// to IntentFallback, never an error.
func Classify(text string) Intent {
	lower := strings.ToLower(text)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return IntentFallback
}

package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondTo_CannedIntents(t *testing.T) {
	tests := []struct {
		name             string
		intent           Intent
		wantTextContains string
		wantSuggestions  []string
	}{
		{
			name:             "tawaf timing",
			intent:           IntentTawafTiming,
			wantTextContains: "Best times for Tawaf",
			wantSuggestions:  []string{"Book guided Tawaf", "Check crowd levels", "Prayer times"},
		},
		{
			name:             "hotel inquiry",
			intent:           IntentHotelInquiry,
			wantTextContains: "3 great hotels near Haram",
			wantSuggestions:  []string{"Compare prices", "Check availability", "View amenities"},
		},
		{
			name:             "budget inquiry",
			intent:           IntentBudgetInquiry,
			wantTextContains: "optimize your budget",
			wantSuggestions:  []string{"Create budget plan", "Find deals", "Track expenses"},
		},
		{
			name:             "traffic shares the generic chips",
			intent:           IntentTrafficInquiry,
			wantTextContains: "Current traffic",
			wantSuggestions:  []string{"More details", "Other options", "Book now"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := RespondTo(tt.intent, "ignored")
			assert.Equal(t, tt.intent, reply.Intent)
			assert.Contains(t, reply.Text, tt.wantTextContains)
			assert.Equal(t, tt.wantSuggestions, reply.Suggestions)
			// Canned templates never leak the raw input.
			assert.NotContains(t, reply.Text, "ignored")
		})
	}
}

func TestRespondTo_FallbackInterpolatesRawText(t *testing.T) {
	raw := "How much does it cost?"
	reply := RespondTo(IntentFallback, raw)

	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Contains(t, reply.Text, raw)
	assert.Equal(t, []string{"More details", "Other options", "Book now"}, reply.Suggestions)
}

func TestRespond_ClassifiesAndResponds(t *testing.T) {
	svc := &DefaultAssistantService{Store: NewMemorySessionStore()}

	reply := svc.Respond("What's the best time for Tawaf?")
	assert.Equal(t, IntentTawafTiming, reply.Intent)

	reply = svc.Respond("something entirely unrelated")
	assert.Equal(t, IntentFallback, reply.Intent)
	assert.Contains(t, reply.Text, "something entirely unrelated")
}

func TestQuickQuestions(t *testing.T) {
	svc := &DefaultAssistantService{Store: NewMemorySessionStore()}

	questions := svc.QuickQuestions()
	require.Len(t, questions, 4)
	assert.Equal(t, "What's the best time for Umrah?", questions[0])

	// Returned slice is a copy; mutating it must not affect the service.
	questions[0] = "mutated"
	assert.Equal(t, "What's the best time for Umrah?", svc.QuickQuestions()[0])
}

package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Intent
	}{
		{
			name:     "tawaf question",
			text:     "What's the best time for Tawaf?",
			expected: IntentTawafTiming,
		},
		{
			name:     "tawaf uppercase",
			text:     "TAWAF TIMING PLEASE",
			expected: IntentTawafTiming,
		},
		{
			name:     "tawaf arabic",
			text:     "ما هو أفضل وقت للطواف؟",
			expected: IntentTawafTiming,
		},
		{
			name:     "hotel question",
			text:     "Any good hotel deals nearby?",
			expected: IntentHotelInquiry,
		},
		{
			name:     "hotel arabic",
			text:     "أبحث عن فندق قريب",
			expected: IntentHotelInquiry,
		},
		{
			name:     "substring containment matches hotelier",
			text:     "I met a hotelier yesterday",
			expected: IntentHotelInquiry,
		},
		{
			name:     "budget question",
			text:     "Help me plan my budget",
			expected: IntentBudgetInquiry,
		},
		{
			name:     "traffic question",
			text:     "How is the traffic near the Haram?",
			expected: IntentTrafficInquiry,
		},
		{
			name:     "tawaf wins over hotel by rule order",
			text:     "tawaf and hotel question",
			expected: IntentTawafTiming,
		},
		{
			name:     "hotel wins over budget by rule order",
			text:     "hotel within my budget",
			expected: IntentHotelInquiry,
		},
		{
			name:     "unmatched input falls back",
			text:     "How much does it cost?",
			expected: IntentFallback,
		},
		{
			name:     "empty input falls back",
			text:     "",
			expected: IntentFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.text))
		})
	}
}

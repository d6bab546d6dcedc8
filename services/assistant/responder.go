package assistant

import "fmt"

// Greeting shown as the first transcript entry of every new session.
const greetingText = "السلام عليكم! Welcome to your Smart Makkah Assistant. How can I help you today?"

var greetingSuggestions = []string{
	"Best time for Tawaf?",
	"Nearest hotel deals",
	"Traffic updates",
	"Budget planning",
}

// quickQuestions are the static starter prompts offered below the chat.
var quickQuestions = []string{
	"What's the best time for Umrah?",
	"How to reach the Haram?",
	"Budget recommendations",
	"Spiritual guidance",
}

// Fixed response per intent. Fallback is the one input-dependent template; it
// interpolates the raw user text.
var intentResponses = map[Intent]string{
	IntentTawafTiming:    "Best times for Tawaf: 2-4 AM (lowest crowd), 10 PM-12 AM (moderate). Current wait time: ~15 minutes. Would you like me to book a guided session?",
	IntentHotelInquiry:   "I found 3 great hotels near Haram: Abraj Al Bait (200m, 4.8★, 250 SAR), Fairmont (500m, 4.7★, 180 SAR), Raffles (300m, 4.9★, 320 SAR). Shall I show details?",
	IntentBudgetInquiry:  "I can help optimize your budget! Please share: 1) Your total budget 2) Duration of stay 3) Priorities (comfort/cost/location). I'll create a personalized plan.",
	IntentTrafficInquiry: "Current traffic: Zone A (Light), Mataf Area (Moderate), Transport Hub (Heavy). Recommended route: Take shuttle from Gate 79. ETA: 12 minutes.",
}

const fallbackResponseFormat = "I understand you're asking about %s. Let me provide you with the most relevant and up-to-date information. How else can I assist your blessed journey?"

// Suggestion chips per intent. Traffic has no dedicated set; it shares the
// generic chips with fallback.
var intentSuggestions = map[Intent][]string{
	IntentTawafTiming:   {"Book guided Tawaf", "Check crowd levels", "Prayer times"},
	IntentHotelInquiry:  {"Compare prices", "Check availability", "View amenities"},
	IntentBudgetInquiry: {"Create budget plan", "Find deals", "Track expenses"},
}

var genericSuggestions = []string{"More details", "Other options", "Book now"}

// RespondTo builds the canned reply for a classified intent. rawText is only
// used by the fallback template.
func RespondTo(intent Intent, rawText string) Reply {
	text, ok := intentResponses[intent]
	if !ok {
		text = fmt.Sprintf(fallbackResponseFormat, rawText)
	}
	return Reply{
		Intent:      intent,
		Text:        text,
		Suggestions: suggestionsFor(intent),
	}
}

func suggestionsFor(intent Intent) []string {
	if s, ok := intentSuggestions[intent]; ok {
		return append([]string(nil), s...)
	}
	return append([]string(nil), genericSuggestions...)
}

// Respond classifies the text and returns the matching canned reply.
func (s *DefaultAssistantService) Respond(text string) Reply {
	return RespondTo(Classify(text), text)
}

// QuickQuestions returns the static starter questions.
func (s *DefaultAssistantService) QuickQuestions() []string {
	return append([]string(nil), quickQuestions...)
}

package assistant

import (
	"context"

	"mutawwif/models"
)

type AssistantService interface {
	// StartSession creates a chat session seeded with the assistant greeting.
	StartSession(ctx context.Context) (*models.ChatSession, error)
	// SendMessage classifies the visitor's text and appends exactly two
	// transcript entries (the user message, then the assistant reply) in one
	// atomic step. It returns the assistant reply.
	SendMessage(ctx context.Context, sessionID, text string) (*models.Message, Intent, error)
	// GetTranscript returns the full ordered transcript for a session.
	GetTranscript(ctx context.Context, sessionID string) (*models.ChatSession, error)
	// Respond is the stateless classify-and-respond operation.
	Respond(text string) Reply
	// QuickQuestions returns the static starter questions.
	QuickQuestions() []string
}

// Reply is the outcome of classifying and responding to one message.
type Reply struct {
	Intent      Intent   `json:"intent"`
	Text        string   `json:"responseText"`
	Suggestions []string `json:"suggestions"`
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Store SessionStore
}

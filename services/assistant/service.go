package assistant

import (
	"context"
	"time"

	"mutawwif/models"

	"github.com/google/uuid"
)

// StartSession creates a new session whose transcript is seeded with the
// assistant greeting and its starter suggestions.
func (s *DefaultAssistantService) StartSession(ctx context.Context) (*models.ChatSession, error) {
	session := &models.ChatSession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Messages: []models.Message{
			{
				ID:          1,
				Role:        models.RoleAssistant,
				Text:        greetingText,
				Timestamp:   time.Now(),
				Suggestions: append([]string(nil), greetingSuggestions...),
			},
		},
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SendMessage appends the user message and the assistant reply to the
// transcript in a single store write, so the transcript always grows by
// exactly two entries with no partial state.
func (s *DefaultAssistantService) SendMessage(ctx context.Context, sessionID, text string) (*models.Message, Intent, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	reply := s.Respond(text)
	now := time.Now()

	userMsg := models.Message{
		ID:        len(session.Messages) + 1,
		Role:      models.RoleUser,
		Text:      text,
		Timestamp: now,
	}
	assistantMsg := models.Message{
		ID:          len(session.Messages) + 2,
		Role:        models.RoleAssistant,
		Text:        reply.Text,
		Timestamp:   now,
		Suggestions: reply.Suggestions,
	}
	session.Messages = append(session.Messages, userMsg, assistantMsg)

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, "", err
	}
	return &assistantMsg, reply.Intent, nil
}

// GetTranscript returns the full ordered transcript for a session.
func (s *DefaultAssistantService) GetTranscript(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	return s.Store.Get(ctx, sessionID)
}

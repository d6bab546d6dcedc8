package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single transcript entry. IDs are a per-session monotonic
// sequence; entries are append-only and never edited or removed.
type Message struct {
	ID          int       `json:"id"`
	Role        string    `json:"role"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

// ChatSession holds the linear transcript for one visitor session.
type ChatSession struct {
	ID        string    `json:"id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

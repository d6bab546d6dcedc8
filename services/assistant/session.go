package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"mutawwif/models"

	"github.com/go-redis/redis/v8"
)

// ChatSessionPrefix is the prefix used for Redis chat session keys.
const ChatSessionPrefix = "chatSession:"

// SessionNotFoundError signals that no session exists for the given ID.
type SessionNotFoundError struct {
	SessionID string
}

func (e SessionNotFoundError) Error() string {
	return "chat session not found: " + e.SessionID
}

// SessionStore persists chat session transcripts. Sessions are ephemeral and
// exclusively owned by one visitor; stores never share state across sessions.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Save(ctx context.Context, session *models.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
}

// MemorySessionStore keeps sessions in process memory. It is the default
// backend and the one used in tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ChatSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*models.ChatSession)}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, SessionNotFoundError{SessionID: sessionID}
	}
	cp := *session
	cp.Messages = append([]models.Message(nil), session.Messages...)
	return &cp, nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	cp.Messages = append([]models.Message(nil), session.Messages...)
	s.sessions[session.ID] = &cp
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// RedisSessionStore keeps sessions in Redis with a TTL, one JSON blob per
// session.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	data, err := s.Client.Get(ctx, ChatSessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, SessionNotFoundError{SessionID: sessionID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat session: %w", err)
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal chat session: %w", err)
	}
	if err := s.Client.Set(ctx, ChatSessionPrefix+session.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save chat session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, ChatSessionPrefix+sessionID).Err()
}

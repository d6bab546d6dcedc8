package assistant

import (
	"context"
	"testing"
	"time"

	"mutawwif/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *DefaultAssistantService {
	t.Helper()
	return &DefaultAssistantService{Store: NewMemorySessionStore()}
}

func TestStartSession_SeedsGreeting(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.Len(t, session.Messages, 1)

	greeting := session.Messages[0]
	assert.Equal(t, 1, greeting.ID)
	assert.Equal(t, models.RoleAssistant, greeting.Role)
	assert.Contains(t, greeting.Text, "Smart Makkah Assistant")
	assert.Len(t, greeting.Suggestions, 4)
}

func TestSendMessage_AppendsExactlyTwoEntries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	reply, intent, err := svc.SendMessage(ctx, session.ID, "What's the best time for Tawaf?")
	require.NoError(t, err)
	assert.Equal(t, IntentTawafTiming, intent)
	assert.Equal(t, models.RoleAssistant, reply.Role)

	transcript, err := svc.GetTranscript(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, transcript.Messages, 3)

	userMsg := transcript.Messages[1]
	assistantMsg := transcript.Messages[2]
	assert.Equal(t, models.RoleUser, userMsg.Role)
	assert.Equal(t, "What's the best time for Tawaf?", userMsg.Text)
	assert.Equal(t, models.RoleAssistant, assistantMsg.Role)
	assert.Equal(t, reply.Text, assistantMsg.Text)

	// IDs continue the per-session monotonic sequence.
	assert.Equal(t, 2, userMsg.ID)
	assert.Equal(t, 3, assistantMsg.ID)
}

func TestSendMessage_TranscriptGrowsByTwoEachTurn(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	inputs := []string{"hotel deals?", "budget help", "random question"}
	for i, text := range inputs {
		_, intent, err := svc.SendMessage(ctx, session.ID, text)
		require.NoError(t, err)
		assert.Equal(t, Classify(text), intent)

		transcript, err := svc.GetTranscript(ctx, session.ID)
		require.NoError(t, err)
		assert.Len(t, transcript.Messages, 1+2*(i+1))
	}
}

func TestSendMessage_UnknownSession(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.SendMessage(context.Background(), "no-such-session", "hello")
	require.Error(t, err)
	assert.IsType(t, SessionNotFoundError{}, err)
}

func TestMemorySessionStore_IsolatesCallers(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := &models.ChatSession{ID: "s1", CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, session))

	// Mutating the caller's copy must not leak into the store.
	session.Messages = append(session.Messages, models.Message{ID: 1, Role: models.RoleUser, Text: "hi"})

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.Messages)
}

func TestRedisSessionStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	svc := &DefaultAssistantService{Store: store}
	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, _, err = svc.SendMessage(ctx, session.ID, "traffic update please")
	require.NoError(t, err)

	transcript, err := svc.GetTranscript(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, transcript.Messages, 3)
	assert.Equal(t, models.RoleUser, transcript.Messages[1].Role)

	require.NoError(t, store.Delete(ctx, session.ID))
	_, err = store.Get(ctx, session.ID)
	assert.IsType(t, SessionNotFoundError{}, err)
}

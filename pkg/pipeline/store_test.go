package pipeline

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronha/demo-llm-agent/ent/enttest"
	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

func newTestStore(t *testing.T) (*DBSessionStore, *services.SessionService) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	users := services.NewUserService(client)
	sessions := services.NewSessionService(client)

	_, err := users.Create(context.Background(), models.UserSpec{
		Username: "guest",
		Email:    "guest@example.com",
		FullName: "Guest User",
	})
	require.NoError(t, err)

	return NewDBSessionStore(users, sessions, "guest"), sessions
}

func TestReadStateWithoutSessionSkipsStorage(t *testing.T) {
	store, sessions := newTestStore(t)

	event := NewEvent("", "", "hello")
	require.NoError(t, store.ReadState(context.Background(), event))

	assert.Equal(t, "guest", event.Username)
	assert.Nil(t, event.Session)
	assert.Zero(t, event.Conversation.Len())

	// Save is a no-op as well; no session rows appear.
	require.NoError(t, store.Save(context.Background(), event))
	rows, err := sessions.List(context.Background(), models.SessionFilters{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadStateCreatesUnseenSession(t *testing.T) {
	store, sessions := newTestStore(t)

	event := NewEvent("guest", "234", "what is a vector?")
	require.NoError(t, store.ReadState(context.Background(), event))

	require.NotNil(t, event.Session)
	assert.Equal(t, "234", event.Session.ID)
	assert.Zero(t, event.Conversation.Len())
	require.NotNil(t, event.User)
	assert.Equal(t, "guest", event.User.ID)

	sess, err := sessions.Get(context.Background(), "234")
	require.NoError(t, err)
	assert.Empty(t, sess.History)
}

func TestReadStateRestoresExistingSession(t *testing.T) {
	store, sessions := newTestStore(t)
	ctx := context.Background()

	history := []models.Message{
		{Role: models.RoleHuman, Content: "hi"},
		{Role: models.RoleAI, Content: "hello"},
	}
	_, err := sessions.Create(ctx, "s1", "guest", history)
	require.NoError(t, err)
	_, err = sessions.Update(ctx, "s1", services.SessionUpdate{
		State: map[string]any{"topic": "greetings"},
	})
	require.NoError(t, err)

	event := NewEvent("guest", "s1", "how are you?")
	require.NoError(t, store.ReadState(ctx, event))

	assert.Equal(t, 2, event.Conversation.Len())
	assert.Equal(t, "greetings", event.State["topic"])

	// The restored state is a copy; mutating it does not touch the row
	// until Save runs.
	event.State["topic"] = "farewells"
	sess, err := sessions.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "greetings", sess.State["topic"])
}

func TestSavePersistsTurn(t *testing.T) {
	store, sessions := newTestStore(t)
	ctx := context.Background()

	event := NewEvent("guest", "234", "what is a vector?")
	require.NoError(t, store.ReadState(ctx, event))

	event.Conversation.AddMessage(models.RoleHuman, "what is a vector?")
	event.Conversation.AddMessage(models.RoleAI, "a list of numbers")
	event.State["last_topic"] = "vectors"
	require.NoError(t, store.Save(ctx, event))

	sess, err := sessions.Get(ctx, "234")
	require.NoError(t, err)
	require.Len(t, sess.History, 2)
	assert.Equal(t, models.Message{Role: models.RoleHuman, Content: "what is a vector?"}, sess.History[0])
	assert.Equal(t, models.Message{Role: models.RoleAI, Content: "a list of numbers"}, sess.History[1])
	assert.Equal(t, "vectors", sess.State["last_topic"])
}

func TestPipelineEndToEndWithStore(t *testing.T) {
	store, sessions := newTestStore(t)
	ctx := context.Background()

	llm := &fakeLLM{answer: "a vector is an ordered list of numbers"}
	retriever := &fakeRetriever{}
	p := newTestPipeline(t, store, llm, retriever)

	event := NewEvent("", "234", "what is a vector?")
	results, err := p.Run(ctx, event)
	require.NoError(t, err)
	assert.NotEmpty(t, results["answer"])

	sess, err := sessions.Get(ctx, "234")
	require.NoError(t, err)
	require.Len(t, sess.History, 2)
	assert.Equal(t, models.RoleHuman, sess.History[0].Role)
	assert.Equal(t, "what is a vector?", sess.History[0].Content)
	assert.Equal(t, models.RoleAI, sess.History[1].Role)
	assert.Equal(t, "a vector is an ordered list of numbers", sess.History[1].Content)

	// A second run against the same session appends two more turns.
	_, err = p.Run(ctx, NewEvent("", "234", "and a matrix?"))
	require.NoError(t, err)
	sess, err = sessions.Get(ctx, "234")
	require.NoError(t, err)
	assert.Len(t, sess.History, 4)
}

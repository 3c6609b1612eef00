package services

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronha/demo-llm-agent/ent"
	"github.com/yaronha/demo-llm-agent/ent/enttest"
	"github.com/yaronha/demo-llm-agent/pkg/models"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestUserCRUD(t *testing.T) {
	svc := NewUserService(newTestClient(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, models.UserSpec{Username: "alice"})
	require.Error(t, err, "email is required")
	assert.True(t, IsValidationError(err))

	u, err := svc.Create(ctx, models.UserSpec{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Smith",
		Features: map[string]any{"beta": true},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.ID)

	_, err = svc.Create(ctx, models.UserSpec{Username: "alice", Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	u, err = svc.Update(ctx, models.UserSpec{Username: "alice", FullName: "Alice Jones"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Jones", u.FullName)
	assert.Equal(t, "alice@example.com", u.Email, "untouched fields survive sparse updates")

	users, err := svc.List(ctx, models.UserFilters{FullName: "Jones"})
	require.NoError(t, err)
	require.Len(t, users, 1)

	users, err = svc.List(ctx, models.UserFilters{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, svc.Delete(ctx, "alice"))
	assert.ErrorIs(t, svc.Delete(ctx, "alice"), ErrNotFound)
	_, err = svc.Get(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionCRUD(t *testing.T) {
	client := newTestClient(t)
	users := NewUserService(client)
	svc := NewCollectionService(client)
	ctx := context.Background()

	_, err := users.Create(ctx, models.UserSpec{Username: "guest", Email: "guest@example.com"})
	require.NoError(t, err)

	col, err := svc.Create(ctx, models.CollectionSpec{
		Name:        "default",
		Description: "Default Collection",
		OwnerName:   "guest",
		DBCategory:  "vector",
		Meta:        map[string]any{"team": "ml"},
	})
	require.NoError(t, err)
	assert.Equal(t, "default", col.ID)

	// CreateOrUpdate merges new metadata over stored metadata.
	col, err = svc.CreateOrUpdate(ctx, models.CollectionSpec{
		Name: "default",
		Meta: map[string]any{"version": "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ml", col.Meta["team"])
	assert.Equal(t, "2", col.Meta["version"])

	// CreateOrUpdate creates missing collections.
	_, err = svc.CreateOrUpdate(ctx, models.CollectionSpec{Name: "fresh"})
	require.NoError(t, err)

	cols, err := svc.List(ctx, models.CollectionFilters{Owner: "guest"})
	require.NoError(t, err)
	require.Len(t, cols, 1)
	assert.Equal(t, "default", cols[0].ID)

	cols, err = svc.List(ctx, models.CollectionFilters{Metadata: map[string]string{"team": "ml"}})
	require.NoError(t, err)
	require.Len(t, cols, 1)

	require.NoError(t, svc.Delete(ctx, "fresh"))
	assert.ErrorIs(t, svc.Delete(ctx, "fresh"), ErrNotFound)
}

func TestSessionCRUD(t *testing.T) {
	client := newTestClient(t)
	users := NewUserService(client)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := users.Create(ctx, models.UserSpec{Username: "guest", Email: "guest@example.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "", "guest", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	sess, err := svc.Create(ctx, "s1", "guest", []models.Message{
		{Role: models.RoleHuman, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", sess.ID)
	require.Len(t, sess.History, 1)

	_, err = svc.Create(ctx, "s2", "guest", nil)
	require.NoError(t, err)

	sess, err = svc.Update(ctx, "s1", SessionUpdate{
		History: []models.Message{
			{Role: models.RoleHuman, Content: "hi"},
			{Role: models.RoleAI, Content: "hello"},
		},
		State: map[string]any{"topic": "greetings"},
		Topic: "greetings",
	})
	require.NoError(t, err)
	assert.Len(t, sess.History, 2)
	assert.Equal(t, "greetings", sess.Topic)

	sessions, err := svc.List(ctx, models.SessionFilters{Username: "guest"})
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s1", sessions[0].ID, "most recently updated first")

	sessions, err = svc.List(ctx, models.SessionFilters{Last: 1})
	require.NoError(t, err)
	assert.Len(t, sessions, 1)

	future := time.Now().Add(time.Hour)
	sessions, err = svc.List(ctx, models.SessionFilters{CreatedAfter: &future})
	require.NoError(t, err)
	assert.Empty(t, sessions)

	require.NoError(t, svc.Delete(ctx, "s2"))
	_, err = svc.Get(ctx, "s2")
	assert.ErrorIs(t, err, ErrNotFound)
}

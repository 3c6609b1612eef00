package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaronha/demo-llm-agent/pkg/models"
	"github.com/yaronha/demo-llm-agent/pkg/services"
)

// SessionStore loads and saves per-session conversation state for the
// pipeline. Events without a session id never touch the store.
type SessionStore interface {
	// ReadState populates the event's user, session, state, and conversation
	// from storage. An unseen session id creates a new empty session record.
	ReadState(ctx context.Context, event *Event) error
	// Save persists the event's state and conversation back to the session
	// record. It is a no-op for events without a session id.
	Save(ctx context.Context, event *Event) error
}

// DBSessionStore is a SessionStore over the users and sessions services.
type DBSessionStore struct {
	users    *services.UserService
	sessions *services.SessionService
	guest    string
}

// NewDBSessionStore creates a store. guest is the username assumed for
// events that carry none.
func NewDBSessionStore(users *services.UserService, sessions *services.SessionService, guest string) *DBSessionStore {
	return &DBSessionStore{users: users, sessions: sessions, guest: guest}
}

func (s *DBSessionStore) ReadState(ctx context.Context, event *Event) error {
	if event.Username == "" {
		event.Username = s.guest
	}
	if event.Conversation == nil {
		event.Conversation = models.NewConversation()
	}
	if event.State == nil {
		event.State = make(map[string]any)
	}
	if event.SessionID == "" {
		return nil
	}

	user, err := s.users.Get(ctx, event.Username)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		return fmt.Errorf("failed to load user %q: %w", event.Username, err)
	}
	event.User = user

	sess, err := s.sessions.Get(ctx, event.SessionID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			return fmt.Errorf("failed to load session %q: %w", event.SessionID, err)
		}
		sess, err = s.sessions.Create(ctx, event.SessionID, event.Username, nil)
		if err != nil {
			return fmt.Errorf("failed to create session %q: %w", event.SessionID, err)
		}
		event.Session = sess
		return nil
	}

	event.Session = sess
	if sess.State != nil {
		state := make(map[string]any, len(sess.State))
		for k, v := range sess.State {
			state[k] = v
		}
		event.State = state
	}
	event.Conversation = models.ConversationFromMessages(sess.History)
	return nil
}

func (s *DBSessionStore) Save(ctx context.Context, event *Event) error {
	if event.SessionID == "" {
		return nil
	}
	_, err := s.sessions.Update(ctx, event.SessionID, services.SessionUpdate{
		History: event.Conversation.ToMessages(),
		State:   event.State,
	})
	if err != nil {
		return fmt.Errorf("failed to save session %q: %w", event.SessionID, err)
	}
	return nil
}

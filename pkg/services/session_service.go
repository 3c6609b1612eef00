package services

import (
	"context"
	"fmt"

	"github.com/yaronha/demo-llm-agent/ent"
	"github.com/yaronha/demo-llm-agent/ent/chatsession"
	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// SessionService manages persisted chat sessions: the state blob and the
// serialized conversation history. The query pipeline creates and updates
// sessions; deletion is an administrative operation only.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Get retrieves a session by id.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*ent.ChatSession, error) {
	sess, err := s.client.ChatSession.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// Create creates a new chat session row.
func (s *SessionService) Create(ctx context.Context, sessionID, username string, history []models.Message) (*ent.ChatSession, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if username == "" {
		return nil, NewValidationError("username", "required")
	}

	builder := s.client.ChatSession.Create().
		SetID(sessionID).
		SetUsername(username)
	if history != nil {
		builder.SetHistory(history)
	}

	sess, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// SessionUpdate carries the fields updated at the end of a pipeline run.
// Nil fields are left untouched.
type SessionUpdate struct {
	History     []models.Message
	State       map[string]any
	Topic       string
	Annotations map[string]any
	Features    map[string]any
}

// Update applies upd to an existing session.
func (s *SessionService) Update(ctx context.Context, sessionID string, upd SessionUpdate) (*ent.ChatSession, error) {
	update := s.client.ChatSession.UpdateOneID(sessionID)
	if upd.History != nil {
		update.SetHistory(upd.History)
	}
	if upd.State != nil {
		update.SetState(upd.State)
	}
	if upd.Topic != "" {
		update.SetTopic(upd.Topic)
	}
	if upd.Annotations != nil {
		update.SetAnnotations(upd.Annotations)
	}
	if upd.Features != nil {
		update.SetFeatures(upd.Features)
	}

	sess, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return sess, nil
}

// Delete removes a session by id.
func (s *SessionService) Delete(ctx context.Context, sessionID string) error {
	err := s.client.ChatSession.DeleteOneID(sessionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// List returns sessions matching the filters, newest activity first.
func (s *SessionService) List(ctx context.Context, filters models.SessionFilters) ([]*ent.ChatSession, error) {
	query := s.client.ChatSession.Query().
		Order(ent.Desc(chatsession.FieldUpdatedAt))
	if filters.Username != "" {
		query = query.Where(chatsession.UsernameEQ(filters.Username))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(chatsession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.Last > 0 {
		query = query.Limit(filters.Last)
	}

	sessions, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

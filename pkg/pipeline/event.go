package pipeline

import (
	"github.com/google/uuid"

	"github.com/yaronha/demo-llm-agent/ent"
	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// Event threads one inbound query through the pipeline. Exactly one Event
// exists per query; stages run strictly in sequence over it, so no locking
// is needed.
type Event struct {
	// ID correlates one run's log lines. It is never persisted.
	ID string

	Username  string
	SessionID string

	// OriginalQuery is the user's text as received. Query starts equal to
	// it and may be rewritten by earlier stages before later stages read it.
	OriginalQuery string
	Query         string

	// Collection and Filter scope the retrieval stage.
	Collection string
	Filter     map[string]string

	// Results accumulates stage outputs by key. Last write wins.
	Results map[string]any

	// State is the session-scoped blob restored by the loader stage and
	// persisted back by the saver stage.
	State map[string]any

	Conversation *models.Conversation

	// User and Session are the loaded persistence records. The loader stage
	// populates them; later stages treat them as read-only.
	User    *ent.User
	Session *ent.ChatSession
}

// NewEvent creates an event for a single query.
func NewEvent(username, sessionID, query string) *Event {
	return &Event{
		ID:            uuid.NewString(),
		Username:      username,
		SessionID:     sessionID,
		OriginalQuery: query,
		Query:         query,
		Results:       make(map[string]any),
		State:         make(map[string]any),
		Conversation:  models.NewConversation(),
	}
}

// SetAnswer records the generated answer and makes it the query text seen by
// any downstream stage. The copy is deliberate and explicit: stages after the
// answering stage operate on the answer, not the question.
func (e *Event) SetAnswer(answer string) {
	e.Results["answer"] = answer
	e.Query = answer
}

// Answer returns the recorded answer, or "" if no stage produced one.
func (e *Event) Answer() string {
	if answer, ok := e.Results["answer"].(string); ok {
		return answer
	}
	return ""
}

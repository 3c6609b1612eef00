package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/yaronha/demo-llm-agent/pkg/models"
)

// ChatSession holds the schema definition for the ChatSession entity.
// A persisted conversation: state blob plus serialized message history.
// Created on first reference to an unseen session id, updated at the end of
// every pipeline run that carries a session id. Never deleted by the
// pipeline itself.
type ChatSession struct {
	ent.Schema
}

// Fields of the ChatSession.
func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("username"),
		field.String("agent_name").
			Optional().
			Comment("Conversation client id for co-pilot flows"),
		field.String("topic").
			Optional(),
		field.JSON("history", []models.Message{}).
			Optional().
			Comment("Serialized conversation, ordered"),
		field.JSON("state", map[string]any{}).
			Optional().
			Comment("Session-scoped key/value state"),
		field.JSON("annotations", map[string]any{}).
			Optional().
			Comment("Tags, sources, links"),
		field.JSON("features", map[string]any{}).
			Optional().
			Comment("Features extracted from the chat history"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ChatSession.
func (ChatSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("sessions").
			Field("username").
			Unique().
			Required(),
	}
}

// Indexes of the ChatSession.
func (ChatSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
		index.Fields("username", "updated_at"),
		index.Fields("created_at"),
	}
}

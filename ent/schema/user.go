package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Users own document collections and chat sessions; the username is the
// natural primary key used across the API.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("username").
			Unique().
			Immutable(),
		field.String("email").
			Unique(),
		field.String("full_name"),
		field.JSON("features", map[string]any{}).
			Optional().
			Comment("Feature flags and extracted user features"),
		field.JSON("policy", map[string]any{}).
			Optional().
			Comment("Access policy blob"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("collections", DocCollection.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("sessions", ChatSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}

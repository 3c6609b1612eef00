package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocCollection holds the schema definition for the DocCollection entity.
// A named grouping of ingested documents targeted by retrieval.
type DocCollection struct {
	ent.Schema
}

// Fields of the DocCollection.
func (DocCollection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("name").
			Unique().
			Immutable(),
		field.String("description").
			Optional(),
		field.String("owner_name").
			Optional().
			Nillable(),
		field.JSON("meta", map[string]any{}).
			Optional().
			Comment("Free-form collection metadata (key/value)"),
		field.JSON("db_args", map[string]any{}).
			Optional().
			Comment("Backend-specific connection arguments"),
		field.String("db_category").
			Optional().
			Comment("Backend category, e.g. vector, sql, graph"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DocCollection.
func (DocCollection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("collections").
			Field("owner_name").
			Unique(),
	}
}

// Indexes of the DocCollection.
func (DocCollection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_name"),
	}
}

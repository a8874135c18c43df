package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecallSet holds the schema definition for the RecallSet entity — a named
// bundle of recall points studied together.
type RecallSet struct {
	ent.Schema
}

// Fields of the RecallSet.
func (RecallSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recall_set_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Unique case-insensitively; enforced by the lower(name) index"),
		field.Text("description").
			Default(""),
		field.Enum("status").
			Values("active", "paused", "archived").
			Default("active"),
		field.Text("discussion_system_prompt").
			Comment("Template used to build the tutor persona"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the RecallSet.
func (RecallSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("points", RecallPoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", StudySession.Type),
	}
}

// Indexes of the RecallSet.
func (RecallSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}

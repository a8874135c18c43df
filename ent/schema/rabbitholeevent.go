package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RabbitholeEvent holds the schema definition for the RabbitholeEvent entity —
// one tangent conversation handled by a dedicated agent. Its history lives
// here and never appears in session_messages.
type RabbitholeEvent struct {
	ent.Schema
}

// Fields of the RabbitholeEvent.
func (RabbitholeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rabbithole_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("topic"),
		field.Int("depth").
			Min(1).
			Comment("Nesting depth; a rabbithole opened inside one increments it"),
		field.Int("trigger_message_index"),
		field.Int("return_message_index").
			Optional().
			Nillable().
			Comment("Unset while the rabbithole is open"),
		field.JSON("conversation_history", []map[string]interface{}{}).
			Optional().
			Comment("Isolated message sequence [{role, content, timestamp}]"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RabbitholeEvent.
func (RabbitholeEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("rabbitholes").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RabbitholeEvent.
func (RabbitholeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}

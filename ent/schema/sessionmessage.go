package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionMessage holds the schema definition for the SessionMessage entity —
// the main-line conversation transcript. Rabbithole history is NOT stored
// here (see RabbitholeEvent.conversation_history).
type SessionMessage struct {
	ent.Schema
}

// Fields of the SessionMessage.
func (SessionMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("message_index").
			Immutable().
			Comment("0-based, dense within a session"),
		field.Enum("role").
			Values("system", "user", "assistant"),
		field.Text("content").
			Comment("LLM-context text (transcription-corrected for user turns)"),
		field.Text("display_content").
			Optional().
			Comment("Display text when it differs from content (notation rendering)"),
		field.Int("token_count").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SessionMessage.
func (SessionMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SessionMessage.
func (SessionMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Dense index order, unique per session.
		index.Fields("session_id", "message_index").
			Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the persistent
// transport event log used for WebSocket catchup after reconnect. Token
// deltas are transient and never stored here.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Positive().
			Comment("Serial; clients track it as last_event_id for catchup"),
		field.String("session_id"),
		field.String("channel"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("session_id"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession holds the schema definition for the StudySession entity — one
// live run against one recall set.
type StudySession struct {
	ent.Schema
}

// Fields of the StudySession.
func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("recall_set_id").
			Immutable(),
		field.Enum("status").
			Values("in_progress", "completed", "abandoned").
			Default("in_progress"),
		field.JSON("target_point_ids", []string{}).
			Comment("Checklist selected at start: due points, capped"),
		field.Time("started_at").
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Time("last_activity_at").
			Optional().
			Nillable().
			Comment("Heartbeat for orphan detection"),
		field.JSON("metrics", map[string]interface{}{}).
			Optional().
			Comment("SessionMetrics snapshot, persisted at terminal transitions"),
	}
}

// Edges of the StudySession.
func (StudySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recall_set", RecallSet.Type).
			Ref("sessions").
			Field("recall_set_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", SessionMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("outcomes", RecallOutcome.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("rabbitholes", RabbitholeEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StudySession.
func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		// At most one in_progress session per recall set. ent cannot express a
		// partial unique index, so the service layer also checks; the index in
		// pkg/database's bootstrap DDL enforces it at the database level.
		index.Fields("recall_set_id", "status"),
		index.Fields("started_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecallOutcome holds the schema definition for the RecallOutcome entity —
// one demonstrated (or failed) recall of a point within a session.
type RecallOutcome struct {
	ent.Schema
}

// Fields of the RecallOutcome.
func (RecallOutcome) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("outcome_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("recall_point_id").
			Immutable(),
		field.Bool("success"),
		field.Float("confidence").
			Comment("Evaluator confidence [0,1]"),
		field.Enum("rating").
			Values("again", "hard", "good", "easy").
			Comment("Derived from confidence via the FSRS mapping"),
		field.Text("reasoning").
			Default(""),
		field.Int("message_index_start"),
		field.Int("message_index_end"),
		field.Int64("time_spent_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RecallOutcome.
func (RecallOutcome) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", StudySession.Type).
			Ref("outcomes").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("point", RecallPoint.Type).
			Ref("outcomes").
			Field("recall_point_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RecallOutcome.
func (RecallOutcome) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("recall_point_id"),
	}
}

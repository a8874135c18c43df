package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecallPoint holds the schema definition for the RecallPoint entity — one
// atomic fact plus its FSRS memory state and recall history.
type RecallPoint struct {
	ent.Schema
}

// Fields of the RecallPoint.
func (RecallPoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("recall_point_id").
			Unique().
			Immutable(),
		field.String("recall_set_id").
			Immutable(),
		field.Text("content").
			Comment("The atomic fact (min 10 chars, validated in the service layer)"),
		field.Text("context").
			Comment("Supporting explanation"),

		// FSRS memory state, denormalized for the due-points query.
		field.Float("difficulty").
			Comment("FSRS difficulty [1,10]"),
		field.Float("stability").
			Comment("FSRS stability in days"),
		field.Time("due"),
		field.Time("last_review").
			Optional().
			Nillable(),
		field.Int("reps").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.Enum("state").
			Values("new", "learning", "review", "relearning").
			Default("new"),

		field.JSON("recall_history", []map[string]interface{}{}).
			Optional().
			Comment("Append-only [{timestamp, success, latency_ms}]"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the RecallPoint.
func (RecallPoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recall_set", RecallSet.Type).
			Ref("points").
			Field("recall_set_id").
			Unique().
			Required().
			Immutable(),
		edge.To("outcomes", RecallOutcome.Type),
	}
}

// Indexes of the RecallPoint.
func (RecallPoint) Indexes() []ent.Index {
	return []ent.Index{
		// The session-start due query: points of a set with due <= now.
		index.Fields("recall_set_id", "due"),
	}
}

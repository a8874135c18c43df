// Code generated by ent, DO NOT EDIT.

package recalloutcome

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recollect-ai/recollect/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldSessionID, v))
}

// RecallPointID applies equality check predicate on the "recall_point_id" field. It's identical to RecallPointIDEQ.
func RecallPointID(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldRecallPointID, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldSuccess, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldConfidence, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldReasoning, v))
}

// MessageIndexStart applies equality check predicate on the "message_index_start" field. It's identical to MessageIndexStartEQ.
func MessageIndexStart(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldMessageIndexStart, v))
}

// MessageIndexEnd applies equality check predicate on the "message_index_end" field. It's identical to MessageIndexEndEQ.
func MessageIndexEnd(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldMessageIndexEnd, v))
}

// TimeSpentMs applies equality check predicate on the "time_spent_ms" field. It's identical to TimeSpentMsEQ.
func TimeSpentMs(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldTimeSpentMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContainsFold(FieldSessionID, v))
}

// RecallPointIDEQ applies the EQ predicate on the "recall_point_id" field.
func RecallPointIDEQ(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldRecallPointID, v))
}

// RecallPointIDNEQ applies the NEQ predicate on the "recall_point_id" field.
func RecallPointIDNEQ(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldRecallPointID, v))
}

// RecallPointIDIn applies the In predicate on the "recall_point_id" field.
func RecallPointIDIn(vs ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldRecallPointID, vs...))
}

// RecallPointIDNotIn applies the NotIn predicate on the "recall_point_id" field.
func RecallPointIDNotIn(vs ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldRecallPointID, vs...))
}

// RecallPointIDGT applies the GT predicate on the "recall_point_id" field.
func RecallPointIDGT(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldRecallPointID, v))
}

// RecallPointIDGTE applies the GTE predicate on the "recall_point_id" field.
func RecallPointIDGTE(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldRecallPointID, v))
}

// RecallPointIDLT applies the LT predicate on the "recall_point_id" field.
func RecallPointIDLT(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldRecallPointID, v))
}

// RecallPointIDLTE applies the LTE predicate on the "recall_point_id" field.
func RecallPointIDLTE(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldRecallPointID, v))
}

// RecallPointIDContains applies the Contains predicate on the "recall_point_id" field.
func RecallPointIDContains(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContains(FieldRecallPointID, v))
}

// RecallPointIDHasPrefix applies the HasPrefix predicate on the "recall_point_id" field.
func RecallPointIDHasPrefix(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldHasPrefix(FieldRecallPointID, v))
}

// RecallPointIDHasSuffix applies the HasSuffix predicate on the "recall_point_id" field.
func RecallPointIDHasSuffix(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldHasSuffix(FieldRecallPointID, v))
}

// RecallPointIDEqualFold applies the EqualFold predicate on the "recall_point_id" field.
func RecallPointIDEqualFold(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEqualFold(FieldRecallPointID, v))
}

// RecallPointIDContainsFold applies the ContainsFold predicate on the "recall_point_id" field.
func RecallPointIDContainsFold(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContainsFold(FieldRecallPointID, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldSuccess, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldConfidence, v))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v Rating) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v Rating) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...Rating) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...Rating) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldRating, vs...))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldContainsFold(FieldReasoning, v))
}

// MessageIndexStartEQ applies the EQ predicate on the "message_index_start" field.
func MessageIndexStartEQ(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldMessageIndexStart, v))
}

// MessageIndexStartNEQ applies the NEQ predicate on the "message_index_start" field.
func MessageIndexStartNEQ(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldMessageIndexStart, v))
}

// MessageIndexStartIn applies the In predicate on the "message_index_start" field.
func MessageIndexStartIn(vs ...int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldMessageIndexStart, vs...))
}

// MessageIndexStartNotIn applies the NotIn predicate on the "message_index_start" field.
func MessageIndexStartNotIn(vs ...int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldMessageIndexStart, vs...))
}

// MessageIndexStartGT applies the GT predicate on the "message_index_start" field.
func MessageIndexStartGT(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldMessageIndexStart, v))
}

// MessageIndexStartGTE applies the GTE predicate on the "message_index_start" field.
func MessageIndexStartGTE(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldMessageIndexStart, v))
}

// MessageIndexStartLT applies the LT predicate on the "message_index_start" field.
func MessageIndexStartLT(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldMessageIndexStart, v))
}

// MessageIndexStartLTE applies the LTE predicate on the "message_index_start" field.
func MessageIndexStartLTE(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldMessageIndexStart, v))
}

// MessageIndexEndEQ applies the EQ predicate on the "message_index_end" field.
func MessageIndexEndEQ(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldMessageIndexEnd, v))
}

// MessageIndexEndNEQ applies the NEQ predicate on the "message_index_end" field.
func MessageIndexEndNEQ(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldMessageIndexEnd, v))
}

// MessageIndexEndIn applies the In predicate on the "message_index_end" field.
func MessageIndexEndIn(vs ...int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldMessageIndexEnd, vs...))
}

// MessageIndexEndNotIn applies the NotIn predicate on the "message_index_end" field.
func MessageIndexEndNotIn(vs ...int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldMessageIndexEnd, vs...))
}

// MessageIndexEndGT applies the GT predicate on the "message_index_end" field.
func MessageIndexEndGT(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldMessageIndexEnd, v))
}

// MessageIndexEndGTE applies the GTE predicate on the "message_index_end" field.
func MessageIndexEndGTE(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldMessageIndexEnd, v))
}

// MessageIndexEndLT applies the LT predicate on the "message_index_end" field.
func MessageIndexEndLT(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldMessageIndexEnd, v))
}

// MessageIndexEndLTE applies the LTE predicate on the "message_index_end" field.
func MessageIndexEndLTE(v int) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldMessageIndexEnd, v))
}

// TimeSpentMsEQ applies the EQ predicate on the "time_spent_ms" field.
func TimeSpentMsEQ(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsNEQ applies the NEQ predicate on the "time_spent_ms" field.
func TimeSpentMsNEQ(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldTimeSpentMs, v))
}

// TimeSpentMsIn applies the In predicate on the "time_spent_ms" field.
func TimeSpentMsIn(vs ...int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsNotIn applies the NotIn predicate on the "time_spent_ms" field.
func TimeSpentMsNotIn(vs ...int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldTimeSpentMs, vs...))
}

// TimeSpentMsGT applies the GT predicate on the "time_spent_ms" field.
func TimeSpentMsGT(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldTimeSpentMs, v))
}

// TimeSpentMsGTE applies the GTE predicate on the "time_spent_ms" field.
func TimeSpentMsGTE(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldTimeSpentMs, v))
}

// TimeSpentMsLT applies the LT predicate on the "time_spent_ms" field.
func TimeSpentMsLT(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldTimeSpentMs, v))
}

// TimeSpentMsLTE applies the LTE predicate on the "time_spent_ms" field.
func TimeSpentMsLTE(v int64) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldTimeSpentMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.RecallOutcome {
	return predicate.RecallOutcome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.StudySession) predicate.RecallOutcome {
	return predicate.RecallOutcome(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPoint applies the HasEdge predicate on the "point" edge.
func HasPoint() predicate.RecallOutcome {
	return predicate.RecallOutcome(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PointTable, PointColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPointWith applies the HasEdge predicate on the "point" edge with a given conditions (other predicates).
func HasPointWith(preds ...predicate.RecallPoint) predicate.RecallOutcome {
	return predicate.RecallOutcome(func(s *sql.Selector) {
		step := newPointStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecallOutcome) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecallOutcome) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecallOutcome) predicate.RecallOutcome {
	return predicate.RecallOutcome(sql.NotPredicates(p))
}

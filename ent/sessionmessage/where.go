// Code generated by ent, DO NOT EDIT.

package sessionmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/recollect-ai/recollect/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldSessionID, v))
}

// MessageIndex applies equality check predicate on the "message_index" field. It's identical to MessageIndexEQ.
func MessageIndex(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldMessageIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldContent, v))
}

// DisplayContent applies equality check predicate on the "display_content" field. It's identical to DisplayContentEQ.
func DisplayContent(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldDisplayContent, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldSessionID, v))
}

// MessageIndexEQ applies the EQ predicate on the "message_index" field.
func MessageIndexEQ(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldMessageIndex, v))
}

// MessageIndexNEQ applies the NEQ predicate on the "message_index" field.
func MessageIndexNEQ(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldMessageIndex, v))
}

// MessageIndexIn applies the In predicate on the "message_index" field.
func MessageIndexIn(vs ...int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldMessageIndex, vs...))
}

// MessageIndexNotIn applies the NotIn predicate on the "message_index" field.
func MessageIndexNotIn(vs ...int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldMessageIndex, vs...))
}

// MessageIndexGT applies the GT predicate on the "message_index" field.
func MessageIndexGT(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldMessageIndex, v))
}

// MessageIndexGTE applies the GTE predicate on the "message_index" field.
func MessageIndexGTE(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldMessageIndex, v))
}

// MessageIndexLT applies the LT predicate on the "message_index" field.
func MessageIndexLT(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldMessageIndex, v))
}

// MessageIndexLTE applies the LTE predicate on the "message_index" field.
func MessageIndexLTE(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldMessageIndex, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldRole, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldContent, v))
}

// DisplayContentEQ applies the EQ predicate on the "display_content" field.
func DisplayContentEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldDisplayContent, v))
}

// DisplayContentNEQ applies the NEQ predicate on the "display_content" field.
func DisplayContentNEQ(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldDisplayContent, v))
}

// DisplayContentIn applies the In predicate on the "display_content" field.
func DisplayContentIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldDisplayContent, vs...))
}

// DisplayContentNotIn applies the NotIn predicate on the "display_content" field.
func DisplayContentNotIn(vs ...string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldDisplayContent, vs...))
}

// DisplayContentGT applies the GT predicate on the "display_content" field.
func DisplayContentGT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldDisplayContent, v))
}

// DisplayContentGTE applies the GTE predicate on the "display_content" field.
func DisplayContentGTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldDisplayContent, v))
}

// DisplayContentLT applies the LT predicate on the "display_content" field.
func DisplayContentLT(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldDisplayContent, v))
}

// DisplayContentLTE applies the LTE predicate on the "display_content" field.
func DisplayContentLTE(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldDisplayContent, v))
}

// DisplayContentContains applies the Contains predicate on the "display_content" field.
func DisplayContentContains(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContains(FieldDisplayContent, v))
}

// DisplayContentHasPrefix applies the HasPrefix predicate on the "display_content" field.
func DisplayContentHasPrefix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasPrefix(FieldDisplayContent, v))
}

// DisplayContentHasSuffix applies the HasSuffix predicate on the "display_content" field.
func DisplayContentHasSuffix(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldHasSuffix(FieldDisplayContent, v))
}

// DisplayContentIsNil applies the IsNil predicate on the "display_content" field.
func DisplayContentIsNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIsNull(FieldDisplayContent))
}

// DisplayContentNotNil applies the NotNil predicate on the "display_content" field.
func DisplayContentNotNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotNull(FieldDisplayContent))
}

// DisplayContentEqualFold applies the EqualFold predicate on the "display_content" field.
func DisplayContentEqualFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEqualFold(FieldDisplayContent, v))
}

// DisplayContentContainsFold applies the ContainsFold predicate on the "display_content" field.
func DisplayContentContainsFold(v string) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldContainsFold(FieldDisplayContent, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldTokenCount, v))
}

// TokenCountIsNil applies the IsNil predicate on the "token_count" field.
func TokenCountIsNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIsNull(FieldTokenCount))
}

// TokenCountNotNil applies the NotNil predicate on the "token_count" field.
func TokenCountNotNil() predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotNull(FieldTokenCount))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SessionMessage {
	return predicate.SessionMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.SessionMessage {
	return predicate.SessionMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.StudySession) predicate.SessionMessage {
	return predicate.SessionMessage(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionMessage) predicate.SessionMessage {
	return predicate.SessionMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionMessage) predicate.SessionMessage {
	return predicate.SessionMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionMessage) predicate.SessionMessage {
	return predicate.SessionMessage(sql.NotPredicates(p))
}

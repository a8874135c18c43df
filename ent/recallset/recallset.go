// Code generated by ent, DO NOT EDIT.

package recallset

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recallset type in the database.
	Label = "recall_set"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "recall_set_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDiscussionSystemPrompt holds the string denoting the discussion_system_prompt field in the database.
	FieldDiscussionSystemPrompt = "discussion_system_prompt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePoints holds the string denoting the points edge name in mutations.
	EdgePoints = "points"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// RecallPointFieldID holds the string denoting the ID field of the RecallPoint.
	RecallPointFieldID = "recall_point_id"
	// StudySessionFieldID holds the string denoting the ID field of the StudySession.
	StudySessionFieldID = "session_id"
	// Table holds the table name of the recallset in the database.
	Table = "recall_sets"
	// PointsTable is the table that holds the points relation/edge.
	PointsTable = "recall_points"
	// PointsInverseTable is the table name for the RecallPoint entity.
	// It exists in this package in order to avoid circular dependency with the "recallpoint" package.
	PointsInverseTable = "recall_points"
	// PointsColumn is the table column denoting the points relation/edge.
	PointsColumn = "recall_set_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "study_sessions"
	// SessionsInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	SessionsInverseTable = "study_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "recall_set_id"
)

// Columns holds all SQL columns for recallset fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldStatus,
	FieldDiscussionSystemPrompt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusPaused, StatusArchived:
		return nil
	default:
		return fmt.Errorf("recallset: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the RecallSet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDiscussionSystemPrompt orders the results by the discussion_system_prompt field.
func ByDiscussionSystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscussionSystemPrompt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPointsCount orders the results by points count.
func ByPointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPointsStep(), opts...)
	}
}

// ByPoints orders the results by points terms.
func ByPoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PointsInverseTable, RecallPointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PointsTable, PointsColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, StudySessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}

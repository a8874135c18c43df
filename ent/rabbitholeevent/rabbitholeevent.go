// Code generated by ent, DO NOT EDIT.

package rabbitholeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rabbitholeevent type in the database.
	Label = "rabbithole_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rabbithole_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldTriggerMessageIndex holds the string denoting the trigger_message_index field in the database.
	FieldTriggerMessageIndex = "trigger_message_index"
	// FieldReturnMessageIndex holds the string denoting the return_message_index field in the database.
	FieldReturnMessageIndex = "return_message_index"
	// FieldConversationHistory holds the string denoting the conversation_history field in the database.
	FieldConversationHistory = "conversation_history"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// StudySessionFieldID holds the string denoting the ID field of the StudySession.
	StudySessionFieldID = "session_id"
	// Table holds the table name of the rabbitholeevent in the database.
	Table = "rabbithole_events"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "rabbithole_events"
	// SessionInverseTable is the table name for the StudySession entity.
	// It exists in this package in order to avoid circular dependency with the "studysession" package.
	SessionInverseTable = "study_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for rabbitholeevent fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTopic,
	FieldDepth,
	FieldTriggerMessageIndex,
	FieldReturnMessageIndex,
	FieldConversationHistory,
	FieldCreatedAt,
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
	// DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	DepthValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RabbitholeEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByTriggerMessageIndex orders the results by the trigger_message_index field.
func ByTriggerMessageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerMessageIndex, opts...).ToFunc()
}

// ByReturnMessageIndex orders the results by the return_message_index field.
func ByReturnMessageIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReturnMessageIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, StudySessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// SessionMessage is the model entity for the SessionMessage schema.
type SessionMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// 0-based, dense within a session
	MessageIndex int `json:"message_index,omitempty"`
	// Role holds the value of the "role" field.
	Role sessionmessage.Role `json:"role,omitempty"`
	// LLM-context text (transcription-corrected for user turns)
	Content string `json:"content,omitempty"`
	// Display text when it differs from content (notation rendering)
	DisplayContent string `json:"display_content,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount *int `json:"token_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionMessageQuery when eager-loading is set.
	Edges        SessionMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionMessageEdges holds the relations/edges for other nodes in the graph.
type SessionMessageEdges struct {
	// Session holds the value of the session edge.
	Session *StudySession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SessionMessageEdges) SessionOrErr() (*StudySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionmessage.FieldMessageIndex, sessionmessage.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case sessionmessage.FieldID, sessionmessage.FieldSessionID, sessionmessage.FieldRole, sessionmessage.FieldContent, sessionmessage.FieldDisplayContent:
			values[i] = new(sql.NullString)
		case sessionmessage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionMessage fields.
func (_m *SessionMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sessionmessage.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionmessage.FieldMessageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_index", values[i])
			} else if value.Valid {
				_m.MessageIndex = int(value.Int64)
			}
		case sessionmessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = sessionmessage.Role(value.String)
			}
		case sessionmessage.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case sessionmessage.FieldDisplayContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_content", values[i])
			} else if value.Valid {
				_m.DisplayContent = value.String
			}
		case sessionmessage.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = new(int)
				*_m.TokenCount = int(value.Int64)
			}
		case sessionmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionMessage.
// This includes values selected through modifiers, order, etc.
func (_m *SessionMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the SessionMessage entity.
func (_m *SessionMessage) QuerySession() *StudySessionQuery {
	return NewSessionMessageClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this SessionMessage.
// Note that you need to call SessionMessage.Unwrap() before calling this method if this SessionMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionMessage) Update() *SessionMessageUpdateOne {
	return NewSessionMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionMessage) Unwrap() *SessionMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionMessage) String() string {
	var builder strings.Builder
	builder.WriteString("SessionMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("message_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageIndex))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("display_content=")
	builder.WriteString(_m.DisplayContent)
	builder.WriteString(", ")
	if v := _m.TokenCount; v != nil {
		builder.WriteString("token_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionMessages is a parsable slice of SessionMessage.
type SessionMessages []*SessionMessage

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// RabbitholeEvent is the model entity for the RabbitholeEvent schema.
type RabbitholeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Nesting depth; a rabbithole opened inside one increments it
	Depth int `json:"depth,omitempty"`
	// TriggerMessageIndex holds the value of the "trigger_message_index" field.
	TriggerMessageIndex int `json:"trigger_message_index,omitempty"`
	// Unset while the rabbithole is open
	ReturnMessageIndex *int `json:"return_message_index,omitempty"`
	// Isolated message sequence [{role, content, timestamp}]
	ConversationHistory []map[string]interface{} `json:"conversation_history,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RabbitholeEventQuery when eager-loading is set.
	Edges        RabbitholeEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RabbitholeEventEdges holds the relations/edges for other nodes in the graph.
type RabbitholeEventEdges struct {
	// Session holds the value of the session edge.
	Session *StudySession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RabbitholeEventEdges) SessionOrErr() (*StudySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RabbitholeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rabbitholeevent.FieldConversationHistory:
			values[i] = new([]byte)
		case rabbitholeevent.FieldDepth, rabbitholeevent.FieldTriggerMessageIndex, rabbitholeevent.FieldReturnMessageIndex:
			values[i] = new(sql.NullInt64)
		case rabbitholeevent.FieldID, rabbitholeevent.FieldSessionID, rabbitholeevent.FieldTopic:
			values[i] = new(sql.NullString)
		case rabbitholeevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RabbitholeEvent fields.
func (_m *RabbitholeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rabbitholeevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rabbitholeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case rabbitholeevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case rabbitholeevent.FieldDepth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field depth", values[i])
			} else if value.Valid {
				_m.Depth = int(value.Int64)
			}
		case rabbitholeevent.FieldTriggerMessageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_message_index", values[i])
			} else if value.Valid {
				_m.TriggerMessageIndex = int(value.Int64)
			}
		case rabbitholeevent.FieldReturnMessageIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field return_message_index", values[i])
			} else if value.Valid {
				_m.ReturnMessageIndex = new(int)
				*_m.ReturnMessageIndex = int(value.Int64)
			}
		case rabbitholeevent.FieldConversationHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ConversationHistory); err != nil {
					return fmt.Errorf("unmarshal field conversation_history: %w", err)
				}
			}
		case rabbitholeevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RabbitholeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RabbitholeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the RabbitholeEvent entity.
func (_m *RabbitholeEvent) QuerySession() *StudySessionQuery {
	return NewRabbitholeEventClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this RabbitholeEvent.
// Note that you need to call RabbitholeEvent.Unwrap() before calling this method if this RabbitholeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RabbitholeEvent) Update() *RabbitholeEventUpdateOne {
	return NewRabbitholeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RabbitholeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RabbitholeEvent) Unwrap() *RabbitholeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RabbitholeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RabbitholeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RabbitholeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("depth=")
	builder.WriteString(fmt.Sprintf("%v", _m.Depth))
	builder.WriteString(", ")
	builder.WriteString("trigger_message_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerMessageIndex))
	builder.WriteString(", ")
	if v := _m.ReturnMessageIndex; v != nil {
		builder.WriteString("return_message_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("conversation_history=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversationHistory))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RabbitholeEvents is a parsable slice of RabbitholeEvent.
type RabbitholeEvents []*RabbitholeEvent

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recollect-ai/recollect/ent/recallset"
)

// RecallSet is the model entity for the RecallSet schema.
type RecallSet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Unique case-insensitively; enforced by the lower(name) index
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Status holds the value of the "status" field.
	Status recallset.Status `json:"status,omitempty"`
	// Template used to build the tutor persona
	DiscussionSystemPrompt string `json:"discussion_system_prompt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecallSetQuery when eager-loading is set.
	Edges        RecallSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecallSetEdges holds the relations/edges for other nodes in the graph.
type RecallSetEdges struct {
	// Points holds the value of the points edge.
	Points []*RecallPoint `json:"points,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*StudySession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PointsOrErr returns the Points value or an error if the edge
// was not loaded in eager-loading.
func (e RecallSetEdges) PointsOrErr() ([]*RecallPoint, error) {
	if e.loadedTypes[0] {
		return e.Points, nil
	}
	return nil, &NotLoadedError{edge: "points"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e RecallSetEdges) SessionsOrErr() ([]*StudySession, error) {
	if e.loadedTypes[1] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecallSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recallset.FieldID, recallset.FieldName, recallset.FieldDescription, recallset.FieldStatus, recallset.FieldDiscussionSystemPrompt:
			values[i] = new(sql.NullString)
		case recallset.FieldCreatedAt, recallset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecallSet fields.
func (_m *RecallSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recallset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recallset.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case recallset.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case recallset.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recallset.Status(value.String)
			}
		case recallset.FieldDiscussionSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discussion_system_prompt", values[i])
			} else if value.Valid {
				_m.DiscussionSystemPrompt = value.String
			}
		case recallset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recallset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecallSet.
// This includes values selected through modifiers, order, etc.
func (_m *RecallSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPoints queries the "points" edge of the RecallSet entity.
func (_m *RecallSet) QueryPoints() *RecallPointQuery {
	return NewRecallSetClient(_m.config).QueryPoints(_m)
}

// QuerySessions queries the "sessions" edge of the RecallSet entity.
func (_m *RecallSet) QuerySessions() *StudySessionQuery {
	return NewRecallSetClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this RecallSet.
// Note that you need to call RecallSet.Unwrap() before calling this method if this RecallSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecallSet) Update() *RecallSetUpdateOne {
	return NewRecallSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecallSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecallSet) Unwrap() *RecallSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecallSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecallSet) String() string {
	var builder strings.Builder
	builder.WriteString("RecallSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("discussion_system_prompt=")
	builder.WriteString(_m.DiscussionSystemPrompt)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecallSets is a parsable slice of RecallSet.
type RecallSets []*RecallSet

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// RecallOutcome is the model entity for the RecallOutcome schema.
type RecallOutcome struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// RecallPointID holds the value of the "recall_point_id" field.
	RecallPointID string `json:"recall_point_id,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// Evaluator confidence [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Derived from confidence via the FSRS mapping
	Rating recalloutcome.Rating `json:"rating,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// MessageIndexStart holds the value of the "message_index_start" field.
	MessageIndexStart int `json:"message_index_start,omitempty"`
	// MessageIndexEnd holds the value of the "message_index_end" field.
	MessageIndexEnd int `json:"message_index_end,omitempty"`
	// TimeSpentMs holds the value of the "time_spent_ms" field.
	TimeSpentMs int64 `json:"time_spent_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RecallOutcomeQuery when eager-loading is set.
	Edges        RecallOutcomeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RecallOutcomeEdges holds the relations/edges for other nodes in the graph.
type RecallOutcomeEdges struct {
	// Session holds the value of the session edge.
	Session *StudySession `json:"session,omitempty"`
	// Point holds the value of the point edge.
	Point *RecallPoint `json:"point,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecallOutcomeEdges) SessionOrErr() (*StudySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: studysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// PointOrErr returns the Point value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RecallOutcomeEdges) PointOrErr() (*RecallPoint, error) {
	if e.Point != nil {
		return e.Point, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: recallpoint.Label}
	}
	return nil, &NotLoadedError{edge: "point"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecallOutcome) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recalloutcome.FieldSuccess:
			values[i] = new(sql.NullBool)
		case recalloutcome.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case recalloutcome.FieldMessageIndexStart, recalloutcome.FieldMessageIndexEnd, recalloutcome.FieldTimeSpentMs:
			values[i] = new(sql.NullInt64)
		case recalloutcome.FieldID, recalloutcome.FieldSessionID, recalloutcome.FieldRecallPointID, recalloutcome.FieldRating, recalloutcome.FieldReasoning:
			values[i] = new(sql.NullString)
		case recalloutcome.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecallOutcome fields.
func (_m *RecallOutcome) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recalloutcome.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case recalloutcome.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case recalloutcome.FieldRecallPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recall_point_id", values[i])
			} else if value.Valid {
				_m.RecallPointID = value.String
			}
		case recalloutcome.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case recalloutcome.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case recalloutcome.FieldRating:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = recalloutcome.Rating(value.String)
			}
		case recalloutcome.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case recalloutcome.FieldMessageIndexStart:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_index_start", values[i])
			} else if value.Valid {
				_m.MessageIndexStart = int(value.Int64)
			}
		case recalloutcome.FieldMessageIndexEnd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_index_end", values[i])
			} else if value.Valid {
				_m.MessageIndexEnd = int(value.Int64)
			}
		case recalloutcome.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				_m.TimeSpentMs = value.Int64
			}
		case recalloutcome.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RecallOutcome.
// This includes values selected through modifiers, order, etc.
func (_m *RecallOutcome) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the RecallOutcome entity.
func (_m *RecallOutcome) QuerySession() *StudySessionQuery {
	return NewRecallOutcomeClient(_m.config).QuerySession(_m)
}

// QueryPoint queries the "point" edge of the RecallOutcome entity.
func (_m *RecallOutcome) QueryPoint() *RecallPointQuery {
	return NewRecallOutcomeClient(_m.config).QueryPoint(_m)
}

// Update returns a builder for updating this RecallOutcome.
// Note that you need to call RecallOutcome.Unwrap() before calling this method if this RecallOutcome
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecallOutcome) Update() *RecallOutcomeUpdateOne {
	return NewRecallOutcomeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecallOutcome entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecallOutcome) Unwrap() *RecallOutcome {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecallOutcome is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecallOutcome) String() string {
	var builder strings.Builder
	builder.WriteString("RecallOutcome(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("recall_point_id=")
	builder.WriteString(_m.RecallPointID)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("message_index_start=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageIndexStart))
	builder.WriteString(", ")
	builder.WriteString("message_index_end=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageIndexEnd))
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecallOutcomes is a parsable slice of RecallOutcome.
type RecallOutcomes []*RecallOutcome

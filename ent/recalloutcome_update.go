// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
)

// RecallOutcomeUpdate is the builder for updating RecallOutcome entities.
type RecallOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *RecallOutcomeMutation
}

// Where appends a list predicates to the RecallOutcomeUpdate builder.
func (_u *RecallOutcomeUpdate) Where(ps ...predicate.RecallOutcome) *RecallOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *RecallOutcomeUpdate) SetSuccess(v bool) *RecallOutcomeUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableSuccess(v *bool) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RecallOutcomeUpdate) SetConfidence(v float64) *RecallOutcomeUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableConfidence(v *float64) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RecallOutcomeUpdate) AddConfidence(v float64) *RecallOutcomeUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *RecallOutcomeUpdate) SetRating(v recalloutcome.Rating) *RecallOutcomeUpdate {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableRating(v *recalloutcome.Rating) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *RecallOutcomeUpdate) SetReasoning(v string) *RecallOutcomeUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableReasoning(v *string) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetMessageIndexStart sets the "message_index_start" field.
func (_u *RecallOutcomeUpdate) SetMessageIndexStart(v int) *RecallOutcomeUpdate {
	_u.mutation.ResetMessageIndexStart()
	_u.mutation.SetMessageIndexStart(v)
	return _u
}

// SetNillableMessageIndexStart sets the "message_index_start" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableMessageIndexStart(v *int) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetMessageIndexStart(*v)
	}
	return _u
}

// AddMessageIndexStart adds value to the "message_index_start" field.
func (_u *RecallOutcomeUpdate) AddMessageIndexStart(v int) *RecallOutcomeUpdate {
	_u.mutation.AddMessageIndexStart(v)
	return _u
}

// SetMessageIndexEnd sets the "message_index_end" field.
func (_u *RecallOutcomeUpdate) SetMessageIndexEnd(v int) *RecallOutcomeUpdate {
	_u.mutation.ResetMessageIndexEnd()
	_u.mutation.SetMessageIndexEnd(v)
	return _u
}

// SetNillableMessageIndexEnd sets the "message_index_end" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableMessageIndexEnd(v *int) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetMessageIndexEnd(*v)
	}
	return _u
}

// AddMessageIndexEnd adds value to the "message_index_end" field.
func (_u *RecallOutcomeUpdate) AddMessageIndexEnd(v int) *RecallOutcomeUpdate {
	_u.mutation.AddMessageIndexEnd(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *RecallOutcomeUpdate) SetTimeSpentMs(v int64) *RecallOutcomeUpdate {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *RecallOutcomeUpdate) SetNillableTimeSpentMs(v *int64) *RecallOutcomeUpdate {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *RecallOutcomeUpdate) AddTimeSpentMs(v int64) *RecallOutcomeUpdate {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the RecallOutcomeMutation object of the builder.
func (_u *RecallOutcomeUpdate) Mutation() *RecallOutcomeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecallOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecallOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallOutcomeUpdate) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := recalloutcome.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "RecallOutcome.rating": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.session"`)
	}
	if _u.mutation.PointCleared() && len(_u.mutation.PointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.point"`)
	}
	return nil
}

func (_u *RecallOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recalloutcome.Table, recalloutcome.Columns, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(recalloutcome.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(recalloutcome.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(recalloutcome.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(recalloutcome.FieldRating, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(recalloutcome.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageIndexStart(); ok {
		_spec.SetField(recalloutcome.FieldMessageIndexStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageIndexStart(); ok {
		_spec.AddField(recalloutcome.FieldMessageIndexStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageIndexEnd(); ok {
		_spec.SetField(recalloutcome.FieldMessageIndexEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageIndexEnd(); ok {
		_spec.AddField(recalloutcome.FieldMessageIndexEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(recalloutcome.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(recalloutcome.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recalloutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecallOutcomeUpdateOne is the builder for updating a single RecallOutcome entity.
type RecallOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecallOutcomeMutation
}

// SetSuccess sets the "success" field.
func (_u *RecallOutcomeUpdateOne) SetSuccess(v bool) *RecallOutcomeUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableSuccess(v *bool) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *RecallOutcomeUpdateOne) SetConfidence(v float64) *RecallOutcomeUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableConfidence(v *float64) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *RecallOutcomeUpdateOne) AddConfidence(v float64) *RecallOutcomeUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetRating sets the "rating" field.
func (_u *RecallOutcomeUpdateOne) SetRating(v recalloutcome.Rating) *RecallOutcomeUpdateOne {
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableRating(v *recalloutcome.Rating) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *RecallOutcomeUpdateOne) SetReasoning(v string) *RecallOutcomeUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableReasoning(v *string) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetMessageIndexStart sets the "message_index_start" field.
func (_u *RecallOutcomeUpdateOne) SetMessageIndexStart(v int) *RecallOutcomeUpdateOne {
	_u.mutation.ResetMessageIndexStart()
	_u.mutation.SetMessageIndexStart(v)
	return _u
}

// SetNillableMessageIndexStart sets the "message_index_start" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableMessageIndexStart(v *int) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetMessageIndexStart(*v)
	}
	return _u
}

// AddMessageIndexStart adds value to the "message_index_start" field.
func (_u *RecallOutcomeUpdateOne) AddMessageIndexStart(v int) *RecallOutcomeUpdateOne {
	_u.mutation.AddMessageIndexStart(v)
	return _u
}

// SetMessageIndexEnd sets the "message_index_end" field.
func (_u *RecallOutcomeUpdateOne) SetMessageIndexEnd(v int) *RecallOutcomeUpdateOne {
	_u.mutation.ResetMessageIndexEnd()
	_u.mutation.SetMessageIndexEnd(v)
	return _u
}

// SetNillableMessageIndexEnd sets the "message_index_end" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableMessageIndexEnd(v *int) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetMessageIndexEnd(*v)
	}
	return _u
}

// AddMessageIndexEnd adds value to the "message_index_end" field.
func (_u *RecallOutcomeUpdateOne) AddMessageIndexEnd(v int) *RecallOutcomeUpdateOne {
	_u.mutation.AddMessageIndexEnd(v)
	return _u
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_u *RecallOutcomeUpdateOne) SetTimeSpentMs(v int64) *RecallOutcomeUpdateOne {
	_u.mutation.ResetTimeSpentMs()
	_u.mutation.SetTimeSpentMs(v)
	return _u
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_u *RecallOutcomeUpdateOne) SetNillableTimeSpentMs(v *int64) *RecallOutcomeUpdateOne {
	if v != nil {
		_u.SetTimeSpentMs(*v)
	}
	return _u
}

// AddTimeSpentMs adds value to the "time_spent_ms" field.
func (_u *RecallOutcomeUpdateOne) AddTimeSpentMs(v int64) *RecallOutcomeUpdateOne {
	_u.mutation.AddTimeSpentMs(v)
	return _u
}

// Mutation returns the RecallOutcomeMutation object of the builder.
func (_u *RecallOutcomeUpdateOne) Mutation() *RecallOutcomeMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecallOutcomeUpdate builder.
func (_u *RecallOutcomeUpdateOne) Where(ps ...predicate.RecallOutcome) *RecallOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecallOutcomeUpdateOne) Select(field string, fields ...string) *RecallOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecallOutcome entity.
func (_u *RecallOutcomeUpdateOne) Save(ctx context.Context) (*RecallOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecallOutcomeUpdateOne) SaveX(ctx context.Context) *RecallOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecallOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecallOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecallOutcomeUpdateOne) check() error {
	if v, ok := _u.mutation.Rating(); ok {
		if err := recalloutcome.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "RecallOutcome.rating": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.session"`)
	}
	if _u.mutation.PointCleared() && len(_u.mutation.PointIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecallOutcome.point"`)
	}
	return nil
}

func (_u *RecallOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *RecallOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recalloutcome.Table, recalloutcome.Columns, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecallOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recalloutcome.FieldID)
		for _, f := range fields {
			if !recalloutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recalloutcome.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(recalloutcome.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(recalloutcome.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(recalloutcome.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(recalloutcome.FieldRating, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(recalloutcome.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageIndexStart(); ok {
		_spec.SetField(recalloutcome.FieldMessageIndexStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageIndexStart(); ok {
		_spec.AddField(recalloutcome.FieldMessageIndexStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageIndexEnd(); ok {
		_spec.SetField(recalloutcome.FieldMessageIndexEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageIndexEnd(); ok {
		_spec.AddField(recalloutcome.FieldMessageIndexEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentMs(); ok {
		_spec.SetField(recalloutcome.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(recalloutcome.FieldTimeSpentMs, field.TypeInt64, value)
	}
	_node = &RecallOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recalloutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

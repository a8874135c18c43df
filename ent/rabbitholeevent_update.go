// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
)

// RabbitholeEventUpdate is the builder for updating RabbitholeEvent entities.
type RabbitholeEventUpdate struct {
	config
	hooks    []Hook
	mutation *RabbitholeEventMutation
}

// Where appends a list predicates to the RabbitholeEventUpdate builder.
func (_u *RabbitholeEventUpdate) Where(ps ...predicate.RabbitholeEvent) *RabbitholeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *RabbitholeEventUpdate) SetTopic(v string) *RabbitholeEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *RabbitholeEventUpdate) SetNillableTopic(v *string) *RabbitholeEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *RabbitholeEventUpdate) SetDepth(v int) *RabbitholeEventUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *RabbitholeEventUpdate) SetNillableDepth(v *int) *RabbitholeEventUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *RabbitholeEventUpdate) AddDepth(v int) *RabbitholeEventUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetTriggerMessageIndex sets the "trigger_message_index" field.
func (_u *RabbitholeEventUpdate) SetTriggerMessageIndex(v int) *RabbitholeEventUpdate {
	_u.mutation.ResetTriggerMessageIndex()
	_u.mutation.SetTriggerMessageIndex(v)
	return _u
}

// SetNillableTriggerMessageIndex sets the "trigger_message_index" field if the given value is not nil.
func (_u *RabbitholeEventUpdate) SetNillableTriggerMessageIndex(v *int) *RabbitholeEventUpdate {
	if v != nil {
		_u.SetTriggerMessageIndex(*v)
	}
	return _u
}

// AddTriggerMessageIndex adds value to the "trigger_message_index" field.
func (_u *RabbitholeEventUpdate) AddTriggerMessageIndex(v int) *RabbitholeEventUpdate {
	_u.mutation.AddTriggerMessageIndex(v)
	return _u
}

// SetReturnMessageIndex sets the "return_message_index" field.
func (_u *RabbitholeEventUpdate) SetReturnMessageIndex(v int) *RabbitholeEventUpdate {
	_u.mutation.ResetReturnMessageIndex()
	_u.mutation.SetReturnMessageIndex(v)
	return _u
}

// SetNillableReturnMessageIndex sets the "return_message_index" field if the given value is not nil.
func (_u *RabbitholeEventUpdate) SetNillableReturnMessageIndex(v *int) *RabbitholeEventUpdate {
	if v != nil {
		_u.SetReturnMessageIndex(*v)
	}
	return _u
}

// AddReturnMessageIndex adds value to the "return_message_index" field.
func (_u *RabbitholeEventUpdate) AddReturnMessageIndex(v int) *RabbitholeEventUpdate {
	_u.mutation.AddReturnMessageIndex(v)
	return _u
}

// ClearReturnMessageIndex clears the value of the "return_message_index" field.
func (_u *RabbitholeEventUpdate) ClearReturnMessageIndex() *RabbitholeEventUpdate {
	_u.mutation.ClearReturnMessageIndex()
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *RabbitholeEventUpdate) SetConversationHistory(v []map[string]interface{}) *RabbitholeEventUpdate {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// AppendConversationHistory appends value to the "conversation_history" field.
func (_u *RabbitholeEventUpdate) AppendConversationHistory(v []map[string]interface{}) *RabbitholeEventUpdate {
	_u.mutation.AppendConversationHistory(v)
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *RabbitholeEventUpdate) ClearConversationHistory() *RabbitholeEventUpdate {
	_u.mutation.ClearConversationHistory()
	return _u
}

// Mutation returns the RabbitholeEventMutation object of the builder.
func (_u *RabbitholeEventUpdate) Mutation() *RabbitholeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RabbitholeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RabbitholeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RabbitholeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RabbitholeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RabbitholeEventUpdate) check() error {
	if v, ok := _u.mutation.Depth(); ok {
		if err := rabbitholeevent.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "RabbitholeEvent.depth": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RabbitholeEvent.session"`)
	}
	return nil
}

func (_u *RabbitholeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rabbitholeevent.Table, rabbitholeevent.Columns, sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(rabbitholeevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(rabbitholeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(rabbitholeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggerMessageIndex(); ok {
		_spec.SetField(rabbitholeevent.FieldTriggerMessageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriggerMessageIndex(); ok {
		_spec.AddField(rabbitholeevent.FieldTriggerMessageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReturnMessageIndex(); ok {
		_spec.SetField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReturnMessageIndex(); ok {
		_spec.AddField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt, value)
	}
	if _u.mutation.ReturnMessageIndexCleared() {
		_spec.ClearField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(rabbitholeevent.FieldConversationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rabbitholeevent.FieldConversationHistory, value)
		})
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(rabbitholeevent.FieldConversationHistory, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rabbitholeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RabbitholeEventUpdateOne is the builder for updating a single RabbitholeEvent entity.
type RabbitholeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RabbitholeEventMutation
}

// SetTopic sets the "topic" field.
func (_u *RabbitholeEventUpdateOne) SetTopic(v string) *RabbitholeEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *RabbitholeEventUpdateOne) SetNillableTopic(v *string) *RabbitholeEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *RabbitholeEventUpdateOne) SetDepth(v int) *RabbitholeEventUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *RabbitholeEventUpdateOne) SetNillableDepth(v *int) *RabbitholeEventUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *RabbitholeEventUpdateOne) AddDepth(v int) *RabbitholeEventUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetTriggerMessageIndex sets the "trigger_message_index" field.
func (_u *RabbitholeEventUpdateOne) SetTriggerMessageIndex(v int) *RabbitholeEventUpdateOne {
	_u.mutation.ResetTriggerMessageIndex()
	_u.mutation.SetTriggerMessageIndex(v)
	return _u
}

// SetNillableTriggerMessageIndex sets the "trigger_message_index" field if the given value is not nil.
func (_u *RabbitholeEventUpdateOne) SetNillableTriggerMessageIndex(v *int) *RabbitholeEventUpdateOne {
	if v != nil {
		_u.SetTriggerMessageIndex(*v)
	}
	return _u
}

// AddTriggerMessageIndex adds value to the "trigger_message_index" field.
func (_u *RabbitholeEventUpdateOne) AddTriggerMessageIndex(v int) *RabbitholeEventUpdateOne {
	_u.mutation.AddTriggerMessageIndex(v)
	return _u
}

// SetReturnMessageIndex sets the "return_message_index" field.
func (_u *RabbitholeEventUpdateOne) SetReturnMessageIndex(v int) *RabbitholeEventUpdateOne {
	_u.mutation.ResetReturnMessageIndex()
	_u.mutation.SetReturnMessageIndex(v)
	return _u
}

// SetNillableReturnMessageIndex sets the "return_message_index" field if the given value is not nil.
func (_u *RabbitholeEventUpdateOne) SetNillableReturnMessageIndex(v *int) *RabbitholeEventUpdateOne {
	if v != nil {
		_u.SetReturnMessageIndex(*v)
	}
	return _u
}

// AddReturnMessageIndex adds value to the "return_message_index" field.
func (_u *RabbitholeEventUpdateOne) AddReturnMessageIndex(v int) *RabbitholeEventUpdateOne {
	_u.mutation.AddReturnMessageIndex(v)
	return _u
}

// ClearReturnMessageIndex clears the value of the "return_message_index" field.
func (_u *RabbitholeEventUpdateOne) ClearReturnMessageIndex() *RabbitholeEventUpdateOne {
	_u.mutation.ClearReturnMessageIndex()
	return _u
}

// SetConversationHistory sets the "conversation_history" field.
func (_u *RabbitholeEventUpdateOne) SetConversationHistory(v []map[string]interface{}) *RabbitholeEventUpdateOne {
	_u.mutation.SetConversationHistory(v)
	return _u
}

// AppendConversationHistory appends value to the "conversation_history" field.
func (_u *RabbitholeEventUpdateOne) AppendConversationHistory(v []map[string]interface{}) *RabbitholeEventUpdateOne {
	_u.mutation.AppendConversationHistory(v)
	return _u
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (_u *RabbitholeEventUpdateOne) ClearConversationHistory() *RabbitholeEventUpdateOne {
	_u.mutation.ClearConversationHistory()
	return _u
}

// Mutation returns the RabbitholeEventMutation object of the builder.
func (_u *RabbitholeEventUpdateOne) Mutation() *RabbitholeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RabbitholeEventUpdate builder.
func (_u *RabbitholeEventUpdateOne) Where(ps ...predicate.RabbitholeEvent) *RabbitholeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RabbitholeEventUpdateOne) Select(field string, fields ...string) *RabbitholeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RabbitholeEvent entity.
func (_u *RabbitholeEventUpdateOne) Save(ctx context.Context) (*RabbitholeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RabbitholeEventUpdateOne) SaveX(ctx context.Context) *RabbitholeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RabbitholeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RabbitholeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RabbitholeEventUpdateOne) check() error {
	if v, ok := _u.mutation.Depth(); ok {
		if err := rabbitholeevent.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "RabbitholeEvent.depth": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RabbitholeEvent.session"`)
	}
	return nil
}

func (_u *RabbitholeEventUpdateOne) sqlSave(ctx context.Context) (_node *RabbitholeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rabbitholeevent.Table, rabbitholeevent.Columns, sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RabbitholeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rabbitholeevent.FieldID)
		for _, f := range fields {
			if !rabbitholeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rabbitholeevent.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(rabbitholeevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(rabbitholeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(rabbitholeevent.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TriggerMessageIndex(); ok {
		_spec.SetField(rabbitholeevent.FieldTriggerMessageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTriggerMessageIndex(); ok {
		_spec.AddField(rabbitholeevent.FieldTriggerMessageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReturnMessageIndex(); ok {
		_spec.SetField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReturnMessageIndex(); ok {
		_spec.AddField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt, value)
	}
	if _u.mutation.ReturnMessageIndexCleared() {
		_spec.ClearField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.ConversationHistory(); ok {
		_spec.SetField(rabbitholeevent.FieldConversationHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConversationHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rabbitholeevent.FieldConversationHistory, value)
		})
	}
	if _u.mutation.ConversationHistoryCleared() {
		_spec.ClearField(rabbitholeevent.FieldConversationHistory, field.TypeJSON)
	}
	_node = &RabbitholeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rabbitholeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

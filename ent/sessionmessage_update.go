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
	"github.com/recollect-ai/recollect/ent/sessionmessage"
)

// SessionMessageUpdate is the builder for updating SessionMessage entities.
type SessionMessageUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMessageMutation
}

// Where appends a list predicates to the SessionMessageUpdate builder.
func (_u *SessionMessageUpdate) Where(ps ...predicate.SessionMessage) *SessionMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRole sets the "role" field.
func (_u *SessionMessageUpdate) SetRole(v sessionmessage.Role) *SessionMessageUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SessionMessageUpdate) SetNillableRole(v *sessionmessage.Role) *SessionMessageUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SessionMessageUpdate) SetContent(v string) *SessionMessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SessionMessageUpdate) SetNillableContent(v *string) *SessionMessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDisplayContent sets the "display_content" field.
func (_u *SessionMessageUpdate) SetDisplayContent(v string) *SessionMessageUpdate {
	_u.mutation.SetDisplayContent(v)
	return _u
}

// SetNillableDisplayContent sets the "display_content" field if the given value is not nil.
func (_u *SessionMessageUpdate) SetNillableDisplayContent(v *string) *SessionMessageUpdate {
	if v != nil {
		_u.SetDisplayContent(*v)
	}
	return _u
}

// ClearDisplayContent clears the value of the "display_content" field.
func (_u *SessionMessageUpdate) ClearDisplayContent() *SessionMessageUpdate {
	_u.mutation.ClearDisplayContent()
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *SessionMessageUpdate) SetTokenCount(v int) *SessionMessageUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *SessionMessageUpdate) SetNillableTokenCount(v *int) *SessionMessageUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *SessionMessageUpdate) AddTokenCount(v int) *SessionMessageUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *SessionMessageUpdate) ClearTokenCount() *SessionMessageUpdate {
	_u.mutation.ClearTokenCount()
	return _u
}

// Mutation returns the SessionMessageMutation object of the builder.
func (_u *SessionMessageUpdate) Mutation() *SessionMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMessageUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := sessionmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "SessionMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMessage.session"`)
	}
	return nil
}

func (_u *SessionMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmessage.Table, sessionmessage.Columns, sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(sessionmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sessionmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayContent(); ok {
		_spec.SetField(sessionmessage.FieldDisplayContent, field.TypeString, value)
	}
	if _u.mutation.DisplayContentCleared() {
		_spec.ClearField(sessionmessage.FieldDisplayContent, field.TypeString)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(sessionmessage.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(sessionmessage.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(sessionmessage.FieldTokenCount, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionMessageUpdateOne is the builder for updating a single SessionMessage entity.
type SessionMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMessageMutation
}

// SetRole sets the "role" field.
func (_u *SessionMessageUpdateOne) SetRole(v sessionmessage.Role) *SessionMessageUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SessionMessageUpdateOne) SetNillableRole(v *sessionmessage.Role) *SessionMessageUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SessionMessageUpdateOne) SetContent(v string) *SessionMessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SessionMessageUpdateOne) SetNillableContent(v *string) *SessionMessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDisplayContent sets the "display_content" field.
func (_u *SessionMessageUpdateOne) SetDisplayContent(v string) *SessionMessageUpdateOne {
	_u.mutation.SetDisplayContent(v)
	return _u
}

// SetNillableDisplayContent sets the "display_content" field if the given value is not nil.
func (_u *SessionMessageUpdateOne) SetNillableDisplayContent(v *string) *SessionMessageUpdateOne {
	if v != nil {
		_u.SetDisplayContent(*v)
	}
	return _u
}

// ClearDisplayContent clears the value of the "display_content" field.
func (_u *SessionMessageUpdateOne) ClearDisplayContent() *SessionMessageUpdateOne {
	_u.mutation.ClearDisplayContent()
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *SessionMessageUpdateOne) SetTokenCount(v int) *SessionMessageUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *SessionMessageUpdateOne) SetNillableTokenCount(v *int) *SessionMessageUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *SessionMessageUpdateOne) AddTokenCount(v int) *SessionMessageUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *SessionMessageUpdateOne) ClearTokenCount() *SessionMessageUpdateOne {
	_u.mutation.ClearTokenCount()
	return _u
}

// Mutation returns the SessionMessageMutation object of the builder.
func (_u *SessionMessageUpdateOne) Mutation() *SessionMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionMessageUpdate builder.
func (_u *SessionMessageUpdateOne) Where(ps ...predicate.SessionMessage) *SessionMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionMessageUpdateOne) Select(field string, fields ...string) *SessionMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionMessage entity.
func (_u *SessionMessageUpdateOne) Save(ctx context.Context) (*SessionMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionMessageUpdateOne) SaveX(ctx context.Context) *SessionMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := sessionmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "SessionMessage.role": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SessionMessage.session"`)
	}
	return nil
}

func (_u *SessionMessageUpdateOne) sqlSave(ctx context.Context) (_node *SessionMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionmessage.Table, sessionmessage.Columns, sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionmessage.FieldID)
		for _, f := range fields {
			if !sessionmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionmessage.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(sessionmessage.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(sessionmessage.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayContent(); ok {
		_spec.SetField(sessionmessage.FieldDisplayContent, field.TypeString, value)
	}
	if _u.mutation.DisplayContentCleared() {
		_spec.ClearField(sessionmessage.FieldDisplayContent, field.TypeString)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(sessionmessage.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(sessionmessage.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(sessionmessage.FieldTokenCount, field.TypeInt)
	}
	_node = &SessionMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

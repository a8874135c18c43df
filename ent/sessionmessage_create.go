// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/sessionmessage"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// SessionMessageCreate is the builder for creating a SessionMessage entity.
type SessionMessageCreate struct {
	config
	mutation *SessionMessageMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionMessageCreate) SetSessionID(v string) *SessionMessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetMessageIndex sets the "message_index" field.
func (_c *SessionMessageCreate) SetMessageIndex(v int) *SessionMessageCreate {
	_c.mutation.SetMessageIndex(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *SessionMessageCreate) SetRole(v sessionmessage.Role) *SessionMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SessionMessageCreate) SetContent(v string) *SessionMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetDisplayContent sets the "display_content" field.
func (_c *SessionMessageCreate) SetDisplayContent(v string) *SessionMessageCreate {
	_c.mutation.SetDisplayContent(v)
	return _c
}

// SetNillableDisplayContent sets the "display_content" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableDisplayContent(v *string) *SessionMessageCreate {
	if v != nil {
		_c.SetDisplayContent(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *SessionMessageCreate) SetTokenCount(v int) *SessionMessageCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableTokenCount(v *int) *SessionMessageCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionMessageCreate) SetCreatedAt(v time.Time) *SessionMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionMessageCreate) SetNillableCreatedAt(v *time.Time) *SessionMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionMessageCreate) SetID(v string) *SessionMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the StudySession entity.
func (_c *SessionMessageCreate) SetSession(v *StudySession) *SessionMessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the SessionMessageMutation object of the builder.
func (_c *SessionMessageCreate) Mutation() *SessionMessageMutation {
	return _c.mutation
}

// Save creates the SessionMessage in the database.
func (_c *SessionMessageCreate) Save(ctx context.Context) (*SessionMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionMessageCreate) SaveX(ctx context.Context) *SessionMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionMessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionMessage.session_id"`)}
	}
	if _, ok := _c.mutation.MessageIndex(); !ok {
		return &ValidationError{Name: "message_index", err: errors.New(`ent: missing required field "SessionMessage.message_index"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "SessionMessage.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := sessionmessage.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "SessionMessage.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "SessionMessage.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionMessage.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "SessionMessage.session"`)}
	}
	return nil
}

func (_c *SessionMessageCreate) sqlSave(ctx context.Context) (*SessionMessage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected SessionMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionMessageCreate) createSpec() (*SessionMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionmessage.Table, sqlgraph.NewFieldSpec(sessionmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MessageIndex(); ok {
		_spec.SetField(sessionmessage.FieldMessageIndex, field.TypeInt, value)
		_node.MessageIndex = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(sessionmessage.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(sessionmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.DisplayContent(); ok {
		_spec.SetField(sessionmessage.FieldDisplayContent, field.TypeString, value)
		_node.DisplayContent = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(sessionmessage.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sessionmessage.SessionTable,
			Columns: []string{sessionmessage.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SessionMessageCreateBulk is the builder for creating many SessionMessage entities in bulk.
type SessionMessageCreateBulk struct {
	config
	err      error
	builders []*SessionMessageCreate
}

// Save creates the SessionMessage entities in the database.
func (_c *SessionMessageCreateBulk) Save(ctx context.Context) ([]*SessionMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionMessageCreateBulk) SaveX(ctx context.Context) []*SessionMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

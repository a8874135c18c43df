// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// RabbitholeEventCreate is the builder for creating a RabbitholeEvent entity.
type RabbitholeEventCreate struct {
	config
	mutation *RabbitholeEventMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RabbitholeEventCreate) SetSessionID(v string) *RabbitholeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *RabbitholeEventCreate) SetTopic(v string) *RabbitholeEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDepth sets the "depth" field.
func (_c *RabbitholeEventCreate) SetDepth(v int) *RabbitholeEventCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetTriggerMessageIndex sets the "trigger_message_index" field.
func (_c *RabbitholeEventCreate) SetTriggerMessageIndex(v int) *RabbitholeEventCreate {
	_c.mutation.SetTriggerMessageIndex(v)
	return _c
}

// SetReturnMessageIndex sets the "return_message_index" field.
func (_c *RabbitholeEventCreate) SetReturnMessageIndex(v int) *RabbitholeEventCreate {
	_c.mutation.SetReturnMessageIndex(v)
	return _c
}

// SetNillableReturnMessageIndex sets the "return_message_index" field if the given value is not nil.
func (_c *RabbitholeEventCreate) SetNillableReturnMessageIndex(v *int) *RabbitholeEventCreate {
	if v != nil {
		_c.SetReturnMessageIndex(*v)
	}
	return _c
}

// SetConversationHistory sets the "conversation_history" field.
func (_c *RabbitholeEventCreate) SetConversationHistory(v []map[string]interface{}) *RabbitholeEventCreate {
	_c.mutation.SetConversationHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RabbitholeEventCreate) SetCreatedAt(v time.Time) *RabbitholeEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RabbitholeEventCreate) SetNillableCreatedAt(v *time.Time) *RabbitholeEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RabbitholeEventCreate) SetID(v string) *RabbitholeEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the StudySession entity.
func (_c *RabbitholeEventCreate) SetSession(v *StudySession) *RabbitholeEventCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the RabbitholeEventMutation object of the builder.
func (_c *RabbitholeEventCreate) Mutation() *RabbitholeEventMutation {
	return _c.mutation
}

// Save creates the RabbitholeEvent in the database.
func (_c *RabbitholeEventCreate) Save(ctx context.Context) (*RabbitholeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RabbitholeEventCreate) SaveX(ctx context.Context) *RabbitholeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RabbitholeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RabbitholeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RabbitholeEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rabbitholeevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RabbitholeEventCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RabbitholeEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "RabbitholeEvent.topic"`)}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "RabbitholeEvent.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := rabbitholeevent.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "RabbitholeEvent.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerMessageIndex(); !ok {
		return &ValidationError{Name: "trigger_message_index", err: errors.New(`ent: missing required field "RabbitholeEvent.trigger_message_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RabbitholeEvent.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "RabbitholeEvent.session"`)}
	}
	return nil
}

func (_c *RabbitholeEventCreate) sqlSave(ctx context.Context) (*RabbitholeEvent, error) {
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
			return nil, fmt.Errorf("unexpected RabbitholeEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RabbitholeEventCreate) createSpec() (*RabbitholeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RabbitholeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rabbitholeevent.Table, sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(rabbitholeevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(rabbitholeevent.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.TriggerMessageIndex(); ok {
		_spec.SetField(rabbitholeevent.FieldTriggerMessageIndex, field.TypeInt, value)
		_node.TriggerMessageIndex = value
	}
	if value, ok := _c.mutation.ReturnMessageIndex(); ok {
		_spec.SetField(rabbitholeevent.FieldReturnMessageIndex, field.TypeInt, value)
		_node.ReturnMessageIndex = &value
	}
	if value, ok := _c.mutation.ConversationHistory(); ok {
		_spec.SetField(rabbitholeevent.FieldConversationHistory, field.TypeJSON, value)
		_node.ConversationHistory = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rabbitholeevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rabbitholeevent.SessionTable,
			Columns: []string{rabbitholeevent.SessionColumn},
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

// RabbitholeEventCreateBulk is the builder for creating many RabbitholeEvent entities in bulk.
type RabbitholeEventCreateBulk struct {
	config
	err      error
	builders []*RabbitholeEventCreate
}

// Save creates the RabbitholeEvent entities in the database.
func (_c *RabbitholeEventCreateBulk) Save(ctx context.Context) ([]*RabbitholeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RabbitholeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RabbitholeEventMutation)
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
func (_c *RabbitholeEventCreateBulk) SaveX(ctx context.Context) []*RabbitholeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RabbitholeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RabbitholeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

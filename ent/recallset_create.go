// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/recallset"
	"github.com/recollect-ai/recollect/ent/studysession"
)

// RecallSetCreate is the builder for creating a RecallSet entity.
type RecallSetCreate struct {
	config
	mutation *RecallSetMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *RecallSetCreate) SetName(v string) *RecallSetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RecallSetCreate) SetDescription(v string) *RecallSetCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RecallSetCreate) SetNillableDescription(v *string) *RecallSetCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecallSetCreate) SetStatus(v recallset.Status) *RecallSetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecallSetCreate) SetNillableStatus(v *recallset.Status) *RecallSetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDiscussionSystemPrompt sets the "discussion_system_prompt" field.
func (_c *RecallSetCreate) SetDiscussionSystemPrompt(v string) *RecallSetCreate {
	_c.mutation.SetDiscussionSystemPrompt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecallSetCreate) SetCreatedAt(v time.Time) *RecallSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecallSetCreate) SetNillableCreatedAt(v *time.Time) *RecallSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecallSetCreate) SetUpdatedAt(v time.Time) *RecallSetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecallSetCreate) SetNillableUpdatedAt(v *time.Time) *RecallSetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecallSetCreate) SetID(v string) *RecallSetCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPointIDs adds the "points" edge to the RecallPoint entity by IDs.
func (_c *RecallSetCreate) AddPointIDs(ids ...string) *RecallSetCreate {
	_c.mutation.AddPointIDs(ids...)
	return _c
}

// AddPoints adds the "points" edges to the RecallPoint entity.
func (_c *RecallSetCreate) AddPoints(v ...*RecallPoint) *RecallSetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPointIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the StudySession entity by IDs.
func (_c *RecallSetCreate) AddSessionIDs(ids ...string) *RecallSetCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the StudySession entity.
func (_c *RecallSetCreate) AddSessions(v ...*StudySession) *RecallSetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the RecallSetMutation object of the builder.
func (_c *RecallSetCreate) Mutation() *RecallSetMutation {
	return _c.mutation
}

// Save creates the RecallSet in the database.
func (_c *RecallSetCreate) Save(ctx context.Context) (*RecallSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecallSetCreate) SaveX(ctx context.Context) *RecallSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecallSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecallSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecallSetCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := recallset.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := recallset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recallset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recallset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecallSetCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RecallSet.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "RecallSet.description"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RecallSet.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recallset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RecallSet.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscussionSystemPrompt(); !ok {
		return &ValidationError{Name: "discussion_system_prompt", err: errors.New(`ent: missing required field "RecallSet.discussion_system_prompt"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecallSet.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RecallSet.updated_at"`)}
	}
	return nil
}

func (_c *RecallSetCreate) sqlSave(ctx context.Context) (*RecallSet, error) {
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
			return nil, fmt.Errorf("unexpected RecallSet.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecallSetCreate) createSpec() (*RecallSet, *sqlgraph.CreateSpec) {
	var (
		_node = &RecallSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recallset.Table, sqlgraph.NewFieldSpec(recallset.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recallset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(recallset.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recallset.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DiscussionSystemPrompt(); ok {
		_spec.SetField(recallset.FieldDiscussionSystemPrompt, field.TypeString, value)
		_node.DiscussionSystemPrompt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recallset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recallset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.PointsTable,
			Columns: []string{recallset.PointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallset.SessionsTable,
			Columns: []string{recallset.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecallSetCreateBulk is the builder for creating many RecallSet entities in bulk.
type RecallSetCreateBulk struct {
	config
	err      error
	builders []*RecallSetCreate
}

// Save creates the RecallSet entities in the database.
func (_c *RecallSetCreateBulk) Save(ctx context.Context) ([]*RecallSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecallSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecallSetMutation)
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
func (_c *RecallSetCreateBulk) SaveX(ctx context.Context) []*RecallSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecallSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecallSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

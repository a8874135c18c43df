// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
	"github.com/recollect-ai/recollect/ent/recallpoint"
	"github.com/recollect-ai/recollect/ent/recallset"
)

// RecallPointCreate is the builder for creating a RecallPoint entity.
type RecallPointCreate struct {
	config
	mutation *RecallPointMutation
	hooks    []Hook
}

// SetRecallSetID sets the "recall_set_id" field.
func (_c *RecallPointCreate) SetRecallSetID(v string) *RecallPointCreate {
	_c.mutation.SetRecallSetID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *RecallPointCreate) SetContent(v string) *RecallPointCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetContext sets the "context" field.
func (_c *RecallPointCreate) SetContext(v string) *RecallPointCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *RecallPointCreate) SetDifficulty(v float64) *RecallPointCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetStability sets the "stability" field.
func (_c *RecallPointCreate) SetStability(v float64) *RecallPointCreate {
	_c.mutation.SetStability(v)
	return _c
}

// SetDue sets the "due" field.
func (_c *RecallPointCreate) SetDue(v time.Time) *RecallPointCreate {
	_c.mutation.SetDue(v)
	return _c
}

// SetLastReview sets the "last_review" field.
func (_c *RecallPointCreate) SetLastReview(v time.Time) *RecallPointCreate {
	_c.mutation.SetLastReview(v)
	return _c
}

// SetNillableLastReview sets the "last_review" field if the given value is not nil.
func (_c *RecallPointCreate) SetNillableLastReview(v *time.Time) *RecallPointCreate {
	if v != nil {
		_c.SetLastReview(*v)
	}
	return _c
}

// SetReps sets the "reps" field.
func (_c *RecallPointCreate) SetReps(v int) *RecallPointCreate {
	_c.mutation.SetReps(v)
	return _c
}

// SetNillableReps sets the "reps" field if the given value is not nil.
func (_c *RecallPointCreate) SetNillableReps(v *int) *RecallPointCreate {
	if v != nil {
		_c.SetReps(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *RecallPointCreate) SetLapses(v int) *RecallPointCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *RecallPointCreate) SetNillableLapses(v *int) *RecallPointCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *RecallPointCreate) SetState(v recallpoint.State) *RecallPointCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *RecallPointCreate) SetNillableState(v *recallpoint.State) *RecallPointCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRecallHistory sets the "recall_history" field.
func (_c *RecallPointCreate) SetRecallHistory(v []map[string]interface{}) *RecallPointCreate {
	_c.mutation.SetRecallHistory(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecallPointCreate) SetCreatedAt(v time.Time) *RecallPointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecallPointCreate) SetNillableCreatedAt(v *time.Time) *RecallPointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecallPointCreate) SetUpdatedAt(v time.Time) *RecallPointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecallPointCreate) SetNillableUpdatedAt(v *time.Time) *RecallPointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecallPointCreate) SetID(v string) *RecallPointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRecallSet sets the "recall_set" edge to the RecallSet entity.
func (_c *RecallPointCreate) SetRecallSet(v *RecallSet) *RecallPointCreate {
	return _c.SetRecallSetID(v.ID)
}

// AddOutcomeIDs adds the "outcomes" edge to the RecallOutcome entity by IDs.
func (_c *RecallPointCreate) AddOutcomeIDs(ids ...string) *RecallPointCreate {
	_c.mutation.AddOutcomeIDs(ids...)
	return _c
}

// AddOutcomes adds the "outcomes" edges to the RecallOutcome entity.
func (_c *RecallPointCreate) AddOutcomes(v ...*RecallOutcome) *RecallPointCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeIDs(ids...)
}

// Mutation returns the RecallPointMutation object of the builder.
func (_c *RecallPointCreate) Mutation() *RecallPointMutation {
	return _c.mutation
}

// Save creates the RecallPoint in the database.
func (_c *RecallPointCreate) Save(ctx context.Context) (*RecallPoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecallPointCreate) SaveX(ctx context.Context) *RecallPoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecallPointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecallPointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecallPointCreate) defaults() {
	if _, ok := _c.mutation.Reps(); !ok {
		v := recallpoint.DefaultReps
		_c.mutation.SetReps(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := recallpoint.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := recallpoint.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recallpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recallpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecallPointCreate) check() error {
	if _, ok := _c.mutation.RecallSetID(); !ok {
		return &ValidationError{Name: "recall_set_id", err: errors.New(`ent: missing required field "RecallPoint.recall_set_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "RecallPoint.content"`)}
	}
	if _, ok := _c.mutation.Context(); !ok {
		return &ValidationError{Name: "context", err: errors.New(`ent: missing required field "RecallPoint.context"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "RecallPoint.difficulty"`)}
	}
	if _, ok := _c.mutation.Stability(); !ok {
		return &ValidationError{Name: "stability", err: errors.New(`ent: missing required field "RecallPoint.stability"`)}
	}
	if _, ok := _c.mutation.Due(); !ok {
		return &ValidationError{Name: "due", err: errors.New(`ent: missing required field "RecallPoint.due"`)}
	}
	if _, ok := _c.mutation.Reps(); !ok {
		return &ValidationError{Name: "reps", err: errors.New(`ent: missing required field "RecallPoint.reps"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "RecallPoint.lapses"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "RecallPoint.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := recallpoint.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "RecallPoint.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecallPoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RecallPoint.updated_at"`)}
	}
	if len(_c.mutation.RecallSetIDs()) == 0 {
		return &ValidationError{Name: "recall_set", err: errors.New(`ent: missing required edge "RecallPoint.recall_set"`)}
	}
	return nil
}

func (_c *RecallPointCreate) sqlSave(ctx context.Context) (*RecallPoint, error) {
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
			return nil, fmt.Errorf("unexpected RecallPoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecallPointCreate) createSpec() (*RecallPoint, *sqlgraph.CreateSpec) {
	var (
		_node = &RecallPoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recallpoint.Table, sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(recallpoint.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(recallpoint.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(recallpoint.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Stability(); ok {
		_spec.SetField(recallpoint.FieldStability, field.TypeFloat64, value)
		_node.Stability = value
	}
	if value, ok := _c.mutation.Due(); ok {
		_spec.SetField(recallpoint.FieldDue, field.TypeTime, value)
		_node.Due = value
	}
	if value, ok := _c.mutation.LastReview(); ok {
		_spec.SetField(recallpoint.FieldLastReview, field.TypeTime, value)
		_node.LastReview = &value
	}
	if value, ok := _c.mutation.Reps(); ok {
		_spec.SetField(recallpoint.FieldReps, field.TypeInt, value)
		_node.Reps = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(recallpoint.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(recallpoint.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.RecallHistory(); ok {
		_spec.SetField(recallpoint.FieldRecallHistory, field.TypeJSON, value)
		_node.RecallHistory = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recallpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recallpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RecallSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recallpoint.RecallSetTable,
			Columns: []string{recallpoint.RecallSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecallSetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   recallpoint.OutcomesTable,
			Columns: []string{recallpoint.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecallPointCreateBulk is the builder for creating many RecallPoint entities in bulk.
type RecallPointCreateBulk struct {
	config
	err      error
	builders []*RecallPointCreate
}

// Save creates the RecallPoint entities in the database.
func (_c *RecallPointCreateBulk) Save(ctx context.Context) ([]*RecallPoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecallPoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecallPointMutation)
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
func (_c *RecallPointCreateBulk) SaveX(ctx context.Context) []*RecallPoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecallPointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecallPointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/recollect-ai/recollect/ent/studysession"
)

// RecallOutcomeCreate is the builder for creating a RecallOutcome entity.
type RecallOutcomeCreate struct {
	config
	mutation *RecallOutcomeMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RecallOutcomeCreate) SetSessionID(v string) *RecallOutcomeCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRecallPointID sets the "recall_point_id" field.
func (_c *RecallOutcomeCreate) SetRecallPointID(v string) *RecallOutcomeCreate {
	_c.mutation.SetRecallPointID(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *RecallOutcomeCreate) SetSuccess(v bool) *RecallOutcomeCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RecallOutcomeCreate) SetConfidence(v float64) *RecallOutcomeCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *RecallOutcomeCreate) SetRating(v recalloutcome.Rating) *RecallOutcomeCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *RecallOutcomeCreate) SetReasoning(v string) *RecallOutcomeCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *RecallOutcomeCreate) SetNillableReasoning(v *string) *RecallOutcomeCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetMessageIndexStart sets the "message_index_start" field.
func (_c *RecallOutcomeCreate) SetMessageIndexStart(v int) *RecallOutcomeCreate {
	_c.mutation.SetMessageIndexStart(v)
	return _c
}

// SetMessageIndexEnd sets the "message_index_end" field.
func (_c *RecallOutcomeCreate) SetMessageIndexEnd(v int) *RecallOutcomeCreate {
	_c.mutation.SetMessageIndexEnd(v)
	return _c
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (_c *RecallOutcomeCreate) SetTimeSpentMs(v int64) *RecallOutcomeCreate {
	_c.mutation.SetTimeSpentMs(v)
	return _c
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (_c *RecallOutcomeCreate) SetNillableTimeSpentMs(v *int64) *RecallOutcomeCreate {
	if v != nil {
		_c.SetTimeSpentMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecallOutcomeCreate) SetCreatedAt(v time.Time) *RecallOutcomeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecallOutcomeCreate) SetNillableCreatedAt(v *time.Time) *RecallOutcomeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecallOutcomeCreate) SetID(v string) *RecallOutcomeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the StudySession entity.
func (_c *RecallOutcomeCreate) SetSession(v *StudySession) *RecallOutcomeCreate {
	return _c.SetSessionID(v.ID)
}

// SetPointID sets the "point" edge to the RecallPoint entity by ID.
func (_c *RecallOutcomeCreate) SetPointID(id string) *RecallOutcomeCreate {
	_c.mutation.SetPointID(id)
	return _c
}

// SetPoint sets the "point" edge to the RecallPoint entity.
func (_c *RecallOutcomeCreate) SetPoint(v *RecallPoint) *RecallOutcomeCreate {
	return _c.SetPointID(v.ID)
}

// Mutation returns the RecallOutcomeMutation object of the builder.
func (_c *RecallOutcomeCreate) Mutation() *RecallOutcomeMutation {
	return _c.mutation
}

// Save creates the RecallOutcome in the database.
func (_c *RecallOutcomeCreate) Save(ctx context.Context) (*RecallOutcome, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecallOutcomeCreate) SaveX(ctx context.Context) *RecallOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecallOutcomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecallOutcomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecallOutcomeCreate) defaults() {
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := recalloutcome.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		v := recalloutcome.DefaultTimeSpentMs
		_c.mutation.SetTimeSpentMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recalloutcome.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecallOutcomeCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RecallOutcome.session_id"`)}
	}
	if _, ok := _c.mutation.RecallPointID(); !ok {
		return &ValidationError{Name: "recall_point_id", err: errors.New(`ent: missing required field "RecallOutcome.recall_point_id"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "RecallOutcome.success"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "RecallOutcome.confidence"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "RecallOutcome.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := recalloutcome.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "RecallOutcome.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "RecallOutcome.reasoning"`)}
	}
	if _, ok := _c.mutation.MessageIndexStart(); !ok {
		return &ValidationError{Name: "message_index_start", err: errors.New(`ent: missing required field "RecallOutcome.message_index_start"`)}
	}
	if _, ok := _c.mutation.MessageIndexEnd(); !ok {
		return &ValidationError{Name: "message_index_end", err: errors.New(`ent: missing required field "RecallOutcome.message_index_end"`)}
	}
	if _, ok := _c.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "RecallOutcome.time_spent_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RecallOutcome.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "RecallOutcome.session"`)}
	}
	if len(_c.mutation.PointIDs()) == 0 {
		return &ValidationError{Name: "point", err: errors.New(`ent: missing required edge "RecallOutcome.point"`)}
	}
	return nil
}

func (_c *RecallOutcomeCreate) sqlSave(ctx context.Context) (*RecallOutcome, error) {
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
			return nil, fmt.Errorf("unexpected RecallOutcome.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecallOutcomeCreate) createSpec() (*RecallOutcome, *sqlgraph.CreateSpec) {
	var (
		_node = &RecallOutcome{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recalloutcome.Table, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(recalloutcome.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(recalloutcome.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(recalloutcome.FieldRating, field.TypeEnum, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(recalloutcome.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.MessageIndexStart(); ok {
		_spec.SetField(recalloutcome.FieldMessageIndexStart, field.TypeInt, value)
		_node.MessageIndexStart = value
	}
	if value, ok := _c.mutation.MessageIndexEnd(); ok {
		_spec.SetField(recalloutcome.FieldMessageIndexEnd, field.TypeInt, value)
		_node.MessageIndexEnd = value
	}
	if value, ok := _c.mutation.TimeSpentMs(); ok {
		_spec.SetField(recalloutcome.FieldTimeSpentMs, field.TypeInt64, value)
		_node.TimeSpentMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recalloutcome.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recalloutcome.SessionTable,
			Columns: []string{recalloutcome.SessionColumn},
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
	if nodes := _c.mutation.PointIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recalloutcome.PointTable,
			Columns: []string{recalloutcome.PointColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recallpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecallPointID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RecallOutcomeCreateBulk is the builder for creating many RecallOutcome entities in bulk.
type RecallOutcomeCreateBulk struct {
	config
	err      error
	builders []*RecallOutcomeCreate
}

// Save creates the RecallOutcome entities in the database.
func (_c *RecallOutcomeCreateBulk) Save(ctx context.Context) ([]*RecallOutcome, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecallOutcome, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecallOutcomeMutation)
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
func (_c *RecallOutcomeCreateBulk) SaveX(ctx context.Context) []*RecallOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecallOutcomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecallOutcomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

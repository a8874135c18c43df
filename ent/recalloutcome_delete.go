// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/recalloutcome"
)

// RecallOutcomeDelete is the builder for deleting a RecallOutcome entity.
type RecallOutcomeDelete struct {
	config
	hooks    []Hook
	mutation *RecallOutcomeMutation
}

// Where appends a list predicates to the RecallOutcomeDelete builder.
func (_d *RecallOutcomeDelete) Where(ps ...predicate.RecallOutcome) *RecallOutcomeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RecallOutcomeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecallOutcomeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RecallOutcomeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(recalloutcome.Table, sqlgraph.NewFieldSpec(recalloutcome.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RecallOutcomeDeleteOne is the builder for deleting a single RecallOutcome entity.
type RecallOutcomeDeleteOne struct {
	_d *RecallOutcomeDelete
}

// Where appends a list predicates to the RecallOutcomeDelete builder.
func (_d *RecallOutcomeDeleteOne) Where(ps ...predicate.RecallOutcome) *RecallOutcomeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RecallOutcomeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{recalloutcome.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RecallOutcomeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

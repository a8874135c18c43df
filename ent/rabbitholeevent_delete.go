// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/recollect-ai/recollect/ent/predicate"
	"github.com/recollect-ai/recollect/ent/rabbitholeevent"
)

// RabbitholeEventDelete is the builder for deleting a RabbitholeEvent entity.
type RabbitholeEventDelete struct {
	config
	hooks    []Hook
	mutation *RabbitholeEventMutation
}

// Where appends a list predicates to the RabbitholeEventDelete builder.
func (_d *RabbitholeEventDelete) Where(ps ...predicate.RabbitholeEvent) *RabbitholeEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RabbitholeEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RabbitholeEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RabbitholeEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(rabbitholeevent.Table, sqlgraph.NewFieldSpec(rabbitholeevent.FieldID, field.TypeString))
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

// RabbitholeEventDeleteOne is the builder for deleting a single RabbitholeEvent entity.
type RabbitholeEventDeleteOne struct {
	_d *RabbitholeEventDelete
}

// Where appends a list predicates to the RabbitholeEventDelete builder.
func (_d *RabbitholeEventDeleteOne) Where(ps ...predicate.RabbitholeEvent) *RabbitholeEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RabbitholeEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{rabbitholeevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RabbitholeEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/monthendclosing"
	"github.com/steward-ai/steward/ent/predicate"
)

// MonthEndClosingDelete is the builder for deleting a MonthEndClosing entity.
type MonthEndClosingDelete struct {
	config
	hooks    []Hook
	mutation *MonthEndClosingMutation
}

// Where appends a list predicates to the MonthEndClosingDelete builder.
func (_d *MonthEndClosingDelete) Where(ps ...predicate.MonthEndClosing) *MonthEndClosingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonthEndClosingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonthEndClosingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonthEndClosingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monthendclosing.Table, sqlgraph.NewFieldSpec(monthendclosing.FieldID, field.TypeString))
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

// MonthEndClosingDeleteOne is the builder for deleting a single MonthEndClosing entity.
type MonthEndClosingDeleteOne struct {
	_d *MonthEndClosingDelete
}

// Where appends a list predicates to the MonthEndClosingDelete builder.
func (_d *MonthEndClosingDeleteOne) Where(ps ...predicate.MonthEndClosing) *MonthEndClosingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonthEndClosingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monthendclosing.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonthEndClosingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

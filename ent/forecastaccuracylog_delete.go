// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/forecastaccuracylog"
	"github.com/steward-ai/steward/ent/predicate"
)

// ForecastAccuracyLogDelete is the builder for deleting a ForecastAccuracyLog entity.
type ForecastAccuracyLogDelete struct {
	config
	hooks    []Hook
	mutation *ForecastAccuracyLogMutation
}

// Where appends a list predicates to the ForecastAccuracyLogDelete builder.
func (_d *ForecastAccuracyLogDelete) Where(ps ...predicate.ForecastAccuracyLog) *ForecastAccuracyLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ForecastAccuracyLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ForecastAccuracyLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ForecastAccuracyLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(forecastaccuracylog.Table, sqlgraph.NewFieldSpec(forecastaccuracylog.FieldID, field.TypeString))
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

// ForecastAccuracyLogDeleteOne is the builder for deleting a single ForecastAccuracyLog entity.
type ForecastAccuracyLogDeleteOne struct {
	_d *ForecastAccuracyLogDelete
}

// Where appends a list predicates to the ForecastAccuracyLogDelete builder.
func (_d *ForecastAccuracyLogDeleteOne) Where(ps ...predicate.ForecastAccuracyLog) *ForecastAccuracyLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ForecastAccuracyLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{forecastaccuracylog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ForecastAccuracyLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

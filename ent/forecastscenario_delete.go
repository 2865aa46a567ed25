// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/forecastscenario"
	"github.com/steward-ai/steward/ent/predicate"
)

// ForecastScenarioDelete is the builder for deleting a ForecastScenario entity.
type ForecastScenarioDelete struct {
	config
	hooks    []Hook
	mutation *ForecastScenarioMutation
}

// Where appends a list predicates to the ForecastScenarioDelete builder.
func (_d *ForecastScenarioDelete) Where(ps ...predicate.ForecastScenario) *ForecastScenarioDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ForecastScenarioDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ForecastScenarioDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ForecastScenarioDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(forecastscenario.Table, sqlgraph.NewFieldSpec(forecastscenario.FieldID, field.TypeString))
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

// ForecastScenarioDeleteOne is the builder for deleting a single ForecastScenario entity.
type ForecastScenarioDeleteOne struct {
	_d *ForecastScenarioDelete
}

// Where appends a list predicates to the ForecastScenarioDelete builder.
func (_d *ForecastScenarioDeleteOne) Where(ps ...predicate.ForecastScenario) *ForecastScenarioDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ForecastScenarioDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{forecastscenario.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ForecastScenarioDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/disruptionprediction"
	"github.com/steward-ai/steward/ent/predicate"
)

// DisruptionPredictionDelete is the builder for deleting a DisruptionPrediction entity.
type DisruptionPredictionDelete struct {
	config
	hooks    []Hook
	mutation *DisruptionPredictionMutation
}

// Where appends a list predicates to the DisruptionPredictionDelete builder.
func (_d *DisruptionPredictionDelete) Where(ps ...predicate.DisruptionPrediction) *DisruptionPredictionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DisruptionPredictionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DisruptionPredictionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DisruptionPredictionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(disruptionprediction.Table, sqlgraph.NewFieldSpec(disruptionprediction.FieldID, field.TypeString))
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

// DisruptionPredictionDeleteOne is the builder for deleting a single DisruptionPrediction entity.
type DisruptionPredictionDeleteOne struct {
	_d *DisruptionPredictionDelete
}

// Where appends a list predicates to the DisruptionPredictionDelete builder.
func (_d *DisruptionPredictionDeleteOne) Where(ps ...predicate.DisruptionPrediction) *DisruptionPredictionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DisruptionPredictionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{disruptionprediction.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DisruptionPredictionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/extractioncorrection"
	"github.com/steward-ai/steward/ent/predicate"
)

// ExtractionCorrectionDelete is the builder for deleting a ExtractionCorrection entity.
type ExtractionCorrectionDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionCorrectionMutation
}

// Where appends a list predicates to the ExtractionCorrectionDelete builder.
func (_d *ExtractionCorrectionDelete) Where(ps ...predicate.ExtractionCorrection) *ExtractionCorrectionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionCorrectionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionCorrectionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionCorrectionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractioncorrection.Table, sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString))
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

// ExtractionCorrectionDeleteOne is the builder for deleting a single ExtractionCorrection entity.
type ExtractionCorrectionDeleteOne struct {
	_d *ExtractionCorrectionDelete
}

// Where appends a list predicates to the ExtractionCorrectionDelete builder.
func (_d *ExtractionCorrectionDeleteOne) Where(ps ...predicate.ExtractionCorrection) *ExtractionCorrectionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionCorrectionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractioncorrection.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionCorrectionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

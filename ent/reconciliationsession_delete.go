// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/reconciliationsession"
)

// ReconciliationSessionDelete is the builder for deleting a ReconciliationSession entity.
type ReconciliationSessionDelete struct {
	config
	hooks    []Hook
	mutation *ReconciliationSessionMutation
}

// Where appends a list predicates to the ReconciliationSessionDelete builder.
func (_d *ReconciliationSessionDelete) Where(ps ...predicate.ReconciliationSession) *ReconciliationSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReconciliationSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReconciliationSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReconciliationSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reconciliationsession.Table, sqlgraph.NewFieldSpec(reconciliationsession.FieldID, field.TypeString))
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

// ReconciliationSessionDeleteOne is the builder for deleting a single ReconciliationSession entity.
type ReconciliationSessionDeleteOne struct {
	_d *ReconciliationSessionDelete
}

// Where appends a list predicates to the ReconciliationSessionDelete builder.
func (_d *ReconciliationSessionDeleteOne) Where(ps ...predicate.ReconciliationSession) *ReconciliationSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReconciliationSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reconciliationsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReconciliationSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

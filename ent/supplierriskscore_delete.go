// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskScoreDelete is the builder for deleting a SupplierRiskScore entity.
type SupplierRiskScoreDelete struct {
	config
	hooks    []Hook
	mutation *SupplierRiskScoreMutation
}

// Where appends a list predicates to the SupplierRiskScoreDelete builder.
func (_d *SupplierRiskScoreDelete) Where(ps ...predicate.SupplierRiskScore) *SupplierRiskScoreDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SupplierRiskScoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SupplierRiskScoreDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SupplierRiskScoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(supplierriskscore.Table, sqlgraph.NewFieldSpec(supplierriskscore.FieldID, field.TypeString))
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

// SupplierRiskScoreDeleteOne is the builder for deleting a single SupplierRiskScore entity.
type SupplierRiskScoreDeleteOne struct {
	_d *SupplierRiskScoreDelete
}

// Where appends a list predicates to the SupplierRiskScoreDelete builder.
func (_d *SupplierRiskScoreDeleteOne) Where(ps ...predicate.SupplierRiskScore) *SupplierRiskScoreDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SupplierRiskScoreDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{supplierriskscore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SupplierRiskScoreDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

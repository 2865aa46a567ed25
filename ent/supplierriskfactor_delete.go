// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
)

// SupplierRiskFactorDelete is the builder for deleting a SupplierRiskFactor entity.
type SupplierRiskFactorDelete struct {
	config
	hooks    []Hook
	mutation *SupplierRiskFactorMutation
}

// Where appends a list predicates to the SupplierRiskFactorDelete builder.
func (_d *SupplierRiskFactorDelete) Where(ps ...predicate.SupplierRiskFactor) *SupplierRiskFactorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SupplierRiskFactorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SupplierRiskFactorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SupplierRiskFactorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(supplierriskfactor.Table, sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString))
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

// SupplierRiskFactorDeleteOne is the builder for deleting a single SupplierRiskFactor entity.
type SupplierRiskFactorDeleteOne struct {
	_d *SupplierRiskFactorDelete
}

// Where appends a list predicates to the SupplierRiskFactorDelete builder.
func (_d *SupplierRiskFactorDeleteOne) Where(ps ...predicate.SupplierRiskFactor) *SupplierRiskFactorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SupplierRiskFactorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{supplierriskfactor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SupplierRiskFactorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

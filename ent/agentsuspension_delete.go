// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/agentsuspension"
	"github.com/steward-ai/steward/ent/predicate"
)

// AgentSuspensionDelete is the builder for deleting a AgentSuspension entity.
type AgentSuspensionDelete struct {
	config
	hooks    []Hook
	mutation *AgentSuspensionMutation
}

// Where appends a list predicates to the AgentSuspensionDelete builder.
func (_d *AgentSuspensionDelete) Where(ps ...predicate.AgentSuspension) *AgentSuspensionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AgentSuspensionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentSuspensionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AgentSuspensionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(agentsuspension.Table, sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString))
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

// AgentSuspensionDeleteOne is the builder for deleting a single AgentSuspension entity.
type AgentSuspensionDeleteOne struct {
	_d *AgentSuspensionDelete
}

// Where appends a list predicates to the AgentSuspensionDelete builder.
func (_d *AgentSuspensionDeleteOne) Where(ps ...predicate.AgentSuspension) *AgentSuspensionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AgentSuspensionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{agentsuspension.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AgentSuspensionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

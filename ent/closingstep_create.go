// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/monthendclosing"
)

// ClosingStepCreate is the builder for creating a ClosingStep entity.
type ClosingStepCreate struct {
	config
	mutation *ClosingStepMutation
	hooks    []Hook
}

// SetClosingID sets the "closing_id" field.
func (_c *ClosingStepCreate) SetClosingID(v string) *ClosingStepCreate {
	_c.mutation.SetClosingID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *ClosingStepCreate) SetStepName(v string) *ClosingStepCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *ClosingStepCreate) SetStepIndex(v int) *ClosingStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClosingStepCreate) SetStatus(v closingstep.Status) *ClosingStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClosingStepCreate) SetNillableStatus(v *closingstep.Status) *ClosingStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ClosingStepCreate) SetDetails(v map[string]interface{}) *ClosingStepCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetBlockedReason sets the "blocked_reason" field.
func (_c *ClosingStepCreate) SetBlockedReason(v string) *ClosingStepCreate {
	_c.mutation.SetBlockedReason(v)
	return _c
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_c *ClosingStepCreate) SetNillableBlockedReason(v *string) *ClosingStepCreate {
	if v != nil {
		_c.SetBlockedReason(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ClosingStepCreate) SetCompletedAt(v time.Time) *ClosingStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ClosingStepCreate) SetNillableCompletedAt(v *time.Time) *ClosingStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClosingStepCreate) SetID(v string) *ClosingStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetClosing sets the "closing" edge to the MonthEndClosing entity.
func (_c *ClosingStepCreate) SetClosing(v *MonthEndClosing) *ClosingStepCreate {
	return _c.SetClosingID(v.ID)
}

// Mutation returns the ClosingStepMutation object of the builder.
func (_c *ClosingStepCreate) Mutation() *ClosingStepMutation {
	return _c.mutation
}

// Save creates the ClosingStep in the database.
func (_c *ClosingStepCreate) Save(ctx context.Context) (*ClosingStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClosingStepCreate) SaveX(ctx context.Context) *ClosingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClosingStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClosingStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClosingStepCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := closingstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClosingStepCreate) check() error {
	if _, ok := _c.mutation.ClosingID(); !ok {
		return &ValidationError{Name: "closing_id", err: errors.New(`ent: missing required field "ClosingStep.closing_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "ClosingStep.step_name"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "ClosingStep.step_index"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ClosingStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := closingstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClosingStep.status": %w`, err)}
		}
	}
	if len(_c.mutation.ClosingIDs()) == 0 {
		return &ValidationError{Name: "closing", err: errors.New(`ent: missing required edge "ClosingStep.closing"`)}
	}
	return nil
}

func (_c *ClosingStepCreate) sqlSave(ctx context.Context) (*ClosingStep, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ClosingStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClosingStepCreate) createSpec() (*ClosingStep, *sqlgraph.CreateSpec) {
	var (
		_node = &ClosingStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(closingstep.Table, sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(closingstep.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(closingstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(closingstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(closingstep.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.BlockedReason(); ok {
		_spec.SetField(closingstep.FieldBlockedReason, field.TypeString, value)
		_node.BlockedReason = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(closingstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.ClosingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   closingstep.ClosingTable,
			Columns: []string{closingstep.ClosingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monthendclosing.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClosingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClosingStepCreateBulk is the builder for creating many ClosingStep entities in bulk.
type ClosingStepCreateBulk struct {
	config
	err      error
	builders []*ClosingStepCreate
}

// Save creates the ClosingStep entities in the database.
func (_c *ClosingStepCreateBulk) Save(ctx context.Context) ([]*ClosingStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClosingStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClosingStepMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClosingStepCreateBulk) SaveX(ctx context.Context) []*ClosingStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClosingStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClosingStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentsuspension"
)

// AgentSuspensionCreate is the builder for creating a AgentSuspension entity.
type AgentSuspensionCreate struct {
	config
	mutation *AgentSuspensionMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentSuspensionCreate) SetRunID(v string) *AgentSuspensionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetResumeCondition sets the "resume_condition" field.
func (_c *AgentSuspensionCreate) SetResumeCondition(v string) *AgentSuspensionCreate {
	_c.mutation.SetResumeCondition(v)
	return _c
}

// SetSuspendedAtStep sets the "suspended_at_step" field.
func (_c *AgentSuspensionCreate) SetSuspendedAtStep(v string) *AgentSuspensionCreate {
	_c.mutation.SetSuspendedAtStep(v)
	return _c
}

// SetTimeoutAt sets the "timeout_at" field.
func (_c *AgentSuspensionCreate) SetTimeoutAt(v time.Time) *AgentSuspensionCreate {
	_c.mutation.SetTimeoutAt(v)
	return _c
}

// SetResumeData sets the "resume_data" field.
func (_c *AgentSuspensionCreate) SetResumeData(v map[string]interface{}) *AgentSuspensionCreate {
	_c.mutation.SetResumeData(v)
	return _c
}

// SetSuspendedAt sets the "suspended_at" field.
func (_c *AgentSuspensionCreate) SetSuspendedAt(v time.Time) *AgentSuspensionCreate {
	_c.mutation.SetSuspendedAt(v)
	return _c
}

// SetNillableSuspendedAt sets the "suspended_at" field if the given value is not nil.
func (_c *AgentSuspensionCreate) SetNillableSuspendedAt(v *time.Time) *AgentSuspensionCreate {
	if v != nil {
		_c.SetSuspendedAt(*v)
	}
	return _c
}

// SetResumedAt sets the "resumed_at" field.
func (_c *AgentSuspensionCreate) SetResumedAt(v time.Time) *AgentSuspensionCreate {
	_c.mutation.SetResumedAt(v)
	return _c
}

// SetNillableResumedAt sets the "resumed_at" field if the given value is not nil.
func (_c *AgentSuspensionCreate) SetNillableResumedAt(v *time.Time) *AgentSuspensionCreate {
	if v != nil {
		_c.SetResumedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentSuspensionCreate) SetID(v string) *AgentSuspensionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *AgentSuspensionCreate) SetRun(v *AgentRun) *AgentSuspensionCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the AgentSuspensionMutation object of the builder.
func (_c *AgentSuspensionCreate) Mutation() *AgentSuspensionMutation {
	return _c.mutation
}

// Save creates the AgentSuspension in the database.
func (_c *AgentSuspensionCreate) Save(ctx context.Context) (*AgentSuspension, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentSuspensionCreate) SaveX(ctx context.Context) *AgentSuspension {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSuspensionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSuspensionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentSuspensionCreate) defaults() {
	if _, ok := _c.mutation.SuspendedAt(); !ok {
		v := agentsuspension.DefaultSuspendedAt()
		_c.mutation.SetSuspendedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentSuspensionCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentSuspension.run_id"`)}
	}
	if _, ok := _c.mutation.ResumeCondition(); !ok {
		return &ValidationError{Name: "resume_condition", err: errors.New(`ent: missing required field "AgentSuspension.resume_condition"`)}
	}
	if _, ok := _c.mutation.SuspendedAtStep(); !ok {
		return &ValidationError{Name: "suspended_at_step", err: errors.New(`ent: missing required field "AgentSuspension.suspended_at_step"`)}
	}
	if _, ok := _c.mutation.TimeoutAt(); !ok {
		return &ValidationError{Name: "timeout_at", err: errors.New(`ent: missing required field "AgentSuspension.timeout_at"`)}
	}
	if _, ok := _c.mutation.SuspendedAt(); !ok {
		return &ValidationError{Name: "suspended_at", err: errors.New(`ent: missing required field "AgentSuspension.suspended_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentSuspension.run"`)}
	}
	return nil
}

func (_c *AgentSuspensionCreate) sqlSave(ctx context.Context) (*AgentSuspension, error) {
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
			return nil, fmt.Errorf("unexpected AgentSuspension.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentSuspensionCreate) createSpec() (*AgentSuspension, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentSuspension{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentsuspension.Table, sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResumeCondition(); ok {
		_spec.SetField(agentsuspension.FieldResumeCondition, field.TypeString, value)
		_node.ResumeCondition = value
	}
	if value, ok := _c.mutation.SuspendedAtStep(); ok {
		_spec.SetField(agentsuspension.FieldSuspendedAtStep, field.TypeString, value)
		_node.SuspendedAtStep = value
	}
	if value, ok := _c.mutation.TimeoutAt(); ok {
		_spec.SetField(agentsuspension.FieldTimeoutAt, field.TypeTime, value)
		_node.TimeoutAt = value
	}
	if value, ok := _c.mutation.ResumeData(); ok {
		_spec.SetField(agentsuspension.FieldResumeData, field.TypeJSON, value)
		_node.ResumeData = value
	}
	if value, ok := _c.mutation.SuspendedAt(); ok {
		_spec.SetField(agentsuspension.FieldSuspendedAt, field.TypeTime, value)
		_node.SuspendedAt = value
	}
	if value, ok := _c.mutation.ResumedAt(); ok {
		_spec.SetField(agentsuspension.FieldResumedAt, field.TypeTime, value)
		_node.ResumedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentsuspension.RunTable,
			Columns: []string{agentsuspension.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentSuspensionCreateBulk is the builder for creating many AgentSuspension entities in bulk.
type AgentSuspensionCreateBulk struct {
	config
	err      error
	builders []*AgentSuspensionCreate
}

// Save creates the AgentSuspension entities in the database.
func (_c *AgentSuspensionCreateBulk) Save(ctx context.Context) ([]*AgentSuspension, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentSuspension, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentSuspensionMutation)
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
func (_c *AgentSuspensionCreateBulk) SaveX(ctx context.Context) []*AgentSuspension {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentSuspensionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentSuspensionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

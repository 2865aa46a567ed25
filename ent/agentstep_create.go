// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
)

// AgentStepCreate is the builder for creating a AgentStep entity.
type AgentStepCreate struct {
	config
	mutation *AgentStepMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AgentStepCreate) SetRunID(v string) *AgentStepCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStepName sets the "step_name" field.
func (_c *AgentStepCreate) SetStepName(v string) *AgentStepCreate {
	_c.mutation.SetStepName(v)
	return _c
}

// SetStepIndex sets the "step_index" field.
func (_c *AgentStepCreate) SetStepIndex(v int) *AgentStepCreate {
	_c.mutation.SetStepIndex(v)
	return _c
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_c *AgentStepCreate) SetInputSnapshot(v map[string]interface{}) *AgentStepCreate {
	_c.mutation.SetInputSnapshot(v)
	return _c
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_c *AgentStepCreate) SetOutputSnapshot(v map[string]interface{}) *AgentStepCreate {
	_c.mutation.SetOutputSnapshot(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *AgentStepCreate) SetDurationMs(v int) *AgentStepCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableDurationMs(v *int) *AgentStepCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentStepCreate) SetStatus(v agentstep.Status) *AgentStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableStatus(v *agentstep.Status) *AgentStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTokens sets the "tokens" field.
func (_c *AgentStepCreate) SetTokens(v int) *AgentStepCreate {
	_c.mutation.SetTokens(v)
	return _c
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableTokens(v *int) *AgentStepCreate {
	if v != nil {
		_c.SetTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentStepCreate) SetCreatedAt(v time.Time) *AgentStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentStepCreate) SetNillableCreatedAt(v *time.Time) *AgentStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentStepCreate) SetID(v string) *AgentStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *AgentStepCreate) SetRun(v *AgentRun) *AgentStepCreate {
	return _c.SetRunID(v.ID)
}

// AddDecisionIDs adds the "decisions" edge to the AgentDecision entity by IDs.
func (_c *AgentStepCreate) AddDecisionIDs(ids ...string) *AgentStepCreate {
	_c.mutation.AddDecisionIDs(ids...)
	return _c
}

// AddDecisions adds the "decisions" edges to the AgentDecision entity.
func (_c *AgentStepCreate) AddDecisions(v ...*AgentDecision) *AgentStepCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDecisionIDs(ids...)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_c *AgentStepCreate) Mutation() *AgentStepMutation {
	return _c.mutation
}

// Save creates the AgentStep in the database.
func (_c *AgentStepCreate) Save(ctx context.Context) (*AgentStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentStepCreate) SaveX(ctx context.Context) *AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentStepCreate) defaults() {
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := agentstep.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := agentstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		v := agentstep.DefaultTokens
		_c.mutation.SetTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentStepCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentStep.run_id"`)}
	}
	if _, ok := _c.mutation.StepName(); !ok {
		return &ValidationError{Name: "step_name", err: errors.New(`ent: missing required field "AgentStep.step_name"`)}
	}
	if _, ok := _c.mutation.StepIndex(); !ok {
		return &ValidationError{Name: "step_index", err: errors.New(`ent: missing required field "AgentStep.step_index"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "AgentStep.duration_ms"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tokens(); !ok {
		return &ValidationError{Name: "tokens", err: errors.New(`ent: missing required field "AgentStep.tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentStep.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "AgentStep.run"`)}
	}
	return nil
}

func (_c *AgentStepCreate) sqlSave(ctx context.Context) (*AgentStep, error) {
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
			return nil, fmt.Errorf("unexpected AgentStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentStepCreate) createSpec() (*AgentStep, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentstep.Table, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepName(); ok {
		_spec.SetField(agentstep.FieldStepName, field.TypeString, value)
		_node.StepName = value
	}
	if value, ok := _c.mutation.StepIndex(); ok {
		_spec.SetField(agentstep.FieldStepIndex, field.TypeInt, value)
		_node.StepIndex = value
	}
	if value, ok := _c.mutation.InputSnapshot(); ok {
		_spec.SetField(agentstep.FieldInputSnapshot, field.TypeJSON, value)
		_node.InputSnapshot = value
	}
	if value, ok := _c.mutation.OutputSnapshot(); ok {
		_spec.SetField(agentstep.FieldOutputSnapshot, field.TypeJSON, value)
		_node.OutputSnapshot = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(agentstep.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Tokens(); ok {
		_spec.SetField(agentstep.FieldTokens, field.TypeInt, value)
		_node.Tokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentstep.RunTable,
			Columns: []string{agentstep.RunColumn},
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
	if nodes := _c.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentStepCreateBulk is the builder for creating many AgentStep entities in bulk.
type AgentStepCreateBulk struct {
	config
	err      error
	builders []*AgentStepCreate
}

// Save creates the AgentStep entities in the database.
func (_c *AgentStepCreateBulk) Save(ctx context.Context) ([]*AgentStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentStepMutation)
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
func (_c *AgentStepCreateBulk) SaveX(ctx context.Context) []*AgentStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

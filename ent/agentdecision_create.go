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
	"github.com/steward-ai/steward/ent/agentstep"
)

// AgentDecisionCreate is the builder for creating a AgentDecision entity.
type AgentDecisionCreate struct {
	config
	mutation *AgentDecisionMutation
	hooks    []Hook
}

// SetStepID sets the "step_id" field.
func (_c *AgentDecisionCreate) SetStepID(v string) *AgentDecisionCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AgentDecisionCreate) SetRunID(v string) *AgentDecisionCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (_c *AgentDecisionCreate) SetPromptFingerprint(v string) *AgentDecisionCreate {
	_c.mutation.SetPromptFingerprint(v)
	return _c
}

// SetResponsePayload sets the "response_payload" field.
func (_c *AgentDecisionCreate) SetResponsePayload(v map[string]interface{}) *AgentDecisionCreate {
	_c.mutation.SetResponsePayload(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AgentDecisionCreate) SetConfidence(v float64) *AgentDecisionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AgentDecisionCreate) SetNillableConfidence(v *float64) *AgentDecisionCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTokensIn sets the "tokens_in" field.
func (_c *AgentDecisionCreate) SetTokensIn(v int) *AgentDecisionCreate {
	_c.mutation.SetTokensIn(v)
	return _c
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_c *AgentDecisionCreate) SetNillableTokensIn(v *int) *AgentDecisionCreate {
	if v != nil {
		_c.SetTokensIn(*v)
	}
	return _c
}

// SetTokensOut sets the "tokens_out" field.
func (_c *AgentDecisionCreate) SetTokensOut(v int) *AgentDecisionCreate {
	_c.mutation.SetTokensOut(v)
	return _c
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_c *AgentDecisionCreate) SetNillableTokensOut(v *int) *AgentDecisionCreate {
	if v != nil {
		_c.SetTokensOut(*v)
	}
	return _c
}

// SetToolsInvoked sets the "tools_invoked" field.
func (_c *AgentDecisionCreate) SetToolsInvoked(v []string) *AgentDecisionCreate {
	_c.mutation.SetToolsInvoked(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentDecisionCreate) SetCreatedAt(v time.Time) *AgentDecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentDecisionCreate) SetNillableCreatedAt(v *time.Time) *AgentDecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentDecisionCreate) SetID(v string) *AgentDecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStep sets the "step" edge to the AgentStep entity.
func (_c *AgentDecisionCreate) SetStep(v *AgentStep) *AgentDecisionCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the AgentDecisionMutation object of the builder.
func (_c *AgentDecisionCreate) Mutation() *AgentDecisionMutation {
	return _c.mutation
}

// Save creates the AgentDecision in the database.
func (_c *AgentDecisionCreate) Save(ctx context.Context) (*AgentDecision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentDecisionCreate) SaveX(ctx context.Context) *AgentDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentDecisionCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := agentdecision.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		v := agentdecision.DefaultTokensIn
		_c.mutation.SetTokensIn(v)
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		v := agentdecision.DefaultTokensOut
		_c.mutation.SetTokensOut(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentdecision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentDecisionCreate) check() error {
	if _, ok := _c.mutation.StepID(); !ok {
		return &ValidationError{Name: "step_id", err: errors.New(`ent: missing required field "AgentDecision.step_id"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AgentDecision.run_id"`)}
	}
	if _, ok := _c.mutation.PromptFingerprint(); !ok {
		return &ValidationError{Name: "prompt_fingerprint", err: errors.New(`ent: missing required field "AgentDecision.prompt_fingerprint"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AgentDecision.confidence"`)}
	}
	if _, ok := _c.mutation.TokensIn(); !ok {
		return &ValidationError{Name: "tokens_in", err: errors.New(`ent: missing required field "AgentDecision.tokens_in"`)}
	}
	if _, ok := _c.mutation.TokensOut(); !ok {
		return &ValidationError{Name: "tokens_out", err: errors.New(`ent: missing required field "AgentDecision.tokens_out"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentDecision.created_at"`)}
	}
	if len(_c.mutation.StepIDs()) == 0 {
		return &ValidationError{Name: "step", err: errors.New(`ent: missing required edge "AgentDecision.step"`)}
	}
	return nil
}

func (_c *AgentDecisionCreate) sqlSave(ctx context.Context) (*AgentDecision, error) {
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
			return nil, fmt.Errorf("unexpected AgentDecision.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentDecisionCreate) createSpec() (*AgentDecision, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentDecision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentdecision.Table, sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(agentdecision.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.PromptFingerprint(); ok {
		_spec.SetField(agentdecision.FieldPromptFingerprint, field.TypeString, value)
		_node.PromptFingerprint = value
	}
	if value, ok := _c.mutation.ResponsePayload(); ok {
		_spec.SetField(agentdecision.FieldResponsePayload, field.TypeJSON, value)
		_node.ResponsePayload = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(agentdecision.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TokensIn(); ok {
		_spec.SetField(agentdecision.FieldTokensIn, field.TypeInt, value)
		_node.TokensIn = value
	}
	if value, ok := _c.mutation.TokensOut(); ok {
		_spec.SetField(agentdecision.FieldTokensOut, field.TypeInt, value)
		_node.TokensOut = value
	}
	if value, ok := _c.mutation.ToolsInvoked(); ok {
		_spec.SetField(agentdecision.FieldToolsInvoked, field.TypeJSON, value)
		_node.ToolsInvoked = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentdecision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentdecision.StepTable,
			Columns: []string{agentdecision.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentDecisionCreateBulk is the builder for creating many AgentDecision entities in bulk.
type AgentDecisionCreateBulk struct {
	config
	err      error
	builders []*AgentDecisionCreate
}

// Save creates the AgentDecision entities in the database.
func (_c *AgentDecisionCreateBulk) Save(ctx context.Context) ([]*AgentDecision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentDecision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentDecisionMutation)
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
func (_c *AgentDecisionCreateBulk) SaveX(ctx context.Context) []*AgentDecision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentDecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentDecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/automationrule"
)

// AutomationRuleCreate is the builder for creating a AutomationRule entity.
type AutomationRuleCreate struct {
	config
	mutation *AutomationRuleMutation
	hooks    []Hook
}

// SetAutomationType sets the "automation_type" field.
func (_c *AutomationRuleCreate) SetAutomationType(v string) *AutomationRuleCreate {
	_c.mutation.SetAutomationType(v)
	return _c
}

// SetActionName sets the "action_name" field.
func (_c *AutomationRuleCreate) SetActionName(v string) *AutomationRuleCreate {
	_c.mutation.SetActionName(v)
	return _c
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_c *AutomationRuleCreate) SetNillableActionName(v *string) *AutomationRuleCreate {
	if v != nil {
		_c.SetActionName(*v)
	}
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *AutomationRuleCreate) SetEnabled(v bool) *AutomationRuleCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *AutomationRuleCreate) SetNillableEnabled(v *bool) *AutomationRuleCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetConfidenceThreshold sets the "confidence_threshold" field.
func (_c *AutomationRuleCreate) SetConfidenceThreshold(v float64) *AutomationRuleCreate {
	_c.mutation.SetConfidenceThreshold(v)
	return _c
}

// SetNillableConfidenceThreshold sets the "confidence_threshold" field if the given value is not nil.
func (_c *AutomationRuleCreate) SetNillableConfidenceThreshold(v *float64) *AutomationRuleCreate {
	if v != nil {
		_c.SetConfidenceThreshold(*v)
	}
	return _c
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (_c *AutomationRuleCreate) SetAutoApproveThreshold(v float64) *AutomationRuleCreate {
	_c.mutation.SetAutoApproveThreshold(v)
	return _c
}

// SetNillableAutoApproveThreshold sets the "auto_approve_threshold" field if the given value is not nil.
func (_c *AutomationRuleCreate) SetNillableAutoApproveThreshold(v *float64) *AutomationRuleCreate {
	if v != nil {
		_c.SetAutoApproveThreshold(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *AutomationRuleCreate) SetConfig(v map[string]interface{}) *AutomationRuleCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AutomationRuleCreate) SetCreatedAt(v time.Time) *AutomationRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AutomationRuleCreate) SetNillableCreatedAt(v *time.Time) *AutomationRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AutomationRuleCreate) SetUpdatedAt(v time.Time) *AutomationRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AutomationRuleCreate) SetNillableUpdatedAt(v *time.Time) *AutomationRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AutomationRuleCreate) SetID(v string) *AutomationRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AutomationRuleMutation object of the builder.
func (_c *AutomationRuleCreate) Mutation() *AutomationRuleMutation {
	return _c.mutation
}

// Save creates the AutomationRule in the database.
func (_c *AutomationRuleCreate) Save(ctx context.Context) (*AutomationRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AutomationRuleCreate) SaveX(ctx context.Context) *AutomationRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AutomationRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AutomationRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AutomationRuleCreate) defaults() {
	if _, ok := _c.mutation.ActionName(); !ok {
		v := automationrule.DefaultActionName
		_c.mutation.SetActionName(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := automationrule.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.ConfidenceThreshold(); !ok {
		v := automationrule.DefaultConfidenceThreshold
		_c.mutation.SetConfidenceThreshold(v)
	}
	if _, ok := _c.mutation.AutoApproveThreshold(); !ok {
		v := automationrule.DefaultAutoApproveThreshold
		_c.mutation.SetAutoApproveThreshold(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := automationrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := automationrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AutomationRuleCreate) check() error {
	if _, ok := _c.mutation.AutomationType(); !ok {
		return &ValidationError{Name: "automation_type", err: errors.New(`ent: missing required field "AutomationRule.automation_type"`)}
	}
	if _, ok := _c.mutation.ActionName(); !ok {
		return &ValidationError{Name: "action_name", err: errors.New(`ent: missing required field "AutomationRule.action_name"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "AutomationRule.enabled"`)}
	}
	if _, ok := _c.mutation.ConfidenceThreshold(); !ok {
		return &ValidationError{Name: "confidence_threshold", err: errors.New(`ent: missing required field "AutomationRule.confidence_threshold"`)}
	}
	if _, ok := _c.mutation.AutoApproveThreshold(); !ok {
		return &ValidationError{Name: "auto_approve_threshold", err: errors.New(`ent: missing required field "AutomationRule.auto_approve_threshold"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AutomationRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AutomationRule.updated_at"`)}
	}
	return nil
}

func (_c *AutomationRuleCreate) sqlSave(ctx context.Context) (*AutomationRule, error) {
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
			return nil, fmt.Errorf("unexpected AutomationRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AutomationRuleCreate) createSpec() (*AutomationRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AutomationRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(automationrule.Table, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AutomationType(); ok {
		_spec.SetField(automationrule.FieldAutomationType, field.TypeString, value)
		_node.AutomationType = value
	}
	if value, ok := _c.mutation.ActionName(); ok {
		_spec.SetField(automationrule.FieldActionName, field.TypeString, value)
		_node.ActionName = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(automationrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.ConfidenceThreshold(); ok {
		_spec.SetField(automationrule.FieldConfidenceThreshold, field.TypeFloat64, value)
		_node.ConfidenceThreshold = value
	}
	if value, ok := _c.mutation.AutoApproveThreshold(); ok {
		_spec.SetField(automationrule.FieldAutoApproveThreshold, field.TypeFloat64, value)
		_node.AutoApproveThreshold = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(automationrule.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(automationrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(automationrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AutomationRuleCreateBulk is the builder for creating many AutomationRule entities in bulk.
type AutomationRuleCreateBulk struct {
	config
	err      error
	builders []*AutomationRuleCreate
}

// Save creates the AutomationRule entities in the database.
func (_c *AutomationRuleCreateBulk) Save(ctx context.Context) ([]*AutomationRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AutomationRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AutomationRuleMutation)
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
func (_c *AutomationRuleCreateBulk) SaveX(ctx context.Context) []*AutomationRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AutomationRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AutomationRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

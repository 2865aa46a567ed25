// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/automationrule"
	"github.com/steward-ai/steward/ent/predicate"
)

// AutomationRuleUpdate is the builder for updating AutomationRule entities.
type AutomationRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AutomationRuleMutation
}

// Where appends a list predicates to the AutomationRuleUpdate builder.
func (_u *AutomationRuleUpdate) Where(ps ...predicate.AutomationRule) *AutomationRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAutomationType sets the "automation_type" field.
func (_u *AutomationRuleUpdate) SetAutomationType(v string) *AutomationRuleUpdate {
	_u.mutation.SetAutomationType(v)
	return _u
}

// SetNillableAutomationType sets the "automation_type" field if the given value is not nil.
func (_u *AutomationRuleUpdate) SetNillableAutomationType(v *string) *AutomationRuleUpdate {
	if v != nil {
		_u.SetAutomationType(*v)
	}
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *AutomationRuleUpdate) SetActionName(v string) *AutomationRuleUpdate {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *AutomationRuleUpdate) SetNillableActionName(v *string) *AutomationRuleUpdate {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AutomationRuleUpdate) SetEnabled(v bool) *AutomationRuleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AutomationRuleUpdate) SetNillableEnabled(v *bool) *AutomationRuleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfidenceThreshold sets the "confidence_threshold" field.
func (_u *AutomationRuleUpdate) SetConfidenceThreshold(v float64) *AutomationRuleUpdate {
	_u.mutation.ResetConfidenceThreshold()
	_u.mutation.SetConfidenceThreshold(v)
	return _u
}

// SetNillableConfidenceThreshold sets the "confidence_threshold" field if the given value is not nil.
func (_u *AutomationRuleUpdate) SetNillableConfidenceThreshold(v *float64) *AutomationRuleUpdate {
	if v != nil {
		_u.SetConfidenceThreshold(*v)
	}
	return _u
}

// AddConfidenceThreshold adds value to the "confidence_threshold" field.
func (_u *AutomationRuleUpdate) AddConfidenceThreshold(v float64) *AutomationRuleUpdate {
	_u.mutation.AddConfidenceThreshold(v)
	return _u
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (_u *AutomationRuleUpdate) SetAutoApproveThreshold(v float64) *AutomationRuleUpdate {
	_u.mutation.ResetAutoApproveThreshold()
	_u.mutation.SetAutoApproveThreshold(v)
	return _u
}

// SetNillableAutoApproveThreshold sets the "auto_approve_threshold" field if the given value is not nil.
func (_u *AutomationRuleUpdate) SetNillableAutoApproveThreshold(v *float64) *AutomationRuleUpdate {
	if v != nil {
		_u.SetAutoApproveThreshold(*v)
	}
	return _u
}

// AddAutoApproveThreshold adds value to the "auto_approve_threshold" field.
func (_u *AutomationRuleUpdate) AddAutoApproveThreshold(v float64) *AutomationRuleUpdate {
	_u.mutation.AddAutoApproveThreshold(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AutomationRuleUpdate) SetConfig(v map[string]interface{}) *AutomationRuleUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AutomationRuleUpdate) ClearConfig() *AutomationRuleUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AutomationRuleUpdate) SetUpdatedAt(v time.Time) *AutomationRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AutomationRuleMutation object of the builder.
func (_u *AutomationRuleUpdate) Mutation() *AutomationRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AutomationRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AutomationRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AutomationRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AutomationRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AutomationRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := automationrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AutomationRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(automationrule.Table, automationrule.Columns, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AutomationType(); ok {
		_spec.SetField(automationrule.FieldAutomationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(automationrule.FieldActionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(automationrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceThreshold(); ok {
		_spec.SetField(automationrule.FieldConfidenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceThreshold(); ok {
		_spec.AddField(automationrule.FieldConfidenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AutoApproveThreshold(); ok {
		_spec.SetField(automationrule.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAutoApproveThreshold(); ok {
		_spec.AddField(automationrule.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(automationrule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(automationrule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(automationrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automationrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AutomationRuleUpdateOne is the builder for updating a single AutomationRule entity.
type AutomationRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AutomationRuleMutation
}

// SetAutomationType sets the "automation_type" field.
func (_u *AutomationRuleUpdateOne) SetAutomationType(v string) *AutomationRuleUpdateOne {
	_u.mutation.SetAutomationType(v)
	return _u
}

// SetNillableAutomationType sets the "automation_type" field if the given value is not nil.
func (_u *AutomationRuleUpdateOne) SetNillableAutomationType(v *string) *AutomationRuleUpdateOne {
	if v != nil {
		_u.SetAutomationType(*v)
	}
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *AutomationRuleUpdateOne) SetActionName(v string) *AutomationRuleUpdateOne {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *AutomationRuleUpdateOne) SetNillableActionName(v *string) *AutomationRuleUpdateOne {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *AutomationRuleUpdateOne) SetEnabled(v bool) *AutomationRuleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *AutomationRuleUpdateOne) SetNillableEnabled(v *bool) *AutomationRuleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetConfidenceThreshold sets the "confidence_threshold" field.
func (_u *AutomationRuleUpdateOne) SetConfidenceThreshold(v float64) *AutomationRuleUpdateOne {
	_u.mutation.ResetConfidenceThreshold()
	_u.mutation.SetConfidenceThreshold(v)
	return _u
}

// SetNillableConfidenceThreshold sets the "confidence_threshold" field if the given value is not nil.
func (_u *AutomationRuleUpdateOne) SetNillableConfidenceThreshold(v *float64) *AutomationRuleUpdateOne {
	if v != nil {
		_u.SetConfidenceThreshold(*v)
	}
	return _u
}

// AddConfidenceThreshold adds value to the "confidence_threshold" field.
func (_u *AutomationRuleUpdateOne) AddConfidenceThreshold(v float64) *AutomationRuleUpdateOne {
	_u.mutation.AddConfidenceThreshold(v)
	return _u
}

// SetAutoApproveThreshold sets the "auto_approve_threshold" field.
func (_u *AutomationRuleUpdateOne) SetAutoApproveThreshold(v float64) *AutomationRuleUpdateOne {
	_u.mutation.ResetAutoApproveThreshold()
	_u.mutation.SetAutoApproveThreshold(v)
	return _u
}

// SetNillableAutoApproveThreshold sets the "auto_approve_threshold" field if the given value is not nil.
func (_u *AutomationRuleUpdateOne) SetNillableAutoApproveThreshold(v *float64) *AutomationRuleUpdateOne {
	if v != nil {
		_u.SetAutoApproveThreshold(*v)
	}
	return _u
}

// AddAutoApproveThreshold adds value to the "auto_approve_threshold" field.
func (_u *AutomationRuleUpdateOne) AddAutoApproveThreshold(v float64) *AutomationRuleUpdateOne {
	_u.mutation.AddAutoApproveThreshold(v)
	return _u
}

// SetConfig sets the "config" field.
func (_u *AutomationRuleUpdateOne) SetConfig(v map[string]interface{}) *AutomationRuleUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *AutomationRuleUpdateOne) ClearConfig() *AutomationRuleUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AutomationRuleUpdateOne) SetUpdatedAt(v time.Time) *AutomationRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AutomationRuleMutation object of the builder.
func (_u *AutomationRuleUpdateOne) Mutation() *AutomationRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the AutomationRuleUpdate builder.
func (_u *AutomationRuleUpdateOne) Where(ps ...predicate.AutomationRule) *AutomationRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AutomationRuleUpdateOne) Select(field string, fields ...string) *AutomationRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AutomationRule entity.
func (_u *AutomationRuleUpdateOne) Save(ctx context.Context) (*AutomationRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AutomationRuleUpdateOne) SaveX(ctx context.Context) *AutomationRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AutomationRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AutomationRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AutomationRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := automationrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AutomationRuleUpdateOne) sqlSave(ctx context.Context) (_node *AutomationRule, err error) {
	_spec := sqlgraph.NewUpdateSpec(automationrule.Table, automationrule.Columns, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AutomationRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, automationrule.FieldID)
		for _, f := range fields {
			if !automationrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != automationrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AutomationType(); ok {
		_spec.SetField(automationrule.FieldAutomationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(automationrule.FieldActionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(automationrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ConfidenceThreshold(); ok {
		_spec.SetField(automationrule.FieldConfidenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceThreshold(); ok {
		_spec.AddField(automationrule.FieldConfidenceThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AutoApproveThreshold(); ok {
		_spec.SetField(automationrule.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAutoApproveThreshold(); ok {
		_spec.AddField(automationrule.FieldAutoApproveThreshold, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(automationrule.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(automationrule.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(automationrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AutomationRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automationrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

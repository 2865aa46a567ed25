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
	"github.com/steward-ai/steward/ent/agentsuspension"
	"github.com/steward-ai/steward/ent/predicate"
)

// AgentSuspensionUpdate is the builder for updating AgentSuspension entities.
type AgentSuspensionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentSuspensionMutation
}

// Where appends a list predicates to the AgentSuspensionUpdate builder.
func (_u *AgentSuspensionUpdate) Where(ps ...predicate.AgentSuspension) *AgentSuspensionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResumeCondition sets the "resume_condition" field.
func (_u *AgentSuspensionUpdate) SetResumeCondition(v string) *AgentSuspensionUpdate {
	_u.mutation.SetResumeCondition(v)
	return _u
}

// SetNillableResumeCondition sets the "resume_condition" field if the given value is not nil.
func (_u *AgentSuspensionUpdate) SetNillableResumeCondition(v *string) *AgentSuspensionUpdate {
	if v != nil {
		_u.SetResumeCondition(*v)
	}
	return _u
}

// SetSuspendedAtStep sets the "suspended_at_step" field.
func (_u *AgentSuspensionUpdate) SetSuspendedAtStep(v string) *AgentSuspensionUpdate {
	_u.mutation.SetSuspendedAtStep(v)
	return _u
}

// SetNillableSuspendedAtStep sets the "suspended_at_step" field if the given value is not nil.
func (_u *AgentSuspensionUpdate) SetNillableSuspendedAtStep(v *string) *AgentSuspensionUpdate {
	if v != nil {
		_u.SetSuspendedAtStep(*v)
	}
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *AgentSuspensionUpdate) SetTimeoutAt(v time.Time) *AgentSuspensionUpdate {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *AgentSuspensionUpdate) SetNillableTimeoutAt(v *time.Time) *AgentSuspensionUpdate {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// SetResumeData sets the "resume_data" field.
func (_u *AgentSuspensionUpdate) SetResumeData(v map[string]interface{}) *AgentSuspensionUpdate {
	_u.mutation.SetResumeData(v)
	return _u
}

// ClearResumeData clears the value of the "resume_data" field.
func (_u *AgentSuspensionUpdate) ClearResumeData() *AgentSuspensionUpdate {
	_u.mutation.ClearResumeData()
	return _u
}

// SetResumedAt sets the "resumed_at" field.
func (_u *AgentSuspensionUpdate) SetResumedAt(v time.Time) *AgentSuspensionUpdate {
	_u.mutation.SetResumedAt(v)
	return _u
}

// SetNillableResumedAt sets the "resumed_at" field if the given value is not nil.
func (_u *AgentSuspensionUpdate) SetNillableResumedAt(v *time.Time) *AgentSuspensionUpdate {
	if v != nil {
		_u.SetResumedAt(*v)
	}
	return _u
}

// ClearResumedAt clears the value of the "resumed_at" field.
func (_u *AgentSuspensionUpdate) ClearResumedAt() *AgentSuspensionUpdate {
	_u.mutation.ClearResumedAt()
	return _u
}

// Mutation returns the AgentSuspensionMutation object of the builder.
func (_u *AgentSuspensionUpdate) Mutation() *AgentSuspensionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentSuspensionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSuspensionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentSuspensionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSuspensionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSuspensionUpdate) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSuspension.run"`)
	}
	return nil
}

func (_u *AgentSuspensionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsuspension.Table, agentsuspension.Columns, sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResumeCondition(); ok {
		_spec.SetField(agentsuspension.FieldResumeCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuspendedAtStep(); ok {
		_spec.SetField(agentsuspension.FieldSuspendedAtStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(agentsuspension.FieldTimeoutAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResumeData(); ok {
		_spec.SetField(agentsuspension.FieldResumeData, field.TypeJSON, value)
	}
	if _u.mutation.ResumeDataCleared() {
		_spec.ClearField(agentsuspension.FieldResumeData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumedAt(); ok {
		_spec.SetField(agentsuspension.FieldResumedAt, field.TypeTime, value)
	}
	if _u.mutation.ResumedAtCleared() {
		_spec.ClearField(agentsuspension.FieldResumedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsuspension.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentSuspensionUpdateOne is the builder for updating a single AgentSuspension entity.
type AgentSuspensionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentSuspensionMutation
}

// SetResumeCondition sets the "resume_condition" field.
func (_u *AgentSuspensionUpdateOne) SetResumeCondition(v string) *AgentSuspensionUpdateOne {
	_u.mutation.SetResumeCondition(v)
	return _u
}

// SetNillableResumeCondition sets the "resume_condition" field if the given value is not nil.
func (_u *AgentSuspensionUpdateOne) SetNillableResumeCondition(v *string) *AgentSuspensionUpdateOne {
	if v != nil {
		_u.SetResumeCondition(*v)
	}
	return _u
}

// SetSuspendedAtStep sets the "suspended_at_step" field.
func (_u *AgentSuspensionUpdateOne) SetSuspendedAtStep(v string) *AgentSuspensionUpdateOne {
	_u.mutation.SetSuspendedAtStep(v)
	return _u
}

// SetNillableSuspendedAtStep sets the "suspended_at_step" field if the given value is not nil.
func (_u *AgentSuspensionUpdateOne) SetNillableSuspendedAtStep(v *string) *AgentSuspensionUpdateOne {
	if v != nil {
		_u.SetSuspendedAtStep(*v)
	}
	return _u
}

// SetTimeoutAt sets the "timeout_at" field.
func (_u *AgentSuspensionUpdateOne) SetTimeoutAt(v time.Time) *AgentSuspensionUpdateOne {
	_u.mutation.SetTimeoutAt(v)
	return _u
}

// SetNillableTimeoutAt sets the "timeout_at" field if the given value is not nil.
func (_u *AgentSuspensionUpdateOne) SetNillableTimeoutAt(v *time.Time) *AgentSuspensionUpdateOne {
	if v != nil {
		_u.SetTimeoutAt(*v)
	}
	return _u
}

// SetResumeData sets the "resume_data" field.
func (_u *AgentSuspensionUpdateOne) SetResumeData(v map[string]interface{}) *AgentSuspensionUpdateOne {
	_u.mutation.SetResumeData(v)
	return _u
}

// ClearResumeData clears the value of the "resume_data" field.
func (_u *AgentSuspensionUpdateOne) ClearResumeData() *AgentSuspensionUpdateOne {
	_u.mutation.ClearResumeData()
	return _u
}

// SetResumedAt sets the "resumed_at" field.
func (_u *AgentSuspensionUpdateOne) SetResumedAt(v time.Time) *AgentSuspensionUpdateOne {
	_u.mutation.SetResumedAt(v)
	return _u
}

// SetNillableResumedAt sets the "resumed_at" field if the given value is not nil.
func (_u *AgentSuspensionUpdateOne) SetNillableResumedAt(v *time.Time) *AgentSuspensionUpdateOne {
	if v != nil {
		_u.SetResumedAt(*v)
	}
	return _u
}

// ClearResumedAt clears the value of the "resumed_at" field.
func (_u *AgentSuspensionUpdateOne) ClearResumedAt() *AgentSuspensionUpdateOne {
	_u.mutation.ClearResumedAt()
	return _u
}

// Mutation returns the AgentSuspensionMutation object of the builder.
func (_u *AgentSuspensionUpdateOne) Mutation() *AgentSuspensionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentSuspensionUpdate builder.
func (_u *AgentSuspensionUpdateOne) Where(ps ...predicate.AgentSuspension) *AgentSuspensionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentSuspensionUpdateOne) Select(field string, fields ...string) *AgentSuspensionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentSuspension entity.
func (_u *AgentSuspensionUpdateOne) Save(ctx context.Context) (*AgentSuspension, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentSuspensionUpdateOne) SaveX(ctx context.Context) *AgentSuspension {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentSuspensionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentSuspensionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentSuspensionUpdateOne) check() error {
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentSuspension.run"`)
	}
	return nil
}

func (_u *AgentSuspensionUpdateOne) sqlSave(ctx context.Context) (_node *AgentSuspension, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentsuspension.Table, agentsuspension.Columns, sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentSuspension.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentsuspension.FieldID)
		for _, f := range fields {
			if !agentsuspension.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentsuspension.FieldID {
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
	if value, ok := _u.mutation.ResumeCondition(); ok {
		_spec.SetField(agentsuspension.FieldResumeCondition, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuspendedAtStep(); ok {
		_spec.SetField(agentsuspension.FieldSuspendedAtStep, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeoutAt(); ok {
		_spec.SetField(agentsuspension.FieldTimeoutAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ResumeData(); ok {
		_spec.SetField(agentsuspension.FieldResumeData, field.TypeJSON, value)
	}
	if _u.mutation.ResumeDataCleared() {
		_spec.ClearField(agentsuspension.FieldResumeData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResumedAt(); ok {
		_spec.SetField(agentsuspension.FieldResumedAt, field.TypeTime, value)
	}
	if _u.mutation.ResumedAtCleared() {
		_spec.ClearField(agentsuspension.FieldResumedAt, field.TypeTime)
	}
	_node = &AgentSuspension{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentsuspension.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

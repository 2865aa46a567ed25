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
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/predicate"
)

// ClosingStepUpdate is the builder for updating ClosingStep entities.
type ClosingStepUpdate struct {
	config
	hooks    []Hook
	mutation *ClosingStepMutation
}

// Where appends a list predicates to the ClosingStepUpdate builder.
func (_u *ClosingStepUpdate) Where(ps ...predicate.ClosingStep) *ClosingStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *ClosingStepUpdate) SetStepName(v string) *ClosingStepUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *ClosingStepUpdate) SetNillableStepName(v *string) *ClosingStepUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ClosingStepUpdate) SetStepIndex(v int) *ClosingStepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ClosingStepUpdate) SetNillableStepIndex(v *int) *ClosingStepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ClosingStepUpdate) AddStepIndex(v int) *ClosingStepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClosingStepUpdate) SetStatus(v closingstep.Status) *ClosingStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClosingStepUpdate) SetNillableStatus(v *closingstep.Status) *ClosingStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ClosingStepUpdate) SetDetails(v map[string]interface{}) *ClosingStepUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ClosingStepUpdate) ClearDetails() *ClosingStepUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *ClosingStepUpdate) SetBlockedReason(v string) *ClosingStepUpdate {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *ClosingStepUpdate) SetNillableBlockedReason(v *string) *ClosingStepUpdate {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *ClosingStepUpdate) ClearBlockedReason() *ClosingStepUpdate {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ClosingStepUpdate) SetCompletedAt(v time.Time) *ClosingStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ClosingStepUpdate) SetNillableCompletedAt(v *time.Time) *ClosingStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ClosingStepUpdate) ClearCompletedAt() *ClosingStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ClosingStepMutation object of the builder.
func (_u *ClosingStepUpdate) Mutation() *ClosingStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClosingStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClosingStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClosingStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClosingStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClosingStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := closingstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClosingStep.status": %w`, err)}
		}
	}
	if _u.mutation.ClosingCleared() && len(_u.mutation.ClosingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClosingStep.closing"`)
	}
	return nil
}

func (_u *ClosingStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(closingstep.Table, closingstep.Columns, sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(closingstep.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(closingstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(closingstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(closingstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(closingstep.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(closingstep.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(closingstep.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(closingstep.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(closingstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(closingstep.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{closingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClosingStepUpdateOne is the builder for updating a single ClosingStep entity.
type ClosingStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClosingStepMutation
}

// SetStepName sets the "step_name" field.
func (_u *ClosingStepUpdateOne) SetStepName(v string) *ClosingStepUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *ClosingStepUpdateOne) SetNillableStepName(v *string) *ClosingStepUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *ClosingStepUpdateOne) SetStepIndex(v int) *ClosingStepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *ClosingStepUpdateOne) SetNillableStepIndex(v *int) *ClosingStepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *ClosingStepUpdateOne) AddStepIndex(v int) *ClosingStepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClosingStepUpdateOne) SetStatus(v closingstep.Status) *ClosingStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClosingStepUpdateOne) SetNillableStatus(v *closingstep.Status) *ClosingStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *ClosingStepUpdateOne) SetDetails(v map[string]interface{}) *ClosingStepUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ClosingStepUpdateOne) ClearDetails() *ClosingStepUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetBlockedReason sets the "blocked_reason" field.
func (_u *ClosingStepUpdateOne) SetBlockedReason(v string) *ClosingStepUpdateOne {
	_u.mutation.SetBlockedReason(v)
	return _u
}

// SetNillableBlockedReason sets the "blocked_reason" field if the given value is not nil.
func (_u *ClosingStepUpdateOne) SetNillableBlockedReason(v *string) *ClosingStepUpdateOne {
	if v != nil {
		_u.SetBlockedReason(*v)
	}
	return _u
}

// ClearBlockedReason clears the value of the "blocked_reason" field.
func (_u *ClosingStepUpdateOne) ClearBlockedReason() *ClosingStepUpdateOne {
	_u.mutation.ClearBlockedReason()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ClosingStepUpdateOne) SetCompletedAt(v time.Time) *ClosingStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ClosingStepUpdateOne) SetNillableCompletedAt(v *time.Time) *ClosingStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ClosingStepUpdateOne) ClearCompletedAt() *ClosingStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ClosingStepMutation object of the builder.
func (_u *ClosingStepUpdateOne) Mutation() *ClosingStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClosingStepUpdate builder.
func (_u *ClosingStepUpdateOne) Where(ps ...predicate.ClosingStep) *ClosingStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClosingStepUpdateOne) Select(field string, fields ...string) *ClosingStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClosingStep entity.
func (_u *ClosingStepUpdateOne) Save(ctx context.Context) (*ClosingStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClosingStepUpdateOne) SaveX(ctx context.Context) *ClosingStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClosingStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClosingStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClosingStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := closingstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ClosingStep.status": %w`, err)}
		}
	}
	if _u.mutation.ClosingCleared() && len(_u.mutation.ClosingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ClosingStep.closing"`)
	}
	return nil
}

func (_u *ClosingStepUpdateOne) sqlSave(ctx context.Context) (_node *ClosingStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(closingstep.Table, closingstep.Columns, sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClosingStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, closingstep.FieldID)
		for _, f := range fields {
			if !closingstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != closingstep.FieldID {
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
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(closingstep.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(closingstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(closingstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(closingstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(closingstep.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(closingstep.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.BlockedReason(); ok {
		_spec.SetField(closingstep.FieldBlockedReason, field.TypeString, value)
	}
	if _u.mutation.BlockedReasonCleared() {
		_spec.ClearField(closingstep.FieldBlockedReason, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(closingstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(closingstep.FieldCompletedAt, field.TypeTime)
	}
	_node = &ClosingStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{closingstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

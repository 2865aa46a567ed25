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
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/reportjob"
)

// ReportJobUpdate is the builder for updating ReportJob entities.
type ReportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ReportJobMutation
}

// Where appends a list predicates to the ReportJobUpdate builder.
func (_u *ReportJobUpdate) Where(ps ...predicate.ReportJob) *ReportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuery sets the "query" field.
func (_u *ReportJobUpdate) SetQuery(v string) *ReportJobUpdate {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableQuery(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ReportJobUpdate) SetRequestedBy(v string) *ReportJobUpdate {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableRequestedBy(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *ReportJobUpdate) ClearRequestedBy() *ReportJobUpdate {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportJobUpdate) SetStatus(v reportjob.Status) *ReportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableStatus(v *reportjob.Status) *ReportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ReportJobUpdate) SetPlan(v map[string]interface{}) *ReportJobUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *ReportJobUpdate) ClearPlan() *ReportJobUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetResult sets the "result" field.
func (_u *ReportJobUpdate) SetResult(v map[string]interface{}) *ReportJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ReportJobUpdate) ClearResult() *ReportJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ReportJobUpdate) SetNarrative(v string) *ReportJobUpdate {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableNarrative(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// ClearNarrative clears the value of the "narrative" field.
func (_u *ReportJobUpdate) ClearNarrative() *ReportJobUpdate {
	_u.mutation.ClearNarrative()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ReportJobUpdate) SetTokensUsed(v int) *ReportJobUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableTokensUsed(v *int) *ReportJobUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ReportJobUpdate) AddTokensUsed(v int) *ReportJobUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportJobUpdate) SetErrorMessage(v string) *ReportJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableErrorMessage(v *string) *ReportJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReportJobUpdate) ClearErrorMessage() *ReportJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReportJobUpdate) SetCompletedAt(v time.Time) *ReportJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReportJobUpdate) SetNillableCompletedAt(v *time.Time) *ReportJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReportJobUpdate) ClearCompletedAt() *ReportJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ReportJobMutation object of the builder.
func (_u *ReportJobUpdate) Mutation() *ReportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportjob.Table, reportjob.Columns, sqlgraph.NewFieldSpec(reportjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(reportjob.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(reportjob.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(reportjob.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reportjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(reportjob.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(reportjob.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(reportjob.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(reportjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(reportjob.FieldNarrative, field.TypeString, value)
	}
	if _u.mutation.NarrativeCleared() {
		_spec.ClearField(reportjob.FieldNarrative, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(reportjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(reportjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reportjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reportjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reportjob.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportJobUpdateOne is the builder for updating a single ReportJob entity.
type ReportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportJobMutation
}

// SetQuery sets the "query" field.
func (_u *ReportJobUpdateOne) SetQuery(v string) *ReportJobUpdateOne {
	_u.mutation.SetQuery(v)
	return _u
}

// SetNillableQuery sets the "query" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableQuery(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetQuery(*v)
	}
	return _u
}

// SetRequestedBy sets the "requested_by" field.
func (_u *ReportJobUpdateOne) SetRequestedBy(v string) *ReportJobUpdateOne {
	_u.mutation.SetRequestedBy(v)
	return _u
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableRequestedBy(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetRequestedBy(*v)
	}
	return _u
}

// ClearRequestedBy clears the value of the "requested_by" field.
func (_u *ReportJobUpdateOne) ClearRequestedBy() *ReportJobUpdateOne {
	_u.mutation.ClearRequestedBy()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportJobUpdateOne) SetStatus(v reportjob.Status) *ReportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableStatus(v *reportjob.Status) *ReportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ReportJobUpdateOne) SetPlan(v map[string]interface{}) *ReportJobUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *ReportJobUpdateOne) ClearPlan() *ReportJobUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetResult sets the "result" field.
func (_u *ReportJobUpdateOne) SetResult(v map[string]interface{}) *ReportJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ReportJobUpdateOne) ClearResult() *ReportJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetNarrative sets the "narrative" field.
func (_u *ReportJobUpdateOne) SetNarrative(v string) *ReportJobUpdateOne {
	_u.mutation.SetNarrative(v)
	return _u
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableNarrative(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetNarrative(*v)
	}
	return _u
}

// ClearNarrative clears the value of the "narrative" field.
func (_u *ReportJobUpdateOne) ClearNarrative() *ReportJobUpdateOne {
	_u.mutation.ClearNarrative()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *ReportJobUpdateOne) SetTokensUsed(v int) *ReportJobUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableTokensUsed(v *int) *ReportJobUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *ReportJobUpdateOne) AddTokensUsed(v int) *ReportJobUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ReportJobUpdateOne) SetErrorMessage(v string) *ReportJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableErrorMessage(v *string) *ReportJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ReportJobUpdateOne) ClearErrorMessage() *ReportJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReportJobUpdateOne) SetCompletedAt(v time.Time) *ReportJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReportJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ReportJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReportJobUpdateOne) ClearCompletedAt() *ReportJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ReportJobMutation object of the builder.
func (_u *ReportJobUpdateOne) Mutation() *ReportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportJobUpdate builder.
func (_u *ReportJobUpdateOne) Where(ps ...predicate.ReportJob) *ReportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportJobUpdateOne) Select(field string, fields ...string) *ReportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportJob entity.
func (_u *ReportJobUpdateOne) Save(ctx context.Context) (*ReportJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportJobUpdateOne) SaveX(ctx context.Context) *ReportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportJobUpdateOne) sqlSave(ctx context.Context) (_node *ReportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportjob.Table, reportjob.Columns, sqlgraph.NewFieldSpec(reportjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportjob.FieldID)
		for _, f := range fields {
			if !reportjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportjob.FieldID {
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
	if value, ok := _u.mutation.Query(); ok {
		_spec.SetField(reportjob.FieldQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedBy(); ok {
		_spec.SetField(reportjob.FieldRequestedBy, field.TypeString, value)
	}
	if _u.mutation.RequestedByCleared() {
		_spec.ClearField(reportjob.FieldRequestedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reportjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(reportjob.FieldPlan, field.TypeJSON, value)
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(reportjob.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(reportjob.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(reportjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Narrative(); ok {
		_spec.SetField(reportjob.FieldNarrative, field.TypeString, value)
	}
	if _u.mutation.NarrativeCleared() {
		_spec.ClearField(reportjob.FieldNarrative, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(reportjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(reportjob.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(reportjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(reportjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reportjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reportjob.FieldCompletedAt, field.TypeTime)
	}
	_node = &ReportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

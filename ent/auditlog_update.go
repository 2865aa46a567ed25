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
	"github.com/steward-ai/steward/ent/auditlog"
	"github.com/steward-ai/steward/ent/predicate"
)

// AuditLogUpdate is the builder for updating AuditLog entities.
type AuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogMutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (_u *AuditLogUpdate) Where(ps ...predicate.AuditLog) *AuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAutomationType sets the "automation_type" field.
func (_u *AuditLogUpdate) SetAutomationType(v string) *AuditLogUpdate {
	_u.mutation.SetAutomationType(v)
	return _u
}

// SetNillableAutomationType sets the "automation_type" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableAutomationType(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetAutomationType(*v)
	}
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *AuditLogUpdate) SetActionName(v string) *AuditLogUpdate {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableActionName(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AuditLogUpdate) SetModel(v string) *AuditLogUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableModel(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *AuditLogUpdate) SetRecordID(v int64) *AuditLogUpdate {
	_u.mutation.ResetRecordID()
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableRecordID(v *int64) *AuditLogUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// AddRecordID adds value to the "record_id" field.
func (_u *AuditLogUpdate) AddRecordID(v int64) *AuditLogUpdate {
	_u.mutation.AddRecordID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditLogUpdate) SetStatus(v auditlog.Status) *AuditLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableStatus(v *auditlog.Status) *AuditLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AuditLogUpdate) SetConfidence(v float64) *AuditLogUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableConfidence(v *float64) *AuditLogUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AuditLogUpdate) AddConfidence(v float64) *AuditLogUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AuditLogUpdate) SetReasoning(v string) *AuditLogUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableReasoning(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AuditLogUpdate) ClearReasoning() *AuditLogUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_u *AuditLogUpdate) SetInputSnapshot(v map[string]interface{}) *AuditLogUpdate {
	_u.mutation.SetInputSnapshot(v)
	return _u
}

// ClearInputSnapshot clears the value of the "input_snapshot" field.
func (_u *AuditLogUpdate) ClearInputSnapshot() *AuditLogUpdate {
	_u.mutation.ClearInputSnapshot()
	return _u
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_u *AuditLogUpdate) SetOutputSnapshot(v map[string]interface{}) *AuditLogUpdate {
	_u.mutation.SetOutputSnapshot(v)
	return _u
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (_u *AuditLogUpdate) ClearOutputSnapshot() *AuditLogUpdate {
	_u.mutation.ClearOutputSnapshot()
	return _u
}

// SetChangesMade sets the "changes_made" field.
func (_u *AuditLogUpdate) SetChangesMade(v map[string]interface{}) *AuditLogUpdate {
	_u.mutation.SetChangesMade(v)
	return _u
}

// ClearChangesMade clears the value of the "changes_made" field.
func (_u *AuditLogUpdate) ClearChangesMade() *AuditLogUpdate {
	_u.mutation.ClearChangesMade()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditLogUpdate) SetErrorMessage(v string) *AuditLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableErrorMessage(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditLogUpdate) ClearErrorMessage() *AuditLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *AuditLogUpdate) SetExecutedAt(v time.Time) *AuditLogUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableExecutedAt(v *time.Time) *AuditLogUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *AuditLogUpdate) ClearExecutedAt() *AuditLogUpdate {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *AuditLogUpdate) SetApprovedBy(v string) *AuditLogUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableApprovedBy(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *AuditLogUpdate) ClearApprovedBy() *AuditLogUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AuditLogUpdate) SetTokensUsed(v int) *AuditLogUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableTokensUsed(v *int) *AuditLogUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AuditLogUpdate) AddTokensUsed(v int) *AuditLogUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetScanDay sets the "scan_day" field.
func (_u *AuditLogUpdate) SetScanDay(v time.Time) *AuditLogUpdate {
	_u.mutation.SetScanDay(v)
	return _u
}

// SetNillableScanDay sets the "scan_day" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableScanDay(v *time.Time) *AuditLogUpdate {
	if v != nil {
		_u.SetScanDay(*v)
	}
	return _u
}

// ClearScanDay clears the value of the "scan_day" field.
func (_u *AuditLogUpdate) ClearScanDay() *AuditLogUpdate {
	_u.mutation.ClearScanDay()
	return _u
}

// Mutation returns the AuditLogMutation object of the builder.
func (_u *AuditLogUpdate) Mutation() *AuditLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AutomationType(); ok {
		_spec.SetField(auditlog.FieldAutomationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(auditlog.FieldActionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(auditlog.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(auditlog.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRecordID(); ok {
		_spec.AddField(auditlog.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(auditlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(auditlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(auditlog.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(auditlog.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.InputSnapshot(); ok {
		_spec.SetField(auditlog.FieldInputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.InputSnapshotCleared() {
		_spec.ClearField(auditlog.FieldInputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSnapshot(); ok {
		_spec.SetField(auditlog.FieldOutputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.OutputSnapshotCleared() {
		_spec.ClearField(auditlog.FieldOutputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangesMade(); ok {
		_spec.SetField(auditlog.FieldChangesMade, field.TypeJSON, value)
	}
	if _u.mutation.ChangesMadeCleared() {
		_spec.ClearField(auditlog.FieldChangesMade, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(auditlog.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(auditlog.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(auditlog.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(auditlog.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(auditlog.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(auditlog.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScanDay(); ok {
		_spec.SetField(auditlog.FieldScanDay, field.TypeTime, value)
	}
	if _u.mutation.ScanDayCleared() {
		_spec.ClearField(auditlog.FieldScanDay, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditLogUpdateOne is the builder for updating a single AuditLog entity.
type AuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogMutation
}

// SetAutomationType sets the "automation_type" field.
func (_u *AuditLogUpdateOne) SetAutomationType(v string) *AuditLogUpdateOne {
	_u.mutation.SetAutomationType(v)
	return _u
}

// SetNillableAutomationType sets the "automation_type" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableAutomationType(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetAutomationType(*v)
	}
	return _u
}

// SetActionName sets the "action_name" field.
func (_u *AuditLogUpdateOne) SetActionName(v string) *AuditLogUpdateOne {
	_u.mutation.SetActionName(v)
	return _u
}

// SetNillableActionName sets the "action_name" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableActionName(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetActionName(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *AuditLogUpdateOne) SetModel(v string) *AuditLogUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableModel(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *AuditLogUpdateOne) SetRecordID(v int64) *AuditLogUpdateOne {
	_u.mutation.ResetRecordID()
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableRecordID(v *int64) *AuditLogUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// AddRecordID adds value to the "record_id" field.
func (_u *AuditLogUpdateOne) AddRecordID(v int64) *AuditLogUpdateOne {
	_u.mutation.AddRecordID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditLogUpdateOne) SetStatus(v auditlog.Status) *AuditLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableStatus(v *auditlog.Status) *AuditLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AuditLogUpdateOne) SetConfidence(v float64) *AuditLogUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableConfidence(v *float64) *AuditLogUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AuditLogUpdateOne) AddConfidence(v float64) *AuditLogUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *AuditLogUpdateOne) SetReasoning(v string) *AuditLogUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableReasoning(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *AuditLogUpdateOne) ClearReasoning() *AuditLogUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_u *AuditLogUpdateOne) SetInputSnapshot(v map[string]interface{}) *AuditLogUpdateOne {
	_u.mutation.SetInputSnapshot(v)
	return _u
}

// ClearInputSnapshot clears the value of the "input_snapshot" field.
func (_u *AuditLogUpdateOne) ClearInputSnapshot() *AuditLogUpdateOne {
	_u.mutation.ClearInputSnapshot()
	return _u
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_u *AuditLogUpdateOne) SetOutputSnapshot(v map[string]interface{}) *AuditLogUpdateOne {
	_u.mutation.SetOutputSnapshot(v)
	return _u
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (_u *AuditLogUpdateOne) ClearOutputSnapshot() *AuditLogUpdateOne {
	_u.mutation.ClearOutputSnapshot()
	return _u
}

// SetChangesMade sets the "changes_made" field.
func (_u *AuditLogUpdateOne) SetChangesMade(v map[string]interface{}) *AuditLogUpdateOne {
	_u.mutation.SetChangesMade(v)
	return _u
}

// ClearChangesMade clears the value of the "changes_made" field.
func (_u *AuditLogUpdateOne) ClearChangesMade() *AuditLogUpdateOne {
	_u.mutation.ClearChangesMade()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AuditLogUpdateOne) SetErrorMessage(v string) *AuditLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableErrorMessage(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AuditLogUpdateOne) ClearErrorMessage() *AuditLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *AuditLogUpdateOne) SetExecutedAt(v time.Time) *AuditLogUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableExecutedAt(v *time.Time) *AuditLogUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *AuditLogUpdateOne) ClearExecutedAt() *AuditLogUpdateOne {
	_u.mutation.ClearExecutedAt()
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *AuditLogUpdateOne) SetApprovedBy(v string) *AuditLogUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableApprovedBy(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *AuditLogUpdateOne) ClearApprovedBy() *AuditLogUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AuditLogUpdateOne) SetTokensUsed(v int) *AuditLogUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableTokensUsed(v *int) *AuditLogUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AuditLogUpdateOne) AddTokensUsed(v int) *AuditLogUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetScanDay sets the "scan_day" field.
func (_u *AuditLogUpdateOne) SetScanDay(v time.Time) *AuditLogUpdateOne {
	_u.mutation.SetScanDay(v)
	return _u
}

// SetNillableScanDay sets the "scan_day" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableScanDay(v *time.Time) *AuditLogUpdateOne {
	if v != nil {
		_u.SetScanDay(*v)
	}
	return _u
}

// ClearScanDay clears the value of the "scan_day" field.
func (_u *AuditLogUpdateOne) ClearScanDay() *AuditLogUpdateOne {
	_u.mutation.ClearScanDay()
	return _u
}

// Mutation returns the AuditLogMutation object of the builder.
func (_u *AuditLogUpdateOne) Mutation() *AuditLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (_u *AuditLogUpdateOne) Where(ps ...predicate.AuditLog) *AuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditLogUpdateOne) Select(field string, fields ...string) *AuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditLog entity.
func (_u *AuditLogUpdateOne) Save(ctx context.Context) (*AuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogUpdateOne) SaveX(ctx context.Context) *AuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditLogUpdateOne) sqlSave(ctx context.Context) (_node *AuditLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlog.FieldID)
		for _, f := range fields {
			if !auditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlog.FieldID {
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
		_spec.SetField(auditlog.FieldAutomationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActionName(); ok {
		_spec.SetField(auditlog.FieldActionName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(auditlog.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(auditlog.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRecordID(); ok {
		_spec.AddField(auditlog.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(auditlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(auditlog.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(auditlog.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(auditlog.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.InputSnapshot(); ok {
		_spec.SetField(auditlog.FieldInputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.InputSnapshotCleared() {
		_spec.ClearField(auditlog.FieldInputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSnapshot(); ok {
		_spec.SetField(auditlog.FieldOutputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.OutputSnapshotCleared() {
		_spec.ClearField(auditlog.FieldOutputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChangesMade(); ok {
		_spec.SetField(auditlog.FieldChangesMade, field.TypeJSON, value)
	}
	if _u.mutation.ChangesMadeCleared() {
		_spec.ClearField(auditlog.FieldChangesMade, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(auditlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(auditlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(auditlog.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(auditlog.FieldExecutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(auditlog.FieldApprovedBy, field.TypeString, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(auditlog.FieldApprovedBy, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(auditlog.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(auditlog.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScanDay(); ok {
		_spec.SetField(auditlog.FieldScanDay, field.TypeTime, value)
	}
	if _u.mutation.ScanDayCleared() {
		_spec.ClearField(auditlog.FieldScanDay, field.TypeTime)
	}
	_node = &AuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/auditlog"
)

// AuditLogCreate is the builder for creating a AuditLog entity.
type AuditLogCreate struct {
	config
	mutation *AuditLogMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditLogCreate) SetCreatedAt(v time.Time) *AuditLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableCreatedAt(v *time.Time) *AuditLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAutomationType sets the "automation_type" field.
func (_c *AuditLogCreate) SetAutomationType(v string) *AuditLogCreate {
	_c.mutation.SetAutomationType(v)
	return _c
}

// SetActionName sets the "action_name" field.
func (_c *AuditLogCreate) SetActionName(v string) *AuditLogCreate {
	_c.mutation.SetActionName(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AuditLogCreate) SetModel(v string) *AuditLogCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetRecordID sets the "record_id" field.
func (_c *AuditLogCreate) SetRecordID(v int64) *AuditLogCreate {
	_c.mutation.SetRecordID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditLogCreate) SetStatus(v auditlog.Status) *AuditLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableStatus(v *auditlog.Status) *AuditLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AuditLogCreate) SetConfidence(v float64) *AuditLogCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableConfidence(v *float64) *AuditLogCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *AuditLogCreate) SetReasoning(v string) *AuditLogCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableReasoning(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_c *AuditLogCreate) SetInputSnapshot(v map[string]interface{}) *AuditLogCreate {
	_c.mutation.SetInputSnapshot(v)
	return _c
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_c *AuditLogCreate) SetOutputSnapshot(v map[string]interface{}) *AuditLogCreate {
	_c.mutation.SetOutputSnapshot(v)
	return _c
}

// SetChangesMade sets the "changes_made" field.
func (_c *AuditLogCreate) SetChangesMade(v map[string]interface{}) *AuditLogCreate {
	_c.mutation.SetChangesMade(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AuditLogCreate) SetErrorMessage(v string) *AuditLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableErrorMessage(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *AuditLogCreate) SetExecutedAt(v time.Time) *AuditLogCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableExecutedAt(v *time.Time) *AuditLogCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *AuditLogCreate) SetApprovedBy(v string) *AuditLogCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableApprovedBy(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *AuditLogCreate) SetTokensUsed(v int) *AuditLogCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableTokensUsed(v *int) *AuditLogCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetScanDay sets the "scan_day" field.
func (_c *AuditLogCreate) SetScanDay(v time.Time) *AuditLogCreate {
	_c.mutation.SetScanDay(v)
	return _c
}

// SetNillableScanDay sets the "scan_day" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableScanDay(v *time.Time) *AuditLogCreate {
	if v != nil {
		_c.SetScanDay(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditLogCreate) SetID(v string) *AuditLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditLogMutation object of the builder.
func (_c *AuditLogCreate) Mutation() *AuditLogMutation {
	return _c.mutation
}

// Save creates the AuditLog in the database.
func (_c *AuditLogCreate) Save(ctx context.Context) (*AuditLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditLogCreate) SaveX(ctx context.Context) *AuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := auditlog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := auditlog.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := auditlog.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditLogCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditLog.created_at"`)}
	}
	if _, ok := _c.mutation.AutomationType(); !ok {
		return &ValidationError{Name: "automation_type", err: errors.New(`ent: missing required field "AuditLog.automation_type"`)}
	}
	if _, ok := _c.mutation.ActionName(); !ok {
		return &ValidationError{Name: "action_name", err: errors.New(`ent: missing required field "AuditLog.action_name"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "AuditLog.model"`)}
	}
	if _, ok := _c.mutation.RecordID(); !ok {
		return &ValidationError{Name: "record_id", err: errors.New(`ent: missing required field "AuditLog.record_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := auditlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AuditLog.confidence"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "AuditLog.tokens_used"`)}
	}
	return nil
}

func (_c *AuditLogCreate) sqlSave(ctx context.Context) (*AuditLog, error) {
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
			return nil, fmt.Errorf("unexpected AuditLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditLogCreate) createSpec() (*AuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditlog.Table, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AutomationType(); ok {
		_spec.SetField(auditlog.FieldAutomationType, field.TypeString, value)
		_node.AutomationType = value
	}
	if value, ok := _c.mutation.ActionName(); ok {
		_spec.SetField(auditlog.FieldActionName, field.TypeString, value)
		_node.ActionName = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(auditlog.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.RecordID(); ok {
		_spec.SetField(auditlog.FieldRecordID, field.TypeInt64, value)
		_node.RecordID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(auditlog.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(auditlog.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.InputSnapshot(); ok {
		_spec.SetField(auditlog.FieldInputSnapshot, field.TypeJSON, value)
		_node.InputSnapshot = value
	}
	if value, ok := _c.mutation.OutputSnapshot(); ok {
		_spec.SetField(auditlog.FieldOutputSnapshot, field.TypeJSON, value)
		_node.OutputSnapshot = value
	}
	if value, ok := _c.mutation.ChangesMade(); ok {
		_spec.SetField(auditlog.FieldChangesMade, field.TypeJSON, value)
		_node.ChangesMade = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(auditlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(auditlog.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = &value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(auditlog.FieldApprovedBy, field.TypeString, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(auditlog.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.ScanDay(); ok {
		_spec.SetField(auditlog.FieldScanDay, field.TypeTime, value)
		_node.ScanDay = &value
	}
	return _node, _spec
}

// AuditLogCreateBulk is the builder for creating many AuditLog entities in bulk.
type AuditLogCreateBulk struct {
	config
	err      error
	builders []*AuditLogCreate
}

// Save creates the AuditLog entities in the database.
func (_c *AuditLogCreateBulk) Save(ctx context.Context) ([]*AuditLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditLogMutation)
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
func (_c *AuditLogCreateBulk) SaveX(ctx context.Context) []*AuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

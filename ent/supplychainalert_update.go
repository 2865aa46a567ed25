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
	"github.com/steward-ai/steward/ent/supplychainalert"
)

// SupplyChainAlertUpdate is the builder for updating SupplyChainAlert entities.
type SupplyChainAlertUpdate struct {
	config
	hooks    []Hook
	mutation *SupplyChainAlertMutation
}

// Where appends a list predicates to the SupplyChainAlertUpdate builder.
func (_u *SupplyChainAlertUpdate) Where(ps ...predicate.SupplyChainAlert) *SupplyChainAlertUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *SupplyChainAlertUpdate) SetSeverity(v supplychainalert.Severity) *SupplyChainAlertUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableSeverity(v *supplychainalert.Severity) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SupplyChainAlertUpdate) SetTitle(v string) *SupplyChainAlertUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableTitle(v *string) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SupplyChainAlertUpdate) SetBody(v string) *SupplyChainAlertUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableBody(v *string) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *SupplyChainAlertUpdate) ClearBody() *SupplyChainAlertUpdate {
	_u.mutation.ClearBody()
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SupplyChainAlertUpdate) SetSupplierID(v int64) *SupplyChainAlertUpdate {
	_u.mutation.ResetSupplierID()
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableSupplierID(v *int64) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// AddSupplierID adds value to the "supplier_id" field.
func (_u *SupplyChainAlertUpdate) AddSupplierID(v int64) *SupplyChainAlertUpdate {
	_u.mutation.AddSupplierID(v)
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *SupplyChainAlertUpdate) ClearSupplierID() *SupplyChainAlertUpdate {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetPredictionID sets the "prediction_id" field.
func (_u *SupplyChainAlertUpdate) SetPredictionID(v string) *SupplyChainAlertUpdate {
	_u.mutation.SetPredictionID(v)
	return _u
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillablePredictionID(v *string) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetPredictionID(*v)
	}
	return _u
}

// ClearPredictionID clears the value of the "prediction_id" field.
func (_u *SupplyChainAlertUpdate) ClearPredictionID() *SupplyChainAlertUpdate {
	_u.mutation.ClearPredictionID()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *SupplyChainAlertUpdate) SetAcknowledged(v bool) *SupplyChainAlertUpdate {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableAcknowledged(v *bool) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (_u *SupplyChainAlertUpdate) SetAcknowledgedBy(v string) *SupplyChainAlertUpdate {
	_u.mutation.SetAcknowledgedBy(v)
	return _u
}

// SetNillableAcknowledgedBy sets the "acknowledged_by" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableAcknowledgedBy(v *string) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetAcknowledgedBy(*v)
	}
	return _u
}

// ClearAcknowledgedBy clears the value of the "acknowledged_by" field.
func (_u *SupplyChainAlertUpdate) ClearAcknowledgedBy() *SupplyChainAlertUpdate {
	_u.mutation.ClearAcknowledgedBy()
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *SupplyChainAlertUpdate) SetAcknowledgedAt(v time.Time) *SupplyChainAlertUpdate {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *SupplyChainAlertUpdate) SetNillableAcknowledgedAt(v *time.Time) *SupplyChainAlertUpdate {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *SupplyChainAlertUpdate) ClearAcknowledgedAt() *SupplyChainAlertUpdate {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// Mutation returns the SupplyChainAlertMutation object of the builder.
func (_u *SupplyChainAlertUpdate) Mutation() *SupplyChainAlertMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplyChainAlertUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplyChainAlertUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplyChainAlertUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplyChainAlertUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplyChainAlertUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := supplychainalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SupplyChainAlert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplyChainAlertUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplychainalert.Table, supplychainalert.Columns, sqlgraph.NewFieldSpec(supplychainalert.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(supplychainalert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(supplychainalert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(supplychainalert.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(supplychainalert.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(supplychainalert.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSupplierID(); ok {
		_spec.AddField(supplychainalert.FieldSupplierID, field.TypeInt64, value)
	}
	if _u.mutation.SupplierIDCleared() {
		_spec.ClearField(supplychainalert.FieldSupplierID, field.TypeInt64)
	}
	if value, ok := _u.mutation.PredictionID(); ok {
		_spec.SetField(supplychainalert.FieldPredictionID, field.TypeString, value)
	}
	if _u.mutation.PredictionIDCleared() {
		_spec.ClearField(supplychainalert.FieldPredictionID, field.TypeString)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedBy(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledgedBy, field.TypeString, value)
	}
	if _u.mutation.AcknowledgedByCleared() {
		_spec.ClearField(supplychainalert.FieldAcknowledgedBy, field.TypeString)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(supplychainalert.FieldAcknowledgedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplychainalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplyChainAlertUpdateOne is the builder for updating a single SupplyChainAlert entity.
type SupplyChainAlertUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplyChainAlertMutation
}

// SetSeverity sets the "severity" field.
func (_u *SupplyChainAlertUpdateOne) SetSeverity(v supplychainalert.Severity) *SupplyChainAlertUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableSeverity(v *supplychainalert.Severity) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SupplyChainAlertUpdateOne) SetTitle(v string) *SupplyChainAlertUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableTitle(v *string) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SupplyChainAlertUpdateOne) SetBody(v string) *SupplyChainAlertUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableBody(v *string) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// ClearBody clears the value of the "body" field.
func (_u *SupplyChainAlertUpdateOne) ClearBody() *SupplyChainAlertUpdateOne {
	_u.mutation.ClearBody()
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SupplyChainAlertUpdateOne) SetSupplierID(v int64) *SupplyChainAlertUpdateOne {
	_u.mutation.ResetSupplierID()
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableSupplierID(v *int64) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// AddSupplierID adds value to the "supplier_id" field.
func (_u *SupplyChainAlertUpdateOne) AddSupplierID(v int64) *SupplyChainAlertUpdateOne {
	_u.mutation.AddSupplierID(v)
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *SupplyChainAlertUpdateOne) ClearSupplierID() *SupplyChainAlertUpdateOne {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetPredictionID sets the "prediction_id" field.
func (_u *SupplyChainAlertUpdateOne) SetPredictionID(v string) *SupplyChainAlertUpdateOne {
	_u.mutation.SetPredictionID(v)
	return _u
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillablePredictionID(v *string) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetPredictionID(*v)
	}
	return _u
}

// ClearPredictionID clears the value of the "prediction_id" field.
func (_u *SupplyChainAlertUpdateOne) ClearPredictionID() *SupplyChainAlertUpdateOne {
	_u.mutation.ClearPredictionID()
	return _u
}

// SetAcknowledged sets the "acknowledged" field.
func (_u *SupplyChainAlertUpdateOne) SetAcknowledged(v bool) *SupplyChainAlertUpdateOne {
	_u.mutation.SetAcknowledged(v)
	return _u
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableAcknowledged(v *bool) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledged(*v)
	}
	return _u
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (_u *SupplyChainAlertUpdateOne) SetAcknowledgedBy(v string) *SupplyChainAlertUpdateOne {
	_u.mutation.SetAcknowledgedBy(v)
	return _u
}

// SetNillableAcknowledgedBy sets the "acknowledged_by" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableAcknowledgedBy(v *string) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedBy(*v)
	}
	return _u
}

// ClearAcknowledgedBy clears the value of the "acknowledged_by" field.
func (_u *SupplyChainAlertUpdateOne) ClearAcknowledgedBy() *SupplyChainAlertUpdateOne {
	_u.mutation.ClearAcknowledgedBy()
	return _u
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_u *SupplyChainAlertUpdateOne) SetAcknowledgedAt(v time.Time) *SupplyChainAlertUpdateOne {
	_u.mutation.SetAcknowledgedAt(v)
	return _u
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_u *SupplyChainAlertUpdateOne) SetNillableAcknowledgedAt(v *time.Time) *SupplyChainAlertUpdateOne {
	if v != nil {
		_u.SetAcknowledgedAt(*v)
	}
	return _u
}

// ClearAcknowledgedAt clears the value of the "acknowledged_at" field.
func (_u *SupplyChainAlertUpdateOne) ClearAcknowledgedAt() *SupplyChainAlertUpdateOne {
	_u.mutation.ClearAcknowledgedAt()
	return _u
}

// Mutation returns the SupplyChainAlertMutation object of the builder.
func (_u *SupplyChainAlertUpdateOne) Mutation() *SupplyChainAlertMutation {
	return _u.mutation
}

// Where appends a list predicates to the SupplyChainAlertUpdate builder.
func (_u *SupplyChainAlertUpdateOne) Where(ps ...predicate.SupplyChainAlert) *SupplyChainAlertUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplyChainAlertUpdateOne) Select(field string, fields ...string) *SupplyChainAlertUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplyChainAlert entity.
func (_u *SupplyChainAlertUpdateOne) Save(ctx context.Context) (*SupplyChainAlert, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplyChainAlertUpdateOne) SaveX(ctx context.Context) *SupplyChainAlert {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplyChainAlertUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplyChainAlertUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplyChainAlertUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := supplychainalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SupplyChainAlert.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplyChainAlertUpdateOne) sqlSave(ctx context.Context) (_node *SupplyChainAlert, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplychainalert.Table, supplychainalert.Columns, sqlgraph.NewFieldSpec(supplychainalert.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplyChainAlert.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplychainalert.FieldID)
		for _, f := range fields {
			if !supplychainalert.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplychainalert.FieldID {
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
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(supplychainalert.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(supplychainalert.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(supplychainalert.FieldBody, field.TypeString, value)
	}
	if _u.mutation.BodyCleared() {
		_spec.ClearField(supplychainalert.FieldBody, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(supplychainalert.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSupplierID(); ok {
		_spec.AddField(supplychainalert.FieldSupplierID, field.TypeInt64, value)
	}
	if _u.mutation.SupplierIDCleared() {
		_spec.ClearField(supplychainalert.FieldSupplierID, field.TypeInt64)
	}
	if value, ok := _u.mutation.PredictionID(); ok {
		_spec.SetField(supplychainalert.FieldPredictionID, field.TypeString, value)
	}
	if _u.mutation.PredictionIDCleared() {
		_spec.ClearField(supplychainalert.FieldPredictionID, field.TypeString)
	}
	if value, ok := _u.mutation.Acknowledged(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AcknowledgedBy(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledgedBy, field.TypeString, value)
	}
	if _u.mutation.AcknowledgedByCleared() {
		_spec.ClearField(supplychainalert.FieldAcknowledgedBy, field.TypeString)
	}
	if value, ok := _u.mutation.AcknowledgedAt(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledgedAt, field.TypeTime, value)
	}
	if _u.mutation.AcknowledgedAtCleared() {
		_spec.ClearField(supplychainalert.FieldAcknowledgedAt, field.TypeTime)
	}
	_node = &SupplyChainAlert{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplychainalert.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

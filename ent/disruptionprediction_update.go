// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/disruptionprediction"
	"github.com/steward-ai/steward/ent/predicate"
)

// DisruptionPredictionUpdate is the builder for updating DisruptionPrediction entities.
type DisruptionPredictionUpdate struct {
	config
	hooks    []Hook
	mutation *DisruptionPredictionMutation
}

// Where appends a list predicates to the DisruptionPredictionUpdate builder.
func (_u *DisruptionPredictionUpdate) Where(ps ...predicate.DisruptionPrediction) *DisruptionPredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *DisruptionPredictionUpdate) SetSupplierID(v int64) *DisruptionPredictionUpdate {
	_u.mutation.ResetSupplierID()
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillableSupplierID(v *int64) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// AddSupplierID adds value to the "supplier_id" field.
func (_u *DisruptionPredictionUpdate) AddSupplierID(v int64) *DisruptionPredictionUpdate {
	_u.mutation.AddSupplierID(v)
	return _u
}

// SetPurchaseOrderID sets the "purchase_order_id" field.
func (_u *DisruptionPredictionUpdate) SetPurchaseOrderID(v int64) *DisruptionPredictionUpdate {
	_u.mutation.ResetPurchaseOrderID()
	_u.mutation.SetPurchaseOrderID(v)
	return _u
}

// SetNillablePurchaseOrderID sets the "purchase_order_id" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillablePurchaseOrderID(v *int64) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetPurchaseOrderID(*v)
	}
	return _u
}

// AddPurchaseOrderID adds value to the "purchase_order_id" field.
func (_u *DisruptionPredictionUpdate) AddPurchaseOrderID(v int64) *DisruptionPredictionUpdate {
	_u.mutation.AddPurchaseOrderID(v)
	return _u
}

// ClearPurchaseOrderID clears the value of the "purchase_order_id" field.
func (_u *DisruptionPredictionUpdate) ClearPurchaseOrderID() *DisruptionPredictionUpdate {
	_u.mutation.ClearPurchaseOrderID()
	return _u
}

// SetDisruptionType sets the "disruption_type" field.
func (_u *DisruptionPredictionUpdate) SetDisruptionType(v disruptionprediction.DisruptionType) *DisruptionPredictionUpdate {
	_u.mutation.SetDisruptionType(v)
	return _u
}

// SetNillableDisruptionType sets the "disruption_type" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillableDisruptionType(v *disruptionprediction.DisruptionType) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetDisruptionType(*v)
	}
	return _u
}

// SetProbability sets the "probability" field.
func (_u *DisruptionPredictionUpdate) SetProbability(v float64) *DisruptionPredictionUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillableProbability(v *float64) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *DisruptionPredictionUpdate) AddProbability(v float64) *DisruptionPredictionUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// SetPredictedDate sets the "predicted_date" field.
func (_u *DisruptionPredictionUpdate) SetPredictedDate(v time.Time) *DisruptionPredictionUpdate {
	_u.mutation.SetPredictedDate(v)
	return _u
}

// SetNillablePredictedDate sets the "predicted_date" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillablePredictedDate(v *time.Time) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetPredictedDate(*v)
	}
	return _u
}

// ClearPredictedDate clears the value of the "predicted_date" field.
func (_u *DisruptionPredictionUpdate) ClearPredictedDate() *DisruptionPredictionUpdate {
	_u.mutation.ClearPredictedDate()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *DisruptionPredictionUpdate) SetRationale(v string) *DisruptionPredictionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillableRationale(v *string) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *DisruptionPredictionUpdate) ClearRationale() *DisruptionPredictionUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetSuggestedActions sets the "suggested_actions" field.
func (_u *DisruptionPredictionUpdate) SetSuggestedActions(v []map[string]interface{}) *DisruptionPredictionUpdate {
	_u.mutation.SetSuggestedActions(v)
	return _u
}

// AppendSuggestedActions appends value to the "suggested_actions" field.
func (_u *DisruptionPredictionUpdate) AppendSuggestedActions(v []map[string]interface{}) *DisruptionPredictionUpdate {
	_u.mutation.AppendSuggestedActions(v)
	return _u
}

// ClearSuggestedActions clears the value of the "suggested_actions" field.
func (_u *DisruptionPredictionUpdate) ClearSuggestedActions() *DisruptionPredictionUpdate {
	_u.mutation.ClearSuggestedActions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DisruptionPredictionUpdate) SetStatus(v disruptionprediction.Status) *DisruptionPredictionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DisruptionPredictionUpdate) SetNillableStatus(v *disruptionprediction.Status) *DisruptionPredictionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DisruptionPredictionMutation object of the builder.
func (_u *DisruptionPredictionUpdate) Mutation() *DisruptionPredictionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DisruptionPredictionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DisruptionPredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DisruptionPredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DisruptionPredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DisruptionPredictionUpdate) check() error {
	if v, ok := _u.mutation.DisruptionType(); ok {
		if err := disruptionprediction.DisruptionTypeValidator(v); err != nil {
			return &ValidationError{Name: "disruption_type", err: fmt.Errorf(`ent: validator failed for field "DisruptionPrediction.disruption_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := disruptionprediction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DisruptionPrediction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DisruptionPredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(disruptionprediction.Table, disruptionprediction.Columns, sqlgraph.NewFieldSpec(disruptionprediction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(disruptionprediction.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSupplierID(); ok {
		_spec.AddField(disruptionprediction.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PurchaseOrderID(); ok {
		_spec.SetField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPurchaseOrderID(); ok {
		_spec.AddField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64, value)
	}
	if _u.mutation.PurchaseOrderIDCleared() {
		_spec.ClearField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DisruptionType(); ok {
		_spec.SetField(disruptionprediction.FieldDisruptionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(disruptionprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(disruptionprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PredictedDate(); ok {
		_spec.SetField(disruptionprediction.FieldPredictedDate, field.TypeTime, value)
	}
	if _u.mutation.PredictedDateCleared() {
		_spec.ClearField(disruptionprediction.FieldPredictedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(disruptionprediction.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(disruptionprediction.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedActions(); ok {
		_spec.SetField(disruptionprediction.FieldSuggestedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, disruptionprediction.FieldSuggestedActions, value)
		})
	}
	if _u.mutation.SuggestedActionsCleared() {
		_spec.ClearField(disruptionprediction.FieldSuggestedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(disruptionprediction.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{disruptionprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DisruptionPredictionUpdateOne is the builder for updating a single DisruptionPrediction entity.
type DisruptionPredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DisruptionPredictionMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *DisruptionPredictionUpdateOne) SetSupplierID(v int64) *DisruptionPredictionUpdateOne {
	_u.mutation.ResetSupplierID()
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillableSupplierID(v *int64) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// AddSupplierID adds value to the "supplier_id" field.
func (_u *DisruptionPredictionUpdateOne) AddSupplierID(v int64) *DisruptionPredictionUpdateOne {
	_u.mutation.AddSupplierID(v)
	return _u
}

// SetPurchaseOrderID sets the "purchase_order_id" field.
func (_u *DisruptionPredictionUpdateOne) SetPurchaseOrderID(v int64) *DisruptionPredictionUpdateOne {
	_u.mutation.ResetPurchaseOrderID()
	_u.mutation.SetPurchaseOrderID(v)
	return _u
}

// SetNillablePurchaseOrderID sets the "purchase_order_id" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillablePurchaseOrderID(v *int64) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetPurchaseOrderID(*v)
	}
	return _u
}

// AddPurchaseOrderID adds value to the "purchase_order_id" field.
func (_u *DisruptionPredictionUpdateOne) AddPurchaseOrderID(v int64) *DisruptionPredictionUpdateOne {
	_u.mutation.AddPurchaseOrderID(v)
	return _u
}

// ClearPurchaseOrderID clears the value of the "purchase_order_id" field.
func (_u *DisruptionPredictionUpdateOne) ClearPurchaseOrderID() *DisruptionPredictionUpdateOne {
	_u.mutation.ClearPurchaseOrderID()
	return _u
}

// SetDisruptionType sets the "disruption_type" field.
func (_u *DisruptionPredictionUpdateOne) SetDisruptionType(v disruptionprediction.DisruptionType) *DisruptionPredictionUpdateOne {
	_u.mutation.SetDisruptionType(v)
	return _u
}

// SetNillableDisruptionType sets the "disruption_type" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillableDisruptionType(v *disruptionprediction.DisruptionType) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetDisruptionType(*v)
	}
	return _u
}

// SetProbability sets the "probability" field.
func (_u *DisruptionPredictionUpdateOne) SetProbability(v float64) *DisruptionPredictionUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillableProbability(v *float64) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *DisruptionPredictionUpdateOne) AddProbability(v float64) *DisruptionPredictionUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// SetPredictedDate sets the "predicted_date" field.
func (_u *DisruptionPredictionUpdateOne) SetPredictedDate(v time.Time) *DisruptionPredictionUpdateOne {
	_u.mutation.SetPredictedDate(v)
	return _u
}

// SetNillablePredictedDate sets the "predicted_date" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillablePredictedDate(v *time.Time) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetPredictedDate(*v)
	}
	return _u
}

// ClearPredictedDate clears the value of the "predicted_date" field.
func (_u *DisruptionPredictionUpdateOne) ClearPredictedDate() *DisruptionPredictionUpdateOne {
	_u.mutation.ClearPredictedDate()
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *DisruptionPredictionUpdateOne) SetRationale(v string) *DisruptionPredictionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillableRationale(v *string) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *DisruptionPredictionUpdateOne) ClearRationale() *DisruptionPredictionUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetSuggestedActions sets the "suggested_actions" field.
func (_u *DisruptionPredictionUpdateOne) SetSuggestedActions(v []map[string]interface{}) *DisruptionPredictionUpdateOne {
	_u.mutation.SetSuggestedActions(v)
	return _u
}

// AppendSuggestedActions appends value to the "suggested_actions" field.
func (_u *DisruptionPredictionUpdateOne) AppendSuggestedActions(v []map[string]interface{}) *DisruptionPredictionUpdateOne {
	_u.mutation.AppendSuggestedActions(v)
	return _u
}

// ClearSuggestedActions clears the value of the "suggested_actions" field.
func (_u *DisruptionPredictionUpdateOne) ClearSuggestedActions() *DisruptionPredictionUpdateOne {
	_u.mutation.ClearSuggestedActions()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DisruptionPredictionUpdateOne) SetStatus(v disruptionprediction.Status) *DisruptionPredictionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DisruptionPredictionUpdateOne) SetNillableStatus(v *disruptionprediction.Status) *DisruptionPredictionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the DisruptionPredictionMutation object of the builder.
func (_u *DisruptionPredictionUpdateOne) Mutation() *DisruptionPredictionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DisruptionPredictionUpdate builder.
func (_u *DisruptionPredictionUpdateOne) Where(ps ...predicate.DisruptionPrediction) *DisruptionPredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DisruptionPredictionUpdateOne) Select(field string, fields ...string) *DisruptionPredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DisruptionPrediction entity.
func (_u *DisruptionPredictionUpdateOne) Save(ctx context.Context) (*DisruptionPrediction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DisruptionPredictionUpdateOne) SaveX(ctx context.Context) *DisruptionPrediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DisruptionPredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DisruptionPredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DisruptionPredictionUpdateOne) check() error {
	if v, ok := _u.mutation.DisruptionType(); ok {
		if err := disruptionprediction.DisruptionTypeValidator(v); err != nil {
			return &ValidationError{Name: "disruption_type", err: fmt.Errorf(`ent: validator failed for field "DisruptionPrediction.disruption_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := disruptionprediction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DisruptionPrediction.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DisruptionPredictionUpdateOne) sqlSave(ctx context.Context) (_node *DisruptionPrediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(disruptionprediction.Table, disruptionprediction.Columns, sqlgraph.NewFieldSpec(disruptionprediction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DisruptionPrediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, disruptionprediction.FieldID)
		for _, f := range fields {
			if !disruptionprediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != disruptionprediction.FieldID {
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
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(disruptionprediction.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSupplierID(); ok {
		_spec.AddField(disruptionprediction.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.PurchaseOrderID(); ok {
		_spec.SetField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPurchaseOrderID(); ok {
		_spec.AddField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64, value)
	}
	if _u.mutation.PurchaseOrderIDCleared() {
		_spec.ClearField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64)
	}
	if value, ok := _u.mutation.DisruptionType(); ok {
		_spec.SetField(disruptionprediction.FieldDisruptionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(disruptionprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(disruptionprediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PredictedDate(); ok {
		_spec.SetField(disruptionprediction.FieldPredictedDate, field.TypeTime, value)
	}
	if _u.mutation.PredictedDateCleared() {
		_spec.ClearField(disruptionprediction.FieldPredictedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(disruptionprediction.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(disruptionprediction.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedActions(); ok {
		_spec.SetField(disruptionprediction.FieldSuggestedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, disruptionprediction.FieldSuggestedActions, value)
		})
	}
	if _u.mutation.SuggestedActionsCleared() {
		_spec.ClearField(disruptionprediction.FieldSuggestedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(disruptionprediction.FieldStatus, field.TypeEnum, value)
	}
	_node = &DisruptionPrediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{disruptionprediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

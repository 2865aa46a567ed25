// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
)

// SupplierRiskFactorUpdate is the builder for updating SupplierRiskFactor entities.
type SupplierRiskFactorUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierRiskFactorMutation
}

// Where appends a list predicates to the SupplierRiskFactorUpdate builder.
func (_u *SupplierRiskFactorUpdate) Where(ps ...predicate.SupplierRiskFactor) *SupplierRiskFactorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFactorName sets the "factor_name" field.
func (_u *SupplierRiskFactorUpdate) SetFactorName(v string) *SupplierRiskFactorUpdate {
	_u.mutation.SetFactorName(v)
	return _u
}

// SetNillableFactorName sets the "factor_name" field if the given value is not nil.
func (_u *SupplierRiskFactorUpdate) SetNillableFactorName(v *string) *SupplierRiskFactorUpdate {
	if v != nil {
		_u.SetFactorName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *SupplierRiskFactorUpdate) SetWeight(v float64) *SupplierRiskFactorUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *SupplierRiskFactorUpdate) SetNillableWeight(v *float64) *SupplierRiskFactorUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *SupplierRiskFactorUpdate) AddWeight(v float64) *SupplierRiskFactorUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *SupplierRiskFactorUpdate) SetValue(v float64) *SupplierRiskFactorUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SupplierRiskFactorUpdate) SetNillableValue(v *float64) *SupplierRiskFactorUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SupplierRiskFactorUpdate) AddValue(v float64) *SupplierRiskFactorUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *SupplierRiskFactorUpdate) SetEvidence(v map[string]interface{}) *SupplierRiskFactorUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *SupplierRiskFactorUpdate) ClearEvidence() *SupplierRiskFactorUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// Mutation returns the SupplierRiskFactorMutation object of the builder.
func (_u *SupplierRiskFactorUpdate) Mutation() *SupplierRiskFactorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierRiskFactorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierRiskFactorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierRiskFactorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierRiskFactorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierRiskFactorUpdate) check() error {
	if _u.mutation.RiskScoreCleared() && len(_u.mutation.RiskScoreIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierRiskFactor.risk_score"`)
	}
	return nil
}

func (_u *SupplierRiskFactorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplierriskfactor.Table, supplierriskfactor.Columns, sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FactorName(); ok {
		_spec.SetField(supplierriskfactor.FieldFactorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(supplierriskfactor.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(supplierriskfactor.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(supplierriskfactor.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(supplierriskfactor.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(supplierriskfactor.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(supplierriskfactor.FieldEvidence, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplierriskfactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierRiskFactorUpdateOne is the builder for updating a single SupplierRiskFactor entity.
type SupplierRiskFactorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierRiskFactorMutation
}

// SetFactorName sets the "factor_name" field.
func (_u *SupplierRiskFactorUpdateOne) SetFactorName(v string) *SupplierRiskFactorUpdateOne {
	_u.mutation.SetFactorName(v)
	return _u
}

// SetNillableFactorName sets the "factor_name" field if the given value is not nil.
func (_u *SupplierRiskFactorUpdateOne) SetNillableFactorName(v *string) *SupplierRiskFactorUpdateOne {
	if v != nil {
		_u.SetFactorName(*v)
	}
	return _u
}

// SetWeight sets the "weight" field.
func (_u *SupplierRiskFactorUpdateOne) SetWeight(v float64) *SupplierRiskFactorUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *SupplierRiskFactorUpdateOne) SetNillableWeight(v *float64) *SupplierRiskFactorUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *SupplierRiskFactorUpdateOne) AddWeight(v float64) *SupplierRiskFactorUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetValue sets the "value" field.
func (_u *SupplierRiskFactorUpdateOne) SetValue(v float64) *SupplierRiskFactorUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *SupplierRiskFactorUpdateOne) SetNillableValue(v *float64) *SupplierRiskFactorUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *SupplierRiskFactorUpdateOne) AddValue(v float64) *SupplierRiskFactorUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *SupplierRiskFactorUpdateOne) SetEvidence(v map[string]interface{}) *SupplierRiskFactorUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *SupplierRiskFactorUpdateOne) ClearEvidence() *SupplierRiskFactorUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// Mutation returns the SupplierRiskFactorMutation object of the builder.
func (_u *SupplierRiskFactorUpdateOne) Mutation() *SupplierRiskFactorMutation {
	return _u.mutation
}

// Where appends a list predicates to the SupplierRiskFactorUpdate builder.
func (_u *SupplierRiskFactorUpdateOne) Where(ps ...predicate.SupplierRiskFactor) *SupplierRiskFactorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierRiskFactorUpdateOne) Select(field string, fields ...string) *SupplierRiskFactorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplierRiskFactor entity.
func (_u *SupplierRiskFactorUpdateOne) Save(ctx context.Context) (*SupplierRiskFactor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierRiskFactorUpdateOne) SaveX(ctx context.Context) *SupplierRiskFactor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierRiskFactorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierRiskFactorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierRiskFactorUpdateOne) check() error {
	if _u.mutation.RiskScoreCleared() && len(_u.mutation.RiskScoreIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierRiskFactor.risk_score"`)
	}
	return nil
}

func (_u *SupplierRiskFactorUpdateOne) sqlSave(ctx context.Context) (_node *SupplierRiskFactor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplierriskfactor.Table, supplierriskfactor.Columns, sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplierRiskFactor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplierriskfactor.FieldID)
		for _, f := range fields {
			if !supplierriskfactor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplierriskfactor.FieldID {
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
	if value, ok := _u.mutation.FactorName(); ok {
		_spec.SetField(supplierriskfactor.FieldFactorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(supplierriskfactor.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(supplierriskfactor.FieldWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(supplierriskfactor.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(supplierriskfactor.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(supplierriskfactor.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(supplierriskfactor.FieldEvidence, field.TypeJSON)
	}
	_node = &SupplierRiskFactor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplierriskfactor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/steward-ai/steward/ent/creditscore"
	"github.com/steward-ai/steward/ent/predicate"
)

// CreditScoreUpdate is the builder for updating CreditScore entities.
type CreditScoreUpdate struct {
	config
	hooks    []Hook
	mutation *CreditScoreMutation
}

// Where appends a list predicates to the CreditScoreUpdate builder.
func (_u *CreditScoreUpdate) Where(ps ...predicate.CreditScore) *CreditScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *CreditScoreUpdate) SetCustomerID(v int64) *CreditScoreUpdate {
	_u.mutation.ResetCustomerID()
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableCustomerID(v *int64) *CreditScoreUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// AddCustomerID adds value to the "customer_id" field.
func (_u *CreditScoreUpdate) AddCustomerID(v int64) *CreditScoreUpdate {
	_u.mutation.AddCustomerID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CreditScoreUpdate) SetScore(v float64) *CreditScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableScore(v *float64) *CreditScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CreditScoreUpdate) AddScore(v float64) *CreditScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *CreditScoreUpdate) SetRiskTier(v creditscore.RiskTier) *CreditScoreUpdate {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableRiskTier(v *creditscore.RiskTier) *CreditScoreUpdate {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetCreditLimit sets the "credit_limit" field.
func (_u *CreditScoreUpdate) SetCreditLimit(v float64) *CreditScoreUpdate {
	_u.mutation.ResetCreditLimit()
	_u.mutation.SetCreditLimit(v)
	return _u
}

// SetNillableCreditLimit sets the "credit_limit" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableCreditLimit(v *float64) *CreditScoreUpdate {
	if v != nil {
		_u.SetCreditLimit(*v)
	}
	return _u
}

// AddCreditLimit adds value to the "credit_limit" field.
func (_u *CreditScoreUpdate) AddCreditLimit(v float64) *CreditScoreUpdate {
	_u.mutation.AddCreditLimit(v)
	return _u
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (_u *CreditScoreUpdate) SetOutstandingBalance(v float64) *CreditScoreUpdate {
	_u.mutation.ResetOutstandingBalance()
	_u.mutation.SetOutstandingBalance(v)
	return _u
}

// SetNillableOutstandingBalance sets the "outstanding_balance" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableOutstandingBalance(v *float64) *CreditScoreUpdate {
	if v != nil {
		_u.SetOutstandingBalance(*v)
	}
	return _u
}

// AddOutstandingBalance adds value to the "outstanding_balance" field.
func (_u *CreditScoreUpdate) AddOutstandingBalance(v float64) *CreditScoreUpdate {
	_u.mutation.AddOutstandingBalance(v)
	return _u
}

// SetHoldActive sets the "hold_active" field.
func (_u *CreditScoreUpdate) SetHoldActive(v bool) *CreditScoreUpdate {
	_u.mutation.SetHoldActive(v)
	return _u
}

// SetNillableHoldActive sets the "hold_active" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableHoldActive(v *bool) *CreditScoreUpdate {
	if v != nil {
		_u.SetHoldActive(*v)
	}
	return _u
}

// SetHoldReason sets the "hold_reason" field.
func (_u *CreditScoreUpdate) SetHoldReason(v string) *CreditScoreUpdate {
	_u.mutation.SetHoldReason(v)
	return _u
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableHoldReason(v *string) *CreditScoreUpdate {
	if v != nil {
		_u.SetHoldReason(*v)
	}
	return _u
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (_u *CreditScoreUpdate) ClearHoldReason() *CreditScoreUpdate {
	_u.mutation.ClearHoldReason()
	return _u
}

// SetFactors sets the "factors" field.
func (_u *CreditScoreUpdate) SetFactors(v map[string]interface{}) *CreditScoreUpdate {
	_u.mutation.SetFactors(v)
	return _u
}

// ClearFactors clears the value of the "factors" field.
func (_u *CreditScoreUpdate) ClearFactors() *CreditScoreUpdate {
	_u.mutation.ClearFactors()
	return _u
}

// SetCalculatedAt sets the "calculated_at" field.
func (_u *CreditScoreUpdate) SetCalculatedAt(v time.Time) *CreditScoreUpdate {
	_u.mutation.SetCalculatedAt(v)
	return _u
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_u *CreditScoreUpdate) SetNillableCalculatedAt(v *time.Time) *CreditScoreUpdate {
	if v != nil {
		_u.SetCalculatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditScoreUpdate) SetUpdatedAt(v time.Time) *CreditScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreditScoreMutation object of the builder.
func (_u *CreditScoreUpdate) Mutation() *CreditScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creditscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditScoreUpdate) check() error {
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := creditscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "CreditScore.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *CreditScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditscore.Table, creditscore.Columns, sqlgraph.NewFieldSpec(creditscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(creditscore.FieldCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCustomerID(); ok {
		_spec.AddField(creditscore.FieldCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(creditscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(creditscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(creditscore.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreditLimit(); ok {
		_spec.SetField(creditscore.FieldCreditLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditLimit(); ok {
		_spec.AddField(creditscore.FieldCreditLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutstandingBalance(); ok {
		_spec.SetField(creditscore.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutstandingBalance(); ok {
		_spec.AddField(creditscore.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HoldActive(); ok {
		_spec.SetField(creditscore.FieldHoldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HoldReason(); ok {
		_spec.SetField(creditscore.FieldHoldReason, field.TypeString, value)
	}
	if _u.mutation.HoldReasonCleared() {
		_spec.ClearField(creditscore.FieldHoldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(creditscore.FieldFactors, field.TypeJSON, value)
	}
	if _u.mutation.FactorsCleared() {
		_spec.ClearField(creditscore.FieldFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CalculatedAt(); ok {
		_spec.SetField(creditscore.FieldCalculatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creditscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditScoreUpdateOne is the builder for updating a single CreditScore entity.
type CreditScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditScoreMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *CreditScoreUpdateOne) SetCustomerID(v int64) *CreditScoreUpdateOne {
	_u.mutation.ResetCustomerID()
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableCustomerID(v *int64) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// AddCustomerID adds value to the "customer_id" field.
func (_u *CreditScoreUpdateOne) AddCustomerID(v int64) *CreditScoreUpdateOne {
	_u.mutation.AddCustomerID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CreditScoreUpdateOne) SetScore(v float64) *CreditScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableScore(v *float64) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CreditScoreUpdateOne) AddScore(v float64) *CreditScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *CreditScoreUpdateOne) SetRiskTier(v creditscore.RiskTier) *CreditScoreUpdateOne {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableRiskTier(v *creditscore.RiskTier) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetCreditLimit sets the "credit_limit" field.
func (_u *CreditScoreUpdateOne) SetCreditLimit(v float64) *CreditScoreUpdateOne {
	_u.mutation.ResetCreditLimit()
	_u.mutation.SetCreditLimit(v)
	return _u
}

// SetNillableCreditLimit sets the "credit_limit" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableCreditLimit(v *float64) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetCreditLimit(*v)
	}
	return _u
}

// AddCreditLimit adds value to the "credit_limit" field.
func (_u *CreditScoreUpdateOne) AddCreditLimit(v float64) *CreditScoreUpdateOne {
	_u.mutation.AddCreditLimit(v)
	return _u
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (_u *CreditScoreUpdateOne) SetOutstandingBalance(v float64) *CreditScoreUpdateOne {
	_u.mutation.ResetOutstandingBalance()
	_u.mutation.SetOutstandingBalance(v)
	return _u
}

// SetNillableOutstandingBalance sets the "outstanding_balance" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableOutstandingBalance(v *float64) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetOutstandingBalance(*v)
	}
	return _u
}

// AddOutstandingBalance adds value to the "outstanding_balance" field.
func (_u *CreditScoreUpdateOne) AddOutstandingBalance(v float64) *CreditScoreUpdateOne {
	_u.mutation.AddOutstandingBalance(v)
	return _u
}

// SetHoldActive sets the "hold_active" field.
func (_u *CreditScoreUpdateOne) SetHoldActive(v bool) *CreditScoreUpdateOne {
	_u.mutation.SetHoldActive(v)
	return _u
}

// SetNillableHoldActive sets the "hold_active" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableHoldActive(v *bool) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetHoldActive(*v)
	}
	return _u
}

// SetHoldReason sets the "hold_reason" field.
func (_u *CreditScoreUpdateOne) SetHoldReason(v string) *CreditScoreUpdateOne {
	_u.mutation.SetHoldReason(v)
	return _u
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableHoldReason(v *string) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetHoldReason(*v)
	}
	return _u
}

// ClearHoldReason clears the value of the "hold_reason" field.
func (_u *CreditScoreUpdateOne) ClearHoldReason() *CreditScoreUpdateOne {
	_u.mutation.ClearHoldReason()
	return _u
}

// SetFactors sets the "factors" field.
func (_u *CreditScoreUpdateOne) SetFactors(v map[string]interface{}) *CreditScoreUpdateOne {
	_u.mutation.SetFactors(v)
	return _u
}

// ClearFactors clears the value of the "factors" field.
func (_u *CreditScoreUpdateOne) ClearFactors() *CreditScoreUpdateOne {
	_u.mutation.ClearFactors()
	return _u
}

// SetCalculatedAt sets the "calculated_at" field.
func (_u *CreditScoreUpdateOne) SetCalculatedAt(v time.Time) *CreditScoreUpdateOne {
	_u.mutation.SetCalculatedAt(v)
	return _u
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_u *CreditScoreUpdateOne) SetNillableCalculatedAt(v *time.Time) *CreditScoreUpdateOne {
	if v != nil {
		_u.SetCalculatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditScoreUpdateOne) SetUpdatedAt(v time.Time) *CreditScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CreditScoreMutation object of the builder.
func (_u *CreditScoreUpdateOne) Mutation() *CreditScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the CreditScoreUpdate builder.
func (_u *CreditScoreUpdateOne) Where(ps ...predicate.CreditScore) *CreditScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditScoreUpdateOne) Select(field string, fields ...string) *CreditScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditScore entity.
func (_u *CreditScoreUpdateOne) Save(ctx context.Context) (*CreditScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditScoreUpdateOne) SaveX(ctx context.Context) *CreditScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := creditscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditScoreUpdateOne) check() error {
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := creditscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "CreditScore.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *CreditScoreUpdateOne) sqlSave(ctx context.Context) (_node *CreditScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditscore.Table, creditscore.Columns, sqlgraph.NewFieldSpec(creditscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditscore.FieldID)
		for _, f := range fields {
			if !creditscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditscore.FieldID {
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
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(creditscore.FieldCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCustomerID(); ok {
		_spec.AddField(creditscore.FieldCustomerID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(creditscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(creditscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(creditscore.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreditLimit(); ok {
		_spec.SetField(creditscore.FieldCreditLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditLimit(); ok {
		_spec.AddField(creditscore.FieldCreditLimit, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OutstandingBalance(); ok {
		_spec.SetField(creditscore.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOutstandingBalance(); ok {
		_spec.AddField(creditscore.FieldOutstandingBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HoldActive(); ok {
		_spec.SetField(creditscore.FieldHoldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HoldReason(); ok {
		_spec.SetField(creditscore.FieldHoldReason, field.TypeString, value)
	}
	if _u.mutation.HoldReasonCleared() {
		_spec.ClearField(creditscore.FieldHoldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Factors(); ok {
		_spec.SetField(creditscore.FieldFactors, field.TypeJSON, value)
	}
	if _u.mutation.FactorsCleared() {
		_spec.ClearField(creditscore.FieldFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.CalculatedAt(); ok {
		_spec.SetField(creditscore.FieldCalculatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(creditscore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CreditScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

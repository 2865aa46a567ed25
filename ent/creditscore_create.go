// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/creditscore"
)

// CreditScoreCreate is the builder for creating a CreditScore entity.
type CreditScoreCreate struct {
	config
	mutation *CreditScoreMutation
	hooks    []Hook
}

// SetCustomerID sets the "customer_id" field.
func (_c *CreditScoreCreate) SetCustomerID(v int64) *CreditScoreCreate {
	_c.mutation.SetCustomerID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CreditScoreCreate) SetScore(v float64) *CreditScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *CreditScoreCreate) SetRiskTier(v creditscore.RiskTier) *CreditScoreCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetCreditLimit sets the "credit_limit" field.
func (_c *CreditScoreCreate) SetCreditLimit(v float64) *CreditScoreCreate {
	_c.mutation.SetCreditLimit(v)
	return _c
}

// SetNillableCreditLimit sets the "credit_limit" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableCreditLimit(v *float64) *CreditScoreCreate {
	if v != nil {
		_c.SetCreditLimit(*v)
	}
	return _c
}

// SetOutstandingBalance sets the "outstanding_balance" field.
func (_c *CreditScoreCreate) SetOutstandingBalance(v float64) *CreditScoreCreate {
	_c.mutation.SetOutstandingBalance(v)
	return _c
}

// SetNillableOutstandingBalance sets the "outstanding_balance" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableOutstandingBalance(v *float64) *CreditScoreCreate {
	if v != nil {
		_c.SetOutstandingBalance(*v)
	}
	return _c
}

// SetHoldActive sets the "hold_active" field.
func (_c *CreditScoreCreate) SetHoldActive(v bool) *CreditScoreCreate {
	_c.mutation.SetHoldActive(v)
	return _c
}

// SetNillableHoldActive sets the "hold_active" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableHoldActive(v *bool) *CreditScoreCreate {
	if v != nil {
		_c.SetHoldActive(*v)
	}
	return _c
}

// SetHoldReason sets the "hold_reason" field.
func (_c *CreditScoreCreate) SetHoldReason(v string) *CreditScoreCreate {
	_c.mutation.SetHoldReason(v)
	return _c
}

// SetNillableHoldReason sets the "hold_reason" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableHoldReason(v *string) *CreditScoreCreate {
	if v != nil {
		_c.SetHoldReason(*v)
	}
	return _c
}

// SetFactors sets the "factors" field.
func (_c *CreditScoreCreate) SetFactors(v map[string]interface{}) *CreditScoreCreate {
	_c.mutation.SetFactors(v)
	return _c
}

// SetCalculatedAt sets the "calculated_at" field.
func (_c *CreditScoreCreate) SetCalculatedAt(v time.Time) *CreditScoreCreate {
	_c.mutation.SetCalculatedAt(v)
	return _c
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableCalculatedAt(v *time.Time) *CreditScoreCreate {
	if v != nil {
		_c.SetCalculatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreditScoreCreate) SetUpdatedAt(v time.Time) *CreditScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreditScoreCreate) SetNillableUpdatedAt(v *time.Time) *CreditScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditScoreCreate) SetID(v string) *CreditScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CreditScoreMutation object of the builder.
func (_c *CreditScoreCreate) Mutation() *CreditScoreMutation {
	return _c.mutation
}

// Save creates the CreditScore in the database.
func (_c *CreditScoreCreate) Save(ctx context.Context) (*CreditScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditScoreCreate) SaveX(ctx context.Context) *CreditScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditScoreCreate) defaults() {
	if _, ok := _c.mutation.CreditLimit(); !ok {
		v := creditscore.DefaultCreditLimit
		_c.mutation.SetCreditLimit(v)
	}
	if _, ok := _c.mutation.OutstandingBalance(); !ok {
		v := creditscore.DefaultOutstandingBalance
		_c.mutation.SetOutstandingBalance(v)
	}
	if _, ok := _c.mutation.HoldActive(); !ok {
		v := creditscore.DefaultHoldActive
		_c.mutation.SetHoldActive(v)
	}
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		v := creditscore.DefaultCalculatedAt()
		_c.mutation.SetCalculatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := creditscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditScoreCreate) check() error {
	if _, ok := _c.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "CreditScore.customer_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CreditScore.score"`)}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "CreditScore.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := creditscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "CreditScore.risk_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreditLimit(); !ok {
		return &ValidationError{Name: "credit_limit", err: errors.New(`ent: missing required field "CreditScore.credit_limit"`)}
	}
	if _, ok := _c.mutation.OutstandingBalance(); !ok {
		return &ValidationError{Name: "outstanding_balance", err: errors.New(`ent: missing required field "CreditScore.outstanding_balance"`)}
	}
	if _, ok := _c.mutation.HoldActive(); !ok {
		return &ValidationError{Name: "hold_active", err: errors.New(`ent: missing required field "CreditScore.hold_active"`)}
	}
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		return &ValidationError{Name: "calculated_at", err: errors.New(`ent: missing required field "CreditScore.calculated_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditScore.updated_at"`)}
	}
	return nil
}

func (_c *CreditScoreCreate) sqlSave(ctx context.Context) (*CreditScore, error) {
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
			return nil, fmt.Errorf("unexpected CreditScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditScoreCreate) createSpec() (*CreditScore, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(creditscore.Table, sqlgraph.NewFieldSpec(creditscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CustomerID(); ok {
		_spec.SetField(creditscore.FieldCustomerID, field.TypeInt64, value)
		_node.CustomerID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(creditscore.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(creditscore.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.CreditLimit(); ok {
		_spec.SetField(creditscore.FieldCreditLimit, field.TypeFloat64, value)
		_node.CreditLimit = value
	}
	if value, ok := _c.mutation.OutstandingBalance(); ok {
		_spec.SetField(creditscore.FieldOutstandingBalance, field.TypeFloat64, value)
		_node.OutstandingBalance = value
	}
	if value, ok := _c.mutation.HoldActive(); ok {
		_spec.SetField(creditscore.FieldHoldActive, field.TypeBool, value)
		_node.HoldActive = value
	}
	if value, ok := _c.mutation.HoldReason(); ok {
		_spec.SetField(creditscore.FieldHoldReason, field.TypeString, value)
		_node.HoldReason = &value
	}
	if value, ok := _c.mutation.Factors(); ok {
		_spec.SetField(creditscore.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	if value, ok := _c.mutation.CalculatedAt(); ok {
		_spec.SetField(creditscore.FieldCalculatedAt, field.TypeTime, value)
		_node.CalculatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(creditscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CreditScoreCreateBulk is the builder for creating many CreditScore entities in bulk.
type CreditScoreCreateBulk struct {
	config
	err      error
	builders []*CreditScoreCreate
}

// Save creates the CreditScore entities in the database.
func (_c *CreditScoreCreateBulk) Save(ctx context.Context) ([]*CreditScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditScoreMutation)
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
func (_c *CreditScoreCreateBulk) SaveX(ctx context.Context) []*CreditScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

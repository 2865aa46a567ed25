// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskScoreCreate is the builder for creating a SupplierRiskScore entity.
type SupplierRiskScoreCreate struct {
	config
	mutation *SupplierRiskScoreMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *SupplierRiskScoreCreate) SetSupplierID(v int64) *SupplierRiskScoreCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *SupplierRiskScoreCreate) SetScore(v float64) *SupplierRiskScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetRiskTier sets the "risk_tier" field.
func (_c *SupplierRiskScoreCreate) SetRiskTier(v supplierriskscore.RiskTier) *SupplierRiskScoreCreate {
	_c.mutation.SetRiskTier(v)
	return _c
}

// SetCalculatedAt sets the "calculated_at" field.
func (_c *SupplierRiskScoreCreate) SetCalculatedAt(v time.Time) *SupplierRiskScoreCreate {
	_c.mutation.SetCalculatedAt(v)
	return _c
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_c *SupplierRiskScoreCreate) SetNillableCalculatedAt(v *time.Time) *SupplierRiskScoreCreate {
	if v != nil {
		_c.SetCalculatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupplierRiskScoreCreate) SetUpdatedAt(v time.Time) *SupplierRiskScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupplierRiskScoreCreate) SetNillableUpdatedAt(v *time.Time) *SupplierRiskScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierRiskScoreCreate) SetID(v string) *SupplierRiskScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddFactorIDs adds the "factors" edge to the SupplierRiskFactor entity by IDs.
func (_c *SupplierRiskScoreCreate) AddFactorIDs(ids ...string) *SupplierRiskScoreCreate {
	_c.mutation.AddFactorIDs(ids...)
	return _c
}

// AddFactors adds the "factors" edges to the SupplierRiskFactor entity.
func (_c *SupplierRiskScoreCreate) AddFactors(v ...*SupplierRiskFactor) *SupplierRiskScoreCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFactorIDs(ids...)
}

// Mutation returns the SupplierRiskScoreMutation object of the builder.
func (_c *SupplierRiskScoreCreate) Mutation() *SupplierRiskScoreMutation {
	return _c.mutation
}

// Save creates the SupplierRiskScore in the database.
func (_c *SupplierRiskScoreCreate) Save(ctx context.Context) (*SupplierRiskScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierRiskScoreCreate) SaveX(ctx context.Context) *SupplierRiskScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierRiskScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierRiskScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierRiskScoreCreate) defaults() {
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		v := supplierriskscore.DefaultCalculatedAt()
		_c.mutation.SetCalculatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supplierriskscore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierRiskScoreCreate) check() error {
	if _, ok := _c.mutation.SupplierID(); !ok {
		return &ValidationError{Name: "supplier_id", err: errors.New(`ent: missing required field "SupplierRiskScore.supplier_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SupplierRiskScore.score"`)}
	}
	if _, ok := _c.mutation.RiskTier(); !ok {
		return &ValidationError{Name: "risk_tier", err: errors.New(`ent: missing required field "SupplierRiskScore.risk_tier"`)}
	}
	if v, ok := _c.mutation.RiskTier(); ok {
		if err := supplierriskscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "SupplierRiskScore.risk_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		return &ValidationError{Name: "calculated_at", err: errors.New(`ent: missing required field "SupplierRiskScore.calculated_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SupplierRiskScore.updated_at"`)}
	}
	return nil
}

func (_c *SupplierRiskScoreCreate) sqlSave(ctx context.Context) (*SupplierRiskScore, error) {
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
			return nil, fmt.Errorf("unexpected SupplierRiskScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupplierRiskScoreCreate) createSpec() (*SupplierRiskScore, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplierRiskScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplierriskscore.Table, sqlgraph.NewFieldSpec(supplierriskscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SupplierID(); ok {
		_spec.SetField(supplierriskscore.FieldSupplierID, field.TypeInt64, value)
		_node.SupplierID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(supplierriskscore.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RiskTier(); ok {
		_spec.SetField(supplierriskscore.FieldRiskTier, field.TypeEnum, value)
		_node.RiskTier = value
	}
	if value, ok := _c.mutation.CalculatedAt(); ok {
		_spec.SetField(supplierriskscore.FieldCalculatedAt, field.TypeTime, value)
		_node.CalculatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supplierriskscore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FactorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SupplierRiskScoreCreateBulk is the builder for creating many SupplierRiskScore entities in bulk.
type SupplierRiskScoreCreateBulk struct {
	config
	err      error
	builders []*SupplierRiskScoreCreate
}

// Save creates the SupplierRiskScore entities in the database.
func (_c *SupplierRiskScoreCreateBulk) Save(ctx context.Context) ([]*SupplierRiskScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplierRiskScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierRiskScoreMutation)
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
func (_c *SupplierRiskScoreCreateBulk) SaveX(ctx context.Context) []*SupplierRiskScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierRiskScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierRiskScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

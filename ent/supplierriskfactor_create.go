// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskFactorCreate is the builder for creating a SupplierRiskFactor entity.
type SupplierRiskFactorCreate struct {
	config
	mutation *SupplierRiskFactorMutation
	hooks    []Hook
}

// SetRiskScoreID sets the "risk_score_id" field.
func (_c *SupplierRiskFactorCreate) SetRiskScoreID(v string) *SupplierRiskFactorCreate {
	_c.mutation.SetRiskScoreID(v)
	return _c
}

// SetFactorName sets the "factor_name" field.
func (_c *SupplierRiskFactorCreate) SetFactorName(v string) *SupplierRiskFactorCreate {
	_c.mutation.SetFactorName(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *SupplierRiskFactorCreate) SetWeight(v float64) *SupplierRiskFactorCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *SupplierRiskFactorCreate) SetValue(v float64) *SupplierRiskFactorCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *SupplierRiskFactorCreate) SetEvidence(v map[string]interface{}) *SupplierRiskFactorCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierRiskFactorCreate) SetID(v string) *SupplierRiskFactorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRiskScore sets the "risk_score" edge to the SupplierRiskScore entity.
func (_c *SupplierRiskFactorCreate) SetRiskScore(v *SupplierRiskScore) *SupplierRiskFactorCreate {
	return _c.SetRiskScoreID(v.ID)
}

// Mutation returns the SupplierRiskFactorMutation object of the builder.
func (_c *SupplierRiskFactorCreate) Mutation() *SupplierRiskFactorMutation {
	return _c.mutation
}

// Save creates the SupplierRiskFactor in the database.
func (_c *SupplierRiskFactorCreate) Save(ctx context.Context) (*SupplierRiskFactor, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierRiskFactorCreate) SaveX(ctx context.Context) *SupplierRiskFactor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierRiskFactorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierRiskFactorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierRiskFactorCreate) check() error {
	if _, ok := _c.mutation.RiskScoreID(); !ok {
		return &ValidationError{Name: "risk_score_id", err: errors.New(`ent: missing required field "SupplierRiskFactor.risk_score_id"`)}
	}
	if _, ok := _c.mutation.FactorName(); !ok {
		return &ValidationError{Name: "factor_name", err: errors.New(`ent: missing required field "SupplierRiskFactor.factor_name"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "SupplierRiskFactor.weight"`)}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "SupplierRiskFactor.value"`)}
	}
	if len(_c.mutation.RiskScoreIDs()) == 0 {
		return &ValidationError{Name: "risk_score", err: errors.New(`ent: missing required edge "SupplierRiskFactor.risk_score"`)}
	}
	return nil
}

func (_c *SupplierRiskFactorCreate) sqlSave(ctx context.Context) (*SupplierRiskFactor, error) {
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
			return nil, fmt.Errorf("unexpected SupplierRiskFactor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupplierRiskFactorCreate) createSpec() (*SupplierRiskFactor, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplierRiskFactor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplierriskfactor.Table, sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FactorName(); ok {
		_spec.SetField(supplierriskfactor.FieldFactorName, field.TypeString, value)
		_node.FactorName = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(supplierriskfactor.FieldWeight, field.TypeFloat64, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(supplierriskfactor.FieldValue, field.TypeFloat64, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(supplierriskfactor.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if nodes := _c.mutation.RiskScoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supplierriskfactor.RiskScoreTable,
			Columns: []string{supplierriskfactor.RiskScoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RiskScoreID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SupplierRiskFactorCreateBulk is the builder for creating many SupplierRiskFactor entities in bulk.
type SupplierRiskFactorCreateBulk struct {
	config
	err      error
	builders []*SupplierRiskFactorCreate
}

// Save creates the SupplierRiskFactor entities in the database.
func (_c *SupplierRiskFactorCreateBulk) Save(ctx context.Context) ([]*SupplierRiskFactor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplierRiskFactor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierRiskFactorMutation)
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
func (_c *SupplierRiskFactorCreateBulk) SaveX(ctx context.Context) []*SupplierRiskFactor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierRiskFactorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierRiskFactorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

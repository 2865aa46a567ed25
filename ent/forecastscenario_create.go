// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/ent/forecastscenario"
)

// ForecastScenarioCreate is the builder for creating a ForecastScenario entity.
type ForecastScenarioCreate struct {
	config
	mutation *ForecastScenarioMutation
	hooks    []Hook
}

// SetForecastID sets the "forecast_id" field.
func (_c *ForecastScenarioCreate) SetForecastID(v string) *ForecastScenarioCreate {
	_c.mutation.SetForecastID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ForecastScenarioCreate) SetName(v string) *ForecastScenarioCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAdjustments sets the "adjustments" field.
func (_c *ForecastScenarioCreate) SetAdjustments(v []map[string]interface{}) *ForecastScenarioCreate {
	_c.mutation.SetAdjustments(v)
	return _c
}

// SetProjectedBalance sets the "projected_balance" field.
func (_c *ForecastScenarioCreate) SetProjectedBalance(v float64) *ForecastScenarioCreate {
	_c.mutation.SetProjectedBalance(v)
	return _c
}

// SetDelta sets the "delta" field.
func (_c *ForecastScenarioCreate) SetDelta(v float64) *ForecastScenarioCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ForecastScenarioCreate) SetID(v string) *ForecastScenarioCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetForecast sets the "forecast" edge to the CashForecast entity.
func (_c *ForecastScenarioCreate) SetForecast(v *CashForecast) *ForecastScenarioCreate {
	return _c.SetForecastID(v.ID)
}

// Mutation returns the ForecastScenarioMutation object of the builder.
func (_c *ForecastScenarioCreate) Mutation() *ForecastScenarioMutation {
	return _c.mutation
}

// Save creates the ForecastScenario in the database.
func (_c *ForecastScenarioCreate) Save(ctx context.Context) (*ForecastScenario, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ForecastScenarioCreate) SaveX(ctx context.Context) *ForecastScenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForecastScenarioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForecastScenarioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ForecastScenarioCreate) check() error {
	if _, ok := _c.mutation.ForecastID(); !ok {
		return &ValidationError{Name: "forecast_id", err: errors.New(`ent: missing required field "ForecastScenario.forecast_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ForecastScenario.name"`)}
	}
	if _, ok := _c.mutation.Adjustments(); !ok {
		return &ValidationError{Name: "adjustments", err: errors.New(`ent: missing required field "ForecastScenario.adjustments"`)}
	}
	if _, ok := _c.mutation.ProjectedBalance(); !ok {
		return &ValidationError{Name: "projected_balance", err: errors.New(`ent: missing required field "ForecastScenario.projected_balance"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "ForecastScenario.delta"`)}
	}
	if len(_c.mutation.ForecastIDs()) == 0 {
		return &ValidationError{Name: "forecast", err: errors.New(`ent: missing required edge "ForecastScenario.forecast"`)}
	}
	return nil
}

func (_c *ForecastScenarioCreate) sqlSave(ctx context.Context) (*ForecastScenario, error) {
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
			return nil, fmt.Errorf("unexpected ForecastScenario.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ForecastScenarioCreate) createSpec() (*ForecastScenario, *sqlgraph.CreateSpec) {
	var (
		_node = &ForecastScenario{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(forecastscenario.Table, sqlgraph.NewFieldSpec(forecastscenario.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(forecastscenario.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Adjustments(); ok {
		_spec.SetField(forecastscenario.FieldAdjustments, field.TypeJSON, value)
		_node.Adjustments = value
	}
	if value, ok := _c.mutation.ProjectedBalance(); ok {
		_spec.SetField(forecastscenario.FieldProjectedBalance, field.TypeFloat64, value)
		_node.ProjectedBalance = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(forecastscenario.FieldDelta, field.TypeFloat64, value)
		_node.Delta = value
	}
	if nodes := _c.mutation.ForecastIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   forecastscenario.ForecastTable,
			Columns: []string{forecastscenario.ForecastColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cashforecast.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ForecastID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ForecastScenarioCreateBulk is the builder for creating many ForecastScenario entities in bulk.
type ForecastScenarioCreateBulk struct {
	config
	err      error
	builders []*ForecastScenarioCreate
}

// Save creates the ForecastScenario entities in the database.
func (_c *ForecastScenarioCreateBulk) Save(ctx context.Context) ([]*ForecastScenario, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ForecastScenario, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ForecastScenarioMutation)
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
func (_c *ForecastScenarioCreateBulk) SaveX(ctx context.Context) []*ForecastScenario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForecastScenarioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForecastScenarioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/ent/forecastscenario"
)

// CashForecastCreate is the builder for creating a CashForecast entity.
type CashForecastCreate struct {
	config
	mutation *CashForecastMutation
	hooks    []Hook
}

// SetForecastDate sets the "forecast_date" field.
func (_c *CashForecastCreate) SetForecastDate(v time.Time) *CashForecastCreate {
	_c.mutation.SetForecastDate(v)
	return _c
}

// SetTargetDate sets the "target_date" field.
func (_c *CashForecastCreate) SetTargetDate(v time.Time) *CashForecastCreate {
	_c.mutation.SetTargetDate(v)
	return _c
}

// SetOpeningBalance sets the "opening_balance" field.
func (_c *CashForecastCreate) SetOpeningBalance(v float64) *CashForecastCreate {
	_c.mutation.SetOpeningBalance(v)
	return _c
}

// SetExpectedInflows sets the "expected_inflows" field.
func (_c *CashForecastCreate) SetExpectedInflows(v float64) *CashForecastCreate {
	_c.mutation.SetExpectedInflows(v)
	return _c
}

// SetExpectedOutflows sets the "expected_outflows" field.
func (_c *CashForecastCreate) SetExpectedOutflows(v float64) *CashForecastCreate {
	_c.mutation.SetExpectedOutflows(v)
	return _c
}

// SetProjectedBalance sets the "projected_balance" field.
func (_c *CashForecastCreate) SetProjectedBalance(v float64) *CashForecastCreate {
	_c.mutation.SetProjectedBalance(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CashForecastCreate) SetConfidence(v float64) *CashForecastCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CashForecastCreate) SetNillableConfidence(v *float64) *CashForecastCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetBreakdown sets the "breakdown" field.
func (_c *CashForecastCreate) SetBreakdown(v map[string]interface{}) *CashForecastCreate {
	_c.mutation.SetBreakdown(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CashForecastCreate) SetCreatedAt(v time.Time) *CashForecastCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CashForecastCreate) SetNillableCreatedAt(v *time.Time) *CashForecastCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CashForecastCreate) SetID(v string) *CashForecastCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddScenarioIDs adds the "scenarios" edge to the ForecastScenario entity by IDs.
func (_c *CashForecastCreate) AddScenarioIDs(ids ...string) *CashForecastCreate {
	_c.mutation.AddScenarioIDs(ids...)
	return _c
}

// AddScenarios adds the "scenarios" edges to the ForecastScenario entity.
func (_c *CashForecastCreate) AddScenarios(v ...*ForecastScenario) *CashForecastCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScenarioIDs(ids...)
}

// Mutation returns the CashForecastMutation object of the builder.
func (_c *CashForecastCreate) Mutation() *CashForecastMutation {
	return _c.mutation
}

// Save creates the CashForecast in the database.
func (_c *CashForecastCreate) Save(ctx context.Context) (*CashForecast, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CashForecastCreate) SaveX(ctx context.Context) *CashForecast {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CashForecastCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CashForecastCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CashForecastCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cashforecast.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CashForecastCreate) check() error {
	if _, ok := _c.mutation.ForecastDate(); !ok {
		return &ValidationError{Name: "forecast_date", err: errors.New(`ent: missing required field "CashForecast.forecast_date"`)}
	}
	if _, ok := _c.mutation.TargetDate(); !ok {
		return &ValidationError{Name: "target_date", err: errors.New(`ent: missing required field "CashForecast.target_date"`)}
	}
	if _, ok := _c.mutation.OpeningBalance(); !ok {
		return &ValidationError{Name: "opening_balance", err: errors.New(`ent: missing required field "CashForecast.opening_balance"`)}
	}
	if _, ok := _c.mutation.ExpectedInflows(); !ok {
		return &ValidationError{Name: "expected_inflows", err: errors.New(`ent: missing required field "CashForecast.expected_inflows"`)}
	}
	if _, ok := _c.mutation.ExpectedOutflows(); !ok {
		return &ValidationError{Name: "expected_outflows", err: errors.New(`ent: missing required field "CashForecast.expected_outflows"`)}
	}
	if _, ok := _c.mutation.ProjectedBalance(); !ok {
		return &ValidationError{Name: "projected_balance", err: errors.New(`ent: missing required field "CashForecast.projected_balance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CashForecast.created_at"`)}
	}
	return nil
}

func (_c *CashForecastCreate) sqlSave(ctx context.Context) (*CashForecast, error) {
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
			return nil, fmt.Errorf("unexpected CashForecast.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CashForecastCreate) createSpec() (*CashForecast, *sqlgraph.CreateSpec) {
	var (
		_node = &CashForecast{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cashforecast.Table, sqlgraph.NewFieldSpec(cashforecast.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ForecastDate(); ok {
		_spec.SetField(cashforecast.FieldForecastDate, field.TypeTime, value)
		_node.ForecastDate = value
	}
	if value, ok := _c.mutation.TargetDate(); ok {
		_spec.SetField(cashforecast.FieldTargetDate, field.TypeTime, value)
		_node.TargetDate = value
	}
	if value, ok := _c.mutation.OpeningBalance(); ok {
		_spec.SetField(cashforecast.FieldOpeningBalance, field.TypeFloat64, value)
		_node.OpeningBalance = value
	}
	if value, ok := _c.mutation.ExpectedInflows(); ok {
		_spec.SetField(cashforecast.FieldExpectedInflows, field.TypeFloat64, value)
		_node.ExpectedInflows = value
	}
	if value, ok := _c.mutation.ExpectedOutflows(); ok {
		_spec.SetField(cashforecast.FieldExpectedOutflows, field.TypeFloat64, value)
		_node.ExpectedOutflows = value
	}
	if value, ok := _c.mutation.ProjectedBalance(); ok {
		_spec.SetField(cashforecast.FieldProjectedBalance, field.TypeFloat64, value)
		_node.ProjectedBalance = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(cashforecast.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.Breakdown(); ok {
		_spec.SetField(cashforecast.FieldBreakdown, field.TypeJSON, value)
		_node.Breakdown = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cashforecast.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ScenariosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   cashforecast.ScenariosTable,
			Columns: []string{cashforecast.ScenariosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(forecastscenario.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CashForecastCreateBulk is the builder for creating many CashForecast entities in bulk.
type CashForecastCreateBulk struct {
	config
	err      error
	builders []*CashForecastCreate
}

// Save creates the CashForecast entities in the database.
func (_c *CashForecastCreateBulk) Save(ctx context.Context) ([]*CashForecast, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CashForecast, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CashForecastMutation)
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
func (_c *CashForecastCreateBulk) SaveX(ctx context.Context) []*CashForecast {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CashForecastCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CashForecastCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

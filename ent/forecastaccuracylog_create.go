// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/forecastaccuracylog"
)

// ForecastAccuracyLogCreate is the builder for creating a ForecastAccuracyLog entity.
type ForecastAccuracyLogCreate struct {
	config
	mutation *ForecastAccuracyLogMutation
	hooks    []Hook
}

// SetForecastID sets the "forecast_id" field.
func (_c *ForecastAccuracyLogCreate) SetForecastID(v string) *ForecastAccuracyLogCreate {
	_c.mutation.SetForecastID(v)
	return _c
}

// SetTargetDate sets the "target_date" field.
func (_c *ForecastAccuracyLogCreate) SetTargetDate(v time.Time) *ForecastAccuracyLogCreate {
	_c.mutation.SetTargetDate(v)
	return _c
}

// SetProjectedBalance sets the "projected_balance" field.
func (_c *ForecastAccuracyLogCreate) SetProjectedBalance(v float64) *ForecastAccuracyLogCreate {
	_c.mutation.SetProjectedBalance(v)
	return _c
}

// SetActualBalance sets the "actual_balance" field.
func (_c *ForecastAccuracyLogCreate) SetActualBalance(v float64) *ForecastAccuracyLogCreate {
	_c.mutation.SetActualBalance(v)
	return _c
}

// SetErrorPct sets the "error_pct" field.
func (_c *ForecastAccuracyLogCreate) SetErrorPct(v float64) *ForecastAccuracyLogCreate {
	_c.mutation.SetErrorPct(v)
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *ForecastAccuracyLogCreate) SetEvaluatedAt(v time.Time) *ForecastAccuracyLogCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *ForecastAccuracyLogCreate) SetNillableEvaluatedAt(v *time.Time) *ForecastAccuracyLogCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ForecastAccuracyLogCreate) SetID(v string) *ForecastAccuracyLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ForecastAccuracyLogMutation object of the builder.
func (_c *ForecastAccuracyLogCreate) Mutation() *ForecastAccuracyLogMutation {
	return _c.mutation
}

// Save creates the ForecastAccuracyLog in the database.
func (_c *ForecastAccuracyLogCreate) Save(ctx context.Context) (*ForecastAccuracyLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ForecastAccuracyLogCreate) SaveX(ctx context.Context) *ForecastAccuracyLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForecastAccuracyLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForecastAccuracyLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ForecastAccuracyLogCreate) defaults() {
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		v := forecastaccuracylog.DefaultEvaluatedAt()
		_c.mutation.SetEvaluatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ForecastAccuracyLogCreate) check() error {
	if _, ok := _c.mutation.ForecastID(); !ok {
		return &ValidationError{Name: "forecast_id", err: errors.New(`ent: missing required field "ForecastAccuracyLog.forecast_id"`)}
	}
	if _, ok := _c.mutation.TargetDate(); !ok {
		return &ValidationError{Name: "target_date", err: errors.New(`ent: missing required field "ForecastAccuracyLog.target_date"`)}
	}
	if _, ok := _c.mutation.ProjectedBalance(); !ok {
		return &ValidationError{Name: "projected_balance", err: errors.New(`ent: missing required field "ForecastAccuracyLog.projected_balance"`)}
	}
	if _, ok := _c.mutation.ActualBalance(); !ok {
		return &ValidationError{Name: "actual_balance", err: errors.New(`ent: missing required field "ForecastAccuracyLog.actual_balance"`)}
	}
	if _, ok := _c.mutation.ErrorPct(); !ok {
		return &ValidationError{Name: "error_pct", err: errors.New(`ent: missing required field "ForecastAccuracyLog.error_pct"`)}
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		return &ValidationError{Name: "evaluated_at", err: errors.New(`ent: missing required field "ForecastAccuracyLog.evaluated_at"`)}
	}
	return nil
}

func (_c *ForecastAccuracyLogCreate) sqlSave(ctx context.Context) (*ForecastAccuracyLog, error) {
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
			return nil, fmt.Errorf("unexpected ForecastAccuracyLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ForecastAccuracyLogCreate) createSpec() (*ForecastAccuracyLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ForecastAccuracyLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(forecastaccuracylog.Table, sqlgraph.NewFieldSpec(forecastaccuracylog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ForecastID(); ok {
		_spec.SetField(forecastaccuracylog.FieldForecastID, field.TypeString, value)
		_node.ForecastID = value
	}
	if value, ok := _c.mutation.TargetDate(); ok {
		_spec.SetField(forecastaccuracylog.FieldTargetDate, field.TypeTime, value)
		_node.TargetDate = value
	}
	if value, ok := _c.mutation.ProjectedBalance(); ok {
		_spec.SetField(forecastaccuracylog.FieldProjectedBalance, field.TypeFloat64, value)
		_node.ProjectedBalance = value
	}
	if value, ok := _c.mutation.ActualBalance(); ok {
		_spec.SetField(forecastaccuracylog.FieldActualBalance, field.TypeFloat64, value)
		_node.ActualBalance = value
	}
	if value, ok := _c.mutation.ErrorPct(); ok {
		_spec.SetField(forecastaccuracylog.FieldErrorPct, field.TypeFloat64, value)
		_node.ErrorPct = value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(forecastaccuracylog.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = value
	}
	return _node, _spec
}

// ForecastAccuracyLogCreateBulk is the builder for creating many ForecastAccuracyLog entities in bulk.
type ForecastAccuracyLogCreateBulk struct {
	config
	err      error
	builders []*ForecastAccuracyLogCreate
}

// Save creates the ForecastAccuracyLog entities in the database.
func (_c *ForecastAccuracyLogCreateBulk) Save(ctx context.Context) ([]*ForecastAccuracyLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ForecastAccuracyLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ForecastAccuracyLogMutation)
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
func (_c *ForecastAccuracyLogCreateBulk) SaveX(ctx context.Context) []*ForecastAccuracyLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForecastAccuracyLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForecastAccuracyLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

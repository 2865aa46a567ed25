// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/forecastscenario"
	"github.com/steward-ai/steward/ent/predicate"
)

// ForecastScenarioUpdate is the builder for updating ForecastScenario entities.
type ForecastScenarioUpdate struct {
	config
	hooks    []Hook
	mutation *ForecastScenarioMutation
}

// Where appends a list predicates to the ForecastScenarioUpdate builder.
func (_u *ForecastScenarioUpdate) Where(ps ...predicate.ForecastScenario) *ForecastScenarioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ForecastScenarioUpdate) SetName(v string) *ForecastScenarioUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ForecastScenarioUpdate) SetNillableName(v *string) *ForecastScenarioUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAdjustments sets the "adjustments" field.
func (_u *ForecastScenarioUpdate) SetAdjustments(v []map[string]interface{}) *ForecastScenarioUpdate {
	_u.mutation.SetAdjustments(v)
	return _u
}

// AppendAdjustments appends value to the "adjustments" field.
func (_u *ForecastScenarioUpdate) AppendAdjustments(v []map[string]interface{}) *ForecastScenarioUpdate {
	_u.mutation.AppendAdjustments(v)
	return _u
}

// SetProjectedBalance sets the "projected_balance" field.
func (_u *ForecastScenarioUpdate) SetProjectedBalance(v float64) *ForecastScenarioUpdate {
	_u.mutation.ResetProjectedBalance()
	_u.mutation.SetProjectedBalance(v)
	return _u
}

// SetNillableProjectedBalance sets the "projected_balance" field if the given value is not nil.
func (_u *ForecastScenarioUpdate) SetNillableProjectedBalance(v *float64) *ForecastScenarioUpdate {
	if v != nil {
		_u.SetProjectedBalance(*v)
	}
	return _u
}

// AddProjectedBalance adds value to the "projected_balance" field.
func (_u *ForecastScenarioUpdate) AddProjectedBalance(v float64) *ForecastScenarioUpdate {
	_u.mutation.AddProjectedBalance(v)
	return _u
}

// SetDelta sets the "delta" field.
func (_u *ForecastScenarioUpdate) SetDelta(v float64) *ForecastScenarioUpdate {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *ForecastScenarioUpdate) SetNillableDelta(v *float64) *ForecastScenarioUpdate {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *ForecastScenarioUpdate) AddDelta(v float64) *ForecastScenarioUpdate {
	_u.mutation.AddDelta(v)
	return _u
}

// Mutation returns the ForecastScenarioMutation object of the builder.
func (_u *ForecastScenarioUpdate) Mutation() *ForecastScenarioMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ForecastScenarioUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForecastScenarioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ForecastScenarioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForecastScenarioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForecastScenarioUpdate) check() error {
	if _u.mutation.ForecastCleared() && len(_u.mutation.ForecastIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ForecastScenario.forecast"`)
	}
	return nil
}

func (_u *ForecastScenarioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forecastscenario.Table, forecastscenario.Columns, sqlgraph.NewFieldSpec(forecastscenario.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(forecastscenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adjustments(); ok {
		_spec.SetField(forecastscenario.FieldAdjustments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdjustments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, forecastscenario.FieldAdjustments, value)
		})
	}
	if value, ok := _u.mutation.ProjectedBalance(); ok {
		_spec.SetField(forecastscenario.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProjectedBalance(); ok {
		_spec.AddField(forecastscenario.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(forecastscenario.FieldDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(forecastscenario.FieldDelta, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forecastscenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ForecastScenarioUpdateOne is the builder for updating a single ForecastScenario entity.
type ForecastScenarioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ForecastScenarioMutation
}

// SetName sets the "name" field.
func (_u *ForecastScenarioUpdateOne) SetName(v string) *ForecastScenarioUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ForecastScenarioUpdateOne) SetNillableName(v *string) *ForecastScenarioUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAdjustments sets the "adjustments" field.
func (_u *ForecastScenarioUpdateOne) SetAdjustments(v []map[string]interface{}) *ForecastScenarioUpdateOne {
	_u.mutation.SetAdjustments(v)
	return _u
}

// AppendAdjustments appends value to the "adjustments" field.
func (_u *ForecastScenarioUpdateOne) AppendAdjustments(v []map[string]interface{}) *ForecastScenarioUpdateOne {
	_u.mutation.AppendAdjustments(v)
	return _u
}

// SetProjectedBalance sets the "projected_balance" field.
func (_u *ForecastScenarioUpdateOne) SetProjectedBalance(v float64) *ForecastScenarioUpdateOne {
	_u.mutation.ResetProjectedBalance()
	_u.mutation.SetProjectedBalance(v)
	return _u
}

// SetNillableProjectedBalance sets the "projected_balance" field if the given value is not nil.
func (_u *ForecastScenarioUpdateOne) SetNillableProjectedBalance(v *float64) *ForecastScenarioUpdateOne {
	if v != nil {
		_u.SetProjectedBalance(*v)
	}
	return _u
}

// AddProjectedBalance adds value to the "projected_balance" field.
func (_u *ForecastScenarioUpdateOne) AddProjectedBalance(v float64) *ForecastScenarioUpdateOne {
	_u.mutation.AddProjectedBalance(v)
	return _u
}

// SetDelta sets the "delta" field.
func (_u *ForecastScenarioUpdateOne) SetDelta(v float64) *ForecastScenarioUpdateOne {
	_u.mutation.ResetDelta()
	_u.mutation.SetDelta(v)
	return _u
}

// SetNillableDelta sets the "delta" field if the given value is not nil.
func (_u *ForecastScenarioUpdateOne) SetNillableDelta(v *float64) *ForecastScenarioUpdateOne {
	if v != nil {
		_u.SetDelta(*v)
	}
	return _u
}

// AddDelta adds value to the "delta" field.
func (_u *ForecastScenarioUpdateOne) AddDelta(v float64) *ForecastScenarioUpdateOne {
	_u.mutation.AddDelta(v)
	return _u
}

// Mutation returns the ForecastScenarioMutation object of the builder.
func (_u *ForecastScenarioUpdateOne) Mutation() *ForecastScenarioMutation {
	return _u.mutation
}

// Where appends a list predicates to the ForecastScenarioUpdate builder.
func (_u *ForecastScenarioUpdateOne) Where(ps ...predicate.ForecastScenario) *ForecastScenarioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ForecastScenarioUpdateOne) Select(field string, fields ...string) *ForecastScenarioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ForecastScenario entity.
func (_u *ForecastScenarioUpdateOne) Save(ctx context.Context) (*ForecastScenario, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForecastScenarioUpdateOne) SaveX(ctx context.Context) *ForecastScenario {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ForecastScenarioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForecastScenarioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForecastScenarioUpdateOne) check() error {
	if _u.mutation.ForecastCleared() && len(_u.mutation.ForecastIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ForecastScenario.forecast"`)
	}
	return nil
}

func (_u *ForecastScenarioUpdateOne) sqlSave(ctx context.Context) (_node *ForecastScenario, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forecastscenario.Table, forecastscenario.Columns, sqlgraph.NewFieldSpec(forecastscenario.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ForecastScenario.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forecastscenario.FieldID)
		for _, f := range fields {
			if !forecastscenario.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != forecastscenario.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(forecastscenario.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adjustments(); ok {
		_spec.SetField(forecastscenario.FieldAdjustments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAdjustments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, forecastscenario.FieldAdjustments, value)
		})
	}
	if value, ok := _u.mutation.ProjectedBalance(); ok {
		_spec.SetField(forecastscenario.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProjectedBalance(); ok {
		_spec.AddField(forecastscenario.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Delta(); ok {
		_spec.SetField(forecastscenario.FieldDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDelta(); ok {
		_spec.AddField(forecastscenario.FieldDelta, field.TypeFloat64, value)
	}
	_node = &ForecastScenario{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forecastscenario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

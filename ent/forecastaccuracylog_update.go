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
	"github.com/steward-ai/steward/ent/forecastaccuracylog"
	"github.com/steward-ai/steward/ent/predicate"
)

// ForecastAccuracyLogUpdate is the builder for updating ForecastAccuracyLog entities.
type ForecastAccuracyLogUpdate struct {
	config
	hooks    []Hook
	mutation *ForecastAccuracyLogMutation
}

// Where appends a list predicates to the ForecastAccuracyLogUpdate builder.
func (_u *ForecastAccuracyLogUpdate) Where(ps ...predicate.ForecastAccuracyLog) *ForecastAccuracyLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetForecastID sets the "forecast_id" field.
func (_u *ForecastAccuracyLogUpdate) SetForecastID(v string) *ForecastAccuracyLogUpdate {
	_u.mutation.SetForecastID(v)
	return _u
}

// SetNillableForecastID sets the "forecast_id" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdate) SetNillableForecastID(v *string) *ForecastAccuracyLogUpdate {
	if v != nil {
		_u.SetForecastID(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *ForecastAccuracyLogUpdate) SetTargetDate(v time.Time) *ForecastAccuracyLogUpdate {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdate) SetNillableTargetDate(v *time.Time) *ForecastAccuracyLogUpdate {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetProjectedBalance sets the "projected_balance" field.
func (_u *ForecastAccuracyLogUpdate) SetProjectedBalance(v float64) *ForecastAccuracyLogUpdate {
	_u.mutation.ResetProjectedBalance()
	_u.mutation.SetProjectedBalance(v)
	return _u
}

// SetNillableProjectedBalance sets the "projected_balance" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdate) SetNillableProjectedBalance(v *float64) *ForecastAccuracyLogUpdate {
	if v != nil {
		_u.SetProjectedBalance(*v)
	}
	return _u
}

// AddProjectedBalance adds value to the "projected_balance" field.
func (_u *ForecastAccuracyLogUpdate) AddProjectedBalance(v float64) *ForecastAccuracyLogUpdate {
	_u.mutation.AddProjectedBalance(v)
	return _u
}

// SetActualBalance sets the "actual_balance" field.
func (_u *ForecastAccuracyLogUpdate) SetActualBalance(v float64) *ForecastAccuracyLogUpdate {
	_u.mutation.ResetActualBalance()
	_u.mutation.SetActualBalance(v)
	return _u
}

// SetNillableActualBalance sets the "actual_balance" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdate) SetNillableActualBalance(v *float64) *ForecastAccuracyLogUpdate {
	if v != nil {
		_u.SetActualBalance(*v)
	}
	return _u
}

// AddActualBalance adds value to the "actual_balance" field.
func (_u *ForecastAccuracyLogUpdate) AddActualBalance(v float64) *ForecastAccuracyLogUpdate {
	_u.mutation.AddActualBalance(v)
	return _u
}

// SetErrorPct sets the "error_pct" field.
func (_u *ForecastAccuracyLogUpdate) SetErrorPct(v float64) *ForecastAccuracyLogUpdate {
	_u.mutation.ResetErrorPct()
	_u.mutation.SetErrorPct(v)
	return _u
}

// SetNillableErrorPct sets the "error_pct" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdate) SetNillableErrorPct(v *float64) *ForecastAccuracyLogUpdate {
	if v != nil {
		_u.SetErrorPct(*v)
	}
	return _u
}

// AddErrorPct adds value to the "error_pct" field.
func (_u *ForecastAccuracyLogUpdate) AddErrorPct(v float64) *ForecastAccuracyLogUpdate {
	_u.mutation.AddErrorPct(v)
	return _u
}

// Mutation returns the ForecastAccuracyLogMutation object of the builder.
func (_u *ForecastAccuracyLogUpdate) Mutation() *ForecastAccuracyLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ForecastAccuracyLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForecastAccuracyLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ForecastAccuracyLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForecastAccuracyLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ForecastAccuracyLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(forecastaccuracylog.Table, forecastaccuracylog.Columns, sqlgraph.NewFieldSpec(forecastaccuracylog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ForecastID(); ok {
		_spec.SetField(forecastaccuracylog.FieldForecastID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(forecastaccuracylog.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProjectedBalance(); ok {
		_spec.SetField(forecastaccuracylog.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProjectedBalance(); ok {
		_spec.AddField(forecastaccuracylog.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualBalance(); ok {
		_spec.SetField(forecastaccuracylog.FieldActualBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualBalance(); ok {
		_spec.AddField(forecastaccuracylog.FieldActualBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorPct(); ok {
		_spec.SetField(forecastaccuracylog.FieldErrorPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorPct(); ok {
		_spec.AddField(forecastaccuracylog.FieldErrorPct, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forecastaccuracylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ForecastAccuracyLogUpdateOne is the builder for updating a single ForecastAccuracyLog entity.
type ForecastAccuracyLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ForecastAccuracyLogMutation
}

// SetForecastID sets the "forecast_id" field.
func (_u *ForecastAccuracyLogUpdateOne) SetForecastID(v string) *ForecastAccuracyLogUpdateOne {
	_u.mutation.SetForecastID(v)
	return _u
}

// SetNillableForecastID sets the "forecast_id" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdateOne) SetNillableForecastID(v *string) *ForecastAccuracyLogUpdateOne {
	if v != nil {
		_u.SetForecastID(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *ForecastAccuracyLogUpdateOne) SetTargetDate(v time.Time) *ForecastAccuracyLogUpdateOne {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdateOne) SetNillableTargetDate(v *time.Time) *ForecastAccuracyLogUpdateOne {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetProjectedBalance sets the "projected_balance" field.
func (_u *ForecastAccuracyLogUpdateOne) SetProjectedBalance(v float64) *ForecastAccuracyLogUpdateOne {
	_u.mutation.ResetProjectedBalance()
	_u.mutation.SetProjectedBalance(v)
	return _u
}

// SetNillableProjectedBalance sets the "projected_balance" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdateOne) SetNillableProjectedBalance(v *float64) *ForecastAccuracyLogUpdateOne {
	if v != nil {
		_u.SetProjectedBalance(*v)
	}
	return _u
}

// AddProjectedBalance adds value to the "projected_balance" field.
func (_u *ForecastAccuracyLogUpdateOne) AddProjectedBalance(v float64) *ForecastAccuracyLogUpdateOne {
	_u.mutation.AddProjectedBalance(v)
	return _u
}

// SetActualBalance sets the "actual_balance" field.
func (_u *ForecastAccuracyLogUpdateOne) SetActualBalance(v float64) *ForecastAccuracyLogUpdateOne {
	_u.mutation.ResetActualBalance()
	_u.mutation.SetActualBalance(v)
	return _u
}

// SetNillableActualBalance sets the "actual_balance" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdateOne) SetNillableActualBalance(v *float64) *ForecastAccuracyLogUpdateOne {
	if v != nil {
		_u.SetActualBalance(*v)
	}
	return _u
}

// AddActualBalance adds value to the "actual_balance" field.
func (_u *ForecastAccuracyLogUpdateOne) AddActualBalance(v float64) *ForecastAccuracyLogUpdateOne {
	_u.mutation.AddActualBalance(v)
	return _u
}

// SetErrorPct sets the "error_pct" field.
func (_u *ForecastAccuracyLogUpdateOne) SetErrorPct(v float64) *ForecastAccuracyLogUpdateOne {
	_u.mutation.ResetErrorPct()
	_u.mutation.SetErrorPct(v)
	return _u
}

// SetNillableErrorPct sets the "error_pct" field if the given value is not nil.
func (_u *ForecastAccuracyLogUpdateOne) SetNillableErrorPct(v *float64) *ForecastAccuracyLogUpdateOne {
	if v != nil {
		_u.SetErrorPct(*v)
	}
	return _u
}

// AddErrorPct adds value to the "error_pct" field.
func (_u *ForecastAccuracyLogUpdateOne) AddErrorPct(v float64) *ForecastAccuracyLogUpdateOne {
	_u.mutation.AddErrorPct(v)
	return _u
}

// Mutation returns the ForecastAccuracyLogMutation object of the builder.
func (_u *ForecastAccuracyLogUpdateOne) Mutation() *ForecastAccuracyLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ForecastAccuracyLogUpdate builder.
func (_u *ForecastAccuracyLogUpdateOne) Where(ps ...predicate.ForecastAccuracyLog) *ForecastAccuracyLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ForecastAccuracyLogUpdateOne) Select(field string, fields ...string) *ForecastAccuracyLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ForecastAccuracyLog entity.
func (_u *ForecastAccuracyLogUpdateOne) Save(ctx context.Context) (*ForecastAccuracyLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForecastAccuracyLogUpdateOne) SaveX(ctx context.Context) *ForecastAccuracyLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ForecastAccuracyLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForecastAccuracyLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ForecastAccuracyLogUpdateOne) sqlSave(ctx context.Context) (_node *ForecastAccuracyLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(forecastaccuracylog.Table, forecastaccuracylog.Columns, sqlgraph.NewFieldSpec(forecastaccuracylog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ForecastAccuracyLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forecastaccuracylog.FieldID)
		for _, f := range fields {
			if !forecastaccuracylog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != forecastaccuracylog.FieldID {
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
	if value, ok := _u.mutation.ForecastID(); ok {
		_spec.SetField(forecastaccuracylog.FieldForecastID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(forecastaccuracylog.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProjectedBalance(); ok {
		_spec.SetField(forecastaccuracylog.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProjectedBalance(); ok {
		_spec.AddField(forecastaccuracylog.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualBalance(); ok {
		_spec.SetField(forecastaccuracylog.FieldActualBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualBalance(); ok {
		_spec.AddField(forecastaccuracylog.FieldActualBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ErrorPct(); ok {
		_spec.SetField(forecastaccuracylog.FieldErrorPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedErrorPct(); ok {
		_spec.AddField(forecastaccuracylog.FieldErrorPct, field.TypeFloat64, value)
	}
	_node = &ForecastAccuracyLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forecastaccuracylog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

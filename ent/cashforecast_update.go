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
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/ent/forecastscenario"
	"github.com/steward-ai/steward/ent/predicate"
)

// CashForecastUpdate is the builder for updating CashForecast entities.
type CashForecastUpdate struct {
	config
	hooks    []Hook
	mutation *CashForecastMutation
}

// Where appends a list predicates to the CashForecastUpdate builder.
func (_u *CashForecastUpdate) Where(ps ...predicate.CashForecast) *CashForecastUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetForecastDate sets the "forecast_date" field.
func (_u *CashForecastUpdate) SetForecastDate(v time.Time) *CashForecastUpdate {
	_u.mutation.SetForecastDate(v)
	return _u
}

// SetNillableForecastDate sets the "forecast_date" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableForecastDate(v *time.Time) *CashForecastUpdate {
	if v != nil {
		_u.SetForecastDate(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *CashForecastUpdate) SetTargetDate(v time.Time) *CashForecastUpdate {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableTargetDate(v *time.Time) *CashForecastUpdate {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetOpeningBalance sets the "opening_balance" field.
func (_u *CashForecastUpdate) SetOpeningBalance(v float64) *CashForecastUpdate {
	_u.mutation.ResetOpeningBalance()
	_u.mutation.SetOpeningBalance(v)
	return _u
}

// SetNillableOpeningBalance sets the "opening_balance" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableOpeningBalance(v *float64) *CashForecastUpdate {
	if v != nil {
		_u.SetOpeningBalance(*v)
	}
	return _u
}

// AddOpeningBalance adds value to the "opening_balance" field.
func (_u *CashForecastUpdate) AddOpeningBalance(v float64) *CashForecastUpdate {
	_u.mutation.AddOpeningBalance(v)
	return _u
}

// SetExpectedInflows sets the "expected_inflows" field.
func (_u *CashForecastUpdate) SetExpectedInflows(v float64) *CashForecastUpdate {
	_u.mutation.ResetExpectedInflows()
	_u.mutation.SetExpectedInflows(v)
	return _u
}

// SetNillableExpectedInflows sets the "expected_inflows" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableExpectedInflows(v *float64) *CashForecastUpdate {
	if v != nil {
		_u.SetExpectedInflows(*v)
	}
	return _u
}

// AddExpectedInflows adds value to the "expected_inflows" field.
func (_u *CashForecastUpdate) AddExpectedInflows(v float64) *CashForecastUpdate {
	_u.mutation.AddExpectedInflows(v)
	return _u
}

// SetExpectedOutflows sets the "expected_outflows" field.
func (_u *CashForecastUpdate) SetExpectedOutflows(v float64) *CashForecastUpdate {
	_u.mutation.ResetExpectedOutflows()
	_u.mutation.SetExpectedOutflows(v)
	return _u
}

// SetNillableExpectedOutflows sets the "expected_outflows" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableExpectedOutflows(v *float64) *CashForecastUpdate {
	if v != nil {
		_u.SetExpectedOutflows(*v)
	}
	return _u
}

// AddExpectedOutflows adds value to the "expected_outflows" field.
func (_u *CashForecastUpdate) AddExpectedOutflows(v float64) *CashForecastUpdate {
	_u.mutation.AddExpectedOutflows(v)
	return _u
}

// SetProjectedBalance sets the "projected_balance" field.
func (_u *CashForecastUpdate) SetProjectedBalance(v float64) *CashForecastUpdate {
	_u.mutation.ResetProjectedBalance()
	_u.mutation.SetProjectedBalance(v)
	return _u
}

// SetNillableProjectedBalance sets the "projected_balance" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableProjectedBalance(v *float64) *CashForecastUpdate {
	if v != nil {
		_u.SetProjectedBalance(*v)
	}
	return _u
}

// AddProjectedBalance adds value to the "projected_balance" field.
func (_u *CashForecastUpdate) AddProjectedBalance(v float64) *CashForecastUpdate {
	_u.mutation.AddProjectedBalance(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CashForecastUpdate) SetConfidence(v float64) *CashForecastUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CashForecastUpdate) SetNillableConfidence(v *float64) *CashForecastUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CashForecastUpdate) AddConfidence(v float64) *CashForecastUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *CashForecastUpdate) ClearConfidence() *CashForecastUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *CashForecastUpdate) SetBreakdown(v map[string]interface{}) *CashForecastUpdate {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *CashForecastUpdate) ClearBreakdown() *CashForecastUpdate {
	_u.mutation.ClearBreakdown()
	return _u
}

// AddScenarioIDs adds the "scenarios" edge to the ForecastScenario entity by IDs.
func (_u *CashForecastUpdate) AddScenarioIDs(ids ...string) *CashForecastUpdate {
	_u.mutation.AddScenarioIDs(ids...)
	return _u
}

// AddScenarios adds the "scenarios" edges to the ForecastScenario entity.
func (_u *CashForecastUpdate) AddScenarios(v ...*ForecastScenario) *CashForecastUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScenarioIDs(ids...)
}

// Mutation returns the CashForecastMutation object of the builder.
func (_u *CashForecastUpdate) Mutation() *CashForecastMutation {
	return _u.mutation
}

// ClearScenarios clears all "scenarios" edges to the ForecastScenario entity.
func (_u *CashForecastUpdate) ClearScenarios() *CashForecastUpdate {
	_u.mutation.ClearScenarios()
	return _u
}

// RemoveScenarioIDs removes the "scenarios" edge to ForecastScenario entities by IDs.
func (_u *CashForecastUpdate) RemoveScenarioIDs(ids ...string) *CashForecastUpdate {
	_u.mutation.RemoveScenarioIDs(ids...)
	return _u
}

// RemoveScenarios removes "scenarios" edges to ForecastScenario entities.
func (_u *CashForecastUpdate) RemoveScenarios(v ...*ForecastScenario) *CashForecastUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScenarioIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CashForecastUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CashForecastUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CashForecastUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CashForecastUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CashForecastUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cashforecast.Table, cashforecast.Columns, sqlgraph.NewFieldSpec(cashforecast.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ForecastDate(); ok {
		_spec.SetField(cashforecast.FieldForecastDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(cashforecast.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OpeningBalance(); ok {
		_spec.SetField(cashforecast.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOpeningBalance(); ok {
		_spec.AddField(cashforecast.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedInflows(); ok {
		_spec.SetField(cashforecast.FieldExpectedInflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedInflows(); ok {
		_spec.AddField(cashforecast.FieldExpectedInflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedOutflows(); ok {
		_spec.SetField(cashforecast.FieldExpectedOutflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedOutflows(); ok {
		_spec.AddField(cashforecast.FieldExpectedOutflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProjectedBalance(); ok {
		_spec.SetField(cashforecast.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProjectedBalance(); ok {
		_spec.AddField(cashforecast.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cashforecast.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cashforecast.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(cashforecast.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(cashforecast.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(cashforecast.FieldBreakdown, field.TypeJSON)
	}
	if _u.mutation.ScenariosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScenariosIDs(); len(nodes) > 0 && !_u.mutation.ScenariosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScenariosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cashforecast.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CashForecastUpdateOne is the builder for updating a single CashForecast entity.
type CashForecastUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CashForecastMutation
}

// SetForecastDate sets the "forecast_date" field.
func (_u *CashForecastUpdateOne) SetForecastDate(v time.Time) *CashForecastUpdateOne {
	_u.mutation.SetForecastDate(v)
	return _u
}

// SetNillableForecastDate sets the "forecast_date" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableForecastDate(v *time.Time) *CashForecastUpdateOne {
	if v != nil {
		_u.SetForecastDate(*v)
	}
	return _u
}

// SetTargetDate sets the "target_date" field.
func (_u *CashForecastUpdateOne) SetTargetDate(v time.Time) *CashForecastUpdateOne {
	_u.mutation.SetTargetDate(v)
	return _u
}

// SetNillableTargetDate sets the "target_date" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableTargetDate(v *time.Time) *CashForecastUpdateOne {
	if v != nil {
		_u.SetTargetDate(*v)
	}
	return _u
}

// SetOpeningBalance sets the "opening_balance" field.
func (_u *CashForecastUpdateOne) SetOpeningBalance(v float64) *CashForecastUpdateOne {
	_u.mutation.ResetOpeningBalance()
	_u.mutation.SetOpeningBalance(v)
	return _u
}

// SetNillableOpeningBalance sets the "opening_balance" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableOpeningBalance(v *float64) *CashForecastUpdateOne {
	if v != nil {
		_u.SetOpeningBalance(*v)
	}
	return _u
}

// AddOpeningBalance adds value to the "opening_balance" field.
func (_u *CashForecastUpdateOne) AddOpeningBalance(v float64) *CashForecastUpdateOne {
	_u.mutation.AddOpeningBalance(v)
	return _u
}

// SetExpectedInflows sets the "expected_inflows" field.
func (_u *CashForecastUpdateOne) SetExpectedInflows(v float64) *CashForecastUpdateOne {
	_u.mutation.ResetExpectedInflows()
	_u.mutation.SetExpectedInflows(v)
	return _u
}

// SetNillableExpectedInflows sets the "expected_inflows" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableExpectedInflows(v *float64) *CashForecastUpdateOne {
	if v != nil {
		_u.SetExpectedInflows(*v)
	}
	return _u
}

// AddExpectedInflows adds value to the "expected_inflows" field.
func (_u *CashForecastUpdateOne) AddExpectedInflows(v float64) *CashForecastUpdateOne {
	_u.mutation.AddExpectedInflows(v)
	return _u
}

// SetExpectedOutflows sets the "expected_outflows" field.
func (_u *CashForecastUpdateOne) SetExpectedOutflows(v float64) *CashForecastUpdateOne {
	_u.mutation.ResetExpectedOutflows()
	_u.mutation.SetExpectedOutflows(v)
	return _u
}

// SetNillableExpectedOutflows sets the "expected_outflows" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableExpectedOutflows(v *float64) *CashForecastUpdateOne {
	if v != nil {
		_u.SetExpectedOutflows(*v)
	}
	return _u
}

// AddExpectedOutflows adds value to the "expected_outflows" field.
func (_u *CashForecastUpdateOne) AddExpectedOutflows(v float64) *CashForecastUpdateOne {
	_u.mutation.AddExpectedOutflows(v)
	return _u
}

// SetProjectedBalance sets the "projected_balance" field.
func (_u *CashForecastUpdateOne) SetProjectedBalance(v float64) *CashForecastUpdateOne {
	_u.mutation.ResetProjectedBalance()
	_u.mutation.SetProjectedBalance(v)
	return _u
}

// SetNillableProjectedBalance sets the "projected_balance" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableProjectedBalance(v *float64) *CashForecastUpdateOne {
	if v != nil {
		_u.SetProjectedBalance(*v)
	}
	return _u
}

// AddProjectedBalance adds value to the "projected_balance" field.
func (_u *CashForecastUpdateOne) AddProjectedBalance(v float64) *CashForecastUpdateOne {
	_u.mutation.AddProjectedBalance(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CashForecastUpdateOne) SetConfidence(v float64) *CashForecastUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CashForecastUpdateOne) SetNillableConfidence(v *float64) *CashForecastUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CashForecastUpdateOne) AddConfidence(v float64) *CashForecastUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *CashForecastUpdateOne) ClearConfidence() *CashForecastUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetBreakdown sets the "breakdown" field.
func (_u *CashForecastUpdateOne) SetBreakdown(v map[string]interface{}) *CashForecastUpdateOne {
	_u.mutation.SetBreakdown(v)
	return _u
}

// ClearBreakdown clears the value of the "breakdown" field.
func (_u *CashForecastUpdateOne) ClearBreakdown() *CashForecastUpdateOne {
	_u.mutation.ClearBreakdown()
	return _u
}

// AddScenarioIDs adds the "scenarios" edge to the ForecastScenario entity by IDs.
func (_u *CashForecastUpdateOne) AddScenarioIDs(ids ...string) *CashForecastUpdateOne {
	_u.mutation.AddScenarioIDs(ids...)
	return _u
}

// AddScenarios adds the "scenarios" edges to the ForecastScenario entity.
func (_u *CashForecastUpdateOne) AddScenarios(v ...*ForecastScenario) *CashForecastUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScenarioIDs(ids...)
}

// Mutation returns the CashForecastMutation object of the builder.
func (_u *CashForecastUpdateOne) Mutation() *CashForecastMutation {
	return _u.mutation
}

// ClearScenarios clears all "scenarios" edges to the ForecastScenario entity.
func (_u *CashForecastUpdateOne) ClearScenarios() *CashForecastUpdateOne {
	_u.mutation.ClearScenarios()
	return _u
}

// RemoveScenarioIDs removes the "scenarios" edge to ForecastScenario entities by IDs.
func (_u *CashForecastUpdateOne) RemoveScenarioIDs(ids ...string) *CashForecastUpdateOne {
	_u.mutation.RemoveScenarioIDs(ids...)
	return _u
}

// RemoveScenarios removes "scenarios" edges to ForecastScenario entities.
func (_u *CashForecastUpdateOne) RemoveScenarios(v ...*ForecastScenario) *CashForecastUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScenarioIDs(ids...)
}

// Where appends a list predicates to the CashForecastUpdate builder.
func (_u *CashForecastUpdateOne) Where(ps ...predicate.CashForecast) *CashForecastUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CashForecastUpdateOne) Select(field string, fields ...string) *CashForecastUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CashForecast entity.
func (_u *CashForecastUpdateOne) Save(ctx context.Context) (*CashForecast, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CashForecastUpdateOne) SaveX(ctx context.Context) *CashForecast {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CashForecastUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CashForecastUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CashForecastUpdateOne) sqlSave(ctx context.Context) (_node *CashForecast, err error) {
	_spec := sqlgraph.NewUpdateSpec(cashforecast.Table, cashforecast.Columns, sqlgraph.NewFieldSpec(cashforecast.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CashForecast.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cashforecast.FieldID)
		for _, f := range fields {
			if !cashforecast.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cashforecast.FieldID {
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
	if value, ok := _u.mutation.ForecastDate(); ok {
		_spec.SetField(cashforecast.FieldForecastDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TargetDate(); ok {
		_spec.SetField(cashforecast.FieldTargetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OpeningBalance(); ok {
		_spec.SetField(cashforecast.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOpeningBalance(); ok {
		_spec.AddField(cashforecast.FieldOpeningBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedInflows(); ok {
		_spec.SetField(cashforecast.FieldExpectedInflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedInflows(); ok {
		_spec.AddField(cashforecast.FieldExpectedInflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpectedOutflows(); ok {
		_spec.SetField(cashforecast.FieldExpectedOutflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExpectedOutflows(); ok {
		_spec.AddField(cashforecast.FieldExpectedOutflows, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ProjectedBalance(); ok {
		_spec.SetField(cashforecast.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProjectedBalance(); ok {
		_spec.AddField(cashforecast.FieldProjectedBalance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cashforecast.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cashforecast.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(cashforecast.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Breakdown(); ok {
		_spec.SetField(cashforecast.FieldBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.BreakdownCleared() {
		_spec.ClearField(cashforecast.FieldBreakdown, field.TypeJSON)
	}
	if _u.mutation.ScenariosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScenariosIDs(); len(nodes) > 0 && !_u.mutation.ScenariosCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScenariosIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CashForecast{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cashforecast.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

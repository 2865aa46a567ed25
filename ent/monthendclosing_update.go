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
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/monthendclosing"
	"github.com/steward-ai/steward/ent/predicate"
)

// MonthEndClosingUpdate is the builder for updating MonthEndClosing entities.
type MonthEndClosingUpdate struct {
	config
	hooks    []Hook
	mutation *MonthEndClosingMutation
}

// Where appends a list predicates to the MonthEndClosingUpdate builder.
func (_u *MonthEndClosingUpdate) Where(ps ...predicate.MonthEndClosing) *MonthEndClosingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPeriod sets the "period" field.
func (_u *MonthEndClosingUpdate) SetPeriod(v string) *MonthEndClosingUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *MonthEndClosingUpdate) SetNillablePeriod(v *string) *MonthEndClosingUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MonthEndClosingUpdate) SetStatus(v monthendclosing.Status) *MonthEndClosingUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MonthEndClosingUpdate) SetNillableStatus(v *monthendclosing.Status) *MonthEndClosingUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *MonthEndClosingUpdate) SetReadinessScore(v float64) *MonthEndClosingUpdate {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *MonthEndClosingUpdate) SetNillableReadinessScore(v *float64) *MonthEndClosingUpdate {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *MonthEndClosingUpdate) AddReadinessScore(v float64) *MonthEndClosingUpdate {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MonthEndClosingUpdate) SetSummary(v map[string]interface{}) *MonthEndClosingUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MonthEndClosingUpdate) ClearSummary() *MonthEndClosingUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MonthEndClosingUpdate) SetCompletedAt(v time.Time) *MonthEndClosingUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MonthEndClosingUpdate) SetNillableCompletedAt(v *time.Time) *MonthEndClosingUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MonthEndClosingUpdate) ClearCompletedAt() *MonthEndClosingUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the ClosingStep entity by IDs.
func (_u *MonthEndClosingUpdate) AddStepIDs(ids ...string) *MonthEndClosingUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the ClosingStep entity.
func (_u *MonthEndClosingUpdate) AddSteps(v ...*ClosingStep) *MonthEndClosingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the MonthEndClosingMutation object of the builder.
func (_u *MonthEndClosingUpdate) Mutation() *MonthEndClosingMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the ClosingStep entity.
func (_u *MonthEndClosingUpdate) ClearSteps() *MonthEndClosingUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to ClosingStep entities by IDs.
func (_u *MonthEndClosingUpdate) RemoveStepIDs(ids ...string) *MonthEndClosingUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to ClosingStep entities.
func (_u *MonthEndClosingUpdate) RemoveSteps(v ...*ClosingStep) *MonthEndClosingUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonthEndClosingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonthEndClosingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonthEndClosingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonthEndClosingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonthEndClosingUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := monthendclosing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonthEndClosing.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MonthEndClosingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monthendclosing.Table, monthendclosing.Columns, sqlgraph.NewFieldSpec(monthendclosing.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(monthendclosing.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(monthendclosing.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(monthendclosing.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(monthendclosing.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(monthendclosing.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(monthendclosing.FieldSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(monthendclosing.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(monthendclosing.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monthendclosing.StepsTable,
			Columns: []string{monthendclosing.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monthendclosing.StepsTable,
			Columns: []string{monthendclosing.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monthendclosing.StepsTable,
			Columns: []string{monthendclosing.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monthendclosing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonthEndClosingUpdateOne is the builder for updating a single MonthEndClosing entity.
type MonthEndClosingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonthEndClosingMutation
}

// SetPeriod sets the "period" field.
func (_u *MonthEndClosingUpdateOne) SetPeriod(v string) *MonthEndClosingUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *MonthEndClosingUpdateOne) SetNillablePeriod(v *string) *MonthEndClosingUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MonthEndClosingUpdateOne) SetStatus(v monthendclosing.Status) *MonthEndClosingUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MonthEndClosingUpdateOne) SetNillableStatus(v *monthendclosing.Status) *MonthEndClosingUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReadinessScore sets the "readiness_score" field.
func (_u *MonthEndClosingUpdateOne) SetReadinessScore(v float64) *MonthEndClosingUpdateOne {
	_u.mutation.ResetReadinessScore()
	_u.mutation.SetReadinessScore(v)
	return _u
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_u *MonthEndClosingUpdateOne) SetNillableReadinessScore(v *float64) *MonthEndClosingUpdateOne {
	if v != nil {
		_u.SetReadinessScore(*v)
	}
	return _u
}

// AddReadinessScore adds value to the "readiness_score" field.
func (_u *MonthEndClosingUpdateOne) AddReadinessScore(v float64) *MonthEndClosingUpdateOne {
	_u.mutation.AddReadinessScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *MonthEndClosingUpdateOne) SetSummary(v map[string]interface{}) *MonthEndClosingUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *MonthEndClosingUpdateOne) ClearSummary() *MonthEndClosingUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *MonthEndClosingUpdateOne) SetCompletedAt(v time.Time) *MonthEndClosingUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *MonthEndClosingUpdateOne) SetNillableCompletedAt(v *time.Time) *MonthEndClosingUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *MonthEndClosingUpdateOne) ClearCompletedAt() *MonthEndClosingUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the ClosingStep entity by IDs.
func (_u *MonthEndClosingUpdateOne) AddStepIDs(ids ...string) *MonthEndClosingUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the ClosingStep entity.
func (_u *MonthEndClosingUpdateOne) AddSteps(v ...*ClosingStep) *MonthEndClosingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// Mutation returns the MonthEndClosingMutation object of the builder.
func (_u *MonthEndClosingUpdateOne) Mutation() *MonthEndClosingMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the ClosingStep entity.
func (_u *MonthEndClosingUpdateOne) ClearSteps() *MonthEndClosingUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to ClosingStep entities by IDs.
func (_u *MonthEndClosingUpdateOne) RemoveStepIDs(ids ...string) *MonthEndClosingUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to ClosingStep entities.
func (_u *MonthEndClosingUpdateOne) RemoveSteps(v ...*ClosingStep) *MonthEndClosingUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// Where appends a list predicates to the MonthEndClosingUpdate builder.
func (_u *MonthEndClosingUpdateOne) Where(ps ...predicate.MonthEndClosing) *MonthEndClosingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonthEndClosingUpdateOne) Select(field string, fields ...string) *MonthEndClosingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonthEndClosing entity.
func (_u *MonthEndClosingUpdateOne) Save(ctx context.Context) (*MonthEndClosing, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonthEndClosingUpdateOne) SaveX(ctx context.Context) *MonthEndClosing {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonthEndClosingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonthEndClosingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonthEndClosingUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := monthendclosing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonthEndClosing.status": %w`, err)}
		}
	}
	return nil
}

func (_u *MonthEndClosingUpdateOne) sqlSave(ctx context.Context) (_node *MonthEndClosing, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monthendclosing.Table, monthendclosing.Columns, sqlgraph.NewFieldSpec(monthendclosing.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonthEndClosing.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monthendclosing.FieldID)
		for _, f := range fields {
			if !monthendclosing.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monthendclosing.FieldID {
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
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(monthendclosing.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(monthendclosing.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReadinessScore(); ok {
		_spec.SetField(monthendclosing.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReadinessScore(); ok {
		_spec.AddField(monthendclosing.FieldReadinessScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(monthendclosing.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(monthendclosing.FieldSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(monthendclosing.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(monthendclosing.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monthendclosing.StepsTable,
			Columns: []string{monthendclosing.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monthendclosing.StepsTable,
			Columns: []string{monthendclosing.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monthendclosing.StepsTable,
			Columns: []string{monthendclosing.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(closingstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MonthEndClosing{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monthendclosing.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

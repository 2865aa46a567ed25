// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/ent/predicate"
)

// AgentStepUpdate is the builder for updating AgentStep entities.
type AgentStepUpdate struct {
	config
	hooks    []Hook
	mutation *AgentStepMutation
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdate) Where(ps ...predicate.AgentStep) *AgentStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepName sets the "step_name" field.
func (_u *AgentStepUpdate) SetStepName(v string) *AgentStepUpdate {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStepName(v *string) *AgentStepUpdate {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *AgentStepUpdate) SetStepIndex(v int) *AgentStepUpdate {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStepIndex(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *AgentStepUpdate) AddStepIndex(v int) *AgentStepUpdate {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_u *AgentStepUpdate) SetInputSnapshot(v map[string]interface{}) *AgentStepUpdate {
	_u.mutation.SetInputSnapshot(v)
	return _u
}

// ClearInputSnapshot clears the value of the "input_snapshot" field.
func (_u *AgentStepUpdate) ClearInputSnapshot() *AgentStepUpdate {
	_u.mutation.ClearInputSnapshot()
	return _u
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_u *AgentStepUpdate) SetOutputSnapshot(v map[string]interface{}) *AgentStepUpdate {
	_u.mutation.SetOutputSnapshot(v)
	return _u
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (_u *AgentStepUpdate) ClearOutputSnapshot() *AgentStepUpdate {
	_u.mutation.ClearOutputSnapshot()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentStepUpdate) SetDurationMs(v int) *AgentStepUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableDurationMs(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentStepUpdate) AddDurationMs(v int) *AgentStepUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStepUpdate) SetStatus(v agentstep.Status) *AgentStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableStatus(v *agentstep.Status) *AgentStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *AgentStepUpdate) SetTokens(v int) *AgentStepUpdate {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *AgentStepUpdate) SetNillableTokens(v *int) *AgentStepUpdate {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *AgentStepUpdate) AddTokens(v int) *AgentStepUpdate {
	_u.mutation.AddTokens(v)
	return _u
}

// AddDecisionIDs adds the "decisions" edge to the AgentDecision entity by IDs.
func (_u *AgentStepUpdate) AddDecisionIDs(ids ...string) *AgentStepUpdate {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the AgentDecision entity.
func (_u *AgentStepUpdate) AddDecisions(v ...*AgentDecision) *AgentStepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdate) Mutation() *AgentStepMutation {
	return _u.mutation
}

// ClearDecisions clears all "decisions" edges to the AgentDecision entity.
func (_u *AgentStepUpdate) ClearDecisions() *AgentStepUpdate {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to AgentDecision entities by IDs.
func (_u *AgentStepUpdate) RemoveDecisionIDs(ids ...string) *AgentStepUpdate {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to AgentDecision entities.
func (_u *AgentStepUpdate) RemoveDecisions(v ...*AgentDecision) *AgentStepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.run"`)
	}
	return nil
}

func (_u *AgentStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(agentstep.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(agentstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(agentstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputSnapshot(); ok {
		_spec.SetField(agentstep.FieldInputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.InputSnapshotCleared() {
		_spec.ClearField(agentstep.FieldInputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSnapshot(); ok {
		_spec.SetField(agentstep.FieldOutputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.OutputSnapshotCleared() {
		_spec.ClearField(agentstep.FieldOutputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(agentstep.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(agentstep.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentStepUpdateOne is the builder for updating a single AgentStep entity.
type AgentStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentStepMutation
}

// SetStepName sets the "step_name" field.
func (_u *AgentStepUpdateOne) SetStepName(v string) *AgentStepUpdateOne {
	_u.mutation.SetStepName(v)
	return _u
}

// SetNillableStepName sets the "step_name" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStepName(v *string) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStepName(*v)
	}
	return _u
}

// SetStepIndex sets the "step_index" field.
func (_u *AgentStepUpdateOne) SetStepIndex(v int) *AgentStepUpdateOne {
	_u.mutation.ResetStepIndex()
	_u.mutation.SetStepIndex(v)
	return _u
}

// SetNillableStepIndex sets the "step_index" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStepIndex(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStepIndex(*v)
	}
	return _u
}

// AddStepIndex adds value to the "step_index" field.
func (_u *AgentStepUpdateOne) AddStepIndex(v int) *AgentStepUpdateOne {
	_u.mutation.AddStepIndex(v)
	return _u
}

// SetInputSnapshot sets the "input_snapshot" field.
func (_u *AgentStepUpdateOne) SetInputSnapshot(v map[string]interface{}) *AgentStepUpdateOne {
	_u.mutation.SetInputSnapshot(v)
	return _u
}

// ClearInputSnapshot clears the value of the "input_snapshot" field.
func (_u *AgentStepUpdateOne) ClearInputSnapshot() *AgentStepUpdateOne {
	_u.mutation.ClearInputSnapshot()
	return _u
}

// SetOutputSnapshot sets the "output_snapshot" field.
func (_u *AgentStepUpdateOne) SetOutputSnapshot(v map[string]interface{}) *AgentStepUpdateOne {
	_u.mutation.SetOutputSnapshot(v)
	return _u
}

// ClearOutputSnapshot clears the value of the "output_snapshot" field.
func (_u *AgentStepUpdateOne) ClearOutputSnapshot() *AgentStepUpdateOne {
	_u.mutation.ClearOutputSnapshot()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AgentStepUpdateOne) SetDurationMs(v int) *AgentStepUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableDurationMs(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AgentStepUpdateOne) AddDurationMs(v int) *AgentStepUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentStepUpdateOne) SetStatus(v agentstep.Status) *AgentStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableStatus(v *agentstep.Status) *AgentStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTokens sets the "tokens" field.
func (_u *AgentStepUpdateOne) SetTokens(v int) *AgentStepUpdateOne {
	_u.mutation.ResetTokens()
	_u.mutation.SetTokens(v)
	return _u
}

// SetNillableTokens sets the "tokens" field if the given value is not nil.
func (_u *AgentStepUpdateOne) SetNillableTokens(v *int) *AgentStepUpdateOne {
	if v != nil {
		_u.SetTokens(*v)
	}
	return _u
}

// AddTokens adds value to the "tokens" field.
func (_u *AgentStepUpdateOne) AddTokens(v int) *AgentStepUpdateOne {
	_u.mutation.AddTokens(v)
	return _u
}

// AddDecisionIDs adds the "decisions" edge to the AgentDecision entity by IDs.
func (_u *AgentStepUpdateOne) AddDecisionIDs(ids ...string) *AgentStepUpdateOne {
	_u.mutation.AddDecisionIDs(ids...)
	return _u
}

// AddDecisions adds the "decisions" edges to the AgentDecision entity.
func (_u *AgentStepUpdateOne) AddDecisions(v ...*AgentDecision) *AgentStepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDecisionIDs(ids...)
}

// Mutation returns the AgentStepMutation object of the builder.
func (_u *AgentStepUpdateOne) Mutation() *AgentStepMutation {
	return _u.mutation
}

// ClearDecisions clears all "decisions" edges to the AgentDecision entity.
func (_u *AgentStepUpdateOne) ClearDecisions() *AgentStepUpdateOne {
	_u.mutation.ClearDecisions()
	return _u
}

// RemoveDecisionIDs removes the "decisions" edge to AgentDecision entities by IDs.
func (_u *AgentStepUpdateOne) RemoveDecisionIDs(ids ...string) *AgentStepUpdateOne {
	_u.mutation.RemoveDecisionIDs(ids...)
	return _u
}

// RemoveDecisions removes "decisions" edges to AgentDecision entities.
func (_u *AgentStepUpdateOne) RemoveDecisions(v ...*AgentDecision) *AgentStepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDecisionIDs(ids...)
}

// Where appends a list predicates to the AgentStepUpdate builder.
func (_u *AgentStepUpdateOne) Where(ps ...predicate.AgentStep) *AgentStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentStepUpdateOne) Select(field string, fields ...string) *AgentStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentStep entity.
func (_u *AgentStepUpdateOne) Save(ctx context.Context) (*AgentStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentStepUpdateOne) SaveX(ctx context.Context) *AgentStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentStepUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentStep.status": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentStep.run"`)
	}
	return nil
}

func (_u *AgentStepUpdateOne) sqlSave(ctx context.Context) (_node *AgentStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentstep.Table, agentstep.Columns, sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentstep.FieldID)
		for _, f := range fields {
			if !agentstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentstep.FieldID {
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
	if value, ok := _u.mutation.StepName(); ok {
		_spec.SetField(agentstep.FieldStepName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIndex(); ok {
		_spec.SetField(agentstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIndex(); ok {
		_spec.AddField(agentstep.FieldStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputSnapshot(); ok {
		_spec.SetField(agentstep.FieldInputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.InputSnapshotCleared() {
		_spec.ClearField(agentstep.FieldInputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputSnapshot(); ok {
		_spec.SetField(agentstep.FieldOutputSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.OutputSnapshotCleared() {
		_spec.ClearField(agentstep.FieldOutputSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(agentstep.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tokens(); ok {
		_spec.SetField(agentstep.FieldTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokens(); ok {
		_spec.AddField(agentstep.FieldTokens, field.TypeInt, value)
	}
	if _u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDecisionsIDs(); len(nodes) > 0 && !_u.mutation.DecisionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DecisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentstep.DecisionsTable,
			Columns: []string{agentstep.DecisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

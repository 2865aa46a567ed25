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
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentstep"
	"github.com/steward-ai/steward/ent/agentsuspension"
	"github.com/steward-ai/steward/ent/predicate"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentRunUpdate) SetAgentType(v string) *AgentRunUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableAgentType(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *AgentRunUpdate) SetTriggerType(v string) *AgentRunUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTriggerType(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *AgentRunUpdate) SetTriggerID(v string) *AgentRunUpdate {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTriggerID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// ClearTriggerID clears the value of the "trigger_id" field.
func (_u *AgentRunUpdate) ClearTriggerID() *AgentRunUpdate {
	_u.mutation.ClearTriggerID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdate) SetStartedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStartedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdate) ClearStartedAt() *AgentRunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdate) SetCompletedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCompletedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdate) ClearCompletedAt() *AgentRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *AgentRunUpdate) SetTotalSteps(v int) *AgentRunUpdate {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTotalSteps(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *AgentRunUpdate) AddTotalSteps(v int) *AgentRunUpdate {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetTokenUsage sets the "token_usage" field.
func (_u *AgentRunUpdate) SetTokenUsage(v int) *AgentRunUpdate {
	_u.mutation.ResetTokenUsage()
	_u.mutation.SetTokenUsage(v)
	return _u
}

// SetNillableTokenUsage sets the "token_usage" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableTokenUsage(v *int) *AgentRunUpdate {
	if v != nil {
		_u.SetTokenUsage(*v)
	}
	return _u
}

// AddTokenUsage adds value to the "token_usage" field.
func (_u *AgentRunUpdate) AddTokenUsage(v int) *AgentRunUpdate {
	_u.mutation.AddTokenUsage(v)
	return _u
}

// SetInitialState sets the "initial_state" field.
func (_u *AgentRunUpdate) SetInitialState(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetInitialState(v)
	return _u
}

// ClearInitialState clears the value of the "initial_state" field.
func (_u *AgentRunUpdate) ClearInitialState() *AgentRunUpdate {
	_u.mutation.ClearInitialState()
	return _u
}

// SetFinalState sets the "final_state" field.
func (_u *AgentRunUpdate) SetFinalState(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetFinalState(v)
	return _u
}

// ClearFinalState clears the value of the "final_state" field.
func (_u *AgentRunUpdate) ClearFinalState() *AgentRunUpdate {
	_u.mutation.ClearFinalState()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AgentRunUpdate) SetCurrentStep(v string) *AgentRunUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCurrentStep(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AgentRunUpdate) ClearCurrentStep() *AgentRunUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AgentRunUpdate) SetPodID(v string) *AgentRunUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillablePodID(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AgentRunUpdate) ClearPodID() *AgentRunUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentRunUpdate) SetLastHeartbeatAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentRunUpdate) ClearLastHeartbeatAt() *AgentRunUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentRunUpdate) AddStepIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdate) AddSteps(v ...*AgentStep) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddSuspensionIDs adds the "suspensions" edge to the AgentSuspension entity by IDs.
func (_u *AgentRunUpdate) AddSuspensionIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddSuspensionIDs(ids...)
	return _u
}

// AddSuspensions adds the "suspensions" edges to the AgentSuspension entity.
func (_u *AgentRunUpdate) AddSuspensions(v ...*AgentSuspension) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuspensionIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdate) ClearSteps() *AgentRunUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentRunUpdate) RemoveStepIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentRunUpdate) RemoveSteps(v ...*AgentStep) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearSuspensions clears all "suspensions" edges to the AgentSuspension entity.
func (_u *AgentRunUpdate) ClearSuspensions() *AgentRunUpdate {
	_u.mutation.ClearSuspensions()
	return _u
}

// RemoveSuspensionIDs removes the "suspensions" edge to AgentSuspension entities by IDs.
func (_u *AgentRunUpdate) RemoveSuspensionIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveSuspensionIDs(ids...)
	return _u
}

// RemoveSuspensions removes "suspensions" edges to AgentSuspension entities.
func (_u *AgentRunUpdate) RemoveSuspensions(v ...*AgentSuspension) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuspensionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentrun.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(agentrun.FieldTriggerType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(agentrun.FieldTriggerID, field.TypeString, value)
	}
	if _u.mutation.TriggerIDCleared() {
		_spec.ClearField(agentrun.FieldTriggerID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(agentrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(agentrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenUsage(); ok {
		_spec.SetField(agentrun.FieldTokenUsage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenUsage(); ok {
		_spec.AddField(agentrun.FieldTokenUsage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialState(); ok {
		_spec.SetField(agentrun.FieldInitialState, field.TypeJSON, value)
	}
	if _u.mutation.InitialStateCleared() {
		_spec.ClearField(agentrun.FieldInitialState, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalState(); ok {
		_spec.SetField(agentrun.FieldFinalState, field.TypeJSON, value)
	}
	if _u.mutation.FinalStateCleared() {
		_spec.ClearField(agentrun.FieldFinalState, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(agentrun.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(agentrun.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(agentrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(agentrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agentrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agentrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
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
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuspensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.SuspensionsTable,
			Columns: []string{agentrun.SuspensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuspensionsIDs(); len(nodes) > 0 && !_u.mutation.SuspensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.SuspensionsTable,
			Columns: []string{agentrun.SuspensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuspensionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.SuspensionsTable,
			Columns: []string{agentrun.SuspensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetAgentType sets the "agent_type" field.
func (_u *AgentRunUpdateOne) SetAgentType(v string) *AgentRunUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableAgentType(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *AgentRunUpdateOne) SetTriggerType(v string) *AgentRunUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTriggerType(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetTriggerID sets the "trigger_id" field.
func (_u *AgentRunUpdateOne) SetTriggerID(v string) *AgentRunUpdateOne {
	_u.mutation.SetTriggerID(v)
	return _u
}

// SetNillableTriggerID sets the "trigger_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTriggerID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTriggerID(*v)
	}
	return _u
}

// ClearTriggerID clears the value of the "trigger_id" field.
func (_u *AgentRunUpdateOne) ClearTriggerID() *AgentRunUpdateOne {
	_u.mutation.ClearTriggerID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AgentRunUpdateOne) SetStartedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStartedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AgentRunUpdateOne) ClearStartedAt() *AgentRunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdateOne) SetCompletedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdateOne) ClearCompletedAt() *AgentRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *AgentRunUpdateOne) SetTotalSteps(v int) *AgentRunUpdateOne {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTotalSteps(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *AgentRunUpdateOne) AddTotalSteps(v int) *AgentRunUpdateOne {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetTokenUsage sets the "token_usage" field.
func (_u *AgentRunUpdateOne) SetTokenUsage(v int) *AgentRunUpdateOne {
	_u.mutation.ResetTokenUsage()
	_u.mutation.SetTokenUsage(v)
	return _u
}

// SetNillableTokenUsage sets the "token_usage" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableTokenUsage(v *int) *AgentRunUpdateOne {
	if v != nil {
		_u.SetTokenUsage(*v)
	}
	return _u
}

// AddTokenUsage adds value to the "token_usage" field.
func (_u *AgentRunUpdateOne) AddTokenUsage(v int) *AgentRunUpdateOne {
	_u.mutation.AddTokenUsage(v)
	return _u
}

// SetInitialState sets the "initial_state" field.
func (_u *AgentRunUpdateOne) SetInitialState(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetInitialState(v)
	return _u
}

// ClearInitialState clears the value of the "initial_state" field.
func (_u *AgentRunUpdateOne) ClearInitialState() *AgentRunUpdateOne {
	_u.mutation.ClearInitialState()
	return _u
}

// SetFinalState sets the "final_state" field.
func (_u *AgentRunUpdateOne) SetFinalState(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetFinalState(v)
	return _u
}

// ClearFinalState clears the value of the "final_state" field.
func (_u *AgentRunUpdateOne) ClearFinalState() *AgentRunUpdateOne {
	_u.mutation.ClearFinalState()
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *AgentRunUpdateOne) SetCurrentStep(v string) *AgentRunUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCurrentStep(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *AgentRunUpdateOne) ClearCurrentStep() *AgentRunUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AgentRunUpdateOne) SetPodID(v string) *AgentRunUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillablePodID(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AgentRunUpdateOne) ClearPodID() *AgentRunUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentRunUpdateOne) SetLastHeartbeatAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentRunUpdateOne) ClearLastHeartbeatAt() *AgentRunUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the AgentStep entity by IDs.
func (_u *AgentRunUpdateOne) AddStepIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdateOne) AddSteps(v ...*AgentStep) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddSuspensionIDs adds the "suspensions" edge to the AgentSuspension entity by IDs.
func (_u *AgentRunUpdateOne) AddSuspensionIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddSuspensionIDs(ids...)
	return _u
}

// AddSuspensions adds the "suspensions" edges to the AgentSuspension entity.
func (_u *AgentRunUpdateOne) AddSuspensions(v ...*AgentSuspension) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSuspensionIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the AgentStep entity.
func (_u *AgentRunUpdateOne) ClearSteps() *AgentRunUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to AgentStep entities by IDs.
func (_u *AgentRunUpdateOne) RemoveStepIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to AgentStep entities.
func (_u *AgentRunUpdateOne) RemoveSteps(v ...*AgentStep) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearSuspensions clears all "suspensions" edges to the AgentSuspension entity.
func (_u *AgentRunUpdateOne) ClearSuspensions() *AgentRunUpdateOne {
	_u.mutation.ClearSuspensions()
	return _u
}

// RemoveSuspensionIDs removes the "suspensions" edge to AgentSuspension entities by IDs.
func (_u *AgentRunUpdateOne) RemoveSuspensionIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveSuspensionIDs(ids...)
	return _u
}

// RemoveSuspensions removes "suspensions" edges to AgentSuspension entities.
func (_u *AgentRunUpdateOne) RemoveSuspensions(v ...*AgentSuspension) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSuspensionIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(agentrun.FieldAgentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(agentrun.FieldTriggerType, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerID(); ok {
		_spec.SetField(agentrun.FieldTriggerID, field.TypeString, value)
	}
	if _u.mutation.TriggerIDCleared() {
		_spec.ClearField(agentrun.FieldTriggerID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(agentrun.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(agentrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(agentrun.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenUsage(); ok {
		_spec.SetField(agentrun.FieldTokenUsage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenUsage(); ok {
		_spec.AddField(agentrun.FieldTokenUsage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InitialState(); ok {
		_spec.SetField(agentrun.FieldInitialState, field.TypeJSON, value)
	}
	if _u.mutation.InitialStateCleared() {
		_spec.ClearField(agentrun.FieldInitialState, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalState(); ok {
		_spec.SetField(agentrun.FieldFinalState, field.TypeJSON, value)
	}
	if _u.mutation.FinalStateCleared() {
		_spec.ClearField(agentrun.FieldFinalState, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(agentrun.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(agentrun.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(agentrun.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(agentrun.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agentrun.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agentrun.FieldLastHeartbeatAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
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
			Table:   agentrun.StepsTable,
			Columns: []string{agentrun.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SuspensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.SuspensionsTable,
			Columns: []string{agentrun.SuspensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSuspensionsIDs(); len(nodes) > 0 && !_u.mutation.SuspensionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.SuspensionsTable,
			Columns: []string{agentrun.SuspensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SuspensionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.SuspensionsTable,
			Columns: []string{agentrun.SuspensionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentsuspension.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

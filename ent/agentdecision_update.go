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
	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/predicate"
)

// AgentDecisionUpdate is the builder for updating AgentDecision entities.
type AgentDecisionUpdate struct {
	config
	hooks    []Hook
	mutation *AgentDecisionMutation
}

// Where appends a list predicates to the AgentDecisionUpdate builder.
func (_u *AgentDecisionUpdate) Where(ps ...predicate.AgentDecision) *AgentDecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (_u *AgentDecisionUpdate) SetPromptFingerprint(v string) *AgentDecisionUpdate {
	_u.mutation.SetPromptFingerprint(v)
	return _u
}

// SetNillablePromptFingerprint sets the "prompt_fingerprint" field if the given value is not nil.
func (_u *AgentDecisionUpdate) SetNillablePromptFingerprint(v *string) *AgentDecisionUpdate {
	if v != nil {
		_u.SetPromptFingerprint(*v)
	}
	return _u
}

// SetResponsePayload sets the "response_payload" field.
func (_u *AgentDecisionUpdate) SetResponsePayload(v map[string]interface{}) *AgentDecisionUpdate {
	_u.mutation.SetResponsePayload(v)
	return _u
}

// ClearResponsePayload clears the value of the "response_payload" field.
func (_u *AgentDecisionUpdate) ClearResponsePayload() *AgentDecisionUpdate {
	_u.mutation.ClearResponsePayload()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AgentDecisionUpdate) SetConfidence(v float64) *AgentDecisionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AgentDecisionUpdate) SetNillableConfidence(v *float64) *AgentDecisionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AgentDecisionUpdate) AddConfidence(v float64) *AgentDecisionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentDecisionUpdate) SetTokensIn(v int) *AgentDecisionUpdate {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentDecisionUpdate) SetNillableTokensIn(v *int) *AgentDecisionUpdate {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentDecisionUpdate) AddTokensIn(v int) *AgentDecisionUpdate {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *AgentDecisionUpdate) SetTokensOut(v int) *AgentDecisionUpdate {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *AgentDecisionUpdate) SetNillableTokensOut(v *int) *AgentDecisionUpdate {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *AgentDecisionUpdate) AddTokensOut(v int) *AgentDecisionUpdate {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetToolsInvoked sets the "tools_invoked" field.
func (_u *AgentDecisionUpdate) SetToolsInvoked(v []string) *AgentDecisionUpdate {
	_u.mutation.SetToolsInvoked(v)
	return _u
}

// AppendToolsInvoked appends value to the "tools_invoked" field.
func (_u *AgentDecisionUpdate) AppendToolsInvoked(v []string) *AgentDecisionUpdate {
	_u.mutation.AppendToolsInvoked(v)
	return _u
}

// ClearToolsInvoked clears the value of the "tools_invoked" field.
func (_u *AgentDecisionUpdate) ClearToolsInvoked() *AgentDecisionUpdate {
	_u.mutation.ClearToolsInvoked()
	return _u
}

// Mutation returns the AgentDecisionMutation object of the builder.
func (_u *AgentDecisionUpdate) Mutation() *AgentDecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentDecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentDecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDecisionUpdate) check() error {
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentDecision.step"`)
	}
	return nil
}

func (_u *AgentDecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdecision.Table, agentdecision.Columns, sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PromptFingerprint(); ok {
		_spec.SetField(agentdecision.FieldPromptFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponsePayload(); ok {
		_spec.SetField(agentdecision.FieldResponsePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResponsePayloadCleared() {
		_spec.ClearField(agentdecision.FieldResponsePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(agentdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(agentdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentdecision.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentdecision.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(agentdecision.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(agentdecision.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolsInvoked(); ok {
		_spec.SetField(agentdecision.FieldToolsInvoked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsInvoked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdecision.FieldToolsInvoked, value)
		})
	}
	if _u.mutation.ToolsInvokedCleared() {
		_spec.ClearField(agentdecision.FieldToolsInvoked, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentDecisionUpdateOne is the builder for updating a single AgentDecision entity.
type AgentDecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentDecisionMutation
}

// SetPromptFingerprint sets the "prompt_fingerprint" field.
func (_u *AgentDecisionUpdateOne) SetPromptFingerprint(v string) *AgentDecisionUpdateOne {
	_u.mutation.SetPromptFingerprint(v)
	return _u
}

// SetNillablePromptFingerprint sets the "prompt_fingerprint" field if the given value is not nil.
func (_u *AgentDecisionUpdateOne) SetNillablePromptFingerprint(v *string) *AgentDecisionUpdateOne {
	if v != nil {
		_u.SetPromptFingerprint(*v)
	}
	return _u
}

// SetResponsePayload sets the "response_payload" field.
func (_u *AgentDecisionUpdateOne) SetResponsePayload(v map[string]interface{}) *AgentDecisionUpdateOne {
	_u.mutation.SetResponsePayload(v)
	return _u
}

// ClearResponsePayload clears the value of the "response_payload" field.
func (_u *AgentDecisionUpdateOne) ClearResponsePayload() *AgentDecisionUpdateOne {
	_u.mutation.ClearResponsePayload()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AgentDecisionUpdateOne) SetConfidence(v float64) *AgentDecisionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AgentDecisionUpdateOne) SetNillableConfidence(v *float64) *AgentDecisionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AgentDecisionUpdateOne) AddConfidence(v float64) *AgentDecisionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTokensIn sets the "tokens_in" field.
func (_u *AgentDecisionUpdateOne) SetTokensIn(v int) *AgentDecisionUpdateOne {
	_u.mutation.ResetTokensIn()
	_u.mutation.SetTokensIn(v)
	return _u
}

// SetNillableTokensIn sets the "tokens_in" field if the given value is not nil.
func (_u *AgentDecisionUpdateOne) SetNillableTokensIn(v *int) *AgentDecisionUpdateOne {
	if v != nil {
		_u.SetTokensIn(*v)
	}
	return _u
}

// AddTokensIn adds value to the "tokens_in" field.
func (_u *AgentDecisionUpdateOne) AddTokensIn(v int) *AgentDecisionUpdateOne {
	_u.mutation.AddTokensIn(v)
	return _u
}

// SetTokensOut sets the "tokens_out" field.
func (_u *AgentDecisionUpdateOne) SetTokensOut(v int) *AgentDecisionUpdateOne {
	_u.mutation.ResetTokensOut()
	_u.mutation.SetTokensOut(v)
	return _u
}

// SetNillableTokensOut sets the "tokens_out" field if the given value is not nil.
func (_u *AgentDecisionUpdateOne) SetNillableTokensOut(v *int) *AgentDecisionUpdateOne {
	if v != nil {
		_u.SetTokensOut(*v)
	}
	return _u
}

// AddTokensOut adds value to the "tokens_out" field.
func (_u *AgentDecisionUpdateOne) AddTokensOut(v int) *AgentDecisionUpdateOne {
	_u.mutation.AddTokensOut(v)
	return _u
}

// SetToolsInvoked sets the "tools_invoked" field.
func (_u *AgentDecisionUpdateOne) SetToolsInvoked(v []string) *AgentDecisionUpdateOne {
	_u.mutation.SetToolsInvoked(v)
	return _u
}

// AppendToolsInvoked appends value to the "tools_invoked" field.
func (_u *AgentDecisionUpdateOne) AppendToolsInvoked(v []string) *AgentDecisionUpdateOne {
	_u.mutation.AppendToolsInvoked(v)
	return _u
}

// ClearToolsInvoked clears the value of the "tools_invoked" field.
func (_u *AgentDecisionUpdateOne) ClearToolsInvoked() *AgentDecisionUpdateOne {
	_u.mutation.ClearToolsInvoked()
	return _u
}

// Mutation returns the AgentDecisionMutation object of the builder.
func (_u *AgentDecisionUpdateOne) Mutation() *AgentDecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentDecisionUpdate builder.
func (_u *AgentDecisionUpdateOne) Where(ps ...predicate.AgentDecision) *AgentDecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentDecisionUpdateOne) Select(field string, fields ...string) *AgentDecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentDecision entity.
func (_u *AgentDecisionUpdateOne) Save(ctx context.Context) (*AgentDecision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentDecisionUpdateOne) SaveX(ctx context.Context) *AgentDecision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentDecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentDecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentDecisionUpdateOne) check() error {
	if _u.mutation.StepCleared() && len(_u.mutation.StepIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentDecision.step"`)
	}
	return nil
}

func (_u *AgentDecisionUpdateOne) sqlSave(ctx context.Context) (_node *AgentDecision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentdecision.Table, agentdecision.Columns, sqlgraph.NewFieldSpec(agentdecision.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentDecision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentdecision.FieldID)
		for _, f := range fields {
			if !agentdecision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentdecision.FieldID {
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
	if value, ok := _u.mutation.PromptFingerprint(); ok {
		_spec.SetField(agentdecision.FieldPromptFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponsePayload(); ok {
		_spec.SetField(agentdecision.FieldResponsePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResponsePayloadCleared() {
		_spec.ClearField(agentdecision.FieldResponsePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(agentdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(agentdecision.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TokensIn(); ok {
		_spec.SetField(agentdecision.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensIn(); ok {
		_spec.AddField(agentdecision.FieldTokensIn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensOut(); ok {
		_spec.SetField(agentdecision.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensOut(); ok {
		_spec.AddField(agentdecision.FieldTokensOut, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ToolsInvoked(); ok {
		_spec.SetField(agentdecision.FieldToolsInvoked, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolsInvoked(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentdecision.FieldToolsInvoked, value)
		})
	}
	if _u.mutation.ToolsInvokedCleared() {
		_spec.ClearField(agentdecision.FieldToolsInvoked, field.TypeJSON)
	}
	_node = &AgentDecision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentdecision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

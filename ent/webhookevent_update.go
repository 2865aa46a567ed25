// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/webhookevent"
)

// WebhookEventUpdate is the builder for updating WebhookEvent entities.
type WebhookEventUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEventMutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdate) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdate) SetEventType(v webhookevent.EventType) *WebhookEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableEventType(v *webhookevent.EventType) *WebhookEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *WebhookEventUpdate) SetModel(v string) *WebhookEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableModel(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *WebhookEventUpdate) SetRecordID(v int64) *WebhookEventUpdate {
	_u.mutation.ResetRecordID()
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableRecordID(v *int64) *WebhookEventUpdate {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// AddRecordID adds value to the "record_id" field.
func (_u *WebhookEventUpdate) AddRecordID(v int64) *WebhookEventUpdate {
	_u.mutation.AddRecordID(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdate) SetPayload(v map[string]interface{}) *WebhookEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WebhookEventUpdate) ClearPayload() *WebhookEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetPayloadHash sets the "payload_hash" field.
func (_u *WebhookEventUpdate) SetPayloadHash(v string) *WebhookEventUpdate {
	_u.mutation.SetPayloadHash(v)
	return _u
}

// SetNillablePayloadHash sets the "payload_hash" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillablePayloadHash(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetPayloadHash(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *WebhookEventUpdate) SetProcessed(v bool) *WebhookEventUpdate {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableProcessed(v *bool) *WebhookEventUpdate {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WebhookEventUpdate) SetErrorMessage(v string) *WebhookEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WebhookEventUpdate) SetNillableErrorMessage(v *string) *WebhookEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WebhookEventUpdate) ClearErrorMessage() *WebhookEventUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdate) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := webhookevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(webhookevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(webhookevent.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRecordID(); ok {
		_spec.AddField(webhookevent.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(webhookevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.PayloadHash(); ok {
		_spec.SetField(webhookevent.FieldPayloadHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(webhookevent.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(webhookevent.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEventUpdateOne is the builder for updating a single WebhookEvent entity.
type WebhookEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEventMutation
}

// SetEventType sets the "event_type" field.
func (_u *WebhookEventUpdateOne) SetEventType(v webhookevent.EventType) *WebhookEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableEventType(v *webhookevent.EventType) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *WebhookEventUpdateOne) SetModel(v string) *WebhookEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableModel(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRecordID sets the "record_id" field.
func (_u *WebhookEventUpdateOne) SetRecordID(v int64) *WebhookEventUpdateOne {
	_u.mutation.ResetRecordID()
	_u.mutation.SetRecordID(v)
	return _u
}

// SetNillableRecordID sets the "record_id" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableRecordID(v *int64) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetRecordID(*v)
	}
	return _u
}

// AddRecordID adds value to the "record_id" field.
func (_u *WebhookEventUpdateOne) AddRecordID(v int64) *WebhookEventUpdateOne {
	_u.mutation.AddRecordID(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WebhookEventUpdateOne) SetPayload(v map[string]interface{}) *WebhookEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *WebhookEventUpdateOne) ClearPayload() *WebhookEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetPayloadHash sets the "payload_hash" field.
func (_u *WebhookEventUpdateOne) SetPayloadHash(v string) *WebhookEventUpdateOne {
	_u.mutation.SetPayloadHash(v)
	return _u
}

// SetNillablePayloadHash sets the "payload_hash" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillablePayloadHash(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetPayloadHash(*v)
	}
	return _u
}

// SetProcessed sets the "processed" field.
func (_u *WebhookEventUpdateOne) SetProcessed(v bool) *WebhookEventUpdateOne {
	_u.mutation.SetProcessed(v)
	return _u
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableProcessed(v *bool) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetProcessed(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *WebhookEventUpdateOne) SetErrorMessage(v string) *WebhookEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *WebhookEventUpdateOne) SetNillableErrorMessage(v *string) *WebhookEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *WebhookEventUpdateOne) ClearErrorMessage() *WebhookEventUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the WebhookEventMutation object of the builder.
func (_u *WebhookEventUpdateOne) Mutation() *WebhookEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEventUpdate builder.
func (_u *WebhookEventUpdateOne) Where(ps ...predicate.WebhookEvent) *WebhookEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEventUpdateOne) Select(field string, fields ...string) *WebhookEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEvent entity.
func (_u *WebhookEventUpdateOne) Save(ctx context.Context) (*WebhookEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) SaveX(ctx context.Context) *WebhookEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := webhookevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "WebhookEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEventUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookevent.Table, webhookevent.Columns, sqlgraph.NewFieldSpec(webhookevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookevent.FieldID)
		for _, f := range fields {
			if !webhookevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookevent.FieldID {
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
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(webhookevent.FieldEventType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(webhookevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordID(); ok {
		_spec.SetField(webhookevent.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRecordID(); ok {
		_spec.AddField(webhookevent.FieldRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(webhookevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(webhookevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.PayloadHash(); ok {
		_spec.SetField(webhookevent.FieldPayloadHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processed(); ok {
		_spec.SetField(webhookevent.FieldProcessed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(webhookevent.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(webhookevent.FieldErrorMessage, field.TypeString)
	}
	_node = &WebhookEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

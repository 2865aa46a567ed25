// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/reconciliationsession"
)

// ReconciliationSessionCreate is the builder for creating a ReconciliationSession entity.
type ReconciliationSessionCreate struct {
	config
	mutation *ReconciliationSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReconciliationSessionCreate) SetUserID(v int64) *ReconciliationSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetJournalID sets the "journal_id" field.
func (_c *ReconciliationSessionCreate) SetJournalID(v int64) *ReconciliationSessionCreate {
	_c.mutation.SetJournalID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReconciliationSessionCreate) SetStatus(v reconciliationsession.Status) *ReconciliationSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableStatus(v *reconciliationsession.Status) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalLines sets the "total_lines" field.
func (_c *ReconciliationSessionCreate) SetTotalLines(v int) *ReconciliationSessionCreate {
	_c.mutation.SetTotalLines(v)
	return _c
}

// SetNillableTotalLines sets the "total_lines" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableTotalLines(v *int) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetTotalLines(*v)
	}
	return _c
}

// SetAutoMatched sets the "auto_matched" field.
func (_c *ReconciliationSessionCreate) SetAutoMatched(v int) *ReconciliationSessionCreate {
	_c.mutation.SetAutoMatched(v)
	return _c
}

// SetNillableAutoMatched sets the "auto_matched" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableAutoMatched(v *int) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetAutoMatched(*v)
	}
	return _c
}

// SetManuallyMatched sets the "manually_matched" field.
func (_c *ReconciliationSessionCreate) SetManuallyMatched(v int) *ReconciliationSessionCreate {
	_c.mutation.SetManuallyMatched(v)
	return _c
}

// SetNillableManuallyMatched sets the "manually_matched" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableManuallyMatched(v *int) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetManuallyMatched(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *ReconciliationSessionCreate) SetSkipped(v int) *ReconciliationSessionCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableSkipped(v *int) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetRemaining sets the "remaining" field.
func (_c *ReconciliationSessionCreate) SetRemaining(v int) *ReconciliationSessionCreate {
	_c.mutation.SetRemaining(v)
	return _c
}

// SetNillableRemaining sets the "remaining" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableRemaining(v *int) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetRemaining(*v)
	}
	return _c
}

// SetLearnedRules sets the "learned_rules" field.
func (_c *ReconciliationSessionCreate) SetLearnedRules(v []map[string]interface{}) *ReconciliationSessionCreate {
	_c.mutation.SetLearnedRules(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReconciliationSessionCreate) SetCreatedAt(v time.Time) *ReconciliationSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableCreatedAt(v *time.Time) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReconciliationSessionCreate) SetUpdatedAt(v time.Time) *ReconciliationSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableUpdatedAt(v *time.Time) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ReconciliationSessionCreate) SetCompletedAt(v time.Time) *ReconciliationSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ReconciliationSessionCreate) SetNillableCompletedAt(v *time.Time) *ReconciliationSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReconciliationSessionCreate) SetID(v string) *ReconciliationSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReconciliationSessionMutation object of the builder.
func (_c *ReconciliationSessionCreate) Mutation() *ReconciliationSessionMutation {
	return _c.mutation
}

// Save creates the ReconciliationSession in the database.
func (_c *ReconciliationSessionCreate) Save(ctx context.Context) (*ReconciliationSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReconciliationSessionCreate) SaveX(ctx context.Context) *ReconciliationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReconciliationSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReconciliationSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReconciliationSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := reconciliationsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalLines(); !ok {
		v := reconciliationsession.DefaultTotalLines
		_c.mutation.SetTotalLines(v)
	}
	if _, ok := _c.mutation.AutoMatched(); !ok {
		v := reconciliationsession.DefaultAutoMatched
		_c.mutation.SetAutoMatched(v)
	}
	if _, ok := _c.mutation.ManuallyMatched(); !ok {
		v := reconciliationsession.DefaultManuallyMatched
		_c.mutation.SetManuallyMatched(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := reconciliationsession.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.Remaining(); !ok {
		v := reconciliationsession.DefaultRemaining
		_c.mutation.SetRemaining(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reconciliationsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reconciliationsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReconciliationSessionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReconciliationSession.user_id"`)}
	}
	if _, ok := _c.mutation.JournalID(); !ok {
		return &ValidationError{Name: "journal_id", err: errors.New(`ent: missing required field "ReconciliationSession.journal_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReconciliationSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reconciliationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconciliationSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalLines(); !ok {
		return &ValidationError{Name: "total_lines", err: errors.New(`ent: missing required field "ReconciliationSession.total_lines"`)}
	}
	if _, ok := _c.mutation.AutoMatched(); !ok {
		return &ValidationError{Name: "auto_matched", err: errors.New(`ent: missing required field "ReconciliationSession.auto_matched"`)}
	}
	if _, ok := _c.mutation.ManuallyMatched(); !ok {
		return &ValidationError{Name: "manually_matched", err: errors.New(`ent: missing required field "ReconciliationSession.manually_matched"`)}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "ReconciliationSession.skipped"`)}
	}
	if _, ok := _c.mutation.Remaining(); !ok {
		return &ValidationError{Name: "remaining", err: errors.New(`ent: missing required field "ReconciliationSession.remaining"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReconciliationSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReconciliationSession.updated_at"`)}
	}
	return nil
}

func (_c *ReconciliationSessionCreate) sqlSave(ctx context.Context) (*ReconciliationSession, error) {
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
			return nil, fmt.Errorf("unexpected ReconciliationSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReconciliationSessionCreate) createSpec() (*ReconciliationSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ReconciliationSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reconciliationsession.Table, sqlgraph.NewFieldSpec(reconciliationsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reconciliationsession.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.JournalID(); ok {
		_spec.SetField(reconciliationsession.FieldJournalID, field.TypeInt64, value)
		_node.JournalID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reconciliationsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalLines(); ok {
		_spec.SetField(reconciliationsession.FieldTotalLines, field.TypeInt, value)
		_node.TotalLines = value
	}
	if value, ok := _c.mutation.AutoMatched(); ok {
		_spec.SetField(reconciliationsession.FieldAutoMatched, field.TypeInt, value)
		_node.AutoMatched = value
	}
	if value, ok := _c.mutation.ManuallyMatched(); ok {
		_spec.SetField(reconciliationsession.FieldManuallyMatched, field.TypeInt, value)
		_node.ManuallyMatched = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(reconciliationsession.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.Remaining(); ok {
		_spec.SetField(reconciliationsession.FieldRemaining, field.TypeInt, value)
		_node.Remaining = value
	}
	if value, ok := _c.mutation.LearnedRules(); ok {
		_spec.SetField(reconciliationsession.FieldLearnedRules, field.TypeJSON, value)
		_node.LearnedRules = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reconciliationsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reconciliationsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(reconciliationsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ReconciliationSessionCreateBulk is the builder for creating many ReconciliationSession entities in bulk.
type ReconciliationSessionCreateBulk struct {
	config
	err      error
	builders []*ReconciliationSessionCreate
}

// Save creates the ReconciliationSession entities in the database.
func (_c *ReconciliationSessionCreateBulk) Save(ctx context.Context) ([]*ReconciliationSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReconciliationSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReconciliationSessionMutation)
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
func (_c *ReconciliationSessionCreateBulk) SaveX(ctx context.Context) []*ReconciliationSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReconciliationSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReconciliationSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

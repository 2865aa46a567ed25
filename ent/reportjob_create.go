// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/reportjob"
)

// ReportJobCreate is the builder for creating a ReportJob entity.
type ReportJobCreate struct {
	config
	mutation *ReportJobMutation
	hooks    []Hook
}

// SetQuery sets the "query" field.
func (_c *ReportJobCreate) SetQuery(v string) *ReportJobCreate {
	_c.mutation.SetQuery(v)
	return _c
}

// SetRequestedBy sets the "requested_by" field.
func (_c *ReportJobCreate) SetRequestedBy(v string) *ReportJobCreate {
	_c.mutation.SetRequestedBy(v)
	return _c
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableRequestedBy(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetRequestedBy(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportJobCreate) SetStatus(v reportjob.Status) *ReportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableStatus(v *reportjob.Status) *ReportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *ReportJobCreate) SetPlan(v map[string]interface{}) *ReportJobCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ReportJobCreate) SetResult(v map[string]interface{}) *ReportJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNarrative sets the "narrative" field.
func (_c *ReportJobCreate) SetNarrative(v string) *ReportJobCreate {
	_c.mutation.SetNarrative(v)
	return _c
}

// SetNillableNarrative sets the "narrative" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableNarrative(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetNarrative(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *ReportJobCreate) SetTokensUsed(v int) *ReportJobCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableTokensUsed(v *int) *ReportJobCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ReportJobCreate) SetErrorMessage(v string) *ReportJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableErrorMessage(v *string) *ReportJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportJobCreate) SetCreatedAt(v time.Time) *ReportJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableCreatedAt(v *time.Time) *ReportJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ReportJobCreate) SetCompletedAt(v time.Time) *ReportJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ReportJobCreate) SetNillableCompletedAt(v *time.Time) *ReportJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportJobCreate) SetID(v string) *ReportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ReportJobMutation object of the builder.
func (_c *ReportJobCreate) Mutation() *ReportJobMutation {
	return _c.mutation
}

// Save creates the ReportJob in the database.
func (_c *ReportJobCreate) Save(ctx context.Context) (*ReportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportJobCreate) SaveX(ctx context.Context) *ReportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := reportjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := reportjob.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reportjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportJobCreate) check() error {
	if _, ok := _c.mutation.Query(); !ok {
		return &ValidationError{Name: "query", err: errors.New(`ent: missing required field "ReportJob.query"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ReportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reportjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "ReportJob.tokens_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReportJob.created_at"`)}
	}
	return nil
}

func (_c *ReportJobCreate) sqlSave(ctx context.Context) (*ReportJob, error) {
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
			return nil, fmt.Errorf("unexpected ReportJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportJobCreate) createSpec() (*ReportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportjob.Table, sqlgraph.NewFieldSpec(reportjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Query(); ok {
		_spec.SetField(reportjob.FieldQuery, field.TypeString, value)
		_node.Query = value
	}
	if value, ok := _c.mutation.RequestedBy(); ok {
		_spec.SetField(reportjob.FieldRequestedBy, field.TypeString, value)
		_node.RequestedBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reportjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(reportjob.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(reportjob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Narrative(); ok {
		_spec.SetField(reportjob.FieldNarrative, field.TypeString, value)
		_node.Narrative = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(reportjob.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(reportjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reportjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(reportjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// ReportJobCreateBulk is the builder for creating many ReportJob entities in bulk.
type ReportJobCreateBulk struct {
	config
	err      error
	builders []*ReportJobCreate
}

// Save creates the ReportJob entities in the database.
func (_c *ReportJobCreateBulk) Save(ctx context.Context) ([]*ReportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportJobMutation)
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
func (_c *ReportJobCreateBulk) SaveX(ctx context.Context) []*ReportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

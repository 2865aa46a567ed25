// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/monthendclosing"
)

// MonthEndClosingCreate is the builder for creating a MonthEndClosing entity.
type MonthEndClosingCreate struct {
	config
	mutation *MonthEndClosingMutation
	hooks    []Hook
}

// SetPeriod sets the "period" field.
func (_c *MonthEndClosingCreate) SetPeriod(v string) *MonthEndClosingCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MonthEndClosingCreate) SetStatus(v monthendclosing.Status) *MonthEndClosingCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MonthEndClosingCreate) SetNillableStatus(v *monthendclosing.Status) *MonthEndClosingCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReadinessScore sets the "readiness_score" field.
func (_c *MonthEndClosingCreate) SetReadinessScore(v float64) *MonthEndClosingCreate {
	_c.mutation.SetReadinessScore(v)
	return _c
}

// SetNillableReadinessScore sets the "readiness_score" field if the given value is not nil.
func (_c *MonthEndClosingCreate) SetNillableReadinessScore(v *float64) *MonthEndClosingCreate {
	if v != nil {
		_c.SetReadinessScore(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *MonthEndClosingCreate) SetSummary(v map[string]interface{}) *MonthEndClosingCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *MonthEndClosingCreate) SetStartedAt(v time.Time) *MonthEndClosingCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *MonthEndClosingCreate) SetNillableStartedAt(v *time.Time) *MonthEndClosingCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *MonthEndClosingCreate) SetCompletedAt(v time.Time) *MonthEndClosingCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *MonthEndClosingCreate) SetNillableCompletedAt(v *time.Time) *MonthEndClosingCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonthEndClosingCreate) SetID(v string) *MonthEndClosingCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the ClosingStep entity by IDs.
func (_c *MonthEndClosingCreate) AddStepIDs(ids ...string) *MonthEndClosingCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the ClosingStep entity.
func (_c *MonthEndClosingCreate) AddSteps(v ...*ClosingStep) *MonthEndClosingCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the MonthEndClosingMutation object of the builder.
func (_c *MonthEndClosingCreate) Mutation() *MonthEndClosingMutation {
	return _c.mutation
}

// Save creates the MonthEndClosing in the database.
func (_c *MonthEndClosingCreate) Save(ctx context.Context) (*MonthEndClosing, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonthEndClosingCreate) SaveX(ctx context.Context) *MonthEndClosing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonthEndClosingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonthEndClosingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonthEndClosingCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := monthendclosing.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReadinessScore(); !ok {
		v := monthendclosing.DefaultReadinessScore
		_c.mutation.SetReadinessScore(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := monthendclosing.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonthEndClosingCreate) check() error {
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "MonthEndClosing.period"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "MonthEndClosing.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := monthendclosing.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonthEndClosing.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReadinessScore(); !ok {
		return &ValidationError{Name: "readiness_score", err: errors.New(`ent: missing required field "MonthEndClosing.readiness_score"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "MonthEndClosing.started_at"`)}
	}
	return nil
}

func (_c *MonthEndClosingCreate) sqlSave(ctx context.Context) (*MonthEndClosing, error) {
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
			return nil, fmt.Errorf("unexpected MonthEndClosing.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonthEndClosingCreate) createSpec() (*MonthEndClosing, *sqlgraph.CreateSpec) {
	var (
		_node = &MonthEndClosing{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monthendclosing.Table, sqlgraph.NewFieldSpec(monthendclosing.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(monthendclosing.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(monthendclosing.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReadinessScore(); ok {
		_spec.SetField(monthendclosing.FieldReadinessScore, field.TypeFloat64, value)
		_node.ReadinessScore = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(monthendclosing.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(monthendclosing.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(monthendclosing.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MonthEndClosingCreateBulk is the builder for creating many MonthEndClosing entities in bulk.
type MonthEndClosingCreateBulk struct {
	config
	err      error
	builders []*MonthEndClosingCreate
}

// Save creates the MonthEndClosing entities in the database.
func (_c *MonthEndClosingCreateBulk) Save(ctx context.Context) ([]*MonthEndClosing, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonthEndClosing, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonthEndClosingMutation)
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
func (_c *MonthEndClosingCreateBulk) SaveX(ctx context.Context) []*MonthEndClosing {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonthEndClosingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonthEndClosingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

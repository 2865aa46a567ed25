// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/documentjob"
	"github.com/steward-ai/steward/ent/extractioncorrection"
)

// ExtractionCorrectionCreate is the builder for creating a ExtractionCorrection entity.
type ExtractionCorrectionCreate struct {
	config
	mutation *ExtractionCorrectionMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ExtractionCorrectionCreate) SetJobID(v string) *ExtractionCorrectionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetFieldName sets the "field_name" field.
func (_c *ExtractionCorrectionCreate) SetFieldName(v string) *ExtractionCorrectionCreate {
	_c.mutation.SetFieldName(v)
	return _c
}

// SetExtractedValue sets the "extracted_value" field.
func (_c *ExtractionCorrectionCreate) SetExtractedValue(v string) *ExtractionCorrectionCreate {
	_c.mutation.SetExtractedValue(v)
	return _c
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_c *ExtractionCorrectionCreate) SetNillableExtractedValue(v *string) *ExtractionCorrectionCreate {
	if v != nil {
		_c.SetExtractedValue(*v)
	}
	return _c
}

// SetCorrectedValue sets the "corrected_value" field.
func (_c *ExtractionCorrectionCreate) SetCorrectedValue(v string) *ExtractionCorrectionCreate {
	_c.mutation.SetCorrectedValue(v)
	return _c
}

// SetCorrectedBy sets the "corrected_by" field.
func (_c *ExtractionCorrectionCreate) SetCorrectedBy(v string) *ExtractionCorrectionCreate {
	_c.mutation.SetCorrectedBy(v)
	return _c
}

// SetNillableCorrectedBy sets the "corrected_by" field if the given value is not nil.
func (_c *ExtractionCorrectionCreate) SetNillableCorrectedBy(v *string) *ExtractionCorrectionCreate {
	if v != nil {
		_c.SetCorrectedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCorrectionCreate) SetCreatedAt(v time.Time) *ExtractionCorrectionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCorrectionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCorrectionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionCorrectionCreate) SetID(v string) *ExtractionCorrectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the DocumentJob entity.
func (_c *ExtractionCorrectionCreate) SetJob(v *DocumentJob) *ExtractionCorrectionCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ExtractionCorrectionMutation object of the builder.
func (_c *ExtractionCorrectionCreate) Mutation() *ExtractionCorrectionMutation {
	return _c.mutation
}

// Save creates the ExtractionCorrection in the database.
func (_c *ExtractionCorrectionCreate) Save(ctx context.Context) (*ExtractionCorrection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCorrectionCreate) SaveX(ctx context.Context) *ExtractionCorrection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCorrectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCorrectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCorrectionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractioncorrection.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCorrectionCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ExtractionCorrection.job_id"`)}
	}
	if _, ok := _c.mutation.FieldName(); !ok {
		return &ValidationError{Name: "field_name", err: errors.New(`ent: missing required field "ExtractionCorrection.field_name"`)}
	}
	if _, ok := _c.mutation.CorrectedValue(); !ok {
		return &ValidationError{Name: "corrected_value", err: errors.New(`ent: missing required field "ExtractionCorrection.corrected_value"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionCorrection.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ExtractionCorrection.job"`)}
	}
	return nil
}

func (_c *ExtractionCorrectionCreate) sqlSave(ctx context.Context) (*ExtractionCorrection, error) {
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
			return nil, fmt.Errorf("unexpected ExtractionCorrection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionCorrectionCreate) createSpec() (*ExtractionCorrection, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionCorrection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractioncorrection.Table, sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FieldName(); ok {
		_spec.SetField(extractioncorrection.FieldFieldName, field.TypeString, value)
		_node.FieldName = value
	}
	if value, ok := _c.mutation.ExtractedValue(); ok {
		_spec.SetField(extractioncorrection.FieldExtractedValue, field.TypeString, value)
		_node.ExtractedValue = value
	}
	if value, ok := _c.mutation.CorrectedValue(); ok {
		_spec.SetField(extractioncorrection.FieldCorrectedValue, field.TypeString, value)
		_node.CorrectedValue = value
	}
	if value, ok := _c.mutation.CorrectedBy(); ok {
		_spec.SetField(extractioncorrection.FieldCorrectedBy, field.TypeString, value)
		_node.CorrectedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractioncorrection.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractioncorrection.JobTable,
			Columns: []string{extractioncorrection.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionCorrectionCreateBulk is the builder for creating many ExtractionCorrection entities in bulk.
type ExtractionCorrectionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCorrectionCreate
}

// Save creates the ExtractionCorrection entities in the database.
func (_c *ExtractionCorrectionCreateBulk) Save(ctx context.Context) ([]*ExtractionCorrection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionCorrection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionCorrectionMutation)
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
func (_c *ExtractionCorrectionCreateBulk) SaveX(ctx context.Context) []*ExtractionCorrection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCorrectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCorrectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

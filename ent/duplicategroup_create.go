// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/duplicategroup"
)

// DuplicateGroupCreate is the builder for creating a DuplicateGroup entity.
type DuplicateGroupCreate struct {
	config
	mutation *DuplicateGroupMutation
	hooks    []Hook
}

// SetScanID sets the "scan_id" field.
func (_c *DuplicateGroupCreate) SetScanID(v string) *DuplicateGroupCreate {
	_c.mutation.SetScanID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *DuplicateGroupCreate) SetEntityType(v string) *DuplicateGroupCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetRecordIds sets the "record_ids" field.
func (_c *DuplicateGroupCreate) SetRecordIds(v []int64) *DuplicateGroupCreate {
	_c.mutation.SetRecordIds(v)
	return _c
}

// SetMasterRecordID sets the "master_record_id" field.
func (_c *DuplicateGroupCreate) SetMasterRecordID(v int64) *DuplicateGroupCreate {
	_c.mutation.SetMasterRecordID(v)
	return _c
}

// SetSimilarityScore sets the "similarity_score" field.
func (_c *DuplicateGroupCreate) SetSimilarityScore(v float64) *DuplicateGroupCreate {
	_c.mutation.SetSimilarityScore(v)
	return _c
}

// SetMatchedFields sets the "matched_fields" field.
func (_c *DuplicateGroupCreate) SetMatchedFields(v []string) *DuplicateGroupCreate {
	_c.mutation.SetMatchedFields(v)
	return _c
}

// SetResolution sets the "resolution" field.
func (_c *DuplicateGroupCreate) SetResolution(v duplicategroup.Resolution) *DuplicateGroupCreate {
	_c.mutation.SetResolution(v)
	return _c
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableResolution(v *duplicategroup.Resolution) *DuplicateGroupCreate {
	if v != nil {
		_c.SetResolution(*v)
	}
	return _c
}

// SetResolvedBy sets the "resolved_by" field.
func (_c *DuplicateGroupCreate) SetResolvedBy(v string) *DuplicateGroupCreate {
	_c.mutation.SetResolvedBy(v)
	return _c
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableResolvedBy(v *string) *DuplicateGroupCreate {
	if v != nil {
		_c.SetResolvedBy(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *DuplicateGroupCreate) SetResolvedAt(v time.Time) *DuplicateGroupCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableResolvedAt(v *time.Time) *DuplicateGroupCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DuplicateGroupCreate) SetID(v string) *DuplicateGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetScan sets the "scan" edge to the DedupScan entity.
func (_c *DuplicateGroupCreate) SetScan(v *DedupScan) *DuplicateGroupCreate {
	return _c.SetScanID(v.ID)
}

// Mutation returns the DuplicateGroupMutation object of the builder.
func (_c *DuplicateGroupCreate) Mutation() *DuplicateGroupMutation {
	return _c.mutation
}

// Save creates the DuplicateGroup in the database.
func (_c *DuplicateGroupCreate) Save(ctx context.Context) (*DuplicateGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DuplicateGroupCreate) SaveX(ctx context.Context) *DuplicateGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DuplicateGroupCreate) defaults() {
	if _, ok := _c.mutation.Resolution(); !ok {
		v := duplicategroup.DefaultResolution
		_c.mutation.SetResolution(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DuplicateGroupCreate) check() error {
	if _, ok := _c.mutation.ScanID(); !ok {
		return &ValidationError{Name: "scan_id", err: errors.New(`ent: missing required field "DuplicateGroup.scan_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "DuplicateGroup.entity_type"`)}
	}
	if _, ok := _c.mutation.RecordIds(); !ok {
		return &ValidationError{Name: "record_ids", err: errors.New(`ent: missing required field "DuplicateGroup.record_ids"`)}
	}
	if _, ok := _c.mutation.MasterRecordID(); !ok {
		return &ValidationError{Name: "master_record_id", err: errors.New(`ent: missing required field "DuplicateGroup.master_record_id"`)}
	}
	if _, ok := _c.mutation.SimilarityScore(); !ok {
		return &ValidationError{Name: "similarity_score", err: errors.New(`ent: missing required field "DuplicateGroup.similarity_score"`)}
	}
	if _, ok := _c.mutation.Resolution(); !ok {
		return &ValidationError{Name: "resolution", err: errors.New(`ent: missing required field "DuplicateGroup.resolution"`)}
	}
	if v, ok := _c.mutation.Resolution(); ok {
		if err := duplicategroup.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "DuplicateGroup.resolution": %w`, err)}
		}
	}
	if len(_c.mutation.ScanIDs()) == 0 {
		return &ValidationError{Name: "scan", err: errors.New(`ent: missing required edge "DuplicateGroup.scan"`)}
	}
	return nil
}

func (_c *DuplicateGroupCreate) sqlSave(ctx context.Context) (*DuplicateGroup, error) {
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
			return nil, fmt.Errorf("unexpected DuplicateGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DuplicateGroupCreate) createSpec() (*DuplicateGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &DuplicateGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(duplicategroup.Table, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(duplicategroup.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.RecordIds(); ok {
		_spec.SetField(duplicategroup.FieldRecordIds, field.TypeJSON, value)
		_node.RecordIds = value
	}
	if value, ok := _c.mutation.MasterRecordID(); ok {
		_spec.SetField(duplicategroup.FieldMasterRecordID, field.TypeInt64, value)
		_node.MasterRecordID = value
	}
	if value, ok := _c.mutation.SimilarityScore(); ok {
		_spec.SetField(duplicategroup.FieldSimilarityScore, field.TypeFloat64, value)
		_node.SimilarityScore = value
	}
	if value, ok := _c.mutation.MatchedFields(); ok {
		_spec.SetField(duplicategroup.FieldMatchedFields, field.TypeJSON, value)
		_node.MatchedFields = value
	}
	if value, ok := _c.mutation.Resolution(); ok {
		_spec.SetField(duplicategroup.FieldResolution, field.TypeEnum, value)
		_node.Resolution = value
	}
	if value, ok := _c.mutation.ResolvedBy(); ok {
		_spec.SetField(duplicategroup.FieldResolvedBy, field.TypeString, value)
		_node.ResolvedBy = &value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicategroup.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.ScanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   duplicategroup.ScanTable,
			Columns: []string{duplicategroup.ScanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dedupscan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DuplicateGroupCreateBulk is the builder for creating many DuplicateGroup entities in bulk.
type DuplicateGroupCreateBulk struct {
	config
	err      error
	builders []*DuplicateGroupCreate
}

// Save creates the DuplicateGroup entities in the database.
func (_c *DuplicateGroupCreateBulk) Save(ctx context.Context) ([]*DuplicateGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DuplicateGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DuplicateGroupMutation)
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
func (_c *DuplicateGroupCreateBulk) SaveX(ctx context.Context) []*DuplicateGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

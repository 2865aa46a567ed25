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

// DedupScanCreate is the builder for creating a DedupScan entity.
type DedupScanCreate struct {
	config
	mutation *DedupScanMutation
	hooks    []Hook
}

// SetScanType sets the "scan_type" field.
func (_c *DedupScanCreate) SetScanType(v string) *DedupScanCreate {
	_c.mutation.SetScanType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DedupScanCreate) SetStatus(v dedupscan.Status) *DedupScanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DedupScanCreate) SetNillableStatus(v *dedupscan.Status) *DedupScanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRecordsScanned sets the "records_scanned" field.
func (_c *DedupScanCreate) SetRecordsScanned(v int) *DedupScanCreate {
	_c.mutation.SetRecordsScanned(v)
	return _c
}

// SetNillableRecordsScanned sets the "records_scanned" field if the given value is not nil.
func (_c *DedupScanCreate) SetNillableRecordsScanned(v *int) *DedupScanCreate {
	if v != nil {
		_c.SetRecordsScanned(*v)
	}
	return _c
}

// SetGroupsFound sets the "groups_found" field.
func (_c *DedupScanCreate) SetGroupsFound(v int) *DedupScanCreate {
	_c.mutation.SetGroupsFound(v)
	return _c
}

// SetNillableGroupsFound sets the "groups_found" field if the given value is not nil.
func (_c *DedupScanCreate) SetNillableGroupsFound(v *int) *DedupScanCreate {
	if v != nil {
		_c.SetGroupsFound(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DedupScanCreate) SetCreatedAt(v time.Time) *DedupScanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DedupScanCreate) SetNillableCreatedAt(v *time.Time) *DedupScanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DedupScanCreate) SetCompletedAt(v time.Time) *DedupScanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DedupScanCreate) SetNillableCompletedAt(v *time.Time) *DedupScanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DedupScanCreate) SetErrorMessage(v string) *DedupScanCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DedupScanCreate) SetNillableErrorMessage(v *string) *DedupScanCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DedupScanCreate) SetID(v string) *DedupScanCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddGroupIDs adds the "groups" edge to the DuplicateGroup entity by IDs.
func (_c *DedupScanCreate) AddGroupIDs(ids ...string) *DedupScanCreate {
	_c.mutation.AddGroupIDs(ids...)
	return _c
}

// AddGroups adds the "groups" edges to the DuplicateGroup entity.
func (_c *DedupScanCreate) AddGroups(v ...*DuplicateGroup) *DedupScanCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGroupIDs(ids...)
}

// Mutation returns the DedupScanMutation object of the builder.
func (_c *DedupScanCreate) Mutation() *DedupScanMutation {
	return _c.mutation
}

// Save creates the DedupScan in the database.
func (_c *DedupScanCreate) Save(ctx context.Context) (*DedupScan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DedupScanCreate) SaveX(ctx context.Context) *DedupScan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DedupScanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DedupScanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DedupScanCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := dedupscan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RecordsScanned(); !ok {
		v := dedupscan.DefaultRecordsScanned
		_c.mutation.SetRecordsScanned(v)
	}
	if _, ok := _c.mutation.GroupsFound(); !ok {
		v := dedupscan.DefaultGroupsFound
		_c.mutation.SetGroupsFound(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dedupscan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DedupScanCreate) check() error {
	if _, ok := _c.mutation.ScanType(); !ok {
		return &ValidationError{Name: "scan_type", err: errors.New(`ent: missing required field "DedupScan.scan_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DedupScan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dedupscan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DedupScan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordsScanned(); !ok {
		return &ValidationError{Name: "records_scanned", err: errors.New(`ent: missing required field "DedupScan.records_scanned"`)}
	}
	if _, ok := _c.mutation.GroupsFound(); !ok {
		return &ValidationError{Name: "groups_found", err: errors.New(`ent: missing required field "DedupScan.groups_found"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DedupScan.created_at"`)}
	}
	return nil
}

func (_c *DedupScanCreate) sqlSave(ctx context.Context) (*DedupScan, error) {
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
			return nil, fmt.Errorf("unexpected DedupScan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DedupScanCreate) createSpec() (*DedupScan, *sqlgraph.CreateSpec) {
	var (
		_node = &DedupScan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dedupscan.Table, sqlgraph.NewFieldSpec(dedupscan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ScanType(); ok {
		_spec.SetField(dedupscan.FieldScanType, field.TypeString, value)
		_node.ScanType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dedupscan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RecordsScanned(); ok {
		_spec.SetField(dedupscan.FieldRecordsScanned, field.TypeInt, value)
		_node.RecordsScanned = value
	}
	if value, ok := _c.mutation.GroupsFound(); ok {
		_spec.SetField(dedupscan.FieldGroupsFound, field.TypeInt, value)
		_node.GroupsFound = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dedupscan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(dedupscan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(dedupscan.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.GroupsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dedupscan.GroupsTable,
			Columns: []string{dedupscan.GroupsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DedupScanCreateBulk is the builder for creating many DedupScan entities in bulk.
type DedupScanCreateBulk struct {
	config
	err      error
	builders []*DedupScanCreate
}

// Save creates the DedupScan entities in the database.
func (_c *DedupScanCreateBulk) Save(ctx context.Context) ([]*DedupScan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DedupScan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DedupScanMutation)
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
func (_c *DedupScanCreateBulk) SaveX(ctx context.Context) []*DedupScan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DedupScanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DedupScanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

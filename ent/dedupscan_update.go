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
	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/duplicategroup"
	"github.com/steward-ai/steward/ent/predicate"
)

// DedupScanUpdate is the builder for updating DedupScan entities.
type DedupScanUpdate struct {
	config
	hooks    []Hook
	mutation *DedupScanMutation
}

// Where appends a list predicates to the DedupScanUpdate builder.
func (_u *DedupScanUpdate) Where(ps ...predicate.DedupScan) *DedupScanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScanType sets the "scan_type" field.
func (_u *DedupScanUpdate) SetScanType(v string) *DedupScanUpdate {
	_u.mutation.SetScanType(v)
	return _u
}

// SetNillableScanType sets the "scan_type" field if the given value is not nil.
func (_u *DedupScanUpdate) SetNillableScanType(v *string) *DedupScanUpdate {
	if v != nil {
		_u.SetScanType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DedupScanUpdate) SetStatus(v dedupscan.Status) *DedupScanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DedupScanUpdate) SetNillableStatus(v *dedupscan.Status) *DedupScanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecordsScanned sets the "records_scanned" field.
func (_u *DedupScanUpdate) SetRecordsScanned(v int) *DedupScanUpdate {
	_u.mutation.ResetRecordsScanned()
	_u.mutation.SetRecordsScanned(v)
	return _u
}

// SetNillableRecordsScanned sets the "records_scanned" field if the given value is not nil.
func (_u *DedupScanUpdate) SetNillableRecordsScanned(v *int) *DedupScanUpdate {
	if v != nil {
		_u.SetRecordsScanned(*v)
	}
	return _u
}

// AddRecordsScanned adds value to the "records_scanned" field.
func (_u *DedupScanUpdate) AddRecordsScanned(v int) *DedupScanUpdate {
	_u.mutation.AddRecordsScanned(v)
	return _u
}

// SetGroupsFound sets the "groups_found" field.
func (_u *DedupScanUpdate) SetGroupsFound(v int) *DedupScanUpdate {
	_u.mutation.ResetGroupsFound()
	_u.mutation.SetGroupsFound(v)
	return _u
}

// SetNillableGroupsFound sets the "groups_found" field if the given value is not nil.
func (_u *DedupScanUpdate) SetNillableGroupsFound(v *int) *DedupScanUpdate {
	if v != nil {
		_u.SetGroupsFound(*v)
	}
	return _u
}

// AddGroupsFound adds value to the "groups_found" field.
func (_u *DedupScanUpdate) AddGroupsFound(v int) *DedupScanUpdate {
	_u.mutation.AddGroupsFound(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DedupScanUpdate) SetCompletedAt(v time.Time) *DedupScanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DedupScanUpdate) SetNillableCompletedAt(v *time.Time) *DedupScanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DedupScanUpdate) ClearCompletedAt() *DedupScanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DedupScanUpdate) SetErrorMessage(v string) *DedupScanUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DedupScanUpdate) SetNillableErrorMessage(v *string) *DedupScanUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DedupScanUpdate) ClearErrorMessage() *DedupScanUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddGroupIDs adds the "groups" edge to the DuplicateGroup entity by IDs.
func (_u *DedupScanUpdate) AddGroupIDs(ids ...string) *DedupScanUpdate {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the DuplicateGroup entity.
func (_u *DedupScanUpdate) AddGroups(v ...*DuplicateGroup) *DedupScanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// Mutation returns the DedupScanMutation object of the builder.
func (_u *DedupScanUpdate) Mutation() *DedupScanMutation {
	return _u.mutation
}

// ClearGroups clears all "groups" edges to the DuplicateGroup entity.
func (_u *DedupScanUpdate) ClearGroups() *DedupScanUpdate {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to DuplicateGroup entities by IDs.
func (_u *DedupScanUpdate) RemoveGroupIDs(ids ...string) *DedupScanUpdate {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to DuplicateGroup entities.
func (_u *DedupScanUpdate) RemoveGroups(v ...*DuplicateGroup) *DedupScanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DedupScanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DedupScanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DedupScanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DedupScanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DedupScanUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dedupscan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DedupScan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DedupScanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dedupscan.Table, dedupscan.Columns, sqlgraph.NewFieldSpec(dedupscan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScanType(); ok {
		_spec.SetField(dedupscan.FieldScanType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dedupscan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecordsScanned(); ok {
		_spec.SetField(dedupscan.FieldRecordsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsScanned(); ok {
		_spec.AddField(dedupscan.FieldRecordsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GroupsFound(); ok {
		_spec.SetField(dedupscan.FieldGroupsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupsFound(); ok {
		_spec.AddField(dedupscan.FieldGroupsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dedupscan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dedupscan.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dedupscan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(dedupscan.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dedupscan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DedupScanUpdateOne is the builder for updating a single DedupScan entity.
type DedupScanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DedupScanMutation
}

// SetScanType sets the "scan_type" field.
func (_u *DedupScanUpdateOne) SetScanType(v string) *DedupScanUpdateOne {
	_u.mutation.SetScanType(v)
	return _u
}

// SetNillableScanType sets the "scan_type" field if the given value is not nil.
func (_u *DedupScanUpdateOne) SetNillableScanType(v *string) *DedupScanUpdateOne {
	if v != nil {
		_u.SetScanType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DedupScanUpdateOne) SetStatus(v dedupscan.Status) *DedupScanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DedupScanUpdateOne) SetNillableStatus(v *dedupscan.Status) *DedupScanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRecordsScanned sets the "records_scanned" field.
func (_u *DedupScanUpdateOne) SetRecordsScanned(v int) *DedupScanUpdateOne {
	_u.mutation.ResetRecordsScanned()
	_u.mutation.SetRecordsScanned(v)
	return _u
}

// SetNillableRecordsScanned sets the "records_scanned" field if the given value is not nil.
func (_u *DedupScanUpdateOne) SetNillableRecordsScanned(v *int) *DedupScanUpdateOne {
	if v != nil {
		_u.SetRecordsScanned(*v)
	}
	return _u
}

// AddRecordsScanned adds value to the "records_scanned" field.
func (_u *DedupScanUpdateOne) AddRecordsScanned(v int) *DedupScanUpdateOne {
	_u.mutation.AddRecordsScanned(v)
	return _u
}

// SetGroupsFound sets the "groups_found" field.
func (_u *DedupScanUpdateOne) SetGroupsFound(v int) *DedupScanUpdateOne {
	_u.mutation.ResetGroupsFound()
	_u.mutation.SetGroupsFound(v)
	return _u
}

// SetNillableGroupsFound sets the "groups_found" field if the given value is not nil.
func (_u *DedupScanUpdateOne) SetNillableGroupsFound(v *int) *DedupScanUpdateOne {
	if v != nil {
		_u.SetGroupsFound(*v)
	}
	return _u
}

// AddGroupsFound adds value to the "groups_found" field.
func (_u *DedupScanUpdateOne) AddGroupsFound(v int) *DedupScanUpdateOne {
	_u.mutation.AddGroupsFound(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DedupScanUpdateOne) SetCompletedAt(v time.Time) *DedupScanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DedupScanUpdateOne) SetNillableCompletedAt(v *time.Time) *DedupScanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DedupScanUpdateOne) ClearCompletedAt() *DedupScanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DedupScanUpdateOne) SetErrorMessage(v string) *DedupScanUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DedupScanUpdateOne) SetNillableErrorMessage(v *string) *DedupScanUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DedupScanUpdateOne) ClearErrorMessage() *DedupScanUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddGroupIDs adds the "groups" edge to the DuplicateGroup entity by IDs.
func (_u *DedupScanUpdateOne) AddGroupIDs(ids ...string) *DedupScanUpdateOne {
	_u.mutation.AddGroupIDs(ids...)
	return _u
}

// AddGroups adds the "groups" edges to the DuplicateGroup entity.
func (_u *DedupScanUpdateOne) AddGroups(v ...*DuplicateGroup) *DedupScanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGroupIDs(ids...)
}

// Mutation returns the DedupScanMutation object of the builder.
func (_u *DedupScanUpdateOne) Mutation() *DedupScanMutation {
	return _u.mutation
}

// ClearGroups clears all "groups" edges to the DuplicateGroup entity.
func (_u *DedupScanUpdateOne) ClearGroups() *DedupScanUpdateOne {
	_u.mutation.ClearGroups()
	return _u
}

// RemoveGroupIDs removes the "groups" edge to DuplicateGroup entities by IDs.
func (_u *DedupScanUpdateOne) RemoveGroupIDs(ids ...string) *DedupScanUpdateOne {
	_u.mutation.RemoveGroupIDs(ids...)
	return _u
}

// RemoveGroups removes "groups" edges to DuplicateGroup entities.
func (_u *DedupScanUpdateOne) RemoveGroups(v ...*DuplicateGroup) *DedupScanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGroupIDs(ids...)
}

// Where appends a list predicates to the DedupScanUpdate builder.
func (_u *DedupScanUpdateOne) Where(ps ...predicate.DedupScan) *DedupScanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DedupScanUpdateOne) Select(field string, fields ...string) *DedupScanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DedupScan entity.
func (_u *DedupScanUpdateOne) Save(ctx context.Context) (*DedupScan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DedupScanUpdateOne) SaveX(ctx context.Context) *DedupScan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DedupScanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DedupScanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DedupScanUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dedupscan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DedupScan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DedupScanUpdateOne) sqlSave(ctx context.Context) (_node *DedupScan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dedupscan.Table, dedupscan.Columns, sqlgraph.NewFieldSpec(dedupscan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DedupScan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dedupscan.FieldID)
		for _, f := range fields {
			if !dedupscan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dedupscan.FieldID {
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
	if value, ok := _u.mutation.ScanType(); ok {
		_spec.SetField(dedupscan.FieldScanType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dedupscan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecordsScanned(); ok {
		_spec.SetField(dedupscan.FieldRecordsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecordsScanned(); ok {
		_spec.AddField(dedupscan.FieldRecordsScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GroupsFound(); ok {
		_spec.SetField(dedupscan.FieldGroupsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGroupsFound(); ok {
		_spec.AddField(dedupscan.FieldGroupsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(dedupscan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(dedupscan.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dedupscan.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(dedupscan.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGroupsIDs(); len(nodes) > 0 && !_u.mutation.GroupsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DedupScan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dedupscan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

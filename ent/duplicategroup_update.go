// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/duplicategroup"
	"github.com/steward-ai/steward/ent/predicate"
)

// DuplicateGroupUpdate is the builder for updating DuplicateGroup entities.
type DuplicateGroupUpdate struct {
	config
	hooks    []Hook
	mutation *DuplicateGroupMutation
}

// Where appends a list predicates to the DuplicateGroupUpdate builder.
func (_u *DuplicateGroupUpdate) Where(ps ...predicate.DuplicateGroup) *DuplicateGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *DuplicateGroupUpdate) SetEntityType(v string) *DuplicateGroupUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableEntityType(v *string) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetRecordIds sets the "record_ids" field.
func (_u *DuplicateGroupUpdate) SetRecordIds(v []int64) *DuplicateGroupUpdate {
	_u.mutation.SetRecordIds(v)
	return _u
}

// AppendRecordIds appends value to the "record_ids" field.
func (_u *DuplicateGroupUpdate) AppendRecordIds(v []int64) *DuplicateGroupUpdate {
	_u.mutation.AppendRecordIds(v)
	return _u
}

// SetMasterRecordID sets the "master_record_id" field.
func (_u *DuplicateGroupUpdate) SetMasterRecordID(v int64) *DuplicateGroupUpdate {
	_u.mutation.ResetMasterRecordID()
	_u.mutation.SetMasterRecordID(v)
	return _u
}

// SetNillableMasterRecordID sets the "master_record_id" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableMasterRecordID(v *int64) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetMasterRecordID(*v)
	}
	return _u
}

// AddMasterRecordID adds value to the "master_record_id" field.
func (_u *DuplicateGroupUpdate) AddMasterRecordID(v int64) *DuplicateGroupUpdate {
	_u.mutation.AddMasterRecordID(v)
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *DuplicateGroupUpdate) SetSimilarityScore(v float64) *DuplicateGroupUpdate {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableSimilarityScore(v *float64) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *DuplicateGroupUpdate) AddSimilarityScore(v float64) *DuplicateGroupUpdate {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetMatchedFields sets the "matched_fields" field.
func (_u *DuplicateGroupUpdate) SetMatchedFields(v []string) *DuplicateGroupUpdate {
	_u.mutation.SetMatchedFields(v)
	return _u
}

// AppendMatchedFields appends value to the "matched_fields" field.
func (_u *DuplicateGroupUpdate) AppendMatchedFields(v []string) *DuplicateGroupUpdate {
	_u.mutation.AppendMatchedFields(v)
	return _u
}

// ClearMatchedFields clears the value of the "matched_fields" field.
func (_u *DuplicateGroupUpdate) ClearMatchedFields() *DuplicateGroupUpdate {
	_u.mutation.ClearMatchedFields()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *DuplicateGroupUpdate) SetResolution(v duplicategroup.Resolution) *DuplicateGroupUpdate {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableResolution(v *duplicategroup.Resolution) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *DuplicateGroupUpdate) SetResolvedBy(v string) *DuplicateGroupUpdate {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableResolvedBy(v *string) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *DuplicateGroupUpdate) ClearResolvedBy() *DuplicateGroupUpdate {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DuplicateGroupUpdate) SetResolvedAt(v time.Time) *DuplicateGroupUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableResolvedAt(v *time.Time) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DuplicateGroupUpdate) ClearResolvedAt() *DuplicateGroupUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DuplicateGroupMutation object of the builder.
func (_u *DuplicateGroupUpdate) Mutation() *DuplicateGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DuplicateGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DuplicateGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicateGroupUpdate) check() error {
	if v, ok := _u.mutation.Resolution(); ok {
		if err := duplicategroup.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "DuplicateGroup.resolution": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DuplicateGroup.scan"`)
	}
	return nil
}

func (_u *DuplicateGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicategroup.Table, duplicategroup.Columns, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(duplicategroup.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordIds(); ok {
		_spec.SetField(duplicategroup.FieldRecordIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, duplicategroup.FieldRecordIds, value)
		})
	}
	if value, ok := _u.mutation.MasterRecordID(); ok {
		_spec.SetField(duplicategroup.FieldMasterRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMasterRecordID(); ok {
		_spec.AddField(duplicategroup.FieldMasterRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(duplicategroup.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(duplicategroup.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchedFields(); ok {
		_spec.SetField(duplicategroup.FieldMatchedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, duplicategroup.FieldMatchedFields, value)
		})
	}
	if _u.mutation.MatchedFieldsCleared() {
		_spec.ClearField(duplicategroup.FieldMatchedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(duplicategroup.FieldResolution, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(duplicategroup.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(duplicategroup.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicategroup.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(duplicategroup.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicategroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DuplicateGroupUpdateOne is the builder for updating a single DuplicateGroup entity.
type DuplicateGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DuplicateGroupMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *DuplicateGroupUpdateOne) SetEntityType(v string) *DuplicateGroupUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableEntityType(v *string) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetRecordIds sets the "record_ids" field.
func (_u *DuplicateGroupUpdateOne) SetRecordIds(v []int64) *DuplicateGroupUpdateOne {
	_u.mutation.SetRecordIds(v)
	return _u
}

// AppendRecordIds appends value to the "record_ids" field.
func (_u *DuplicateGroupUpdateOne) AppendRecordIds(v []int64) *DuplicateGroupUpdateOne {
	_u.mutation.AppendRecordIds(v)
	return _u
}

// SetMasterRecordID sets the "master_record_id" field.
func (_u *DuplicateGroupUpdateOne) SetMasterRecordID(v int64) *DuplicateGroupUpdateOne {
	_u.mutation.ResetMasterRecordID()
	_u.mutation.SetMasterRecordID(v)
	return _u
}

// SetNillableMasterRecordID sets the "master_record_id" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableMasterRecordID(v *int64) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetMasterRecordID(*v)
	}
	return _u
}

// AddMasterRecordID adds value to the "master_record_id" field.
func (_u *DuplicateGroupUpdateOne) AddMasterRecordID(v int64) *DuplicateGroupUpdateOne {
	_u.mutation.AddMasterRecordID(v)
	return _u
}

// SetSimilarityScore sets the "similarity_score" field.
func (_u *DuplicateGroupUpdateOne) SetSimilarityScore(v float64) *DuplicateGroupUpdateOne {
	_u.mutation.ResetSimilarityScore()
	_u.mutation.SetSimilarityScore(v)
	return _u
}

// SetNillableSimilarityScore sets the "similarity_score" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableSimilarityScore(v *float64) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetSimilarityScore(*v)
	}
	return _u
}

// AddSimilarityScore adds value to the "similarity_score" field.
func (_u *DuplicateGroupUpdateOne) AddSimilarityScore(v float64) *DuplicateGroupUpdateOne {
	_u.mutation.AddSimilarityScore(v)
	return _u
}

// SetMatchedFields sets the "matched_fields" field.
func (_u *DuplicateGroupUpdateOne) SetMatchedFields(v []string) *DuplicateGroupUpdateOne {
	_u.mutation.SetMatchedFields(v)
	return _u
}

// AppendMatchedFields appends value to the "matched_fields" field.
func (_u *DuplicateGroupUpdateOne) AppendMatchedFields(v []string) *DuplicateGroupUpdateOne {
	_u.mutation.AppendMatchedFields(v)
	return _u
}

// ClearMatchedFields clears the value of the "matched_fields" field.
func (_u *DuplicateGroupUpdateOne) ClearMatchedFields() *DuplicateGroupUpdateOne {
	_u.mutation.ClearMatchedFields()
	return _u
}

// SetResolution sets the "resolution" field.
func (_u *DuplicateGroupUpdateOne) SetResolution(v duplicategroup.Resolution) *DuplicateGroupUpdateOne {
	_u.mutation.SetResolution(v)
	return _u
}

// SetNillableResolution sets the "resolution" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableResolution(v *duplicategroup.Resolution) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetResolution(*v)
	}
	return _u
}

// SetResolvedBy sets the "resolved_by" field.
func (_u *DuplicateGroupUpdateOne) SetResolvedBy(v string) *DuplicateGroupUpdateOne {
	_u.mutation.SetResolvedBy(v)
	return _u
}

// SetNillableResolvedBy sets the "resolved_by" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableResolvedBy(v *string) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetResolvedBy(*v)
	}
	return _u
}

// ClearResolvedBy clears the value of the "resolved_by" field.
func (_u *DuplicateGroupUpdateOne) ClearResolvedBy() *DuplicateGroupUpdateOne {
	_u.mutation.ClearResolvedBy()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *DuplicateGroupUpdateOne) SetResolvedAt(v time.Time) *DuplicateGroupUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableResolvedAt(v *time.Time) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *DuplicateGroupUpdateOne) ClearResolvedAt() *DuplicateGroupUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the DuplicateGroupMutation object of the builder.
func (_u *DuplicateGroupUpdateOne) Mutation() *DuplicateGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the DuplicateGroupUpdate builder.
func (_u *DuplicateGroupUpdateOne) Where(ps ...predicate.DuplicateGroup) *DuplicateGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DuplicateGroupUpdateOne) Select(field string, fields ...string) *DuplicateGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DuplicateGroup entity.
func (_u *DuplicateGroupUpdateOne) Save(ctx context.Context) (*DuplicateGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateGroupUpdateOne) SaveX(ctx context.Context) *DuplicateGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DuplicateGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicateGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Resolution(); ok {
		if err := duplicategroup.ResolutionValidator(v); err != nil {
			return &ValidationError{Name: "resolution", err: fmt.Errorf(`ent: validator failed for field "DuplicateGroup.resolution": %w`, err)}
		}
	}
	if _u.mutation.ScanCleared() && len(_u.mutation.ScanIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DuplicateGroup.scan"`)
	}
	return nil
}

func (_u *DuplicateGroupUpdateOne) sqlSave(ctx context.Context) (_node *DuplicateGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicategroup.Table, duplicategroup.Columns, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DuplicateGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, duplicategroup.FieldID)
		for _, f := range fields {
			if !duplicategroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != duplicategroup.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(duplicategroup.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.RecordIds(); ok {
		_spec.SetField(duplicategroup.FieldRecordIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecordIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, duplicategroup.FieldRecordIds, value)
		})
	}
	if value, ok := _u.mutation.MasterRecordID(); ok {
		_spec.SetField(duplicategroup.FieldMasterRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedMasterRecordID(); ok {
		_spec.AddField(duplicategroup.FieldMasterRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SimilarityScore(); ok {
		_spec.SetField(duplicategroup.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSimilarityScore(); ok {
		_spec.AddField(duplicategroup.FieldSimilarityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchedFields(); ok {
		_spec.SetField(duplicategroup.FieldMatchedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMatchedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, duplicategroup.FieldMatchedFields, value)
		})
	}
	if _u.mutation.MatchedFieldsCleared() {
		_spec.ClearField(duplicategroup.FieldMatchedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Resolution(); ok {
		_spec.SetField(duplicategroup.FieldResolution, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedBy(); ok {
		_spec.SetField(duplicategroup.FieldResolvedBy, field.TypeString, value)
	}
	if _u.mutation.ResolvedByCleared() {
		_spec.ClearField(duplicategroup.FieldResolvedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(duplicategroup.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(duplicategroup.FieldResolvedAt, field.TypeTime)
	}
	_node = &DuplicateGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicategroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/extractioncorrection"
	"github.com/steward-ai/steward/ent/predicate"
)

// ExtractionCorrectionUpdate is the builder for updating ExtractionCorrection entities.
type ExtractionCorrectionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionCorrectionMutation
}

// Where appends a list predicates to the ExtractionCorrectionUpdate builder.
func (_u *ExtractionCorrectionUpdate) Where(ps ...predicate.ExtractionCorrection) *ExtractionCorrectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionCorrectionUpdate) SetFieldName(v string) *ExtractionCorrectionUpdate {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdate) SetNillableFieldName(v *string) *ExtractionCorrectionUpdate {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractionCorrectionUpdate) SetExtractedValue(v string) *ExtractionCorrectionUpdate {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdate) SetNillableExtractedValue(v *string) *ExtractionCorrectionUpdate {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractionCorrectionUpdate) ClearExtractedValue() *ExtractionCorrectionUpdate {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *ExtractionCorrectionUpdate) SetCorrectedValue(v string) *ExtractionCorrectionUpdate {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdate) SetNillableCorrectedValue(v *string) *ExtractionCorrectionUpdate {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// SetCorrectedBy sets the "corrected_by" field.
func (_u *ExtractionCorrectionUpdate) SetCorrectedBy(v string) *ExtractionCorrectionUpdate {
	_u.mutation.SetCorrectedBy(v)
	return _u
}

// SetNillableCorrectedBy sets the "corrected_by" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdate) SetNillableCorrectedBy(v *string) *ExtractionCorrectionUpdate {
	if v != nil {
		_u.SetCorrectedBy(*v)
	}
	return _u
}

// ClearCorrectedBy clears the value of the "corrected_by" field.
func (_u *ExtractionCorrectionUpdate) ClearCorrectedBy() *ExtractionCorrectionUpdate {
	_u.mutation.ClearCorrectedBy()
	return _u
}

// Mutation returns the ExtractionCorrectionMutation object of the builder.
func (_u *ExtractionCorrectionUpdate) Mutation() *ExtractionCorrectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionCorrectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionCorrectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionCorrectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionCorrectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionCorrectionUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionCorrection.job"`)
	}
	return nil
}

func (_u *ExtractionCorrectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractioncorrection.Table, extractioncorrection.Columns, sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractioncorrection.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractioncorrection.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractioncorrection.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(extractioncorrection.FieldCorrectedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedBy(); ok {
		_spec.SetField(extractioncorrection.FieldCorrectedBy, field.TypeString, value)
	}
	if _u.mutation.CorrectedByCleared() {
		_spec.ClearField(extractioncorrection.FieldCorrectedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractioncorrection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionCorrectionUpdateOne is the builder for updating a single ExtractionCorrection entity.
type ExtractionCorrectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionCorrectionMutation
}

// SetFieldName sets the "field_name" field.
func (_u *ExtractionCorrectionUpdateOne) SetFieldName(v string) *ExtractionCorrectionUpdateOne {
	_u.mutation.SetFieldName(v)
	return _u
}

// SetNillableFieldName sets the "field_name" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdateOne) SetNillableFieldName(v *string) *ExtractionCorrectionUpdateOne {
	if v != nil {
		_u.SetFieldName(*v)
	}
	return _u
}

// SetExtractedValue sets the "extracted_value" field.
func (_u *ExtractionCorrectionUpdateOne) SetExtractedValue(v string) *ExtractionCorrectionUpdateOne {
	_u.mutation.SetExtractedValue(v)
	return _u
}

// SetNillableExtractedValue sets the "extracted_value" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdateOne) SetNillableExtractedValue(v *string) *ExtractionCorrectionUpdateOne {
	if v != nil {
		_u.SetExtractedValue(*v)
	}
	return _u
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (_u *ExtractionCorrectionUpdateOne) ClearExtractedValue() *ExtractionCorrectionUpdateOne {
	_u.mutation.ClearExtractedValue()
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *ExtractionCorrectionUpdateOne) SetCorrectedValue(v string) *ExtractionCorrectionUpdateOne {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdateOne) SetNillableCorrectedValue(v *string) *ExtractionCorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// SetCorrectedBy sets the "corrected_by" field.
func (_u *ExtractionCorrectionUpdateOne) SetCorrectedBy(v string) *ExtractionCorrectionUpdateOne {
	_u.mutation.SetCorrectedBy(v)
	return _u
}

// SetNillableCorrectedBy sets the "corrected_by" field if the given value is not nil.
func (_u *ExtractionCorrectionUpdateOne) SetNillableCorrectedBy(v *string) *ExtractionCorrectionUpdateOne {
	if v != nil {
		_u.SetCorrectedBy(*v)
	}
	return _u
}

// ClearCorrectedBy clears the value of the "corrected_by" field.
func (_u *ExtractionCorrectionUpdateOne) ClearCorrectedBy() *ExtractionCorrectionUpdateOne {
	_u.mutation.ClearCorrectedBy()
	return _u
}

// Mutation returns the ExtractionCorrectionMutation object of the builder.
func (_u *ExtractionCorrectionUpdateOne) Mutation() *ExtractionCorrectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionCorrectionUpdate builder.
func (_u *ExtractionCorrectionUpdateOne) Where(ps ...predicate.ExtractionCorrection) *ExtractionCorrectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionCorrectionUpdateOne) Select(field string, fields ...string) *ExtractionCorrectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionCorrection entity.
func (_u *ExtractionCorrectionUpdateOne) Save(ctx context.Context) (*ExtractionCorrection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionCorrectionUpdateOne) SaveX(ctx context.Context) *ExtractionCorrection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionCorrectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionCorrectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionCorrectionUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionCorrection.job"`)
	}
	return nil
}

func (_u *ExtractionCorrectionUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionCorrection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractioncorrection.Table, extractioncorrection.Columns, sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionCorrection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractioncorrection.FieldID)
		for _, f := range fields {
			if !extractioncorrection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractioncorrection.FieldID {
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
	if value, ok := _u.mutation.FieldName(); ok {
		_spec.SetField(extractioncorrection.FieldFieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedValue(); ok {
		_spec.SetField(extractioncorrection.FieldExtractedValue, field.TypeString, value)
	}
	if _u.mutation.ExtractedValueCleared() {
		_spec.ClearField(extractioncorrection.FieldExtractedValue, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(extractioncorrection.FieldCorrectedValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedBy(); ok {
		_spec.SetField(extractioncorrection.FieldCorrectedBy, field.TypeString, value)
	}
	if _u.mutation.CorrectedByCleared() {
		_spec.ClearField(extractioncorrection.FieldCorrectedBy, field.TypeString)
	}
	_node = &ExtractionCorrection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractioncorrection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

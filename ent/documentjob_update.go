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
	"github.com/steward-ai/steward/ent/documentjob"
	"github.com/steward-ai/steward/ent/extractioncorrection"
	"github.com/steward-ai/steward/ent/predicate"
)

// DocumentJobUpdate is the builder for updating DocumentJob entities.
type DocumentJobUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentJobMutation
}

// Where appends a list predicates to the DocumentJobUpdate builder.
func (_u *DocumentJobUpdate) Where(ps ...predicate.DocumentJob) *DocumentJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentJobUpdate) SetDocumentType(v documentjob.DocumentType) *DocumentJobUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentJobUpdate) SetNillableDocumentType(v *documentjob.DocumentType) *DocumentJobUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetSourceAttachment sets the "source_attachment" field.
func (_u *DocumentJobUpdate) SetSourceAttachment(v string) *DocumentJobUpdate {
	_u.mutation.SetSourceAttachment(v)
	return _u
}

// SetNillableSourceAttachment sets the "source_attachment" field if the given value is not nil.
func (_u *DocumentJobUpdate) SetNillableSourceAttachment(v *string) *DocumentJobUpdate {
	if v != nil {
		_u.SetSourceAttachment(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentJobUpdate) SetStatus(v documentjob.Status) *DocumentJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentJobUpdate) SetNillableStatus(v *documentjob.Status) *DocumentJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *DocumentJobUpdate) SetExtractedFields(v map[string]interface{}) *DocumentJobUpdate {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *DocumentJobUpdate) ClearExtractedFields() *DocumentJobUpdate {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentJobUpdate) SetConfidence(v float64) *DocumentJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentJobUpdate) SetNillableConfidence(v *float64) *DocumentJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentJobUpdate) AddConfidence(v float64) *DocumentJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentJobUpdate) ClearConfidence() *DocumentJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetCreatedRecordID sets the "created_record_id" field.
func (_u *DocumentJobUpdate) SetCreatedRecordID(v int64) *DocumentJobUpdate {
	_u.mutation.ResetCreatedRecordID()
	_u.mutation.SetCreatedRecordID(v)
	return _u
}

// SetNillableCreatedRecordID sets the "created_record_id" field if the given value is not nil.
func (_u *DocumentJobUpdate) SetNillableCreatedRecordID(v *int64) *DocumentJobUpdate {
	if v != nil {
		_u.SetCreatedRecordID(*v)
	}
	return _u
}

// AddCreatedRecordID adds value to the "created_record_id" field.
func (_u *DocumentJobUpdate) AddCreatedRecordID(v int64) *DocumentJobUpdate {
	_u.mutation.AddCreatedRecordID(v)
	return _u
}

// ClearCreatedRecordID clears the value of the "created_record_id" field.
func (_u *DocumentJobUpdate) ClearCreatedRecordID() *DocumentJobUpdate {
	_u.mutation.ClearCreatedRecordID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentJobUpdate) SetErrorMessage(v string) *DocumentJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentJobUpdate) SetNillableErrorMessage(v *string) *DocumentJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentJobUpdate) ClearErrorMessage() *DocumentJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentJobUpdate) SetUpdatedAt(v time.Time) *DocumentJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCorrectionIDs adds the "corrections" edge to the ExtractionCorrection entity by IDs.
func (_u *DocumentJobUpdate) AddCorrectionIDs(ids ...string) *DocumentJobUpdate {
	_u.mutation.AddCorrectionIDs(ids...)
	return _u
}

// AddCorrections adds the "corrections" edges to the ExtractionCorrection entity.
func (_u *DocumentJobUpdate) AddCorrections(v ...*ExtractionCorrection) *DocumentJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCorrectionIDs(ids...)
}

// Mutation returns the DocumentJobMutation object of the builder.
func (_u *DocumentJobUpdate) Mutation() *DocumentJobMutation {
	return _u.mutation
}

// ClearCorrections clears all "corrections" edges to the ExtractionCorrection entity.
func (_u *DocumentJobUpdate) ClearCorrections() *DocumentJobUpdate {
	_u.mutation.ClearCorrections()
	return _u
}

// RemoveCorrectionIDs removes the "corrections" edge to ExtractionCorrection entities by IDs.
func (_u *DocumentJobUpdate) RemoveCorrectionIDs(ids ...string) *DocumentJobUpdate {
	_u.mutation.RemoveCorrectionIDs(ids...)
	return _u
}

// RemoveCorrections removes "corrections" edges to ExtractionCorrection entities.
func (_u *DocumentJobUpdate) RemoveCorrections(v ...*ExtractionCorrection) *DocumentJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCorrectionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentJobUpdate) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := documentjob.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentJob.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := documentjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DocumentJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentjob.Table, documentjob.Columns, sqlgraph.NewFieldSpec(documentjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(documentjob.FieldDocumentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceAttachment(); ok {
		_spec.SetField(documentjob.FieldSourceAttachment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(documentjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(documentjob.FieldExtractedFields, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(documentjob.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(documentjob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(documentjob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(documentjob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedRecordID(); ok {
		_spec.SetField(documentjob.FieldCreatedRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedRecordID(); ok {
		_spec.AddField(documentjob.FieldCreatedRecordID, field.TypeInt64, value)
	}
	if _u.mutation.CreatedRecordIDCleared() {
		_spec.ClearField(documentjob.FieldCreatedRecordID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(documentjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(documentjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentjob.CorrectionsTable,
			Columns: []string{documentjob.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCorrectionsIDs(); len(nodes) > 0 && !_u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentjob.CorrectionsTable,
			Columns: []string{documentjob.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CorrectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentjob.CorrectionsTable,
			Columns: []string{documentjob.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentJobUpdateOne is the builder for updating a single DocumentJob entity.
type DocumentJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentJobMutation
}

// SetDocumentType sets the "document_type" field.
func (_u *DocumentJobUpdateOne) SetDocumentType(v documentjob.DocumentType) *DocumentJobUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *DocumentJobUpdateOne) SetNillableDocumentType(v *documentjob.DocumentType) *DocumentJobUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetSourceAttachment sets the "source_attachment" field.
func (_u *DocumentJobUpdateOne) SetSourceAttachment(v string) *DocumentJobUpdateOne {
	_u.mutation.SetSourceAttachment(v)
	return _u
}

// SetNillableSourceAttachment sets the "source_attachment" field if the given value is not nil.
func (_u *DocumentJobUpdateOne) SetNillableSourceAttachment(v *string) *DocumentJobUpdateOne {
	if v != nil {
		_u.SetSourceAttachment(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentJobUpdateOne) SetStatus(v documentjob.Status) *DocumentJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentJobUpdateOne) SetNillableStatus(v *documentjob.Status) *DocumentJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtractedFields sets the "extracted_fields" field.
func (_u *DocumentJobUpdateOne) SetExtractedFields(v map[string]interface{}) *DocumentJobUpdateOne {
	_u.mutation.SetExtractedFields(v)
	return _u
}

// ClearExtractedFields clears the value of the "extracted_fields" field.
func (_u *DocumentJobUpdateOne) ClearExtractedFields() *DocumentJobUpdateOne {
	_u.mutation.ClearExtractedFields()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentJobUpdateOne) SetConfidence(v float64) *DocumentJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentJobUpdateOne) SetNillableConfidence(v *float64) *DocumentJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentJobUpdateOne) AddConfidence(v float64) *DocumentJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *DocumentJobUpdateOne) ClearConfidence() *DocumentJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetCreatedRecordID sets the "created_record_id" field.
func (_u *DocumentJobUpdateOne) SetCreatedRecordID(v int64) *DocumentJobUpdateOne {
	_u.mutation.ResetCreatedRecordID()
	_u.mutation.SetCreatedRecordID(v)
	return _u
}

// SetNillableCreatedRecordID sets the "created_record_id" field if the given value is not nil.
func (_u *DocumentJobUpdateOne) SetNillableCreatedRecordID(v *int64) *DocumentJobUpdateOne {
	if v != nil {
		_u.SetCreatedRecordID(*v)
	}
	return _u
}

// AddCreatedRecordID adds value to the "created_record_id" field.
func (_u *DocumentJobUpdateOne) AddCreatedRecordID(v int64) *DocumentJobUpdateOne {
	_u.mutation.AddCreatedRecordID(v)
	return _u
}

// ClearCreatedRecordID clears the value of the "created_record_id" field.
func (_u *DocumentJobUpdateOne) ClearCreatedRecordID() *DocumentJobUpdateOne {
	_u.mutation.ClearCreatedRecordID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentJobUpdateOne) SetErrorMessage(v string) *DocumentJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentJobUpdateOne) SetNillableErrorMessage(v *string) *DocumentJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentJobUpdateOne) ClearErrorMessage() *DocumentJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentJobUpdateOne) SetUpdatedAt(v time.Time) *DocumentJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCorrectionIDs adds the "corrections" edge to the ExtractionCorrection entity by IDs.
func (_u *DocumentJobUpdateOne) AddCorrectionIDs(ids ...string) *DocumentJobUpdateOne {
	_u.mutation.AddCorrectionIDs(ids...)
	return _u
}

// AddCorrections adds the "corrections" edges to the ExtractionCorrection entity.
func (_u *DocumentJobUpdateOne) AddCorrections(v ...*ExtractionCorrection) *DocumentJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCorrectionIDs(ids...)
}

// Mutation returns the DocumentJobMutation object of the builder.
func (_u *DocumentJobUpdateOne) Mutation() *DocumentJobMutation {
	return _u.mutation
}

// ClearCorrections clears all "corrections" edges to the ExtractionCorrection entity.
func (_u *DocumentJobUpdateOne) ClearCorrections() *DocumentJobUpdateOne {
	_u.mutation.ClearCorrections()
	return _u
}

// RemoveCorrectionIDs removes the "corrections" edge to ExtractionCorrection entities by IDs.
func (_u *DocumentJobUpdateOne) RemoveCorrectionIDs(ids ...string) *DocumentJobUpdateOne {
	_u.mutation.RemoveCorrectionIDs(ids...)
	return _u
}

// RemoveCorrections removes "corrections" edges to ExtractionCorrection entities.
func (_u *DocumentJobUpdateOne) RemoveCorrections(v ...*ExtractionCorrection) *DocumentJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCorrectionIDs(ids...)
}

// Where appends a list predicates to the DocumentJobUpdate builder.
func (_u *DocumentJobUpdateOne) Where(ps ...predicate.DocumentJob) *DocumentJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentJobUpdateOne) Select(field string, fields ...string) *DocumentJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentJob entity.
func (_u *DocumentJobUpdateOne) Save(ctx context.Context) (*DocumentJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentJobUpdateOne) SaveX(ctx context.Context) *DocumentJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := documentjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentJobUpdateOne) check() error {
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := documentjob.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentJob.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := documentjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DocumentJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentJobUpdateOne) sqlSave(ctx context.Context) (_node *DocumentJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentjob.Table, documentjob.Columns, sqlgraph.NewFieldSpec(documentjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentjob.FieldID)
		for _, f := range fields {
			if !documentjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentjob.FieldID {
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
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(documentjob.FieldDocumentType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceAttachment(); ok {
		_spec.SetField(documentjob.FieldSourceAttachment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(documentjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractedFields(); ok {
		_spec.SetField(documentjob.FieldExtractedFields, field.TypeJSON, value)
	}
	if _u.mutation.ExtractedFieldsCleared() {
		_spec.ClearField(documentjob.FieldExtractedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(documentjob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(documentjob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(documentjob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedRecordID(); ok {
		_spec.SetField(documentjob.FieldCreatedRecordID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCreatedRecordID(); ok {
		_spec.AddField(documentjob.FieldCreatedRecordID, field.TypeInt64, value)
	}
	if _u.mutation.CreatedRecordIDCleared() {
		_spec.ClearField(documentjob.FieldCreatedRecordID, field.TypeInt64)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(documentjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(documentjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(documentjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentjob.CorrectionsTable,
			Columns: []string{documentjob.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCorrectionsIDs(); len(nodes) > 0 && !_u.mutation.CorrectionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentjob.CorrectionsTable,
			Columns: []string{documentjob.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CorrectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentjob.CorrectionsTable,
			Columns: []string{documentjob.CorrectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractioncorrection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

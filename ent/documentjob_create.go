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

// DocumentJobCreate is the builder for creating a DocumentJob entity.
type DocumentJobCreate struct {
	config
	mutation *DocumentJobMutation
	hooks    []Hook
}

// SetDocumentType sets the "document_type" field.
func (_c *DocumentJobCreate) SetDocumentType(v documentjob.DocumentType) *DocumentJobCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetSourceAttachment sets the "source_attachment" field.
func (_c *DocumentJobCreate) SetSourceAttachment(v string) *DocumentJobCreate {
	_c.mutation.SetSourceAttachment(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentJobCreate) SetStatus(v documentjob.Status) *DocumentJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentJobCreate) SetNillableStatus(v *documentjob.Status) *DocumentJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtractedFields sets the "extracted_fields" field.
func (_c *DocumentJobCreate) SetExtractedFields(v map[string]interface{}) *DocumentJobCreate {
	_c.mutation.SetExtractedFields(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DocumentJobCreate) SetConfidence(v float64) *DocumentJobCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *DocumentJobCreate) SetNillableConfidence(v *float64) *DocumentJobCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedRecordID sets the "created_record_id" field.
func (_c *DocumentJobCreate) SetCreatedRecordID(v int64) *DocumentJobCreate {
	_c.mutation.SetCreatedRecordID(v)
	return _c
}

// SetNillableCreatedRecordID sets the "created_record_id" field if the given value is not nil.
func (_c *DocumentJobCreate) SetNillableCreatedRecordID(v *int64) *DocumentJobCreate {
	if v != nil {
		_c.SetCreatedRecordID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DocumentJobCreate) SetErrorMessage(v string) *DocumentJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DocumentJobCreate) SetNillableErrorMessage(v *string) *DocumentJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentJobCreate) SetCreatedAt(v time.Time) *DocumentJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentJobCreate) SetNillableCreatedAt(v *time.Time) *DocumentJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentJobCreate) SetUpdatedAt(v time.Time) *DocumentJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentJobCreate) SetNillableUpdatedAt(v *time.Time) *DocumentJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentJobCreate) SetID(v string) *DocumentJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCorrectionIDs adds the "corrections" edge to the ExtractionCorrection entity by IDs.
func (_c *DocumentJobCreate) AddCorrectionIDs(ids ...string) *DocumentJobCreate {
	_c.mutation.AddCorrectionIDs(ids...)
	return _c
}

// AddCorrections adds the "corrections" edges to the ExtractionCorrection entity.
func (_c *DocumentJobCreate) AddCorrections(v ...*ExtractionCorrection) *DocumentJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCorrectionIDs(ids...)
}

// Mutation returns the DocumentJobMutation object of the builder.
func (_c *DocumentJobCreate) Mutation() *DocumentJobMutation {
	return _c.mutation
}

// Save creates the DocumentJob in the database.
func (_c *DocumentJobCreate) Save(ctx context.Context) (*DocumentJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentJobCreate) SaveX(ctx context.Context) *DocumentJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := documentjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := documentjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentJobCreate) check() error {
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "DocumentJob.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := documentjob.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "DocumentJob.document_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceAttachment(); !ok {
		return &ValidationError{Name: "source_attachment", err: errors.New(`ent: missing required field "DocumentJob.source_attachment"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DocumentJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := documentjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DocumentJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DocumentJob.updated_at"`)}
	}
	return nil
}

func (_c *DocumentJobCreate) sqlSave(ctx context.Context) (*DocumentJob, error) {
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
			return nil, fmt.Errorf("unexpected DocumentJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentJobCreate) createSpec() (*DocumentJob, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentjob.Table, sqlgraph.NewFieldSpec(documentjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(documentjob.FieldDocumentType, field.TypeEnum, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.SourceAttachment(); ok {
		_spec.SetField(documentjob.FieldSourceAttachment, field.TypeString, value)
		_node.SourceAttachment = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(documentjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExtractedFields(); ok {
		_spec.SetField(documentjob.FieldExtractedFields, field.TypeJSON, value)
		_node.ExtractedFields = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(documentjob.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.CreatedRecordID(); ok {
		_spec.SetField(documentjob.FieldCreatedRecordID, field.TypeInt64, value)
		_node.CreatedRecordID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(documentjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(documentjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CorrectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentJobCreateBulk is the builder for creating many DocumentJob entities in bulk.
type DocumentJobCreateBulk struct {
	config
	err      error
	builders []*DocumentJobCreate
}

// Save creates the DocumentJob entities in the database.
func (_c *DocumentJobCreateBulk) Save(ctx context.Context) ([]*DocumentJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentJobMutation)
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
func (_c *DocumentJobCreateBulk) SaveX(ctx context.Context) []*DocumentJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

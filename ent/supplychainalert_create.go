// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/supplychainalert"
)

// SupplyChainAlertCreate is the builder for creating a SupplyChainAlert entity.
type SupplyChainAlertCreate struct {
	config
	mutation *SupplyChainAlertMutation
	hooks    []Hook
}

// SetSeverity sets the "severity" field.
func (_c *SupplyChainAlertCreate) SetSeverity(v supplychainalert.Severity) *SupplyChainAlertCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SupplyChainAlertCreate) SetTitle(v string) *SupplyChainAlertCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *SupplyChainAlertCreate) SetBody(v string) *SupplyChainAlertCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillableBody(v *string) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetBody(*v)
	}
	return _c
}

// SetSupplierID sets the "supplier_id" field.
func (_c *SupplyChainAlertCreate) SetSupplierID(v int64) *SupplyChainAlertCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillableSupplierID(v *int64) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetSupplierID(*v)
	}
	return _c
}

// SetPredictionID sets the "prediction_id" field.
func (_c *SupplyChainAlertCreate) SetPredictionID(v string) *SupplyChainAlertCreate {
	_c.mutation.SetPredictionID(v)
	return _c
}

// SetNillablePredictionID sets the "prediction_id" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillablePredictionID(v *string) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetPredictionID(*v)
	}
	return _c
}

// SetAcknowledged sets the "acknowledged" field.
func (_c *SupplyChainAlertCreate) SetAcknowledged(v bool) *SupplyChainAlertCreate {
	_c.mutation.SetAcknowledged(v)
	return _c
}

// SetNillableAcknowledged sets the "acknowledged" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillableAcknowledged(v *bool) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetAcknowledged(*v)
	}
	return _c
}

// SetAcknowledgedBy sets the "acknowledged_by" field.
func (_c *SupplyChainAlertCreate) SetAcknowledgedBy(v string) *SupplyChainAlertCreate {
	_c.mutation.SetAcknowledgedBy(v)
	return _c
}

// SetNillableAcknowledgedBy sets the "acknowledged_by" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillableAcknowledgedBy(v *string) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetAcknowledgedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupplyChainAlertCreate) SetCreatedAt(v time.Time) *SupplyChainAlertCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillableCreatedAt(v *time.Time) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAcknowledgedAt sets the "acknowledged_at" field.
func (_c *SupplyChainAlertCreate) SetAcknowledgedAt(v time.Time) *SupplyChainAlertCreate {
	_c.mutation.SetAcknowledgedAt(v)
	return _c
}

// SetNillableAcknowledgedAt sets the "acknowledged_at" field if the given value is not nil.
func (_c *SupplyChainAlertCreate) SetNillableAcknowledgedAt(v *time.Time) *SupplyChainAlertCreate {
	if v != nil {
		_c.SetAcknowledgedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplyChainAlertCreate) SetID(v string) *SupplyChainAlertCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SupplyChainAlertMutation object of the builder.
func (_c *SupplyChainAlertCreate) Mutation() *SupplyChainAlertMutation {
	return _c.mutation
}

// Save creates the SupplyChainAlert in the database.
func (_c *SupplyChainAlertCreate) Save(ctx context.Context) (*SupplyChainAlert, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplyChainAlertCreate) SaveX(ctx context.Context) *SupplyChainAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplyChainAlertCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplyChainAlertCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplyChainAlertCreate) defaults() {
	if _, ok := _c.mutation.Acknowledged(); !ok {
		v := supplychainalert.DefaultAcknowledged
		_c.mutation.SetAcknowledged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supplychainalert.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplyChainAlertCreate) check() error {
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "SupplyChainAlert.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := supplychainalert.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "SupplyChainAlert.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SupplyChainAlert.title"`)}
	}
	if _, ok := _c.mutation.Acknowledged(); !ok {
		return &ValidationError{Name: "acknowledged", err: errors.New(`ent: missing required field "SupplyChainAlert.acknowledged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SupplyChainAlert.created_at"`)}
	}
	return nil
}

func (_c *SupplyChainAlertCreate) sqlSave(ctx context.Context) (*SupplyChainAlert, error) {
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
			return nil, fmt.Errorf("unexpected SupplyChainAlert.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupplyChainAlertCreate) createSpec() (*SupplyChainAlert, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplyChainAlert{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplychainalert.Table, sqlgraph.NewFieldSpec(supplychainalert.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(supplychainalert.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(supplychainalert.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(supplychainalert.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.SupplierID(); ok {
		_spec.SetField(supplychainalert.FieldSupplierID, field.TypeInt64, value)
		_node.SupplierID = &value
	}
	if value, ok := _c.mutation.PredictionID(); ok {
		_spec.SetField(supplychainalert.FieldPredictionID, field.TypeString, value)
		_node.PredictionID = &value
	}
	if value, ok := _c.mutation.Acknowledged(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledged, field.TypeBool, value)
		_node.Acknowledged = value
	}
	if value, ok := _c.mutation.AcknowledgedBy(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledgedBy, field.TypeString, value)
		_node.AcknowledgedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supplychainalert.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AcknowledgedAt(); ok {
		_spec.SetField(supplychainalert.FieldAcknowledgedAt, field.TypeTime, value)
		_node.AcknowledgedAt = &value
	}
	return _node, _spec
}

// SupplyChainAlertCreateBulk is the builder for creating many SupplyChainAlert entities in bulk.
type SupplyChainAlertCreateBulk struct {
	config
	err      error
	builders []*SupplyChainAlertCreate
}

// Save creates the SupplyChainAlert entities in the database.
func (_c *SupplyChainAlertCreateBulk) Save(ctx context.Context) ([]*SupplyChainAlert, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplyChainAlert, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplyChainAlertMutation)
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
func (_c *SupplyChainAlertCreateBulk) SaveX(ctx context.Context) []*SupplyChainAlert {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplyChainAlertCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplyChainAlertCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

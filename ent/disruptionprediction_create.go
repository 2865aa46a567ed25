// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/disruptionprediction"
)

// DisruptionPredictionCreate is the builder for creating a DisruptionPrediction entity.
type DisruptionPredictionCreate struct {
	config
	mutation *DisruptionPredictionMutation
	hooks    []Hook
}

// SetSupplierID sets the "supplier_id" field.
func (_c *DisruptionPredictionCreate) SetSupplierID(v int64) *DisruptionPredictionCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetPurchaseOrderID sets the "purchase_order_id" field.
func (_c *DisruptionPredictionCreate) SetPurchaseOrderID(v int64) *DisruptionPredictionCreate {
	_c.mutation.SetPurchaseOrderID(v)
	return _c
}

// SetNillablePurchaseOrderID sets the "purchase_order_id" field if the given value is not nil.
func (_c *DisruptionPredictionCreate) SetNillablePurchaseOrderID(v *int64) *DisruptionPredictionCreate {
	if v != nil {
		_c.SetPurchaseOrderID(*v)
	}
	return _c
}

// SetDisruptionType sets the "disruption_type" field.
func (_c *DisruptionPredictionCreate) SetDisruptionType(v disruptionprediction.DisruptionType) *DisruptionPredictionCreate {
	_c.mutation.SetDisruptionType(v)
	return _c
}

// SetProbability sets the "probability" field.
func (_c *DisruptionPredictionCreate) SetProbability(v float64) *DisruptionPredictionCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetPredictedDate sets the "predicted_date" field.
func (_c *DisruptionPredictionCreate) SetPredictedDate(v time.Time) *DisruptionPredictionCreate {
	_c.mutation.SetPredictedDate(v)
	return _c
}

// SetNillablePredictedDate sets the "predicted_date" field if the given value is not nil.
func (_c *DisruptionPredictionCreate) SetNillablePredictedDate(v *time.Time) *DisruptionPredictionCreate {
	if v != nil {
		_c.SetPredictedDate(*v)
	}
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *DisruptionPredictionCreate) SetRationale(v string) *DisruptionPredictionCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *DisruptionPredictionCreate) SetNillableRationale(v *string) *DisruptionPredictionCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetSuggestedActions sets the "suggested_actions" field.
func (_c *DisruptionPredictionCreate) SetSuggestedActions(v []map[string]interface{}) *DisruptionPredictionCreate {
	_c.mutation.SetSuggestedActions(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DisruptionPredictionCreate) SetStatus(v disruptionprediction.Status) *DisruptionPredictionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DisruptionPredictionCreate) SetNillableStatus(v *disruptionprediction.Status) *DisruptionPredictionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DisruptionPredictionCreate) SetCreatedAt(v time.Time) *DisruptionPredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DisruptionPredictionCreate) SetNillableCreatedAt(v *time.Time) *DisruptionPredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DisruptionPredictionCreate) SetID(v string) *DisruptionPredictionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DisruptionPredictionMutation object of the builder.
func (_c *DisruptionPredictionCreate) Mutation() *DisruptionPredictionMutation {
	return _c.mutation
}

// Save creates the DisruptionPrediction in the database.
func (_c *DisruptionPredictionCreate) Save(ctx context.Context) (*DisruptionPrediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DisruptionPredictionCreate) SaveX(ctx context.Context) *DisruptionPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DisruptionPredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DisruptionPredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DisruptionPredictionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := disruptionprediction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := disruptionprediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DisruptionPredictionCreate) check() error {
	if _, ok := _c.mutation.SupplierID(); !ok {
		return &ValidationError{Name: "supplier_id", err: errors.New(`ent: missing required field "DisruptionPrediction.supplier_id"`)}
	}
	if _, ok := _c.mutation.DisruptionType(); !ok {
		return &ValidationError{Name: "disruption_type", err: errors.New(`ent: missing required field "DisruptionPrediction.disruption_type"`)}
	}
	if v, ok := _c.mutation.DisruptionType(); ok {
		if err := disruptionprediction.DisruptionTypeValidator(v); err != nil {
			return &ValidationError{Name: "disruption_type", err: fmt.Errorf(`ent: validator failed for field "DisruptionPrediction.disruption_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Probability(); !ok {
		return &ValidationError{Name: "probability", err: errors.New(`ent: missing required field "DisruptionPrediction.probability"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DisruptionPrediction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := disruptionprediction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DisruptionPrediction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DisruptionPrediction.created_at"`)}
	}
	return nil
}

func (_c *DisruptionPredictionCreate) sqlSave(ctx context.Context) (*DisruptionPrediction, error) {
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
			return nil, fmt.Errorf("unexpected DisruptionPrediction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DisruptionPredictionCreate) createSpec() (*DisruptionPrediction, *sqlgraph.CreateSpec) {
	var (
		_node = &DisruptionPrediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(disruptionprediction.Table, sqlgraph.NewFieldSpec(disruptionprediction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SupplierID(); ok {
		_spec.SetField(disruptionprediction.FieldSupplierID, field.TypeInt64, value)
		_node.SupplierID = value
	}
	if value, ok := _c.mutation.PurchaseOrderID(); ok {
		_spec.SetField(disruptionprediction.FieldPurchaseOrderID, field.TypeInt64, value)
		_node.PurchaseOrderID = &value
	}
	if value, ok := _c.mutation.DisruptionType(); ok {
		_spec.SetField(disruptionprediction.FieldDisruptionType, field.TypeEnum, value)
		_node.DisruptionType = value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(disruptionprediction.FieldProbability, field.TypeFloat64, value)
		_node.Probability = value
	}
	if value, ok := _c.mutation.PredictedDate(); ok {
		_spec.SetField(disruptionprediction.FieldPredictedDate, field.TypeTime, value)
		_node.PredictedDate = &value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(disruptionprediction.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.SuggestedActions(); ok {
		_spec.SetField(disruptionprediction.FieldSuggestedActions, field.TypeJSON, value)
		_node.SuggestedActions = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(disruptionprediction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(disruptionprediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DisruptionPredictionCreateBulk is the builder for creating many DisruptionPrediction entities in bulk.
type DisruptionPredictionCreateBulk struct {
	config
	err      error
	builders []*DisruptionPredictionCreate
}

// Save creates the DisruptionPrediction entities in the database.
func (_c *DisruptionPredictionCreateBulk) Save(ctx context.Context) ([]*DisruptionPrediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DisruptionPrediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DisruptionPredictionMutation)
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
func (_c *DisruptionPredictionCreateBulk) SaveX(ctx context.Context) []*DisruptionPrediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DisruptionPredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DisruptionPredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/steward-ai/steward/ent/dailydigest"
)

// DailyDigestCreate is the builder for creating a DailyDigest entity.
type DailyDigestCreate struct {
	config
	mutation *DailyDigestMutation
	hooks    []Hook
}

// SetDigestDate sets the "digest_date" field.
func (_c *DailyDigestCreate) SetDigestDate(v time.Time) *DailyDigestCreate {
	_c.mutation.SetDigestDate(v)
	return _c
}

// SetUserRole sets the "user_role" field.
func (_c *DailyDigestCreate) SetUserRole(v dailydigest.UserRole) *DailyDigestCreate {
	_c.mutation.SetUserRole(v)
	return _c
}

// SetHeadline sets the "headline" field.
func (_c *DailyDigestCreate) SetHeadline(v string) *DailyDigestCreate {
	_c.mutation.SetHeadline(v)
	return _c
}

// SetSections sets the "sections" field.
func (_c *DailyDigestCreate) SetSections(v []map[string]interface{}) *DailyDigestCreate {
	_c.mutation.SetSections(v)
	return _c
}

// SetDeliveryStatus sets the "delivery_status" field.
func (_c *DailyDigestCreate) SetDeliveryStatus(v dailydigest.DeliveryStatus) *DailyDigestCreate {
	_c.mutation.SetDeliveryStatus(v)
	return _c
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (_c *DailyDigestCreate) SetNillableDeliveryStatus(v *dailydigest.DeliveryStatus) *DailyDigestCreate {
	if v != nil {
		_c.SetDeliveryStatus(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *DailyDigestCreate) SetTokensUsed(v int) *DailyDigestCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *DailyDigestCreate) SetNillableTokensUsed(v *int) *DailyDigestCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DailyDigestCreate) SetCreatedAt(v time.Time) *DailyDigestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DailyDigestCreate) SetNillableCreatedAt(v *time.Time) *DailyDigestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *DailyDigestCreate) SetDeliveredAt(v time.Time) *DailyDigestCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *DailyDigestCreate) SetNillableDeliveredAt(v *time.Time) *DailyDigestCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DailyDigestCreate) SetID(v string) *DailyDigestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DailyDigestMutation object of the builder.
func (_c *DailyDigestCreate) Mutation() *DailyDigestMutation {
	return _c.mutation
}

// Save creates the DailyDigest in the database.
func (_c *DailyDigestCreate) Save(ctx context.Context) (*DailyDigest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyDigestCreate) SaveX(ctx context.Context) *DailyDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyDigestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyDigestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyDigestCreate) defaults() {
	if _, ok := _c.mutation.DeliveryStatus(); !ok {
		v := dailydigest.DefaultDeliveryStatus
		_c.mutation.SetDeliveryStatus(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := dailydigest.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dailydigest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyDigestCreate) check() error {
	if _, ok := _c.mutation.DigestDate(); !ok {
		return &ValidationError{Name: "digest_date", err: errors.New(`ent: missing required field "DailyDigest.digest_date"`)}
	}
	if _, ok := _c.mutation.UserRole(); !ok {
		return &ValidationError{Name: "user_role", err: errors.New(`ent: missing required field "DailyDigest.user_role"`)}
	}
	if v, ok := _c.mutation.UserRole(); ok {
		if err := dailydigest.UserRoleValidator(v); err != nil {
			return &ValidationError{Name: "user_role", err: fmt.Errorf(`ent: validator failed for field "DailyDigest.user_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Headline(); !ok {
		return &ValidationError{Name: "headline", err: errors.New(`ent: missing required field "DailyDigest.headline"`)}
	}
	if _, ok := _c.mutation.Sections(); !ok {
		return &ValidationError{Name: "sections", err: errors.New(`ent: missing required field "DailyDigest.sections"`)}
	}
	if _, ok := _c.mutation.DeliveryStatus(); !ok {
		return &ValidationError{Name: "delivery_status", err: errors.New(`ent: missing required field "DailyDigest.delivery_status"`)}
	}
	if v, ok := _c.mutation.DeliveryStatus(); ok {
		if err := dailydigest.DeliveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivery_status", err: fmt.Errorf(`ent: validator failed for field "DailyDigest.delivery_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "DailyDigest.tokens_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DailyDigest.created_at"`)}
	}
	return nil
}

func (_c *DailyDigestCreate) sqlSave(ctx context.Context) (*DailyDigest, error) {
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
			return nil, fmt.Errorf("unexpected DailyDigest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DailyDigestCreate) createSpec() (*DailyDigest, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyDigest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailydigest.Table, sqlgraph.NewFieldSpec(dailydigest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DigestDate(); ok {
		_spec.SetField(dailydigest.FieldDigestDate, field.TypeTime, value)
		_node.DigestDate = value
	}
	if value, ok := _c.mutation.UserRole(); ok {
		_spec.SetField(dailydigest.FieldUserRole, field.TypeEnum, value)
		_node.UserRole = value
	}
	if value, ok := _c.mutation.Headline(); ok {
		_spec.SetField(dailydigest.FieldHeadline, field.TypeString, value)
		_node.Headline = value
	}
	if value, ok := _c.mutation.Sections(); ok {
		_spec.SetField(dailydigest.FieldSections, field.TypeJSON, value)
		_node.Sections = value
	}
	if value, ok := _c.mutation.DeliveryStatus(); ok {
		_spec.SetField(dailydigest.FieldDeliveryStatus, field.TypeEnum, value)
		_node.DeliveryStatus = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(dailydigest.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dailydigest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(dailydigest.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	return _node, _spec
}

// DailyDigestCreateBulk is the builder for creating many DailyDigest entities in bulk.
type DailyDigestCreateBulk struct {
	config
	err      error
	builders []*DailyDigestCreate
}

// Save creates the DailyDigest entities in the database.
func (_c *DailyDigestCreateBulk) Save(ctx context.Context) ([]*DailyDigest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyDigest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyDigestMutation)
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
func (_c *DailyDigestCreateBulk) SaveX(ctx context.Context) []*DailyDigest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyDigestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyDigestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

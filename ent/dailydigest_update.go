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
	"github.com/steward-ai/steward/ent/dailydigest"
	"github.com/steward-ai/steward/ent/predicate"
)

// DailyDigestUpdate is the builder for updating DailyDigest entities.
type DailyDigestUpdate struct {
	config
	hooks    []Hook
	mutation *DailyDigestMutation
}

// Where appends a list predicates to the DailyDigestUpdate builder.
func (_u *DailyDigestUpdate) Where(ps ...predicate.DailyDigest) *DailyDigestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDigestDate sets the "digest_date" field.
func (_u *DailyDigestUpdate) SetDigestDate(v time.Time) *DailyDigestUpdate {
	_u.mutation.SetDigestDate(v)
	return _u
}

// SetNillableDigestDate sets the "digest_date" field if the given value is not nil.
func (_u *DailyDigestUpdate) SetNillableDigestDate(v *time.Time) *DailyDigestUpdate {
	if v != nil {
		_u.SetDigestDate(*v)
	}
	return _u
}

// SetUserRole sets the "user_role" field.
func (_u *DailyDigestUpdate) SetUserRole(v dailydigest.UserRole) *DailyDigestUpdate {
	_u.mutation.SetUserRole(v)
	return _u
}

// SetNillableUserRole sets the "user_role" field if the given value is not nil.
func (_u *DailyDigestUpdate) SetNillableUserRole(v *dailydigest.UserRole) *DailyDigestUpdate {
	if v != nil {
		_u.SetUserRole(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *DailyDigestUpdate) SetHeadline(v string) *DailyDigestUpdate {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *DailyDigestUpdate) SetNillableHeadline(v *string) *DailyDigestUpdate {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *DailyDigestUpdate) SetSections(v []map[string]interface{}) *DailyDigestUpdate {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *DailyDigestUpdate) AppendSections(v []map[string]interface{}) *DailyDigestUpdate {
	_u.mutation.AppendSections(v)
	return _u
}

// SetDeliveryStatus sets the "delivery_status" field.
func (_u *DailyDigestUpdate) SetDeliveryStatus(v dailydigest.DeliveryStatus) *DailyDigestUpdate {
	_u.mutation.SetDeliveryStatus(v)
	return _u
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (_u *DailyDigestUpdate) SetNillableDeliveryStatus(v *dailydigest.DeliveryStatus) *DailyDigestUpdate {
	if v != nil {
		_u.SetDeliveryStatus(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *DailyDigestUpdate) SetTokensUsed(v int) *DailyDigestUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *DailyDigestUpdate) SetNillableTokensUsed(v *int) *DailyDigestUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *DailyDigestUpdate) AddTokensUsed(v int) *DailyDigestUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *DailyDigestUpdate) SetDeliveredAt(v time.Time) *DailyDigestUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *DailyDigestUpdate) SetNillableDeliveredAt(v *time.Time) *DailyDigestUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *DailyDigestUpdate) ClearDeliveredAt() *DailyDigestUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// Mutation returns the DailyDigestMutation object of the builder.
func (_u *DailyDigestUpdate) Mutation() *DailyDigestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyDigestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyDigestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyDigestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyDigestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyDigestUpdate) check() error {
	if v, ok := _u.mutation.UserRole(); ok {
		if err := dailydigest.UserRoleValidator(v); err != nil {
			return &ValidationError{Name: "user_role", err: fmt.Errorf(`ent: validator failed for field "DailyDigest.user_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryStatus(); ok {
		if err := dailydigest.DeliveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivery_status", err: fmt.Errorf(`ent: validator failed for field "DailyDigest.delivery_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyDigestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailydigest.Table, dailydigest.Columns, sqlgraph.NewFieldSpec(dailydigest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DigestDate(); ok {
		_spec.SetField(dailydigest.FieldDigestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserRole(); ok {
		_spec.SetField(dailydigest.FieldUserRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(dailydigest.FieldHeadline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(dailydigest.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailydigest.FieldSections, value)
		})
	}
	if value, ok := _u.mutation.DeliveryStatus(); ok {
		_spec.SetField(dailydigest.FieldDeliveryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(dailydigest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(dailydigest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(dailydigest.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(dailydigest.FieldDeliveredAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailydigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyDigestUpdateOne is the builder for updating a single DailyDigest entity.
type DailyDigestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyDigestMutation
}

// SetDigestDate sets the "digest_date" field.
func (_u *DailyDigestUpdateOne) SetDigestDate(v time.Time) *DailyDigestUpdateOne {
	_u.mutation.SetDigestDate(v)
	return _u
}

// SetNillableDigestDate sets the "digest_date" field if the given value is not nil.
func (_u *DailyDigestUpdateOne) SetNillableDigestDate(v *time.Time) *DailyDigestUpdateOne {
	if v != nil {
		_u.SetDigestDate(*v)
	}
	return _u
}

// SetUserRole sets the "user_role" field.
func (_u *DailyDigestUpdateOne) SetUserRole(v dailydigest.UserRole) *DailyDigestUpdateOne {
	_u.mutation.SetUserRole(v)
	return _u
}

// SetNillableUserRole sets the "user_role" field if the given value is not nil.
func (_u *DailyDigestUpdateOne) SetNillableUserRole(v *dailydigest.UserRole) *DailyDigestUpdateOne {
	if v != nil {
		_u.SetUserRole(*v)
	}
	return _u
}

// SetHeadline sets the "headline" field.
func (_u *DailyDigestUpdateOne) SetHeadline(v string) *DailyDigestUpdateOne {
	_u.mutation.SetHeadline(v)
	return _u
}

// SetNillableHeadline sets the "headline" field if the given value is not nil.
func (_u *DailyDigestUpdateOne) SetNillableHeadline(v *string) *DailyDigestUpdateOne {
	if v != nil {
		_u.SetHeadline(*v)
	}
	return _u
}

// SetSections sets the "sections" field.
func (_u *DailyDigestUpdateOne) SetSections(v []map[string]interface{}) *DailyDigestUpdateOne {
	_u.mutation.SetSections(v)
	return _u
}

// AppendSections appends value to the "sections" field.
func (_u *DailyDigestUpdateOne) AppendSections(v []map[string]interface{}) *DailyDigestUpdateOne {
	_u.mutation.AppendSections(v)
	return _u
}

// SetDeliveryStatus sets the "delivery_status" field.
func (_u *DailyDigestUpdateOne) SetDeliveryStatus(v dailydigest.DeliveryStatus) *DailyDigestUpdateOne {
	_u.mutation.SetDeliveryStatus(v)
	return _u
}

// SetNillableDeliveryStatus sets the "delivery_status" field if the given value is not nil.
func (_u *DailyDigestUpdateOne) SetNillableDeliveryStatus(v *dailydigest.DeliveryStatus) *DailyDigestUpdateOne {
	if v != nil {
		_u.SetDeliveryStatus(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *DailyDigestUpdateOne) SetTokensUsed(v int) *DailyDigestUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *DailyDigestUpdateOne) SetNillableTokensUsed(v *int) *DailyDigestUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *DailyDigestUpdateOne) AddTokensUsed(v int) *DailyDigestUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *DailyDigestUpdateOne) SetDeliveredAt(v time.Time) *DailyDigestUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *DailyDigestUpdateOne) SetNillableDeliveredAt(v *time.Time) *DailyDigestUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *DailyDigestUpdateOne) ClearDeliveredAt() *DailyDigestUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// Mutation returns the DailyDigestMutation object of the builder.
func (_u *DailyDigestUpdateOne) Mutation() *DailyDigestMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyDigestUpdate builder.
func (_u *DailyDigestUpdateOne) Where(ps ...predicate.DailyDigest) *DailyDigestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyDigestUpdateOne) Select(field string, fields ...string) *DailyDigestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyDigest entity.
func (_u *DailyDigestUpdateOne) Save(ctx context.Context) (*DailyDigest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyDigestUpdateOne) SaveX(ctx context.Context) *DailyDigest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyDigestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyDigestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyDigestUpdateOne) check() error {
	if v, ok := _u.mutation.UserRole(); ok {
		if err := dailydigest.UserRoleValidator(v); err != nil {
			return &ValidationError{Name: "user_role", err: fmt.Errorf(`ent: validator failed for field "DailyDigest.user_role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DeliveryStatus(); ok {
		if err := dailydigest.DeliveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivery_status", err: fmt.Errorf(`ent: validator failed for field "DailyDigest.delivery_status": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyDigestUpdateOne) sqlSave(ctx context.Context) (_node *DailyDigest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailydigest.Table, dailydigest.Columns, sqlgraph.NewFieldSpec(dailydigest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyDigest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailydigest.FieldID)
		for _, f := range fields {
			if !dailydigest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailydigest.FieldID {
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
	if value, ok := _u.mutation.DigestDate(); ok {
		_spec.SetField(dailydigest.FieldDigestDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserRole(); ok {
		_spec.SetField(dailydigest.FieldUserRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Headline(); ok {
		_spec.SetField(dailydigest.FieldHeadline, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sections(); ok {
		_spec.SetField(dailydigest.FieldSections, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSections(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailydigest.FieldSections, value)
		})
	}
	if value, ok := _u.mutation.DeliveryStatus(); ok {
		_spec.SetField(dailydigest.FieldDeliveryStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(dailydigest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(dailydigest.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(dailydigest.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(dailydigest.FieldDeliveredAt, field.TypeTime)
	}
	_node = &DailyDigest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailydigest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

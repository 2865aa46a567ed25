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
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskScoreUpdate is the builder for updating SupplierRiskScore entities.
type SupplierRiskScoreUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierRiskScoreMutation
}

// Where appends a list predicates to the SupplierRiskScoreUpdate builder.
func (_u *SupplierRiskScoreUpdate) Where(ps ...predicate.SupplierRiskScore) *SupplierRiskScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SupplierRiskScoreUpdate) SetSupplierID(v int64) *SupplierRiskScoreUpdate {
	_u.mutation.ResetSupplierID()
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdate) SetNillableSupplierID(v *int64) *SupplierRiskScoreUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// AddSupplierID adds value to the "supplier_id" field.
func (_u *SupplierRiskScoreUpdate) AddSupplierID(v int64) *SupplierRiskScoreUpdate {
	_u.mutation.AddSupplierID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SupplierRiskScoreUpdate) SetScore(v float64) *SupplierRiskScoreUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdate) SetNillableScore(v *float64) *SupplierRiskScoreUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SupplierRiskScoreUpdate) AddScore(v float64) *SupplierRiskScoreUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *SupplierRiskScoreUpdate) SetRiskTier(v supplierriskscore.RiskTier) *SupplierRiskScoreUpdate {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdate) SetNillableRiskTier(v *supplierriskscore.RiskTier) *SupplierRiskScoreUpdate {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetCalculatedAt sets the "calculated_at" field.
func (_u *SupplierRiskScoreUpdate) SetCalculatedAt(v time.Time) *SupplierRiskScoreUpdate {
	_u.mutation.SetCalculatedAt(v)
	return _u
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdate) SetNillableCalculatedAt(v *time.Time) *SupplierRiskScoreUpdate {
	if v != nil {
		_u.SetCalculatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierRiskScoreUpdate) SetUpdatedAt(v time.Time) *SupplierRiskScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFactorIDs adds the "factors" edge to the SupplierRiskFactor entity by IDs.
func (_u *SupplierRiskScoreUpdate) AddFactorIDs(ids ...string) *SupplierRiskScoreUpdate {
	_u.mutation.AddFactorIDs(ids...)
	return _u
}

// AddFactors adds the "factors" edges to the SupplierRiskFactor entity.
func (_u *SupplierRiskScoreUpdate) AddFactors(v ...*SupplierRiskFactor) *SupplierRiskScoreUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFactorIDs(ids...)
}

// Mutation returns the SupplierRiskScoreMutation object of the builder.
func (_u *SupplierRiskScoreUpdate) Mutation() *SupplierRiskScoreMutation {
	return _u.mutation
}

// ClearFactors clears all "factors" edges to the SupplierRiskFactor entity.
func (_u *SupplierRiskScoreUpdate) ClearFactors() *SupplierRiskScoreUpdate {
	_u.mutation.ClearFactors()
	return _u
}

// RemoveFactorIDs removes the "factors" edge to SupplierRiskFactor entities by IDs.
func (_u *SupplierRiskScoreUpdate) RemoveFactorIDs(ids ...string) *SupplierRiskScoreUpdate {
	_u.mutation.RemoveFactorIDs(ids...)
	return _u
}

// RemoveFactors removes "factors" edges to SupplierRiskFactor entities.
func (_u *SupplierRiskScoreUpdate) RemoveFactors(v ...*SupplierRiskFactor) *SupplierRiskScoreUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFactorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierRiskScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierRiskScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierRiskScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierRiskScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierRiskScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplierriskscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierRiskScoreUpdate) check() error {
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := supplierriskscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "SupplierRiskScore.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierRiskScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplierriskscore.Table, supplierriskscore.Columns, sqlgraph.NewFieldSpec(supplierriskscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(supplierriskscore.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSupplierID(); ok {
		_spec.AddField(supplierriskscore.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(supplierriskscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(supplierriskscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(supplierriskscore.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CalculatedAt(); ok {
		_spec.SetField(supplierriskscore.FieldCalculatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplierriskscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FactorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFactorsIDs(); len(nodes) > 0 && !_u.mutation.FactorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplierriskscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierRiskScoreUpdateOne is the builder for updating a single SupplierRiskScore entity.
type SupplierRiskScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierRiskScoreMutation
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SupplierRiskScoreUpdateOne) SetSupplierID(v int64) *SupplierRiskScoreUpdateOne {
	_u.mutation.ResetSupplierID()
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdateOne) SetNillableSupplierID(v *int64) *SupplierRiskScoreUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// AddSupplierID adds value to the "supplier_id" field.
func (_u *SupplierRiskScoreUpdateOne) AddSupplierID(v int64) *SupplierRiskScoreUpdateOne {
	_u.mutation.AddSupplierID(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *SupplierRiskScoreUpdateOne) SetScore(v float64) *SupplierRiskScoreUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdateOne) SetNillableScore(v *float64) *SupplierRiskScoreUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SupplierRiskScoreUpdateOne) AddScore(v float64) *SupplierRiskScoreUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRiskTier sets the "risk_tier" field.
func (_u *SupplierRiskScoreUpdateOne) SetRiskTier(v supplierriskscore.RiskTier) *SupplierRiskScoreUpdateOne {
	_u.mutation.SetRiskTier(v)
	return _u
}

// SetNillableRiskTier sets the "risk_tier" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdateOne) SetNillableRiskTier(v *supplierriskscore.RiskTier) *SupplierRiskScoreUpdateOne {
	if v != nil {
		_u.SetRiskTier(*v)
	}
	return _u
}

// SetCalculatedAt sets the "calculated_at" field.
func (_u *SupplierRiskScoreUpdateOne) SetCalculatedAt(v time.Time) *SupplierRiskScoreUpdateOne {
	_u.mutation.SetCalculatedAt(v)
	return _u
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_u *SupplierRiskScoreUpdateOne) SetNillableCalculatedAt(v *time.Time) *SupplierRiskScoreUpdateOne {
	if v != nil {
		_u.SetCalculatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierRiskScoreUpdateOne) SetUpdatedAt(v time.Time) *SupplierRiskScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFactorIDs adds the "factors" edge to the SupplierRiskFactor entity by IDs.
func (_u *SupplierRiskScoreUpdateOne) AddFactorIDs(ids ...string) *SupplierRiskScoreUpdateOne {
	_u.mutation.AddFactorIDs(ids...)
	return _u
}

// AddFactors adds the "factors" edges to the SupplierRiskFactor entity.
func (_u *SupplierRiskScoreUpdateOne) AddFactors(v ...*SupplierRiskFactor) *SupplierRiskScoreUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFactorIDs(ids...)
}

// Mutation returns the SupplierRiskScoreMutation object of the builder.
func (_u *SupplierRiskScoreUpdateOne) Mutation() *SupplierRiskScoreMutation {
	return _u.mutation
}

// ClearFactors clears all "factors" edges to the SupplierRiskFactor entity.
func (_u *SupplierRiskScoreUpdateOne) ClearFactors() *SupplierRiskScoreUpdateOne {
	_u.mutation.ClearFactors()
	return _u
}

// RemoveFactorIDs removes the "factors" edge to SupplierRiskFactor entities by IDs.
func (_u *SupplierRiskScoreUpdateOne) RemoveFactorIDs(ids ...string) *SupplierRiskScoreUpdateOne {
	_u.mutation.RemoveFactorIDs(ids...)
	return _u
}

// RemoveFactors removes "factors" edges to SupplierRiskFactor entities.
func (_u *SupplierRiskScoreUpdateOne) RemoveFactors(v ...*SupplierRiskFactor) *SupplierRiskScoreUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFactorIDs(ids...)
}

// Where appends a list predicates to the SupplierRiskScoreUpdate builder.
func (_u *SupplierRiskScoreUpdateOne) Where(ps ...predicate.SupplierRiskScore) *SupplierRiskScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierRiskScoreUpdateOne) Select(field string, fields ...string) *SupplierRiskScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplierRiskScore entity.
func (_u *SupplierRiskScoreUpdateOne) Save(ctx context.Context) (*SupplierRiskScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierRiskScoreUpdateOne) SaveX(ctx context.Context) *SupplierRiskScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierRiskScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierRiskScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierRiskScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplierriskscore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierRiskScoreUpdateOne) check() error {
	if v, ok := _u.mutation.RiskTier(); ok {
		if err := supplierriskscore.RiskTierValidator(v); err != nil {
			return &ValidationError{Name: "risk_tier", err: fmt.Errorf(`ent: validator failed for field "SupplierRiskScore.risk_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *SupplierRiskScoreUpdateOne) sqlSave(ctx context.Context) (_node *SupplierRiskScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplierriskscore.Table, supplierriskscore.Columns, sqlgraph.NewFieldSpec(supplierriskscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplierRiskScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplierriskscore.FieldID)
		for _, f := range fields {
			if !supplierriskscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplierriskscore.FieldID {
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
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(supplierriskscore.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSupplierID(); ok {
		_spec.AddField(supplierriskscore.FieldSupplierID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(supplierriskscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(supplierriskscore.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RiskTier(); ok {
		_spec.SetField(supplierriskscore.FieldRiskTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CalculatedAt(); ok {
		_spec.SetField(supplierriskscore.FieldCalculatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplierriskscore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FactorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFactorsIDs(); len(nodes) > 0 && !_u.mutation.FactorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FactorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   supplierriskscore.FactorsTable,
			Columns: []string{supplierriskscore.FactorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(supplierriskfactor.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SupplierRiskScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplierriskscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

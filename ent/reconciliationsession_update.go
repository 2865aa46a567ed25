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
	"github.com/steward-ai/steward/ent/predicate"
	"github.com/steward-ai/steward/ent/reconciliationsession"
)

// ReconciliationSessionUpdate is the builder for updating ReconciliationSession entities.
type ReconciliationSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ReconciliationSessionMutation
}

// Where appends a list predicates to the ReconciliationSessionUpdate builder.
func (_u *ReconciliationSessionUpdate) Where(ps ...predicate.ReconciliationSession) *ReconciliationSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReconciliationSessionUpdate) SetUserID(v int64) *ReconciliationSessionUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableUserID(v *int64) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ReconciliationSessionUpdate) AddUserID(v int64) *ReconciliationSessionUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetJournalID sets the "journal_id" field.
func (_u *ReconciliationSessionUpdate) SetJournalID(v int64) *ReconciliationSessionUpdate {
	_u.mutation.ResetJournalID()
	_u.mutation.SetJournalID(v)
	return _u
}

// SetNillableJournalID sets the "journal_id" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableJournalID(v *int64) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetJournalID(*v)
	}
	return _u
}

// AddJournalID adds value to the "journal_id" field.
func (_u *ReconciliationSessionUpdate) AddJournalID(v int64) *ReconciliationSessionUpdate {
	_u.mutation.AddJournalID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReconciliationSessionUpdate) SetStatus(v reconciliationsession.Status) *ReconciliationSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableStatus(v *reconciliationsession.Status) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalLines sets the "total_lines" field.
func (_u *ReconciliationSessionUpdate) SetTotalLines(v int) *ReconciliationSessionUpdate {
	_u.mutation.ResetTotalLines()
	_u.mutation.SetTotalLines(v)
	return _u
}

// SetNillableTotalLines sets the "total_lines" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableTotalLines(v *int) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetTotalLines(*v)
	}
	return _u
}

// AddTotalLines adds value to the "total_lines" field.
func (_u *ReconciliationSessionUpdate) AddTotalLines(v int) *ReconciliationSessionUpdate {
	_u.mutation.AddTotalLines(v)
	return _u
}

// SetAutoMatched sets the "auto_matched" field.
func (_u *ReconciliationSessionUpdate) SetAutoMatched(v int) *ReconciliationSessionUpdate {
	_u.mutation.ResetAutoMatched()
	_u.mutation.SetAutoMatched(v)
	return _u
}

// SetNillableAutoMatched sets the "auto_matched" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableAutoMatched(v *int) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetAutoMatched(*v)
	}
	return _u
}

// AddAutoMatched adds value to the "auto_matched" field.
func (_u *ReconciliationSessionUpdate) AddAutoMatched(v int) *ReconciliationSessionUpdate {
	_u.mutation.AddAutoMatched(v)
	return _u
}

// SetManuallyMatched sets the "manually_matched" field.
func (_u *ReconciliationSessionUpdate) SetManuallyMatched(v int) *ReconciliationSessionUpdate {
	_u.mutation.ResetManuallyMatched()
	_u.mutation.SetManuallyMatched(v)
	return _u
}

// SetNillableManuallyMatched sets the "manually_matched" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableManuallyMatched(v *int) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetManuallyMatched(*v)
	}
	return _u
}

// AddManuallyMatched adds value to the "manually_matched" field.
func (_u *ReconciliationSessionUpdate) AddManuallyMatched(v int) *ReconciliationSessionUpdate {
	_u.mutation.AddManuallyMatched(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *ReconciliationSessionUpdate) SetSkipped(v int) *ReconciliationSessionUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableSkipped(v *int) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *ReconciliationSessionUpdate) AddSkipped(v int) *ReconciliationSessionUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetRemaining sets the "remaining" field.
func (_u *ReconciliationSessionUpdate) SetRemaining(v int) *ReconciliationSessionUpdate {
	_u.mutation.ResetRemaining()
	_u.mutation.SetRemaining(v)
	return _u
}

// SetNillableRemaining sets the "remaining" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableRemaining(v *int) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetRemaining(*v)
	}
	return _u
}

// AddRemaining adds value to the "remaining" field.
func (_u *ReconciliationSessionUpdate) AddRemaining(v int) *ReconciliationSessionUpdate {
	_u.mutation.AddRemaining(v)
	return _u
}

// SetLearnedRules sets the "learned_rules" field.
func (_u *ReconciliationSessionUpdate) SetLearnedRules(v []map[string]interface{}) *ReconciliationSessionUpdate {
	_u.mutation.SetLearnedRules(v)
	return _u
}

// AppendLearnedRules appends value to the "learned_rules" field.
func (_u *ReconciliationSessionUpdate) AppendLearnedRules(v []map[string]interface{}) *ReconciliationSessionUpdate {
	_u.mutation.AppendLearnedRules(v)
	return _u
}

// ClearLearnedRules clears the value of the "learned_rules" field.
func (_u *ReconciliationSessionUpdate) ClearLearnedRules() *ReconciliationSessionUpdate {
	_u.mutation.ClearLearnedRules()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReconciliationSessionUpdate) SetUpdatedAt(v time.Time) *ReconciliationSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReconciliationSessionUpdate) SetCompletedAt(v time.Time) *ReconciliationSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReconciliationSessionUpdate) SetNillableCompletedAt(v *time.Time) *ReconciliationSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReconciliationSessionUpdate) ClearCompletedAt() *ReconciliationSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ReconciliationSessionMutation object of the builder.
func (_u *ReconciliationSessionUpdate) Mutation() *ReconciliationSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReconciliationSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReconciliationSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReconciliationSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReconciliationSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReconciliationSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reconciliationsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReconciliationSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reconciliationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconciliationSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReconciliationSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reconciliationsession.Table, reconciliationsession.Columns, sqlgraph.NewFieldSpec(reconciliationsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reconciliationsession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(reconciliationsession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.JournalID(); ok {
		_spec.SetField(reconciliationsession.FieldJournalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedJournalID(); ok {
		_spec.AddField(reconciliationsession.FieldJournalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reconciliationsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalLines(); ok {
		_spec.SetField(reconciliationsession.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLines(); ok {
		_spec.AddField(reconciliationsession.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoMatched(); ok {
		_spec.SetField(reconciliationsession.FieldAutoMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoMatched(); ok {
		_spec.AddField(reconciliationsession.FieldAutoMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ManuallyMatched(); ok {
		_spec.SetField(reconciliationsession.FieldManuallyMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedManuallyMatched(); ok {
		_spec.AddField(reconciliationsession.FieldManuallyMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(reconciliationsession.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(reconciliationsession.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Remaining(); ok {
		_spec.SetField(reconciliationsession.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemaining(); ok {
		_spec.AddField(reconciliationsession.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnedRules(); ok {
		_spec.SetField(reconciliationsession.FieldLearnedRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearnedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconciliationsession.FieldLearnedRules, value)
		})
	}
	if _u.mutation.LearnedRulesCleared() {
		_spec.ClearField(reconciliationsession.FieldLearnedRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reconciliationsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reconciliationsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reconciliationsession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reconciliationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReconciliationSessionUpdateOne is the builder for updating a single ReconciliationSession entity.
type ReconciliationSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReconciliationSessionMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReconciliationSessionUpdateOne) SetUserID(v int64) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableUserID(v *int64) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *ReconciliationSessionUpdateOne) AddUserID(v int64) *ReconciliationSessionUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetJournalID sets the "journal_id" field.
func (_u *ReconciliationSessionUpdateOne) SetJournalID(v int64) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetJournalID()
	_u.mutation.SetJournalID(v)
	return _u
}

// SetNillableJournalID sets the "journal_id" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableJournalID(v *int64) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetJournalID(*v)
	}
	return _u
}

// AddJournalID adds value to the "journal_id" field.
func (_u *ReconciliationSessionUpdateOne) AddJournalID(v int64) *ReconciliationSessionUpdateOne {
	_u.mutation.AddJournalID(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReconciliationSessionUpdateOne) SetStatus(v reconciliationsession.Status) *ReconciliationSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableStatus(v *reconciliationsession.Status) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalLines sets the "total_lines" field.
func (_u *ReconciliationSessionUpdateOne) SetTotalLines(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetTotalLines()
	_u.mutation.SetTotalLines(v)
	return _u
}

// SetNillableTotalLines sets the "total_lines" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableTotalLines(v *int) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetTotalLines(*v)
	}
	return _u
}

// AddTotalLines adds value to the "total_lines" field.
func (_u *ReconciliationSessionUpdateOne) AddTotalLines(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.AddTotalLines(v)
	return _u
}

// SetAutoMatched sets the "auto_matched" field.
func (_u *ReconciliationSessionUpdateOne) SetAutoMatched(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetAutoMatched()
	_u.mutation.SetAutoMatched(v)
	return _u
}

// SetNillableAutoMatched sets the "auto_matched" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableAutoMatched(v *int) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetAutoMatched(*v)
	}
	return _u
}

// AddAutoMatched adds value to the "auto_matched" field.
func (_u *ReconciliationSessionUpdateOne) AddAutoMatched(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.AddAutoMatched(v)
	return _u
}

// SetManuallyMatched sets the "manually_matched" field.
func (_u *ReconciliationSessionUpdateOne) SetManuallyMatched(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetManuallyMatched()
	_u.mutation.SetManuallyMatched(v)
	return _u
}

// SetNillableManuallyMatched sets the "manually_matched" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableManuallyMatched(v *int) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetManuallyMatched(*v)
	}
	return _u
}

// AddManuallyMatched adds value to the "manually_matched" field.
func (_u *ReconciliationSessionUpdateOne) AddManuallyMatched(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.AddManuallyMatched(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *ReconciliationSessionUpdateOne) SetSkipped(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableSkipped(v *int) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *ReconciliationSessionUpdateOne) AddSkipped(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetRemaining sets the "remaining" field.
func (_u *ReconciliationSessionUpdateOne) SetRemaining(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.ResetRemaining()
	_u.mutation.SetRemaining(v)
	return _u
}

// SetNillableRemaining sets the "remaining" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableRemaining(v *int) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetRemaining(*v)
	}
	return _u
}

// AddRemaining adds value to the "remaining" field.
func (_u *ReconciliationSessionUpdateOne) AddRemaining(v int) *ReconciliationSessionUpdateOne {
	_u.mutation.AddRemaining(v)
	return _u
}

// SetLearnedRules sets the "learned_rules" field.
func (_u *ReconciliationSessionUpdateOne) SetLearnedRules(v []map[string]interface{}) *ReconciliationSessionUpdateOne {
	_u.mutation.SetLearnedRules(v)
	return _u
}

// AppendLearnedRules appends value to the "learned_rules" field.
func (_u *ReconciliationSessionUpdateOne) AppendLearnedRules(v []map[string]interface{}) *ReconciliationSessionUpdateOne {
	_u.mutation.AppendLearnedRules(v)
	return _u
}

// ClearLearnedRules clears the value of the "learned_rules" field.
func (_u *ReconciliationSessionUpdateOne) ClearLearnedRules() *ReconciliationSessionUpdateOne {
	_u.mutation.ClearLearnedRules()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReconciliationSessionUpdateOne) SetUpdatedAt(v time.Time) *ReconciliationSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ReconciliationSessionUpdateOne) SetCompletedAt(v time.Time) *ReconciliationSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ReconciliationSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ReconciliationSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ReconciliationSessionUpdateOne) ClearCompletedAt() *ReconciliationSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ReconciliationSessionMutation object of the builder.
func (_u *ReconciliationSessionUpdateOne) Mutation() *ReconciliationSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReconciliationSessionUpdate builder.
func (_u *ReconciliationSessionUpdateOne) Where(ps ...predicate.ReconciliationSession) *ReconciliationSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReconciliationSessionUpdateOne) Select(field string, fields ...string) *ReconciliationSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReconciliationSession entity.
func (_u *ReconciliationSessionUpdateOne) Save(ctx context.Context) (*ReconciliationSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReconciliationSessionUpdateOne) SaveX(ctx context.Context) *ReconciliationSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReconciliationSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReconciliationSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReconciliationSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reconciliationsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReconciliationSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := reconciliationsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ReconciliationSession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReconciliationSessionUpdateOne) sqlSave(ctx context.Context) (_node *ReconciliationSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reconciliationsession.Table, reconciliationsession.Columns, sqlgraph.NewFieldSpec(reconciliationsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReconciliationSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reconciliationsession.FieldID)
		for _, f := range fields {
			if !reconciliationsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reconciliationsession.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(reconciliationsession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(reconciliationsession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.JournalID(); ok {
		_spec.SetField(reconciliationsession.FieldJournalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedJournalID(); ok {
		_spec.AddField(reconciliationsession.FieldJournalID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reconciliationsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalLines(); ok {
		_spec.SetField(reconciliationsession.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLines(); ok {
		_spec.AddField(reconciliationsession.FieldTotalLines, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoMatched(); ok {
		_spec.SetField(reconciliationsession.FieldAutoMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAutoMatched(); ok {
		_spec.AddField(reconciliationsession.FieldAutoMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ManuallyMatched(); ok {
		_spec.SetField(reconciliationsession.FieldManuallyMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedManuallyMatched(); ok {
		_spec.AddField(reconciliationsession.FieldManuallyMatched, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(reconciliationsession.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(reconciliationsession.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Remaining(); ok {
		_spec.SetField(reconciliationsession.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemaining(); ok {
		_spec.AddField(reconciliationsession.FieldRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnedRules(); ok {
		_spec.SetField(reconciliationsession.FieldLearnedRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLearnedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reconciliationsession.FieldLearnedRules, value)
		})
	}
	if _u.mutation.LearnedRulesCleared() {
		_spec.ClearField(reconciliationsession.FieldLearnedRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reconciliationsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(reconciliationsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(reconciliationsession.FieldCompletedAt, field.TypeTime)
	}
	_node = &ReconciliationSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reconciliationsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

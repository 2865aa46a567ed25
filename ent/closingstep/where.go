// Code generated by ent, DO NOT EDIT.

package closingstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContainsFold(FieldID, id))
}

// ClosingID applies equality check predicate on the "closing_id" field. It's identical to ClosingIDEQ.
func ClosingID(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldClosingID, v))
}

// StepName applies equality check predicate on the "step_name" field. It's identical to StepNameEQ.
func StepName(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldStepName, v))
}

// StepIndex applies equality check predicate on the "step_index" field. It's identical to StepIndexEQ.
func StepIndex(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldStepIndex, v))
}

// BlockedReason applies equality check predicate on the "blocked_reason" field. It's identical to BlockedReasonEQ.
func BlockedReason(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldBlockedReason, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldCompletedAt, v))
}

// ClosingIDEQ applies the EQ predicate on the "closing_id" field.
func ClosingIDEQ(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldClosingID, v))
}

// ClosingIDNEQ applies the NEQ predicate on the "closing_id" field.
func ClosingIDNEQ(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldClosingID, v))
}

// ClosingIDIn applies the In predicate on the "closing_id" field.
func ClosingIDIn(vs ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldClosingID, vs...))
}

// ClosingIDNotIn applies the NotIn predicate on the "closing_id" field.
func ClosingIDNotIn(vs ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldClosingID, vs...))
}

// ClosingIDGT applies the GT predicate on the "closing_id" field.
func ClosingIDGT(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGT(FieldClosingID, v))
}

// ClosingIDGTE applies the GTE predicate on the "closing_id" field.
func ClosingIDGTE(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGTE(FieldClosingID, v))
}

// ClosingIDLT applies the LT predicate on the "closing_id" field.
func ClosingIDLT(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLT(FieldClosingID, v))
}

// ClosingIDLTE applies the LTE predicate on the "closing_id" field.
func ClosingIDLTE(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLTE(FieldClosingID, v))
}

// ClosingIDContains applies the Contains predicate on the "closing_id" field.
func ClosingIDContains(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContains(FieldClosingID, v))
}

// ClosingIDHasPrefix applies the HasPrefix predicate on the "closing_id" field.
func ClosingIDHasPrefix(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldHasPrefix(FieldClosingID, v))
}

// ClosingIDHasSuffix applies the HasSuffix predicate on the "closing_id" field.
func ClosingIDHasSuffix(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldHasSuffix(FieldClosingID, v))
}

// ClosingIDEqualFold applies the EqualFold predicate on the "closing_id" field.
func ClosingIDEqualFold(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEqualFold(FieldClosingID, v))
}

// ClosingIDContainsFold applies the ContainsFold predicate on the "closing_id" field.
func ClosingIDContainsFold(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContainsFold(FieldClosingID, v))
}

// StepNameEQ applies the EQ predicate on the "step_name" field.
func StepNameEQ(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldStepName, v))
}

// StepNameNEQ applies the NEQ predicate on the "step_name" field.
func StepNameNEQ(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldStepName, v))
}

// StepNameIn applies the In predicate on the "step_name" field.
func StepNameIn(vs ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldStepName, vs...))
}

// StepNameNotIn applies the NotIn predicate on the "step_name" field.
func StepNameNotIn(vs ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldStepName, vs...))
}

// StepNameGT applies the GT predicate on the "step_name" field.
func StepNameGT(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGT(FieldStepName, v))
}

// StepNameGTE applies the GTE predicate on the "step_name" field.
func StepNameGTE(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGTE(FieldStepName, v))
}

// StepNameLT applies the LT predicate on the "step_name" field.
func StepNameLT(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLT(FieldStepName, v))
}

// StepNameLTE applies the LTE predicate on the "step_name" field.
func StepNameLTE(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLTE(FieldStepName, v))
}

// StepNameContains applies the Contains predicate on the "step_name" field.
func StepNameContains(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContains(FieldStepName, v))
}

// StepNameHasPrefix applies the HasPrefix predicate on the "step_name" field.
func StepNameHasPrefix(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldHasPrefix(FieldStepName, v))
}

// StepNameHasSuffix applies the HasSuffix predicate on the "step_name" field.
func StepNameHasSuffix(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldHasSuffix(FieldStepName, v))
}

// StepNameEqualFold applies the EqualFold predicate on the "step_name" field.
func StepNameEqualFold(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEqualFold(FieldStepName, v))
}

// StepNameContainsFold applies the ContainsFold predicate on the "step_name" field.
func StepNameContainsFold(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContainsFold(FieldStepName, v))
}

// StepIndexEQ applies the EQ predicate on the "step_index" field.
func StepIndexEQ(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldStepIndex, v))
}

// StepIndexNEQ applies the NEQ predicate on the "step_index" field.
func StepIndexNEQ(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldStepIndex, v))
}

// StepIndexIn applies the In predicate on the "step_index" field.
func StepIndexIn(vs ...int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldStepIndex, vs...))
}

// StepIndexNotIn applies the NotIn predicate on the "step_index" field.
func StepIndexNotIn(vs ...int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldStepIndex, vs...))
}

// StepIndexGT applies the GT predicate on the "step_index" field.
func StepIndexGT(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGT(FieldStepIndex, v))
}

// StepIndexGTE applies the GTE predicate on the "step_index" field.
func StepIndexGTE(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGTE(FieldStepIndex, v))
}

// StepIndexLT applies the LT predicate on the "step_index" field.
func StepIndexLT(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLT(FieldStepIndex, v))
}

// StepIndexLTE applies the LTE predicate on the "step_index" field.
func StepIndexLTE(v int) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLTE(FieldStepIndex, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldStatus, vs...))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotNull(FieldDetails))
}

// BlockedReasonEQ applies the EQ predicate on the "blocked_reason" field.
func BlockedReasonEQ(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldBlockedReason, v))
}

// BlockedReasonNEQ applies the NEQ predicate on the "blocked_reason" field.
func BlockedReasonNEQ(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldBlockedReason, v))
}

// BlockedReasonIn applies the In predicate on the "blocked_reason" field.
func BlockedReasonIn(vs ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldBlockedReason, vs...))
}

// BlockedReasonNotIn applies the NotIn predicate on the "blocked_reason" field.
func BlockedReasonNotIn(vs ...string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldBlockedReason, vs...))
}

// BlockedReasonGT applies the GT predicate on the "blocked_reason" field.
func BlockedReasonGT(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGT(FieldBlockedReason, v))
}

// BlockedReasonGTE applies the GTE predicate on the "blocked_reason" field.
func BlockedReasonGTE(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGTE(FieldBlockedReason, v))
}

// BlockedReasonLT applies the LT predicate on the "blocked_reason" field.
func BlockedReasonLT(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLT(FieldBlockedReason, v))
}

// BlockedReasonLTE applies the LTE predicate on the "blocked_reason" field.
func BlockedReasonLTE(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLTE(FieldBlockedReason, v))
}

// BlockedReasonContains applies the Contains predicate on the "blocked_reason" field.
func BlockedReasonContains(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContains(FieldBlockedReason, v))
}

// BlockedReasonHasPrefix applies the HasPrefix predicate on the "blocked_reason" field.
func BlockedReasonHasPrefix(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldHasPrefix(FieldBlockedReason, v))
}

// BlockedReasonHasSuffix applies the HasSuffix predicate on the "blocked_reason" field.
func BlockedReasonHasSuffix(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldHasSuffix(FieldBlockedReason, v))
}

// BlockedReasonIsNil applies the IsNil predicate on the "blocked_reason" field.
func BlockedReasonIsNil() predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIsNull(FieldBlockedReason))
}

// BlockedReasonNotNil applies the NotNil predicate on the "blocked_reason" field.
func BlockedReasonNotNil() predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotNull(FieldBlockedReason))
}

// BlockedReasonEqualFold applies the EqualFold predicate on the "blocked_reason" field.
func BlockedReasonEqualFold(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEqualFold(FieldBlockedReason, v))
}

// BlockedReasonContainsFold applies the ContainsFold predicate on the "blocked_reason" field.
func BlockedReasonContainsFold(v string) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldContainsFold(FieldBlockedReason, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ClosingStep {
	return predicate.ClosingStep(sql.FieldNotNull(FieldCompletedAt))
}

// HasClosing applies the HasEdge predicate on the "closing" edge.
func HasClosing() predicate.ClosingStep {
	return predicate.ClosingStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClosingTable, ClosingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClosingWith applies the HasEdge predicate on the "closing" edge with a given conditions (other predicates).
func HasClosingWith(preds ...predicate.MonthEndClosing) predicate.ClosingStep {
	return predicate.ClosingStep(func(s *sql.Selector) {
		step := newClosingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClosingStep) predicate.ClosingStep {
	return predicate.ClosingStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClosingStep) predicate.ClosingStep {
	return predicate.ClosingStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClosingStep) predicate.ClosingStep {
	return predicate.ClosingStep(sql.NotPredicates(p))
}

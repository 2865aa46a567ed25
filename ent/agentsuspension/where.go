// Code generated by ent, DO NOT EDIT.

package agentsuspension

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldRunID, v))
}

// ResumeCondition applies equality check predicate on the "resume_condition" field. It's identical to ResumeConditionEQ.
func ResumeCondition(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldResumeCondition, v))
}

// SuspendedAtStep applies equality check predicate on the "suspended_at_step" field. It's identical to SuspendedAtStepEQ.
func SuspendedAtStep(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldSuspendedAtStep, v))
}

// TimeoutAt applies equality check predicate on the "timeout_at" field. It's identical to TimeoutAtEQ.
func TimeoutAt(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldTimeoutAt, v))
}

// SuspendedAt applies equality check predicate on the "suspended_at" field. It's identical to SuspendedAtEQ.
func SuspendedAt(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldSuspendedAt, v))
}

// ResumedAt applies equality check predicate on the "resumed_at" field. It's identical to ResumedAtEQ.
func ResumedAt(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldResumedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContainsFold(FieldRunID, v))
}

// ResumeConditionEQ applies the EQ predicate on the "resume_condition" field.
func ResumeConditionEQ(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldResumeCondition, v))
}

// ResumeConditionNEQ applies the NEQ predicate on the "resume_condition" field.
func ResumeConditionNEQ(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldResumeCondition, v))
}

// ResumeConditionIn applies the In predicate on the "resume_condition" field.
func ResumeConditionIn(vs ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldResumeCondition, vs...))
}

// ResumeConditionNotIn applies the NotIn predicate on the "resume_condition" field.
func ResumeConditionNotIn(vs ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldResumeCondition, vs...))
}

// ResumeConditionGT applies the GT predicate on the "resume_condition" field.
func ResumeConditionGT(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldResumeCondition, v))
}

// ResumeConditionGTE applies the GTE predicate on the "resume_condition" field.
func ResumeConditionGTE(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldResumeCondition, v))
}

// ResumeConditionLT applies the LT predicate on the "resume_condition" field.
func ResumeConditionLT(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldResumeCondition, v))
}

// ResumeConditionLTE applies the LTE predicate on the "resume_condition" field.
func ResumeConditionLTE(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldResumeCondition, v))
}

// ResumeConditionContains applies the Contains predicate on the "resume_condition" field.
func ResumeConditionContains(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContains(FieldResumeCondition, v))
}

// ResumeConditionHasPrefix applies the HasPrefix predicate on the "resume_condition" field.
func ResumeConditionHasPrefix(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldHasPrefix(FieldResumeCondition, v))
}

// ResumeConditionHasSuffix applies the HasSuffix predicate on the "resume_condition" field.
func ResumeConditionHasSuffix(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldHasSuffix(FieldResumeCondition, v))
}

// ResumeConditionEqualFold applies the EqualFold predicate on the "resume_condition" field.
func ResumeConditionEqualFold(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEqualFold(FieldResumeCondition, v))
}

// ResumeConditionContainsFold applies the ContainsFold predicate on the "resume_condition" field.
func ResumeConditionContainsFold(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContainsFold(FieldResumeCondition, v))
}

// SuspendedAtStepEQ applies the EQ predicate on the "suspended_at_step" field.
func SuspendedAtStepEQ(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldSuspendedAtStep, v))
}

// SuspendedAtStepNEQ applies the NEQ predicate on the "suspended_at_step" field.
func SuspendedAtStepNEQ(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldSuspendedAtStep, v))
}

// SuspendedAtStepIn applies the In predicate on the "suspended_at_step" field.
func SuspendedAtStepIn(vs ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldSuspendedAtStep, vs...))
}

// SuspendedAtStepNotIn applies the NotIn predicate on the "suspended_at_step" field.
func SuspendedAtStepNotIn(vs ...string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldSuspendedAtStep, vs...))
}

// SuspendedAtStepGT applies the GT predicate on the "suspended_at_step" field.
func SuspendedAtStepGT(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldSuspendedAtStep, v))
}

// SuspendedAtStepGTE applies the GTE predicate on the "suspended_at_step" field.
func SuspendedAtStepGTE(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldSuspendedAtStep, v))
}

// SuspendedAtStepLT applies the LT predicate on the "suspended_at_step" field.
func SuspendedAtStepLT(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldSuspendedAtStep, v))
}

// SuspendedAtStepLTE applies the LTE predicate on the "suspended_at_step" field.
func SuspendedAtStepLTE(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldSuspendedAtStep, v))
}

// SuspendedAtStepContains applies the Contains predicate on the "suspended_at_step" field.
func SuspendedAtStepContains(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContains(FieldSuspendedAtStep, v))
}

// SuspendedAtStepHasPrefix applies the HasPrefix predicate on the "suspended_at_step" field.
func SuspendedAtStepHasPrefix(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldHasPrefix(FieldSuspendedAtStep, v))
}

// SuspendedAtStepHasSuffix applies the HasSuffix predicate on the "suspended_at_step" field.
func SuspendedAtStepHasSuffix(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldHasSuffix(FieldSuspendedAtStep, v))
}

// SuspendedAtStepEqualFold applies the EqualFold predicate on the "suspended_at_step" field.
func SuspendedAtStepEqualFold(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEqualFold(FieldSuspendedAtStep, v))
}

// SuspendedAtStepContainsFold applies the ContainsFold predicate on the "suspended_at_step" field.
func SuspendedAtStepContainsFold(v string) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldContainsFold(FieldSuspendedAtStep, v))
}

// TimeoutAtEQ applies the EQ predicate on the "timeout_at" field.
func TimeoutAtEQ(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldTimeoutAt, v))
}

// TimeoutAtNEQ applies the NEQ predicate on the "timeout_at" field.
func TimeoutAtNEQ(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldTimeoutAt, v))
}

// TimeoutAtIn applies the In predicate on the "timeout_at" field.
func TimeoutAtIn(vs ...time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldTimeoutAt, vs...))
}

// TimeoutAtNotIn applies the NotIn predicate on the "timeout_at" field.
func TimeoutAtNotIn(vs ...time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldTimeoutAt, vs...))
}

// TimeoutAtGT applies the GT predicate on the "timeout_at" field.
func TimeoutAtGT(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldTimeoutAt, v))
}

// TimeoutAtGTE applies the GTE predicate on the "timeout_at" field.
func TimeoutAtGTE(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldTimeoutAt, v))
}

// TimeoutAtLT applies the LT predicate on the "timeout_at" field.
func TimeoutAtLT(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldTimeoutAt, v))
}

// TimeoutAtLTE applies the LTE predicate on the "timeout_at" field.
func TimeoutAtLTE(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldTimeoutAt, v))
}

// ResumeDataIsNil applies the IsNil predicate on the "resume_data" field.
func ResumeDataIsNil() predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIsNull(FieldResumeData))
}

// ResumeDataNotNil applies the NotNil predicate on the "resume_data" field.
func ResumeDataNotNil() predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotNull(FieldResumeData))
}

// SuspendedAtEQ applies the EQ predicate on the "suspended_at" field.
func SuspendedAtEQ(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldSuspendedAt, v))
}

// SuspendedAtNEQ applies the NEQ predicate on the "suspended_at" field.
func SuspendedAtNEQ(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldSuspendedAt, v))
}

// SuspendedAtIn applies the In predicate on the "suspended_at" field.
func SuspendedAtIn(vs ...time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldSuspendedAt, vs...))
}

// SuspendedAtNotIn applies the NotIn predicate on the "suspended_at" field.
func SuspendedAtNotIn(vs ...time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldSuspendedAt, vs...))
}

// SuspendedAtGT applies the GT predicate on the "suspended_at" field.
func SuspendedAtGT(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldSuspendedAt, v))
}

// SuspendedAtGTE applies the GTE predicate on the "suspended_at" field.
func SuspendedAtGTE(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldSuspendedAt, v))
}

// SuspendedAtLT applies the LT predicate on the "suspended_at" field.
func SuspendedAtLT(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldSuspendedAt, v))
}

// SuspendedAtLTE applies the LTE predicate on the "suspended_at" field.
func SuspendedAtLTE(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldSuspendedAt, v))
}

// ResumedAtEQ applies the EQ predicate on the "resumed_at" field.
func ResumedAtEQ(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldEQ(FieldResumedAt, v))
}

// ResumedAtNEQ applies the NEQ predicate on the "resumed_at" field.
func ResumedAtNEQ(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNEQ(FieldResumedAt, v))
}

// ResumedAtIn applies the In predicate on the "resumed_at" field.
func ResumedAtIn(vs ...time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIn(FieldResumedAt, vs...))
}

// ResumedAtNotIn applies the NotIn predicate on the "resumed_at" field.
func ResumedAtNotIn(vs ...time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotIn(FieldResumedAt, vs...))
}

// ResumedAtGT applies the GT predicate on the "resumed_at" field.
func ResumedAtGT(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGT(FieldResumedAt, v))
}

// ResumedAtGTE applies the GTE predicate on the "resumed_at" field.
func ResumedAtGTE(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldGTE(FieldResumedAt, v))
}

// ResumedAtLT applies the LT predicate on the "resumed_at" field.
func ResumedAtLT(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLT(FieldResumedAt, v))
}

// ResumedAtLTE applies the LTE predicate on the "resumed_at" field.
func ResumedAtLTE(v time.Time) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldLTE(FieldResumedAt, v))
}

// ResumedAtIsNil applies the IsNil predicate on the "resumed_at" field.
func ResumedAtIsNil() predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldIsNull(FieldResumedAt))
}

// ResumedAtNotNil applies the NotNil predicate on the "resumed_at" field.
func ResumedAtNotNil() predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.FieldNotNull(FieldResumedAt))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.AgentSuspension {
	return predicate.AgentSuspension(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.AgentRun) predicate.AgentSuspension {
	return predicate.AgentSuspension(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentSuspension) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentSuspension) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentSuspension) predicate.AgentSuspension {
	return predicate.AgentSuspension(sql.NotPredicates(p))
}

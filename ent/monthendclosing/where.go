// Code generated by ent, DO NOT EDIT.

package monthendclosing

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldContainsFold(FieldID, id))
}

// Period applies equality check predicate on the "period" field. It's identical to PeriodEQ.
func Period(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldPeriod, v))
}

// ReadinessScore applies equality check predicate on the "readiness_score" field. It's identical to ReadinessScoreEQ.
func ReadinessScore(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldReadinessScore, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldCompletedAt, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotIn(FieldPeriod, vs...))
}

// PeriodGT applies the GT predicate on the "period" field.
func PeriodGT(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGT(FieldPeriod, v))
}

// PeriodGTE applies the GTE predicate on the "period" field.
func PeriodGTE(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGTE(FieldPeriod, v))
}

// PeriodLT applies the LT predicate on the "period" field.
func PeriodLT(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLT(FieldPeriod, v))
}

// PeriodLTE applies the LTE predicate on the "period" field.
func PeriodLTE(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLTE(FieldPeriod, v))
}

// PeriodContains applies the Contains predicate on the "period" field.
func PeriodContains(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldContains(FieldPeriod, v))
}

// PeriodHasPrefix applies the HasPrefix predicate on the "period" field.
func PeriodHasPrefix(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldHasPrefix(FieldPeriod, v))
}

// PeriodHasSuffix applies the HasSuffix predicate on the "period" field.
func PeriodHasSuffix(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldHasSuffix(FieldPeriod, v))
}

// PeriodEqualFold applies the EqualFold predicate on the "period" field.
func PeriodEqualFold(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEqualFold(FieldPeriod, v))
}

// PeriodContainsFold applies the ContainsFold predicate on the "period" field.
func PeriodContainsFold(v string) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldContainsFold(FieldPeriod, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotIn(FieldStatus, vs...))
}

// ReadinessScoreEQ applies the EQ predicate on the "readiness_score" field.
func ReadinessScoreEQ(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldReadinessScore, v))
}

// ReadinessScoreNEQ applies the NEQ predicate on the "readiness_score" field.
func ReadinessScoreNEQ(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNEQ(FieldReadinessScore, v))
}

// ReadinessScoreIn applies the In predicate on the "readiness_score" field.
func ReadinessScoreIn(vs ...float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIn(FieldReadinessScore, vs...))
}

// ReadinessScoreNotIn applies the NotIn predicate on the "readiness_score" field.
func ReadinessScoreNotIn(vs ...float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotIn(FieldReadinessScore, vs...))
}

// ReadinessScoreGT applies the GT predicate on the "readiness_score" field.
func ReadinessScoreGT(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGT(FieldReadinessScore, v))
}

// ReadinessScoreGTE applies the GTE predicate on the "readiness_score" field.
func ReadinessScoreGTE(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGTE(FieldReadinessScore, v))
}

// ReadinessScoreLT applies the LT predicate on the "readiness_score" field.
func ReadinessScoreLT(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLT(FieldReadinessScore, v))
}

// ReadinessScoreLTE applies the LTE predicate on the "readiness_score" field.
func ReadinessScoreLTE(v float64) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLTE(FieldReadinessScore, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotNull(FieldSummary))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.FieldNotNull(FieldCompletedAt))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.MonthEndClosing {
	return predicate.MonthEndClosing(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.ClosingStep) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonthEndClosing) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonthEndClosing) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonthEndClosing) predicate.MonthEndClosing {
	return predicate.MonthEndClosing(sql.NotPredicates(p))
}

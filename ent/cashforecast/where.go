// Code generated by ent, DO NOT EDIT.

package cashforecast

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldContainsFold(FieldID, id))
}

// ForecastDate applies equality check predicate on the "forecast_date" field. It's identical to ForecastDateEQ.
func ForecastDate(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldForecastDate, v))
}

// TargetDate applies equality check predicate on the "target_date" field. It's identical to TargetDateEQ.
func TargetDate(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldTargetDate, v))
}

// OpeningBalance applies equality check predicate on the "opening_balance" field. It's identical to OpeningBalanceEQ.
func OpeningBalance(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldOpeningBalance, v))
}

// ExpectedInflows applies equality check predicate on the "expected_inflows" field. It's identical to ExpectedInflowsEQ.
func ExpectedInflows(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldExpectedInflows, v))
}

// ExpectedOutflows applies equality check predicate on the "expected_outflows" field. It's identical to ExpectedOutflowsEQ.
func ExpectedOutflows(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldExpectedOutflows, v))
}

// ProjectedBalance applies equality check predicate on the "projected_balance" field. It's identical to ProjectedBalanceEQ.
func ProjectedBalance(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldProjectedBalance, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldCreatedAt, v))
}

// ForecastDateEQ applies the EQ predicate on the "forecast_date" field.
func ForecastDateEQ(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldForecastDate, v))
}

// ForecastDateNEQ applies the NEQ predicate on the "forecast_date" field.
func ForecastDateNEQ(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldForecastDate, v))
}

// ForecastDateIn applies the In predicate on the "forecast_date" field.
func ForecastDateIn(vs ...time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldForecastDate, vs...))
}

// ForecastDateNotIn applies the NotIn predicate on the "forecast_date" field.
func ForecastDateNotIn(vs ...time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldForecastDate, vs...))
}

// ForecastDateGT applies the GT predicate on the "forecast_date" field.
func ForecastDateGT(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldForecastDate, v))
}

// ForecastDateGTE applies the GTE predicate on the "forecast_date" field.
func ForecastDateGTE(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldForecastDate, v))
}

// ForecastDateLT applies the LT predicate on the "forecast_date" field.
func ForecastDateLT(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldForecastDate, v))
}

// ForecastDateLTE applies the LTE predicate on the "forecast_date" field.
func ForecastDateLTE(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldForecastDate, v))
}

// TargetDateEQ applies the EQ predicate on the "target_date" field.
func TargetDateEQ(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldTargetDate, v))
}

// TargetDateNEQ applies the NEQ predicate on the "target_date" field.
func TargetDateNEQ(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldTargetDate, v))
}

// TargetDateIn applies the In predicate on the "target_date" field.
func TargetDateIn(vs ...time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldTargetDate, vs...))
}

// TargetDateNotIn applies the NotIn predicate on the "target_date" field.
func TargetDateNotIn(vs ...time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldTargetDate, vs...))
}

// TargetDateGT applies the GT predicate on the "target_date" field.
func TargetDateGT(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldTargetDate, v))
}

// TargetDateGTE applies the GTE predicate on the "target_date" field.
func TargetDateGTE(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldTargetDate, v))
}

// TargetDateLT applies the LT predicate on the "target_date" field.
func TargetDateLT(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldTargetDate, v))
}

// TargetDateLTE applies the LTE predicate on the "target_date" field.
func TargetDateLTE(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldTargetDate, v))
}

// OpeningBalanceEQ applies the EQ predicate on the "opening_balance" field.
func OpeningBalanceEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldOpeningBalance, v))
}

// OpeningBalanceNEQ applies the NEQ predicate on the "opening_balance" field.
func OpeningBalanceNEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldOpeningBalance, v))
}

// OpeningBalanceIn applies the In predicate on the "opening_balance" field.
func OpeningBalanceIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldOpeningBalance, vs...))
}

// OpeningBalanceNotIn applies the NotIn predicate on the "opening_balance" field.
func OpeningBalanceNotIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldOpeningBalance, vs...))
}

// OpeningBalanceGT applies the GT predicate on the "opening_balance" field.
func OpeningBalanceGT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldOpeningBalance, v))
}

// OpeningBalanceGTE applies the GTE predicate on the "opening_balance" field.
func OpeningBalanceGTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldOpeningBalance, v))
}

// OpeningBalanceLT applies the LT predicate on the "opening_balance" field.
func OpeningBalanceLT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldOpeningBalance, v))
}

// OpeningBalanceLTE applies the LTE predicate on the "opening_balance" field.
func OpeningBalanceLTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldOpeningBalance, v))
}

// ExpectedInflowsEQ applies the EQ predicate on the "expected_inflows" field.
func ExpectedInflowsEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldExpectedInflows, v))
}

// ExpectedInflowsNEQ applies the NEQ predicate on the "expected_inflows" field.
func ExpectedInflowsNEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldExpectedInflows, v))
}

// ExpectedInflowsIn applies the In predicate on the "expected_inflows" field.
func ExpectedInflowsIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldExpectedInflows, vs...))
}

// ExpectedInflowsNotIn applies the NotIn predicate on the "expected_inflows" field.
func ExpectedInflowsNotIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldExpectedInflows, vs...))
}

// ExpectedInflowsGT applies the GT predicate on the "expected_inflows" field.
func ExpectedInflowsGT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldExpectedInflows, v))
}

// ExpectedInflowsGTE applies the GTE predicate on the "expected_inflows" field.
func ExpectedInflowsGTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldExpectedInflows, v))
}

// ExpectedInflowsLT applies the LT predicate on the "expected_inflows" field.
func ExpectedInflowsLT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldExpectedInflows, v))
}

// ExpectedInflowsLTE applies the LTE predicate on the "expected_inflows" field.
func ExpectedInflowsLTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldExpectedInflows, v))
}

// ExpectedOutflowsEQ applies the EQ predicate on the "expected_outflows" field.
func ExpectedOutflowsEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldExpectedOutflows, v))
}

// ExpectedOutflowsNEQ applies the NEQ predicate on the "expected_outflows" field.
func ExpectedOutflowsNEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldExpectedOutflows, v))
}

// ExpectedOutflowsIn applies the In predicate on the "expected_outflows" field.
func ExpectedOutflowsIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldExpectedOutflows, vs...))
}

// ExpectedOutflowsNotIn applies the NotIn predicate on the "expected_outflows" field.
func ExpectedOutflowsNotIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldExpectedOutflows, vs...))
}

// ExpectedOutflowsGT applies the GT predicate on the "expected_outflows" field.
func ExpectedOutflowsGT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldExpectedOutflows, v))
}

// ExpectedOutflowsGTE applies the GTE predicate on the "expected_outflows" field.
func ExpectedOutflowsGTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldExpectedOutflows, v))
}

// ExpectedOutflowsLT applies the LT predicate on the "expected_outflows" field.
func ExpectedOutflowsLT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldExpectedOutflows, v))
}

// ExpectedOutflowsLTE applies the LTE predicate on the "expected_outflows" field.
func ExpectedOutflowsLTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldExpectedOutflows, v))
}

// ProjectedBalanceEQ applies the EQ predicate on the "projected_balance" field.
func ProjectedBalanceEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldProjectedBalance, v))
}

// ProjectedBalanceNEQ applies the NEQ predicate on the "projected_balance" field.
func ProjectedBalanceNEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldProjectedBalance, v))
}

// ProjectedBalanceIn applies the In predicate on the "projected_balance" field.
func ProjectedBalanceIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldProjectedBalance, vs...))
}

// ProjectedBalanceNotIn applies the NotIn predicate on the "projected_balance" field.
func ProjectedBalanceNotIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldProjectedBalance, vs...))
}

// ProjectedBalanceGT applies the GT predicate on the "projected_balance" field.
func ProjectedBalanceGT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldProjectedBalance, v))
}

// ProjectedBalanceGTE applies the GTE predicate on the "projected_balance" field.
func ProjectedBalanceGTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldProjectedBalance, v))
}

// ProjectedBalanceLT applies the LT predicate on the "projected_balance" field.
func ProjectedBalanceLT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldProjectedBalance, v))
}

// ProjectedBalanceLTE applies the LTE predicate on the "projected_balance" field.
func ProjectedBalanceLTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldProjectedBalance, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotNull(FieldConfidence))
}

// BreakdownIsNil applies the IsNil predicate on the "breakdown" field.
func BreakdownIsNil() predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIsNull(FieldBreakdown))
}

// BreakdownNotNil applies the NotNil predicate on the "breakdown" field.
func BreakdownNotNil() predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotNull(FieldBreakdown))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CashForecast {
	return predicate.CashForecast(sql.FieldLTE(FieldCreatedAt, v))
}

// HasScenarios applies the HasEdge predicate on the "scenarios" edge.
func HasScenarios() predicate.CashForecast {
	return predicate.CashForecast(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScenariosTable, ScenariosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScenariosWith applies the HasEdge predicate on the "scenarios" edge with a given conditions (other predicates).
func HasScenariosWith(preds ...predicate.ForecastScenario) predicate.CashForecast {
	return predicate.CashForecast(func(s *sql.Selector) {
		step := newScenariosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CashForecast) predicate.CashForecast {
	return predicate.CashForecast(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CashForecast) predicate.CashForecast {
	return predicate.CashForecast(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CashForecast) predicate.CashForecast {
	return predicate.CashForecast(sql.NotPredicates(p))
}

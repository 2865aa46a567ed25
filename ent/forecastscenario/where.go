// Code generated by ent, DO NOT EDIT.

package forecastscenario

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldContainsFold(FieldID, id))
}

// ForecastID applies equality check predicate on the "forecast_id" field. It's identical to ForecastIDEQ.
func ForecastID(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldForecastID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldName, v))
}

// ProjectedBalance applies equality check predicate on the "projected_balance" field. It's identical to ProjectedBalanceEQ.
func ProjectedBalance(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldProjectedBalance, v))
}

// Delta applies equality check predicate on the "delta" field. It's identical to DeltaEQ.
func Delta(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldDelta, v))
}

// ForecastIDEQ applies the EQ predicate on the "forecast_id" field.
func ForecastIDEQ(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldForecastID, v))
}

// ForecastIDNEQ applies the NEQ predicate on the "forecast_id" field.
func ForecastIDNEQ(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNEQ(FieldForecastID, v))
}

// ForecastIDIn applies the In predicate on the "forecast_id" field.
func ForecastIDIn(vs ...string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldIn(FieldForecastID, vs...))
}

// ForecastIDNotIn applies the NotIn predicate on the "forecast_id" field.
func ForecastIDNotIn(vs ...string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNotIn(FieldForecastID, vs...))
}

// ForecastIDGT applies the GT predicate on the "forecast_id" field.
func ForecastIDGT(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGT(FieldForecastID, v))
}

// ForecastIDGTE applies the GTE predicate on the "forecast_id" field.
func ForecastIDGTE(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGTE(FieldForecastID, v))
}

// ForecastIDLT applies the LT predicate on the "forecast_id" field.
func ForecastIDLT(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLT(FieldForecastID, v))
}

// ForecastIDLTE applies the LTE predicate on the "forecast_id" field.
func ForecastIDLTE(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLTE(FieldForecastID, v))
}

// ForecastIDContains applies the Contains predicate on the "forecast_id" field.
func ForecastIDContains(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldContains(FieldForecastID, v))
}

// ForecastIDHasPrefix applies the HasPrefix predicate on the "forecast_id" field.
func ForecastIDHasPrefix(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldHasPrefix(FieldForecastID, v))
}

// ForecastIDHasSuffix applies the HasSuffix predicate on the "forecast_id" field.
func ForecastIDHasSuffix(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldHasSuffix(FieldForecastID, v))
}

// ForecastIDEqualFold applies the EqualFold predicate on the "forecast_id" field.
func ForecastIDEqualFold(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEqualFold(FieldForecastID, v))
}

// ForecastIDContainsFold applies the ContainsFold predicate on the "forecast_id" field.
func ForecastIDContainsFold(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldContainsFold(FieldForecastID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldContainsFold(FieldName, v))
}

// ProjectedBalanceEQ applies the EQ predicate on the "projected_balance" field.
func ProjectedBalanceEQ(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldProjectedBalance, v))
}

// ProjectedBalanceNEQ applies the NEQ predicate on the "projected_balance" field.
func ProjectedBalanceNEQ(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNEQ(FieldProjectedBalance, v))
}

// ProjectedBalanceIn applies the In predicate on the "projected_balance" field.
func ProjectedBalanceIn(vs ...float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldIn(FieldProjectedBalance, vs...))
}

// ProjectedBalanceNotIn applies the NotIn predicate on the "projected_balance" field.
func ProjectedBalanceNotIn(vs ...float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNotIn(FieldProjectedBalance, vs...))
}

// ProjectedBalanceGT applies the GT predicate on the "projected_balance" field.
func ProjectedBalanceGT(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGT(FieldProjectedBalance, v))
}

// ProjectedBalanceGTE applies the GTE predicate on the "projected_balance" field.
func ProjectedBalanceGTE(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGTE(FieldProjectedBalance, v))
}

// ProjectedBalanceLT applies the LT predicate on the "projected_balance" field.
func ProjectedBalanceLT(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLT(FieldProjectedBalance, v))
}

// ProjectedBalanceLTE applies the LTE predicate on the "projected_balance" field.
func ProjectedBalanceLTE(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLTE(FieldProjectedBalance, v))
}

// DeltaEQ applies the EQ predicate on the "delta" field.
func DeltaEQ(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldEQ(FieldDelta, v))
}

// DeltaNEQ applies the NEQ predicate on the "delta" field.
func DeltaNEQ(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNEQ(FieldDelta, v))
}

// DeltaIn applies the In predicate on the "delta" field.
func DeltaIn(vs ...float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldIn(FieldDelta, vs...))
}

// DeltaNotIn applies the NotIn predicate on the "delta" field.
func DeltaNotIn(vs ...float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldNotIn(FieldDelta, vs...))
}

// DeltaGT applies the GT predicate on the "delta" field.
func DeltaGT(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGT(FieldDelta, v))
}

// DeltaGTE applies the GTE predicate on the "delta" field.
func DeltaGTE(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldGTE(FieldDelta, v))
}

// DeltaLT applies the LT predicate on the "delta" field.
func DeltaLT(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLT(FieldDelta, v))
}

// DeltaLTE applies the LTE predicate on the "delta" field.
func DeltaLTE(v float64) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.FieldLTE(FieldDelta, v))
}

// HasForecast applies the HasEdge predicate on the "forecast" edge.
func HasForecast() predicate.ForecastScenario {
	return predicate.ForecastScenario(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ForecastTable, ForecastColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasForecastWith applies the HasEdge predicate on the "forecast" edge with a given conditions (other predicates).
func HasForecastWith(preds ...predicate.CashForecast) predicate.ForecastScenario {
	return predicate.ForecastScenario(func(s *sql.Selector) {
		step := newForecastStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ForecastScenario) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ForecastScenario) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ForecastScenario) predicate.ForecastScenario {
	return predicate.ForecastScenario(sql.NotPredicates(p))
}

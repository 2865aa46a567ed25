// Code generated by ent, DO NOT EDIT.

package supplierriskfactor

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldContainsFold(FieldID, id))
}

// RiskScoreID applies equality check predicate on the "risk_score_id" field. It's identical to RiskScoreIDEQ.
func RiskScoreID(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldRiskScoreID, v))
}

// FactorName applies equality check predicate on the "factor_name" field. It's identical to FactorNameEQ.
func FactorName(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldFactorName, v))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldWeight, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldValue, v))
}

// RiskScoreIDEQ applies the EQ predicate on the "risk_score_id" field.
func RiskScoreIDEQ(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldRiskScoreID, v))
}

// RiskScoreIDNEQ applies the NEQ predicate on the "risk_score_id" field.
func RiskScoreIDNEQ(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNEQ(FieldRiskScoreID, v))
}

// RiskScoreIDIn applies the In predicate on the "risk_score_id" field.
func RiskScoreIDIn(vs ...string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldIn(FieldRiskScoreID, vs...))
}

// RiskScoreIDNotIn applies the NotIn predicate on the "risk_score_id" field.
func RiskScoreIDNotIn(vs ...string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNotIn(FieldRiskScoreID, vs...))
}

// RiskScoreIDGT applies the GT predicate on the "risk_score_id" field.
func RiskScoreIDGT(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGT(FieldRiskScoreID, v))
}

// RiskScoreIDGTE applies the GTE predicate on the "risk_score_id" field.
func RiskScoreIDGTE(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGTE(FieldRiskScoreID, v))
}

// RiskScoreIDLT applies the LT predicate on the "risk_score_id" field.
func RiskScoreIDLT(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLT(FieldRiskScoreID, v))
}

// RiskScoreIDLTE applies the LTE predicate on the "risk_score_id" field.
func RiskScoreIDLTE(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLTE(FieldRiskScoreID, v))
}

// RiskScoreIDContains applies the Contains predicate on the "risk_score_id" field.
func RiskScoreIDContains(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldContains(FieldRiskScoreID, v))
}

// RiskScoreIDHasPrefix applies the HasPrefix predicate on the "risk_score_id" field.
func RiskScoreIDHasPrefix(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldHasPrefix(FieldRiskScoreID, v))
}

// RiskScoreIDHasSuffix applies the HasSuffix predicate on the "risk_score_id" field.
func RiskScoreIDHasSuffix(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldHasSuffix(FieldRiskScoreID, v))
}

// RiskScoreIDEqualFold applies the EqualFold predicate on the "risk_score_id" field.
func RiskScoreIDEqualFold(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEqualFold(FieldRiskScoreID, v))
}

// RiskScoreIDContainsFold applies the ContainsFold predicate on the "risk_score_id" field.
func RiskScoreIDContainsFold(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldContainsFold(FieldRiskScoreID, v))
}

// FactorNameEQ applies the EQ predicate on the "factor_name" field.
func FactorNameEQ(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldFactorName, v))
}

// FactorNameNEQ applies the NEQ predicate on the "factor_name" field.
func FactorNameNEQ(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNEQ(FieldFactorName, v))
}

// FactorNameIn applies the In predicate on the "factor_name" field.
func FactorNameIn(vs ...string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldIn(FieldFactorName, vs...))
}

// FactorNameNotIn applies the NotIn predicate on the "factor_name" field.
func FactorNameNotIn(vs ...string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNotIn(FieldFactorName, vs...))
}

// FactorNameGT applies the GT predicate on the "factor_name" field.
func FactorNameGT(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGT(FieldFactorName, v))
}

// FactorNameGTE applies the GTE predicate on the "factor_name" field.
func FactorNameGTE(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGTE(FieldFactorName, v))
}

// FactorNameLT applies the LT predicate on the "factor_name" field.
func FactorNameLT(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLT(FieldFactorName, v))
}

// FactorNameLTE applies the LTE predicate on the "factor_name" field.
func FactorNameLTE(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLTE(FieldFactorName, v))
}

// FactorNameContains applies the Contains predicate on the "factor_name" field.
func FactorNameContains(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldContains(FieldFactorName, v))
}

// FactorNameHasPrefix applies the HasPrefix predicate on the "factor_name" field.
func FactorNameHasPrefix(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldHasPrefix(FieldFactorName, v))
}

// FactorNameHasSuffix applies the HasSuffix predicate on the "factor_name" field.
func FactorNameHasSuffix(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldHasSuffix(FieldFactorName, v))
}

// FactorNameEqualFold applies the EqualFold predicate on the "factor_name" field.
func FactorNameEqualFold(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEqualFold(FieldFactorName, v))
}

// FactorNameContainsFold applies the ContainsFold predicate on the "factor_name" field.
func FactorNameContainsFold(v string) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldContainsFold(FieldFactorName, v))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLTE(FieldWeight, v))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldLTE(FieldValue, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.FieldNotNull(FieldEvidence))
}

// HasRiskScore applies the HasEdge predicate on the "risk_score" edge.
func HasRiskScore() predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RiskScoreTable, RiskScoreColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRiskScoreWith applies the HasEdge predicate on the "risk_score" edge with a given conditions (other predicates).
func HasRiskScoreWith(preds ...predicate.SupplierRiskScore) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(func(s *sql.Selector) {
		step := newRiskScoreStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupplierRiskFactor) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupplierRiskFactor) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupplierRiskFactor) predicate.SupplierRiskFactor {
	return predicate.SupplierRiskFactor(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package supplierriskscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldContainsFold(FieldID, id))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldSupplierID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldScore, v))
}

// CalculatedAt applies equality check predicate on the "calculated_at" field. It's identical to CalculatedAtEQ.
func CalculatedAt(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDGT applies the GT predicate on the "supplier_id" field.
func SupplierIDGT(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGT(FieldSupplierID, v))
}

// SupplierIDGTE applies the GTE predicate on the "supplier_id" field.
func SupplierIDGTE(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGTE(FieldSupplierID, v))
}

// SupplierIDLT applies the LT predicate on the "supplier_id" field.
func SupplierIDLT(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLT(FieldSupplierID, v))
}

// SupplierIDLTE applies the LTE predicate on the "supplier_id" field.
func SupplierIDLTE(v int64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLTE(FieldSupplierID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLTE(FieldScore, v))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v RiskTier) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v RiskTier) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...RiskTier) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...RiskTier) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNotIn(FieldRiskTier, vs...))
}

// CalculatedAtEQ applies the EQ predicate on the "calculated_at" field.
func CalculatedAtEQ(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// CalculatedAtNEQ applies the NEQ predicate on the "calculated_at" field.
func CalculatedAtNEQ(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNEQ(FieldCalculatedAt, v))
}

// CalculatedAtIn applies the In predicate on the "calculated_at" field.
func CalculatedAtIn(vs ...time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldIn(FieldCalculatedAt, vs...))
}

// CalculatedAtNotIn applies the NotIn predicate on the "calculated_at" field.
func CalculatedAtNotIn(vs ...time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNotIn(FieldCalculatedAt, vs...))
}

// CalculatedAtGT applies the GT predicate on the "calculated_at" field.
func CalculatedAtGT(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGT(FieldCalculatedAt, v))
}

// CalculatedAtGTE applies the GTE predicate on the "calculated_at" field.
func CalculatedAtGTE(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGTE(FieldCalculatedAt, v))
}

// CalculatedAtLT applies the LT predicate on the "calculated_at" field.
func CalculatedAtLT(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLT(FieldCalculatedAt, v))
}

// CalculatedAtLTE applies the LTE predicate on the "calculated_at" field.
func CalculatedAtLTE(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLTE(FieldCalculatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFactors applies the HasEdge predicate on the "factors" edge.
func HasFactors() predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FactorsTable, FactorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFactorsWith applies the HasEdge predicate on the "factors" edge with a given conditions (other predicates).
func HasFactorsWith(preds ...predicate.SupplierRiskFactor) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(func(s *sql.Selector) {
		step := newFactorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupplierRiskScore) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupplierRiskScore) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupplierRiskScore) predicate.SupplierRiskScore {
	return predicate.SupplierRiskScore(sql.NotPredicates(p))
}

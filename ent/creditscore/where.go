// Code generated by ent, DO NOT EDIT.

package creditscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldContainsFold(FieldID, id))
}

// CustomerID applies equality check predicate on the "customer_id" field. It's identical to CustomerIDEQ.
func CustomerID(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCustomerID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldScore, v))
}

// CreditLimit applies equality check predicate on the "credit_limit" field. It's identical to CreditLimitEQ.
func CreditLimit(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCreditLimit, v))
}

// OutstandingBalance applies equality check predicate on the "outstanding_balance" field. It's identical to OutstandingBalanceEQ.
func OutstandingBalance(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldOutstandingBalance, v))
}

// HoldActive applies equality check predicate on the "hold_active" field. It's identical to HoldActiveEQ.
func HoldActive(v bool) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldHoldActive, v))
}

// HoldReason applies equality check predicate on the "hold_reason" field. It's identical to HoldReasonEQ.
func HoldReason(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldHoldReason, v))
}

// CalculatedAt applies equality check predicate on the "calculated_at" field. It's identical to CalculatedAtEQ.
func CalculatedAt(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// CustomerIDEQ applies the EQ predicate on the "customer_id" field.
func CustomerIDEQ(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCustomerID, v))
}

// CustomerIDNEQ applies the NEQ predicate on the "customer_id" field.
func CustomerIDNEQ(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldCustomerID, v))
}

// CustomerIDIn applies the In predicate on the "customer_id" field.
func CustomerIDIn(vs ...int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldCustomerID, vs...))
}

// CustomerIDNotIn applies the NotIn predicate on the "customer_id" field.
func CustomerIDNotIn(vs ...int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldCustomerID, vs...))
}

// CustomerIDGT applies the GT predicate on the "customer_id" field.
func CustomerIDGT(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldCustomerID, v))
}

// CustomerIDGTE applies the GTE predicate on the "customer_id" field.
func CustomerIDGTE(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldCustomerID, v))
}

// CustomerIDLT applies the LT predicate on the "customer_id" field.
func CustomerIDLT(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldCustomerID, v))
}

// CustomerIDLTE applies the LTE predicate on the "customer_id" field.
func CustomerIDLTE(v int64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldCustomerID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldScore, v))
}

// RiskTierEQ applies the EQ predicate on the "risk_tier" field.
func RiskTierEQ(v RiskTier) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldRiskTier, v))
}

// RiskTierNEQ applies the NEQ predicate on the "risk_tier" field.
func RiskTierNEQ(v RiskTier) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldRiskTier, v))
}

// RiskTierIn applies the In predicate on the "risk_tier" field.
func RiskTierIn(vs ...RiskTier) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldRiskTier, vs...))
}

// RiskTierNotIn applies the NotIn predicate on the "risk_tier" field.
func RiskTierNotIn(vs ...RiskTier) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldRiskTier, vs...))
}

// CreditLimitEQ applies the EQ predicate on the "credit_limit" field.
func CreditLimitEQ(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCreditLimit, v))
}

// CreditLimitNEQ applies the NEQ predicate on the "credit_limit" field.
func CreditLimitNEQ(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldCreditLimit, v))
}

// CreditLimitIn applies the In predicate on the "credit_limit" field.
func CreditLimitIn(vs ...float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldCreditLimit, vs...))
}

// CreditLimitNotIn applies the NotIn predicate on the "credit_limit" field.
func CreditLimitNotIn(vs ...float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldCreditLimit, vs...))
}

// CreditLimitGT applies the GT predicate on the "credit_limit" field.
func CreditLimitGT(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldCreditLimit, v))
}

// CreditLimitGTE applies the GTE predicate on the "credit_limit" field.
func CreditLimitGTE(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldCreditLimit, v))
}

// CreditLimitLT applies the LT predicate on the "credit_limit" field.
func CreditLimitLT(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldCreditLimit, v))
}

// CreditLimitLTE applies the LTE predicate on the "credit_limit" field.
func CreditLimitLTE(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldCreditLimit, v))
}

// OutstandingBalanceEQ applies the EQ predicate on the "outstanding_balance" field.
func OutstandingBalanceEQ(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldOutstandingBalance, v))
}

// OutstandingBalanceNEQ applies the NEQ predicate on the "outstanding_balance" field.
func OutstandingBalanceNEQ(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldOutstandingBalance, v))
}

// OutstandingBalanceIn applies the In predicate on the "outstanding_balance" field.
func OutstandingBalanceIn(vs ...float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldOutstandingBalance, vs...))
}

// OutstandingBalanceNotIn applies the NotIn predicate on the "outstanding_balance" field.
func OutstandingBalanceNotIn(vs ...float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldOutstandingBalance, vs...))
}

// OutstandingBalanceGT applies the GT predicate on the "outstanding_balance" field.
func OutstandingBalanceGT(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldOutstandingBalance, v))
}

// OutstandingBalanceGTE applies the GTE predicate on the "outstanding_balance" field.
func OutstandingBalanceGTE(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldOutstandingBalance, v))
}

// OutstandingBalanceLT applies the LT predicate on the "outstanding_balance" field.
func OutstandingBalanceLT(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldOutstandingBalance, v))
}

// OutstandingBalanceLTE applies the LTE predicate on the "outstanding_balance" field.
func OutstandingBalanceLTE(v float64) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldOutstandingBalance, v))
}

// HoldActiveEQ applies the EQ predicate on the "hold_active" field.
func HoldActiveEQ(v bool) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldHoldActive, v))
}

// HoldActiveNEQ applies the NEQ predicate on the "hold_active" field.
func HoldActiveNEQ(v bool) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldHoldActive, v))
}

// HoldReasonEQ applies the EQ predicate on the "hold_reason" field.
func HoldReasonEQ(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldHoldReason, v))
}

// HoldReasonNEQ applies the NEQ predicate on the "hold_reason" field.
func HoldReasonNEQ(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldHoldReason, v))
}

// HoldReasonIn applies the In predicate on the "hold_reason" field.
func HoldReasonIn(vs ...string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldHoldReason, vs...))
}

// HoldReasonNotIn applies the NotIn predicate on the "hold_reason" field.
func HoldReasonNotIn(vs ...string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldHoldReason, vs...))
}

// HoldReasonGT applies the GT predicate on the "hold_reason" field.
func HoldReasonGT(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldHoldReason, v))
}

// HoldReasonGTE applies the GTE predicate on the "hold_reason" field.
func HoldReasonGTE(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldHoldReason, v))
}

// HoldReasonLT applies the LT predicate on the "hold_reason" field.
func HoldReasonLT(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldHoldReason, v))
}

// HoldReasonLTE applies the LTE predicate on the "hold_reason" field.
func HoldReasonLTE(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldHoldReason, v))
}

// HoldReasonContains applies the Contains predicate on the "hold_reason" field.
func HoldReasonContains(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldContains(FieldHoldReason, v))
}

// HoldReasonHasPrefix applies the HasPrefix predicate on the "hold_reason" field.
func HoldReasonHasPrefix(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldHasPrefix(FieldHoldReason, v))
}

// HoldReasonHasSuffix applies the HasSuffix predicate on the "hold_reason" field.
func HoldReasonHasSuffix(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldHasSuffix(FieldHoldReason, v))
}

// HoldReasonIsNil applies the IsNil predicate on the "hold_reason" field.
func HoldReasonIsNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIsNull(FieldHoldReason))
}

// HoldReasonNotNil applies the NotNil predicate on the "hold_reason" field.
func HoldReasonNotNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotNull(FieldHoldReason))
}

// HoldReasonEqualFold applies the EqualFold predicate on the "hold_reason" field.
func HoldReasonEqualFold(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEqualFold(FieldHoldReason, v))
}

// HoldReasonContainsFold applies the ContainsFold predicate on the "hold_reason" field.
func HoldReasonContainsFold(v string) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldContainsFold(FieldHoldReason, v))
}

// FactorsIsNil applies the IsNil predicate on the "factors" field.
func FactorsIsNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIsNull(FieldFactors))
}

// FactorsNotNil applies the NotNil predicate on the "factors" field.
func FactorsNotNil() predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotNull(FieldFactors))
}

// CalculatedAtEQ applies the EQ predicate on the "calculated_at" field.
func CalculatedAtEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// CalculatedAtNEQ applies the NEQ predicate on the "calculated_at" field.
func CalculatedAtNEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldCalculatedAt, v))
}

// CalculatedAtIn applies the In predicate on the "calculated_at" field.
func CalculatedAtIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldCalculatedAt, vs...))
}

// CalculatedAtNotIn applies the NotIn predicate on the "calculated_at" field.
func CalculatedAtNotIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldCalculatedAt, vs...))
}

// CalculatedAtGT applies the GT predicate on the "calculated_at" field.
func CalculatedAtGT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldCalculatedAt, v))
}

// CalculatedAtGTE applies the GTE predicate on the "calculated_at" field.
func CalculatedAtGTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldCalculatedAt, v))
}

// CalculatedAtLT applies the LT predicate on the "calculated_at" field.
func CalculatedAtLT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldCalculatedAt, v))
}

// CalculatedAtLTE applies the LTE predicate on the "calculated_at" field.
func CalculatedAtLTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldCalculatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditScore {
	return predicate.CreditScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditScore) predicate.CreditScore {
	return predicate.CreditScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditScore) predicate.CreditScore {
	return predicate.CreditScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditScore) predicate.CreditScore {
	return predicate.CreditScore(sql.NotPredicates(p))
}

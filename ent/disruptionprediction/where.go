// Code generated by ent, DO NOT EDIT.

package disruptionprediction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldContainsFold(FieldID, id))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldSupplierID, v))
}

// PurchaseOrderID applies equality check predicate on the "purchase_order_id" field. It's identical to PurchaseOrderIDEQ.
func PurchaseOrderID(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldPurchaseOrderID, v))
}

// Probability applies equality check predicate on the "probability" field. It's identical to ProbabilityEQ.
func Probability(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldProbability, v))
}

// PredictedDate applies equality check predicate on the "predicted_date" field. It's identical to PredictedDateEQ.
func PredictedDate(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldPredictedDate, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldRationale, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDGT applies the GT predicate on the "supplier_id" field.
func SupplierIDGT(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldSupplierID, v))
}

// SupplierIDGTE applies the GTE predicate on the "supplier_id" field.
func SupplierIDGTE(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldSupplierID, v))
}

// SupplierIDLT applies the LT predicate on the "supplier_id" field.
func SupplierIDLT(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldSupplierID, v))
}

// SupplierIDLTE applies the LTE predicate on the "supplier_id" field.
func SupplierIDLTE(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldSupplierID, v))
}

// PurchaseOrderIDEQ applies the EQ predicate on the "purchase_order_id" field.
func PurchaseOrderIDEQ(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDNEQ applies the NEQ predicate on the "purchase_order_id" field.
func PurchaseOrderIDNEQ(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDIn applies the In predicate on the "purchase_order_id" field.
func PurchaseOrderIDIn(vs ...int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldPurchaseOrderID, vs...))
}

// PurchaseOrderIDNotIn applies the NotIn predicate on the "purchase_order_id" field.
func PurchaseOrderIDNotIn(vs ...int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldPurchaseOrderID, vs...))
}

// PurchaseOrderIDGT applies the GT predicate on the "purchase_order_id" field.
func PurchaseOrderIDGT(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDGTE applies the GTE predicate on the "purchase_order_id" field.
func PurchaseOrderIDGTE(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDLT applies the LT predicate on the "purchase_order_id" field.
func PurchaseOrderIDLT(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDLTE applies the LTE predicate on the "purchase_order_id" field.
func PurchaseOrderIDLTE(v int64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldPurchaseOrderID, v))
}

// PurchaseOrderIDIsNil applies the IsNil predicate on the "purchase_order_id" field.
func PurchaseOrderIDIsNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIsNull(FieldPurchaseOrderID))
}

// PurchaseOrderIDNotNil applies the NotNil predicate on the "purchase_order_id" field.
func PurchaseOrderIDNotNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotNull(FieldPurchaseOrderID))
}

// DisruptionTypeEQ applies the EQ predicate on the "disruption_type" field.
func DisruptionTypeEQ(v DisruptionType) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldDisruptionType, v))
}

// DisruptionTypeNEQ applies the NEQ predicate on the "disruption_type" field.
func DisruptionTypeNEQ(v DisruptionType) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldDisruptionType, v))
}

// DisruptionTypeIn applies the In predicate on the "disruption_type" field.
func DisruptionTypeIn(vs ...DisruptionType) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldDisruptionType, vs...))
}

// DisruptionTypeNotIn applies the NotIn predicate on the "disruption_type" field.
func DisruptionTypeNotIn(vs ...DisruptionType) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldDisruptionType, vs...))
}

// ProbabilityEQ applies the EQ predicate on the "probability" field.
func ProbabilityEQ(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldProbability, v))
}

// ProbabilityNEQ applies the NEQ predicate on the "probability" field.
func ProbabilityNEQ(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldProbability, v))
}

// ProbabilityIn applies the In predicate on the "probability" field.
func ProbabilityIn(vs ...float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldProbability, vs...))
}

// ProbabilityNotIn applies the NotIn predicate on the "probability" field.
func ProbabilityNotIn(vs ...float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldProbability, vs...))
}

// ProbabilityGT applies the GT predicate on the "probability" field.
func ProbabilityGT(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldProbability, v))
}

// ProbabilityGTE applies the GTE predicate on the "probability" field.
func ProbabilityGTE(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldProbability, v))
}

// ProbabilityLT applies the LT predicate on the "probability" field.
func ProbabilityLT(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldProbability, v))
}

// ProbabilityLTE applies the LTE predicate on the "probability" field.
func ProbabilityLTE(v float64) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldProbability, v))
}

// PredictedDateEQ applies the EQ predicate on the "predicted_date" field.
func PredictedDateEQ(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldPredictedDate, v))
}

// PredictedDateNEQ applies the NEQ predicate on the "predicted_date" field.
func PredictedDateNEQ(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldPredictedDate, v))
}

// PredictedDateIn applies the In predicate on the "predicted_date" field.
func PredictedDateIn(vs ...time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldPredictedDate, vs...))
}

// PredictedDateNotIn applies the NotIn predicate on the "predicted_date" field.
func PredictedDateNotIn(vs ...time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldPredictedDate, vs...))
}

// PredictedDateGT applies the GT predicate on the "predicted_date" field.
func PredictedDateGT(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldPredictedDate, v))
}

// PredictedDateGTE applies the GTE predicate on the "predicted_date" field.
func PredictedDateGTE(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldPredictedDate, v))
}

// PredictedDateLT applies the LT predicate on the "predicted_date" field.
func PredictedDateLT(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldPredictedDate, v))
}

// PredictedDateLTE applies the LTE predicate on the "predicted_date" field.
func PredictedDateLTE(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldPredictedDate, v))
}

// PredictedDateIsNil applies the IsNil predicate on the "predicted_date" field.
func PredictedDateIsNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIsNull(FieldPredictedDate))
}

// PredictedDateNotNil applies the NotNil predicate on the "predicted_date" field.
func PredictedDateNotNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotNull(FieldPredictedDate))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldContainsFold(FieldRationale, v))
}

// SuggestedActionsIsNil applies the IsNil predicate on the "suggested_actions" field.
func SuggestedActionsIsNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIsNull(FieldSuggestedActions))
}

// SuggestedActionsNotNil applies the NotNil predicate on the "suggested_actions" field.
func SuggestedActionsNotNil() predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotNull(FieldSuggestedActions))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DisruptionPrediction) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DisruptionPrediction) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DisruptionPrediction) predicate.DisruptionPrediction {
	return predicate.DisruptionPrediction(sql.NotPredicates(p))
}

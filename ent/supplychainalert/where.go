// Code generated by ent, DO NOT EDIT.

package supplychainalert

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldTitle, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldBody, v))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldSupplierID, v))
}

// PredictionID applies equality check predicate on the "prediction_id" field. It's identical to PredictionIDEQ.
func PredictionID(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldPredictionID, v))
}

// Acknowledged applies equality check predicate on the "acknowledged" field. It's identical to AcknowledgedEQ.
func Acknowledged(v bool) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedBy applies equality check predicate on the "acknowledged_by" field. It's identical to AcknowledgedByEQ.
func AcknowledgedBy(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldAcknowledgedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// AcknowledgedAt applies equality check predicate on the "acknowledged_at" field. It's identical to AcknowledgedAtEQ.
func AcknowledgedAt(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldSeverity, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContainsFold(FieldTitle, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasSuffix(FieldBody, v))
}

// BodyIsNil applies the IsNil predicate on the "body" field.
func BodyIsNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIsNull(FieldBody))
}

// BodyNotNil applies the NotNil predicate on the "body" field.
func BodyNotNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotNull(FieldBody))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContainsFold(FieldBody, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDGT applies the GT predicate on the "supplier_id" field.
func SupplierIDGT(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldSupplierID, v))
}

// SupplierIDGTE applies the GTE predicate on the "supplier_id" field.
func SupplierIDGTE(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldSupplierID, v))
}

// SupplierIDLT applies the LT predicate on the "supplier_id" field.
func SupplierIDLT(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldSupplierID, v))
}

// SupplierIDLTE applies the LTE predicate on the "supplier_id" field.
func SupplierIDLTE(v int64) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldSupplierID, v))
}

// SupplierIDIsNil applies the IsNil predicate on the "supplier_id" field.
func SupplierIDIsNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIsNull(FieldSupplierID))
}

// SupplierIDNotNil applies the NotNil predicate on the "supplier_id" field.
func SupplierIDNotNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotNull(FieldSupplierID))
}

// PredictionIDEQ applies the EQ predicate on the "prediction_id" field.
func PredictionIDEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldPredictionID, v))
}

// PredictionIDNEQ applies the NEQ predicate on the "prediction_id" field.
func PredictionIDNEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldPredictionID, v))
}

// PredictionIDIn applies the In predicate on the "prediction_id" field.
func PredictionIDIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldPredictionID, vs...))
}

// PredictionIDNotIn applies the NotIn predicate on the "prediction_id" field.
func PredictionIDNotIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldPredictionID, vs...))
}

// PredictionIDGT applies the GT predicate on the "prediction_id" field.
func PredictionIDGT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldPredictionID, v))
}

// PredictionIDGTE applies the GTE predicate on the "prediction_id" field.
func PredictionIDGTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldPredictionID, v))
}

// PredictionIDLT applies the LT predicate on the "prediction_id" field.
func PredictionIDLT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldPredictionID, v))
}

// PredictionIDLTE applies the LTE predicate on the "prediction_id" field.
func PredictionIDLTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldPredictionID, v))
}

// PredictionIDContains applies the Contains predicate on the "prediction_id" field.
func PredictionIDContains(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContains(FieldPredictionID, v))
}

// PredictionIDHasPrefix applies the HasPrefix predicate on the "prediction_id" field.
func PredictionIDHasPrefix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasPrefix(FieldPredictionID, v))
}

// PredictionIDHasSuffix applies the HasSuffix predicate on the "prediction_id" field.
func PredictionIDHasSuffix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasSuffix(FieldPredictionID, v))
}

// PredictionIDIsNil applies the IsNil predicate on the "prediction_id" field.
func PredictionIDIsNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIsNull(FieldPredictionID))
}

// PredictionIDNotNil applies the NotNil predicate on the "prediction_id" field.
func PredictionIDNotNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotNull(FieldPredictionID))
}

// PredictionIDEqualFold applies the EqualFold predicate on the "prediction_id" field.
func PredictionIDEqualFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEqualFold(FieldPredictionID, v))
}

// PredictionIDContainsFold applies the ContainsFold predicate on the "prediction_id" field.
func PredictionIDContainsFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContainsFold(FieldPredictionID, v))
}

// AcknowledgedEQ applies the EQ predicate on the "acknowledged" field.
func AcknowledgedEQ(v bool) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldAcknowledged, v))
}

// AcknowledgedNEQ applies the NEQ predicate on the "acknowledged" field.
func AcknowledgedNEQ(v bool) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldAcknowledged, v))
}

// AcknowledgedByEQ applies the EQ predicate on the "acknowledged_by" field.
func AcknowledgedByEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldAcknowledgedBy, v))
}

// AcknowledgedByNEQ applies the NEQ predicate on the "acknowledged_by" field.
func AcknowledgedByNEQ(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldAcknowledgedBy, v))
}

// AcknowledgedByIn applies the In predicate on the "acknowledged_by" field.
func AcknowledgedByIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldAcknowledgedBy, vs...))
}

// AcknowledgedByNotIn applies the NotIn predicate on the "acknowledged_by" field.
func AcknowledgedByNotIn(vs ...string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldAcknowledgedBy, vs...))
}

// AcknowledgedByGT applies the GT predicate on the "acknowledged_by" field.
func AcknowledgedByGT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldAcknowledgedBy, v))
}

// AcknowledgedByGTE applies the GTE predicate on the "acknowledged_by" field.
func AcknowledgedByGTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldAcknowledgedBy, v))
}

// AcknowledgedByLT applies the LT predicate on the "acknowledged_by" field.
func AcknowledgedByLT(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldAcknowledgedBy, v))
}

// AcknowledgedByLTE applies the LTE predicate on the "acknowledged_by" field.
func AcknowledgedByLTE(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldAcknowledgedBy, v))
}

// AcknowledgedByContains applies the Contains predicate on the "acknowledged_by" field.
func AcknowledgedByContains(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContains(FieldAcknowledgedBy, v))
}

// AcknowledgedByHasPrefix applies the HasPrefix predicate on the "acknowledged_by" field.
func AcknowledgedByHasPrefix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasPrefix(FieldAcknowledgedBy, v))
}

// AcknowledgedByHasSuffix applies the HasSuffix predicate on the "acknowledged_by" field.
func AcknowledgedByHasSuffix(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldHasSuffix(FieldAcknowledgedBy, v))
}

// AcknowledgedByIsNil applies the IsNil predicate on the "acknowledged_by" field.
func AcknowledgedByIsNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIsNull(FieldAcknowledgedBy))
}

// AcknowledgedByNotNil applies the NotNil predicate on the "acknowledged_by" field.
func AcknowledgedByNotNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotNull(FieldAcknowledgedBy))
}

// AcknowledgedByEqualFold applies the EqualFold predicate on the "acknowledged_by" field.
func AcknowledgedByEqualFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEqualFold(FieldAcknowledgedBy, v))
}

// AcknowledgedByContainsFold applies the ContainsFold predicate on the "acknowledged_by" field.
func AcknowledgedByContainsFold(v string) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldContainsFold(FieldAcknowledgedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldCreatedAt, v))
}

// AcknowledgedAtEQ applies the EQ predicate on the "acknowledged_at" field.
func AcknowledgedAtEQ(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtNEQ applies the NEQ predicate on the "acknowledged_at" field.
func AcknowledgedAtNEQ(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNEQ(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIn applies the In predicate on the "acknowledged_at" field.
func AcknowledgedAtIn(vs ...time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtNotIn applies the NotIn predicate on the "acknowledged_at" field.
func AcknowledgedAtNotIn(vs ...time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotIn(FieldAcknowledgedAt, vs...))
}

// AcknowledgedAtGT applies the GT predicate on the "acknowledged_at" field.
func AcknowledgedAtGT(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtGTE applies the GTE predicate on the "acknowledged_at" field.
func AcknowledgedAtGTE(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldGTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLT applies the LT predicate on the "acknowledged_at" field.
func AcknowledgedAtLT(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLT(FieldAcknowledgedAt, v))
}

// AcknowledgedAtLTE applies the LTE predicate on the "acknowledged_at" field.
func AcknowledgedAtLTE(v time.Time) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldLTE(FieldAcknowledgedAt, v))
}

// AcknowledgedAtIsNil applies the IsNil predicate on the "acknowledged_at" field.
func AcknowledgedAtIsNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldIsNull(FieldAcknowledgedAt))
}

// AcknowledgedAtNotNil applies the NotNil predicate on the "acknowledged_at" field.
func AcknowledgedAtNotNil() predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.FieldNotNull(FieldAcknowledgedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SupplyChainAlert) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SupplyChainAlert) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SupplyChainAlert) predicate.SupplyChainAlert {
	return predicate.SupplyChainAlert(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package automationrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldContainsFold(FieldID, id))
}

// AutomationType applies equality check predicate on the "automation_type" field. It's identical to AutomationTypeEQ.
func AutomationType(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldAutomationType, v))
}

// ActionName applies equality check predicate on the "action_name" field. It's identical to ActionNameEQ.
func ActionName(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldActionName, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldEnabled, v))
}

// ConfidenceThreshold applies equality check predicate on the "confidence_threshold" field. It's identical to ConfidenceThresholdEQ.
func ConfidenceThreshold(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldConfidenceThreshold, v))
}

// AutoApproveThreshold applies equality check predicate on the "auto_approve_threshold" field. It's identical to AutoApproveThresholdEQ.
func AutoApproveThreshold(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldAutoApproveThreshold, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// AutomationTypeEQ applies the EQ predicate on the "automation_type" field.
func AutomationTypeEQ(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldAutomationType, v))
}

// AutomationTypeNEQ applies the NEQ predicate on the "automation_type" field.
func AutomationTypeNEQ(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldAutomationType, v))
}

// AutomationTypeIn applies the In predicate on the "automation_type" field.
func AutomationTypeIn(vs ...string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldAutomationType, vs...))
}

// AutomationTypeNotIn applies the NotIn predicate on the "automation_type" field.
func AutomationTypeNotIn(vs ...string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldAutomationType, vs...))
}

// AutomationTypeGT applies the GT predicate on the "automation_type" field.
func AutomationTypeGT(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldAutomationType, v))
}

// AutomationTypeGTE applies the GTE predicate on the "automation_type" field.
func AutomationTypeGTE(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldAutomationType, v))
}

// AutomationTypeLT applies the LT predicate on the "automation_type" field.
func AutomationTypeLT(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldAutomationType, v))
}

// AutomationTypeLTE applies the LTE predicate on the "automation_type" field.
func AutomationTypeLTE(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldAutomationType, v))
}

// AutomationTypeContains applies the Contains predicate on the "automation_type" field.
func AutomationTypeContains(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldContains(FieldAutomationType, v))
}

// AutomationTypeHasPrefix applies the HasPrefix predicate on the "automation_type" field.
func AutomationTypeHasPrefix(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldHasPrefix(FieldAutomationType, v))
}

// AutomationTypeHasSuffix applies the HasSuffix predicate on the "automation_type" field.
func AutomationTypeHasSuffix(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldHasSuffix(FieldAutomationType, v))
}

// AutomationTypeEqualFold applies the EqualFold predicate on the "automation_type" field.
func AutomationTypeEqualFold(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEqualFold(FieldAutomationType, v))
}

// AutomationTypeContainsFold applies the ContainsFold predicate on the "automation_type" field.
func AutomationTypeContainsFold(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldContainsFold(FieldAutomationType, v))
}

// ActionNameEQ applies the EQ predicate on the "action_name" field.
func ActionNameEQ(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldActionName, v))
}

// ActionNameNEQ applies the NEQ predicate on the "action_name" field.
func ActionNameNEQ(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldActionName, v))
}

// ActionNameIn applies the In predicate on the "action_name" field.
func ActionNameIn(vs ...string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldActionName, vs...))
}

// ActionNameNotIn applies the NotIn predicate on the "action_name" field.
func ActionNameNotIn(vs ...string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldActionName, vs...))
}

// ActionNameGT applies the GT predicate on the "action_name" field.
func ActionNameGT(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldActionName, v))
}

// ActionNameGTE applies the GTE predicate on the "action_name" field.
func ActionNameGTE(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldActionName, v))
}

// ActionNameLT applies the LT predicate on the "action_name" field.
func ActionNameLT(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldActionName, v))
}

// ActionNameLTE applies the LTE predicate on the "action_name" field.
func ActionNameLTE(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldActionName, v))
}

// ActionNameContains applies the Contains predicate on the "action_name" field.
func ActionNameContains(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldContains(FieldActionName, v))
}

// ActionNameHasPrefix applies the HasPrefix predicate on the "action_name" field.
func ActionNameHasPrefix(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldHasPrefix(FieldActionName, v))
}

// ActionNameHasSuffix applies the HasSuffix predicate on the "action_name" field.
func ActionNameHasSuffix(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldHasSuffix(FieldActionName, v))
}

// ActionNameEqualFold applies the EqualFold predicate on the "action_name" field.
func ActionNameEqualFold(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEqualFold(FieldActionName, v))
}

// ActionNameContainsFold applies the ContainsFold predicate on the "action_name" field.
func ActionNameContainsFold(v string) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldContainsFold(FieldActionName, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldEnabled, v))
}

// ConfidenceThresholdEQ applies the EQ predicate on the "confidence_threshold" field.
func ConfidenceThresholdEQ(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldConfidenceThreshold, v))
}

// ConfidenceThresholdNEQ applies the NEQ predicate on the "confidence_threshold" field.
func ConfidenceThresholdNEQ(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldConfidenceThreshold, v))
}

// ConfidenceThresholdIn applies the In predicate on the "confidence_threshold" field.
func ConfidenceThresholdIn(vs ...float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldConfidenceThreshold, vs...))
}

// ConfidenceThresholdNotIn applies the NotIn predicate on the "confidence_threshold" field.
func ConfidenceThresholdNotIn(vs ...float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldConfidenceThreshold, vs...))
}

// ConfidenceThresholdGT applies the GT predicate on the "confidence_threshold" field.
func ConfidenceThresholdGT(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldConfidenceThreshold, v))
}

// ConfidenceThresholdGTE applies the GTE predicate on the "confidence_threshold" field.
func ConfidenceThresholdGTE(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldConfidenceThreshold, v))
}

// ConfidenceThresholdLT applies the LT predicate on the "confidence_threshold" field.
func ConfidenceThresholdLT(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldConfidenceThreshold, v))
}

// ConfidenceThresholdLTE applies the LTE predicate on the "confidence_threshold" field.
func ConfidenceThresholdLTE(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldConfidenceThreshold, v))
}

// AutoApproveThresholdEQ applies the EQ predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdEQ(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdNEQ applies the NEQ predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdNEQ(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdIn applies the In predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdIn(vs ...float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldAutoApproveThreshold, vs...))
}

// AutoApproveThresholdNotIn applies the NotIn predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdNotIn(vs ...float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldAutoApproveThreshold, vs...))
}

// AutoApproveThresholdGT applies the GT predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdGT(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdGTE applies the GTE predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdGTE(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdLT applies the LT predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdLT(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldAutoApproveThreshold, v))
}

// AutoApproveThresholdLTE applies the LTE predicate on the "auto_approve_threshold" field.
func AutoApproveThresholdLTE(v float64) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldAutoApproveThreshold, v))
}

// ConfigIsNil applies the IsNil predicate on the "config" field.
func ConfigIsNil() predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIsNull(FieldConfig))
}

// ConfigNotNil applies the NotNil predicate on the "config" field.
func ConfigNotNil() predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotNull(FieldConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AutomationRule {
	return predicate.AutomationRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AutomationRule) predicate.AutomationRule {
	return predicate.AutomationRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AutomationRule) predicate.AutomationRule {
	return predicate.AutomationRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AutomationRule) predicate.AutomationRule {
	return predicate.AutomationRule(sql.NotPredicates(p))
}

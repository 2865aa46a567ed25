// Code generated by ent, DO NOT EDIT.

package reportjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContainsFold(FieldID, id))
}

// Query applies equality check predicate on the "query" field. It's identical to QueryEQ.
func Query(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldQuery, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldRequestedBy, v))
}

// Narrative applies equality check predicate on the "narrative" field. It's identical to NarrativeEQ.
func Narrative(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldNarrative, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldTokensUsed, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldCompletedAt, v))
}

// QueryEQ applies the EQ predicate on the "query" field.
func QueryEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldQuery, v))
}

// QueryNEQ applies the NEQ predicate on the "query" field.
func QueryNEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldQuery, v))
}

// QueryIn applies the In predicate on the "query" field.
func QueryIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldQuery, vs...))
}

// QueryNotIn applies the NotIn predicate on the "query" field.
func QueryNotIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldQuery, vs...))
}

// QueryGT applies the GT predicate on the "query" field.
func QueryGT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldQuery, v))
}

// QueryGTE applies the GTE predicate on the "query" field.
func QueryGTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldQuery, v))
}

// QueryLT applies the LT predicate on the "query" field.
func QueryLT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldQuery, v))
}

// QueryLTE applies the LTE predicate on the "query" field.
func QueryLTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldQuery, v))
}

// QueryContains applies the Contains predicate on the "query" field.
func QueryContains(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContains(FieldQuery, v))
}

// QueryHasPrefix applies the HasPrefix predicate on the "query" field.
func QueryHasPrefix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasPrefix(FieldQuery, v))
}

// QueryHasSuffix applies the HasSuffix predicate on the "query" field.
func QueryHasSuffix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasSuffix(FieldQuery, v))
}

// QueryEqualFold applies the EqualFold predicate on the "query" field.
func QueryEqualFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEqualFold(FieldQuery, v))
}

// QueryContainsFold applies the ContainsFold predicate on the "query" field.
func QueryContainsFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContainsFold(FieldQuery, v))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldRequestedBy, v))
}

// RequestedByContains applies the Contains predicate on the "requested_by" field.
func RequestedByContains(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContains(FieldRequestedBy, v))
}

// RequestedByHasPrefix applies the HasPrefix predicate on the "requested_by" field.
func RequestedByHasPrefix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasPrefix(FieldRequestedBy, v))
}

// RequestedByHasSuffix applies the HasSuffix predicate on the "requested_by" field.
func RequestedByHasSuffix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasSuffix(FieldRequestedBy, v))
}

// RequestedByIsNil applies the IsNil predicate on the "requested_by" field.
func RequestedByIsNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIsNull(FieldRequestedBy))
}

// RequestedByNotNil applies the NotNil predicate on the "requested_by" field.
func RequestedByNotNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotNull(FieldRequestedBy))
}

// RequestedByEqualFold applies the EqualFold predicate on the "requested_by" field.
func RequestedByEqualFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEqualFold(FieldRequestedBy, v))
}

// RequestedByContainsFold applies the ContainsFold predicate on the "requested_by" field.
func RequestedByContainsFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContainsFold(FieldRequestedBy, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldStatus, vs...))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotNull(FieldPlan))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotNull(FieldResult))
}

// NarrativeEQ applies the EQ predicate on the "narrative" field.
func NarrativeEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldNarrative, v))
}

// NarrativeNEQ applies the NEQ predicate on the "narrative" field.
func NarrativeNEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldNarrative, v))
}

// NarrativeIn applies the In predicate on the "narrative" field.
func NarrativeIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldNarrative, vs...))
}

// NarrativeNotIn applies the NotIn predicate on the "narrative" field.
func NarrativeNotIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldNarrative, vs...))
}

// NarrativeGT applies the GT predicate on the "narrative" field.
func NarrativeGT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldNarrative, v))
}

// NarrativeGTE applies the GTE predicate on the "narrative" field.
func NarrativeGTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldNarrative, v))
}

// NarrativeLT applies the LT predicate on the "narrative" field.
func NarrativeLT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldNarrative, v))
}

// NarrativeLTE applies the LTE predicate on the "narrative" field.
func NarrativeLTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldNarrative, v))
}

// NarrativeContains applies the Contains predicate on the "narrative" field.
func NarrativeContains(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContains(FieldNarrative, v))
}

// NarrativeHasPrefix applies the HasPrefix predicate on the "narrative" field.
func NarrativeHasPrefix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasPrefix(FieldNarrative, v))
}

// NarrativeHasSuffix applies the HasSuffix predicate on the "narrative" field.
func NarrativeHasSuffix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasSuffix(FieldNarrative, v))
}

// NarrativeIsNil applies the IsNil predicate on the "narrative" field.
func NarrativeIsNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIsNull(FieldNarrative))
}

// NarrativeNotNil applies the NotNil predicate on the "narrative" field.
func NarrativeNotNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotNull(FieldNarrative))
}

// NarrativeEqualFold applies the EqualFold predicate on the "narrative" field.
func NarrativeEqualFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEqualFold(FieldNarrative, v))
}

// NarrativeContainsFold applies the ContainsFold predicate on the "narrative" field.
func NarrativeContainsFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContainsFold(FieldNarrative, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldTokensUsed, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ReportJob {
	return predicate.ReportJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ReportJob {
	return predicate.ReportJob(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReportJob) predicate.ReportJob {
	return predicate.ReportJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReportJob) predicate.ReportJob {
	return predicate.ReportJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReportJob) predicate.ReportJob {
	return predicate.ReportJob(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package reconciliationsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldUserID, v))
}

// JournalID applies equality check predicate on the "journal_id" field. It's identical to JournalIDEQ.
func JournalID(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldJournalID, v))
}

// TotalLines applies equality check predicate on the "total_lines" field. It's identical to TotalLinesEQ.
func TotalLines(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldTotalLines, v))
}

// AutoMatched applies equality check predicate on the "auto_matched" field. It's identical to AutoMatchedEQ.
func AutoMatched(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldAutoMatched, v))
}

// ManuallyMatched applies equality check predicate on the "manually_matched" field. It's identical to ManuallyMatchedEQ.
func ManuallyMatched(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldManuallyMatched, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldSkipped, v))
}

// Remaining applies equality check predicate on the "remaining" field. It's identical to RemainingEQ.
func Remaining(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldRemaining, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldUserID, v))
}

// JournalIDEQ applies the EQ predicate on the "journal_id" field.
func JournalIDEQ(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldJournalID, v))
}

// JournalIDNEQ applies the NEQ predicate on the "journal_id" field.
func JournalIDNEQ(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldJournalID, v))
}

// JournalIDIn applies the In predicate on the "journal_id" field.
func JournalIDIn(vs ...int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldJournalID, vs...))
}

// JournalIDNotIn applies the NotIn predicate on the "journal_id" field.
func JournalIDNotIn(vs ...int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldJournalID, vs...))
}

// JournalIDGT applies the GT predicate on the "journal_id" field.
func JournalIDGT(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldJournalID, v))
}

// JournalIDGTE applies the GTE predicate on the "journal_id" field.
func JournalIDGTE(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldJournalID, v))
}

// JournalIDLT applies the LT predicate on the "journal_id" field.
func JournalIDLT(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldJournalID, v))
}

// JournalIDLTE applies the LTE predicate on the "journal_id" field.
func JournalIDLTE(v int64) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldJournalID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldStatus, vs...))
}

// TotalLinesEQ applies the EQ predicate on the "total_lines" field.
func TotalLinesEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldTotalLines, v))
}

// TotalLinesNEQ applies the NEQ predicate on the "total_lines" field.
func TotalLinesNEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldTotalLines, v))
}

// TotalLinesIn applies the In predicate on the "total_lines" field.
func TotalLinesIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldTotalLines, vs...))
}

// TotalLinesNotIn applies the NotIn predicate on the "total_lines" field.
func TotalLinesNotIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldTotalLines, vs...))
}

// TotalLinesGT applies the GT predicate on the "total_lines" field.
func TotalLinesGT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldTotalLines, v))
}

// TotalLinesGTE applies the GTE predicate on the "total_lines" field.
func TotalLinesGTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldTotalLines, v))
}

// TotalLinesLT applies the LT predicate on the "total_lines" field.
func TotalLinesLT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldTotalLines, v))
}

// TotalLinesLTE applies the LTE predicate on the "total_lines" field.
func TotalLinesLTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldTotalLines, v))
}

// AutoMatchedEQ applies the EQ predicate on the "auto_matched" field.
func AutoMatchedEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldAutoMatched, v))
}

// AutoMatchedNEQ applies the NEQ predicate on the "auto_matched" field.
func AutoMatchedNEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldAutoMatched, v))
}

// AutoMatchedIn applies the In predicate on the "auto_matched" field.
func AutoMatchedIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldAutoMatched, vs...))
}

// AutoMatchedNotIn applies the NotIn predicate on the "auto_matched" field.
func AutoMatchedNotIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldAutoMatched, vs...))
}

// AutoMatchedGT applies the GT predicate on the "auto_matched" field.
func AutoMatchedGT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldAutoMatched, v))
}

// AutoMatchedGTE applies the GTE predicate on the "auto_matched" field.
func AutoMatchedGTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldAutoMatched, v))
}

// AutoMatchedLT applies the LT predicate on the "auto_matched" field.
func AutoMatchedLT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldAutoMatched, v))
}

// AutoMatchedLTE applies the LTE predicate on the "auto_matched" field.
func AutoMatchedLTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldAutoMatched, v))
}

// ManuallyMatchedEQ applies the EQ predicate on the "manually_matched" field.
func ManuallyMatchedEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldManuallyMatched, v))
}

// ManuallyMatchedNEQ applies the NEQ predicate on the "manually_matched" field.
func ManuallyMatchedNEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldManuallyMatched, v))
}

// ManuallyMatchedIn applies the In predicate on the "manually_matched" field.
func ManuallyMatchedIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldManuallyMatched, vs...))
}

// ManuallyMatchedNotIn applies the NotIn predicate on the "manually_matched" field.
func ManuallyMatchedNotIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldManuallyMatched, vs...))
}

// ManuallyMatchedGT applies the GT predicate on the "manually_matched" field.
func ManuallyMatchedGT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldManuallyMatched, v))
}

// ManuallyMatchedGTE applies the GTE predicate on the "manually_matched" field.
func ManuallyMatchedGTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldManuallyMatched, v))
}

// ManuallyMatchedLT applies the LT predicate on the "manually_matched" field.
func ManuallyMatchedLT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldManuallyMatched, v))
}

// ManuallyMatchedLTE applies the LTE predicate on the "manually_matched" field.
func ManuallyMatchedLTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldManuallyMatched, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldSkipped, v))
}

// SkippedIn applies the In predicate on the "skipped" field.
func SkippedIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldSkipped, vs...))
}

// SkippedNotIn applies the NotIn predicate on the "skipped" field.
func SkippedNotIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldSkipped, vs...))
}

// SkippedGT applies the GT predicate on the "skipped" field.
func SkippedGT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldSkipped, v))
}

// SkippedGTE applies the GTE predicate on the "skipped" field.
func SkippedGTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldSkipped, v))
}

// SkippedLT applies the LT predicate on the "skipped" field.
func SkippedLT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldSkipped, v))
}

// SkippedLTE applies the LTE predicate on the "skipped" field.
func SkippedLTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldSkipped, v))
}

// RemainingEQ applies the EQ predicate on the "remaining" field.
func RemainingEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldRemaining, v))
}

// RemainingNEQ applies the NEQ predicate on the "remaining" field.
func RemainingNEQ(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldRemaining, v))
}

// RemainingIn applies the In predicate on the "remaining" field.
func RemainingIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldRemaining, vs...))
}

// RemainingNotIn applies the NotIn predicate on the "remaining" field.
func RemainingNotIn(vs ...int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldRemaining, vs...))
}

// RemainingGT applies the GT predicate on the "remaining" field.
func RemainingGT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldRemaining, v))
}

// RemainingGTE applies the GTE predicate on the "remaining" field.
func RemainingGTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldRemaining, v))
}

// RemainingLT applies the LT predicate on the "remaining" field.
func RemainingLT(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldRemaining, v))
}

// RemainingLTE applies the LTE predicate on the "remaining" field.
func RemainingLTE(v int) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldRemaining, v))
}

// LearnedRulesIsNil applies the IsNil predicate on the "learned_rules" field.
func LearnedRulesIsNil() predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIsNull(FieldLearnedRules))
}

// LearnedRulesNotNil applies the NotNil predicate on the "learned_rules" field.
func LearnedRulesNotNil() predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotNull(FieldLearnedRules))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReconciliationSession) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReconciliationSession) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReconciliationSession) predicate.ReconciliationSession {
	return predicate.ReconciliationSession(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package dedupscan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldContainsFold(FieldID, id))
}

// ScanType applies equality check predicate on the "scan_type" field. It's identical to ScanTypeEQ.
func ScanType(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldScanType, v))
}

// RecordsScanned applies equality check predicate on the "records_scanned" field. It's identical to RecordsScannedEQ.
func RecordsScanned(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldRecordsScanned, v))
}

// GroupsFound applies equality check predicate on the "groups_found" field. It's identical to GroupsFoundEQ.
func GroupsFound(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldGroupsFound, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldErrorMessage, v))
}

// ScanTypeEQ applies the EQ predicate on the "scan_type" field.
func ScanTypeEQ(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldScanType, v))
}

// ScanTypeNEQ applies the NEQ predicate on the "scan_type" field.
func ScanTypeNEQ(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldScanType, v))
}

// ScanTypeIn applies the In predicate on the "scan_type" field.
func ScanTypeIn(vs ...string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldScanType, vs...))
}

// ScanTypeNotIn applies the NotIn predicate on the "scan_type" field.
func ScanTypeNotIn(vs ...string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldScanType, vs...))
}

// ScanTypeGT applies the GT predicate on the "scan_type" field.
func ScanTypeGT(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldScanType, v))
}

// ScanTypeGTE applies the GTE predicate on the "scan_type" field.
func ScanTypeGTE(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldScanType, v))
}

// ScanTypeLT applies the LT predicate on the "scan_type" field.
func ScanTypeLT(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldScanType, v))
}

// ScanTypeLTE applies the LTE predicate on the "scan_type" field.
func ScanTypeLTE(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldScanType, v))
}

// ScanTypeContains applies the Contains predicate on the "scan_type" field.
func ScanTypeContains(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldContains(FieldScanType, v))
}

// ScanTypeHasPrefix applies the HasPrefix predicate on the "scan_type" field.
func ScanTypeHasPrefix(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldHasPrefix(FieldScanType, v))
}

// ScanTypeHasSuffix applies the HasSuffix predicate on the "scan_type" field.
func ScanTypeHasSuffix(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldHasSuffix(FieldScanType, v))
}

// ScanTypeEqualFold applies the EqualFold predicate on the "scan_type" field.
func ScanTypeEqualFold(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEqualFold(FieldScanType, v))
}

// ScanTypeContainsFold applies the ContainsFold predicate on the "scan_type" field.
func ScanTypeContainsFold(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldContainsFold(FieldScanType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldStatus, vs...))
}

// RecordsScannedEQ applies the EQ predicate on the "records_scanned" field.
func RecordsScannedEQ(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldRecordsScanned, v))
}

// RecordsScannedNEQ applies the NEQ predicate on the "records_scanned" field.
func RecordsScannedNEQ(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldRecordsScanned, v))
}

// RecordsScannedIn applies the In predicate on the "records_scanned" field.
func RecordsScannedIn(vs ...int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldRecordsScanned, vs...))
}

// RecordsScannedNotIn applies the NotIn predicate on the "records_scanned" field.
func RecordsScannedNotIn(vs ...int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldRecordsScanned, vs...))
}

// RecordsScannedGT applies the GT predicate on the "records_scanned" field.
func RecordsScannedGT(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldRecordsScanned, v))
}

// RecordsScannedGTE applies the GTE predicate on the "records_scanned" field.
func RecordsScannedGTE(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldRecordsScanned, v))
}

// RecordsScannedLT applies the LT predicate on the "records_scanned" field.
func RecordsScannedLT(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldRecordsScanned, v))
}

// RecordsScannedLTE applies the LTE predicate on the "records_scanned" field.
func RecordsScannedLTE(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldRecordsScanned, v))
}

// GroupsFoundEQ applies the EQ predicate on the "groups_found" field.
func GroupsFoundEQ(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldGroupsFound, v))
}

// GroupsFoundNEQ applies the NEQ predicate on the "groups_found" field.
func GroupsFoundNEQ(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldGroupsFound, v))
}

// GroupsFoundIn applies the In predicate on the "groups_found" field.
func GroupsFoundIn(vs ...int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldGroupsFound, vs...))
}

// GroupsFoundNotIn applies the NotIn predicate on the "groups_found" field.
func GroupsFoundNotIn(vs ...int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldGroupsFound, vs...))
}

// GroupsFoundGT applies the GT predicate on the "groups_found" field.
func GroupsFoundGT(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldGroupsFound, v))
}

// GroupsFoundGTE applies the GTE predicate on the "groups_found" field.
func GroupsFoundGTE(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldGroupsFound, v))
}

// GroupsFoundLT applies the LT predicate on the "groups_found" field.
func GroupsFoundLT(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldGroupsFound, v))
}

// GroupsFoundLTE applies the LTE predicate on the "groups_found" field.
func GroupsFoundLTE(v int) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldGroupsFound, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DedupScan {
	return predicate.DedupScan(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DedupScan {
	return predicate.DedupScan(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DedupScan {
	return predicate.DedupScan(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasGroups applies the HasEdge predicate on the "groups" edge.
func HasGroups() predicate.DedupScan {
	return predicate.DedupScan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupsWith applies the HasEdge predicate on the "groups" edge with a given conditions (other predicates).
func HasGroupsWith(preds ...predicate.DuplicateGroup) predicate.DedupScan {
	return predicate.DedupScan(func(s *sql.Selector) {
		step := newGroupsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DedupScan) predicate.DedupScan {
	return predicate.DedupScan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DedupScan) predicate.DedupScan {
	return predicate.DedupScan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DedupScan) predicate.DedupScan {
	return predicate.DedupScan(sql.NotPredicates(p))
}

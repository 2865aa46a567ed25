// Code generated by ent, DO NOT EDIT.

package duplicategroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/steward-ai/steward/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldID, id))
}

// ScanID applies equality check predicate on the "scan_id" field. It's identical to ScanIDEQ.
func ScanID(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldScanID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldEntityType, v))
}

// MasterRecordID applies equality check predicate on the "master_record_id" field. It's identical to MasterRecordIDEQ.
func MasterRecordID(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldMasterRecordID, v))
}

// SimilarityScore applies equality check predicate on the "similarity_score" field. It's identical to SimilarityScoreEQ.
func SimilarityScore(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldSimilarityScore, v))
}

// ResolvedBy applies equality check predicate on the "resolved_by" field. It's identical to ResolvedByEQ.
func ResolvedBy(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldResolvedAt, v))
}

// ScanIDEQ applies the EQ predicate on the "scan_id" field.
func ScanIDEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldScanID, v))
}

// ScanIDNEQ applies the NEQ predicate on the "scan_id" field.
func ScanIDNEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldScanID, v))
}

// ScanIDIn applies the In predicate on the "scan_id" field.
func ScanIDIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldScanID, vs...))
}

// ScanIDNotIn applies the NotIn predicate on the "scan_id" field.
func ScanIDNotIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldScanID, vs...))
}

// ScanIDGT applies the GT predicate on the "scan_id" field.
func ScanIDGT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldScanID, v))
}

// ScanIDGTE applies the GTE predicate on the "scan_id" field.
func ScanIDGTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldScanID, v))
}

// ScanIDLT applies the LT predicate on the "scan_id" field.
func ScanIDLT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldScanID, v))
}

// ScanIDLTE applies the LTE predicate on the "scan_id" field.
func ScanIDLTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldScanID, v))
}

// ScanIDContains applies the Contains predicate on the "scan_id" field.
func ScanIDContains(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContains(FieldScanID, v))
}

// ScanIDHasPrefix applies the HasPrefix predicate on the "scan_id" field.
func ScanIDHasPrefix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasPrefix(FieldScanID, v))
}

// ScanIDHasSuffix applies the HasSuffix predicate on the "scan_id" field.
func ScanIDHasSuffix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasSuffix(FieldScanID, v))
}

// ScanIDEqualFold applies the EqualFold predicate on the "scan_id" field.
func ScanIDEqualFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldScanID, v))
}

// ScanIDContainsFold applies the ContainsFold predicate on the "scan_id" field.
func ScanIDContainsFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldScanID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldEntityType, v))
}

// MasterRecordIDEQ applies the EQ predicate on the "master_record_id" field.
func MasterRecordIDEQ(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldMasterRecordID, v))
}

// MasterRecordIDNEQ applies the NEQ predicate on the "master_record_id" field.
func MasterRecordIDNEQ(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldMasterRecordID, v))
}

// MasterRecordIDIn applies the In predicate on the "master_record_id" field.
func MasterRecordIDIn(vs ...int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldMasterRecordID, vs...))
}

// MasterRecordIDNotIn applies the NotIn predicate on the "master_record_id" field.
func MasterRecordIDNotIn(vs ...int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldMasterRecordID, vs...))
}

// MasterRecordIDGT applies the GT predicate on the "master_record_id" field.
func MasterRecordIDGT(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldMasterRecordID, v))
}

// MasterRecordIDGTE applies the GTE predicate on the "master_record_id" field.
func MasterRecordIDGTE(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldMasterRecordID, v))
}

// MasterRecordIDLT applies the LT predicate on the "master_record_id" field.
func MasterRecordIDLT(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldMasterRecordID, v))
}

// MasterRecordIDLTE applies the LTE predicate on the "master_record_id" field.
func MasterRecordIDLTE(v int64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldMasterRecordID, v))
}

// SimilarityScoreEQ applies the EQ predicate on the "similarity_score" field.
func SimilarityScoreEQ(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldSimilarityScore, v))
}

// SimilarityScoreNEQ applies the NEQ predicate on the "similarity_score" field.
func SimilarityScoreNEQ(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldSimilarityScore, v))
}

// SimilarityScoreIn applies the In predicate on the "similarity_score" field.
func SimilarityScoreIn(vs ...float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreNotIn applies the NotIn predicate on the "similarity_score" field.
func SimilarityScoreNotIn(vs ...float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldSimilarityScore, vs...))
}

// SimilarityScoreGT applies the GT predicate on the "similarity_score" field.
func SimilarityScoreGT(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldSimilarityScore, v))
}

// SimilarityScoreGTE applies the GTE predicate on the "similarity_score" field.
func SimilarityScoreGTE(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldSimilarityScore, v))
}

// SimilarityScoreLT applies the LT predicate on the "similarity_score" field.
func SimilarityScoreLT(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldSimilarityScore, v))
}

// SimilarityScoreLTE applies the LTE predicate on the "similarity_score" field.
func SimilarityScoreLTE(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldSimilarityScore, v))
}

// MatchedFieldsIsNil applies the IsNil predicate on the "matched_fields" field.
func MatchedFieldsIsNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIsNull(FieldMatchedFields))
}

// MatchedFieldsNotNil applies the NotNil predicate on the "matched_fields" field.
func MatchedFieldsNotNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotNull(FieldMatchedFields))
}

// ResolutionEQ applies the EQ predicate on the "resolution" field.
func ResolutionEQ(v Resolution) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldResolution, v))
}

// ResolutionNEQ applies the NEQ predicate on the "resolution" field.
func ResolutionNEQ(v Resolution) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldResolution, v))
}

// ResolutionIn applies the In predicate on the "resolution" field.
func ResolutionIn(vs ...Resolution) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldResolution, vs...))
}

// ResolutionNotIn applies the NotIn predicate on the "resolution" field.
func ResolutionNotIn(vs ...Resolution) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldResolution, vs...))
}

// ResolvedByEQ applies the EQ predicate on the "resolved_by" field.
func ResolvedByEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldResolvedBy, v))
}

// ResolvedByNEQ applies the NEQ predicate on the "resolved_by" field.
func ResolvedByNEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldResolvedBy, v))
}

// ResolvedByIn applies the In predicate on the "resolved_by" field.
func ResolvedByIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldResolvedBy, vs...))
}

// ResolvedByNotIn applies the NotIn predicate on the "resolved_by" field.
func ResolvedByNotIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldResolvedBy, vs...))
}

// ResolvedByGT applies the GT predicate on the "resolved_by" field.
func ResolvedByGT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldResolvedBy, v))
}

// ResolvedByGTE applies the GTE predicate on the "resolved_by" field.
func ResolvedByGTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldResolvedBy, v))
}

// ResolvedByLT applies the LT predicate on the "resolved_by" field.
func ResolvedByLT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldResolvedBy, v))
}

// ResolvedByLTE applies the LTE predicate on the "resolved_by" field.
func ResolvedByLTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldResolvedBy, v))
}

// ResolvedByContains applies the Contains predicate on the "resolved_by" field.
func ResolvedByContains(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContains(FieldResolvedBy, v))
}

// ResolvedByHasPrefix applies the HasPrefix predicate on the "resolved_by" field.
func ResolvedByHasPrefix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasPrefix(FieldResolvedBy, v))
}

// ResolvedByHasSuffix applies the HasSuffix predicate on the "resolved_by" field.
func ResolvedByHasSuffix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasSuffix(FieldResolvedBy, v))
}

// ResolvedByIsNil applies the IsNil predicate on the "resolved_by" field.
func ResolvedByIsNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIsNull(FieldResolvedBy))
}

// ResolvedByNotNil applies the NotNil predicate on the "resolved_by" field.
func ResolvedByNotNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotNull(FieldResolvedBy))
}

// ResolvedByEqualFold applies the EqualFold predicate on the "resolved_by" field.
func ResolvedByEqualFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldResolvedBy, v))
}

// ResolvedByContainsFold applies the ContainsFold predicate on the "resolved_by" field.
func ResolvedByContainsFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldResolvedBy, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotNull(FieldResolvedAt))
}

// HasScan applies the HasEdge predicate on the "scan" edge.
func HasScan() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ScanTable, ScanColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScanWith applies the HasEdge predicate on the "scan" edge with a given conditions (other predicates).
func HasScanWith(preds ...predicate.DedupScan) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(func(s *sql.Selector) {
		step := newScanStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DuplicateGroup) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DuplicateGroup) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DuplicateGroup) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.NotPredicates(p))
}

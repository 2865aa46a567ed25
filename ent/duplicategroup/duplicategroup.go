// Code generated by ent, DO NOT EDIT.

package duplicategroup

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the duplicategroup type in the database.
	Label = "duplicate_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldScanID holds the string denoting the scan_id field in the database.
	FieldScanID = "scan_id"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldRecordIds holds the string denoting the record_ids field in the database.
	FieldRecordIds = "record_ids"
	// FieldMasterRecordID holds the string denoting the master_record_id field in the database.
	FieldMasterRecordID = "master_record_id"
	// FieldSimilarityScore holds the string denoting the similarity_score field in the database.
	FieldSimilarityScore = "similarity_score"
	// FieldMatchedFields holds the string denoting the matched_fields field in the database.
	FieldMatchedFields = "matched_fields"
	// FieldResolution holds the string denoting the resolution field in the database.
	FieldResolution = "resolution"
	// FieldResolvedBy holds the string denoting the resolved_by field in the database.
	FieldResolvedBy = "resolved_by"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeScan holds the string denoting the scan edge name in mutations.
	EdgeScan = "scan"
	// DedupScanFieldID holds the string denoting the ID field of the DedupScan.
	DedupScanFieldID = "scan_id"
	// Table holds the table name of the duplicategroup in the database.
	Table = "duplicate_groups"
	// ScanTable is the table that holds the scan relation/edge.
	ScanTable = "duplicate_groups"
	// ScanInverseTable is the table name for the DedupScan entity.
	// It exists in this package in order to avoid circular dependency with the "dedupscan" package.
	ScanInverseTable = "dedup_scans"
	// ScanColumn is the table column denoting the scan relation/edge.
	ScanColumn = "scan_id"
)

// Columns holds all SQL columns for duplicategroup fields.
var Columns = []string{
	FieldID,
	FieldScanID,
	FieldEntityType,
	FieldRecordIds,
	FieldMasterRecordID,
	FieldSimilarityScore,
	FieldMatchedFields,
	FieldResolution,
	FieldResolvedBy,
	FieldResolvedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// Resolution defines the type for the "resolution" enum field.
type Resolution string

// ResolutionPending is the default value of the Resolution enum.
const DefaultResolution = ResolutionPending

// Resolution values.
const (
	ResolutionPending   Resolution = "pending"
	ResolutionMerged    Resolution = "merged"
	ResolutionDismissed Resolution = "dismissed"
)

func (r Resolution) String() string {
	return string(r)
}

// ResolutionValidator is a validator for the "resolution" field enum values. It is called by the builders before save.
func ResolutionValidator(r Resolution) error {
	switch r {
	case ResolutionPending, ResolutionMerged, ResolutionDismissed:
		return nil
	default:
		return fmt.Errorf("duplicategroup: invalid enum value for resolution field: %q", r)
	}
}

// OrderOption defines the ordering options for the DuplicateGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScanID orders the results by the scan_id field.
func ByScanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanID, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByMasterRecordID orders the results by the master_record_id field.
func ByMasterRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasterRecordID, opts...).ToFunc()
}

// BySimilarityScore orders the results by the similarity_score field.
func BySimilarityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarityScore, opts...).ToFunc()
}

// ByResolution orders the results by the resolution field.
func ByResolution(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolution, opts...).ToFunc()
}

// ByResolvedBy orders the results by the resolved_by field.
func ByResolvedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedBy, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// ByScanField orders the results by scan field.
func ByScanField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScanStep(), sql.OrderByField(field, opts...))
	}
}
func newScanStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScanInverseTable, DedupScanFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ScanTable, ScanColumn),
	)
}

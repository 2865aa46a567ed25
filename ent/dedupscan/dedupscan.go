// Code generated by ent, DO NOT EDIT.

package dedupscan

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dedupscan type in the database.
	Label = "dedup_scan"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scan_id"
	// FieldScanType holds the string denoting the scan_type field in the database.
	FieldScanType = "scan_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRecordsScanned holds the string denoting the records_scanned field in the database.
	FieldRecordsScanned = "records_scanned"
	// FieldGroupsFound holds the string denoting the groups_found field in the database.
	FieldGroupsFound = "groups_found"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeGroups holds the string denoting the groups edge name in mutations.
	EdgeGroups = "groups"
	// DuplicateGroupFieldID holds the string denoting the ID field of the DuplicateGroup.
	DuplicateGroupFieldID = "group_id"
	// Table holds the table name of the dedupscan in the database.
	Table = "dedup_scans"
	// GroupsTable is the table that holds the groups relation/edge.
	GroupsTable = "duplicate_groups"
	// GroupsInverseTable is the table name for the DuplicateGroup entity.
	// It exists in this package in order to avoid circular dependency with the "duplicategroup" package.
	GroupsInverseTable = "duplicate_groups"
	// GroupsColumn is the table column denoting the groups relation/edge.
	GroupsColumn = "scan_id"
)

// Columns holds all SQL columns for dedupscan fields.
var Columns = []string{
	FieldID,
	FieldScanType,
	FieldStatus,
	FieldRecordsScanned,
	FieldGroupsFound,
	FieldCreatedAt,
	FieldCompletedAt,
	FieldErrorMessage,
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

var (
	// DefaultRecordsScanned holds the default value on creation for the "records_scanned" field.
	DefaultRecordsScanned int
	// DefaultGroupsFound holds the default value on creation for the "groups_found" field.
	DefaultGroupsFound int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("dedupscan: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DedupScan queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScanType orders the results by the scan_type field.
func ByScanType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScanType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRecordsScanned orders the results by the records_scanned field.
func ByRecordsScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordsScanned, opts...).ToFunc()
}

// ByGroupsFound orders the results by the groups_found field.
func ByGroupsFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupsFound, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByGroupsCount orders the results by groups count.
func ByGroupsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGroupsStep(), opts...)
	}
}

// ByGroups orders the results by groups terms.
func ByGroups(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGroupsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupsInverseTable, DuplicateGroupFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GroupsTable, GroupsColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package reconciliationsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reconciliationsession type in the database.
	Label = "reconciliation_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldJournalID holds the string denoting the journal_id field in the database.
	FieldJournalID = "journal_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalLines holds the string denoting the total_lines field in the database.
	FieldTotalLines = "total_lines"
	// FieldAutoMatched holds the string denoting the auto_matched field in the database.
	FieldAutoMatched = "auto_matched"
	// FieldManuallyMatched holds the string denoting the manually_matched field in the database.
	FieldManuallyMatched = "manually_matched"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldRemaining holds the string denoting the remaining field in the database.
	FieldRemaining = "remaining"
	// FieldLearnedRules holds the string denoting the learned_rules field in the database.
	FieldLearnedRules = "learned_rules"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the reconciliationsession in the database.
	Table = "reconciliation_sessions"
)

// Columns holds all SQL columns for reconciliationsession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldJournalID,
	FieldStatus,
	FieldTotalLines,
	FieldAutoMatched,
	FieldManuallyMatched,
	FieldSkipped,
	FieldRemaining,
	FieldLearnedRules,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
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
	// DefaultTotalLines holds the default value on creation for the "total_lines" field.
	DefaultTotalLines int
	// DefaultAutoMatched holds the default value on creation for the "auto_matched" field.
	DefaultAutoMatched int
	// DefaultManuallyMatched holds the default value on creation for the "manually_matched" field.
	DefaultManuallyMatched int
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// DefaultRemaining holds the default value on creation for the "remaining" field.
	DefaultRemaining int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("reconciliationsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ReconciliationSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByJournalID orders the results by the journal_id field.
func ByJournalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJournalID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalLines orders the results by the total_lines field.
func ByTotalLines(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLines, opts...).ToFunc()
}

// ByAutoMatched orders the results by the auto_matched field.
func ByAutoMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoMatched, opts...).ToFunc()
}

// ByManuallyMatched orders the results by the manually_matched field.
func ByManuallyMatched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManuallyMatched, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByRemaining orders the results by the remaining field.
func ByRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemaining, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package closingstep

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the closingstep type in the database.
	Label = "closing_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "closing_step_id"
	// FieldClosingID holds the string denoting the closing_id field in the database.
	FieldClosingID = "closing_id"
	// FieldStepName holds the string denoting the step_name field in the database.
	FieldStepName = "step_name"
	// FieldStepIndex holds the string denoting the step_index field in the database.
	FieldStepIndex = "step_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldBlockedReason holds the string denoting the blocked_reason field in the database.
	FieldBlockedReason = "blocked_reason"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeClosing holds the string denoting the closing edge name in mutations.
	EdgeClosing = "closing"
	// MonthEndClosingFieldID holds the string denoting the ID field of the MonthEndClosing.
	MonthEndClosingFieldID = "closing_id"
	// Table holds the table name of the closingstep in the database.
	Table = "closing_steps"
	// ClosingTable is the table that holds the closing relation/edge.
	ClosingTable = "closing_steps"
	// ClosingInverseTable is the table name for the MonthEndClosing entity.
	// It exists in this package in order to avoid circular dependency with the "monthendclosing" package.
	ClosingInverseTable = "month_end_closings"
	// ClosingColumn is the table column denoting the closing relation/edge.
	ClosingColumn = "closing_id"
)

// Columns holds all SQL columns for closingstep fields.
var Columns = []string{
	FieldID,
	FieldClosingID,
	FieldStepName,
	FieldStepIndex,
	FieldStatus,
	FieldDetails,
	FieldBlockedReason,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusSkipped    Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("closingstep: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ClosingStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClosingID orders the results by the closing_id field.
func ByClosingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClosingID, opts...).ToFunc()
}

// ByStepName orders the results by the step_name field.
func ByStepName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepName, opts...).ToFunc()
}

// ByStepIndex orders the results by the step_index field.
func ByStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBlockedReason orders the results by the blocked_reason field.
func ByBlockedReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockedReason, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByClosingField orders the results by closing field.
func ByClosingField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newClosingStep(), sql.OrderByField(field, opts...))
	}
}
func newClosingStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ClosingInverseTable, MonthEndClosingFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ClosingTable, ClosingColumn),
	)
}

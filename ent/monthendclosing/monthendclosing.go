// Code generated by ent, DO NOT EDIT.

package monthendclosing

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the monthendclosing type in the database.
	Label = "month_end_closing"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "closing_id"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReadinessScore holds the string denoting the readiness_score field in the database.
	FieldReadinessScore = "readiness_score"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// ClosingStepFieldID holds the string denoting the ID field of the ClosingStep.
	ClosingStepFieldID = "closing_step_id"
	// Table holds the table name of the monthendclosing in the database.
	Table = "month_end_closings"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "closing_steps"
	// StepsInverseTable is the table name for the ClosingStep entity.
	// It exists in this package in order to avoid circular dependency with the "closingstep" package.
	StepsInverseTable = "closing_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "closing_id"
)

// Columns holds all SQL columns for monthendclosing fields.
var Columns = []string{
	FieldID,
	FieldPeriod,
	FieldStatus,
	FieldReadinessScore,
	FieldSummary,
	FieldStartedAt,
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
	// DefaultReadinessScore holds the default value on creation for the "readiness_score" field.
	DefaultReadinessScore float64
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusInProgress is the default value of the Status enum.
const DefaultStatus = StatusInProgress

// Status values.
const (
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusInProgress, StatusReview, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("monthendclosing: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MonthEndClosing queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReadinessScore orders the results by the readiness_score field.
func ByReadinessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadinessScore, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, ClosingStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}

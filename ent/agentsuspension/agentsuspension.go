// Code generated by ent, DO NOT EDIT.

package agentsuspension

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentsuspension type in the database.
	Label = "agent_suspension"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suspension_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldResumeCondition holds the string denoting the resume_condition field in the database.
	FieldResumeCondition = "resume_condition"
	// FieldSuspendedAtStep holds the string denoting the suspended_at_step field in the database.
	FieldSuspendedAtStep = "suspended_at_step"
	// FieldTimeoutAt holds the string denoting the timeout_at field in the database.
	FieldTimeoutAt = "timeout_at"
	// FieldResumeData holds the string denoting the resume_data field in the database.
	FieldResumeData = "resume_data"
	// FieldSuspendedAt holds the string denoting the suspended_at field in the database.
	FieldSuspendedAt = "suspended_at"
	// FieldResumedAt holds the string denoting the resumed_at field in the database.
	FieldResumedAt = "resumed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// AgentRunFieldID holds the string denoting the ID field of the AgentRun.
	AgentRunFieldID = "run_id"
	// Table holds the table name of the agentsuspension in the database.
	Table = "agent_suspensions"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "agent_suspensions"
	// RunInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	RunInverseTable = "agent_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for agentsuspension fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldResumeCondition,
	FieldSuspendedAtStep,
	FieldTimeoutAt,
	FieldResumeData,
	FieldSuspendedAt,
	FieldResumedAt,
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
	// DefaultSuspendedAt holds the default value on creation for the "suspended_at" field.
	DefaultSuspendedAt func() time.Time
)

// OrderOption defines the ordering options for the AgentSuspension queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByResumeCondition orders the results by the resume_condition field.
func ByResumeCondition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumeCondition, opts...).ToFunc()
}

// BySuspendedAtStep orders the results by the suspended_at_step field.
func BySuspendedAtStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspendedAtStep, opts...).ToFunc()
}

// ByTimeoutAt orders the results by the timeout_at field.
func ByTimeoutAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutAt, opts...).ToFunc()
}

// BySuspendedAt orders the results by the suspended_at field.
func BySuspendedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuspendedAt, opts...).ToFunc()
}

// ByResumedAt orders the results by the resumed_at field.
func ByResumedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResumedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, AgentRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}

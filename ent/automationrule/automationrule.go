// Code generated by ent, DO NOT EDIT.

package automationrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the automationrule type in the database.
	Label = "automation_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldAutomationType holds the string denoting the automation_type field in the database.
	FieldAutomationType = "automation_type"
	// FieldActionName holds the string denoting the action_name field in the database.
	FieldActionName = "action_name"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldConfidenceThreshold holds the string denoting the confidence_threshold field in the database.
	FieldConfidenceThreshold = "confidence_threshold"
	// FieldAutoApproveThreshold holds the string denoting the auto_approve_threshold field in the database.
	FieldAutoApproveThreshold = "auto_approve_threshold"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the automationrule in the database.
	Table = "automation_rules"
)

// Columns holds all SQL columns for automationrule fields.
var Columns = []string{
	FieldID,
	FieldAutomationType,
	FieldActionName,
	FieldEnabled,
	FieldConfidenceThreshold,
	FieldAutoApproveThreshold,
	FieldConfig,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultActionName holds the default value on creation for the "action_name" field.
	DefaultActionName string
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultConfidenceThreshold holds the default value on creation for the "confidence_threshold" field.
	DefaultConfidenceThreshold float64
	// DefaultAutoApproveThreshold holds the default value on creation for the "auto_approve_threshold" field.
	DefaultAutoApproveThreshold float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the AutomationRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAutomationType orders the results by the automation_type field.
func ByAutomationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutomationType, opts...).ToFunc()
}

// ByActionName orders the results by the action_name field.
func ByActionName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionName, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByConfidenceThreshold orders the results by the confidence_threshold field.
func ByConfidenceThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceThreshold, opts...).ToFunc()
}

// ByAutoApproveThreshold orders the results by the auto_approve_threshold field.
func ByAutoApproveThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoApproveThreshold, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

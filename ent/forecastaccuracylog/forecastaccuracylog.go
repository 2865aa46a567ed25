// Code generated by ent, DO NOT EDIT.

package forecastaccuracylog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the forecastaccuracylog type in the database.
	Label = "forecast_accuracy_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "accuracy_log_id"
	// FieldForecastID holds the string denoting the forecast_id field in the database.
	FieldForecastID = "forecast_id"
	// FieldTargetDate holds the string denoting the target_date field in the database.
	FieldTargetDate = "target_date"
	// FieldProjectedBalance holds the string denoting the projected_balance field in the database.
	FieldProjectedBalance = "projected_balance"
	// FieldActualBalance holds the string denoting the actual_balance field in the database.
	FieldActualBalance = "actual_balance"
	// FieldErrorPct holds the string denoting the error_pct field in the database.
	FieldErrorPct = "error_pct"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// Table holds the table name of the forecastaccuracylog in the database.
	Table = "forecast_accuracy_logs"
)

// Columns holds all SQL columns for forecastaccuracylog fields.
var Columns = []string{
	FieldID,
	FieldForecastID,
	FieldTargetDate,
	FieldProjectedBalance,
	FieldActualBalance,
	FieldErrorPct,
	FieldEvaluatedAt,
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
	// DefaultEvaluatedAt holds the default value on creation for the "evaluated_at" field.
	DefaultEvaluatedAt func() time.Time
)

// OrderOption defines the ordering options for the ForecastAccuracyLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByForecastID orders the results by the forecast_id field.
func ByForecastID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForecastID, opts...).ToFunc()
}

// ByTargetDate orders the results by the target_date field.
func ByTargetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetDate, opts...).ToFunc()
}

// ByProjectedBalance orders the results by the projected_balance field.
func ByProjectedBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectedBalance, opts...).ToFunc()
}

// ByActualBalance orders the results by the actual_balance field.
func ByActualBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualBalance, opts...).ToFunc()
}

// ByErrorPct orders the results by the error_pct field.
func ByErrorPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorPct, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package forecastscenario

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the forecastscenario type in the database.
	Label = "forecast_scenario"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "scenario_id"
	// FieldForecastID holds the string denoting the forecast_id field in the database.
	FieldForecastID = "forecast_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAdjustments holds the string denoting the adjustments field in the database.
	FieldAdjustments = "adjustments"
	// FieldProjectedBalance holds the string denoting the projected_balance field in the database.
	FieldProjectedBalance = "projected_balance"
	// FieldDelta holds the string denoting the delta field in the database.
	FieldDelta = "delta"
	// EdgeForecast holds the string denoting the forecast edge name in mutations.
	EdgeForecast = "forecast"
	// CashForecastFieldID holds the string denoting the ID field of the CashForecast.
	CashForecastFieldID = "forecast_id"
	// Table holds the table name of the forecastscenario in the database.
	Table = "forecast_scenarios"
	// ForecastTable is the table that holds the forecast relation/edge.
	ForecastTable = "forecast_scenarios"
	// ForecastInverseTable is the table name for the CashForecast entity.
	// It exists in this package in order to avoid circular dependency with the "cashforecast" package.
	ForecastInverseTable = "cash_forecasts"
	// ForecastColumn is the table column denoting the forecast relation/edge.
	ForecastColumn = "forecast_id"
)

// Columns holds all SQL columns for forecastscenario fields.
var Columns = []string{
	FieldID,
	FieldForecastID,
	FieldName,
	FieldAdjustments,
	FieldProjectedBalance,
	FieldDelta,
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

// OrderOption defines the ordering options for the ForecastScenario queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByForecastID orders the results by the forecast_id field.
func ByForecastID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForecastID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByProjectedBalance orders the results by the projected_balance field.
func ByProjectedBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectedBalance, opts...).ToFunc()
}

// ByDelta orders the results by the delta field.
func ByDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelta, opts...).ToFunc()
}

// ByForecastField orders the results by forecast field.
func ByForecastField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newForecastStep(), sql.OrderByField(field, opts...))
	}
}
func newForecastStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ForecastInverseTable, CashForecastFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ForecastTable, ForecastColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package cashforecast

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cashforecast type in the database.
	Label = "cash_forecast"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "forecast_id"
	// FieldForecastDate holds the string denoting the forecast_date field in the database.
	FieldForecastDate = "forecast_date"
	// FieldTargetDate holds the string denoting the target_date field in the database.
	FieldTargetDate = "target_date"
	// FieldOpeningBalance holds the string denoting the opening_balance field in the database.
	FieldOpeningBalance = "opening_balance"
	// FieldExpectedInflows holds the string denoting the expected_inflows field in the database.
	FieldExpectedInflows = "expected_inflows"
	// FieldExpectedOutflows holds the string denoting the expected_outflows field in the database.
	FieldExpectedOutflows = "expected_outflows"
	// FieldProjectedBalance holds the string denoting the projected_balance field in the database.
	FieldProjectedBalance = "projected_balance"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldBreakdown holds the string denoting the breakdown field in the database.
	FieldBreakdown = "breakdown"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeScenarios holds the string denoting the scenarios edge name in mutations.
	EdgeScenarios = "scenarios"
	// ForecastScenarioFieldID holds the string denoting the ID field of the ForecastScenario.
	ForecastScenarioFieldID = "scenario_id"
	// Table holds the table name of the cashforecast in the database.
	Table = "cash_forecasts"
	// ScenariosTable is the table that holds the scenarios relation/edge.
	ScenariosTable = "forecast_scenarios"
	// ScenariosInverseTable is the table name for the ForecastScenario entity.
	// It exists in this package in order to avoid circular dependency with the "forecastscenario" package.
	ScenariosInverseTable = "forecast_scenarios"
	// ScenariosColumn is the table column denoting the scenarios relation/edge.
	ScenariosColumn = "forecast_id"
)

// Columns holds all SQL columns for cashforecast fields.
var Columns = []string{
	FieldID,
	FieldForecastDate,
	FieldTargetDate,
	FieldOpeningBalance,
	FieldExpectedInflows,
	FieldExpectedOutflows,
	FieldProjectedBalance,
	FieldConfidence,
	FieldBreakdown,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the CashForecast queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByForecastDate orders the results by the forecast_date field.
func ByForecastDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForecastDate, opts...).ToFunc()
}

// ByTargetDate orders the results by the target_date field.
func ByTargetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetDate, opts...).ToFunc()
}

// ByOpeningBalance orders the results by the opening_balance field.
func ByOpeningBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpeningBalance, opts...).ToFunc()
}

// ByExpectedInflows orders the results by the expected_inflows field.
func ByExpectedInflows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedInflows, opts...).ToFunc()
}

// ByExpectedOutflows orders the results by the expected_outflows field.
func ByExpectedOutflows(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedOutflows, opts...).ToFunc()
}

// ByProjectedBalance orders the results by the projected_balance field.
func ByProjectedBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectedBalance, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByScenariosCount orders the results by scenarios count.
func ByScenariosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScenariosStep(), opts...)
	}
}

// ByScenarios orders the results by scenarios terms.
func ByScenarios(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScenariosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScenariosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScenariosInverseTable, ForecastScenarioFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScenariosTable, ScenariosColumn),
	)
}

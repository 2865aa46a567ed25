// Code generated by ent, DO NOT EDIT.

package supplierriskfactor

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the supplierriskfactor type in the database.
	Label = "supplier_risk_factor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "risk_factor_id"
	// FieldRiskScoreID holds the string denoting the risk_score_id field in the database.
	FieldRiskScoreID = "risk_score_id"
	// FieldFactorName holds the string denoting the factor_name field in the database.
	FieldFactorName = "factor_name"
	// FieldWeight holds the string denoting the weight field in the database.
	FieldWeight = "weight"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// EdgeRiskScore holds the string denoting the risk_score edge name in mutations.
	EdgeRiskScore = "risk_score"
	// SupplierRiskScoreFieldID holds the string denoting the ID field of the SupplierRiskScore.
	SupplierRiskScoreFieldID = "supplier_risk_id"
	// Table holds the table name of the supplierriskfactor in the database.
	Table = "supplier_risk_factors"
	// RiskScoreTable is the table that holds the risk_score relation/edge.
	RiskScoreTable = "supplier_risk_factors"
	// RiskScoreInverseTable is the table name for the SupplierRiskScore entity.
	// It exists in this package in order to avoid circular dependency with the "supplierriskscore" package.
	RiskScoreInverseTable = "supplier_risk_scores"
	// RiskScoreColumn is the table column denoting the risk_score relation/edge.
	RiskScoreColumn = "risk_score_id"
)

// Columns holds all SQL columns for supplierriskfactor fields.
var Columns = []string{
	FieldID,
	FieldRiskScoreID,
	FieldFactorName,
	FieldWeight,
	FieldValue,
	FieldEvidence,
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

// OrderOption defines the ordering options for the SupplierRiskFactor queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRiskScoreID orders the results by the risk_score_id field.
func ByRiskScoreID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskScoreID, opts...).ToFunc()
}

// ByFactorName orders the results by the factor_name field.
func ByFactorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactorName, opts...).ToFunc()
}

// ByWeight orders the results by the weight field.
func ByWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeight, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByRiskScoreField orders the results by risk_score field.
func ByRiskScoreField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRiskScoreStep(), sql.OrderByField(field, opts...))
	}
}
func newRiskScoreStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RiskScoreInverseTable, SupplierRiskScoreFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RiskScoreTable, RiskScoreColumn),
	)
}

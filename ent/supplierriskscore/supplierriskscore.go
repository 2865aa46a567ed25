// Code generated by ent, DO NOT EDIT.

package supplierriskscore

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the supplierriskscore type in the database.
	Label = "supplier_risk_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "supplier_risk_id"
	// FieldSupplierID holds the string denoting the supplier_id field in the database.
	FieldSupplierID = "supplier_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRiskTier holds the string denoting the risk_tier field in the database.
	FieldRiskTier = "risk_tier"
	// FieldCalculatedAt holds the string denoting the calculated_at field in the database.
	FieldCalculatedAt = "calculated_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFactors holds the string denoting the factors edge name in mutations.
	EdgeFactors = "factors"
	// SupplierRiskFactorFieldID holds the string denoting the ID field of the SupplierRiskFactor.
	SupplierRiskFactorFieldID = "risk_factor_id"
	// Table holds the table name of the supplierriskscore in the database.
	Table = "supplier_risk_scores"
	// FactorsTable is the table that holds the factors relation/edge.
	FactorsTable = "supplier_risk_factors"
	// FactorsInverseTable is the table name for the SupplierRiskFactor entity.
	// It exists in this package in order to avoid circular dependency with the "supplierriskfactor" package.
	FactorsInverseTable = "supplier_risk_factors"
	// FactorsColumn is the table column denoting the factors relation/edge.
	FactorsColumn = "risk_score_id"
)

// Columns holds all SQL columns for supplierriskscore fields.
var Columns = []string{
	FieldID,
	FieldSupplierID,
	FieldScore,
	FieldRiskTier,
	FieldCalculatedAt,
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
	// DefaultCalculatedAt holds the default value on creation for the "calculated_at" field.
	DefaultCalculatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// RiskTier defines the type for the "risk_tier" enum field.
type RiskTier string

// RiskTier values.
const (
	RiskTierLow      RiskTier = "low"
	RiskTierMedium   RiskTier = "medium"
	RiskTierHigh     RiskTier = "high"
	RiskTierCritical RiskTier = "critical"
)

func (rt RiskTier) String() string {
	return string(rt)
}

// RiskTierValidator is a validator for the "risk_tier" field enum values. It is called by the builders before save.
func RiskTierValidator(rt RiskTier) error {
	switch rt {
	case RiskTierLow, RiskTierMedium, RiskTierHigh, RiskTierCritical:
		return nil
	default:
		return fmt.Errorf("supplierriskscore: invalid enum value for risk_tier field: %q", rt)
	}
}

// OrderOption defines the ordering options for the SupplierRiskScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySupplierID orders the results by the supplier_id field.
func BySupplierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRiskTier orders the results by the risk_tier field.
func ByRiskTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTier, opts...).ToFunc()
}

// ByCalculatedAt orders the results by the calculated_at field.
func ByCalculatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFactorsCount orders the results by factors count.
func ByFactorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFactorsStep(), opts...)
	}
}

// ByFactors orders the results by factors terms.
func ByFactors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFactorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFactorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FactorsInverseTable, SupplierRiskFactorFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FactorsTable, FactorsColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package creditscore

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the creditscore type in the database.
	Label = "credit_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "credit_score_id"
	// FieldCustomerID holds the string denoting the customer_id field in the database.
	FieldCustomerID = "customer_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRiskTier holds the string denoting the risk_tier field in the database.
	FieldRiskTier = "risk_tier"
	// FieldCreditLimit holds the string denoting the credit_limit field in the database.
	FieldCreditLimit = "credit_limit"
	// FieldOutstandingBalance holds the string denoting the outstanding_balance field in the database.
	FieldOutstandingBalance = "outstanding_balance"
	// FieldHoldActive holds the string denoting the hold_active field in the database.
	FieldHoldActive = "hold_active"
	// FieldHoldReason holds the string denoting the hold_reason field in the database.
	FieldHoldReason = "hold_reason"
	// FieldFactors holds the string denoting the factors field in the database.
	FieldFactors = "factors"
	// FieldCalculatedAt holds the string denoting the calculated_at field in the database.
	FieldCalculatedAt = "calculated_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the creditscore in the database.
	Table = "credit_scores"
)

// Columns holds all SQL columns for creditscore fields.
var Columns = []string{
	FieldID,
	FieldCustomerID,
	FieldScore,
	FieldRiskTier,
	FieldCreditLimit,
	FieldOutstandingBalance,
	FieldHoldActive,
	FieldHoldReason,
	FieldFactors,
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
	// DefaultCreditLimit holds the default value on creation for the "credit_limit" field.
	DefaultCreditLimit float64
	// DefaultOutstandingBalance holds the default value on creation for the "outstanding_balance" field.
	DefaultOutstandingBalance float64
	// DefaultHoldActive holds the default value on creation for the "hold_active" field.
	DefaultHoldActive bool
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
		return fmt.Errorf("creditscore: invalid enum value for risk_tier field: %q", rt)
	}
}

// OrderOption defines the ordering options for the CreditScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCustomerID orders the results by the customer_id field.
func ByCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRiskTier orders the results by the risk_tier field.
func ByRiskTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskTier, opts...).ToFunc()
}

// ByCreditLimit orders the results by the credit_limit field.
func ByCreditLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditLimit, opts...).ToFunc()
}

// ByOutstandingBalance orders the results by the outstanding_balance field.
func ByOutstandingBalance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutstandingBalance, opts...).ToFunc()
}

// ByHoldActive orders the results by the hold_active field.
func ByHoldActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoldActive, opts...).ToFunc()
}

// ByHoldReason orders the results by the hold_reason field.
func ByHoldReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoldReason, opts...).ToFunc()
}

// ByCalculatedAt orders the results by the calculated_at field.
func ByCalculatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

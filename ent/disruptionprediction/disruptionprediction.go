// Code generated by ent, DO NOT EDIT.

package disruptionprediction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the disruptionprediction type in the database.
	Label = "disruption_prediction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "prediction_id"
	// FieldSupplierID holds the string denoting the supplier_id field in the database.
	FieldSupplierID = "supplier_id"
	// FieldPurchaseOrderID holds the string denoting the purchase_order_id field in the database.
	FieldPurchaseOrderID = "purchase_order_id"
	// FieldDisruptionType holds the string denoting the disruption_type field in the database.
	FieldDisruptionType = "disruption_type"
	// FieldProbability holds the string denoting the probability field in the database.
	FieldProbability = "probability"
	// FieldPredictedDate holds the string denoting the predicted_date field in the database.
	FieldPredictedDate = "predicted_date"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldSuggestedActions holds the string denoting the suggested_actions field in the database.
	FieldSuggestedActions = "suggested_actions"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the disruptionprediction in the database.
	Table = "disruption_predictions"
)

// Columns holds all SQL columns for disruptionprediction fields.
var Columns = []string{
	FieldID,
	FieldSupplierID,
	FieldPurchaseOrderID,
	FieldDisruptionType,
	FieldProbability,
	FieldPredictedDate,
	FieldRationale,
	FieldSuggestedActions,
	FieldStatus,
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

// DisruptionType defines the type for the "disruption_type" enum field.
type DisruptionType string

// DisruptionType values.
const (
	DisruptionTypeLateDelivery DisruptionType = "late_delivery"
	DisruptionTypeStockout     DisruptionType = "stockout"
	DisruptionTypePriceSpike   DisruptionType = "price_spike"
	DisruptionTypeQuality      DisruptionType = "quality"
)

func (dt DisruptionType) String() string {
	return string(dt)
}

// DisruptionTypeValidator is a validator for the "disruption_type" field enum values. It is called by the builders before save.
func DisruptionTypeValidator(dt DisruptionType) error {
	switch dt {
	case DisruptionTypeLateDelivery, DisruptionTypeStockout, DisruptionTypePriceSpike, DisruptionTypeQuality:
		return nil
	default:
		return fmt.Errorf("disruptionprediction: invalid enum value for disruption_type field: %q", dt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen      Status = "open"
	StatusConfirmed Status = "confirmed"
	StatusDismissed Status = "dismissed"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusConfirmed, StatusDismissed, StatusExpired:
		return nil
	default:
		return fmt.Errorf("disruptionprediction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DisruptionPrediction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySupplierID orders the results by the supplier_id field.
func BySupplierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierID, opts...).ToFunc()
}

// ByPurchaseOrderID orders the results by the purchase_order_id field.
func ByPurchaseOrderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseOrderID, opts...).ToFunc()
}

// ByDisruptionType orders the results by the disruption_type field.
func ByDisruptionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisruptionType, opts...).ToFunc()
}

// ByProbability orders the results by the probability field.
func ByProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProbability, opts...).ToFunc()
}

// ByPredictedDate orders the results by the predicted_date field.
func ByPredictedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictedDate, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

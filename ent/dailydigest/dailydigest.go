// Code generated by ent, DO NOT EDIT.

package dailydigest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailydigest type in the database.
	Label = "daily_digest"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "digest_id"
	// FieldDigestDate holds the string denoting the digest_date field in the database.
	FieldDigestDate = "digest_date"
	// FieldUserRole holds the string denoting the user_role field in the database.
	FieldUserRole = "user_role"
	// FieldHeadline holds the string denoting the headline field in the database.
	FieldHeadline = "headline"
	// FieldSections holds the string denoting the sections field in the database.
	FieldSections = "sections"
	// FieldDeliveryStatus holds the string denoting the delivery_status field in the database.
	FieldDeliveryStatus = "delivery_status"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// Table holds the table name of the dailydigest in the database.
	Table = "daily_digests"
)

// Columns holds all SQL columns for dailydigest fields.
var Columns = []string{
	FieldID,
	FieldDigestDate,
	FieldUserRole,
	FieldHeadline,
	FieldSections,
	FieldDeliveryStatus,
	FieldTokensUsed,
	FieldCreatedAt,
	FieldDeliveredAt,
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
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// UserRole defines the type for the "user_role" enum field.
type UserRole string

// UserRole values.
const (
	UserRoleCfo          UserRole = "cfo"
	UserRoleAccountant   UserRole = "accountant"
	UserRoleSalesManager UserRole = "sales_manager"
	UserRoleOperations   UserRole = "operations"
)

func (ur UserRole) String() string {
	return string(ur)
}

// UserRoleValidator is a validator for the "user_role" field enum values. It is called by the builders before save.
func UserRoleValidator(ur UserRole) error {
	switch ur {
	case UserRoleCfo, UserRoleAccountant, UserRoleSalesManager, UserRoleOperations:
		return nil
	default:
		return fmt.Errorf("dailydigest: invalid enum value for user_role field: %q", ur)
	}
}

// DeliveryStatus defines the type for the "delivery_status" enum field.
type DeliveryStatus string

// DeliveryStatusPending is the default value of the DeliveryStatus enum.
const DefaultDeliveryStatus = DeliveryStatusPending

// DeliveryStatus values.
const (
	DeliveryStatusPending         DeliveryStatus = "pending"
	DeliveryStatusDelivered       DeliveryStatus = "delivered"
	DeliveryStatusChannelDisabled DeliveryStatus = "channel_disabled"
	DeliveryStatusFailed          DeliveryStatus = "failed"
)

func (ds DeliveryStatus) String() string {
	return string(ds)
}

// DeliveryStatusValidator is a validator for the "delivery_status" field enum values. It is called by the builders before save.
func DeliveryStatusValidator(ds DeliveryStatus) error {
	switch ds {
	case DeliveryStatusPending, DeliveryStatusDelivered, DeliveryStatusChannelDisabled, DeliveryStatusFailed:
		return nil
	default:
		return fmt.Errorf("dailydigest: invalid enum value for delivery_status field: %q", ds)
	}
}

// OrderOption defines the ordering options for the DailyDigest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDigestDate orders the results by the digest_date field.
func ByDigestDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigestDate, opts...).ToFunc()
}

// ByUserRole orders the results by the user_role field.
func ByUserRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserRole, opts...).ToFunc()
}

// ByHeadline orders the results by the headline field.
func ByHeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeadline, opts...).ToFunc()
}

// ByDeliveryStatus orders the results by the delivery_status field.
func ByDeliveryStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryStatus, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

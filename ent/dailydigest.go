// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/dailydigest"
)

// DailyDigest is the model entity for the DailyDigest schema.
type DailyDigest struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Day the digest covers, truncated to midnight UTC
	DigestDate time.Time `json:"digest_date,omitempty"`
	// UserRole holds the value of the "user_role" field.
	UserRole dailydigest.UserRole `json:"user_role,omitempty"`
	// Headline holds the value of the "headline" field.
	Headline string `json:"headline,omitempty"`
	// Ordered {title, body, severity} blocks
	Sections []map[string]interface{} `json:"sections,omitempty"`
	// DeliveryStatus holds the value of the "delivery_status" field.
	DeliveryStatus dailydigest.DeliveryStatus `json:"delivery_status,omitempty"`
	// TokensUsed holds the value of the "tokens_used" field.
	TokensUsed int `json:"tokens_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DeliveredAt holds the value of the "delivered_at" field.
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyDigest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailydigest.FieldSections:
			values[i] = new([]byte)
		case dailydigest.FieldTokensUsed:
			values[i] = new(sql.NullInt64)
		case dailydigest.FieldID, dailydigest.FieldUserRole, dailydigest.FieldHeadline, dailydigest.FieldDeliveryStatus:
			values[i] = new(sql.NullString)
		case dailydigest.FieldDigestDate, dailydigest.FieldCreatedAt, dailydigest.FieldDeliveredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyDigest fields.
func (_m *DailyDigest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailydigest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dailydigest.FieldDigestDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field digest_date", values[i])
			} else if value.Valid {
				_m.DigestDate = value.Time
			}
		case dailydigest.FieldUserRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_role", values[i])
			} else if value.Valid {
				_m.UserRole = dailydigest.UserRole(value.String)
			}
		case dailydigest.FieldHeadline:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field headline", values[i])
			} else if value.Valid {
				_m.Headline = value.String
			}
		case dailydigest.FieldSections:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sections", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sections); err != nil {
					return fmt.Errorf("unmarshal field sections: %w", err)
				}
			}
		case dailydigest.FieldDeliveryStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_status", values[i])
			} else if value.Valid {
				_m.DeliveryStatus = dailydigest.DeliveryStatus(value.String)
			}
		case dailydigest.FieldTokensUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_used", values[i])
			} else if value.Valid {
				_m.TokensUsed = int(value.Int64)
			}
		case dailydigest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dailydigest.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = new(time.Time)
				*_m.DeliveredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyDigest.
// This includes values selected through modifiers, order, etc.
func (_m *DailyDigest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyDigest.
// Note that you need to call DailyDigest.Unwrap() before calling this method if this DailyDigest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyDigest) Update() *DailyDigestUpdateOne {
	return NewDailyDigestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyDigest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyDigest) Unwrap() *DailyDigest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyDigest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyDigest) String() string {
	var builder strings.Builder
	builder.WriteString("DailyDigest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("digest_date=")
	builder.WriteString(_m.DigestDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_role=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserRole))
	builder.WriteString(", ")
	builder.WriteString("headline=")
	builder.WriteString(_m.Headline)
	builder.WriteString(", ")
	builder.WriteString("sections=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sections))
	builder.WriteString(", ")
	builder.WriteString("delivery_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeliveryStatus))
	builder.WriteString(", ")
	builder.WriteString("tokens_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeliveredAt; v != nil {
		builder.WriteString("delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DailyDigests is a parsable slice of DailyDigest.
type DailyDigests []*DailyDigest

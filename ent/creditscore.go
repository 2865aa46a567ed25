// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/creditscore"
)

// CreditScore is the model entity for the CreditScore schema.
type CreditScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CustomerID holds the value of the "customer_id" field.
	CustomerID int64 `json:"customer_id,omitempty"`
	// 0-100, higher is safer
	Score float64 `json:"score,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier creditscore.RiskTier `json:"risk_tier,omitempty"`
	// CreditLimit holds the value of the "credit_limit" field.
	CreditLimit float64 `json:"credit_limit,omitempty"`
	// OutstandingBalance holds the value of the "outstanding_balance" field.
	OutstandingBalance float64 `json:"outstanding_balance,omitempty"`
	// HoldActive holds the value of the "hold_active" field.
	HoldActive bool `json:"hold_active,omitempty"`
	// HoldReason holds the value of the "hold_reason" field.
	HoldReason *string `json:"hold_reason,omitempty"`
	// Component scores that produced the composite
	Factors map[string]interface{} `json:"factors,omitempty"`
	// CalculatedAt holds the value of the "calculated_at" field.
	CalculatedAt time.Time `json:"calculated_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditscore.FieldFactors:
			values[i] = new([]byte)
		case creditscore.FieldHoldActive:
			values[i] = new(sql.NullBool)
		case creditscore.FieldScore, creditscore.FieldCreditLimit, creditscore.FieldOutstandingBalance:
			values[i] = new(sql.NullFloat64)
		case creditscore.FieldCustomerID:
			values[i] = new(sql.NullInt64)
		case creditscore.FieldID, creditscore.FieldRiskTier, creditscore.FieldHoldReason:
			values[i] = new(sql.NullString)
		case creditscore.FieldCalculatedAt, creditscore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditScore fields.
func (_m *CreditScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case creditscore.FieldCustomerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field customer_id", values[i])
			} else if value.Valid {
				_m.CustomerID = value.Int64
			}
		case creditscore.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case creditscore.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = creditscore.RiskTier(value.String)
			}
		case creditscore.FieldCreditLimit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field credit_limit", values[i])
			} else if value.Valid {
				_m.CreditLimit = value.Float64
			}
		case creditscore.FieldOutstandingBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field outstanding_balance", values[i])
			} else if value.Valid {
				_m.OutstandingBalance = value.Float64
			}
		case creditscore.FieldHoldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hold_active", values[i])
			} else if value.Valid {
				_m.HoldActive = value.Bool
			}
		case creditscore.FieldHoldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hold_reason", values[i])
			} else if value.Valid {
				_m.HoldReason = new(string)
				*_m.HoldReason = value.String
			}
		case creditscore.FieldFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Factors); err != nil {
					return fmt.Errorf("unmarshal field factors: %w", err)
				}
			}
		case creditscore.FieldCalculatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_at", values[i])
			} else if value.Valid {
				_m.CalculatedAt = value.Time
			}
		case creditscore.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditScore.
// This includes values selected through modifiers, order, etc.
func (_m *CreditScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CreditScore.
// Note that you need to call CreditScore.Unwrap() before calling this method if this CreditScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditScore) Update() *CreditScoreUpdateOne {
	return NewCreditScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditScore) Unwrap() *CreditScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditScore) String() string {
	var builder strings.Builder
	builder.WriteString("CreditScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("customer_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CustomerID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskTier))
	builder.WriteString(", ")
	builder.WriteString("credit_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreditLimit))
	builder.WriteString(", ")
	builder.WriteString("outstanding_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutstandingBalance))
	builder.WriteString(", ")
	builder.WriteString("hold_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.HoldActive))
	builder.WriteString(", ")
	if v := _m.HoldReason; v != nil {
		builder.WriteString("hold_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Factors))
	builder.WriteString(", ")
	builder.WriteString("calculated_at=")
	builder.WriteString(_m.CalculatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditScores is a parsable slice of CreditScore.
type CreditScores []*CreditScore

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/disruptionprediction"
)

// DisruptionPrediction is the model entity for the DisruptionPrediction schema.
type DisruptionPrediction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID int64 `json:"supplier_id,omitempty"`
	// PurchaseOrderID holds the value of the "purchase_order_id" field.
	PurchaseOrderID *int64 `json:"purchase_order_id,omitempty"`
	// DisruptionType holds the value of the "disruption_type" field.
	DisruptionType disruptionprediction.DisruptionType `json:"disruption_type,omitempty"`
	// Probability holds the value of the "probability" field.
	Probability float64 `json:"probability,omitempty"`
	// PredictedDate holds the value of the "predicted_date" field.
	PredictedDate *time.Time `json:"predicted_date,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// SuggestedActions holds the value of the "suggested_actions" field.
	SuggestedActions []map[string]interface{} `json:"suggested_actions,omitempty"`
	// Status holds the value of the "status" field.
	Status disruptionprediction.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DisruptionPrediction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case disruptionprediction.FieldSuggestedActions:
			values[i] = new([]byte)
		case disruptionprediction.FieldProbability:
			values[i] = new(sql.NullFloat64)
		case disruptionprediction.FieldSupplierID, disruptionprediction.FieldPurchaseOrderID:
			values[i] = new(sql.NullInt64)
		case disruptionprediction.FieldID, disruptionprediction.FieldDisruptionType, disruptionprediction.FieldRationale, disruptionprediction.FieldStatus:
			values[i] = new(sql.NullString)
		case disruptionprediction.FieldPredictedDate, disruptionprediction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DisruptionPrediction fields.
func (_m *DisruptionPrediction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case disruptionprediction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case disruptionprediction.FieldSupplierID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value.Valid {
				_m.SupplierID = value.Int64
			}
		case disruptionprediction.FieldPurchaseOrderID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_order_id", values[i])
			} else if value.Valid {
				_m.PurchaseOrderID = new(int64)
				*_m.PurchaseOrderID = value.Int64
			}
		case disruptionprediction.FieldDisruptionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field disruption_type", values[i])
			} else if value.Valid {
				_m.DisruptionType = disruptionprediction.DisruptionType(value.String)
			}
		case disruptionprediction.FieldProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field probability", values[i])
			} else if value.Valid {
				_m.Probability = value.Float64
			}
		case disruptionprediction.FieldPredictedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field predicted_date", values[i])
			} else if value.Valid {
				_m.PredictedDate = new(time.Time)
				*_m.PredictedDate = value.Time
			}
		case disruptionprediction.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case disruptionprediction.FieldSuggestedActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuggestedActions); err != nil {
					return fmt.Errorf("unmarshal field suggested_actions: %w", err)
				}
			}
		case disruptionprediction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = disruptionprediction.Status(value.String)
			}
		case disruptionprediction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DisruptionPrediction.
// This includes values selected through modifiers, order, etc.
func (_m *DisruptionPrediction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DisruptionPrediction.
// Note that you need to call DisruptionPrediction.Unwrap() before calling this method if this DisruptionPrediction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DisruptionPrediction) Update() *DisruptionPredictionUpdateOne {
	return NewDisruptionPredictionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DisruptionPrediction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DisruptionPrediction) Unwrap() *DisruptionPrediction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DisruptionPrediction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DisruptionPrediction) String() string {
	var builder strings.Builder
	builder.WriteString("DisruptionPrediction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("supplier_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierID))
	builder.WriteString(", ")
	if v := _m.PurchaseOrderID; v != nil {
		builder.WriteString("purchase_order_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("disruption_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisruptionType))
	builder.WriteString(", ")
	builder.WriteString("probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.Probability))
	builder.WriteString(", ")
	if v := _m.PredictedDate; v != nil {
		builder.WriteString("predicted_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("suggested_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestedActions))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DisruptionPredictions is a parsable slice of DisruptionPrediction.
type DisruptionPredictions []*DisruptionPrediction

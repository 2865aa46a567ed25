// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/supplychainalert"
)

// SupplyChainAlert is the model entity for the SupplyChainAlert schema.
type SupplyChainAlert struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity supplychainalert.Severity `json:"severity,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID *int64 `json:"supplier_id,omitempty"`
	// PredictionID holds the value of the "prediction_id" field.
	PredictionID *string `json:"prediction_id,omitempty"`
	// Acknowledged holds the value of the "acknowledged" field.
	Acknowledged bool `json:"acknowledged,omitempty"`
	// AcknowledgedBy holds the value of the "acknowledged_by" field.
	AcknowledgedBy *string `json:"acknowledged_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AcknowledgedAt holds the value of the "acknowledged_at" field.
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupplyChainAlert) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supplychainalert.FieldAcknowledged:
			values[i] = new(sql.NullBool)
		case supplychainalert.FieldSupplierID:
			values[i] = new(sql.NullInt64)
		case supplychainalert.FieldID, supplychainalert.FieldSeverity, supplychainalert.FieldTitle, supplychainalert.FieldBody, supplychainalert.FieldPredictionID, supplychainalert.FieldAcknowledgedBy:
			values[i] = new(sql.NullString)
		case supplychainalert.FieldCreatedAt, supplychainalert.FieldAcknowledgedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplyChainAlert fields.
func (_m *SupplyChainAlert) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supplychainalert.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case supplychainalert.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = supplychainalert.Severity(value.String)
			}
		case supplychainalert.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case supplychainalert.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case supplychainalert.FieldSupplierID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value.Valid {
				_m.SupplierID = new(int64)
				*_m.SupplierID = value.Int64
			}
		case supplychainalert.FieldPredictionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_id", values[i])
			} else if value.Valid {
				_m.PredictionID = new(string)
				*_m.PredictionID = value.String
			}
		case supplychainalert.FieldAcknowledged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged", values[i])
			} else if value.Valid {
				_m.Acknowledged = value.Bool
			}
		case supplychainalert.FieldAcknowledgedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_by", values[i])
			} else if value.Valid {
				_m.AcknowledgedBy = new(string)
				*_m.AcknowledgedBy = value.String
			}
		case supplychainalert.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case supplychainalert.FieldAcknowledgedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acknowledged_at", values[i])
			} else if value.Valid {
				_m.AcknowledgedAt = new(time.Time)
				*_m.AcknowledgedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SupplyChainAlert.
// This includes values selected through modifiers, order, etc.
func (_m *SupplyChainAlert) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SupplyChainAlert.
// Note that you need to call SupplyChainAlert.Unwrap() before calling this method if this SupplyChainAlert
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplyChainAlert) Update() *SupplyChainAlertUpdateOne {
	return NewSupplyChainAlertClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplyChainAlert entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplyChainAlert) Unwrap() *SupplyChainAlert {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplyChainAlert is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplyChainAlert) String() string {
	var builder strings.Builder
	builder.WriteString("SupplyChainAlert(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	if v := _m.SupplierID; v != nil {
		builder.WriteString("supplier_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PredictionID; v != nil {
		builder.WriteString("prediction_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("acknowledged=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acknowledged))
	builder.WriteString(", ")
	if v := _m.AcknowledgedBy; v != nil {
		builder.WriteString("acknowledged_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AcknowledgedAt; v != nil {
		builder.WriteString("acknowledged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SupplyChainAlerts is a parsable slice of SupplyChainAlert.
type SupplyChainAlerts []*SupplyChainAlert

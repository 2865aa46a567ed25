// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/closingstep"
	"github.com/steward-ai/steward/ent/monthendclosing"
)

// ClosingStep is the model entity for the ClosingStep schema.
type ClosingStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ClosingID holds the value of the "closing_id" field.
	ClosingID string `json:"closing_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// StepIndex holds the value of the "step_index" field.
	StepIndex int `json:"step_index,omitempty"`
	// Status holds the value of the "status" field.
	Status closingstep.Status `json:"status,omitempty"`
	// Details holds the value of the "details" field.
	Details map[string]interface{} `json:"details,omitempty"`
	// BlockedReason holds the value of the "blocked_reason" field.
	BlockedReason *string `json:"blocked_reason,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClosingStepQuery when eager-loading is set.
	Edges        ClosingStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClosingStepEdges holds the relations/edges for other nodes in the graph.
type ClosingStepEdges struct {
	// Closing holds the value of the closing edge.
	Closing *MonthEndClosing `json:"closing,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClosingOrErr returns the Closing value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClosingStepEdges) ClosingOrErr() (*MonthEndClosing, error) {
	if e.Closing != nil {
		return e.Closing, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: monthendclosing.Label}
	}
	return nil, &NotLoadedError{edge: "closing"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClosingStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case closingstep.FieldDetails:
			values[i] = new([]byte)
		case closingstep.FieldStepIndex:
			values[i] = new(sql.NullInt64)
		case closingstep.FieldID, closingstep.FieldClosingID, closingstep.FieldStepName, closingstep.FieldStatus, closingstep.FieldBlockedReason:
			values[i] = new(sql.NullString)
		case closingstep.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClosingStep fields.
func (_m *ClosingStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case closingstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case closingstep.FieldClosingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field closing_id", values[i])
			} else if value.Valid {
				_m.ClosingID = value.String
			}
		case closingstep.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case closingstep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case closingstep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = closingstep.Status(value.String)
			}
		case closingstep.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case closingstep.FieldBlockedReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_reason", values[i])
			} else if value.Valid {
				_m.BlockedReason = new(string)
				*_m.BlockedReason = value.String
			}
		case closingstep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClosingStep.
// This includes values selected through modifiers, order, etc.
func (_m *ClosingStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClosing queries the "closing" edge of the ClosingStep entity.
func (_m *ClosingStep) QueryClosing() *MonthEndClosingQuery {
	return NewClosingStepClient(_m.config).QueryClosing(_m)
}

// Update returns a builder for updating this ClosingStep.
// Note that you need to call ClosingStep.Unwrap() before calling this method if this ClosingStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClosingStep) Update() *ClosingStepUpdateOne {
	return NewClosingStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClosingStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClosingStep) Unwrap() *ClosingStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ClosingStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClosingStep) String() string {
	var builder strings.Builder
	builder.WriteString("ClosingStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("closing_id=")
	builder.WriteString(_m.ClosingID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	if v := _m.BlockedReason; v != nil {
		builder.WriteString("blocked_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ClosingSteps is a parsable slice of ClosingStep.
type ClosingSteps []*ClosingStep

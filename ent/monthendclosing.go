// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/monthendclosing"
)

// MonthEndClosing is the model entity for the MonthEndClosing schema.
type MonthEndClosing struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// YYYY-MM
	Period string `json:"period,omitempty"`
	// Status holds the value of the "status" field.
	Status monthendclosing.Status `json:"status,omitempty"`
	// 0-100
	ReadinessScore float64 `json:"readiness_score,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary map[string]interface{} `json:"summary,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MonthEndClosingQuery when eager-loading is set.
	Edges        MonthEndClosingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MonthEndClosingEdges holds the relations/edges for other nodes in the graph.
type MonthEndClosingEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*ClosingStep `json:"steps,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e MonthEndClosingEdges) StepsOrErr() ([]*ClosingStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonthEndClosing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monthendclosing.FieldSummary:
			values[i] = new([]byte)
		case monthendclosing.FieldReadinessScore:
			values[i] = new(sql.NullFloat64)
		case monthendclosing.FieldID, monthendclosing.FieldPeriod, monthendclosing.FieldStatus:
			values[i] = new(sql.NullString)
		case monthendclosing.FieldStartedAt, monthendclosing.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonthEndClosing fields.
func (_m *MonthEndClosing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monthendclosing.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case monthendclosing.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = value.String
			}
		case monthendclosing.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = monthendclosing.Status(value.String)
			}
		case monthendclosing.FieldReadinessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field readiness_score", values[i])
			} else if value.Valid {
				_m.ReadinessScore = value.Float64
			}
		case monthendclosing.FieldSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Summary); err != nil {
					return fmt.Errorf("unmarshal field summary: %w", err)
				}
			}
		case monthendclosing.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case monthendclosing.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MonthEndClosing.
// This includes values selected through modifiers, order, etc.
func (_m *MonthEndClosing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the MonthEndClosing entity.
func (_m *MonthEndClosing) QuerySteps() *ClosingStepQuery {
	return NewMonthEndClosingClient(_m.config).QuerySteps(_m)
}

// Update returns a builder for updating this MonthEndClosing.
// Note that you need to call MonthEndClosing.Unwrap() before calling this method if this MonthEndClosing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonthEndClosing) Update() *MonthEndClosingUpdateOne {
	return NewMonthEndClosingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonthEndClosing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonthEndClosing) Unwrap() *MonthEndClosing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonthEndClosing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonthEndClosing) String() string {
	var builder strings.Builder
	builder.WriteString("MonthEndClosing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("period=")
	builder.WriteString(_m.Period)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("readiness_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadinessScore))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Summary))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// MonthEndClosings is a parsable slice of MonthEndClosing.
type MonthEndClosings []*MonthEndClosing

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/forecastaccuracylog"
)

// ForecastAccuracyLog is the model entity for the ForecastAccuracyLog schema.
type ForecastAccuracyLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ForecastID holds the value of the "forecast_id" field.
	ForecastID string `json:"forecast_id,omitempty"`
	// TargetDate holds the value of the "target_date" field.
	TargetDate time.Time `json:"target_date,omitempty"`
	// ProjectedBalance holds the value of the "projected_balance" field.
	ProjectedBalance float64 `json:"projected_balance,omitempty"`
	// ActualBalance holds the value of the "actual_balance" field.
	ActualBalance float64 `json:"actual_balance,omitempty"`
	// Signed (projected-actual)/actual, 0 when actual is 0
	ErrorPct float64 `json:"error_pct,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt  time.Time `json:"evaluated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ForecastAccuracyLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case forecastaccuracylog.FieldProjectedBalance, forecastaccuracylog.FieldActualBalance, forecastaccuracylog.FieldErrorPct:
			values[i] = new(sql.NullFloat64)
		case forecastaccuracylog.FieldID, forecastaccuracylog.FieldForecastID:
			values[i] = new(sql.NullString)
		case forecastaccuracylog.FieldTargetDate, forecastaccuracylog.FieldEvaluatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ForecastAccuracyLog fields.
func (_m *ForecastAccuracyLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case forecastaccuracylog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case forecastaccuracylog.FieldForecastID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field forecast_id", values[i])
			} else if value.Valid {
				_m.ForecastID = value.String
			}
		case forecastaccuracylog.FieldTargetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_date", values[i])
			} else if value.Valid {
				_m.TargetDate = value.Time
			}
		case forecastaccuracylog.FieldProjectedBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field projected_balance", values[i])
			} else if value.Valid {
				_m.ProjectedBalance = value.Float64
			}
		case forecastaccuracylog.FieldActualBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_balance", values[i])
			} else if value.Valid {
				_m.ActualBalance = value.Float64
			}
		case forecastaccuracylog.FieldErrorPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field error_pct", values[i])
			} else if value.Valid {
				_m.ErrorPct = value.Float64
			}
		case forecastaccuracylog.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ForecastAccuracyLog.
// This includes values selected through modifiers, order, etc.
func (_m *ForecastAccuracyLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ForecastAccuracyLog.
// Note that you need to call ForecastAccuracyLog.Unwrap() before calling this method if this ForecastAccuracyLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ForecastAccuracyLog) Update() *ForecastAccuracyLogUpdateOne {
	return NewForecastAccuracyLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ForecastAccuracyLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ForecastAccuracyLog) Unwrap() *ForecastAccuracyLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ForecastAccuracyLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ForecastAccuracyLog) String() string {
	var builder strings.Builder
	builder.WriteString("ForecastAccuracyLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("forecast_id=")
	builder.WriteString(_m.ForecastID)
	builder.WriteString(", ")
	builder.WriteString("target_date=")
	builder.WriteString(_m.TargetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("projected_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectedBalance))
	builder.WriteString(", ")
	builder.WriteString("actual_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualBalance))
	builder.WriteString(", ")
	builder.WriteString("error_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorPct))
	builder.WriteString(", ")
	builder.WriteString("evaluated_at=")
	builder.WriteString(_m.EvaluatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ForecastAccuracyLogs is a parsable slice of ForecastAccuracyLog.
type ForecastAccuracyLogs []*ForecastAccuracyLog

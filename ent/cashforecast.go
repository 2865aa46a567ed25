// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/cashforecast"
)

// CashForecast is the model entity for the CashForecast schema.
type CashForecast struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ForecastDate holds the value of the "forecast_date" field.
	ForecastDate time.Time `json:"forecast_date,omitempty"`
	// TargetDate holds the value of the "target_date" field.
	TargetDate time.Time `json:"target_date,omitempty"`
	// OpeningBalance holds the value of the "opening_balance" field.
	OpeningBalance float64 `json:"opening_balance,omitempty"`
	// ExpectedInflows holds the value of the "expected_inflows" field.
	ExpectedInflows float64 `json:"expected_inflows,omitempty"`
	// ExpectedOutflows holds the value of the "expected_outflows" field.
	ExpectedOutflows float64 `json:"expected_outflows,omitempty"`
	// ProjectedBalance holds the value of the "projected_balance" field.
	ProjectedBalance float64 `json:"projected_balance,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// Per-source inflow/outflow components
	Breakdown map[string]interface{} `json:"breakdown,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CashForecastQuery when eager-loading is set.
	Edges        CashForecastEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CashForecastEdges holds the relations/edges for other nodes in the graph.
type CashForecastEdges struct {
	// Scenarios holds the value of the scenarios edge.
	Scenarios []*ForecastScenario `json:"scenarios,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScenariosOrErr returns the Scenarios value or an error if the edge
// was not loaded in eager-loading.
func (e CashForecastEdges) ScenariosOrErr() ([]*ForecastScenario, error) {
	if e.loadedTypes[0] {
		return e.Scenarios, nil
	}
	return nil, &NotLoadedError{edge: "scenarios"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CashForecast) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cashforecast.FieldBreakdown:
			values[i] = new([]byte)
		case cashforecast.FieldOpeningBalance, cashforecast.FieldExpectedInflows, cashforecast.FieldExpectedOutflows, cashforecast.FieldProjectedBalance, cashforecast.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case cashforecast.FieldID:
			values[i] = new(sql.NullString)
		case cashforecast.FieldForecastDate, cashforecast.FieldTargetDate, cashforecast.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CashForecast fields.
func (_m *CashForecast) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cashforecast.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cashforecast.FieldForecastDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field forecast_date", values[i])
			} else if value.Valid {
				_m.ForecastDate = value.Time
			}
		case cashforecast.FieldTargetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_date", values[i])
			} else if value.Valid {
				_m.TargetDate = value.Time
			}
		case cashforecast.FieldOpeningBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field opening_balance", values[i])
			} else if value.Valid {
				_m.OpeningBalance = value.Float64
			}
		case cashforecast.FieldExpectedInflows:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_inflows", values[i])
			} else if value.Valid {
				_m.ExpectedInflows = value.Float64
			}
		case cashforecast.FieldExpectedOutflows:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field expected_outflows", values[i])
			} else if value.Valid {
				_m.ExpectedOutflows = value.Float64
			}
		case cashforecast.FieldProjectedBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field projected_balance", values[i])
			} else if value.Valid {
				_m.ProjectedBalance = value.Float64
			}
		case cashforecast.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case cashforecast.FieldBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Breakdown); err != nil {
					return fmt.Errorf("unmarshal field breakdown: %w", err)
				}
			}
		case cashforecast.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CashForecast.
// This includes values selected through modifiers, order, etc.
func (_m *CashForecast) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScenarios queries the "scenarios" edge of the CashForecast entity.
func (_m *CashForecast) QueryScenarios() *ForecastScenarioQuery {
	return NewCashForecastClient(_m.config).QueryScenarios(_m)
}

// Update returns a builder for updating this CashForecast.
// Note that you need to call CashForecast.Unwrap() before calling this method if this CashForecast
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CashForecast) Update() *CashForecastUpdateOne {
	return NewCashForecastClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CashForecast entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CashForecast) Unwrap() *CashForecast {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CashForecast is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CashForecast) String() string {
	var builder strings.Builder
	builder.WriteString("CashForecast(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("forecast_date=")
	builder.WriteString(_m.ForecastDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("target_date=")
	builder.WriteString(_m.TargetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("opening_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.OpeningBalance))
	builder.WriteString(", ")
	builder.WriteString("expected_inflows=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedInflows))
	builder.WriteString(", ")
	builder.WriteString("expected_outflows=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedOutflows))
	builder.WriteString(", ")
	builder.WriteString("projected_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectedBalance))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.Breakdown))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CashForecasts is a parsable slice of CashForecast.
type CashForecasts []*CashForecast

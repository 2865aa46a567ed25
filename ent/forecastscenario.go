// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/cashforecast"
	"github.com/steward-ai/steward/ent/forecastscenario"
)

// ForecastScenario is the model entity for the ForecastScenario schema.
type ForecastScenario struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ForecastID holds the value of the "forecast_id" field.
	ForecastID string `json:"forecast_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Ordered list of {kind, record_id, amount, shift_days}
	Adjustments []map[string]interface{} `json:"adjustments,omitempty"`
	// ProjectedBalance holds the value of the "projected_balance" field.
	ProjectedBalance float64 `json:"projected_balance,omitempty"`
	// projected_balance minus the base forecast
	Delta float64 `json:"delta,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ForecastScenarioQuery when eager-loading is set.
	Edges        ForecastScenarioEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ForecastScenarioEdges holds the relations/edges for other nodes in the graph.
type ForecastScenarioEdges struct {
	// Forecast holds the value of the forecast edge.
	Forecast *CashForecast `json:"forecast,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ForecastOrErr returns the Forecast value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ForecastScenarioEdges) ForecastOrErr() (*CashForecast, error) {
	if e.Forecast != nil {
		return e.Forecast, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: cashforecast.Label}
	}
	return nil, &NotLoadedError{edge: "forecast"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ForecastScenario) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case forecastscenario.FieldAdjustments:
			values[i] = new([]byte)
		case forecastscenario.FieldProjectedBalance, forecastscenario.FieldDelta:
			values[i] = new(sql.NullFloat64)
		case forecastscenario.FieldID, forecastscenario.FieldForecastID, forecastscenario.FieldName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ForecastScenario fields.
func (_m *ForecastScenario) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case forecastscenario.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case forecastscenario.FieldForecastID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field forecast_id", values[i])
			} else if value.Valid {
				_m.ForecastID = value.String
			}
		case forecastscenario.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case forecastscenario.FieldAdjustments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field adjustments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Adjustments); err != nil {
					return fmt.Errorf("unmarshal field adjustments: %w", err)
				}
			}
		case forecastscenario.FieldProjectedBalance:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field projected_balance", values[i])
			} else if value.Valid {
				_m.ProjectedBalance = value.Float64
			}
		case forecastscenario.FieldDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field delta", values[i])
			} else if value.Valid {
				_m.Delta = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ForecastScenario.
// This includes values selected through modifiers, order, etc.
func (_m *ForecastScenario) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryForecast queries the "forecast" edge of the ForecastScenario entity.
func (_m *ForecastScenario) QueryForecast() *CashForecastQuery {
	return NewForecastScenarioClient(_m.config).QueryForecast(_m)
}

// Update returns a builder for updating this ForecastScenario.
// Note that you need to call ForecastScenario.Unwrap() before calling this method if this ForecastScenario
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ForecastScenario) Update() *ForecastScenarioUpdateOne {
	return NewForecastScenarioClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ForecastScenario entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ForecastScenario) Unwrap() *ForecastScenario {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ForecastScenario is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ForecastScenario) String() string {
	var builder strings.Builder
	builder.WriteString("ForecastScenario(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("forecast_id=")
	builder.WriteString(_m.ForecastID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("adjustments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Adjustments))
	builder.WriteString(", ")
	builder.WriteString("projected_balance=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectedBalance))
	builder.WriteString(", ")
	builder.WriteString("delta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Delta))
	builder.WriteByte(')')
	return builder.String()
}

// ForecastScenarios is a parsable slice of ForecastScenario.
type ForecastScenarios []*ForecastScenario

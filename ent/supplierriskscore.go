// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskScore is the model entity for the SupplierRiskScore schema.
type SupplierRiskScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID int64 `json:"supplier_id,omitempty"`
	// 0-100, higher is riskier
	Score float64 `json:"score,omitempty"`
	// RiskTier holds the value of the "risk_tier" field.
	RiskTier supplierriskscore.RiskTier `json:"risk_tier,omitempty"`
	// CalculatedAt holds the value of the "calculated_at" field.
	CalculatedAt time.Time `json:"calculated_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupplierRiskScoreQuery when eager-loading is set.
	Edges        SupplierRiskScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupplierRiskScoreEdges holds the relations/edges for other nodes in the graph.
type SupplierRiskScoreEdges struct {
	// Factors holds the value of the factors edge.
	Factors []*SupplierRiskFactor `json:"factors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FactorsOrErr returns the Factors value or an error if the edge
// was not loaded in eager-loading.
func (e SupplierRiskScoreEdges) FactorsOrErr() ([]*SupplierRiskFactor, error) {
	if e.loadedTypes[0] {
		return e.Factors, nil
	}
	return nil, &NotLoadedError{edge: "factors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupplierRiskScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supplierriskscore.FieldScore:
			values[i] = new(sql.NullFloat64)
		case supplierriskscore.FieldSupplierID:
			values[i] = new(sql.NullInt64)
		case supplierriskscore.FieldID, supplierriskscore.FieldRiskTier:
			values[i] = new(sql.NullString)
		case supplierriskscore.FieldCalculatedAt, supplierriskscore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplierRiskScore fields.
func (_m *SupplierRiskScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supplierriskscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case supplierriskscore.FieldSupplierID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value.Valid {
				_m.SupplierID = value.Int64
			}
		case supplierriskscore.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case supplierriskscore.FieldRiskTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_tier", values[i])
			} else if value.Valid {
				_m.RiskTier = supplierriskscore.RiskTier(value.String)
			}
		case supplierriskscore.FieldCalculatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_at", values[i])
			} else if value.Valid {
				_m.CalculatedAt = value.Time
			}
		case supplierriskscore.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SupplierRiskScore.
// This includes values selected through modifiers, order, etc.
func (_m *SupplierRiskScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFactors queries the "factors" edge of the SupplierRiskScore entity.
func (_m *SupplierRiskScore) QueryFactors() *SupplierRiskFactorQuery {
	return NewSupplierRiskScoreClient(_m.config).QueryFactors(_m)
}

// Update returns a builder for updating this SupplierRiskScore.
// Note that you need to call SupplierRiskScore.Unwrap() before calling this method if this SupplierRiskScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplierRiskScore) Update() *SupplierRiskScoreUpdateOne {
	return NewSupplierRiskScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplierRiskScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplierRiskScore) Unwrap() *SupplierRiskScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplierRiskScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplierRiskScore) String() string {
	var builder strings.Builder
	builder.WriteString("SupplierRiskScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("supplier_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierID))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("risk_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskTier))
	builder.WriteString(", ")
	builder.WriteString("calculated_at=")
	builder.WriteString(_m.CalculatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SupplierRiskScores is a parsable slice of SupplierRiskScore.
type SupplierRiskScores []*SupplierRiskScore

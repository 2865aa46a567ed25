// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/supplierriskfactor"
	"github.com/steward-ai/steward/ent/supplierriskscore"
)

// SupplierRiskFactor is the model entity for the SupplierRiskFactor schema.
type SupplierRiskFactor struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RiskScoreID holds the value of the "risk_score_id" field.
	RiskScoreID string `json:"risk_score_id,omitempty"`
	// FactorName holds the value of the "factor_name" field.
	FactorName string `json:"factor_name,omitempty"`
	// Weight holds the value of the "weight" field.
	Weight float64 `json:"weight,omitempty"`
	// 0-100 contribution before weighting
	Value float64 `json:"value,omitempty"`
	// Evidence holds the value of the "evidence" field.
	Evidence map[string]interface{} `json:"evidence,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupplierRiskFactorQuery when eager-loading is set.
	Edges        SupplierRiskFactorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupplierRiskFactorEdges holds the relations/edges for other nodes in the graph.
type SupplierRiskFactorEdges struct {
	// RiskScore holds the value of the risk_score edge.
	RiskScore *SupplierRiskScore `json:"risk_score,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RiskScoreOrErr returns the RiskScore value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupplierRiskFactorEdges) RiskScoreOrErr() (*SupplierRiskScore, error) {
	if e.RiskScore != nil {
		return e.RiskScore, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: supplierriskscore.Label}
	}
	return nil, &NotLoadedError{edge: "risk_score"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupplierRiskFactor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case supplierriskfactor.FieldEvidence:
			values[i] = new([]byte)
		case supplierriskfactor.FieldWeight, supplierriskfactor.FieldValue:
			values[i] = new(sql.NullFloat64)
		case supplierriskfactor.FieldID, supplierriskfactor.FieldRiskScoreID, supplierriskfactor.FieldFactorName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplierRiskFactor fields.
func (_m *SupplierRiskFactor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case supplierriskfactor.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case supplierriskfactor.FieldRiskScoreID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_score_id", values[i])
			} else if value.Valid {
				_m.RiskScoreID = value.String
			}
		case supplierriskfactor.FieldFactorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field factor_name", values[i])
			} else if value.Valid {
				_m.FactorName = value.String
			}
		case supplierriskfactor.FieldWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight", values[i])
			} else if value.Valid {
				_m.Weight = value.Float64
			}
		case supplierriskfactor.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.Float64
			}
		case supplierriskfactor.FieldEvidence:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Evidence); err != nil {
					return fmt.Errorf("unmarshal field evidence: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the SupplierRiskFactor.
// This includes values selected through modifiers, order, etc.
func (_m *SupplierRiskFactor) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRiskScore queries the "risk_score" edge of the SupplierRiskFactor entity.
func (_m *SupplierRiskFactor) QueryRiskScore() *SupplierRiskScoreQuery {
	return NewSupplierRiskFactorClient(_m.config).QueryRiskScore(_m)
}

// Update returns a builder for updating this SupplierRiskFactor.
// Note that you need to call SupplierRiskFactor.Unwrap() before calling this method if this SupplierRiskFactor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplierRiskFactor) Update() *SupplierRiskFactorUpdateOne {
	return NewSupplierRiskFactorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplierRiskFactor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplierRiskFactor) Unwrap() *SupplierRiskFactor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplierRiskFactor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplierRiskFactor) String() string {
	var builder strings.Builder
	builder.WriteString("SupplierRiskFactor(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("risk_score_id=")
	builder.WriteString(_m.RiskScoreID)
	builder.WriteString(", ")
	builder.WriteString("factor_name=")
	builder.WriteString(_m.FactorName)
	builder.WriteString(", ")
	builder.WriteString("weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weight))
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Evidence))
	builder.WriteByte(')')
	return builder.String()
}

// SupplierRiskFactors is a parsable slice of SupplierRiskFactor.
type SupplierRiskFactors []*SupplierRiskFactor

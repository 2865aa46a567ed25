// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/documentjob"
	"github.com/steward-ai/steward/ent/extractioncorrection"
)

// ExtractionCorrection is the model entity for the ExtractionCorrection schema.
type ExtractionCorrection struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID string `json:"job_id,omitempty"`
	// FieldName holds the value of the "field_name" field.
	FieldName string `json:"field_name,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue string `json:"extracted_value,omitempty"`
	// CorrectedValue holds the value of the "corrected_value" field.
	CorrectedValue string `json:"corrected_value,omitempty"`
	// CorrectedBy holds the value of the "corrected_by" field.
	CorrectedBy string `json:"corrected_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionCorrectionQuery when eager-loading is set.
	Edges        ExtractionCorrectionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionCorrectionEdges holds the relations/edges for other nodes in the graph.
type ExtractionCorrectionEdges struct {
	// Job holds the value of the job edge.
	Job *DocumentJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionCorrectionEdges) JobOrErr() (*DocumentJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: documentjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionCorrection) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractioncorrection.FieldID, extractioncorrection.FieldJobID, extractioncorrection.FieldFieldName, extractioncorrection.FieldExtractedValue, extractioncorrection.FieldCorrectedValue, extractioncorrection.FieldCorrectedBy:
			values[i] = new(sql.NullString)
		case extractioncorrection.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionCorrection fields.
func (_m *ExtractionCorrection) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractioncorrection.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extractioncorrection.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = value.String
			}
		case extractioncorrection.FieldFieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_name", values[i])
			} else if value.Valid {
				_m.FieldName = value.String
			}
		case extractioncorrection.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = value.String
			}
		case extractioncorrection.FieldCorrectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_value", values[i])
			} else if value.Valid {
				_m.CorrectedValue = value.String
			}
		case extractioncorrection.FieldCorrectedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_by", values[i])
			} else if value.Valid {
				_m.CorrectedBy = value.String
			}
		case extractioncorrection.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionCorrection.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionCorrection) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the ExtractionCorrection entity.
func (_m *ExtractionCorrection) QueryJob() *DocumentJobQuery {
	return NewExtractionCorrectionClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this ExtractionCorrection.
// Note that you need to call ExtractionCorrection.Unwrap() before calling this method if this ExtractionCorrection
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionCorrection) Update() *ExtractionCorrectionUpdateOne {
	return NewExtractionCorrectionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionCorrection entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionCorrection) Unwrap() *ExtractionCorrection {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionCorrection is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionCorrection) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionCorrection(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(_m.JobID)
	builder.WriteString(", ")
	builder.WriteString("field_name=")
	builder.WriteString(_m.FieldName)
	builder.WriteString(", ")
	builder.WriteString("extracted_value=")
	builder.WriteString(_m.ExtractedValue)
	builder.WriteString(", ")
	builder.WriteString("corrected_value=")
	builder.WriteString(_m.CorrectedValue)
	builder.WriteString(", ")
	builder.WriteString("corrected_by=")
	builder.WriteString(_m.CorrectedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionCorrections is a parsable slice of ExtractionCorrection.
type ExtractionCorrections []*ExtractionCorrection

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/documentjob"
)

// DocumentJob is the model entity for the DocumentJob schema.
type DocumentJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType documentjob.DocumentType `json:"document_type,omitempty"`
	// ERP attachment reference the document came from
	SourceAttachment string `json:"source_attachment,omitempty"`
	// Status holds the value of the "status" field.
	Status documentjob.Status `json:"status,omitempty"`
	// ExtractedFields holds the value of the "extracted_fields" field.
	ExtractedFields map[string]interface{} `json:"extracted_fields,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// ERP record created from the extraction, if any
	CreatedRecordID *int64 `json:"created_record_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentJobQuery when eager-loading is set.
	Edges        DocumentJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentJobEdges holds the relations/edges for other nodes in the graph.
type DocumentJobEdges struct {
	// Corrections holds the value of the corrections edge.
	Corrections []*ExtractionCorrection `json:"corrections,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CorrectionsOrErr returns the Corrections value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentJobEdges) CorrectionsOrErr() ([]*ExtractionCorrection, error) {
	if e.loadedTypes[0] {
		return e.Corrections, nil
	}
	return nil, &NotLoadedError{edge: "corrections"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentjob.FieldExtractedFields:
			values[i] = new([]byte)
		case documentjob.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case documentjob.FieldCreatedRecordID:
			values[i] = new(sql.NullInt64)
		case documentjob.FieldID, documentjob.FieldDocumentType, documentjob.FieldSourceAttachment, documentjob.FieldStatus, documentjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case documentjob.FieldCreatedAt, documentjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentJob fields.
func (_m *DocumentJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case documentjob.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = documentjob.DocumentType(value.String)
			}
		case documentjob.FieldSourceAttachment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_attachment", values[i])
			} else if value.Valid {
				_m.SourceAttachment = value.String
			}
		case documentjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = documentjob.Status(value.String)
			}
		case documentjob.FieldExtractedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedFields); err != nil {
					return fmt.Errorf("unmarshal field extracted_fields: %w", err)
				}
			}
		case documentjob.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case documentjob.FieldCreatedRecordID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_record_id", values[i])
			} else if value.Valid {
				_m.CreatedRecordID = new(int64)
				*_m.CreatedRecordID = value.Int64
			}
		case documentjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case documentjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case documentjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentJob.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCorrections queries the "corrections" edge of the DocumentJob entity.
func (_m *DocumentJob) QueryCorrections() *ExtractionCorrectionQuery {
	return NewDocumentJobClient(_m.config).QueryCorrections(_m)
}

// Update returns a builder for updating this DocumentJob.
// Note that you need to call DocumentJob.Unwrap() before calling this method if this DocumentJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentJob) Update() *DocumentJobUpdateOne {
	return NewDocumentJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentJob) Unwrap() *DocumentJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentJob) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentType))
	builder.WriteString(", ")
	builder.WriteString("source_attachment=")
	builder.WriteString(_m.SourceAttachment)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("extracted_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedFields))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CreatedRecordID; v != nil {
		builder.WriteString("created_record_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentJobs is a parsable slice of DocumentJob.
type DocumentJobs []*DocumentJob

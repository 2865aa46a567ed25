// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/dedupscan"
	"github.com/steward-ai/steward/ent/duplicategroup"
)

// DuplicateGroup is the model entity for the DuplicateGroup schema.
type DuplicateGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ScanID holds the value of the "scan_id" field.
	ScanID string `json:"scan_id,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// RecordIds holds the value of the "record_ids" field.
	RecordIds []int64 `json:"record_ids,omitempty"`
	// Heuristic nomination; AI or the caller may override
	MasterRecordID int64 `json:"master_record_id,omitempty"`
	// SimilarityScore holds the value of the "similarity_score" field.
	SimilarityScore float64 `json:"similarity_score,omitempty"`
	// MatchedFields holds the value of the "matched_fields" field.
	MatchedFields []string `json:"matched_fields,omitempty"`
	// Resolution holds the value of the "resolution" field.
	Resolution duplicategroup.Resolution `json:"resolution,omitempty"`
	// ResolvedBy holds the value of the "resolved_by" field.
	ResolvedBy *string `json:"resolved_by,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DuplicateGroupQuery when eager-loading is set.
	Edges        DuplicateGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DuplicateGroupEdges holds the relations/edges for other nodes in the graph.
type DuplicateGroupEdges struct {
	// Scan holds the value of the scan edge.
	Scan *DedupScan `json:"scan,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScanOrErr returns the Scan value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DuplicateGroupEdges) ScanOrErr() (*DedupScan, error) {
	if e.Scan != nil {
		return e.Scan, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dedupscan.Label}
	}
	return nil, &NotLoadedError{edge: "scan"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DuplicateGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case duplicategroup.FieldRecordIds, duplicategroup.FieldMatchedFields:
			values[i] = new([]byte)
		case duplicategroup.FieldSimilarityScore:
			values[i] = new(sql.NullFloat64)
		case duplicategroup.FieldMasterRecordID:
			values[i] = new(sql.NullInt64)
		case duplicategroup.FieldID, duplicategroup.FieldScanID, duplicategroup.FieldEntityType, duplicategroup.FieldResolution, duplicategroup.FieldResolvedBy:
			values[i] = new(sql.NullString)
		case duplicategroup.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DuplicateGroup fields.
func (_m *DuplicateGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case duplicategroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case duplicategroup.FieldScanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_id", values[i])
			} else if value.Valid {
				_m.ScanID = value.String
			}
		case duplicategroup.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case duplicategroup.FieldRecordIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field record_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecordIds); err != nil {
					return fmt.Errorf("unmarshal field record_ids: %w", err)
				}
			}
		case duplicategroup.FieldMasterRecordID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field master_record_id", values[i])
			} else if value.Valid {
				_m.MasterRecordID = value.Int64
			}
		case duplicategroup.FieldSimilarityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field similarity_score", values[i])
			} else if value.Valid {
				_m.SimilarityScore = value.Float64
			}
		case duplicategroup.FieldMatchedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field matched_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MatchedFields); err != nil {
					return fmt.Errorf("unmarshal field matched_fields: %w", err)
				}
			}
		case duplicategroup.FieldResolution:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution", values[i])
			} else if value.Valid {
				_m.Resolution = duplicategroup.Resolution(value.String)
			}
		case duplicategroup.FieldResolvedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_by", values[i])
			} else if value.Valid {
				_m.ResolvedBy = new(string)
				*_m.ResolvedBy = value.String
			}
		case duplicategroup.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DuplicateGroup.
// This includes values selected through modifiers, order, etc.
func (_m *DuplicateGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScan queries the "scan" edge of the DuplicateGroup entity.
func (_m *DuplicateGroup) QueryScan() *DedupScanQuery {
	return NewDuplicateGroupClient(_m.config).QueryScan(_m)
}

// Update returns a builder for updating this DuplicateGroup.
// Note that you need to call DuplicateGroup.Unwrap() before calling this method if this DuplicateGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DuplicateGroup) Update() *DuplicateGroupUpdateOne {
	return NewDuplicateGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DuplicateGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DuplicateGroup) Unwrap() *DuplicateGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DuplicateGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DuplicateGroup) String() string {
	var builder strings.Builder
	builder.WriteString("DuplicateGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scan_id=")
	builder.WriteString(_m.ScanID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("record_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordIds))
	builder.WriteString(", ")
	builder.WriteString("master_record_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasterRecordID))
	builder.WriteString(", ")
	builder.WriteString("similarity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarityScore))
	builder.WriteString(", ")
	builder.WriteString("matched_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.MatchedFields))
	builder.WriteString(", ")
	builder.WriteString("resolution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolution))
	builder.WriteString(", ")
	if v := _m.ResolvedBy; v != nil {
		builder.WriteString("resolved_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DuplicateGroups is a parsable slice of DuplicateGroup.
type DuplicateGroups []*DuplicateGroup

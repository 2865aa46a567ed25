// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/dedupscan"
)

// DedupScan is the model entity for the DedupScan schema.
type DedupScan struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Entity type scanned, e.g. 'res.partner'
	ScanType string `json:"scan_type,omitempty"`
	// Status holds the value of the "status" field.
	Status dedupscan.Status `json:"status,omitempty"`
	// RecordsScanned holds the value of the "records_scanned" field.
	RecordsScanned int `json:"records_scanned,omitempty"`
	// GroupsFound holds the value of the "groups_found" field.
	GroupsFound int `json:"groups_found,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DedupScanQuery when eager-loading is set.
	Edges        DedupScanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DedupScanEdges holds the relations/edges for other nodes in the graph.
type DedupScanEdges struct {
	// Groups holds the value of the groups edge.
	Groups []*DuplicateGroup `json:"groups,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GroupsOrErr returns the Groups value or an error if the edge
// was not loaded in eager-loading.
func (e DedupScanEdges) GroupsOrErr() ([]*DuplicateGroup, error) {
	if e.loadedTypes[0] {
		return e.Groups, nil
	}
	return nil, &NotLoadedError{edge: "groups"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DedupScan) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dedupscan.FieldRecordsScanned, dedupscan.FieldGroupsFound:
			values[i] = new(sql.NullInt64)
		case dedupscan.FieldID, dedupscan.FieldScanType, dedupscan.FieldStatus, dedupscan.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case dedupscan.FieldCreatedAt, dedupscan.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DedupScan fields.
func (_m *DedupScan) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dedupscan.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dedupscan.FieldScanType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scan_type", values[i])
			} else if value.Valid {
				_m.ScanType = value.String
			}
		case dedupscan.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = dedupscan.Status(value.String)
			}
		case dedupscan.FieldRecordsScanned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field records_scanned", values[i])
			} else if value.Valid {
				_m.RecordsScanned = int(value.Int64)
			}
		case dedupscan.FieldGroupsFound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field groups_found", values[i])
			} else if value.Valid {
				_m.GroupsFound = int(value.Int64)
			}
		case dedupscan.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dedupscan.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case dedupscan.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DedupScan.
// This includes values selected through modifiers, order, etc.
func (_m *DedupScan) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroups queries the "groups" edge of the DedupScan entity.
func (_m *DedupScan) QueryGroups() *DuplicateGroupQuery {
	return NewDedupScanClient(_m.config).QueryGroups(_m)
}

// Update returns a builder for updating this DedupScan.
// Note that you need to call DedupScan.Unwrap() before calling this method if this DedupScan
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DedupScan) Update() *DedupScanUpdateOne {
	return NewDedupScanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DedupScan entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DedupScan) Unwrap() *DedupScan {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DedupScan is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DedupScan) String() string {
	var builder strings.Builder
	builder.WriteString("DedupScan(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scan_type=")
	builder.WriteString(_m.ScanType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("records_scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecordsScanned))
	builder.WriteString(", ")
	builder.WriteString("groups_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.GroupsFound))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DedupScans is a parsable slice of DedupScan.
type DedupScans []*DedupScan

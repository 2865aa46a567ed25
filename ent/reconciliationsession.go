// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/reconciliationsession"
)

// ReconciliationSession is the model entity for the ReconciliationSession schema.
type ReconciliationSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// JournalID holds the value of the "journal_id" field.
	JournalID int64 `json:"journal_id,omitempty"`
	// Status holds the value of the "status" field.
	Status reconciliationsession.Status `json:"status,omitempty"`
	// TotalLines holds the value of the "total_lines" field.
	TotalLines int `json:"total_lines,omitempty"`
	// AutoMatched holds the value of the "auto_matched" field.
	AutoMatched int `json:"auto_matched,omitempty"`
	// ManuallyMatched holds the value of the "manually_matched" field.
	ManuallyMatched int `json:"manually_matched,omitempty"`
	// Skipped holds the value of the "skipped" field.
	Skipped int `json:"skipped,omitempty"`
	// Remaining holds the value of the "remaining" field.
	Remaining int `json:"remaining,omitempty"`
	// Session-scoped rules, persisted at session close
	LearnedRules []map[string]interface{} `json:"learned_rules,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReconciliationSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reconciliationsession.FieldLearnedRules:
			values[i] = new([]byte)
		case reconciliationsession.FieldUserID, reconciliationsession.FieldJournalID, reconciliationsession.FieldTotalLines, reconciliationsession.FieldAutoMatched, reconciliationsession.FieldManuallyMatched, reconciliationsession.FieldSkipped, reconciliationsession.FieldRemaining:
			values[i] = new(sql.NullInt64)
		case reconciliationsession.FieldID, reconciliationsession.FieldStatus:
			values[i] = new(sql.NullString)
		case reconciliationsession.FieldCreatedAt, reconciliationsession.FieldUpdatedAt, reconciliationsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReconciliationSession fields.
func (_m *ReconciliationSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reconciliationsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case reconciliationsession.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.Int64
			}
		case reconciliationsession.FieldJournalID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field journal_id", values[i])
			} else if value.Valid {
				_m.JournalID = value.Int64
			}
		case reconciliationsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = reconciliationsession.Status(value.String)
			}
		case reconciliationsession.FieldTotalLines:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_lines", values[i])
			} else if value.Valid {
				_m.TotalLines = int(value.Int64)
			}
		case reconciliationsession.FieldAutoMatched:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_matched", values[i])
			} else if value.Valid {
				_m.AutoMatched = int(value.Int64)
			}
		case reconciliationsession.FieldManuallyMatched:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field manually_matched", values[i])
			} else if value.Valid {
				_m.ManuallyMatched = int(value.Int64)
			}
		case reconciliationsession.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = int(value.Int64)
			}
		case reconciliationsession.FieldRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining", values[i])
			} else if value.Valid {
				_m.Remaining = int(value.Int64)
			}
		case reconciliationsession.FieldLearnedRules:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learned_rules", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearnedRules); err != nil {
					return fmt.Errorf("unmarshal field learned_rules: %w", err)
				}
			}
		case reconciliationsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reconciliationsession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case reconciliationsession.FieldCompletedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReconciliationSession.
// This includes values selected through modifiers, order, etc.
func (_m *ReconciliationSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReconciliationSession.
// Note that you need to call ReconciliationSession.Unwrap() before calling this method if this ReconciliationSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReconciliationSession) Update() *ReconciliationSessionUpdateOne {
	return NewReconciliationSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReconciliationSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReconciliationSession) Unwrap() *ReconciliationSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReconciliationSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReconciliationSession) String() string {
	var builder strings.Builder
	builder.WriteString("ReconciliationSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("journal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JournalID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("total_lines=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLines))
	builder.WriteString(", ")
	builder.WriteString("auto_matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoMatched))
	builder.WriteString(", ")
	builder.WriteString("manually_matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.ManuallyMatched))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.Remaining))
	builder.WriteString(", ")
	builder.WriteString("learned_rules=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnedRules))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReconciliationSessions is a parsable slice of ReconciliationSession.
type ReconciliationSessions []*ReconciliationSession

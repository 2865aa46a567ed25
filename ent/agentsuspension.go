// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/agentrun"
	"github.com/steward-ai/steward/ent/agentsuspension"
)

// AgentSuspension is the model entity for the AgentSuspension schema.
type AgentSuspension struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Free-form tag, e.g. 'awaiting_bill_approval'
	ResumeCondition string `json:"resume_condition,omitempty"`
	// SuspendedAtStep holds the value of the "suspended_at_step" field.
	SuspendedAtStep string `json:"suspended_at_step,omitempty"`
	// TimeoutAt holds the value of the "timeout_at" field.
	TimeoutAt time.Time `json:"timeout_at,omitempty"`
	// Filled when the run resumes
	ResumeData map[string]interface{} `json:"resume_data,omitempty"`
	// SuspendedAt holds the value of the "suspended_at" field.
	SuspendedAt time.Time `json:"suspended_at,omitempty"`
	// ResumedAt holds the value of the "resumed_at" field.
	ResumedAt *time.Time `json:"resumed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentSuspensionQuery when eager-loading is set.
	Edges        AgentSuspensionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentSuspensionEdges holds the relations/edges for other nodes in the graph.
type AgentSuspensionEdges struct {
	// Run holds the value of the run edge.
	Run *AgentRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentSuspensionEdges) RunOrErr() (*AgentRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentSuspension) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentsuspension.FieldResumeData:
			values[i] = new([]byte)
		case agentsuspension.FieldID, agentsuspension.FieldRunID, agentsuspension.FieldResumeCondition, agentsuspension.FieldSuspendedAtStep:
			values[i] = new(sql.NullString)
		case agentsuspension.FieldTimeoutAt, agentsuspension.FieldSuspendedAt, agentsuspension.FieldResumedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentSuspension fields.
func (_m *AgentSuspension) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentsuspension.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentsuspension.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentsuspension.FieldResumeCondition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resume_condition", values[i])
			} else if value.Valid {
				_m.ResumeCondition = value.String
			}
		case agentsuspension.FieldSuspendedAtStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suspended_at_step", values[i])
			} else if value.Valid {
				_m.SuspendedAtStep = value.String
			}
		case agentsuspension.FieldTimeoutAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_at", values[i])
			} else if value.Valid {
				_m.TimeoutAt = value.Time
			}
		case agentsuspension.FieldResumeData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field resume_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResumeData); err != nil {
					return fmt.Errorf("unmarshal field resume_data: %w", err)
				}
			}
		case agentsuspension.FieldSuspendedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field suspended_at", values[i])
			} else if value.Valid {
				_m.SuspendedAt = value.Time
			}
		case agentsuspension.FieldResumedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resumed_at", values[i])
			} else if value.Valid {
				_m.ResumedAt = new(time.Time)
				*_m.ResumedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentSuspension.
// This includes values selected through modifiers, order, etc.
func (_m *AgentSuspension) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentSuspension entity.
func (_m *AgentSuspension) QueryRun() *AgentRunQuery {
	return NewAgentSuspensionClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this AgentSuspension.
// Note that you need to call AgentSuspension.Unwrap() before calling this method if this AgentSuspension
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentSuspension) Update() *AgentSuspensionUpdateOne {
	return NewAgentSuspensionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentSuspension entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentSuspension) Unwrap() *AgentSuspension {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentSuspension is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentSuspension) String() string {
	var builder strings.Builder
	builder.WriteString("AgentSuspension(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("resume_condition=")
	builder.WriteString(_m.ResumeCondition)
	builder.WriteString(", ")
	builder.WriteString("suspended_at_step=")
	builder.WriteString(_m.SuspendedAtStep)
	builder.WriteString(", ")
	builder.WriteString("timeout_at=")
	builder.WriteString(_m.TimeoutAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("resume_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResumeData))
	builder.WriteString(", ")
	builder.WriteString("suspended_at=")
	builder.WriteString(_m.SuspendedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResumedAt; v != nil {
		builder.WriteString("resumed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AgentSuspensions is a parsable slice of AgentSuspension.
type AgentSuspensions []*AgentSuspension

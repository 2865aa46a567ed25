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
	"github.com/steward-ai/steward/ent/agentstep"
)

// AgentStep is the model entity for the AgentStep schema.
type AgentStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// StepName holds the value of the "step_name" field.
	StepName string `json:"step_name,omitempty"`
	// 0-based insertion order within the run
	StepIndex int `json:"step_index,omitempty"`
	// InputSnapshot holds the value of the "input_snapshot" field.
	InputSnapshot map[string]interface{} `json:"input_snapshot,omitempty"`
	// OutputSnapshot holds the value of the "output_snapshot" field.
	OutputSnapshot map[string]interface{} `json:"output_snapshot,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs int `json:"duration_ms,omitempty"`
	// Status holds the value of the "status" field.
	Status agentstep.Status `json:"status,omitempty"`
	// Tokens holds the value of the "tokens" field.
	Tokens int `json:"tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentStepQuery when eager-loading is set.
	Edges        AgentStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentStepEdges holds the relations/edges for other nodes in the graph.
type AgentStepEdges struct {
	// Run holds the value of the run edge.
	Run *AgentRun `json:"run,omitempty"`
	// Decisions holds the value of the decisions edge.
	Decisions []*AgentDecision `json:"decisions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentStepEdges) RunOrErr() (*AgentRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// DecisionsOrErr returns the Decisions value or an error if the edge
// was not loaded in eager-loading.
func (e AgentStepEdges) DecisionsOrErr() ([]*AgentDecision, error) {
	if e.loadedTypes[1] {
		return e.Decisions, nil
	}
	return nil, &NotLoadedError{edge: "decisions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstep.FieldInputSnapshot, agentstep.FieldOutputSnapshot:
			values[i] = new([]byte)
		case agentstep.FieldStepIndex, agentstep.FieldDurationMs, agentstep.FieldTokens:
			values[i] = new(sql.NullInt64)
		case agentstep.FieldID, agentstep.FieldRunID, agentstep.FieldStepName, agentstep.FieldStatus:
			values[i] = new(sql.NullString)
		case agentstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentStep fields.
func (_m *AgentStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstep.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentstep.FieldStepName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_name", values[i])
			} else if value.Valid {
				_m.StepName = value.String
			}
		case agentstep.FieldStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_index", values[i])
			} else if value.Valid {
				_m.StepIndex = int(value.Int64)
			}
		case agentstep.FieldInputSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputSnapshot); err != nil {
					return fmt.Errorf("unmarshal field input_snapshot: %w", err)
				}
			}
		case agentstep.FieldOutputSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputSnapshot); err != nil {
					return fmt.Errorf("unmarshal field output_snapshot: %w", err)
				}
			}
		case agentstep.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = int(value.Int64)
			}
		case agentstep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentstep.Status(value.String)
			}
		case agentstep.FieldTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens", values[i])
			} else if value.Valid {
				_m.Tokens = int(value.Int64)
			}
		case agentstep.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentStep.
// This includes values selected through modifiers, order, etc.
func (_m *AgentStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the AgentStep entity.
func (_m *AgentStep) QueryRun() *AgentRunQuery {
	return NewAgentStepClient(_m.config).QueryRun(_m)
}

// QueryDecisions queries the "decisions" edge of the AgentStep entity.
func (_m *AgentStep) QueryDecisions() *AgentDecisionQuery {
	return NewAgentStepClient(_m.config).QueryDecisions(_m)
}

// Update returns a builder for updating this AgentStep.
// Note that you need to call AgentStep.Unwrap() before calling this method if this AgentStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentStep) Update() *AgentStepUpdateOne {
	return NewAgentStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentStep) Unwrap() *AgentStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentStep) String() string {
	var builder strings.Builder
	builder.WriteString("AgentStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("step_name=")
	builder.WriteString(_m.StepName)
	builder.WriteString(", ")
	builder.WriteString("step_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIndex))
	builder.WriteString(", ")
	builder.WriteString("input_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputSnapshot))
	builder.WriteString(", ")
	builder.WriteString("output_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputSnapshot))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentSteps is a parsable slice of AgentStep.
type AgentSteps []*AgentStep

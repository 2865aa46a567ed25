// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/agentdecision"
	"github.com/steward-ai/steward/ent/agentstep"
)

// AgentDecision is the model entity for the AgentDecision schema.
type AgentDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID string `json:"step_id,omitempty"`
	// Denormalized for run-wide queries
	RunID string `json:"run_id,omitempty"`
	// SHA-256 of the rendered prompt, not the prompt itself
	PromptFingerprint string `json:"prompt_fingerprint,omitempty"`
	// ResponsePayload holds the value of the "response_payload" field.
	ResponsePayload map[string]interface{} `json:"response_payload,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// TokensIn holds the value of the "tokens_in" field.
	TokensIn int `json:"tokens_in,omitempty"`
	// TokensOut holds the value of the "tokens_out" field.
	TokensOut int `json:"tokens_out,omitempty"`
	// ToolsInvoked holds the value of the "tools_invoked" field.
	ToolsInvoked []string `json:"tools_invoked,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentDecisionQuery when eager-loading is set.
	Edges        AgentDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentDecisionEdges holds the relations/edges for other nodes in the graph.
type AgentDecisionEdges struct {
	// Step holds the value of the step edge.
	Step *AgentStep `json:"step,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StepOrErr returns the Step value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentDecisionEdges) StepOrErr() (*AgentStep, error) {
	if e.Step != nil {
		return e.Step, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentstep.Label}
	}
	return nil, &NotLoadedError{edge: "step"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentdecision.FieldResponsePayload, agentdecision.FieldToolsInvoked:
			values[i] = new([]byte)
		case agentdecision.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case agentdecision.FieldTokensIn, agentdecision.FieldTokensOut:
			values[i] = new(sql.NullInt64)
		case agentdecision.FieldID, agentdecision.FieldStepID, agentdecision.FieldRunID, agentdecision.FieldPromptFingerprint:
			values[i] = new(sql.NullString)
		case agentdecision.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentDecision fields.
func (_m *AgentDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentdecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentdecision.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = value.String
			}
		case agentdecision.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case agentdecision.FieldPromptFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_fingerprint", values[i])
			} else if value.Valid {
				_m.PromptFingerprint = value.String
			}
		case agentdecision.FieldResponsePayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponsePayload); err != nil {
					return fmt.Errorf("unmarshal field response_payload: %w", err)
				}
			}
		case agentdecision.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case agentdecision.FieldTokensIn:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_in", values[i])
			} else if value.Valid {
				_m.TokensIn = int(value.Int64)
			}
		case agentdecision.FieldTokensOut:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_out", values[i])
			} else if value.Valid {
				_m.TokensOut = int(value.Int64)
			}
		case agentdecision.FieldToolsInvoked:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tools_invoked", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolsInvoked); err != nil {
					return fmt.Errorf("unmarshal field tools_invoked: %w", err)
				}
			}
		case agentdecision.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentDecision.
// This includes values selected through modifiers, order, etc.
func (_m *AgentDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStep queries the "step" edge of the AgentDecision entity.
func (_m *AgentDecision) QueryStep() *AgentStepQuery {
	return NewAgentDecisionClient(_m.config).QueryStep(_m)
}

// Update returns a builder for updating this AgentDecision.
// Note that you need to call AgentDecision.Unwrap() before calling this method if this AgentDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentDecision) Update() *AgentDecisionUpdateOne {
	return NewAgentDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentDecision) Unwrap() *AgentDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentDecision) String() string {
	var builder strings.Builder
	builder.WriteString("AgentDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("step_id=")
	builder.WriteString(_m.StepID)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("prompt_fingerprint=")
	builder.WriteString(_m.PromptFingerprint)
	builder.WriteString(", ")
	builder.WriteString("response_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponsePayload))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("tokens_in=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensIn))
	builder.WriteString(", ")
	builder.WriteString("tokens_out=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensOut))
	builder.WriteString(", ")
	builder.WriteString("tools_invoked=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolsInvoked))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentDecisions is a parsable slice of AgentDecision.
type AgentDecisions []*AgentDecision

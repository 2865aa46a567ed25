// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/steward-ai/steward/ent/automationrule"
)

// AutomationRule is the model entity for the AutomationRule schema.
type AutomationRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AutomationType holds the value of the "automation_type" field.
	AutomationType string `json:"automation_type,omitempty"`
	// Empty = applies to all actions of the automation
	ActionName string `json:"action_name,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// Below this: note only, no approval request
	ConfidenceThreshold float64 `json:"confidence_threshold,omitempty"`
	// At or above this: execute without approval
	AutoApproveThreshold float64 `json:"auto_approve_threshold,omitempty"`
	// Config holds the value of the "config" field.
	Config map[string]interface{} `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AutomationRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case automationrule.FieldConfig:
			values[i] = new([]byte)
		case automationrule.FieldEnabled:
			values[i] = new(sql.NullBool)
		case automationrule.FieldConfidenceThreshold, automationrule.FieldAutoApproveThreshold:
			values[i] = new(sql.NullFloat64)
		case automationrule.FieldID, automationrule.FieldAutomationType, automationrule.FieldActionName:
			values[i] = new(sql.NullString)
		case automationrule.FieldCreatedAt, automationrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AutomationRule fields.
func (_m *AutomationRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case automationrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case automationrule.FieldAutomationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field automation_type", values[i])
			} else if value.Valid {
				_m.AutomationType = value.String
			}
		case automationrule.FieldActionName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_name", values[i])
			} else if value.Valid {
				_m.ActionName = value.String
			}
		case automationrule.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case automationrule.FieldConfidenceThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_threshold", values[i])
			} else if value.Valid {
				_m.ConfidenceThreshold = value.Float64
			}
		case automationrule.FieldAutoApproveThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field auto_approve_threshold", values[i])
			} else if value.Valid {
				_m.AutoApproveThreshold = value.Float64
			}
		case automationrule.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case automationrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case automationrule.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AutomationRule.
// This includes values selected through modifiers, order, etc.
func (_m *AutomationRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AutomationRule.
// Note that you need to call AutomationRule.Unwrap() before calling this method if this AutomationRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AutomationRule) Update() *AutomationRuleUpdateOne {
	return NewAutomationRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AutomationRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AutomationRule) Unwrap() *AutomationRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AutomationRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AutomationRule) String() string {
	var builder strings.Builder
	builder.WriteString("AutomationRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("automation_type=")
	builder.WriteString(_m.AutomationType)
	builder.WriteString(", ")
	builder.WriteString("action_name=")
	builder.WriteString(_m.ActionName)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("confidence_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceThreshold))
	builder.WriteString(", ")
	builder.WriteString("auto_approve_threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoApproveThreshold))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AutomationRules is a parsable slice of AutomationRule.
type AutomationRules []*AutomationRule

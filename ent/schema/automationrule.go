package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AutomationRule holds per-automation configuration: whether it runs and
// which confidence thresholds gate auto-execution.
type AutomationRule struct {
	ent.Schema
}

// Fields of the AutomationRule.
func (AutomationRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("automation_type"),
		field.String("action_name").
			Default("").
			Comment("Empty = applies to all actions of the automation"),
		field.Bool("enabled").
			Default(true),
		field.Float("confidence_threshold").
			Default(0.85).
			Comment("Below this: note only, no approval request"),
		field.Float("auto_approve_threshold").
			Default(0.95).
			Comment("At or above this: execute without approval"),
		field.JSON("config", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AutomationRule.
func (AutomationRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("automation_type", "action_name").
			Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentDecision holds the schema definition for one LLM call inside a step.
type AgentDecision struct {
	ent.Schema
}

// Fields of the AgentDecision.
func (AgentDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("step_id").
			Immutable(),
		field.String("run_id").
			Immutable().
			Comment("Denormalized for run-wide queries"),
		field.String("prompt_fingerprint").
			Comment("SHA-256 of the rendered prompt, not the prompt itself"),
		field.JSON("response_payload", map[string]interface{}{}).
			Optional(),
		field.Float("confidence").
			Default(0),
		field.Int("tokens_in").
			Default(0),
		field.Int("tokens_out").
			Default(0),
		field.JSON("tools_invoked", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentDecision.
func (AgentDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("step", AgentStep.Type).
			Ref("decisions").
			Field("step_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentDecision.
func (AgentDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("step_id", "created_at"),
		index.Fields("run_id"),
	}
}

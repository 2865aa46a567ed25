package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for one run of a multi-step agent.
// Runs are queued as "pending" rows and claimed by the worker pool.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("agent_type").
			Comment("e.g. 'procure_to_pay', 'collection', 'month_end_close'"),
		field.String("trigger_type").
			Comment("'webhook', 'api', 'scheduler', 'resume'"),
		field.String("trigger_id").
			Optional().
			Comment("Webhook event id or API caller reference"),
		field.Enum("status").
			Values("pending", "running", "suspended", "completed", "failed", "cancelled").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("total_steps").
			Default(0),
		field.Int("token_usage").
			Default(0),
		field.JSON("initial_state", map[string]interface{}{}).
			Optional(),
		field.JSON("final_state", map[string]interface{}{}).
			Optional().
			Comment("Latest state snapshot; the frozen state while suspended"),
		field.String("current_step").
			Optional().
			Nillable().
			Comment("Resume point for suspended runs"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Claiming pod, for multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", AgentStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("suspensions", AgentSuspension.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type"),
		index.Fields("status"),
		index.Fields("started_at"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
	}
}

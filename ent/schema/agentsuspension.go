package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentSuspension holds the schema definition for a wait point of a run.
// At most one open suspension (resumed_at null) exists per run.
type AgentSuspension struct {
	ent.Schema
}

// Fields of the AgentSuspension.
func (AgentSuspension) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suspension_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("resume_condition").
			Comment("Free-form tag, e.g. 'awaiting_bill_approval'"),
		field.String("suspended_at_step"),
		field.Time("timeout_at"),
		field.JSON("resume_data", map[string]interface{}{}).
			Optional().
			Comment("Filled when the run resumes"),
		field.Time("suspended_at").
			Default(time.Now).
			Immutable(),
		field.Time("resumed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the AgentSuspension.
func (AgentSuspension) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("suspensions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentSuspension.
func (AgentSuspension) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("timeout_at"),
		// Open suspensions only, for the timeout sweep.
		index.Fields("resumed_at").
			Annotations(entsql.IndexWhere("resumed_at IS NULL")),
	}
}

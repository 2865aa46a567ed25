package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClosingStep holds the schema definition for one item on a close checklist.
type ClosingStep struct {
	ent.Schema
}

// Fields of the ClosingStep.
func (ClosingStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("closing_step_id").
			Unique().
			Immutable(),
		field.String("closing_id").
			Immutable(),
		field.String("step_name"),
		field.Int("step_index"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "blocked", "skipped").
			Default("pending"),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.String("blocked_reason").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ClosingStep.
func (ClosingStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("closing", MonthEndClosing.Type).
			Ref("steps").
			Field("closing_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ClosingStep.
func (ClosingStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("closing_id", "step_index").
			Unique(),
		index.Fields("status"),
	}
}

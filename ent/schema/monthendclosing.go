package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonthEndClosing holds the schema definition for a month-end close cycle.
type MonthEndClosing struct {
	ent.Schema
}

// Fields of the MonthEndClosing.
func (MonthEndClosing) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("closing_id").
			Unique().
			Immutable(),
		field.String("period").
			Comment("YYYY-MM"),
		field.Enum("status").
			Values("in_progress", "review", "completed", "failed").
			Default("in_progress"),
		field.Float("readiness_score").
			Default(0).
			Comment("0-100"),
		field.JSON("summary", map[string]interface{}{}).
			Optional(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the MonthEndClosing.
func (MonthEndClosing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", ClosingStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the MonthEndClosing.
func (MonthEndClosing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("period").
			Unique(),
		index.Fields("status"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CreditScore holds the schema definition for the current credit posture of
// one customer. One row per customer, updated in place.
type CreditScore struct {
	ent.Schema
}

// Fields of the CreditScore.
func (CreditScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("credit_score_id").
			Unique().
			Immutable(),
		field.Int64("customer_id").
			Unique(),
		field.Float("score").
			Comment("0-100, higher is safer"),
		field.Enum("risk_tier").
			Values("low", "medium", "high", "critical"),
		field.Float("credit_limit").
			Default(0),
		field.Float("outstanding_balance").
			Default(0),
		field.Bool("hold_active").
			Default(false),
		field.String("hold_reason").
			Optional().
			Nillable(),
		field.JSON("factors", map[string]interface{}{}).
			Optional().
			Comment("Component scores that produced the composite"),
		field.Time("calculated_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CreditScore.
func (CreditScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hold_active"),
		index.Fields("risk_tier"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DisruptionPrediction holds the schema definition for a predicted supply
// chain disruption affecting open purchase orders.
type DisruptionPrediction struct {
	ent.Schema
}

// Fields of the DisruptionPrediction.
func (DisruptionPrediction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prediction_id").
			Unique().
			Immutable(),
		field.Int64("supplier_id"),
		field.Int64("purchase_order_id").
			Optional().
			Nillable(),
		field.Enum("disruption_type").
			Values("late_delivery", "stockout", "price_spike", "quality"),
		field.Float("probability"),
		field.Time("predicted_date").
			Optional().
			Nillable(),
		field.Text("rationale").
			Optional(),
		field.JSON("suggested_actions", []map[string]interface{}{}).
			Optional(),
		field.Enum("status").
			Values("open", "confirmed", "dismissed", "expired").
			Default("open"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DisruptionPrediction.
func (DisruptionPrediction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_id"),
		index.Fields("status"),
		index.Fields("disruption_type", "created_at"),
	}
}

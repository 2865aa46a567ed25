package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupplyChainAlert holds the schema definition for an operator-facing alert
// raised from risk scores or disruption predictions.
type SupplyChainAlert struct {
	ent.Schema
}

// Fields of the SupplyChainAlert.
func (SupplyChainAlert) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sc_alert_id").
			Unique().
			Immutable(),
		field.Enum("severity").
			Values("info", "warning", "critical"),
		field.String("title"),
		field.Text("body").
			Optional(),
		field.Int64("supplier_id").
			Optional().
			Nillable(),
		field.String("prediction_id").
			Optional().
			Nillable(),
		field.Bool("acknowledged").
			Default(false),
		field.String("acknowledged_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("acknowledged_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SupplyChainAlert.
func (SupplyChainAlert) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("severity"),
		index.Fields("acknowledged"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CashForecast holds the schema definition for one cash position projection.
// forecast_date is the day the projection was made; target_date is the day
// being projected.
type CashForecast struct {
	ent.Schema
}

// Fields of the CashForecast.
func (CashForecast) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("forecast_id").
			Unique().
			Immutable(),
		field.Time("forecast_date"),
		field.Time("target_date"),
		field.Float("opening_balance"),
		field.Float("expected_inflows"),
		field.Float("expected_outflows"),
		field.Float("projected_balance"),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.JSON("breakdown", map[string]interface{}{}).
			Optional().
			Comment("Per-source inflow/outflow components"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CashForecast.
func (CashForecast) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scenarios", ForecastScenario.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CashForecast.
func (CashForecast) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("forecast_date", "target_date"),
		index.Fields("target_date"),
	}
}

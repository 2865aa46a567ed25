package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ForecastScenario holds the schema definition for a what-if variant of a
// forecast (delayed receivable, pulled-forward payable, and so on).
type ForecastScenario struct {
	ent.Schema
}

// Fields of the ForecastScenario.
func (ForecastScenario) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scenario_id").
			Unique().
			Immutable(),
		field.String("forecast_id").
			Immutable(),
		field.String("name"),
		field.JSON("adjustments", []map[string]interface{}{}).
			Comment("Ordered list of {kind, record_id, amount, shift_days}"),
		field.Float("projected_balance"),
		field.Float("delta").
			Comment("projected_balance minus the base forecast"),
	}
}

// Edges of the ForecastScenario.
func (ForecastScenario) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("forecast", CashForecast.Type).
			Ref("scenarios").
			Field("forecast_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ForecastScenario.
func (ForecastScenario) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("forecast_id"),
	}
}

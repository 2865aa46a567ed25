package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ForecastAccuracyLog holds the schema definition for a back-test record
// comparing a past projection to the actual balance once known.
type ForecastAccuracyLog struct {
	ent.Schema
}

// Fields of the ForecastAccuracyLog.
func (ForecastAccuracyLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("accuracy_log_id").
			Unique().
			Immutable(),
		field.String("forecast_id"),
		field.Time("target_date"),
		field.Float("projected_balance"),
		field.Float("actual_balance"),
		field.Float("error_pct").
			Comment("Signed (projected-actual)/actual, 0 when actual is 0"),
		field.Time("evaluated_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ForecastAccuracyLog.
func (ForecastAccuracyLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("forecast_id"),
		index.Fields("target_date"),
	}
}

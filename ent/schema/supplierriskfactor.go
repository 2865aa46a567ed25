package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupplierRiskFactor holds the schema definition for one component of a
// supplier risk score (late deliveries, price volatility, concentration).
type SupplierRiskFactor struct {
	ent.Schema
}

// Fields of the SupplierRiskFactor.
func (SupplierRiskFactor) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("risk_factor_id").
			Unique().
			Immutable(),
		field.String("risk_score_id").
			Immutable(),
		field.String("factor_name"),
		field.Float("weight"),
		field.Float("value").
			Comment("0-100 contribution before weighting"),
		field.JSON("evidence", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the SupplierRiskFactor.
func (SupplierRiskFactor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("risk_score", SupplierRiskScore.Type).
			Ref("factors").
			Field("risk_score_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SupplierRiskFactor.
func (SupplierRiskFactor) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("risk_score_id", "factor_name").
			Unique(),
	}
}

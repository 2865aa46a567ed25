package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupplierRiskScore holds the schema definition for the current risk posture
// of one supplier. One row per supplier, updated in place.
type SupplierRiskScore struct {
	ent.Schema
}

// Fields of the SupplierRiskScore.
func (SupplierRiskScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("supplier_risk_id").
			Unique().
			Immutable(),
		field.Int64("supplier_id").
			Unique(),
		field.Float("score").
			Comment("0-100, higher is riskier"),
		field.Enum("risk_tier").
			Values("low", "medium", "high", "critical"),
		field.Time("calculated_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the SupplierRiskScore.
func (SupplierRiskScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("factors", SupplierRiskFactor.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the SupplierRiskScore.
func (SupplierRiskScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("risk_tier"),
		index.Fields("score"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractionCorrection holds the schema definition for a human correction to
// an extracted field. Corrections feed few-shot examples for later prompts.
type ExtractionCorrection struct {
	ent.Schema
}

// Fields of the ExtractionCorrection.
func (ExtractionCorrection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("correction_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Immutable(),
		field.String("field_name"),
		field.String("extracted_value").
			Optional(),
		field.String("corrected_value"),
		field.String("corrected_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExtractionCorrection.
func (ExtractionCorrection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", DocumentJob.Type).
			Ref("corrections").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExtractionCorrection.
func (ExtractionCorrection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("field_name"),
	}
}

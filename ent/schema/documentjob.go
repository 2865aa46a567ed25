package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentJob holds the schema definition for one document extraction job
// (vendor bill, expense receipt, sales order PDF).
type DocumentJob struct {
	ent.Schema
}

// Fields of the DocumentJob.
func (DocumentJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_job_id").
			Unique().
			Immutable(),
		field.Enum("document_type").
			Values("vendor_bill", "expense_receipt", "sales_order"),
		field.String("source_attachment").
			Comment("ERP attachment reference the document came from"),
		field.Enum("status").
			Values("pending", "extracting", "extracted", "validated", "posted", "failed").
			Default("pending"),
		field.JSON("extracted_fields", map[string]interface{}{}).
			Optional(),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.Int64("created_record_id").
			Optional().
			Nillable().
			Comment("ERP record created from the extraction, if any"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DocumentJob.
func (DocumentJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("corrections", ExtractionCorrection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DocumentJob.
func (DocumentJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("document_type", "created_at"),
	}
}

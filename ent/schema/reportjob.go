package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportJob holds the schema definition for one natural-language report
// request and its rendered result.
type ReportJob struct {
	ent.Schema
}

// Fields of the ReportJob.
func (ReportJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_job_id").
			Unique().
			Immutable(),
		field.Text("query").
			Comment("The operator's natural-language question"),
		field.String("requested_by").
			Optional(),
		field.Enum("status").
			Values("pending", "planning", "running", "completed", "failed").
			Default("pending"),
		field.JSON("plan", map[string]interface{}{}).
			Optional().
			Comment("Model-produced read plan: models, domains, aggregations"),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.Text("narrative").
			Optional(),
		field.Int("tokens_used").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ReportJob.
func (ReportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// One record per attempted AI decision; the complete audit trail of the
// orchestrator. Append-mostly: status and execution fields mutate, history
// is never rewritten.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_log_id").
			Unique().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("automation_type").
			Comment("e.g. 'accounting', 'reconciliation', 'credit'"),
		field.String("action_name"),
		field.String("model").
			Comment("Target ERP model"),
		field.Int64("record_id").
			Comment("Target ERP record"),
		field.Enum("status").
			Values("pending", "approved", "executed", "rejected", "failed").
			Default("pending"),
		field.Float("confidence").
			Default(0),
		field.Text("reasoning").
			Optional(),
		field.JSON("input_snapshot", map[string]interface{}{}).
			Optional(),
		field.JSON("output_snapshot", map[string]interface{}{}).
			Optional(),
		field.JSON("changes_made", map[string]interface{}{}).
			Optional().
			Comment("Side effects held for approval replay"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("executed_at").
			Optional().
			Nillable(),
		field.String("approved_by").
			Optional().
			Nillable(),
		field.Int("tokens_used").
			Default(0),
		field.Time("scan_day").
			Optional().
			Nillable().
			Comment("Day bucket for scheduled-scan idempotency"),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("status"),
		index.Fields("automation_type", "action_name"),
		index.Fields("model", "record_id"),
	}
}

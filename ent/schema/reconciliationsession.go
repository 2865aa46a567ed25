package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReconciliationSession holds the schema definition for a stateful bank
// reconciliation batch. remaining is maintained as
// total_lines - auto_matched - manually_matched - skipped.
type ReconciliationSession struct {
	ent.Schema
}

// Fields of the ReconciliationSession.
func (ReconciliationSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Int64("user_id"),
		field.Int64("journal_id"),
		field.Enum("status").
			Values("active", "completed", "cancelled").
			Default("active"),
		field.Int("total_lines").
			Default(0),
		field.Int("auto_matched").
			Default(0),
		field.Int("manually_matched").
			Default(0),
		field.Int("skipped").
			Default(0),
		field.Int("remaining").
			Default(0),
		field.JSON("learned_rules", []map[string]interface{}{}).
			Optional().
			Comment("Session-scoped rules, persisted at session close"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the ReconciliationSession.
func (ReconciliationSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("user_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEvent holds the raw inbound ERP event, kept for replay and
// short-window deduplication.
type WebhookEvent struct {
	ent.Schema
}

// Fields of the WebhookEvent.
func (WebhookEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_event_id").
			Unique().
			Immutable(),
		field.Enum("event_type").
			Values("create", "write", "unlink"),
		field.String("model"),
		field.Int64("record_id"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.String("payload_hash").
			Comment("SHA-256 of the canonical payload, for dedup"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Bool("processed").
			Default(false),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Indexes of the WebhookEvent.
func (WebhookEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Dedup probe: same event shape within the dedup window.
		index.Fields("event_type", "model", "record_id", "payload_hash"),
		index.Fields("received_at"),
		index.Fields("processed"),
	}
}

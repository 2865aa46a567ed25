package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyDigest holds the schema definition for one generated role digest.
type DailyDigest struct {
	ent.Schema
}

// Fields of the DailyDigest.
func (DailyDigest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("digest_id").
			Unique().
			Immutable(),
		field.Time("digest_date").
			Comment("Day the digest covers, truncated to midnight UTC"),
		field.Enum("user_role").
			Values("cfo", "accountant", "sales_manager", "operations"),
		field.String("headline"),
		field.JSON("sections", []map[string]interface{}{}).
			Comment("Ordered {title, body, severity} blocks"),
		field.Enum("delivery_status").
			Values("pending", "delivered", "channel_disabled", "failed").
			Default("pending"),
		field.Int("tokens_used").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("delivered_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the DailyDigest.
func (DailyDigest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("digest_date", "user_role").
			Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DedupScan holds the schema definition for one deduplication scan over an
// entity type.
type DedupScan struct {
	ent.Schema
}

// Fields of the DedupScan.
func (DedupScan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scan_id").
			Unique().
			Immutable(),
		field.String("scan_type").
			Comment("Entity type scanned, e.g. 'res.partner'"),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Int("records_scanned").
			Default(0),
		field.Int("groups_found").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the DedupScan.
func (DedupScan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("groups", DuplicateGroup.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the DedupScan.
func (DedupScan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_type"),
		index.Fields("created_at"),
	}
}

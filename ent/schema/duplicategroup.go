package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DuplicateGroup holds the schema definition for one cluster of likely
// duplicates found by a scan.
type DuplicateGroup struct {
	ent.Schema
}

// Fields of the DuplicateGroup.
func (DuplicateGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Immutable(),
		field.String("entity_type"),
		field.JSON("record_ids", []int64{}),
		field.Int64("master_record_id").
			Comment("Heuristic nomination; AI or the caller may override"),
		field.Float("similarity_score"),
		field.JSON("matched_fields", []string{}).
			Optional(),
		field.Enum("resolution").
			Values("pending", "merged", "dismissed").
			Default("pending"),
		field.String("resolved_by").
			Optional().
			Nillable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the DuplicateGroup.
func (DuplicateGroup) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", DedupScan.Type).
			Ref("groups").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DuplicateGroup.
func (DuplicateGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_id"),
		index.Fields("resolution"),
	}
}

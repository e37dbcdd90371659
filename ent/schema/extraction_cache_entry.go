package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractionCacheEntry stores one content-extraction result keyed by the
// hash of its source locator, so unchanged materials are not re-fetched.
type ExtractionCacheEntry struct {
	ent.Schema
}

func (ExtractionCacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("content_hash").
			Unique().
			NotEmpty().
			Immutable().
			Comment("SHA-256 of the material locator"),
		field.Bytes("payload").
			Comment("Extractor result, JSON-serialized"),
		field.Time("created_at").
			Default(time.Now).
			Comment("Reset on every put; entries age out from here"),
	}
}

func (ExtractionCacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MediaAsset caches generated media (card illustrations, reference
// audio) so a level's assets are produced once and replayed from disk.
type MediaAsset struct {
	ent.Schema
}

func (MediaAsset) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			NotEmpty().
			Unique().
			Comment("Cache key, e.g. image:<card-id> or audio:<card-id>"),
		field.String("kind").
			NotEmpty().
			Comment("image or audio"),
		field.String("mime_type").
			NotEmpty().
			Comment("MIME type of the payload; audio is raw PCM"),
		field.Bytes("data").
			Comment("The encoded asset bytes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (MediaAsset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}

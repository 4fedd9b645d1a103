package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StateBlob holds one store's full state as a JSON document under a
// fixed key. Each domain store (progress, gamification, quiz,
// reflections) owns exactly one blob and rewrites it on every mutation.
type StateBlob struct {
	ent.Schema
}

func (StateBlob) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Fixed storage key, e.g. \"gamification\""),
		field.JSON("data", map[string]any{}).
			Comment("Full store state as JSON"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the blob was last rewritten"),
	}
}

func (StateBlob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records one tracked learner action: starting or
// completing a module, finishing an exercise or quiz, or completing
// a spaced review.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").NotEmpty().
			Comment("module_started, module_completed, exercise_completed, quiz_completed, review_completed"),
		field.Int("module_id").Optional().Nillable(),
		field.String("exercise_id").Optional().Nillable(),
		field.String("quiz_id").Optional().Nillable(),
		field.Int("points").Default(0),
		field.String("detail").Optional(),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("module_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records a single completed drill attempt on a flashcard,
// either a typed dictation check or a spoken pronunciation pass.
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("level_id").
			NotEmpty().
			Comment("Course module this card belongs to"),
		field.String("card_id").
			NotEmpty().
			Comment("Flashcard the drill ran against"),
		field.String("mode").
			NotEmpty().
			Comment("dictation or pronunciation"),
		field.String("target_text").
			NotEmpty().
			Comment("The phrase being drilled"),
		field.String("attempt_text").
			Default("").
			Comment("What the learner typed or the recognizer heard"),
		field.Bool("correct").
			Comment("Dictation: exact normalized match. Pronunciation: every word exact"),
		field.Int("exact_words").
			Default(0).
			Comment("Target words matched exactly"),
		field.Int("close_words").
			Default(0).
			Comment("Target words within the near-miss threshold"),
		field.Int("missed_words").
			Default(0).
			Comment("Target words with no acceptable match"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from drill start to this attempt"),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level_id"),
		index.Fields("card_id"),
		index.Fields("mode"),
		index.Fields("correct"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records a single answered exam question.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("level_id").
			NotEmpty().
			Comment("Course module the exam belongs to"),
		field.Int("question_index").
			Comment("Position of the question within the exam"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("chosen_option").
			NotEmpty().
			Comment("The option the learner selected"),
		field.String("correct_option").
			NotEmpty().
			Comment("The correct option"),
		field.Bool("correct").
			Comment("Whether the chosen option was correct"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level_id"),
		index.Fields("correct"),
	}
}

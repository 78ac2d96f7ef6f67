package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded answer. The log is append-only and is
// enough to rebuild a learner's engine state from scratch.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam").
			NotEmpty().
			Comment("Exam code the answer counts toward"),
		field.String("session_id").
			NotEmpty().
			Comment("Groups answers recorded in one CLI invocation"),
		field.String("question_id").
			NotEmpty(),
		field.String("domain").
			NotEmpty().
			Comment("Blueprint domain the question belongs to"),
		field.String("difficulty").
			Optional().
			Comment("easy, medium or hard when known"),
		field.Bool("correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("exam", "sequence"),
		index.Fields("question_id"),
	}
}

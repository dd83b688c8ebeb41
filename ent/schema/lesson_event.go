package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records a lesson completion. The idempotency key is
// generated once per completion and reused by the remote push so
// replays can be deduplicated server-side.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").NotEmpty(),
		field.String("lesson_id").NotEmpty(),
		field.Int("score"),
		field.Bool("first_completion"),
		field.String("idempotency_key").NotEmpty(),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("lesson_id"),
	}
}

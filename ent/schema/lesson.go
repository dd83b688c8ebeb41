package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson is an atomic practice unit within a category. It stays locked
// until the preceding lesson (by position) is completed, or until the
// previous category reaches full progress for a category's first lesson.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("lesson_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.Int("position").
			NonNegative(),
		field.Bool("completed").
			Default(false),
		field.Bool("locked").
			Default(true),
		field.Int("score").
			Optional().
			Nillable(),
		field.Time("last_completed").
			Optional().
			Nillable(),
	}
}

func (Lesson) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("lessons").
			Unique(),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
		index.Fields("position"),
	}
}

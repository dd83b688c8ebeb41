package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Category is a themed group of lessons with an aggregate completion
// percentage. Ordering between categories is carried by the explicit
// position field, never by insertion order.
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("category_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("icon").
			Default(""),
		field.String("color").
			Default(""),
		field.Int("position").
			NonNegative(),
		field.Int("progress").
			Default(0).
			Min(0).
			Max(100).
			Comment("Derived completion percentage, persisted for cheap reads"),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("lessons", Lesson.Type),
	}
}

func (Category) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category_id"),
		index.Fields("position"),
	}
}

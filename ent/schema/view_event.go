package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViewEvent records that a word was shown to the learner. The table
// doubles as the view-history log and is trimmed to a fixed size,
// oldest entries first.
type ViewEvent struct {
	ent.Schema
}

func (ViewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ViewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("word_id").NotEmpty(),
	}
}

func (ViewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word_id"),
	}
}

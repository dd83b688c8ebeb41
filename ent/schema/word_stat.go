package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WordStat holds per-word learning telemetry: view and answer counts
// plus the derived learning status.
type WordStat struct {
	ent.Schema
}

func (WordStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("word_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("status").
			Default("new").
			Comment("Learning status: new, learning, or mastered"),
		field.Int("view_count").
			Default(0).
			NonNegative(),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.Int("incorrect_count").
			Default(0).
			NonNegative(),
		field.Time("last_viewed").
			Optional().
			Nillable(),
	}
}

func (WordStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word_id"),
		index.Fields("status"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Progress is the aggregate learning progress for the single local
// learner. At most one row ever exists.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("total_lessons_completed").
			Default(0).
			NonNegative(),
		field.Int("total_points").
			Default(0).
			NonNegative(),
		field.Int("streak").
			Default(0).
			NonNegative(),
		field.String("last_study_date").
			Default("").
			Comment("Calendar date (YYYY-MM-DD) of the most recent activity, empty if none"),
	}
}

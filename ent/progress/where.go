// Code generated by ent, DO NOT EDIT.

package progress

import (
	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldID, id))
}

// TotalLessonsCompleted applies equality check predicate on the "total_lessons_completed" field. It's identical to TotalLessonsCompletedEQ.
func TotalLessonsCompleted(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalLessonsCompleted, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalPoints, v))
}

// Streak applies equality check predicate on the "streak" field. It's identical to StreakEQ.
func Streak(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreak, v))
}

// LastStudyDate applies equality check predicate on the "last_study_date" field. It's identical to LastStudyDateEQ.
func LastStudyDate(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastStudyDate, v))
}

// TotalLessonsCompletedEQ applies the EQ predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedNEQ applies the NEQ predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedIn applies the In predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalLessonsCompleted, vs...))
}

// TotalLessonsCompletedNotIn applies the NotIn predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalLessonsCompleted, vs...))
}

// TotalLessonsCompletedGT applies the GT predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedGTE applies the GTE predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedLT applies the LT predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalLessonsCompleted, v))
}

// TotalLessonsCompletedLTE applies the LTE predicate on the "total_lessons_completed" field.
func TotalLessonsCompletedLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalLessonsCompleted, v))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldTotalPoints, v))
}

// StreakEQ applies the EQ predicate on the "streak" field.
func StreakEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldStreak, v))
}

// StreakNEQ applies the NEQ predicate on the "streak" field.
func StreakNEQ(v int) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldStreak, v))
}

// StreakIn applies the In predicate on the "streak" field.
func StreakIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldStreak, vs...))
}

// StreakNotIn applies the NotIn predicate on the "streak" field.
func StreakNotIn(vs ...int) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldStreak, vs...))
}

// StreakGT applies the GT predicate on the "streak" field.
func StreakGT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldStreak, v))
}

// StreakGTE applies the GTE predicate on the "streak" field.
func StreakGTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldStreak, v))
}

// StreakLT applies the LT predicate on the "streak" field.
func StreakLT(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldStreak, v))
}

// StreakLTE applies the LTE predicate on the "streak" field.
func StreakLTE(v int) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldStreak, v))
}

// LastStudyDateEQ applies the EQ predicate on the "last_study_date" field.
func LastStudyDateEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEQ(FieldLastStudyDate, v))
}

// LastStudyDateNEQ applies the NEQ predicate on the "last_study_date" field.
func LastStudyDateNEQ(v string) predicate.Progress {
	return predicate.Progress(sql.FieldNEQ(FieldLastStudyDate, v))
}

// LastStudyDateIn applies the In predicate on the "last_study_date" field.
func LastStudyDateIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldIn(FieldLastStudyDate, vs...))
}

// LastStudyDateNotIn applies the NotIn predicate on the "last_study_date" field.
func LastStudyDateNotIn(vs ...string) predicate.Progress {
	return predicate.Progress(sql.FieldNotIn(FieldLastStudyDate, vs...))
}

// LastStudyDateGT applies the GT predicate on the "last_study_date" field.
func LastStudyDateGT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGT(FieldLastStudyDate, v))
}

// LastStudyDateGTE applies the GTE predicate on the "last_study_date" field.
func LastStudyDateGTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldGTE(FieldLastStudyDate, v))
}

// LastStudyDateLT applies the LT predicate on the "last_study_date" field.
func LastStudyDateLT(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLT(FieldLastStudyDate, v))
}

// LastStudyDateLTE applies the LTE predicate on the "last_study_date" field.
func LastStudyDateLTE(v string) predicate.Progress {
	return predicate.Progress(sql.FieldLTE(FieldLastStudyDate, v))
}

// LastStudyDateContains applies the Contains predicate on the "last_study_date" field.
func LastStudyDateContains(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContains(FieldLastStudyDate, v))
}

// LastStudyDateHasPrefix applies the HasPrefix predicate on the "last_study_date" field.
func LastStudyDateHasPrefix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasPrefix(FieldLastStudyDate, v))
}

// LastStudyDateHasSuffix applies the HasSuffix predicate on the "last_study_date" field.
func LastStudyDateHasSuffix(v string) predicate.Progress {
	return predicate.Progress(sql.FieldHasSuffix(FieldLastStudyDate, v))
}

// LastStudyDateEqualFold applies the EqualFold predicate on the "last_study_date" field.
func LastStudyDateEqualFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldEqualFold(FieldLastStudyDate, v))
}

// LastStudyDateContainsFold applies the ContainsFold predicate on the "last_study_date" field.
func LastStudyDateContainsFold(v string) predicate.Progress {
	return predicate.Progress(sql.FieldContainsFold(FieldLastStudyDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Progress) predicate.Progress {
	return predicate.Progress(sql.NotPredicates(p))
}

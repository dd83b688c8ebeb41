// Code generated by ent, DO NOT EDIT.

package wordstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldID, id))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldWordID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldStatus, v))
}

// ViewCount applies equality check predicate on the "view_count" field. It's identical to ViewCountEQ.
func ViewCount(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldViewCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldCorrectCount, v))
}

// IncorrectCount applies equality check predicate on the "incorrect_count" field. It's identical to IncorrectCountEQ.
func IncorrectCount(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldIncorrectCount, v))
}

// LastViewed applies equality check predicate on the "last_viewed" field. It's identical to LastViewedEQ.
func LastViewed(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldLastViewed, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...string) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...string) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldWordID, v))
}

// WordIDContains applies the Contains predicate on the "word_id" field.
func WordIDContains(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldContains(FieldWordID, v))
}

// WordIDHasPrefix applies the HasPrefix predicate on the "word_id" field.
func WordIDHasPrefix(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldHasPrefix(FieldWordID, v))
}

// WordIDHasSuffix applies the HasSuffix predicate on the "word_id" field.
func WordIDHasSuffix(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldHasSuffix(FieldWordID, v))
}

// WordIDEqualFold applies the EqualFold predicate on the "word_id" field.
func WordIDEqualFold(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldEqualFold(FieldWordID, v))
}

// WordIDContainsFold applies the ContainsFold predicate on the "word_id" field.
func WordIDContainsFold(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldContainsFold(FieldWordID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.WordStat {
	return predicate.WordStat(sql.FieldContainsFold(FieldStatus, v))
}

// ViewCountEQ applies the EQ predicate on the "view_count" field.
func ViewCountEQ(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldViewCount, v))
}

// ViewCountNEQ applies the NEQ predicate on the "view_count" field.
func ViewCountNEQ(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldViewCount, v))
}

// ViewCountIn applies the In predicate on the "view_count" field.
func ViewCountIn(vs ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldViewCount, vs...))
}

// ViewCountNotIn applies the NotIn predicate on the "view_count" field.
func ViewCountNotIn(vs ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldViewCount, vs...))
}

// ViewCountGT applies the GT predicate on the "view_count" field.
func ViewCountGT(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldViewCount, v))
}

// ViewCountGTE applies the GTE predicate on the "view_count" field.
func ViewCountGTE(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldViewCount, v))
}

// ViewCountLT applies the LT predicate on the "view_count" field.
func ViewCountLT(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldViewCount, v))
}

// ViewCountLTE applies the LTE predicate on the "view_count" field.
func ViewCountLTE(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldViewCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldCorrectCount, v))
}

// IncorrectCountEQ applies the EQ predicate on the "incorrect_count" field.
func IncorrectCountEQ(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldIncorrectCount, v))
}

// IncorrectCountNEQ applies the NEQ predicate on the "incorrect_count" field.
func IncorrectCountNEQ(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldIncorrectCount, v))
}

// IncorrectCountIn applies the In predicate on the "incorrect_count" field.
func IncorrectCountIn(vs ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldIncorrectCount, vs...))
}

// IncorrectCountNotIn applies the NotIn predicate on the "incorrect_count" field.
func IncorrectCountNotIn(vs ...int) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldIncorrectCount, vs...))
}

// IncorrectCountGT applies the GT predicate on the "incorrect_count" field.
func IncorrectCountGT(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldIncorrectCount, v))
}

// IncorrectCountGTE applies the GTE predicate on the "incorrect_count" field.
func IncorrectCountGTE(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldIncorrectCount, v))
}

// IncorrectCountLT applies the LT predicate on the "incorrect_count" field.
func IncorrectCountLT(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldIncorrectCount, v))
}

// IncorrectCountLTE applies the LTE predicate on the "incorrect_count" field.
func IncorrectCountLTE(v int) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldIncorrectCount, v))
}

// LastViewedEQ applies the EQ predicate on the "last_viewed" field.
func LastViewedEQ(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldEQ(FieldLastViewed, v))
}

// LastViewedNEQ applies the NEQ predicate on the "last_viewed" field.
func LastViewedNEQ(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldNEQ(FieldLastViewed, v))
}

// LastViewedIn applies the In predicate on the "last_viewed" field.
func LastViewedIn(vs ...time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldIn(FieldLastViewed, vs...))
}

// LastViewedNotIn applies the NotIn predicate on the "last_viewed" field.
func LastViewedNotIn(vs ...time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldNotIn(FieldLastViewed, vs...))
}

// LastViewedGT applies the GT predicate on the "last_viewed" field.
func LastViewedGT(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldGT(FieldLastViewed, v))
}

// LastViewedGTE applies the GTE predicate on the "last_viewed" field.
func LastViewedGTE(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldGTE(FieldLastViewed, v))
}

// LastViewedLT applies the LT predicate on the "last_viewed" field.
func LastViewedLT(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldLT(FieldLastViewed, v))
}

// LastViewedLTE applies the LTE predicate on the "last_viewed" field.
func LastViewedLTE(v time.Time) predicate.WordStat {
	return predicate.WordStat(sql.FieldLTE(FieldLastViewed, v))
}

// LastViewedIsNil applies the IsNil predicate on the "last_viewed" field.
func LastViewedIsNil() predicate.WordStat {
	return predicate.WordStat(sql.FieldIsNull(FieldLastViewed))
}

// LastViewedNotNil applies the NotNil predicate on the "last_viewed" field.
func LastViewedNotNil() predicate.WordStat {
	return predicate.WordStat(sql.FieldNotNull(FieldLastViewed))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WordStat) predicate.WordStat {
	return predicate.WordStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WordStat) predicate.WordStat {
	return predicate.WordStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WordStat) predicate.WordStat {
	return predicate.WordStat(sql.NotPredicates(p))
}

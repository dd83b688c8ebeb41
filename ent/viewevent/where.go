// Code generated by ent, DO NOT EDIT.

package viewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tanmay/wordtrail/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// WordID applies equality check predicate on the "word_id" field. It's identical to WordIDEQ.
func WordID(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldWordID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// WordIDEQ applies the EQ predicate on the "word_id" field.
func WordIDEQ(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldWordID, v))
}

// WordIDNEQ applies the NEQ predicate on the "word_id" field.
func WordIDNEQ(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldWordID, v))
}

// WordIDIn applies the In predicate on the "word_id" field.
func WordIDIn(vs ...string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldWordID, vs...))
}

// WordIDNotIn applies the NotIn predicate on the "word_id" field.
func WordIDNotIn(vs ...string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldWordID, vs...))
}

// WordIDGT applies the GT predicate on the "word_id" field.
func WordIDGT(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldWordID, v))
}

// WordIDGTE applies the GTE predicate on the "word_id" field.
func WordIDGTE(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldWordID, v))
}

// WordIDLT applies the LT predicate on the "word_id" field.
func WordIDLT(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldWordID, v))
}

// WordIDLTE applies the LTE predicate on the "word_id" field.
func WordIDLTE(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldWordID, v))
}

// WordIDContains applies the Contains predicate on the "word_id" field.
func WordIDContains(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldContains(FieldWordID, v))
}

// WordIDHasPrefix applies the HasPrefix predicate on the "word_id" field.
func WordIDHasPrefix(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldHasPrefix(FieldWordID, v))
}

// WordIDHasSuffix applies the HasSuffix predicate on the "word_id" field.
func WordIDHasSuffix(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldHasSuffix(FieldWordID, v))
}

// WordIDEqualFold applies the EqualFold predicate on the "word_id" field.
func WordIDEqualFold(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEqualFold(FieldWordID, v))
}

// WordIDContainsFold applies the ContainsFold predicate on the "word_id" field.
func WordIDContainsFold(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldContainsFold(FieldWordID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViewEvent) predicate.ViewEvent {
	return predicate.ViewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViewEvent) predicate.ViewEvent {
	return predicate.ViewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViewEvent) predicate.ViewEvent {
	return predicate.ViewEvent(sql.NotPredicates(p))
}

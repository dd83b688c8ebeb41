// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Lesson is the predicate function for lesson builders.
type Lesson func(*sql.Selector)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// SyncEvent is the predicate function for syncevent builders.
type SyncEvent func(*sql.Selector)

// ViewEvent is the predicate function for viewevent builders.
type ViewEvent func(*sql.Selector)

// WordStat is the predicate function for wordstat builders.
type WordStat func(*sql.Selector)

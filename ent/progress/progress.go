// Code generated by ent, DO NOT EDIT.

package progress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progress type in the database.
	Label = "progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTotalLessonsCompleted holds the string denoting the total_lessons_completed field in the database.
	FieldTotalLessonsCompleted = "total_lessons_completed"
	// FieldTotalPoints holds the string denoting the total_points field in the database.
	FieldTotalPoints = "total_points"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldLastStudyDate holds the string denoting the last_study_date field in the database.
	FieldLastStudyDate = "last_study_date"
	// Table holds the table name of the progress in the database.
	Table = "progresses"
)

// Columns holds all SQL columns for progress fields.
var Columns = []string{
	FieldID,
	FieldTotalLessonsCompleted,
	FieldTotalPoints,
	FieldStreak,
	FieldLastStudyDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalLessonsCompleted holds the default value on creation for the "total_lessons_completed" field.
	DefaultTotalLessonsCompleted int
	// TotalLessonsCompletedValidator is a validator for the "total_lessons_completed" field. It is called by the builders before save.
	TotalLessonsCompletedValidator func(int) error
	// DefaultTotalPoints holds the default value on creation for the "total_points" field.
	DefaultTotalPoints int
	// TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	TotalPointsValidator func(int) error
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// StreakValidator is a validator for the "streak" field. It is called by the builders before save.
	StreakValidator func(int) error
	// DefaultLastStudyDate holds the default value on creation for the "last_study_date" field.
	DefaultLastStudyDate string
)

// OrderOption defines the ordering options for the Progress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalLessonsCompleted orders the results by the total_lessons_completed field.
func ByTotalLessonsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLessonsCompleted, opts...).ToFunc()
}

// ByTotalPoints orders the results by the total_points field.
func ByTotalPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPoints, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByLastStudyDate orders the results by the last_study_date field.
func ByLastStudyDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStudyDate, opts...).ToFunc()
}

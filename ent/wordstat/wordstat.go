// Code generated by ent, DO NOT EDIT.

package wordstat

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the wordstat type in the database.
	Label = "word_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldWordID holds the string denoting the word_id field in the database.
	FieldWordID = "word_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldViewCount holds the string denoting the view_count field in the database.
	FieldViewCount = "view_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldIncorrectCount holds the string denoting the incorrect_count field in the database.
	FieldIncorrectCount = "incorrect_count"
	// FieldLastViewed holds the string denoting the last_viewed field in the database.
	FieldLastViewed = "last_viewed"
	// Table holds the table name of the wordstat in the database.
	Table = "word_stats"
)

// Columns holds all SQL columns for wordstat fields.
var Columns = []string{
	FieldID,
	FieldWordID,
	FieldStatus,
	FieldViewCount,
	FieldCorrectCount,
	FieldIncorrectCount,
	FieldLastViewed,
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
	// WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	WordIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultViewCount holds the default value on creation for the "view_count" field.
	DefaultViewCount int
	// ViewCountValidator is a validator for the "view_count" field. It is called by the builders before save.
	ViewCountValidator func(int) error
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	CorrectCountValidator func(int) error
	// DefaultIncorrectCount holds the default value on creation for the "incorrect_count" field.
	DefaultIncorrectCount int
	// IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	IncorrectCountValidator func(int) error
)

// OrderOption defines the ordering options for the WordStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWordID orders the results by the word_id field.
func ByWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByViewCount orders the results by the view_count field.
func ByViewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldViewCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByIncorrectCount orders the results by the incorrect_count field.
func ByIncorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectCount, opts...).ToFunc()
}

// ByLastViewed orders the results by the last_viewed field.
func ByLastViewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastViewed, opts...).ToFunc()
}

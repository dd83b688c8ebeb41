// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "word_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "status_after", Type: field.TypeString},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_word_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
		},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "color", Type: field.TypeString, Default: ""},
		{Name: "position", Type: field.TypeInt},
		{Name: "progress", Type: field.TypeInt, Default: 0},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "category_category_id",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[1]},
			},
			{
				Name:    "category_position",
				Unique:  false,
				Columns: []*schema.Column{CategoriesColumns[5]},
			},
		},
	}
	// LessonsColumns holds the columns for the "lessons" table.
	LessonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lesson_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "locked", Type: field.TypeBool, Default: true},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "last_completed", Type: field.TypeTime, Nullable: true},
		{Name: "category_lessons", Type: field.TypeInt, Nullable: true},
	}
	// LessonsTable holds the schema information for the "lessons" table.
	LessonsTable = &schema.Table{
		Name:       "lessons",
		Columns:    LessonsColumns,
		PrimaryKey: []*schema.Column{LessonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lessons_categories_lessons",
				Columns:    []*schema.Column{LessonsColumns[8]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lesson_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[1]},
			},
			{
				Name:    "lesson_position",
				Unique:  false,
				Columns: []*schema.Column{LessonsColumns[3]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "first_completion", Type: field.TypeBool},
		{Name: "idempotency_key", Type: field.TypeString},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_category_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[4]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "total_lessons_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "last_study_date", Type: field.TypeString, Default: ""},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
	}
	// SyncEventsColumns holds the columns for the "sync_events" table.
	SyncEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "direction", Type: field.TypeString},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// SyncEventsTable holds the schema information for the "sync_events" table.
	SyncEventsTable = &schema.Table{
		Name:       "sync_events",
		Columns:    SyncEventsColumns,
		PrimaryKey: []*schema.Column{SyncEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[1]},
			},
			{
				Name:    "syncevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[2]},
			},
			{
				Name:    "syncevent_direction",
				Unique:  false,
				Columns: []*schema.Column{SyncEventsColumns[3]},
			},
		},
	}
	// ViewEventsColumns holds the columns for the "view_events" table.
	ViewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "word_id", Type: field.TypeString},
	}
	// ViewEventsTable holds the schema information for the "view_events" table.
	ViewEventsTable = &schema.Table{
		Name:       "view_events",
		Columns:    ViewEventsColumns,
		PrimaryKey: []*schema.Column{ViewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "viewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ViewEventsColumns[1]},
			},
			{
				Name:    "viewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ViewEventsColumns[2]},
			},
			{
				Name:    "viewevent_word_id",
				Unique:  false,
				Columns: []*schema.Column{ViewEventsColumns[3]},
			},
		},
	}
	// WordStatsColumns holds the columns for the "word_stats" table.
	WordStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeString, Default: "new"},
		{Name: "view_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "last_viewed", Type: field.TypeTime, Nullable: true},
	}
	// WordStatsTable holds the schema information for the "word_stats" table.
	WordStatsTable = &schema.Table{
		Name:       "word_stats",
		Columns:    WordStatsColumns,
		PrimaryKey: []*schema.Column{WordStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wordstat_word_id",
				Unique:  false,
				Columns: []*schema.Column{WordStatsColumns[1]},
			},
			{
				Name:    "wordstat_status",
				Unique:  false,
				Columns: []*schema.Column{WordStatsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		CategoriesTable,
		LessonsTable,
		LessonEventsTable,
		ProgressesTable,
		SyncEventsTable,
		ViewEventsTable,
		WordStatsTable,
	}
)

func init() {
	LessonsTable.ForeignKeys[0].RefTable = CategoriesTable
}

package store

import (
	"context"
	"time"
)

// WordStat is the per-word learning record. Status is derived from the
// answer counters except when a manual override set it directly; the
// next recorded answer recomputes it.
type WordStat struct {
	WordID         string
	Status         string
	ViewCount      int
	CorrectCount   int
	IncorrectCount int
	LastViewed     *time.Time
}

// Lesson is one practice unit inside a category. Position carries the
// unlock ordering; ids are stable identifiers, never positional.
type Lesson struct {
	LessonID      string
	Title         string
	Position      int
	Completed     bool
	Locked        bool
	Score         *int
	LastCompleted *time.Time
}

// Category is an ordered group of lessons with a derived completion
// percentage (0-100).
type Category struct {
	CategoryID string
	Title      string
	Icon       string
	Color      string
	Position   int
	Progress   int
	Lessons    []Lesson
}

// Progress is the aggregate learning progress for the local learner.
// LastStudyDate is a calendar date in YYYY-MM-DD form, empty if the
// learner has never studied.
type Progress struct {
	TotalLessonsCompleted int
	TotalPoints           int
	Streak                int
	LastStudyDate         string
}

// ViewEntry is one row of the bounded view-history log.
type ViewEntry struct {
	WordID    string
	Timestamp time.Time
}

// WordStatRepo provides read-modify-write access to per-word records.
type WordStatRepo interface {
	// Get returns the record for wordID, or nil if none exists.
	Get(ctx context.Context, wordID string) (*WordStat, error)

	// Put creates or updates the record for ws.WordID.
	Put(ctx context.Context, ws *WordStat) error

	// All returns every word record, ordered by word id.
	All(ctx context.Context) ([]WordStat, error)
}

// CategoryRepo persists the category tree wholesale. The tree is small
// (a handful of categories) and both sync pull and lesson completion
// replace it as a unit, so there is no per-row update surface.
type CategoryRepo interface {
	// LoadTree returns all categories ordered by position, lessons
	// ordered by position within each. Empty slice if never seeded.
	LoadTree(ctx context.Context) ([]Category, error)

	// SaveTree replaces the persisted tree with cats atomically.
	SaveTree(ctx context.Context, cats []Category) error
}

// ProgressRepo persists the aggregate progress singleton.
type ProgressRepo interface {
	// Load returns the aggregate progress, or nil if none was saved yet.
	Load(ctx context.Context) (*Progress, error)

	// Save creates or replaces the singleton row.
	Save(ctx context.Context, p *Progress) error
}

// HistoryRepo is the bounded view-history log. Appends beyond the
// bound drop the oldest entries.
type HistoryRepo interface {
	Append(ctx context.Context, wordID string, at time.Time) error
	Recent(ctx context.Context, limit int) ([]ViewEntry, error)
}

// AnswerEventData captures one answer submission.
type AnswerEventData struct {
	WordID      string
	Correct     bool
	StatusAfter string
}

// LessonEventData captures one lesson completion.
type LessonEventData struct {
	CategoryID      string
	LessonID        string
	Score           int
	FirstCompletion bool
	IdempotencyKey  string
}

// SyncEventData captures one sync attempt against the remote service.
type SyncEventData struct {
	Direction    string // "push" or "pull"
	Endpoint     string
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to the domain event log.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendLessonCompletion(ctx context.Context, data LessonEventData) error
	AppendSync(ctx context.Context, data SyncEventData) error
}

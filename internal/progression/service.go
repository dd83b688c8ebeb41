package progression

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tanmay/wordtrail/internal/store"
)

var (
	// ErrCategoryNotFound is returned when a category id does not exist
	// in the persisted tree.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrLessonNotFound is returned when a lesson id does not exist in
	// the referenced category.
	ErrLessonNotFound = errors.New("lesson not found")
)

// LessonCompletion is the payload mirrored to the remote service when
// a lesson is completed. The idempotency key is generated once per
// completion so server-side replays can be deduplicated.
type LessonCompletion struct {
	CategoryID     string
	LessonID       string
	Score          int
	Progress       store.Progress
	IdempotencyKey string
}

// Pusher mirrors lesson completions to the remote service. Push
// failures are logged and swallowed; they never fail the local
// operation.
type Pusher interface {
	PushLessonCompletion(ctx context.Context, c LessonCompletion) error
}

// CompletionResult reports what a CompleteLesson call changed.
type CompletionResult struct {
	Category           store.Category
	Progress           store.Progress
	FirstCompletion    bool
	UnlockedLessonID   string // next lesson in the category, if newly unlocked
	UnlockedCategoryID string // next category, if its first lesson was unlocked
}

// Engine drives category and lesson progression: percentage
// completion, unlock propagation, and the aggregate learning totals.
// The mutex serializes read-modify-write cycles over the tree.
type Engine struct {
	mu         sync.Mutex
	categories store.CategoryRepo
	progress   store.ProgressRepo
	events     store.EventRepo
	pusher     Pusher

	now func() time.Time
}

// NewEngine creates an Engine. Both events and pusher may be nil; the
// engine then skips event logging or remote pushes respectively.
func NewEngine(categories store.CategoryRepo, progress store.ProgressRepo, events store.EventRepo, pusher Pusher) *Engine {
	return &Engine{
		categories: categories,
		progress:   progress,
		events:     events,
		pusher:     pusher,
		now:        time.Now,
	}
}

// LoadCategories returns the persisted category tree, seeding and
// persisting the default tree on first run.
func (e *Engine) LoadCategories(ctx context.Context) ([]store.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loadOrSeed(ctx)
}

// CompleteLesson marks the lesson completed, unlocks its successor,
// recomputes the category percentage (unlocking the next category at
// 100), and updates the aggregate totals and streak. Completion is
// terminal: a repeat call overwrites score and timestamp but does not
// touch unlock state or the aggregate counters. A still-locked lesson
// may be completed directly; completion implies unlock.
func (e *Engine) CompleteLesson(ctx context.Context, categoryID, lessonID string, score int) (*CompletionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cats, err := e.loadOrSeed(ctx)
	if err != nil {
		return nil, err
	}

	ci := findCategory(cats, categoryID)
	if ci < 0 {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID)
	}
	cat := &cats[ci]

	li := findLesson(cat.Lessons, lessonID)
	if li < 0 {
		return nil, fmt.Errorf("%w: %q in category %q", ErrLessonNotFound, lessonID, categoryID)
	}
	lesson := &cat.Lessons[li]

	now := e.now()
	first := !lesson.Completed
	lesson.Completed = true
	lesson.Locked = false
	lesson.Score = &score
	lesson.LastCompleted = &now

	result := &CompletionResult{FirstCompletion: first}

	if next := nextByPosition(cat.Lessons, lesson.Position); next != nil && next.Locked {
		next.Locked = false
		result.UnlockedLessonID = next.LessonID
	}

	cat.Progress = categoryPercent(cat)
	if cat.Progress == 100 {
		if unlocked := unlockNextCategory(cats, cat.Position); unlocked != "" {
			result.UnlockedCategoryID = unlocked
		}
	}

	if err := e.categories.SaveTree(ctx, cats); err != nil {
		return nil, fmt.Errorf("persist category tree: %w", err)
	}

	agg, err := e.loadProgress(ctx)
	if err != nil {
		return nil, err
	}
	if first {
		agg.TotalLessonsCompleted++
		agg.TotalPoints += score
	}
	ApplyStudyDay(agg, now)
	if err := e.progress.Save(ctx, agg); err != nil {
		return nil, fmt.Errorf("persist progress: %w", err)
	}

	result.Category = cats[ci]
	result.Progress = *agg

	key := uuid.NewString()
	if e.events != nil {
		data := store.LessonEventData{
			CategoryID:      categoryID,
			LessonID:        lessonID,
			Score:           score,
			FirstCompletion: first,
			IdempotencyKey:  key,
		}
		if err := e.events.AppendLessonCompletion(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log lesson event: %v\n", err)
		}
	}

	if e.pusher != nil {
		completion := LessonCompletion{
			CategoryID:     categoryID,
			LessonID:       lessonID,
			Score:          score,
			Progress:       *agg,
			IdempotencyKey: key,
		}
		if err := e.pusher.PushLessonCompletion(ctx, completion); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to push lesson completion: %v\n", err)
		}
	}

	return result, nil
}

// UpdateCategoryProgress recomputes the category's percentage from its
// lesson completion ratio and applies the same unlock propagation as
// CompleteLesson. Used as a consistency repair after external writes
// (e.g. a sync pull).
func (e *Engine) UpdateCategoryProgress(ctx context.Context, categoryID string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cats, err := e.loadOrSeed(ctx)
	if err != nil {
		return 0, err
	}

	ci := findCategory(cats, categoryID)
	if ci < 0 {
		return 0, fmt.Errorf("%w: %q", ErrCategoryNotFound, categoryID)
	}
	cat := &cats[ci]

	cat.Progress = categoryPercent(cat)
	if cat.Progress == 100 {
		unlockNextCategory(cats, cat.Position)
	}

	if err := e.categories.SaveTree(ctx, cats); err != nil {
		return 0, fmt.Errorf("persist category tree: %w", err)
	}
	return cat.Progress, nil
}

// Progress returns the aggregate learning progress, defaulting to the
// zero value if nothing was recorded yet.
func (e *Engine) Progress(ctx context.Context) (store.Progress, error) {
	agg, err := e.loadProgress(ctx)
	if err != nil {
		return store.Progress{}, err
	}
	return *agg, nil
}

func (e *Engine) loadOrSeed(ctx context.Context) ([]store.Category, error) {
	cats, err := e.categories.LoadTree(ctx)
	if err != nil {
		return nil, fmt.Errorf("load category tree: %w", err)
	}
	if len(cats) > 0 {
		return cats, nil
	}

	cats = DefaultTree()
	if err := e.categories.SaveTree(ctx, cats); err != nil {
		return nil, fmt.Errorf("seed category tree: %w", err)
	}
	return cats, nil
}

func (e *Engine) loadProgress(ctx context.Context) (*store.Progress, error) {
	agg, err := e.progress.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if agg == nil {
		agg = &store.Progress{}
	}
	return agg, nil
}

// categoryPercent computes round(100 * completed / total).
func categoryPercent(cat *store.Category) int {
	if len(cat.Lessons) == 0 {
		return 0
	}
	completed := 0
	for _, l := range cat.Lessons {
		if l.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(cat.Lessons)) * 100))
}

func findCategory(cats []store.Category, categoryID string) int {
	for i := range cats {
		if cats[i].CategoryID == categoryID {
			return i
		}
	}
	return -1
}

func findLesson(lessons []store.Lesson, lessonID string) int {
	for i := range lessons {
		if lessons[i].LessonID == lessonID {
			return i
		}
	}
	return -1
}

// nextByPosition returns the lesson with the smallest position greater
// than pos, or nil if none exists.
func nextByPosition(lessons []store.Lesson, pos int) *store.Lesson {
	var next *store.Lesson
	for i := range lessons {
		if lessons[i].Position <= pos {
			continue
		}
		if next == nil || lessons[i].Position < next.Position {
			next = &lessons[i]
		}
	}
	return next
}

// unlockNextCategory unlocks the first lesson of the category following
// pos and returns its id, or "" if there is no next category or nothing
// changed.
func unlockNextCategory(cats []store.Category, pos int) string {
	var next *store.Category
	for i := range cats {
		if cats[i].Position <= pos {
			continue
		}
		if next == nil || cats[i].Position < next.Position {
			next = &cats[i]
		}
	}
	if next == nil {
		return ""
	}
	first := nextByPosition(next.Lessons, -1)
	if first == nil || !first.Locked {
		return ""
	}
	first.Locked = false
	return next.CategoryID
}

package progression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tanmay/wordtrail/internal/store"
)

// memTree is an in-memory CategoryRepo.
type memTree struct {
	cats  []store.Category
	saves int
}

func (m *memTree) LoadTree(_ context.Context) ([]store.Category, error) {
	return cloneTree(m.cats), nil
}

func (m *memTree) SaveTree(_ context.Context, cats []store.Category) error {
	m.cats = cloneTree(cats)
	m.saves++
	return nil
}

func cloneTree(cats []store.Category) []store.Category {
	out := make([]store.Category, len(cats))
	for i, c := range cats {
		out[i] = c
		out[i].Lessons = append([]store.Lesson(nil), c.Lessons...)
	}
	return out
}

// memProgress is an in-memory ProgressRepo.
type memProgress struct {
	p *store.Progress
}

func (m *memProgress) Load(_ context.Context) (*store.Progress, error) {
	if m.p == nil {
		return nil, nil
	}
	copied := *m.p
	return &copied, nil
}

func (m *memProgress) Save(_ context.Context, p *store.Progress) error {
	copied := *p
	m.p = &copied
	return nil
}

// memEvents records appended events.
type memEvents struct {
	lessons []store.LessonEventData
}

func (m *memEvents) AppendAnswer(_ context.Context, _ store.AnswerEventData) error { return nil }

func (m *memEvents) AppendLessonCompletion(_ context.Context, data store.LessonEventData) error {
	m.lessons = append(m.lessons, data)
	return nil
}

func (m *memEvents) AppendSync(_ context.Context, _ store.SyncEventData) error { return nil }

// fakePusher captures pushed completions and can be made to fail.
type fakePusher struct {
	pushed []LessonCompletion
	err    error
}

func (f *fakePusher) PushLessonCompletion(_ context.Context, c LessonCompletion) error {
	f.pushed = append(f.pushed, c)
	return f.err
}

func newTestEngine() (*Engine, *memTree, *memProgress, *memEvents, *fakePusher) {
	tree := &memTree{}
	progress := &memProgress{}
	events := &memEvents{}
	pusher := &fakePusher{}
	e := NewEngine(tree, progress, events, pusher)
	e.now = func() time.Time { return day("2025-03-10") }
	return e, tree, progress, events, pusher
}

func TestLoadCategoriesSeedsDefaultTree(t *testing.T) {
	ctx := context.Background()
	e, tree, _, _, _ := newTestEngine()

	cats, err := e.LoadCategories(ctx)
	if err != nil {
		t.Fatalf("load categories: %v", err)
	}

	if len(cats) != 4 {
		t.Fatalf("seeded %d categories, want 4", len(cats))
	}
	for _, cat := range cats {
		if len(cat.Lessons) != 5 {
			t.Errorf("category %s has %d lessons, want 5", cat.CategoryID, len(cat.Lessons))
		}
		if cat.Progress != 0 {
			t.Errorf("category %s progress = %d, want 0", cat.CategoryID, cat.Progress)
		}
		for _, l := range cat.Lessons {
			wantLocked := l.LessonID != "1-1"
			if l.Locked != wantLocked {
				t.Errorf("lesson %s locked = %v, want %v", l.LessonID, l.Locked, wantLocked)
			}
			if l.Completed {
				t.Errorf("lesson %s starts completed", l.LessonID)
			}
		}
	}

	if tree.saves != 1 {
		t.Errorf("seed persisted %d times, want 1", tree.saves)
	}

	// Second load returns the persisted tree without reseeding.
	if _, err := e.LoadCategories(ctx); err != nil {
		t.Fatalf("reload categories: %v", err)
	}
	if tree.saves != 1 {
		t.Errorf("reload reseeded the tree (%d saves)", tree.saves)
	}
}

func TestCompleteLessonFirstLesson(t *testing.T) {
	ctx := context.Background()
	e, _, _, events, pusher := newTestEngine()

	result, err := e.CompleteLesson(ctx, "1", "1-1", 80)
	if err != nil {
		t.Fatalf("complete lesson: %v", err)
	}

	if !result.FirstCompletion {
		t.Error("expected first completion")
	}
	if result.UnlockedLessonID != "1-2" {
		t.Errorf("unlocked lesson = %q, want 1-2", result.UnlockedLessonID)
	}
	if result.Category.Progress != 20 {
		t.Errorf("category progress = %d, want 20", result.Category.Progress)
	}
	lesson := result.Category.Lessons[0]
	if !lesson.Completed || lesson.Score == nil || *lesson.Score != 80 || lesson.LastCompleted == nil {
		t.Errorf("lesson record = %+v", lesson)
	}

	if result.Progress.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d, want 1", result.Progress.TotalLessonsCompleted)
	}
	if result.Progress.TotalPoints != 80 {
		t.Errorf("TotalPoints = %d, want 80", result.Progress.TotalPoints)
	}
	if result.Progress.Streak != 1 {
		t.Errorf("Streak = %d, want 1", result.Progress.Streak)
	}

	if len(events.lessons) != 1 || len(pusher.pushed) != 1 {
		t.Fatalf("logged %d events, pushed %d completions", len(events.lessons), len(pusher.pushed))
	}
	if events.lessons[0].IdempotencyKey == "" {
		t.Error("event has no idempotency key")
	}
	if pusher.pushed[0].IdempotencyKey != events.lessons[0].IdempotencyKey {
		t.Error("push and event carry different idempotency keys")
	}
}

func TestCompleteLessonNotFound(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newTestEngine()

	if _, err := e.CompleteLesson(ctx, "9", "9-1", 50); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown category: err = %v, want ErrCategoryNotFound", err)
	}
	if _, err := e.CompleteLesson(ctx, "1", "1-9", 50); !errors.Is(err, ErrLessonNotFound) {
		t.Errorf("unknown lesson: err = %v, want ErrLessonNotFound", err)
	}
}

func TestCompleteLessonRepeatOverwritesScoreOnly(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, _ := newTestEngine()

	if _, err := e.CompleteLesson(ctx, "1", "1-1", 80); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	result, err := e.CompleteLesson(ctx, "1", "1-1", 60)
	if err != nil {
		t.Fatalf("repeat completion: %v", err)
	}

	if result.FirstCompletion {
		t.Error("repeat reported as first completion")
	}
	if result.Category.Progress != 20 {
		t.Errorf("progress = %d after repeat, want 20", result.Category.Progress)
	}
	if got := *result.Category.Lessons[0].Score; got != 60 {
		t.Errorf("score = %d, want last-write 60", got)
	}
	if result.Progress.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d after repeat, want 1", result.Progress.TotalLessonsCompleted)
	}
	if result.Progress.TotalPoints != 80 {
		t.Errorf("TotalPoints = %d after repeat, want 80", result.Progress.TotalPoints)
	}
}

func TestCompleteLockedLessonImpliesUnlock(t *testing.T) {
	ctx := context.Background()
	e, tree, _, _, _ := newTestEngine()

	if _, err := e.LoadCategories(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !tree.cats[0].Lessons[2].Locked {
		t.Fatal("lesson 1-3 should start locked")
	}

	result, err := e.CompleteLesson(ctx, "1", "1-3", 70)
	if err != nil {
		t.Fatalf("complete locked lesson: %v", err)
	}

	lesson := result.Category.Lessons[2]
	if !lesson.Completed || lesson.Locked {
		t.Errorf("lesson 1-3 = %+v, want completed and unlocked", lesson)
	}
	if result.UnlockedLessonID != "1-4" {
		t.Errorf("unlocked lesson = %q, want 1-4", result.UnlockedLessonID)
	}
}

func TestCategoryCompletionUnlocksNextCategory(t *testing.T) {
	ctx := context.Background()
	e, tree, _, _, _ := newTestEngine()

	lessonIDs := []string{"1-1", "1-2", "1-3", "1-4", "1-5"}
	var last *CompletionResult
	for _, id := range lessonIDs {
		var err error
		last, err = e.CompleteLesson(ctx, "1", id, 100)
		if err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	if last.Category.Progress != 100 {
		t.Errorf("category progress = %d, want 100", last.Category.Progress)
	}
	if last.UnlockedCategoryID != "2" {
		t.Errorf("unlocked category = %q, want 2", last.UnlockedCategoryID)
	}

	next := tree.cats[1]
	for _, l := range next.Lessons {
		wantLocked := l.LessonID != "2-1"
		if l.Locked != wantLocked {
			t.Errorf("lesson %s locked = %v, want %v", l.LessonID, l.Locked, wantLocked)
		}
	}
}

func TestLastCategoryCompletionHasNothingToUnlock(t *testing.T) {
	ctx := context.Background()
	e, tree, _, _, _ := newTestEngine()

	if _, err := e.LoadCategories(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Unlock category 4 lessons directly so they can be completed.
	for i := range tree.cats[3].Lessons {
		tree.cats[3].Lessons[i].Locked = false
	}

	var last *CompletionResult
	for _, id := range []string{"4-1", "4-2", "4-3", "4-4", "4-5"} {
		var err error
		last, err = e.CompleteLesson(ctx, "4", id, 50)
		if err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}

	if last.Category.Progress != 100 {
		t.Errorf("progress = %d, want 100", last.Category.Progress)
	}
	if last.UnlockedCategoryID != "" {
		t.Errorf("unlocked category = %q, want none", last.UnlockedCategoryID)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	ctx := context.Background()
	e, _, progress, _, _ := newTestEngine()

	now := day("2025-03-10")
	e.now = func() time.Time { return now }

	// Two completions on the same day count once.
	if _, err := e.CompleteLesson(ctx, "1", "1-1", 80); err != nil {
		t.Fatal(err)
	}
	if _, err := e.CompleteLesson(ctx, "1", "1-2", 70); err != nil {
		t.Fatal(err)
	}
	if progress.p.Streak != 1 {
		t.Errorf("Streak = %d after same-day completions, want 1", progress.p.Streak)
	}

	now = day("2025-03-11")
	if _, err := e.CompleteLesson(ctx, "1", "1-3", 90); err != nil {
		t.Fatal(err)
	}
	if progress.p.Streak != 2 {
		t.Errorf("Streak = %d on consecutive day, want 2", progress.p.Streak)
	}
}

func TestCompleteLessonSurvivesPushFailure(t *testing.T) {
	ctx := context.Background()
	e, _, _, _, pusher := newTestEngine()
	pusher.err = errors.New("server down")

	result, err := e.CompleteLesson(ctx, "1", "1-1", 80)
	if err != nil {
		t.Fatalf("completion failed on push error: %v", err)
	}
	if result.Category.Progress != 20 {
		t.Errorf("progress = %d, want 20", result.Category.Progress)
	}
}

func TestUpdateCategoryProgress(t *testing.T) {
	ctx := context.Background()
	e, tree, _, _, _ := newTestEngine()

	if _, err := e.LoadCategories(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Simulate an external write that skipped the percentage update.
	tree.cats[0].Lessons[0].Completed = true
	tree.cats[0].Lessons[1].Completed = true

	got, err := e.UpdateCategoryProgress(ctx, "1")
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if got != 40 {
		t.Errorf("progress = %d, want 40", got)
	}
	if tree.cats[0].Progress != 40 {
		t.Errorf("persisted progress = %d, want 40", tree.cats[0].Progress)
	}

	if _, err := e.UpdateCategoryProgress(ctx, "9"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("unknown category: err = %v", err)
	}
}

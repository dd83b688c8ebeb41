package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// openTestStore opens a store on a test-scoped in-memory database. Each
// test gets its own database because the repos share tables.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWordStatGetPutAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.WordStatRepo()
	ctx := context.Background()

	// No record yet.
	ws, err := repo.Get(ctx, "apple")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ws != nil {
		t.Fatal("expected nil record for unknown word")
	}

	viewed := time.Now().UTC().Truncate(time.Second)
	err = repo.Put(ctx, &WordStat{
		WordID:       "apple",
		Status:       "learning",
		ViewCount:    3,
		CorrectCount: 2,
		LastViewed:   &viewed,
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	ws, err = repo.Get(ctx, "apple")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ws == nil {
		t.Fatal("expected non-nil record")
	}
	if ws.Status != "learning" || ws.ViewCount != 3 || ws.CorrectCount != 2 {
		t.Errorf("record = %+v", ws)
	}
	if ws.LastViewed == nil || !ws.LastViewed.Equal(viewed) {
		t.Errorf("LastViewed = %v, want %v", ws.LastViewed, viewed)
	}

	// Put again updates in place.
	ws.CorrectCount = 5
	ws.Status = "mastered"
	if err := repo.Put(ctx, ws); err != nil {
		t.Fatalf("put (update): %v", err)
	}

	if err := repo.Put(ctx, &WordStat{WordID: "banana", Status: "new"}); err != nil {
		t.Fatalf("put banana: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	if all[0].WordID != "apple" || all[1].WordID != "banana" {
		t.Errorf("order = [%s %s], want word-id order", all[0].WordID, all[1].WordID)
	}
	if all[0].CorrectCount != 5 || all[0].Status != "mastered" {
		t.Errorf("update not persisted: %+v", all[0])
	}
}

func TestCategoryTreeRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.CategoryRepo()
	ctx := context.Background()

	cats, err := repo.LoadTree(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if len(cats) != 0 {
		t.Fatalf("expected empty tree, got %d categories", len(cats))
	}

	score := 80
	in := []Category{
		{CategoryID: "1", Title: "Basics", Icon: "book-open", Color: "#4F86C6", Position: 0, Progress: 20,
			Lessons: []Lesson{
				{LessonID: "1-1", Title: "Basics 1", Position: 0, Completed: true, Score: &score},
				{LessonID: "1-2", Title: "Basics 2", Position: 1, Locked: false},
			}},
		{CategoryID: "2", Title: "Colors", Position: 1,
			Lessons: []Lesson{
				{LessonID: "2-1", Title: "Colors 1", Position: 0, Locked: true},
			}},
	}
	if err := repo.SaveTree(ctx, in); err != nil {
		t.Fatalf("save tree: %v", err)
	}

	got, err := repo.LoadTree(ctx)
	if err != nil {
		t.Fatalf("load tree: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].CategoryID != "1" || got[1].CategoryID != "2" {
		t.Errorf("category order = [%s %s]", got[0].CategoryID, got[1].CategoryID)
	}
	if got[0].Progress != 20 || got[0].Icon != "book-open" {
		t.Errorf("category fields = %+v", got[0])
	}
	if len(got[0].Lessons) != 2 {
		t.Fatalf("lesson count = %d, want 2", len(got[0].Lessons))
	}
	first := got[0].Lessons[0]
	if !first.Completed || first.Score == nil || *first.Score != 80 {
		t.Errorf("lesson 1-1 = %+v", first)
	}
	if got[1].Lessons[0].Locked != true {
		t.Error("lesson 2-1 lost its locked flag")
	}

	// SaveTree replaces the tree wholesale.
	if err := repo.SaveTree(ctx, in[:1]); err != nil {
		t.Fatalf("save smaller tree: %v", err)
	}
	got, err = repo.LoadTree(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len after replace = %d, want 1", len(got))
	}
}

func TestProgressSingleton(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress before first save")
	}

	err = repo.Save(ctx, &Progress{TotalLessonsCompleted: 1, TotalPoints: 80, Streak: 1, LastStudyDate: "2025-03-10"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	err = repo.Save(ctx, &Progress{TotalLessonsCompleted: 2, TotalPoints: 150, Streak: 2, LastStudyDate: "2025-03-11"})
	if err != nil {
		t.Fatalf("save (update): %v", err)
	}

	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatal("expected non-nil progress")
	}
	if p.TotalPoints != 150 || p.Streak != 2 || p.LastStudyDate != "2025-03-11" {
		t.Errorf("progress = %+v", p)
	}

	count, err := s.Client().Progress.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("progress rows = %d, want singleton", count)
	}
}

func TestHistoryBounded(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.HistoryRepo()
	if err != nil {
		t.Fatalf("history repo: %v", err)
	}
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < HistoryLimit+10; i++ {
		wordID := fmt.Sprintf("word-%03d", i)
		if err := repo.Append(ctx, wordID, base.Add(time.Duration(i)*time.Second)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := s.Client().ViewEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != HistoryLimit {
		t.Errorf("stored entries = %d, want %d", count, HistoryLimit)
	}

	entries, err := repo.Recent(ctx, 5)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len(recent) = %d, want 5", len(entries))
	}
	// Newest first.
	if entries[0].WordID != fmt.Sprintf("word-%03d", HistoryLimit+9) {
		t.Errorf("newest entry = %s", entries[0].WordID)
	}

	// Zero and oversized limits clamp to the bound.
	entries, err = repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent (0): %v", err)
	}
	if len(entries) != HistoryLimit {
		t.Errorf("len(recent 0) = %d, want %d", len(entries), HistoryLimit)
	}
}

func TestEventAppends(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	err = repo.AppendAnswer(ctx, AnswerEventData{WordID: "apple", Correct: true, StatusAfter: "learning"})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
	err = repo.AppendLessonCompletion(ctx, LessonEventData{
		CategoryID:      "1",
		LessonID:        "1-1",
		Score:           80,
		FirstCompletion: true,
		IdempotencyKey:  "key-abc",
	})
	if err != nil {
		t.Fatalf("append lesson: %v", err)
	}
	err = repo.AppendSync(ctx, SyncEventData{Direction: "pull", Endpoint: "/api/learning/progress", Success: false, ErrorMessage: "status 500"})
	if err != nil {
		t.Fatalf("append sync: %v", err)
	}

	answers, err := s.Client().AnswerEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if len(answers) != 1 || answers[0].StatusAfter != "learning" {
		t.Errorf("answer events = %+v", answers)
	}

	lessons, err := s.Client().LessonEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query lessons: %v", err)
	}
	if len(lessons) != 1 || lessons[0].IdempotencyKey != "key-abc" {
		t.Errorf("lesson events = %+v", lessons)
	}

	syncs, err := s.Client().SyncEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query syncs: %v", err)
	}
	if len(syncs) != 1 || syncs[0].Success {
		t.Errorf("sync events = %+v", syncs)
	}

	// All three share the global sequence; each is distinct.
	if answers[0].Sequence == lessons[0].Sequence || lessons[0].Sequence == syncs[0].Sequence {
		t.Error("events share sequence numbers")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.WordStatRepo().Put(ctx, &WordStat{WordID: "apple", Status: "new"}); err != nil {
		t.Fatalf("seed word stat: %v", err)
	}
	if err := s.ProgressRepo().Save(ctx, &Progress{TotalPoints: 80}); err != nil {
		t.Fatalf("seed progress: %v", err)
	}
	if err := s.CategoryRepo().SaveTree(ctx, []Category{
		{CategoryID: "1", Title: "Basics", Lessons: []Lesson{{LessonID: "1-1", Title: "Basics 1"}}},
	}); err != nil {
		t.Fatalf("seed tree: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	ws, err := s.WordStatRepo().Get(ctx, "apple")
	if err != nil {
		t.Fatalf("get after reset: %v", err)
	}
	if ws != nil {
		t.Error("word stat survived reset")
	}
	p, err := s.ProgressRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if p != nil {
		t.Error("progress survived reset")
	}
	cats, err := s.CategoryRepo().LoadTree(ctx)
	if err != nil {
		t.Fatalf("load tree after reset: %v", err)
	}
	if len(cats) != 0 {
		t.Error("category tree survived reset")
	}
}

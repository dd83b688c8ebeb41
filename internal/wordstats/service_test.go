package wordstats

import (
	"context"
	"testing"
	"time"

	"github.com/tanmay/wordtrail/internal/store"
)

// memStats is an in-memory WordStatRepo.
type memStats struct {
	records map[string]store.WordStat
}

func newMemStats() *memStats {
	return &memStats{records: make(map[string]store.WordStat)}
}

func (m *memStats) Get(_ context.Context, wordID string) (*store.WordStat, error) {
	ws, ok := m.records[wordID]
	if !ok {
		return nil, nil
	}
	copied := ws
	return &copied, nil
}

func (m *memStats) Put(_ context.Context, ws *store.WordStat) error {
	m.records[ws.WordID] = *ws
	return nil
}

func (m *memStats) All(_ context.Context) ([]store.WordStat, error) {
	var all []store.WordStat
	for _, ws := range m.records {
		all = append(all, ws)
	}
	return all, nil
}

// memHistory records appends without trimming; the FIFO bound is the
// store implementation's concern and is tested there.
type memHistory struct {
	entries []store.ViewEntry
}

func (m *memHistory) Append(_ context.Context, wordID string, at time.Time) error {
	m.entries = append(m.entries, store.ViewEntry{WordID: wordID, Timestamp: at})
	return nil
}

func (m *memHistory) Recent(_ context.Context, limit int) ([]store.ViewEntry, error) {
	if limit <= 0 || limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]store.ViewEntry, 0, limit)
	for i := len(m.entries) - 1; i >= len(m.entries)-limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

// memEvents records appended events.
type memEvents struct {
	answers []store.AnswerEventData
	lessons []store.LessonEventData
	syncs   []store.SyncEventData
}

func (m *memEvents) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func (m *memEvents) AppendLessonCompletion(_ context.Context, data store.LessonEventData) error {
	m.lessons = append(m.lessons, data)
	return nil
}

func (m *memEvents) AppendSync(_ context.Context, data store.SyncEventData) error {
	m.syncs = append(m.syncs, data)
	return nil
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

func newTestTracker() (*Tracker, *memStats, *memHistory, *memEvents, *memProgress) {
	stats := newMemStats()
	history := &memHistory{}
	events := &memEvents{}
	progress := &memProgress{}
	return NewTracker(stats, history, events, progress), stats, history, events, progress
}

func TestStatusUnknownWord(t *testing.T) {
	tr, _, _, _, _ := newTestTracker()

	if got := tr.Status(context.Background(), "hola"); got != StatusNew {
		t.Errorf("Status of unseen word = %q, want %q", got, StatusNew)
	}
}

func TestRecordAnswerThresholds(t *testing.T) {
	ctx := context.Background()
	tr, _, _, _, _ := newTestTracker()

	ws, err := tr.RecordAnswer(ctx, "hola", true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if ws.Status != string(StatusLearning) {
		t.Errorf("after 1 correct: status = %q, want learning", ws.Status)
	}

	for i := 0; i < 4; i++ {
		if ws, err = tr.RecordAnswer(ctx, "hola", true); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}
	if ws.Status != string(StatusMastered) {
		t.Errorf("after 5 correct: status = %q, want mastered", ws.Status)
	}
	if ws.CorrectCount != 5 {
		t.Errorf("CorrectCount = %d, want 5", ws.CorrectCount)
	}

	if got := tr.Status(ctx, "hola"); got != StatusMastered {
		t.Errorf("Status = %q, want mastered", got)
	}
}

func TestRecordAnswerIncorrectDoesNotAdvance(t *testing.T) {
	ctx := context.Background()
	tr, _, _, _, _ := newTestTracker()

	for i := 0; i < 10; i++ {
		if _, err := tr.RecordAnswer(ctx, "gato", false); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}

	if got := tr.Status(ctx, "gato"); got != StatusNew {
		t.Errorf("Status after 10 incorrect = %q, want new", got)
	}
}

func TestRecordViewNeverChangesStatus(t *testing.T) {
	ctx := context.Background()
	tr, _, _, _, _ := newTestTracker()

	for i := 0; i < 3; i++ {
		ws, err := tr.RecordView(ctx, "perro")
		if err != nil {
			t.Fatalf("record view: %v", err)
		}
		if ws.Status != string(StatusNew) {
			t.Errorf("view %d changed status to %q", i+1, ws.Status)
		}
		if ws.ViewCount != i+1 {
			t.Errorf("ViewCount = %d, want %d", ws.ViewCount, i+1)
		}
		if ws.LastViewed == nil {
			t.Error("LastViewed not set")
		}
	}

	// Views on a mastered word leave its status alone too.
	for i := 0; i < 5; i++ {
		if _, err := tr.RecordAnswer(ctx, "perro", true); err != nil {
			t.Fatalf("record answer: %v", err)
		}
	}
	ws, err := tr.RecordView(ctx, "perro")
	if err != nil {
		t.Fatalf("record view: %v", err)
	}
	if ws.Status != string(StatusMastered) {
		t.Errorf("view reset status to %q", ws.Status)
	}
}

func TestRecordViewAppendsHistory(t *testing.T) {
	ctx := context.Background()
	tr, _, history, _, _ := newTestTracker()

	words := []string{"uno", "dos", "uno"}
	for _, w := range words {
		if _, err := tr.RecordView(ctx, w); err != nil {
			t.Fatalf("record view: %v", err)
		}
	}

	if len(history.entries) != 3 {
		t.Fatalf("history has %d entries, want 3", len(history.entries))
	}
	recent, err := tr.History(ctx, 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(recent) != 2 || recent[0].WordID != "uno" || recent[1].WordID != "dos" {
		t.Errorf("Recent(2) = %+v, want newest-first uno, dos", recent)
	}
}

func TestSetStatusOverride(t *testing.T) {
	ctx := context.Background()
	tr, _, _, _, _ := newTestTracker()

	// Override wins over the derived value...
	if _, err := tr.RecordAnswer(ctx, "sol", true); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if err := tr.SetStatus(ctx, "sol", StatusMastered); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if got := tr.Status(ctx, "sol"); got != StatusMastered {
		t.Errorf("Status after override = %q, want mastered", got)
	}

	// ...until the next answer recomputes it from the counters.
	if _, err := tr.RecordAnswer(ctx, "sol", true); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if got := tr.Status(ctx, "sol"); got != StatusLearning {
		t.Errorf("Status after recompute = %q, want learning", got)
	}
}

func TestSetStatusCreatesRecord(t *testing.T) {
	ctx := context.Background()
	tr, stats, _, _, _ := newTestTracker()

	if err := tr.SetStatus(ctx, "luna", StatusLearning); err != nil {
		t.Fatalf("set status: %v", err)
	}
	ws, ok := stats.records["luna"]
	if !ok {
		t.Fatal("no record created")
	}
	if ws.Status != string(StatusLearning) || ws.CorrectCount != 0 {
		t.Errorf("record = %+v, want learning with zero counters", ws)
	}
}

func TestRecordAnswerFeedsStreak(t *testing.T) {
	ctx := context.Background()
	tr, _, _, _, progress := newTestTracker()

	day := func(s string) time.Time {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse day %q: %v", s, err)
		}
		return parsed
	}

	now := day("2025-03-10")
	tr.now = func() time.Time { return now }

	// First answer of the day starts the streak.
	if _, err := tr.RecordAnswer(ctx, "hola", true); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if progress.p == nil {
		t.Fatal("no aggregate progress saved after an answer")
	}
	if progress.p.Streak != 1 || progress.p.LastStudyDate != "2025-03-10" {
		t.Errorf("aggregate = %+v, want streak 1 on 2025-03-10", progress.p)
	}

	// Further answers on the same day do not touch it.
	if _, err := tr.RecordAnswer(ctx, "gato", false); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if progress.p.Streak != 1 {
		t.Errorf("Streak = %d after same-day answers, want 1", progress.p.Streak)
	}

	// An answer on the next day extends the streak.
	now = day("2025-03-11")
	if _, err := tr.RecordAnswer(ctx, "hola", true); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if progress.p.Streak != 2 {
		t.Errorf("Streak = %d on consecutive day, want 2", progress.p.Streak)
	}

	// Answers never change the lesson totals.
	if progress.p.TotalLessonsCompleted != 0 || progress.p.TotalPoints != 0 {
		t.Errorf("answer changed lesson totals: %+v", progress.p)
	}
}

func TestRecordAnswerLogsEvent(t *testing.T) {
	ctx := context.Background()
	tr, _, _, events, _ := newTestTracker()

	if _, err := tr.RecordAnswer(ctx, "mar", false); err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if len(events.answers) != 1 {
		t.Fatalf("logged %d answer events, want 1", len(events.answers))
	}
	ev := events.answers[0]
	if ev.WordID != "mar" || ev.Correct || ev.StatusAfter != string(StatusNew) {
		t.Errorf("event = %+v", ev)
	}
}

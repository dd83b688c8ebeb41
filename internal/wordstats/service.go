package wordstats

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tanmay/wordtrail/internal/progression"
	"github.com/tanmay/wordtrail/internal/store"
)

// Tracker computes and mutates per-word learning status from view and
// answer events. All mutations go through the injected repositories;
// the mutex serializes read-modify-write cycles so rapid-fire events
// on the same word cannot drop an increment.
type Tracker struct {
	mu       sync.Mutex
	stats    store.WordStatRepo
	history  store.HistoryRepo
	events   store.EventRepo
	progress store.ProgressRepo

	now func() time.Time
}

// NewTracker creates a Tracker. The event repo may be nil, in which
// case answer events are not logged. The progress repo may be nil, in
// which case answers do not feed the study streak.
func NewTracker(stats store.WordStatRepo, history store.HistoryRepo, events store.EventRepo, progress store.ProgressRepo) *Tracker {
	return &Tracker{
		stats:    stats,
		history:  history,
		events:   events,
		progress: progress,
		now:      time.Now,
	}
}

// RecordView creates the word's record if absent or increments its view
// count, and appends to the bounded view-history log. It never changes
// the word's status.
func (t *Tracker) RecordView(ctx context.Context, wordID string) (*store.WordStat, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws, err := t.getOrDefault(ctx, wordID)
	if err != nil {
		return nil, err
	}

	now := t.now()
	ws.ViewCount++
	ws.LastViewed = &now

	if err := t.stats.Put(ctx, ws); err != nil {
		return nil, fmt.Errorf("persist word stat: %w", err)
	}

	if t.history != nil {
		if err := t.history.Append(ctx, wordID, now); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to append view history: %v\n", err)
		}
	}

	return ws, nil
}

// RecordAnswer increments the word's correct or incorrect counter and
// recomputes its status from the thresholds. A recompute replaces any
// earlier manual override. Answers count as study activity: the first
// answer on a new calendar day advances the streak.
func (t *Tracker) RecordAnswer(ctx context.Context, wordID string, correct bool) (*store.WordStat, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws, err := t.getOrDefault(ctx, wordID)
	if err != nil {
		return nil, err
	}

	if correct {
		ws.CorrectCount++
	} else {
		ws.IncorrectCount++
	}
	ws.Status = string(DeriveStatus(ws.CorrectCount))

	if err := t.stats.Put(ctx, ws); err != nil {
		return nil, fmt.Errorf("persist word stat: %w", err)
	}

	if err := t.applyStudyDay(ctx); err != nil {
		return nil, err
	}

	if t.events != nil {
		data := store.AnswerEventData{WordID: wordID, Correct: correct, StatusAfter: ws.Status}
		if err := t.events.AppendAnswer(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", err)
		}
	}

	return ws, nil
}

// SetStatus overrides the word's status unconditionally, ignoring the
// answer counters. The override stands until the next RecordAnswer
// recomputes the derived value.
func (t *Tracker) SetStatus(ctx context.Context, wordID string, status Status) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ws, err := t.getOrDefault(ctx, wordID)
	if err != nil {
		return err
	}

	ws.Status = string(status)
	if err := t.stats.Put(ctx, ws); err != nil {
		return fmt.Errorf("persist word stat: %w", err)
	}
	return nil
}

// Status returns the word's current status, or StatusNew if the word
// has never been seen. Storage failures degrade to the default rather
// than surfacing.
func (t *Tracker) Status(ctx context.Context, wordID string) Status {
	ws, err := t.stats.Get(ctx, wordID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read word stat: %v\n", err)
		return StatusNew
	}
	if ws == nil {
		return StatusNew
	}
	return Status(ws.Status)
}

// Stats returns every word record, ordered by word id.
func (t *Tracker) Stats(ctx context.Context) ([]store.WordStat, error) {
	return t.stats.All(ctx)
}

// History returns up to limit recent view-history entries, newest first.
func (t *Tracker) History(ctx context.Context, limit int) ([]store.ViewEntry, error) {
	if t.history == nil {
		return nil, nil
	}
	return t.history.Recent(ctx, limit)
}

// applyStudyDay feeds the once-per-calendar-day streak rule with the
// current activity and persists the aggregate if the streak changed.
func (t *Tracker) applyStudyDay(ctx context.Context) error {
	if t.progress == nil {
		return nil
	}

	agg, err := t.progress.Load(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	if agg == nil {
		agg = &store.Progress{}
	}
	if !progression.ApplyStudyDay(agg, t.now()) {
		return nil
	}
	if err := t.progress.Save(ctx, agg); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

// getOrDefault loads the word's record, creating a default in-memory
// record if none is persisted yet.
func (t *Tracker) getOrDefault(ctx context.Context, wordID string) (*store.WordStat, error) {
	ws, err := t.stats.Get(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("load word stat: %w", err)
	}
	if ws == nil {
		ws = &store.WordStat{WordID: wordID, Status: string(StatusNew)}
	}
	return ws, nil
}

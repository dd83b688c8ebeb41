package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tanmay/wordtrail/ent"
	"github.com/tanmay/wordtrail/ent/viewevent"
)

// HistoryLimit bounds the view-history log. Appends beyond the limit
// trim the oldest entries, FIFO.
const HistoryLimit = 100

// historyRepo implements HistoryRepo over the view-event table.
type historyRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *historyRepo) Append(ctx context.Context, wordID string, at time.Time) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ViewEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(at).
		SetWordID(wordID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save view event: %w", err)
	}

	return r.trim(ctx)
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]ViewEntry, error) {
	if limit <= 0 || limit > HistoryLimit {
		limit = HistoryLimit
	}
	rows, err := r.client.ViewEvent.Query().
		Order(ent.Desc(viewevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query view history: %w", err)
	}
	entries := make([]ViewEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, ViewEntry{WordID: row.WordID, Timestamp: row.Timestamp})
	}
	return entries, nil
}

// trim deletes everything older than the HistoryLimit most recent entries.
func (r *historyRepo) trim(ctx context.Context) error {
	oldest, err := r.client.ViewEvent.Query().
		Order(ent.Desc(viewevent.FieldSequence)).
		Offset(HistoryLimit - 1).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query history for trim: %w", err)
	}
	if len(oldest) == 0 {
		return nil // fewer than HistoryLimit entries exist
	}

	_, err = r.client.ViewEvent.Delete().
		Where(viewevent.SequenceLT(oldest[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("trim view history: %w", err)
	}
	return nil
}

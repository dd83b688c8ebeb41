package store

import (
	"context"
	"fmt"

	"github.com/tanmay/wordtrail/ent"
	"github.com/tanmay/wordtrail/ent/wordstat"
)

// wordStatRepo implements WordStatRepo using the ent client.
type wordStatRepo struct {
	client *ent.Client
}

func (r *wordStatRepo) Get(ctx context.Context, wordID string) (*WordStat, error) {
	ws, err := r.client.WordStat.Query().
		Where(wordstat.WordIDEQ(wordID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query word stat %q: %w", wordID, err)
	}
	return entWordStatToWordStat(ws), nil
}

func (r *wordStatRepo) Put(ctx context.Context, stat *WordStat) error {
	existing, err := r.client.WordStat.Query().
		Where(wordstat.WordIDEQ(stat.WordID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query word stat %q: %w", stat.WordID, err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.WordStat.Create().
			SetWordID(stat.WordID).
			SetStatus(stat.Status).
			SetViewCount(stat.ViewCount).
			SetCorrectCount(stat.CorrectCount).
			SetIncorrectCount(stat.IncorrectCount).
			SetNillableLastViewed(stat.LastViewed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create word stat %q: %w", stat.WordID, err)
		}
		return nil
	}

	_, err = r.client.WordStat.UpdateOne(existing).
		SetStatus(stat.Status).
		SetViewCount(stat.ViewCount).
		SetCorrectCount(stat.CorrectCount).
		SetIncorrectCount(stat.IncorrectCount).
		SetNillableLastViewed(stat.LastViewed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update word stat %q: %w", stat.WordID, err)
	}
	return nil
}

func (r *wordStatRepo) All(ctx context.Context) ([]WordStat, error) {
	rows, err := r.client.WordStat.Query().
		Order(ent.Asc(wordstat.FieldWordID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query word stats: %w", err)
	}
	stats := make([]WordStat, 0, len(rows))
	for _, ws := range rows {
		stats = append(stats, *entWordStatToWordStat(ws))
	}
	return stats, nil
}

func entWordStatToWordStat(ws *ent.WordStat) *WordStat {
	return &WordStat{
		WordID:         ws.WordID,
		Status:         ws.Status,
		ViewCount:      ws.ViewCount,
		CorrectCount:   ws.CorrectCount,
		IncorrectCount: ws.IncorrectCount,
		LastViewed:     ws.LastViewed,
	}
}

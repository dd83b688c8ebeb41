package store

import (
	"context"
	"fmt"

	"github.com/tanmay/wordtrail/ent"
)

// progressRepo implements ProgressRepo using the ent client. A single
// row holds the aggregate; Save replaces it in place.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Load(ctx context.Context) (*Progress, error) {
	row, err := r.client.Progress.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query progress: %w", err)
	}
	return &Progress{
		TotalLessonsCompleted: row.TotalLessonsCompleted,
		TotalPoints:           row.TotalPoints,
		Streak:                row.Streak,
		LastStudyDate:         row.LastStudyDate,
	}, nil
}

func (r *progressRepo) Save(ctx context.Context, p *Progress) error {
	existing, err := r.client.Progress.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query progress: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.Progress.Create().
			SetTotalLessonsCompleted(p.TotalLessonsCompleted).
			SetTotalPoints(p.TotalPoints).
			SetStreak(p.Streak).
			SetLastStudyDate(p.LastStudyDate).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create progress: %w", err)
		}
		return nil
	}

	_, err = r.client.Progress.UpdateOne(existing).
		SetTotalLessonsCompleted(p.TotalLessonsCompleted).
		SetTotalPoints(p.TotalPoints).
		SetStreak(p.Streak).
		SetLastStudyDate(p.LastStudyDate).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update progress: %w", err)
	}
	return nil
}

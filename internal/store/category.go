package store

import (
	"context"
	"fmt"

	"github.com/tanmay/wordtrail/ent"
	"github.com/tanmay/wordtrail/ent/category"
	"github.com/tanmay/wordtrail/ent/lesson"
)

// categoryRepo implements CategoryRepo using the ent client. The tree
// is replaced wholesale inside a transaction so a failed save never
// leaves a half-written tree behind.
type categoryRepo struct {
	client *ent.Client
}

func (r *categoryRepo) LoadTree(ctx context.Context) ([]Category, error) {
	rows, err := r.client.Category.Query().
		Order(ent.Asc(category.FieldPosition)).
		WithLessons(func(q *ent.LessonQuery) {
			q.Order(ent.Asc(lesson.FieldPosition))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	cats := make([]Category, 0, len(rows))
	for _, c := range rows {
		cat := Category{
			CategoryID: c.CategoryID,
			Title:      c.Title,
			Icon:       c.Icon,
			Color:      c.Color,
			Position:   c.Position,
			Progress:   c.Progress,
		}
		for _, l := range c.Edges.Lessons {
			cat.Lessons = append(cat.Lessons, Lesson{
				LessonID:      l.LessonID,
				Title:         l.Title,
				Position:      l.Position,
				Completed:     l.Completed,
				Locked:        l.Locked,
				Score:         l.Score,
				LastCompleted: l.LastCompleted,
			})
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

func (r *categoryRepo) SaveTree(ctx context.Context, cats []Category) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := saveTree(ctx, tx, cats); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tree: %w", err)
	}
	return nil
}

func saveTree(ctx context.Context, tx *ent.Tx, cats []Category) error {
	if _, err := tx.Lesson.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear lessons: %w", err)
	}
	if _, err := tx.Category.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for _, cat := range cats {
		created, err := tx.Category.Create().
			SetCategoryID(cat.CategoryID).
			SetTitle(cat.Title).
			SetIcon(cat.Icon).
			SetColor(cat.Color).
			SetPosition(cat.Position).
			SetProgress(cat.Progress).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create category %q: %w", cat.CategoryID, err)
		}
		for _, l := range cat.Lessons {
			_, err := tx.Lesson.Create().
				SetLessonID(l.LessonID).
				SetTitle(l.Title).
				SetPosition(l.Position).
				SetCompleted(l.Completed).
				SetLocked(l.Locked).
				SetNillableScore(l.Score).
				SetNillableLastCompleted(l.LastCompleted).
				SetCategory(created).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create lesson %q: %w", l.LessonID, err)
			}
		}
	}
	return nil
}

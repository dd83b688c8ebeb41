package remote

import (
	"time"

	"github.com/tanmay/wordtrail/internal/store"
)

// Wire types mirror the REST API's JSON. Categories carry no explicit
// ordering on the wire; array order is authoritative and becomes the
// persisted position on pull.

type wireLesson struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Completed     bool       `json:"completed"`
	Locked        bool       `json:"locked"`
	Score         *int       `json:"score,omitempty"`
	LastCompleted *time.Time `json:"lastCompleted,omitempty"`
}

type wireCategory struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	Progress int          `json:"progress"`
	Lessons  []wireLesson `json:"lessons"`
}

type wireProgress struct {
	TotalLessonsCompleted int    `json:"totalLessonsCompleted"`
	TotalPoints           int    `json:"totalPoints"`
	Streak                int    `json:"streak"`
	LastStudyDate         string `json:"lastStudyDate,omitempty"`
}

// ProgressPayload is the decoded body of a progress pull.
type ProgressPayload struct {
	Categories []store.Category
	Progress   *store.Progress
}

// RemoteStats is the aggregate returned by the stats endpoint.
type RemoteStats struct {
	CategoriesCompleted   int `json:"categoriesCompleted"`
	TotalLessonsCompleted int `json:"totalLessonsCompleted"`
	TotalPoints           int `json:"totalPoints"`
	Streak                int `json:"streak"`
}

func wireToCategories(wire []wireCategory) []store.Category {
	cats := make([]store.Category, 0, len(wire))
	for ci, wc := range wire {
		cat := store.Category{
			CategoryID: wc.ID,
			Title:      wc.Title,
			Icon:       wc.Icon,
			Color:      wc.Color,
			Position:   ci,
			Progress:   wc.Progress,
		}
		for li, wl := range wc.Lessons {
			cat.Lessons = append(cat.Lessons, store.Lesson{
				LessonID:      wl.ID,
				Title:         wl.Title,
				Position:      li,
				Completed:     wl.Completed,
				Locked:        wl.Locked,
				Score:         wl.Score,
				LastCompleted: wl.LastCompleted,
			})
		}
		cats = append(cats, cat)
	}
	return cats
}

func categoriesToWire(cats []store.Category) []wireCategory {
	wire := make([]wireCategory, 0, len(cats))
	for _, cat := range cats {
		wc := wireCategory{
			ID:       cat.CategoryID,
			Title:    cat.Title,
			Icon:     cat.Icon,
			Color:    cat.Color,
			Progress: cat.Progress,
		}
		for _, l := range cat.Lessons {
			wc.Lessons = append(wc.Lessons, wireLesson{
				ID:            l.LessonID,
				Title:         l.Title,
				Completed:     l.Completed,
				Locked:        l.Locked,
				Score:         l.Score,
				LastCompleted: l.LastCompleted,
			})
		}
		wire = append(wire, wc)
	}
	return wire
}

func wireToProgress(wp *wireProgress) *store.Progress {
	if wp == nil {
		return nil
	}
	return &store.Progress{
		TotalLessonsCompleted: wp.TotalLessonsCompleted,
		TotalPoints:           wp.TotalPoints,
		Streak:                wp.Streak,
		LastStudyDate:         wp.LastStudyDate,
	}
}

func progressToWire(p store.Progress) wireProgress {
	return wireProgress{
		TotalLessonsCompleted: p.TotalLessonsCompleted,
		TotalPoints:           p.TotalPoints,
		Streak:                p.Streak,
		LastStudyDate:         p.LastStudyDate,
	}
}

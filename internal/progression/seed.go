package progression

import (
	"fmt"

	"github.com/tanmay/wordtrail/internal/store"
)

// LessonsPerCategory is the lesson count of every seeded category.
const LessonsPerCategory = 5

// seedCategory describes one category of the default tree.
type seedCategory struct {
	id    string
	title string
	icon  string
	color string
}

var seedCategories = []seedCategory{
	{id: "1", title: "Basics", icon: "book-open", color: "#4F86C6"},
	{id: "2", title: "Colors", icon: "palette", color: "#E2725B"},
	{id: "3", title: "Numbers", icon: "hash", color: "#6B9E78"},
	{id: "4", title: "Family", icon: "users", color: "#9B6AC9"},
}

// DefaultTree builds the fixed category tree seeded on first run:
// four categories of five lessons each, everything locked except the
// first lesson of the first category.
func DefaultTree() []store.Category {
	cats := make([]store.Category, 0, len(seedCategories))
	for ci, sc := range seedCategories {
		cat := store.Category{
			CategoryID: sc.id,
			Title:      sc.title,
			Icon:       sc.icon,
			Color:      sc.color,
			Position:   ci,
		}
		for li := 0; li < LessonsPerCategory; li++ {
			cat.Lessons = append(cat.Lessons, store.Lesson{
				LessonID: fmt.Sprintf("%s-%d", sc.id, li+1),
				Title:    fmt.Sprintf("%s %d", sc.title, li+1),
				Position: li,
				Locked:   !(ci == 0 && li == 0),
			})
		}
		cats = append(cats, cat)
	}
	return cats
}

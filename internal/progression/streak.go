package progression

import (
	"time"

	"github.com/tanmay/wordtrail/internal/store"
)

// DateLayout is the calendar-date form used for streak bookkeeping.
const DateLayout = "2006-01-02"

// ApplyStudyDay applies the once-per-calendar-day streak rule to p for
// activity happening at now. Consecutive days extend the streak, a gap
// resets it to 1, and repeated activity on the same day is a no-op.
// Returns true if the streak changed.
func ApplyStudyDay(p *store.Progress, now time.Time) bool {
	today := now.Format(DateLayout)
	if p.LastStudyDate == today {
		return false
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if p.LastStudyDate == yesterday {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LastStudyDate = today
	return true
}

package progression

import (
	"testing"
	"time"

	"github.com/tanmay/wordtrail/internal/store"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestApplyStudyDayFirstActivity(t *testing.T) {
	p := &store.Progress{}

	changed := ApplyStudyDay(p, day("2025-03-10"))

	if !changed {
		t.Error("expected streak change on first activity")
	}
	if p.Streak != 1 {
		t.Errorf("Streak = %d, want 1", p.Streak)
	}
	if p.LastStudyDate != "2025-03-10" {
		t.Errorf("LastStudyDate = %q", p.LastStudyDate)
	}
}

func TestApplyStudyDaySameDayNoOp(t *testing.T) {
	p := &store.Progress{Streak: 3, LastStudyDate: "2025-03-10"}

	changed := ApplyStudyDay(p, day("2025-03-10").Add(6*time.Hour))

	if changed {
		t.Error("same-day activity should not change the streak")
	}
	if p.Streak != 3 {
		t.Errorf("Streak = %d, want 3", p.Streak)
	}
}

func TestApplyStudyDayConsecutive(t *testing.T) {
	p := &store.Progress{Streak: 3, LastStudyDate: "2025-03-10"}

	ApplyStudyDay(p, day("2025-03-11"))

	if p.Streak != 4 {
		t.Errorf("Streak = %d, want 4", p.Streak)
	}
}

func TestApplyStudyDayGapResets(t *testing.T) {
	p := &store.Progress{Streak: 7, LastStudyDate: "2025-03-10"}

	ApplyStudyDay(p, day("2025-03-15"))

	if p.Streak != 1 {
		t.Errorf("Streak = %d, want 1 after a gap", p.Streak)
	}
	if p.LastStudyDate != "2025-03-15" {
		t.Errorf("LastStudyDate = %q", p.LastStudyDate)
	}
}

func TestApplyStudyDayAtMostOncePerDay(t *testing.T) {
	p := &store.Progress{}
	when := day("2025-03-10")

	for i := 0; i < 10; i++ {
		ApplyStudyDay(p, when.Add(time.Duration(i)*time.Hour))
	}

	if p.Streak != 1 {
		t.Errorf("Streak = %d after repeated same-day activity, want 1", p.Streak)
	}
}

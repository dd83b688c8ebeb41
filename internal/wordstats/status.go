package wordstats

import "fmt"

// Status represents a word's position in the learning lifecycle.
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusMastered Status = "mastered"
)

// Correct-answer thresholds for the derived status.
const (
	LearningThreshold = 1
	MasteredThreshold = 5
)

// DeriveStatus computes a word's status from its correct-answer count.
func DeriveStatus(correctCount int) Status {
	switch {
	case correctCount >= MasteredThreshold:
		return StatusMastered
	case correctCount >= LearningThreshold:
		return StatusLearning
	default:
		return StatusNew
	}
}

// ParseStatus parses a status string, for the manual-override path.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNew, StatusLearning, StatusMastered:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q (want new, learning, or mastered)", s)
	}
}

package domain

import (
	"fmt"
	"math"
)

// Progress is a derived completion summary. It is never stored.
type Progress struct {
	Completed int
	Total     int
}

func NewProgress(completed, total int) Progress {
	return Progress{Completed: completed, Total: total}
}

// Percent returns the rounded completion percentage. ok is false when the
// plan has no days.
func (p Progress) Percent() (pct int, ok bool) {
	if p.Total <= 0 {
		return 0, false
	}
	return int(math.Round(100 * float64(p.Completed) / float64(p.Total))), true
}

// Fraction returns completion in [0,1], 0 for an empty plan.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

func (p Progress) IsComplete() bool {
	return p.Total > 0 && p.Completed == p.Total
}

// StreakLabel is the motivational label shown once at least one day is done.
func (p Progress) StreakLabel() string {
	switch {
	case p.Completed <= 0:
		return ""
	case p.Completed == 1:
		return "1 day streak"
	default:
		return fmt.Sprintf("%d day streak", p.Completed)
	}
}

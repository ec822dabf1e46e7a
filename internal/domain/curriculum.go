package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPlan indicates a day sequence that breaks plan invariants.
var ErrInvalidPlan = errors.New("invalid curriculum plan")

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"`
}

// DayPlan is one day of a curriculum. Completed is the only field that
// changes after generation.
type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	Title      string     `json:"title"`
	Objectives []string   `json:"objectives"`
	Resources  []Resource `json:"resources"`
	Assignment string     `json:"assignment"`
	Completed  bool       `json:"completed"`
}

// Curriculum is a generated plan together with the preferences it came from
// and its completion set.
type Curriculum struct {
	ID            string
	Preferences   Preferences
	DisplayTopic  string
	Source        string
	Days          []DayPlan
	CompletedDays []int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Progress derives the completion summary for this curriculum.
func (c *Curriculum) Progress() Progress {
	return NewProgress(len(c.CompletedDays), len(c.Days))
}

// FindDay returns the index of dayNumber in days, or -1.
func FindDay(days []DayPlan, dayNumber int) int {
	for i := range days {
		if days[i].DayNumber == dayNumber {
			return i
		}
	}
	return -1
}

// ValidatePlan checks that day numbers run 1..N in order and every day has a
// title and at least one objective.
func ValidatePlan(days []DayPlan) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: no days", ErrInvalidPlan)
	}
	for i, d := range days {
		if d.DayNumber != i+1 {
			return fmt.Errorf("%w: day at position %d has number %d", ErrInvalidPlan, i+1, d.DayNumber)
		}
		if d.Title == "" {
			return fmt.Errorf("%w: day %d has no title", ErrInvalidPlan, d.DayNumber)
		}
		if len(d.Objectives) == 0 {
			return fmt.Errorf("%w: day %d has no objectives", ErrInvalidPlan, d.DayNumber)
		}
	}
	return nil
}

// CloneDays deep-copies a day sequence.
func CloneDays(days []DayPlan) []DayPlan {
	if days == nil {
		return nil
	}
	out := make([]DayPlan, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Objectives = append([]string(nil), d.Objectives...)
		out[i].Resources = append([]Resource(nil), d.Resources...)
	}
	return out
}

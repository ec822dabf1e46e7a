package testutil

import (
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/generator"
	"github.com/google/uuid"
)

// Preferences options
type PrefsOption func(*domain.Preferences)

func WithPace(p domain.Pace) PrefsOption {
	return func(prefs *domain.Preferences) {
		prefs.Pace = p
	}
}

func WithStyles(s ...domain.Style) PrefsOption {
	return func(prefs *domain.Preferences) {
		prefs.Styles = s
	}
}

func WithDepth(d domain.Depth) PrefsOption {
	return func(prefs *domain.Preferences) {
		prefs.Depth = d
	}
}

// NewTestPreferences returns valid preferences for topic: normal pace,
// videos, beginner.
func NewTestPreferences(topic string, opts ...PrefsOption) domain.Preferences {
	p := domain.Preferences{
		Topic:  topic,
		Pace:   domain.PaceNormal,
		Styles: []domain.Style{domain.StyleVideos},
		Depth:  domain.DepthBeginner,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Curriculum options
type CurriculumOption func(*domain.Curriculum)

// WithCompleted marks days complete in the given order.
func WithCompleted(days ...int) CurriculumOption {
	return func(c *domain.Curriculum) {
		for _, n := range days {
			if i := domain.FindDay(c.Days, n); i >= 0 {
				c.Days[i].Completed = true
				c.CompletedDays = append(c.CompletedDays, n)
			}
		}
	}
}

func WithSource(s string) CurriculumOption {
	return func(c *domain.Curriculum) {
		c.Source = s
	}
}

func WithCreatedAt(t time.Time) CurriculumOption {
	return func(c *domain.Curriculum) {
		c.CreatedAt = t
		c.UpdatedAt = t
	}
}

// NewTestCurriculum builds a locally generated curriculum for prefs.
func NewTestCurriculum(prefs domain.Preferences, opts ...CurriculumOption) *domain.Curriculum {
	now := time.Now().UTC().Truncate(time.Second)
	c := &domain.Curriculum{
		ID:            uuid.New().String(),
		Preferences:   prefs,
		DisplayTopic:  prefs.DisplayTopic(),
		Source:        "local",
		Days:          generator.Generate(prefs),
		CompletedDays: []int{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

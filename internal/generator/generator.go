// Package generator builds deterministic day-by-day curricula from learning
// preferences. It performs no I/O and uses no randomness.
package generator

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

const (
	baseObjectives = 3
	maxObjectives  = 5
	resourceHost   = "https://example.com"
)

// Generate returns the day plans for prefs. The number of days follows the
// pace; an unknown pace yields an empty plan. Empty styles yield days without
// resources.
func Generate(prefs domain.Preferences) []domain.DayPlan {
	topicName := domain.DisplayTopic(prefs.Topic)
	dayCount := prefs.Pace.DayCount()
	difficulty := prefs.Depth.DifficultyLabel()

	days := make([]domain.DayPlan, 0, dayCount)
	for n := 1; n <= dayCount; n++ {
		days = append(days, domain.DayPlan{
			DayNumber:  n,
			Title:      DayTitle(topicName, n, dayCount),
			Objectives: objectives(topicName, difficulty, n),
			Resources:  resources(prefs.Topic, topicName, prefs.Styles, n),
			Assignment: fmt.Sprintf("Complete a %s %s project that demonstrates your understanding of today's concepts.", difficulty, topicName),
		})
	}
	return days
}

// DayTitle names day n of a plan with dayCount days.
func DayTitle(topicName string, n, dayCount int) string {
	switch n {
	case 1:
		return "Introduction to " + topicName
	case dayCount:
		return fmt.Sprintf("Advanced %s Concepts", topicName)
	default:
		return fmt.Sprintf("Building with %s - Part %d", topicName, n-1)
	}
}

// ObjectiveCount grows with the day index: 3 + n/2, capped at 5.
func ObjectiveCount(n int) int {
	return min(baseObjectives+n/2, maxObjectives)
}

func objectives(topicName, difficulty string, n int) []string {
	count := ObjectiveCount(n)
	label := capitalize(difficulty)
	out := make([]string, count)
	for j := range count {
		out[j] = fmt.Sprintf("%s %s objective %d for day %d", label, topicName, j+1, n)
	}
	return out
}

func resources(rawTopic, topicName string, styles []domain.Style, n int) []domain.Resource {
	out := make([]domain.Resource, 0, len(styles))
	for _, s := range styles {
		out = append(out, domain.Resource{
			Title: fmt.Sprintf("%s resource for %s - Day %d", capitalize(string(s)), topicName, n),
			URL:   ResourceURL(rawTopic, s, n),
			Kind:  s.Label(),
		})
	}
	return out
}

// ResourceURL is the stable placeholder link for a topic, style and day.
func ResourceURL(rawTopic string, s domain.Style, n int) string {
	return fmt.Sprintf("%s/%s/%s/%d", resourceHost, url.PathEscape(rawTopic), url.PathEscape(string(s)), n)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

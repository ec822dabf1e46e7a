package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/generator"
	"github.com/stretchr/testify/assert"
)

func webDevPrefs() domain.Preferences {
	return domain.Preferences{
		Topic:  "web-development",
		Pace:   domain.PaceFast,
		Styles: []domain.Style{domain.StyleVideos, domain.StyleHandsOn},
		Depth:  domain.DepthBeginner,
	}
}

func TestFormatDay(t *testing.T) {
	days := generator.Generate(webDevPrefs())

	out := FormatDay(days[0])
	assert.Contains(t, out, "Day 1: Introduction to Web Development")
	assert.Contains(t, out, "○")
	assert.Contains(t, out, "Foundational Web Development objective 1 for day 1")
	assert.Contains(t, out, "[Videos] Videos resource for Web Development - Day 1")
	assert.Contains(t, out, "https://example.com/web-development/videos/1")
	assert.Contains(t, out, "[Hands-on]")
	assert.Contains(t, out, "Complete a foundational Web Development project")
	assert.NotContains(t, out, "Completed")

	days[0].Completed = true
	done := FormatDay(days[0])
	assert.Contains(t, done, "✔")
	assert.Contains(t, done, "Completed")
}

func TestFormatDay_URLOmittedWhenSameAsTitle(t *testing.T) {
	d := domain.DayPlan{
		DayNumber:  1,
		Title:      "Basics",
		Objectives: []string{"learn"},
		Resources:  []domain.Resource{{Title: "https://go.dev/tour", URL: "https://go.dev/tour", Kind: "Resource"}},
	}
	out := FormatDay(d)
	assert.Equal(t, 1, strings.Count(out, "https://go.dev/tour"))
}

func TestFormatOutline_MarksNextDay(t *testing.T) {
	days := generator.Generate(webDevPrefs())
	days[0].Completed = true

	out := FormatOutline(days)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "✔")
	assert.Contains(t, lines[1], "▶")
	assert.NotContains(t, lines[2], "▶")
	assert.Contains(t, lines[2], "╰──")
	assert.Contains(t, lines[0], "[ 3 objectives ]")
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		contains  []string
		absent    []string
	}{
		{
			name: "fresh", completed: 0, total: 5,
			contains: []string{"0 of 5 days completed", "0%", "Let's get started"},
			absent:   []string{"streak"},
		},
		{
			name: "one day", completed: 1, total: 3,
			contains: []string{"1 of 3 days completed", "33%", "1 day streak", "Keep going"},
		},
		{
			name: "finished", completed: 5, total: 5,
			contains: []string{"5 of 5 days completed", "100%", "5 day streak", "Complete", "completed everything"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FormatProgress(domain.NewProgress(tt.completed, tt.total))
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFormatCurriculum(t *testing.T) {
	prefs := webDevPrefs()
	days := generator.Generate(prefs)

	out := FormatCurriculum(CurriculumView{
		Topic:       "Web Development",
		Preferences: &prefs,
		Days:        days,
		Progress:    domain.NewProgress(0, len(days)),
	})

	assert.Contains(t, out, "WEB DEVELOPMENT CURRICULUM")
	assert.Contains(t, out, "Fast pace")
	assert.Contains(t, out, "(3 days)")
	assert.Contains(t, out, "Videos, Hands-on")
	assert.Contains(t, out, "Day 3: Advanced Web Development Concepts")
	assert.Contains(t, out, "0 of 3 days completed")
}

func TestFormatCompletionBanner(t *testing.T) {
	out := FormatCompletionBanner("Web Development")
	assert.Contains(t, out, "Congratulations!")
	assert.Contains(t, out, "entire Web Development curriculum")
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []HistoryRow{
		{ID: "11111111-aaaa", Topic: "Go", Pace: domain.PaceNormal, Depth: domain.DepthAdvanced,
			Source: "local", Active: true, Completed: 2, Total: 5, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "22222222-bbbb", Topic: "Rust", Pace: domain.PaceSlow, Depth: domain.DepthBeginner,
			Source: "gateway", Completed: 0, Total: 7, CreatedAt: now.Add(-72 * time.Hour)},
	}

	out := FormatHistory(rows, now)
	assert.Contains(t, out, "HISTORY")
	assert.Contains(t, out, "11111111")
	assert.NotContains(t, out, "aaaa")
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "Feb 26, 2026")
	assert.Equal(t, 1, strings.Count(out, "● active"))

	assert.Contains(t, FormatHistory(nil, now), "No curricula yet")
}

func TestFormatNotice(t *testing.T) {
	assert.Equal(t, "✔ Day 1 completed! 🎉", FormatNotice(false, "Day 1 completed! 🎉"))
	assert.Equal(t, "✖ Failed to generate curriculum. Please try again.",
		FormatNotice(true, "Failed to generate curriculum. Please try again."))
}

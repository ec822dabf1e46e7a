package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now.Add(-3 * time.Hour), "Today"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"older", time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), "Sep 30, 2022"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDateFrom(tt.input, now))
		})
	}
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", HumanTimestampFrom(now, now))
	assert.Equal(t, "5m ago", HumanTimestampFrom(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2h ago", HumanTimestampFrom(now.Add(-2*time.Hour), now))
	// More than 24h falls back to the date.
	assert.Equal(t, "Feb 5, 2026", HumanTimestampFrom(now.Add(-48*time.Hour), now))
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	assert.Contains(t, TruncID("short"), "short")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("test", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four five", 9)
	assert.Equal(t, "one two\nthree\nfour five", got)

	assert.Equal(t, "untouched", wrapText("  untouched  ", 0))
}

func TestIndentWrapped(t *testing.T) {
	got := indentWrapped("alpha beta gamma", 2, 10)
	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), "line %q not indented", line)
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"value", "x"}, {"v", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "LONGER")
	assert.Contains(t, lines[1], "─")
	// Second column starts at the same offset in every row.
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))

	assert.Empty(t, RenderTable(nil, nil))
}

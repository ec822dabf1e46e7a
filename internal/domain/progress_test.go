package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_Percent(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 7, 14},
	}
	for _, tc := range cases {
		pct, ok := NewProgress(tc.completed, tc.total).Percent()
		require.True(t, ok)
		assert.Equal(t, tc.want, pct, "%d of %d", tc.completed, tc.total)
	}
}

func TestProgress_EmptyPlan(t *testing.T) {
	p := NewProgress(0, 0)
	_, ok := p.Percent()
	assert.False(t, ok)
	assert.False(t, p.IsComplete())
	assert.Zero(t, p.Fraction())
}

func TestProgress_IsComplete(t *testing.T) {
	assert.False(t, NewProgress(2, 3).IsComplete())
	assert.True(t, NewProgress(3, 3).IsComplete())
}

func TestProgress_StreakLabel(t *testing.T) {
	assert.Equal(t, "", NewProgress(0, 5).StreakLabel())
	assert.Equal(t, "1 day streak", NewProgress(1, 5).StreakLabel())
	assert.Equal(t, "4 day streak", NewProgress(4, 5).StreakLabel())
}

func TestValidatePlan(t *testing.T) {
	days := []DayPlan{
		{DayNumber: 1, Title: "a", Objectives: []string{"x"}},
		{DayNumber: 2, Title: "b", Objectives: []string{"y"}},
	}
	require.NoError(t, ValidatePlan(days))

	gap := []DayPlan{days[0], {DayNumber: 3, Title: "c", Objectives: []string{"z"}}}
	assert.ErrorIs(t, ValidatePlan(gap), ErrInvalidPlan)

	noObjectives := []DayPlan{{DayNumber: 1, Title: "a"}}
	assert.ErrorIs(t, ValidatePlan(noObjectives), ErrInvalidPlan)

	assert.ErrorIs(t, ValidatePlan(nil), ErrInvalidPlan)
}

func TestCloneDays_IsDeep(t *testing.T) {
	days := []DayPlan{{DayNumber: 1, Objectives: []string{"x"}, Resources: []Resource{{Title: "r"}}}}
	clone := CloneDays(days)
	clone[0].Objectives[0] = "changed"
	clone[0].Resources[0].Title = "changed"
	clone[0].Completed = true

	assert.Equal(t, "x", days[0].Objectives[0])
	assert.Equal(t, "r", days[0].Resources[0].Title)
	assert.False(t, days[0].Completed)
}

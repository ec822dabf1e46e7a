package generator

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefs(pace domain.Pace, depth domain.Depth, styles ...domain.Style) domain.Preferences {
	return domain.Preferences{Topic: "web-development", Pace: pace, Styles: styles, Depth: depth}
}

func TestGenerate_DayCountByPace(t *testing.T) {
	cases := map[domain.Pace]int{
		domain.PaceSlow:   7,
		domain.PaceNormal: 5,
		domain.PaceFast:   3,
	}
	for pace, want := range cases {
		days := Generate(prefs(pace, domain.DepthBeginner, domain.StyleVideos))
		require.Len(t, days, want, "pace %s", pace)
		for i, d := range days {
			assert.Equal(t, i+1, d.DayNumber)
			assert.False(t, d.Completed)
		}
		assert.NoError(t, domain.ValidatePlan(days))
	}
}

func TestGenerate_ObjectiveCountScaling(t *testing.T) {
	days := Generate(prefs(domain.PaceSlow, domain.DepthIntermediate, domain.StyleArticles))
	want := []int{3, 4, 4, 5, 5, 5, 5}
	for i, d := range days {
		assert.Len(t, d.Objectives, want[i], "day %d", d.DayNumber)
		assert.Equal(t, ObjectiveCount(d.DayNumber), len(d.Objectives))
	}
	assert.Equal(t, "Practical Web Development objective 2 for day 3", days[2].Objectives[1])
}

func TestGenerate_Titles(t *testing.T) {
	for _, pace := range []domain.Pace{domain.PaceSlow, domain.PaceNormal, domain.PaceFast} {
		days := Generate(prefs(pace, domain.DepthAdvanced, domain.StyleVideos))
		assert.True(t, strings.HasPrefix(days[0].Title, "Introduction to "))
		assert.True(t, strings.HasPrefix(days[len(days)-1].Title, "Advanced "))
	}

	days := Generate(prefs(domain.PaceNormal, domain.DepthAdvanced, domain.StyleVideos))
	assert.Equal(t, "Building with Web Development - Part 1", days[1].Title)
	assert.Equal(t, "Building with Web Development - Part 3", days[3].Title)
	assert.Equal(t, "Advanced Web Development Concepts", days[4].Title)
}

func TestGenerate_WebDevelopmentScenario(t *testing.T) {
	days := Generate(prefs(domain.PaceFast, domain.DepthBeginner, domain.StyleVideos, domain.StyleHandsOn))

	require.Len(t, days, 3)
	day1 := days[0]
	assert.Equal(t, "Introduction to Web Development", day1.Title)
	assert.Len(t, day1.Objectives, 3)
	assert.Equal(t, "Foundational Web Development objective 1 for day 1", day1.Objectives[0])

	require.Len(t, day1.Resources, 2)
	assert.Equal(t, domain.Resource{
		Title: "Videos resource for Web Development - Day 1",
		URL:   "https://example.com/web-development/videos/1",
		Kind:  "Videos",
	}, day1.Resources[0])
	assert.Equal(t, "Hands-on resource for Web Development - Day 1", day1.Resources[1].Title)
	assert.Equal(t, "Hands-on", day1.Resources[1].Kind)
	assert.Equal(t, "https://example.com/web-development/hands-on/1", day1.Resources[1].URL)

	assert.Equal(t,
		"Complete a foundational Web Development project that demonstrates your understanding of today's concepts.",
		day1.Assignment)
	assert.Equal(t, "Building with Web Development - Part 1", days[1].Title)
}

func TestGenerate_Deterministic(t *testing.T) {
	p := prefs(domain.PaceNormal, domain.DepthIntermediate, domain.StyleArticles, domain.StyleVideos)
	assert.Equal(t, Generate(p), Generate(p))
}

func TestGenerate_ResourceOrderFollowsSelection(t *testing.T) {
	days := Generate(prefs(domain.PaceFast, domain.DepthBeginner, domain.StyleHandsOn, domain.StyleArticles))
	kinds := []string{days[0].Resources[0].Kind, days[0].Resources[1].Kind}
	assert.Equal(t, []string{"Hands-on", "Articles"}, kinds)
}

func TestGenerate_NoStylesMeansNoResources(t *testing.T) {
	days := Generate(prefs(domain.PaceFast, domain.DepthBeginner))
	for _, d := range days {
		assert.Empty(t, d.Resources)
	}
}

func TestGenerate_TopicWithoutHyphen(t *testing.T) {
	p := domain.Preferences{Topic: "blockchain", Pace: domain.PaceFast, Styles: []domain.Style{domain.StyleVideos}, Depth: domain.DepthBeginner}
	days := Generate(p)
	assert.Equal(t, "Introduction to Blockchain", days[0].Title)
}

func TestGenerate_UnknownPaceIsEmpty(t *testing.T) {
	assert.Empty(t, Generate(prefs("warp", domain.DepthBeginner, domain.StyleVideos)))
}

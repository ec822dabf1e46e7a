package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pathwise/internal/domain"
)

func TestResourceMapping_Resource(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.Resource
	}{
		{"https url", "https://go.dev/doc", domain.Resource{Title: "https://go.dev/doc", URL: "https://go.dev/doc", Kind: "Resource"}},
		{"http url trimmed", "  http://example.com/a  ", domain.Resource{Title: "http://example.com/a", URL: "http://example.com/a", Kind: "Resource"}},
		{"plain name", "The Go Programming Language", domain.Resource{Title: "The Go Programming Language", Kind: "Resource"}},
		{"relative path", "/docs/intro", domain.Resource{Title: "/docs/intro", Kind: "Resource"}},
		{"other scheme", "ftp://example.com/file", domain.Resource{Title: "ftp://example.com/file", Kind: "Resource"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceMapping{}.Resource(tt.raw))
		})
	}
}

func TestResourceMapping_ToDayPlansSkipsBlankResources(t *testing.T) {
	plan := ResourceMapping{Kind: "Video"}.ToDayPlans([]WireDay{
		{Day: 1, Topic: "Basics", Objectives: []string{"a"}, Resources: []string{"", "  ", "Intro video"}, Assignment: "x"},
	})
	require.Len(t, plan, 1)
	assert.Equal(t, []domain.Resource{{Title: "Intro video", Kind: "Video"}}, plan[0].Resources)
	assert.Equal(t, "x", plan[0].Assignment)
}

func TestPlanRequest_DayCount(t *testing.T) {
	assert.Equal(t, 7, PlanRequest{Pace: "slow"}.DayCount())
	assert.Equal(t, 5, PlanRequest{Pace: "normal"}.DayCount())
	assert.Equal(t, 12, PlanRequest{Pace: "fast", Days: 12}.DayCount())
}

func TestNewPlanRequest_RoundTripsPreferences(t *testing.T) {
	prefs := domain.Preferences{
		Topic:  "web-development",
		Pace:   domain.PaceNormal,
		Styles: []domain.Style{domain.StyleHandsOn, domain.StyleVideos},
		Depth:  domain.DepthIntermediate,
	}
	got, err := NewPlanRequest(prefs).Preferences()
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

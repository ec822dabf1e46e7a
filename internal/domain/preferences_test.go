package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrefs() Preferences {
	return Preferences{
		Topic:  "web-development",
		Pace:   PaceFast,
		Styles: []Style{StyleVideos, StyleHandsOn},
		Depth:  DepthBeginner,
	}
}

func TestPreferences_Validate_OK(t *testing.T) {
	assert.NoError(t, validPrefs().Validate())
}

func TestPreferences_Validate_EmptyTopic(t *testing.T) {
	for _, topic := range []string{"", "   "} {
		p := validPrefs()
		p.Topic = topic
		err := p.Validate()
		require.Error(t, err, "topic %q", topic)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "topic")
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestPreferences_Validate_NoStyles(t *testing.T) {
	p := validPrefs()
	p.Styles = nil
	err := p.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"styles"}, keys(verr.Fields))

	p.Styles = []Style{}
	require.Error(t, p.Validate())
}

func TestPreferences_Validate_DuplicateStyle(t *testing.T) {
	p := validPrefs()
	p.Styles = []Style{StyleVideos, StyleVideos}
	require.Error(t, p.Validate())
}

func TestPreferences_Validate_BadEnums(t *testing.T) {
	p := Preferences{
		Topic:  "go",
		Pace:   "sprint",
		Styles: []Style{"podcasts"},
		Depth:  "expert",
	}
	err := p.Validate()

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{"pace", "styles", "depth"}, keys(verr.Fields))
	assert.Contains(t, err.Error(), "pace:")
}

func TestDisplayTopic(t *testing.T) {
	cases := map[string]string{
		"web-development":  "Web Development",
		"machine-learning": "Machine Learning",
		"blockchain":       "Blockchain",
		"ui/ux design":     "Ui/ux design",
		"":                 "",
		"data-":            "Data ",
	}
	for in, want := range cases {
		assert.Equal(t, want, DisplayTopic(in), "input %q", in)
	}
}

func TestPaceDayCount(t *testing.T) {
	assert.Equal(t, 7, PaceSlow.DayCount())
	assert.Equal(t, 5, PaceNormal.DayCount())
	assert.Equal(t, 3, PaceFast.DayCount())
	assert.Equal(t, 0, Pace("warp").DayCount())
}

func TestStyleLabel(t *testing.T) {
	assert.Equal(t, "Videos", StyleVideos.Label())
	assert.Equal(t, "Articles", StyleArticles.Label())
	assert.Equal(t, "Hands-on", StyleHandsOn.Label())
}

func TestParseEnums(t *testing.T) {
	p, err := ParsePace(" Normal ")
	require.NoError(t, err)
	assert.Equal(t, PaceNormal, p)

	d, err := ParseDepth("ADVANCED")
	require.NoError(t, err)
	assert.Equal(t, DepthAdvanced, d)

	styles, err := ParseStyles([]string{"hands-on", "videos"})
	require.NoError(t, err)
	assert.Equal(t, []Style{StyleHandsOn, StyleVideos}, styles)

	_, err = ParsePace("lazy")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseStyles([]string{"videos", "radio"})
	assert.ErrorIs(t, err, ErrValidation)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

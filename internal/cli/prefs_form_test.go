package cli

import (
	"testing"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTopic(t *testing.T) {
	assert.NoError(t, validateTopic("web-development"))

	err := validateTopic("   ")
	require.Error(t, err)
	assert.Equal(t, "Topic is required", err.Error())
}

func TestValidateStyles(t *testing.T) {
	assert.NoError(t, validateStyles([]string{"videos", "hands-on"}))

	err := validateStyles(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Select at least one learning style")

	assert.Error(t, validateStyles([]string{"videos", "videos"}))
	assert.ErrorIs(t, validateStyles([]string{"podcasts"}), domain.ErrValidation)
}

func TestPrefsInput_Complete(t *testing.T) {
	in := prefsInput{Topic: "go", Pace: "fast", Styles: []string{"videos"}, Depth: "beginner"}
	assert.True(t, in.complete())

	in.Styles = nil
	assert.False(t, in.complete())

	assert.False(t, prefsInput{Topic: " ", Pace: "fast", Styles: []string{"videos"}, Depth: "beginner"}.complete())
}

func TestPrefsInput_WithFormDefaults(t *testing.T) {
	in := prefsInput{Topic: "go", Pace: "fast"}.withFormDefaults()
	assert.Equal(t, "fast", in.Pace)
	assert.Equal(t, "beginner", in.Depth)
	assert.Empty(t, in.Styles)

	assert.Equal(t, "normal", prefsInput{}.withFormDefaults().Pace)
}

func TestPrefsInput_Preferences(t *testing.T) {
	prefs, err := prefsInput{
		Topic:  "  web-development ",
		Pace:   "FAST",
		Styles: []string{"videos", "Hands-On"},
		Depth:  "beginner",
	}.preferences()
	require.NoError(t, err)

	assert.Equal(t, domain.Preferences{
		Topic:  "web-development",
		Pace:   domain.PaceFast,
		Styles: []domain.Style{domain.StyleVideos, domain.StyleHandsOn},
		Depth:  domain.DepthBeginner,
	}, prefs)
	assert.NoError(t, prefs.Validate())
}

func TestPrefsInput_PreferencesLeavesMissingForValidate(t *testing.T) {
	prefs, err := prefsInput{Topic: "go"}.preferences()
	require.NoError(t, err)
	assert.Error(t, prefs.Validate())
}

func TestPreferencesForm_Builds(t *testing.T) {
	in := prefsInput{Styles: []string{"articles"}}.withFormDefaults()
	form := preferencesForm(&in)
	require.NotNil(t, form)
}

func TestPaceLabel(t *testing.T) {
	assert.Equal(t, "Slow (7 days)", paceLabel(domain.PaceSlow))
	assert.Equal(t, "Fast (3 days)", paceLabel(domain.PaceFast))
}

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/cli/formatter"
	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pathwiseHuhTheme returns a huh theme using the Gruvbox palette.
func pathwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[✔] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// prefsInput is the raw form state. Empty fields are unanswered.
type prefsInput struct {
	Topic  string
	Pace   string
	Styles []string
	Depth  string
}

// complete reports whether every field has a value.
func (in prefsInput) complete() bool {
	return strings.TrimSpace(in.Topic) != "" && in.Pace != "" && len(in.Styles) > 0 && in.Depth != ""
}

// withFormDefaults fills unanswered selects with the form's initial values.
func (in prefsInput) withFormDefaults() prefsInput {
	if in.Pace == "" {
		in.Pace = string(domain.PaceNormal)
	}
	if in.Depth == "" {
		in.Depth = string(domain.DepthBeginner)
	}
	return in
}

// preferences parses the input. Missing values are left for
// Preferences.Validate to report.
func (in prefsInput) preferences() (domain.Preferences, error) {
	prefs := domain.Preferences{Topic: strings.TrimSpace(in.Topic)}

	if in.Pace != "" {
		p, err := domain.ParsePace(in.Pace)
		if err != nil {
			return prefs, err
		}
		prefs.Pace = p
	}
	styles, err := domain.ParseStyles(in.Styles)
	if err != nil {
		return prefs, err
	}
	prefs.Styles = styles
	if in.Depth != "" {
		d, err := domain.ParseDepth(in.Depth)
		if err != nil {
			return prefs, err
		}
		prefs.Depth = d
	}
	return prefs, nil
}

// preferencesForm collects preferences. Field validators block submission
// until the topic is set and at least one style is selected.
func preferencesForm(in *prefsInput) *huh.Form {
	paceOptions := []huh.Option[string]{
		huh.NewOption(paceLabel(domain.PaceSlow), string(domain.PaceSlow)),
		huh.NewOption(paceLabel(domain.PaceNormal), string(domain.PaceNormal)),
		huh.NewOption(paceLabel(domain.PaceFast), string(domain.PaceFast)),
	}
	styleOptions := make([]huh.Option[string], 0, len(domain.AllStyles))
	for _, s := range domain.AllStyles {
		opt := huh.NewOption(s.Label(), string(s))
		for _, picked := range in.Styles {
			if picked == string(s) {
				opt = opt.Selected(true)
			}
		}
		styleOptions = append(styleOptions, opt)
	}
	depthOptions := []huh.Option[string]{
		huh.NewOption("Beginner", string(domain.DepthBeginner)),
		huh.NewOption("Intermediate", string(domain.DepthIntermediate)),
		huh.NewOption("Advanced", string(domain.DepthAdvanced)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you want to learn?").
				Description("e.g. web-development, machine-learning").
				Placeholder("web-development").
				Value(&in.Topic).
				Validate(validateTopic),
			huh.NewSelect[string]().
				Title("Learning pace").
				Options(paceOptions...).
				Value(&in.Pace),
			huh.NewMultiSelect[string]().
				Title("Learning styles").
				Description("Select one or more").
				Options(styleOptions...).
				Value(&in.Styles).
				Validate(validateStyles),
			huh.NewSelect[string]().
				Title("Learning depth").
				Options(depthOptions...).
				Value(&in.Depth),
		),
	).WithTheme(pathwiseHuhTheme()).WithShowHelp(false)
}

func paceLabel(p domain.Pace) string {
	name := string(p)
	return fmt.Sprintf("%s (%d days)", strings.ToUpper(name[:1])+name[1:], p.DayCount())
}

func validateTopic(s string) error {
	return fieldError(domain.Preferences{Topic: s}, "topic")
}

func validateStyles(selected []string) error {
	styles, err := domain.ParseStyles(selected)
	if err != nil {
		return err
	}
	return fieldError(domain.Preferences{Styles: styles}, "styles")
}

// fieldError runs the full preference validation and returns only the
// message for field, so the form and the manager agree on wording.
func fieldError(p domain.Preferences, field string) error {
	var verr *domain.ValidationError
	if err := p.Validate(); errors.As(err, &verr) {
		if msg, ok := verr.Fields[field]; ok {
			return errors.New(msg)
		}
	}
	return nil
}

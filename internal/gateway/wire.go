package gateway

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// PlanRequest is the body of POST /generate-plan.
type PlanRequest struct {
	Topic     string   `json:"topic" binding:"required"`
	Pace      string   `json:"pace" binding:"required,oneof=slow normal fast"`
	Style     []string `json:"style" binding:"required,min=1,dive,oneof=videos articles hands-on"`
	Depth     string   `json:"depth" binding:"required,oneof=beginner intermediate advanced"`
	Days      int      `json:"days,omitempty" binding:"omitempty,min=1,max=30"`
	StartDate string   `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// NewPlanRequest builds the request body for prefs.
func NewPlanRequest(prefs domain.Preferences) PlanRequest {
	return PlanRequest{
		Topic: prefs.Topic,
		Pace:  string(prefs.Pace),
		Style: prefs.StyleStrings(),
		Depth: string(prefs.Depth),
	}
}

// Preferences converts the request into validated domain preferences.
func (r PlanRequest) Preferences() (domain.Preferences, error) {
	styles := make([]domain.Style, len(r.Style))
	for i, s := range r.Style {
		styles[i] = domain.Style(s)
	}
	prefs := domain.Preferences{
		Topic:  r.Topic,
		Pace:   domain.Pace(r.Pace),
		Styles: styles,
		Depth:  domain.Depth(r.Depth),
	}
	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

// DayCount is the explicit day count when given, otherwise the pace's.
func (r PlanRequest) DayCount() int {
	if r.Days > 0 {
		return r.Days
	}
	return domain.Pace(r.Pace).DayCount()
}

// WireDay is one day as the completion model returns it and as the gateway
// serves it.
type WireDay struct {
	Day        int      `json:"day"`
	Topic      string   `json:"topic"`
	Objectives []string `json:"objectives"`
	Resources  []string `json:"resources"`
	Assignment string   `json:"assignment"`
}

// validateWireDays checks the wire schema and that exactly want days came
// back. A want of 0 skips the count check.
func validateWireDays(days []WireDay, want int) error {
	if len(days) == 0 {
		return fmt.Errorf("expected at least one day")
	}
	if want > 0 && len(days) != want {
		return fmt.Errorf("plan has %d days, want %d", len(days), want)
	}
	for i, d := range days {
		if d.Day != i+1 {
			return fmt.Errorf("day %d at position %d, want %d", d.Day, i+1, i+1)
		}
		if strings.TrimSpace(d.Topic) == "" {
			return fmt.Errorf("day %d has no topic", d.Day)
		}
		if len(d.Objectives) == 0 {
			return fmt.Errorf("day %d has no objectives", d.Day)
		}
	}
	return nil
}

// DefaultResourceKind labels resources that arrive as bare strings.
const DefaultResourceKind = "Resource"

// ResourceMapping is the policy for turning flat resource strings into
// structured resources. An absolute http(s) URL becomes both title and URL;
// any other string becomes a title with no URL. Every resource gets Kind.
type ResourceMapping struct {
	Kind string
}

func (m ResourceMapping) kind() string {
	if m.Kind == "" {
		return DefaultResourceKind
	}
	return m.Kind
}

// Resource maps a single flat resource string.
func (m ResourceMapping) Resource(raw string) domain.Resource {
	s := strings.TrimSpace(raw)
	if isHTTPURL(s) {
		return domain.Resource{Title: s, URL: s, Kind: m.kind()}
	}
	return domain.Resource{Title: s, Kind: m.kind()}
}

// ToDayPlans adapts wire days into canonical day plans.
func (m ResourceMapping) ToDayPlans(days []WireDay) []domain.DayPlan {
	out := make([]domain.DayPlan, 0, len(days))
	for _, d := range days {
		resources := make([]domain.Resource, 0, len(d.Resources))
		for _, r := range d.Resources {
			if strings.TrimSpace(r) == "" {
				continue
			}
			resources = append(resources, m.Resource(r))
		}
		out = append(out, domain.DayPlan{
			DayNumber:  d.Day,
			Title:      d.Topic,
			Objectives: append([]string(nil), d.Objectives...),
			Resources:  resources,
			Assignment: d.Assignment,
		})
	}
	return out
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

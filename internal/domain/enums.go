package domain

import (
	"fmt"
	"strings"
)

type Pace string

const (
	PaceSlow   Pace = "slow"
	PaceNormal Pace = "normal"
	PaceFast   Pace = "fast"
)

// DayCount returns the number of days a plan spans at this pace.
// Returns 0 for an unknown pace.
func (p Pace) DayCount() int {
	switch p {
	case PaceSlow:
		return 7
	case PaceNormal:
		return 5
	case PaceFast:
		return 3
	default:
		return 0
	}
}

func (p Pace) Valid() bool { return p.DayCount() > 0 }

type Style string

const (
	StyleVideos   Style = "videos"
	StyleArticles Style = "articles"
	StyleHandsOn  Style = "hands-on"
)

// AllStyles lists styles in form order.
var AllStyles = []Style{StyleVideos, StyleArticles, StyleHandsOn}

func (s Style) Valid() bool {
	switch s {
	case StyleVideos, StyleArticles, StyleHandsOn:
		return true
	}
	return false
}

// Label is the resource kind shown for this style.
func (s Style) Label() string {
	if s == StyleHandsOn {
		return "Hands-on"
	}
	return capitalizeFirst(string(s))
}

type Depth string

const (
	DepthBeginner     Depth = "beginner"
	DepthIntermediate Depth = "intermediate"
	DepthAdvanced     Depth = "advanced"
)

func (d Depth) Valid() bool { return d.DifficultyLabel() != "" }

// DifficultyLabel maps a depth to the wording used in generated objectives
// and assignments.
func (d Depth) DifficultyLabel() string {
	switch d {
	case DepthBeginner:
		return "foundational"
	case DepthIntermediate:
		return "practical"
	case DepthAdvanced:
		return "advanced"
	default:
		return ""
	}
}

func ParsePace(s string) (Pace, error) {
	p := Pace(normalizeEnum(s))
	if !p.Valid() {
		return "", fmt.Errorf("invalid pace %q (want slow, normal or fast): %w", s, ErrValidation)
	}
	return p, nil
}

func ParseStyle(s string) (Style, error) {
	st := Style(normalizeEnum(s))
	if !st.Valid() {
		return "", fmt.Errorf("invalid style %q (want videos, articles or hands-on): %w", s, ErrValidation)
	}
	return st, nil
}

// ParseStyles parses each entry and keeps selection order.
func ParseStyles(raw []string) ([]Style, error) {
	out := make([]Style, 0, len(raw))
	for _, r := range raw {
		st, err := ParseStyle(r)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func ParseDepth(s string) (Depth, error) {
	d := Depth(normalizeEnum(s))
	if !d.Valid() {
		return "", fmt.Errorf("invalid depth %q (want beginner, intermediate or advanced): %w", s, ErrValidation)
	}
	return d, nil
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

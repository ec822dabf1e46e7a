package domain

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks input rejected before generation starts.
var ErrValidation = errors.New("validation error")

// Preferences is the form input a curriculum is generated from.
type Preferences struct {
	Topic  string  `json:"topic" validate:"required"`
	Pace   Pace    `json:"pace" validate:"required,oneof=slow normal fast"`
	Styles []Style `json:"styles" validate:"required,min=1,unique,dive,oneof=videos articles hands-on"`
	Depth  Depth   `json:"depth" validate:"required,oneof=beginner intermediate advanced"`
}

// ValidationError collects per-field messages keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid preferences: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

var prefsValidator = newPrefsValidator()

func newPrefsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages mirrors the wording of the preference form.
var fieldMessages = map[string]string{
	"topic":  "Topic is required",
	"pace":   "Learning pace must be slow, normal or fast",
	"styles": "Select at least one learning style (videos, articles, hands-on), each at most once",
	"depth":  "Learning depth must be beginner, intermediate or advanced",
}

// Validate checks every preference invariant and returns a *ValidationError
// listing each failing field, or nil.
func (p Preferences) Validate() error {
	fields := map[string]string{}

	if err := prefsValidator.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating preferences: %w", err)
		}
		for _, fe := range verrs {
			// Styles[1] reports as "styles[1]"; collapse onto the form field.
			name, _, _ := strings.Cut(fe.Field(), "[")
			fields[name] = fieldMessages[name]
		}
	}
	if _, ok := fields["topic"]; !ok && strings.TrimSpace(p.Topic) == "" {
		fields["topic"] = fieldMessages["topic"]
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// DisplayTopic is the human-readable topic name.
func (p Preferences) DisplayTopic() string {
	return DisplayTopic(p.Topic)
}

// DisplayTopic turns a kebab-case topic into Title Case. A topic without a
// hyphen only has its first letter capitalized.
func DisplayTopic(raw string) string {
	if !strings.Contains(raw, "-") {
		return capitalizeFirst(raw)
	}
	words := strings.Split(raw, "-")
	for i, w := range words {
		words[i] = capitalizeFirst(w)
	}
	return strings.Join(words, " ")
}

// StyleStrings returns the raw style values in selection order.
func (p Preferences) StyleStrings() []string {
	out := make([]string, len(p.Styles))
	for i, s := range p.Styles {
		out[i] = string(s)
	}
	return out
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

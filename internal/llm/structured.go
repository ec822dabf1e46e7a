package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// SchemaValidator checks a value after it has been decoded.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object or array in raw model output
// into T. Markdown fences, surrounding prose, comments and trailing commas
// are tolerated.
//
// Failures wrap ErrInvalidOutput. Output that is JSON but does not fit T,
// or that validator rejects, additionally wraps ErrSchemaViolation.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	block := extractJSONBlock(stripCodeFences(raw))
	if block == "" {
		return zero, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}
	block = stripTrailingCommas(stripJSONComments(block))

	var result T
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return zero, fmt.Errorf("%w: %w: %v", ErrInvalidOutput, ErrSchemaViolation, err)
		}
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: %w: %v", ErrInvalidOutput, ErrSchemaViolation, err)
		}
	}
	return result, nil
}

// stripCodeFences drops ``` fence lines and keeps everything else.
func stripCodeFences(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// stringTracker follows whether a byte scan is inside a JSON string.
type stringTracker struct {
	inString bool
	escaped  bool
}

// step consumes c and reports whether it belongs to a string literal,
// quotes included.
func (t *stringTracker) step(c byte) bool {
	switch {
	case t.escaped:
		t.escaped = false
		return true
	case t.inString && c == '\\':
		t.escaped = true
		return true
	case c == '"':
		t.inString = !t.inString
		return true
	default:
		return t.inString
	}
}

// extractJSONBlock returns the first balanced {...} or [...] block,
// whichever opens first, or "" when none closes.
func extractJSONBlock(s string) string {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return ""
	}
	open, closing := s[start], byte('}')
	if open == '[' {
		closing = ']'
	}

	var tr stringTracker
	depth := 0
	for i := start; i < len(s); i++ {
		if tr.step(s[i]) {
			continue
		}
		switch s[i] {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// stripJSONComments removes // and /* */ comments outside strings.
func stripJSONComments(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var tr stringTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if tr.step(c) {
			b.WriteByte(c)
			continue
		}
		if c == '/' && i+1 < len(s) {
			switch s[i+1] {
			case '/':
				for i+1 < len(s) && s[i+1] != '\n' {
					i++
				}
				continue
			case '*':
				end := strings.Index(s[i+2:], "*/")
				if end < 0 {
					return b.String()
				}
				i += 2 + end + 1
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// stripTrailingCommas drops a comma that directly precedes ] or }, ignoring
// whitespace.
func stripTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var tr stringTracker
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !tr.step(c) && c == ',' {
			j := i + 1
			for j < len(s) && strings.IndexByte(" \t\r\n", s[j]) >= 0 {
				j++
			}
			if j < len(s) && (s[j] == ']' || s[j] == '}') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

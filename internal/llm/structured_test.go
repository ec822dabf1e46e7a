package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDay struct {
	Day        int      `json:"day"`
	Topic      string   `json:"topic"`
	Objectives []string `json:"objectives"`
}

type testEnvelope struct {
	Status string `json:"status"`
}

func TestExtractJSON_CleanArray(t *testing.T) {
	raw := `[{"day":1,"topic":"Intro to Go","objectives":["Install Go"]}]`
	result, err := ExtractJSON[[]testDay](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Intro to Go", result[0].Topic)
}

func TestExtractJSON_FencedArray(t *testing.T) {
	raw := "```json\n[{\"day\":1,\"topic\":\"a\"},{\"day\":2,\"topic\":\"b\"}]\n```"
	result, err := ExtractJSON[[]testDay](raw, nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestExtractJSON_ArrayWithSurroundingProse(t *testing.T) {
	raw := "Here is your 3-day plan:\n[{\"day\":1,\"topic\":\"Basics [part 1]\"}]\nGood luck!"
	result, err := ExtractJSON[[]testDay](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Basics [part 1]", result[0].Topic)
}

func TestExtractJSON_Object(t *testing.T) {
	raw := "Result: {\"status\":\"ok\"} done"
	result, err := ExtractJSON[testEnvelope](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Status)
}

func TestExtractJSON_CommentsAndTrailingCommas(t *testing.T) {
	raw := "[\n  // first day\n  {\"day\":1, /* intro */ \"topic\":\"x\",\"objectives\":[\"a\",],},\n]"
	result, err := ExtractJSON[[]testDay](raw, nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].Day)
	assert.Equal(t, []string{"a"}, result[0].Objectives)
}

func TestExtractJSON_CommentMarkersInsideStrings(t *testing.T) {
	raw := `[{"day":1,"topic":"see https://go.dev/doc, then /* nothing */ ,]"}]`
	result, err := ExtractJSON[[]testDay](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "see https://go.dev/doc, then /* nothing */ ,]", result[0].Topic)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[[]testDay]("Sorry, I cannot help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[[]testDay](`[{"day":1, broken}]`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestExtractJSON_ValidationFailure(t *testing.T) {
	validator := func(days []testDay) error {
		if len(days) == 0 {
			return fmt.Errorf("no days")
		}
		return nil
	}
	_, err := ExtractJSON(`[]`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), "no days")
}

func TestExtractJSON_EscapedQuotesInString(t *testing.T) {
	raw := `[{"day":1,"topic":"say \"hi\" ]"}]`
	result, err := ExtractJSON[[]testDay](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `say "hi" ]`, result[0].Topic)
}

func TestExtractJSON_WrongShapeIsSchemaViolation(t *testing.T) {
	_, err := ExtractJSON[[]testDay](`{"day": 1, "topic": "not an array"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}

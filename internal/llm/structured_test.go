package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draftPayload struct {
	Title   string `json:"title"`
	Minutes int    `json:"minutes"`
}

func TestExtractJSON_Plain(t *testing.T) {
	got, err := ExtractJSON[draftPayload](`{"title": "Stock day", "minutes": 90}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Stock day", got.Title)
	assert.Equal(t, 90, got.Minutes)
}

func TestExtractJSON_MarkdownFenced(t *testing.T) {
	raw := "Here is the plan:\n```json\n{\"title\": \"Stock day\", \"minutes\": 90}\n```\nLet me know!"
	got, err := ExtractJSON[draftPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Stock day", got.Title)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := `Sure! {"title": "Prep", "minutes": 30} hope that helps.`
	got, err := ExtractJSON[draftPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Prep", got.Title)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"title": "Chop {finely}", "minutes": 10}`
	got, err := ExtractJSON[draftPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Chop {finely}", got.Title)
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	raw := `{"title": "Say \"done\" when ready", "minutes": 5}`
	got, err := ExtractJSON[draftPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Say "done" when ready`, got.Title)
}

func TestExtractJSON_NestedObject(t *testing.T) {
	type nested struct {
		Plan draftPayload `json:"plan"`
	}
	raw := `{"plan": {"title": "Nested", "minutes": 15}}`
	got, err := ExtractJSON[nested](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nested", got.Plan.Title)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[draftPayload]("no json here at all", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	_, err := ExtractJSON[draftPayload](`{"title": "oops"`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Malformed(t *testing.T) {
	_, err := ExtractJSON[draftPayload](`{"minutes": "ninety"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p draftPayload) error {
		if p.Minutes <= 0 {
			return fmt.Errorf("minutes must be positive")
		}
		return nil
	}

	_, err := ExtractJSON[draftPayload](`{"title": "x", "minutes": 0}`, validator)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "minutes must be positive")

	got, err := ExtractJSON[draftPayload](`{"title": "x", "minutes": 20}`, validator)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Minutes)
}

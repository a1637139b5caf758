package prosecheck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_MarshalJSON_MatchesWireFormat(t *testing.T) {
	lint := Lint{
		Span:        NewSpan(7, 8),
		Kind:        LintKindWordChoice,
		Message:     "did you mean \"three\"?",
		Suggestions: []Suggestion{ReplaceWith("three")},
		RuleName:    "SpelledNumbers",
		Priority:    3,
	}

	data, err := json.Marshal(lint)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "WordChoice", decoded["lint_kind"])
	assert.Equal(t, "did you mean \"three\"?", decoded["message"])
	assert.Equal(t, float64(3), decoded["priority"])

	span, ok := decoded["span"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(7), span["start"])
	assert.Equal(t, float64(8), span["end"])

	suggestions, ok := decoded["suggestions"].([]any)
	require.True(t, ok)
	require.Len(t, suggestions, 1)
	first := suggestions[0].(map[string]any)
	assert.Equal(t, "replace", first["kind"])
	assert.Equal(t, "three", first["text"])
}

func TestLint_MarshalJSON_RemoveSuggestionOmitsText(t *testing.T) {
	lint := Lint{Span: NewSpan(0, 3), Suggestions: []Suggestion{RemoveSpan()}}

	data, err := json.Marshal(lint)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	suggestions := decoded["suggestions"].([]any)
	require.Len(t, suggestions, 1)
	first := suggestions[0].(map[string]any)
	assert.Equal(t, "remove", first["kind"])
	_, hasText := first["text"]
	assert.False(t, hasText)
}

func TestLint_MarshalJSON_NoSuggestionsIsEmptyArray(t *testing.T) {
	lint := Lint{Span: NewSpan(0, 1)}

	data, err := json.Marshal(lint)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	suggestions, ok := decoded["suggestions"].([]any)
	require.True(t, ok)
	assert.Empty(t, suggestions)
}

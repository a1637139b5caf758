package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySuggestion_Replace(t *testing.T) {
	source := "I have 3 cats"
	span := NewSpan(7, 8) // "3"
	lint := Lint{Span: span}
	result, err := ApplySuggestion(source, lint, ReplaceWith("three"))
	require.NoError(t, err)
	assert.Equal(t, "I have three cats", result)
}

func TestApplySuggestion_Remove(t *testing.T) {
	source := "the the cat"
	span := NewSpan(0, 4) // "the "
	lint := Lint{Span: span}
	result, err := ApplySuggestion(source, lint, RemoveSpan())
	require.NoError(t, err)
	assert.Equal(t, "the cat", result)
}

func TestApplySuggestion_InsertAfter(t *testing.T) {
	source := "NASA launched"
	span := NewSpan(0, 4) // "NASA"
	lint := Lint{Span: span}
	result, err := ApplySuggestion(source, lint, InsertAfterSpan("!"))
	require.NoError(t, err)
	assert.Equal(t, "NASA! launched", result)
}

func TestApplySuggestion_OutOfRangeSpan(t *testing.T) {
	source := "short"
	lint := Lint{Span: NewSpan(0, 100)}
	_, err := ApplySuggestion(source, lint, RemoveSpan())
	assert.ErrorIs(t, err, ErrSpanOutOfRange)
}

func TestApplyAll_RightmostFirstKeepsEarlierOffsetsValid(t *testing.T) {
	source := "a bad bad day"
	lints := []Lint{
		{Span: NewSpan(2, 9), Suggestions: []Suggestion{ReplaceWith("bad")}},     // "bad bad"
		{Span: NewSpan(10, 13), Suggestions: []Suggestion{ReplaceWith("night")}}, // "day"
	}
	result, err := ApplyAll(source, lints)
	require.NoError(t, err)
	assert.Equal(t, "a bad night", result)
}

func TestApplyAll_MultipleNonOverlappingEdits(t *testing.T) {
	source := "i have 3 cats and they're big"
	lints := []Lint{
		{Span: NewSpan(0, 1), Suggestions: []Suggestion{ReplaceWith("I")}},
		{Span: NewSpan(7, 8), Suggestions: []Suggestion{ReplaceWith("three")}},
	}
	result, err := ApplyAll(source, lints)
	require.NoError(t, err)
	assert.Equal(t, "I have three cats and they're big", result)
}

func TestApplyAll_SkipsLintsWithNoSuggestions(t *testing.T) {
	source := "a \"quote"
	lints := []Lint{{Span: NewSpan(2, 3)}}
	result, err := ApplyAll(source, lints)
	require.NoError(t, err)
	assert.Equal(t, source, result)
}

func TestRemoveOverlaps_KeepsDisjointLints(t *testing.T) {
	lints := []Lint{
		{Span: NewSpan(0, 1), RuleName: "a"},
		{Span: NewSpan(5, 6), RuleName: "b"},
	}
	out := RemoveOverlaps(lints)
	assert.Len(t, out, 2)
}

func TestRemoveOverlaps_LowerPriorityWinsOverlap(t *testing.T) {
	lints := []Lint{
		{Span: NewSpan(0, 5), RuleName: "heuristic", Priority: 10},
		{Span: NewSpan(1, 4), RuleName: "exact", Priority: 1},
	}
	out := RemoveOverlaps(lints)
	require.Len(t, out, 1)
	assert.Equal(t, "exact", out[0].RuleName, "a strictly lower-priority overlap replaces whatever was kept before it")
}

func TestRemoveOverlaps_EqualPriorityKeepsEarlierSortedSpan(t *testing.T) {
	// Same start, different end: (start, end, priority) sort puts the
	// shorter-ending span first, so it is "earlier" and wins the tie -
	// not because it is shorter, but because it sorts first.
	lints := []Lint{
		{Span: NewSpan(0, 10), RuleName: "long", Priority: 5},
		{Span: NewSpan(0, 3), RuleName: "short", Priority: 5},
	}
	out := RemoveOverlaps(lints)
	require.Len(t, out, 1)
	assert.Equal(t, "short", out[0].RuleName)
}

func TestRemoveOverlaps_EqualPriorityNeverReplacesOnTie(t *testing.T) {
	// Identical spans and equal priority: the sort is stable, so whichever
	// candidate appears first in the input stays kept - a later candidate
	// at the same priority must never overturn it, even though it shares
	// the exact same (start, end) sort key.
	lints := []Lint{
		{Span: NewSpan(2, 9), RuleName: "first", Priority: 4},
		{Span: NewSpan(2, 9), RuleName: "second", Priority: 4},
	}
	out := RemoveOverlaps(lints)
	require.Len(t, out, 1)
	assert.Equal(t, "first", out[0].RuleName)
}

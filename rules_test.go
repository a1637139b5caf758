package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintSpans(t *testing.T, lints []Lint, source []rune) []string {
	t.Helper()
	out := make([]string, len(lints))
	for i, l := range lints {
		out[i] = l.Span.GetContentString(source)
	}
	return out
}

func TestUseGenitive_FlagsThereBeforeAdjectiveNoun(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("What are there big problems?", dict)
	lints := NewUseGenitive().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, "there", lints[0].Span.GetContentString(doc.Source()))
	assert.Equal(t, []Suggestion{ReplaceWith("their")}, lints[0].Suggestions)
}

func TestUseGenitive_NoLintForBareExistential(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("Look there!", dict)
	lints := NewUseGenitive().Lint(doc)
	assert.Empty(t, lints)
}

func TestUseGenitive_NoLintAfterCopularPrelude(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("Were there cats at her house?", dict)
	lints := NewUseGenitive().Lint(doc)
	assert.Empty(t, lints)
}

func TestRepeatedWords_SuggestsRemovingSecondOccurrence(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("The the cat.", dict)
	lints := NewRepeatedWords().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith("The")}, lints[0].Suggestions)
}

func TestRepeatedWords_IgnoresDistinctWords(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("The cat sat.", dict)
	assert.Empty(t, NewRepeatedWords().Lint(doc))
}

func TestAnA_FlagsArticleMismatch(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("I saw a apple today.", dict)
	lints := NewAnA().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith("an")}, lints[0].Suggestions)
}

func TestCapitalizePersonalPronouns_FlagsLowercaseI(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("i think so.", dict)
	lints := NewCapitalizePersonalPronouns().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith("I")}, lints[0].Suggestions)
}

func TestSentenceCapitalization_FlagsLowercaseSentenceStart(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("the cat sat.", dict)
	lints := NewSentenceCapitalization().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith("The")}, lints[0].Suggestions)
}

func TestUnclosedQuotes_FlagsOnlyUnmatchedQuote(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument(`She said "hello.`, dict)
	lints := NewUnclosedQuotes().Lint(doc)
	require.Len(t, lints, 1)
}

func TestSpaces_FlagsDoubleSpace(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("two  spaces", dict)
	lints := NewSpaces().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith(" ")}, lints[0].Suggestions)
}

func TestMatcher_FlagsKnownMisspelling(t *testing.T) {
	lints := NewCommonMisusesMatcher().Lint(NewPlainEnglishDocument("This is definately true.", nil))
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith("definitely")}, lints[0].Suggestions)
}

func TestEllipsisLength_NormalizesToUnicodeEllipsis(t *testing.T) {
	doc := NewPlainEnglishDocument("Wait.... really?", nil)
	lints := NewEllipsisLength().Lint(doc)
	require.Len(t, lints, 1)
	assert.Equal(t, []Suggestion{ReplaceWith("…")}, lints[0].Suggestions)
}

func TestEllipsisLength_IgnoresConventionalThreeDots(t *testing.T) {
	doc := NewPlainEnglishDocument("Wait... really?", nil)
	assert.Empty(t, NewEllipsisLength().Lint(doc))
}

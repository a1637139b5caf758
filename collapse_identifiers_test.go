package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// wordTexts returns the literal text of every Word token in tokens, in
// order - used throughout these tests instead of raw token counts, since
// this tokenizer's exact punctuation/whitespace token shape doesn't need to
// match the grounding source's token-count assertions for the behavior
// under test (whether a given run collapsed) to be verified.
func wordTexts(tokens []Token, source []rune) []string {
	var out []string
	for _, tok := range tokens {
		if tok.IsWord() {
			out = append(out, tok.Span.GetContentString(source))
		}
	}
	return out
}

func TestCollapseIdentifiers_NoCollapseWhenUnrecognized(t *testing.T) {
	source := []rune("This is a test.")
	parser := NewCollapseIdentifiers(NewPlainEnglish(), Curated())
	words := wordTexts(parser.Parse(source), source)
	assert.Equal(t, []string{"This", "is", "a", "test"}, words)
}

func TestCollapseIdentifiers_CollapsesKnownSnakeCaseIdentifier(t *testing.T) {
	source := []rune("This is a separated_identifier, wow!")
	overlay := NewFullDictionary()
	overlay.AppendWord("separated_identifier", WordMetadata{})
	dict := NewMergedDictionary(Curated()).WithOverlay(overlay)

	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), dict).Parse(source), source)
	assert.Contains(t, words, "separated_identifier")
	assert.NotContains(t, words, "separated")
	assert.NotContains(t, words, "identifier")
}

func TestCollapseIdentifiers_UnknownSnakeCaseIdentifierIsLeftAlone(t *testing.T) {
	source := []rune("This is a separated_identifier, wow!")
	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), Curated()).Parse(source), source)
	assert.Contains(t, words, "separated")
	assert.Contains(t, words, "identifier")
	assert.NotContains(t, words, "separated_identifier")
}

func TestCollapseIdentifiers_CollapsesKnownKebabCaseIdentifier(t *testing.T) {
	source := []rune("This is a separated-identifier, wow!")
	overlay := NewFullDictionary()
	overlay.AppendWord("separated-identifier", WordMetadata{})
	dict := NewMergedDictionary(Curated()).WithOverlay(overlay)

	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), dict).Parse(source), source)
	assert.Contains(t, words, "separated-identifier")
}

func TestCollapseIdentifiers_CollapsesLongerRunOfThreeWords(t *testing.T) {
	source := []rune("This is a separated_identifier_token, wow!")
	overlay := NewFullDictionary()
	overlay.AppendWord("separated_identifier_token", WordMetadata{})
	dict := NewMergedDictionary(Curated()).WithOverlay(overlay)

	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), dict).Parse(source), source)
	assert.Contains(t, words, "separated_identifier_token")
}

// TestCollapseIdentifiers_OverlappingSubRunsDoNotCollapseWithoutAFullMatch
// reproduces the grounding source's overlapping_identifiers case: the
// dictionary knows "separated_identifier" and "identifier_token" - two
// different sub-spans of the run "separated_identifier_token" - but not the
// whole run. Only the single maximal run starting at a given position is
// ever tried, so neither sub-span collapses; the run is left untouched.
func TestCollapseIdentifiers_OverlappingSubRunsDoNotCollapseWithoutAFullMatch(t *testing.T) {
	source := []rune("This is a separated_identifier_token, wow!")
	overlay := NewFullDictionary()
	overlay.AppendWord("separated_identifier", WordMetadata{})
	overlay.AppendWord("identifier_token", WordMetadata{})
	dict := NewMergedDictionary(Curated()).WithOverlay(overlay)

	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), dict).Parse(source), source)
	assert.Contains(t, words, "separated")
	assert.Contains(t, words, "identifier")
	assert.Contains(t, words, "token")
	assert.NotContains(t, words, "separated_identifier")
	assert.NotContains(t, words, "identifier_token")
	assert.NotContains(t, words, "separated_identifier_token")
}

// TestCollapseIdentifiers_NestedRunCollapsesToLongestMatch reproduces the
// grounding source's nested_identifiers case: the dictionary knows both the
// full run "separated_identifier_token" and the shorter "separated_identifier"
// nested inside it. The longest (and only ever attempted) match wins.
func TestCollapseIdentifiers_NestedRunCollapsesToLongestMatch(t *testing.T) {
	source := []rune("This is a separated_identifier_token, wow!")
	overlay := NewFullDictionary()
	overlay.AppendWord("separated_identifier_token", WordMetadata{})
	overlay.AppendWord("separated_identifier", WordMetadata{})
	dict := NewMergedDictionary(Curated()).WithOverlay(overlay)

	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), dict).Parse(source), source)
	assert.Contains(t, words, "separated_identifier_token")
	assert.NotContains(t, words, "separated_identifier")
}

func TestCollapseIdentifiers_TwoSeparateRunsBothCollapse(t *testing.T) {
	source := []rune("This is a separated_identifier, wow! separated_identifier")
	overlay := NewFullDictionary()
	overlay.AppendWord("separated_identifier", WordMetadata{})
	dict := NewMergedDictionary(Curated()).WithOverlay(overlay)

	words := wordTexts(NewCollapseIdentifiers(NewPlainEnglish(), dict).Parse(source), source)
	count := 0
	for _, w := range words {
		if w == "separated_identifier" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestCollapseIdentifiers_NilDictionaryIsNoOp(t *testing.T) {
	source := []rune("a_b_c")
	tokens := NewCollapseIdentifiers(NewPlainEnglish(), nil).Parse(source)
	assert.Greater(t, len(wordTexts(tokens, source)), 1, "without a dictionary, the run must not collapse")
}

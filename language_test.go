package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDocLikelyEnglish_TrueForOrdinaryProse(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("The quick brown fox jumps over the lazy dog.", dict)
	assert.True(t, IsDocLikelyEnglish(doc, dict))
}

func TestIsDocLikelyEnglish_FalseForUnrelatedScript(t *testing.T) {
	dict := Curated()
	doc := NewPlainEnglishDocument("Dies ist überhaupt kein englischer Satz wirklich.", dict)
	assert.False(t, IsDocLikelyEnglish(doc, dict))
}

func TestIsDocLikelyEnglish_FalseWithNoWordsAtAll(t *testing.T) {
	// A chunk of nothing but punctuation and whitespace scores a vacuous
	// 1.0 token ratio, but spec.md §4.8 requires at least one
	// dictionary-hit word to call something "likely English" - zero Word
	// tokens means zero hits, so this must report false, not true.
	dict := Curated()
	doc := NewPlainEnglishDocument("... !!! ,,,", dict)
	assert.False(t, IsDocLikelyEnglish(doc, dict))
}

func TestIsDocLikelyEnglish_FalseWithNilDictionary(t *testing.T) {
	doc := NewPlainEnglishDocument("The quick brown fox.", nil)
	assert.False(t, IsDocLikelyEnglish(doc, nil))
}

func TestIsLikelyEnglish_StandaloneTextEntryPoint(t *testing.T) {
	assert.True(t, IsLikelyEnglish("The quick brown fox jumps over the lazy dog."))
	assert.False(t, IsLikelyEnglish("Dies ist überhaupt kein englischer Satz wirklich."))
	assert.False(t, IsLikelyEnglish("... !!! ,,,"))
}

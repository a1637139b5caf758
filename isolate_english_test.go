package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishDictForIsolateTests() Dictionary {
	dict := NewFullDictionary()
	for _, w := range []string{"the", "cat", "sat", "on", "mat", "dog", "ran"} {
		dict.AppendWord(w, WordMetadata{})
	}
	return dict
}

func TestIsolateEnglish_CollapsesLowRatioForeignParagraph(t *testing.T) {
	dict := englishDictForIsolateTests()
	text := "The cat sat on the mat.\n\nDies ist überhaupt kein englischer Satz wirklich."
	parser := NewIsolateEnglish(NewPlainEnglish(), dict)
	tokens := parser.Parse([]rune(text))

	var sawParagraphBreak bool
	var foreignToken *Token
	englishWords := 0
	for i, tok := range tokens {
		switch {
		case tok.IsParagraphBreak():
			sawParagraphBreak = true
		case tok.IsWord() && !sawParagraphBreak:
			englishWords++
		case tok.IsUnlintable() && sawParagraphBreak:
			foreignToken = &tokens[i]
		}
	}

	assert.Equal(t, 6, englishWords, "the English paragraph's words are untouched")
	require.NotNil(t, foreignToken, "the low-ratio foreign paragraph collapses to one Unlintable token")
	assert.Equal(t,
		"Dies ist überhaupt kein englischer Satz wirklich.",
		foreignToken.Span.GetContentString([]rune(text)),
	)
}

func TestIsolateEnglish_LeavesShortForeignFragmentAlone(t *testing.T) {
	// Fewer than MinWords (5) words: too short to confidently call
	// non-English, even at a 0% known-word ratio - a short fragment like
	// this could just as easily be a proper noun or an acronym.
	dict := englishDictForIsolateTests()
	text := "Bonjour monde."
	parser := NewIsolateEnglish(NewPlainEnglish(), dict)
	tokens := parser.Parse([]rune(text))

	words := 0
	for _, tok := range tokens {
		if tok.IsWord() {
			words++
		}
	}
	assert.Equal(t, 2, words, "short fragment is left as ordinary Word tokens, not collapsed")
}

func TestIsolateEnglish_KeepsChunkAtOrAboveRatioThreshold(t *testing.T) {
	// 6 words, 4 recognized (67% >= the 34% floor): stays as ordinary
	// tokens even though two words are unrecognized.
	dict := englishDictForIsolateTests()
	text := "The cat zzqx ran vnlp mat."
	parser := NewIsolateEnglish(NewPlainEnglish(), dict)
	tokens := parser.Parse([]rune(text))

	words := 0
	unlintable := 0
	for _, tok := range tokens {
		if tok.IsWord() {
			words++
		}
		if tok.IsUnlintable() {
			unlintable++
		}
	}
	assert.Equal(t, 6, words)
	assert.Zero(t, unlintable)
}

func TestIsolateEnglish_NilDictionaryIsNoOp(t *testing.T) {
	text := "Dies ist überhaupt kein englischer Satz wirklich."
	parser := NewIsolateEnglish(NewPlainEnglish(), nil)
	tokens := parser.Parse([]rune(text))

	words := 0
	for _, tok := range tokens {
		if tok.IsWord() {
			words++
		}
	}
	assert.Equal(t, 7, words, "without a dictionary, IsolateEnglish never collapses anything")
}

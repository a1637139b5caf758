package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPartitions checks invariant 1: token spans cover [0, len(source))
// with no gap and no overlap.
func assertPartitions(t *testing.T, tokens []Token, n int) {
	t.Helper()
	pos := 0
	for i, tok := range tokens {
		require.Equal(t, pos, tok.Span.Start, "token %d leaves a gap or overlap", i)
		require.LessOrEqual(t, tok.Span.Start, tok.Span.End)
		pos = tok.Span.End
	}
	assert.Equal(t, n, pos, "tokens don't cover the whole buffer")
}

func TestPlainEnglish_PartitionsBuffer(t *testing.T) {
	inputs := []string{
		"",
		"Hello, world!",
		"They're the cats' toys.",
		"A 1st try at \"quoted\" text -- with an em dash.",
		"line one\n\nline two\r\nline three",
		"日本語 mixed with English.",
	}
	for _, in := range inputs {
		source := []rune(in)
		tokens := NewPlainEnglish().Parse(source)
		assertPartitions(t, tokens, len(source))
	}
}

func TestDocument_StringRoundTrips(t *testing.T) {
	text := "The quick, brown fox jumps over 3 lazy dogs!"
	doc := NewPlainEnglishDocument(text, Curated())
	assert.Equal(t, text, doc.String())
}

func TestQuotePairing_IsSymmetric(t *testing.T) {
	tokens, _ := tokenizePlain(t, `She said "hello" and he said "hi" back.`)
	for i, tok := range tokens {
		if !tok.IsQuote() || tok.Kind.Quote.PairIndex < 0 {
			continue
		}
		partner := tokens[tok.Kind.Quote.PairIndex]
		require.True(t, partner.IsQuote())
		assert.Equal(t, i, partner.Kind.Quote.PairIndex, "pairing isn't symmetric for token %d", i)
	}
}

func TestQuotePairing_UnmatchedOpenerStaysUnpaired(t *testing.T) {
	tokens, _ := tokenizePlain(t, `She said "hello and left.`)
	var unmatched int
	for _, tok := range tokens {
		if tok.IsQuote() && tok.Kind.Quote.PairIndex < 0 {
			unmatched++
		}
	}
	assert.Equal(t, 1, unmatched)
}

func TestWordTokenizer_TrailingApostropheSIsPartOfWord(t *testing.T) {
	tokens, source := tokenizePlain(t, "the cat's toy")
	var words []string
	for _, tok := range tokens {
		if tok.IsWord() {
			words = append(words, tok.Span.GetContentString(source))
		}
	}
	assert.Equal(t, []string{"the", "cat's", "toy"}, words)
}

func TestNumberTokenizer_OrdinalSuffix(t *testing.T) {
	tokens, _ := tokenizePlain(t, "the 2nd place")
	var found bool
	for _, tok := range tokens {
		if tok.IsNumber() {
			found = true
			assert.Equal(t, "nd", tok.Kind.Number.Suffix)
			assert.Equal(t, float64(2), tok.Kind.Number.Value)
		}
	}
	assert.True(t, found)
}

func TestNumberTokenizer_DecimalValue(t *testing.T) {
	tokens, _ := tokenizePlain(t, "3.14 pies")
	require.True(t, tokens[0].IsNumber())
	assert.InDelta(t, 3.14, tokens[0].Kind.Number.Value, 0.0001)
}

func TestParagraphBreak_EmittedForBlankLine(t *testing.T) {
	tokens, _ := tokenizePlain(t, "one\n\ntwo")
	var sawBreak bool
	for _, tok := range tokens {
		if tok.IsParagraphBreak() {
			sawBreak = true
		}
	}
	assert.True(t, sawBreak)
}

func TestLintGroup_DeterministicAcrossRuns(t *testing.T) {
	dict := Curated()
	text := "There are 9 pigs. The the cat sat."
	group := NewLintGroup(nil, dict)

	first := group.Lint(NewPlainEnglishDocument(text, dict))
	second := group.Lint(NewPlainEnglishDocument(text, dict))

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].RuleName, second[i].RuleName)
		assert.Equal(t, first[i].Span, second[i].Span)
		assert.Equal(t, first[i].Message, second[i].Message)
	}
}

package prosecheck

// IsDocLikelyEnglish estimates whether doc's prose is English, per spec.md
// §4.8's definition: the ratio of tokens that are either dictionary-known
// Words or short punctuation/whitespace is >= 0.5, AND the document
// contains at least one dictionary-hit word. The second condition matters
// on its own - without it, a chunk of nothing but punctuation and
// whitespace (zero Word tokens at all) would otherwise score a vacuous 1.0
// and be reported as "likely English" despite containing no recognizable
// English at all.
func IsDocLikelyEnglish(doc *Document, dict Dictionary) bool {
	ratio, hits := wordRatioKnown(doc, dict)
	return ratio >= 0.5 && hits > 0
}

// IsLikelyEnglish is the standalone, text-in/bool-out entry point spec.md
// §6 names ("is_likely_english(text) -> bool"): it tokenizes text with the
// plain-English parser over the curated dictionary and applies
// IsDocLikelyEnglish, so a caller with a bare string never has to build a
// Document or supply a dictionary itself.
func IsLikelyEnglish(text string) bool {
	dict := Curated()
	doc := NewPlainEnglishDocument(text, dict)
	return IsDocLikelyEnglish(doc, dict)
}

// wordRatioKnown returns (a) the fraction of doc's tokens that are either a
// dictionary-known Word (directly or after stemming) or short
// punctuation/whitespace, and (b) whether at least one Word token was a
// dictionary hit. A document with no tokens at all reports (0, false)
// rather than dividing by zero.
func wordRatioKnown(doc *Document, dict Dictionary) (ratio float64, hasHit bool) {
	total, good, hits := 0, 0, 0
	for _, tok := range doc.Tokens() {
		total++
		switch {
		case tok.IsWord():
			if dict == nil {
				continue
			}
			text := tok.Span.GetContentString(doc.Source())
			if dict.ContainsStr(text) || stemKnown(text, dict) {
				good++
				hits++
			}
		case tok.IsPunctuation(), tok.IsWhitespace():
			good++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(good) / float64(total), hits > 0
}

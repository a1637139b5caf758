package prosecheck

import "unicode"

// punctuationChars is the closed set of punctuation (ASCII plus the em and
// en dash) the tokenizer recognizes as its own token kind, checked after
// word/number/quote.
const punctuationChars = ".,;:!?—–-()[]{}/\\&@#$%*"

func isPunctuationRune(r rune) bool {
	for _, p := range punctuationChars {
		if r == p {
			return true
		}
	}
	return false
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isOpenQuoteRune(r rune) bool {
	return r == '“' || r == '‘'
}

func isCloseQuoteRune(r rune) bool {
	return r == '”' || r == '’'
}

func isAmbiguousQuoteRune(r rune) bool {
	return r == '"' || r == '\''
}

func isOpeningBracketRune(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// PlainEnglish tokenizes raw English prose. Classification is first-match-
// wins across word, number, quote, punctuation, newline, space, and
// unlintable - exactly the table a host would reach for when hand-writing a
// natural-language lexer: try the most specific rule first, fall through to
// a catch-all for anything left over.
//
// PlainEnglish is dictionary-agnostic: it never looks anything up. Word
// tokens leave the parser with empty metadata, and NewDocument annotates
// them against the dictionary it is given in a single pass afterward. That
// keeps every Parser implementation - including adapters that synthesize
// new Word tokens, like CollapseIdentifiers - indifferent to which
// dictionary (if any) the caller eventually uses.
type PlainEnglish struct{}

// NewPlainEnglish builds a plain-English tokenizer.
func NewPlainEnglish() *PlainEnglish {
	return &PlainEnglish{}
}

// Parse implements Parser.
func (p *PlainEnglish) Parse(source []rune) []Token {
	tokens := make([]Token, 0, len(source)/4+1)
	i := 0
	n := len(source)

	for i < n {
		r := source[i]

		switch {
		case unicode.IsLetter(r):
			start := i
			i++
			for i < n {
				if unicode.IsLetter(source[i]) {
					i++
					continue
				}
				if isApostrophe(source[i]) && i+1 < n && unicode.IsLetter(source[i+1]) {
					i++
					continue
				}
				break
			}
			span := Span{Start: start, End: i}
			tokens = append(tokens, newWordToken(span, WordMetadata{}))

		case unicode.IsDigit(r):
			start := i
			i++
			for i < n && unicode.IsDigit(source[i]) {
				i++
			}
			if i < n && source[i] == '.' && i+1 < n && unicode.IsDigit(source[i+1]) {
				i++
				for i < n && unicode.IsDigit(source[i]) {
					i++
				}
			}
			numEnd := i
			value := parseFloatRunes(source[start:numEnd])
			suffix := matchOrdinalSuffix(source, i)
			if suffix != "" {
				i += len([]rune(suffix))
			}
			tokens = append(tokens, newNumberToken(Span{Start: start, End: i}, value, suffix))

		case isOpenQuoteRune(r):
			tokens = append(tokens, newQuoteToken(Span{Start: i, End: i + 1}, QuoteOpen))
			i++

		case isCloseQuoteRune(r):
			tokens = append(tokens, newQuoteToken(Span{Start: i, End: i + 1}, QuoteClose))
			i++

		case isAmbiguousQuoteRune(r):
			kind := QuoteClose
			if i == 0 || unicode.IsSpace(source[i-1]) || isOpeningBracketRune(source[i-1]) {
				kind = QuoteOpen
			}
			tokens = append(tokens, newQuoteToken(Span{Start: i, End: i + 1}, kind))
			i++

		case isPunctuationRune(r):
			tokens = append(tokens, newPunctuationToken(Span{Start: i, End: i + 1}, r))
			i++

		case r == '\n':
			start := i
			count := 0
			for i < n {
				if source[i] == '\n' {
					count++
					i++
				} else if source[i] == '\r' && i+1 < n && source[i+1] == '\n' {
					count++
					i += 2
				} else {
					break
				}
			}
			span := Span{Start: start, End: i}
			if count >= 2 {
				tok := newParagraphBreakToken(span)
				tok.Kind.NewlineCount = count
				tokens = append(tokens, tok)
			} else {
				tokens = append(tokens, newNewlineToken(span, count))
			}

		case r == ' ' || r == '\t':
			start := i
			width := 0
			for i < n && (source[i] == ' ' || source[i] == '\t') {
				width++
				i++
			}
			tokens = append(tokens, newSpaceToken(Span{Start: start, End: i}, width))

		default:
			start := i
			i++
			for i < n && !isClassifiedRune(source[i]) {
				i++
			}
			tokens = append(tokens, newUnlintableToken(Span{Start: start, End: i}))
		}
	}

	pairQuotes(tokens)
	return tokens
}

// isClassifiedRune reports whether r would be picked up by one of the named
// branches above - used only to decide where a run of Unlintable characters
// ends.
func isClassifiedRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isOpenQuoteRune(r) ||
		isCloseQuoteRune(r) || isAmbiguousQuoteRune(r) || isPunctuationRune(r) ||
		r == '\n' || r == '\r' || r == ' ' || r == '\t'
}

func parseFloatRunes(digits []rune) float64 {
	var whole, frac float64
	var fracDiv float64 = 1
	seenDot := false
	for _, r := range digits {
		if r == '.' {
			seenDot = true
			continue
		}
		d := float64(r - '0')
		if !seenDot {
			whole = whole*10 + d
		} else {
			fracDiv *= 10
			frac = frac*10 + d
		}
	}
	if seenDot {
		return whole + frac/fracDiv
	}
	return whole
}

var ordinalSuffixes = []string{"st", "nd", "rd", "th", "ST", "ND", "RD", "TH",
	"St", "Nd", "Rd", "Th"}

// matchOrdinalSuffix returns the literal suffix text (preserving its case)
// immediately following a number literal, if any of st/nd/rd/th match
// case-insensitively at that position.
func matchOrdinalSuffix(source []rune, pos int) string {
	for _, suf := range ordinalSuffixes {
		runes := []rune(suf)
		if pos+len(runes) > len(source) {
			continue
		}
		match := true
		for k, r := range runes {
			if source[pos+k] != r {
				match = false
				break
			}
		}
		if match {
			// Don't swallow the start of a longer word, e.g. "1stage".
			end := pos + len(runes)
			if end < len(source) && unicode.IsLetter(source[end]) {
				continue
			}
			return suf
		}
	}
	return ""
}

// pairQuotes performs the second tokenizing pass described for Quote
// tokens: scan left to right, reset at paragraph boundaries, and pair each
// opener with the next unmatched closer using a stack so properly nested
// quotes pair correctly. Openers/closers left on the stack at the end of a
// paragraph stay unmatched (PairIndex == -1).
func pairQuotes(tokens []Token) {
	var stack []int
	for i := range tokens {
		if tokens[i].IsParagraphBreak() {
			stack = stack[:0]
			continue
		}
		if !tokens[i].IsQuote() {
			continue
		}
		switch tokens[i].Kind.Quote.Kind {
		case QuoteOpen:
			stack = append(stack, i)
		case QuoteClose:
			if len(stack) == 0 {
				continue
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			tokens[openIdx].Kind.Quote.PairIndex = i
			tokens[i].Kind.Quote.PairIndex = openIdx
		}
	}
}

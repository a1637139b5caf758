package prosecheck

// IsolateEnglish wraps another Parser and blanks out stretches of the
// token stream that don't look like English - a paragraph quoted from
// another language, say - turning them into a single Unlintable token so
// no other rule tries to apply English-specific judgment to them. Chunks
// are delimited by paragraph breaks, the same boundary PlainEnglish resets
// quote-pairing at.
type IsolateEnglish struct {
	Inner    Parser
	Dict     Dictionary
	MinWords int
	MinRatio float64
}

// NewIsolateEnglish wraps inner, flagging a paragraph as non-English (and
// replacing it with a single Unlintable token) when it has at least five
// words and fewer than 34% are recognized by dict, directly or by stem.
func NewIsolateEnglish(inner Parser, dict Dictionary) *IsolateEnglish {
	return &IsolateEnglish{Inner: inner, Dict: dict, MinWords: 5, MinRatio: 0.34}
}

func (p *IsolateEnglish) Parse(source []rune) []Token {
	tokens := p.Inner.Parse(source)
	if p.Dict == nil {
		return tokens
	}

	var out []Token
	start := 0
	flush := func(end int) {
		if end <= start {
			return
		}
		out = append(out, p.collapseIfForeign(tokens[start:end], source)...)
	}
	for i, tok := range tokens {
		if tok.IsParagraphBreak() {
			flush(i)
			out = append(out, tok)
			start = i + 1
		}
	}
	flush(len(tokens))
	return out
}

func (p *IsolateEnglish) collapseIfForeign(chunk []Token, source []rune) []Token {
	total, known := 0, 0
	for _, tok := range chunk {
		if !tok.IsWord() {
			continue
		}
		total++
		text := tok.Span.GetContentString(source)
		if p.Dict.ContainsStr(text) || stemKnown(text, p.Dict) {
			known++
		}
	}
	if total < p.MinWords || float64(known)/float64(total) >= p.MinRatio {
		return chunk
	}
	span := NewSpan(chunk[0].Span.Start, chunk[len(chunk)-1].Span.End)
	return []Token{newUnlintableToken(span)}
}

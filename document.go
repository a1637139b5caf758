package prosecheck

// Document is an immutable, tokenized view of input text. It owns the
// character buffer the text was parsed from, the token vector produced by
// a Parser, and a handful of secondary indices derived from that vector.
// There is no mutation path after construction; a Document that needs to
// change is rebuilt from scratch with NewDocument.
type Document struct {
	source []rune
	tokens []Token

	sentenceTerminators *orderedPositions // token indices of '.', '!', '?'
	numberTokens        *orderedPositions // token indices of Number tokens
	openQuotes          *orderedPositions // token indices of paired openers
}

// NewDocument parses text with parser and annotates every resulting Word
// token against dict, then builds the secondary indices every linter
// relies on. dict may be nil, in which case every word keeps empty
// (unknown) metadata.
func NewDocument(text string, parser Parser, dict Dictionary) *Document {
	source := []rune(text)
	tokens := parser.Parse(source)
	annotateWords(tokens, source, dict)
	return buildDocument(source, tokens)
}

// NewPlainEnglishDocument is a convenience constructor for prose with no
// host-language syntax to strip.
func NewPlainEnglishDocument(text string, dict Dictionary) *Document {
	return NewDocument(text, NewPlainEnglish(), dict)
}

// NewMarkdownDocument parses text as Markdown, blanking host syntax before
// tokenizing the remaining prose as plain English.
func NewMarkdownDocument(text string, dict Dictionary) *Document {
	return NewDocument(text, NewMarkdownParser(), dict)
}

// NewMDXDocument parses text as MDX (Markdown plus embedded JSX/HTML).
func NewMDXDocument(text string, dict Dictionary) *Document {
	return NewDocument(text, NewMDXParser(), dict)
}

func annotateWords(tokens []Token, source []rune, dict Dictionary) {
	if dict == nil {
		return
	}
	for i := range tokens {
		if !tokens[i].IsWord() {
			continue
		}
		word := tokens[i].Span.GetContent(source)
		if meta, ok := dict.Lookup(word); ok {
			tokens[i].Kind.Word = tokens[i].Kind.Word.Merge(meta)
		}
	}
}

func buildDocument(source []rune, tokens []Token) *Document {
	doc := &Document{
		source:               source,
		tokens:               tokens,
		sentenceTerminators:  newOrderedPositions(),
		numberTokens:         newOrderedPositions(),
		openQuotes:           newOrderedPositions(),
	}
	for i, tok := range tokens {
		switch {
		case tok.IsSentenceTerminator():
			doc.sentenceTerminators.Insert(i)
		case tok.IsNumber():
			doc.numberTokens.Insert(i)
		case tok.IsQuote() && tok.Kind.Quote.Kind == QuoteOpen && tok.Kind.Quote.PairIndex >= 0:
			doc.openQuotes.Insert(i)
		}
	}
	return doc
}

// Tokens returns the document's token vector. Callers must treat it as
// read-only; Document never mutates it after construction, and a host that
// needs a different token stream must build a new Document.
func (d *Document) Tokens() []Token {
	return d.tokens
}

// Source returns the character buffer the document was parsed from.
func (d *Document) Source() []rune {
	return d.source
}

// String returns the original input text from the document's stored
// character buffer, which always equals the text NewDocument was given.
func (d *Document) String() string {
	return string(d.source)
}

// TokenSpan returns the characters a token covers.
func (d *Document) TokenSpan(tok Token) []rune {
	return tok.Span.GetContent(d.source)
}

// IterWords returns the indices of every Word token, in document order.
func (d *Document) IterWords() []int {
	out := make([]int, 0)
	for i, tok := range d.tokens {
		if tok.IsWord() {
			out = append(out, i)
		}
	}
	return out
}

// IterNumbers returns every Number token, in document order.
func (d *Document) IterNumbers() []Token {
	indices := d.numberTokens.ToSlice()
	out := make([]Token, len(indices))
	for i, idx := range indices {
		out[i] = d.tokens[idx]
	}
	return out
}

// Sentence is a contiguous token-index window, [Start, End), that a
// sentence-level rule (LongSentences, SentenceCapitalization,
// TerminatingConjunctions) operates over. End is one past the terminating
// punctuation token when one exists, so the window includes the
// terminator, or len(tokens) for a final, unterminated sentence.
type Sentence struct {
	Start, End int
}

// SentenceTokens returns the token slice for this sentence window.
func (d *Document) SentenceTokens(s Sentence) []Token {
	return d.tokens[s.Start:s.End]
}

// IterSentences splits the document into sentence windows using the
// sentence-terminator index built at construction time.
func (d *Document) IterSentences() []Sentence {
	terms := d.sentenceTerminators.ToSlice()
	sentences := make([]Sentence, 0, len(terms)+1)
	start := 0
	for _, end := range terms {
		sentences = append(sentences, Sentence{Start: start, End: end + 1})
		start = end + 1
	}
	if start < len(d.tokens) {
		sentences = append(sentences, Sentence{Start: start, End: len(d.tokens)})
	}
	return sentences
}

// QuotePair is an opening quote token index paired with its closing quote
// token index.
type QuotePair struct {
	Open, Close int
}

// IterQuotePairs returns every matched opening/closing quote pair, in the
// order their openers appear.
func (d *Document) IterQuotePairs() []QuotePair {
	opens := d.openQuotes.ToSlice()
	out := make([]QuotePair, 0, len(opens))
	for _, open := range opens {
		out = append(out, QuotePair{Open: open, Close: d.tokens[open].Kind.Quote.PairIndex})
	}
	return out
}

// UnmatchedQuotes returns every Quote token - opener or closer - with no
// partner.
func (d *Document) UnmatchedQuotes() []int {
	out := make([]int, 0)
	for i, tok := range d.tokens {
		if tok.IsQuote() && tok.Kind.Quote.PairIndex < 0 {
			out = append(out, i)
		}
	}
	return out
}

// FirstNonWhitespace returns the index of the first non-whitespace token at
// or after start, or -1 if none exists.
func (d *Document) FirstNonWhitespace(start int) int {
	for i := start; i < len(d.tokens); i++ {
		if !d.tokens[i].IsWhitespace() {
			return i
		}
	}
	return -1
}

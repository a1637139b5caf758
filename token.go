package prosecheck

// WordMetadata records what is known about a word's part of speech and a
// handful of other properties. Every field is a pointer so three states are
// representable: unknown (nil), known-true, and known-false. Queries that
// ask "is this known to be X" treat a nil field as false; queries that ask
// "is this known to NOT be X" require an explicit false.
type WordMetadata struct {
	IsNoun         *bool
	IsVerb         *bool
	IsAdjective    *bool
	IsAdverb       *bool
	IsPronoun      *bool
	IsConjunction  *bool
	IsDeterminer   *bool
	IsPreposition  *bool
	IsLinkingVerb  *bool
	IsCommon       *bool
}

func boolPtr(b bool) *bool { return &b }

func isTrue(b *bool) bool { return b != nil && *b }

// Noun, Verb, Adjective, ... are convenience constructors for a metadata
// record that asserts exactly one positive flag - most of the curated word
// list is built from these.
func Noun() WordMetadata        { return WordMetadata{IsNoun: boolPtr(true)} }
func Verb() WordMetadata        { return WordMetadata{IsVerb: boolPtr(true)} }
func Adjective() WordMetadata   { return WordMetadata{IsAdjective: boolPtr(true)} }
func Adverb() WordMetadata      { return WordMetadata{IsAdverb: boolPtr(true)} }
func Pronoun() WordMetadata     { return WordMetadata{IsPronoun: boolPtr(true)} }
func Conjunction() WordMetadata { return WordMetadata{IsConjunction: boolPtr(true)} }
func Determiner() WordMetadata  { return WordMetadata{IsDeterminer: boolPtr(true)} }
func Preposition() WordMetadata { return WordMetadata{IsPreposition: boolPtr(true)} }
func LinkingVerb() WordMetadata {
	return WordMetadata{IsVerb: boolPtr(true), IsLinkingVerb: boolPtr(true)}
}

// WithCommon marks a metadata record as describing a common (high
// frequency) word, preserving whatever flags were already set.
func (m WordMetadata) WithCommon() WordMetadata {
	m.IsCommon = boolPtr(true)
	return m
}

func orFlag(a, b *bool) *bool {
	if isTrue(a) || isTrue(b) {
		return boolPtr(true)
	}
	if a != nil {
		return a
	}
	return b
}

// Merge combines two metadata records for the same word, taking the logical
// OR of every positive flag. This is the only legal way to combine records -
// there is no way to construct a contradiction (e.g. "known noun" and
// "known not-noun") through Merge.
func (m WordMetadata) Merge(other WordMetadata) WordMetadata {
	return WordMetadata{
		IsNoun:        orFlag(m.IsNoun, other.IsNoun),
		IsVerb:        orFlag(m.IsVerb, other.IsVerb),
		IsAdjective:   orFlag(m.IsAdjective, other.IsAdjective),
		IsAdverb:      orFlag(m.IsAdverb, other.IsAdverb),
		IsPronoun:     orFlag(m.IsPronoun, other.IsPronoun),
		IsConjunction: orFlag(m.IsConjunction, other.IsConjunction),
		IsDeterminer:  orFlag(m.IsDeterminer, other.IsDeterminer),
		IsPreposition: orFlag(m.IsPreposition, other.IsPreposition),
		IsLinkingVerb: orFlag(m.IsLinkingVerb, other.IsLinkingVerb),
		IsCommon:      orFlag(m.IsCommon, other.IsCommon),
	}
}

func (m WordMetadata) IsKnownNoun() bool        { return isTrue(m.IsNoun) }
func (m WordMetadata) IsKnownVerb() bool        { return isTrue(m.IsVerb) }
func (m WordMetadata) IsKnownAdjective() bool   { return isTrue(m.IsAdjective) }
func (m WordMetadata) IsKnownAdverb() bool      { return isTrue(m.IsAdverb) }
func (m WordMetadata) IsKnownPronoun() bool     { return isTrue(m.IsPronoun) }
func (m WordMetadata) IsKnownConjunction() bool { return isTrue(m.IsConjunction) }
func (m WordMetadata) IsKnownDeterminer() bool  { return isTrue(m.IsDeterminer) }
func (m WordMetadata) IsKnownPreposition() bool { return isTrue(m.IsPreposition) }
func (m WordMetadata) IsKnownLinkingVerb() bool { return isTrue(m.IsLinkingVerb) }
func (m WordMetadata) IsKnownCommon() bool      { return isTrue(m.IsCommon) }

// PunctuationClass narrows a Punctuation token to the character that
// produced it, so rules can distinguish "." from "," without re-scanning
// source.
type PunctuationClass rune

// NumberValue carries a parsed numeric literal and its optional ordinal
// suffix ("st", "nd", "rd", "th").
type NumberValue struct {
	Value  float64
	Suffix string // empty when the literal has no ordinal suffix
}

// QuoteKind distinguishes an opening quote from a closing one; PairIndex
// identifies the token index (in the owning Document's token slice) of its
// partner, or -1 if unmatched.
type QuoteKind int

const (
	QuoteOpen QuoteKind = iota
	QuoteClose
)

type QuoteValue struct {
	Kind      QuoteKind
	PairIndex int // -1 when unmatched
}

// TokenKindTag is a closed enumeration of token kinds.
type TokenKindTag int

const (
	KindWord TokenKindTag = iota
	KindPunctuation
	KindNumber
	KindSpace
	KindNewline
	KindUnlintable
	KindParagraphBreak
	KindQuote
)

// TokenKind is the tagged payload carried by a Token. Exactly one of the
// fields matching Tag is meaningful; the rest are zero values.
type TokenKind struct {
	Tag TokenKindTag

	Word          WordMetadata      // KindWord
	Punctuation   PunctuationClass  // KindPunctuation
	Number        NumberValue       // KindNumber
	SpaceWidth    int               // KindSpace
	NewlineCount  int               // KindNewline
	Quote         QuoteValue        // KindQuote
}

// Token is a span over the source buffer plus its classified kind.
type Token struct {
	Span Span
	Kind TokenKind
}

func newWordToken(span Span, meta WordMetadata) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindWord, Word: meta}}
}

func newPunctuationToken(span Span, class rune) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindPunctuation, Punctuation: PunctuationClass(class)}}
}

func newNumberToken(span Span, value float64, suffix string) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindNumber, Number: NumberValue{Value: value, Suffix: suffix}}}
}

func newSpaceToken(span Span, width int) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindSpace, SpaceWidth: width}}
}

func newNewlineToken(span Span, count int) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindNewline, NewlineCount: count}}
}

func newUnlintableToken(span Span) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindUnlintable}}
}

func newParagraphBreakToken(span Span) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindParagraphBreak}}
}

func newQuoteToken(span Span, kind QuoteKind) Token {
	return Token{Span: span, Kind: TokenKind{Tag: KindQuote, Quote: QuoteValue{Kind: kind, PairIndex: -1}}}
}

// IsWord, IsPunctuation, ... are small predicates used throughout the
// pattern engine and linters in place of a type switch.
func (t Token) IsWord() bool           { return t.Kind.Tag == KindWord }
func (t Token) IsPunctuation() bool    { return t.Kind.Tag == KindPunctuation }
func (t Token) IsNumber() bool         { return t.Kind.Tag == KindNumber }
func (t Token) IsSpace() bool          { return t.Kind.Tag == KindSpace }
func (t Token) IsNewline() bool        { return t.Kind.Tag == KindNewline }
func (t Token) IsUnlintable() bool     { return t.Kind.Tag == KindUnlintable }
func (t Token) IsParagraphBreak() bool { return t.Kind.Tag == KindParagraphBreak }
func (t Token) IsQuote() bool          { return t.Kind.Tag == KindQuote }

// IsWhitespace reports whether the token is space, newline, or a paragraph
// break marker - the three kinds that SequencePattern's then_whitespace
// helper should skip over.
func (t Token) IsWhitespace() bool {
	return t.IsSpace() || t.IsNewline() || t.IsParagraphBreak()
}

// IsSentenceTerminator reports whether this punctuation token ends a
// sentence ('.', '!', or '?').
func (t Token) IsSentenceTerminator() bool {
	if !t.IsPunctuation() {
		return false
	}
	switch rune(t.Kind.Punctuation) {
	case '.', '!', '?':
		return true
	}
	return false
}

package prosecheck

// ═══════════════════════════════════════════════════════════════════════════════
// THE PATTERN ENGINE
// ═══════════════════════════════════════════════════════════════════════════════
// A Pattern is a capability with exactly one operation: given a token slice
// and the source it was tokenized from, return how many leading tokens it
// consumed (0 meaning "no match"). Every style rule is either a Pattern plus
// a conversion from a matched window to a Lint, or a free-form scan of the
// document.
//
// Composition reads like a fluent boolean query over token sets rather than
// over document sets: SequencePattern is an implicit AND-chain (every step
// must match the tokens immediately following the previous one),
// EitherPattern is an OR (the first alternative that matches wins), and
// Invert is a single-token NOT (it succeeds exactly when its inner pattern
// fails). None of them allocate an intermediate token slice; each just
// reports a length.
// ═══════════════════════════════════════════════════════════════════════════════

// Pattern returns the number of leading tokens it matches against tokens,
// or 0 if it doesn't match at all.
type Pattern interface {
	Matches(tokens []Token, source []rune) int
}

// PatternFunc adapts a plain function to the Pattern interface.
type PatternFunc func(tokens []Token, source []rune) int

func (f PatternFunc) Matches(tokens []Token, source []rune) int { return f(tokens, source) }

// ─────────────────────────────────────────────────────────────────────────
// SequencePattern: an ordered chain, AND-like.
// ─────────────────────────────────────────────────────────────────────────

// SequencePattern matches an ordered list of sub-patterns, each consuming
// the tokens left over by the one before it. The total length consumed is
// the sum of every step's length; if any step fails, the whole sequence
// fails and reports 0, regardless of how much was consumed before it.
type SequencePattern struct {
	steps []Pattern
}

// NewSequencePattern returns an empty sequence ready for Then calls.
func NewSequencePattern() *SequencePattern {
	return &SequencePattern{}
}

// Then appends an arbitrary sub-pattern.
func (s *SequencePattern) Then(p Pattern) *SequencePattern {
	s.steps = append(s.steps, p)
	return s
}

func (s *SequencePattern) Matches(tokens []Token, source []rune) int {
	total := 0
	for _, step := range s.steps {
		if total > len(tokens) {
			return 0
		}
		n := step.Matches(tokens[total:], source)
		if n == 0 {
			return 0
		}
		total += n
	}
	return total
}

// ThenAnyWord matches any single Word token.
func (s *SequencePattern) ThenAnyWord() *SequencePattern {
	return s.Then(PatternFunc(func(tokens []Token, source []rune) int {
		if len(tokens) > 0 && tokens[0].IsWord() {
			return 1
		}
		return 0
	}))
}

// ThenExactWord matches a single Word token whose text equals word exactly
// (case-sensitive).
func (s *SequencePattern) ThenExactWord(word string) *SequencePattern {
	return s.Then(exactWordPattern{word: word})
}

// ThenExactWordOrLowercase matches a Word token whose text equals either
// word verbatim or word's all-lowercase form - e.g. "Is" matches "Is" or
// "is" but not "IS".
func (s *SequencePattern) ThenExactWordOrLowercase(word string) *SequencePattern {
	lower := foldCase(word)
	return s.Then(PatternFunc(func(tokens []Token, source []rune) int {
		if len(tokens) == 0 || !tokens[0].IsWord() {
			return 0
		}
		text := tokens[0].Span.GetContentString(source)
		if text == word || text == lower {
			return 1
		}
		return 0
	}))
}

func wordPropertyPattern(check func(WordMetadata) bool) Pattern {
	return PatternFunc(func(tokens []Token, source []rune) int {
		if len(tokens) > 0 && tokens[0].IsWord() && check(tokens[0].Kind.Word) {
			return 1
		}
		return 0
	})
}

// ThenNoun matches a single Word token known to be a noun.
func (s *SequencePattern) ThenNoun() *SequencePattern {
	return s.Then(wordPropertyPattern(WordMetadata.IsKnownNoun))
}

// ThenAdjective matches a single Word token known to be an adjective.
func (s *SequencePattern) ThenAdjective() *SequencePattern {
	return s.Then(wordPropertyPattern(WordMetadata.IsKnownAdjective))
}

// ThenAdverb matches a single Word token known to be an adverb.
func (s *SequencePattern) ThenAdverb() *SequencePattern {
	return s.Then(wordPropertyPattern(WordMetadata.IsKnownAdverb))
}

// ThenWhitespace matches one or more consecutive whitespace tokens (space,
// newline, or paragraph break). Sub-patterns never see implicit whitespace;
// callers must ask for it explicitly, which keeps rules that care about
// adjacency (CollapseIdentifiers, UseGenitive's copular prelude) predictable.
func (s *SequencePattern) ThenWhitespace() *SequencePattern {
	return s.Then(PatternFunc(func(tokens []Token, source []rune) int {
		n := 0
		for n < len(tokens) && tokens[n].IsWhitespace() {
			n++
		}
		return n
	}))
}

// ThenCaseSeparator matches a single '_' or '-' token with no surrounding
// whitespace, the separator CollapseIdentifiers looks for between the words
// of an identifier.
func (s *SequencePattern) ThenCaseSeparator() *SequencePattern {
	return s.Then(PatternFunc(func(tokens []Token, source []rune) int {
		if len(tokens) == 0 {
			return 0
		}
		if tokens[0].Span.Len() != 1 {
			return 0
		}
		switch tokens[0].Span.GetContentString(source) {
		case "_", "-":
			return 1
		}
		return 0
	}))
}

// ThenOneOrMore matches one or more back-to-back repetitions of inner.
func (s *SequencePattern) ThenOneOrMore(inner Pattern) *SequencePattern {
	return s.Then(&RepeatingPattern{Inner: inner})
}

// ThenOneOrMoreAdjectives matches a run of one or more adjectives,
// optionally separated by whitespace (e.g. "big", or "big brown").
func (s *SequencePattern) ThenOneOrMoreAdjectives() *SequencePattern {
	return s.Then(PatternFunc(matchOneOrMoreAdjectives))
}

func isAdjectiveToken(tok Token) bool {
	return tok.IsWord() && tok.Kind.Word.IsKnownAdjective()
}

func matchOneOrMoreAdjectives(tokens []Token, source []rune) int {
	if len(tokens) == 0 || !isAdjectiveToken(tokens[0]) {
		return 0
	}
	consumed := 1
	for {
		j := consumed
		for j < len(tokens) && tokens[j].IsWhitespace() {
			j++
		}
		if j == consumed || j >= len(tokens) || !isAdjectiveToken(tokens[j]) {
			break
		}
		consumed = j + 1
	}
	return consumed
}

// ─────────────────────────────────────────────────────────────────────────
// exactWordPattern
// ─────────────────────────────────────────────────────────────────────────

type exactWordPattern struct {
	word string
}

func (p exactWordPattern) Matches(tokens []Token, source []rune) int {
	if len(tokens) == 0 || !tokens[0].IsWord() {
		return 0
	}
	if tokens[0].Span.GetContentString(source) == p.word {
		return 1
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────
// EitherPattern: OR over alternatives, declaration order wins ties.
// ─────────────────────────────────────────────────────────────────────────

// EitherPattern tries each alternative in order and returns the length of
// the first one that matches.
type EitherPattern struct {
	Alternatives []Pattern
}

// NewEitherPattern builds an EitherPattern from a fixed alternative list.
func NewEitherPattern(alternatives ...Pattern) *EitherPattern {
	return &EitherPattern{Alternatives: alternatives}
}

func (e *EitherPattern) Matches(tokens []Token, source []rune) int {
	for _, alt := range e.Alternatives {
		if n := alt.Matches(tokens, source); n != 0 {
			return n
		}
	}
	return 0
}

// ─────────────────────────────────────────────────────────────────────────
// Invert: single-token negative lookahead.
// ─────────────────────────────────────────────────────────────────────────

// Invert matches exactly when its inner pattern does not: it reports a
// length of 1 if Inner matches 0, and 0 if Inner matches anything.
type Invert struct {
	Inner Pattern
}

// NewInvert wraps inner so it can be used as a negative lookahead.
func NewInvert(inner Pattern) *Invert {
	return &Invert{Inner: inner}
}

func (n *Invert) Matches(tokens []Token, source []rune) int {
	if n.Inner.Matches(tokens, source) != 0 {
		return 0
	}
	return 1
}

// ─────────────────────────────────────────────────────────────────────────
// WordPatternGroup: dispatch on the leading word.
// ─────────────────────────────────────────────────────────────────────────

// WordPatternGroup maps an exact lowercase word to the pattern that should
// run when a token stream's first token is that word. It is how rules like
// UseGenitive, which trigger on a small, fixed set of words ("there",
// "they're"), avoid re-testing every alternative against every token.
type WordPatternGroup struct {
	byWord map[string]Pattern
}

// NewWordPatternGroup returns an empty group.
func NewWordPatternGroup() *WordPatternGroup {
	return &WordPatternGroup{byWord: make(map[string]Pattern)}
}

// Add registers the pattern to run when the leading token is word
// (case-insensitively).
func (g *WordPatternGroup) Add(word string, p Pattern) {
	g.byWord[normalizeWord(word)] = p
}

func (g *WordPatternGroup) Matches(tokens []Token, source []rune) int {
	if len(tokens) == 0 || !tokens[0].IsWord() {
		return 0
	}
	word := normalizeWord(tokens[0].Span.GetContentString(source))
	p, ok := g.byWord[word]
	if !ok {
		return 0
	}
	return p.Matches(tokens, source)
}

// ─────────────────────────────────────────────────────────────────────────
// RepeatingPattern: greedy one-or-more.
// ─────────────────────────────────────────────────────────────────────────

// RepeatingPattern matches one or more consecutive repetitions of Inner,
// greedily. Zero repetitions is not a match (use EitherPattern with an
// empty-match alternative if that's ever needed).
type RepeatingPattern struct {
	Inner Pattern
}

func (r *RepeatingPattern) Matches(tokens []Token, source []rune) int {
	total := 0
	for total <= len(tokens) {
		n := r.Inner.Matches(tokens[total:], source)
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// ─────────────────────────────────────────────────────────────────────────
// find_all_matches: greedy, left-to-right, non-overlapping scan.
// ─────────────────────────────────────────────────────────────────────────

// TokenWindow is a half-open [Start, End) range of token indices.
type TokenWindow struct {
	Start, End int
}

// FindAllMatches scans tokens left to right, reporting every non-overlapping
// match window: at each position it tries pattern; a match of length L
// emits [i, i+L) and advances i by L, a non-match advances i by 1.
// Overlaps between different patterns are not this function's concern -
// that's what the overlap resolver is for once every rule has run.
func FindAllMatches(pattern Pattern, tokens []Token, source []rune) []TokenWindow {
	var windows []TokenWindow
	i := 0
	for i < len(tokens) {
		n := pattern.Matches(tokens[i:], source)
		if n > 0 {
			windows = append(windows, TokenWindow{Start: i, End: i + n})
			i += n
		} else {
			i++
		}
	}
	return windows
}

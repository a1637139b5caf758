package prosecheck

// identifierRunPattern matches a run of words joined by '_' or '-' with no
// intervening whitespace - "separated_identifier", "kebab-case-name" - the
// shape CollapseIdentifiers looks for before asking the dictionary whether
// the whole run is actually one word.
var identifierRunPattern = NewSequencePattern().
	ThenAnyWord().
	ThenOneOrMore(NewSequencePattern().ThenCaseSeparator().ThenAnyWord())

// CollapseIdentifiers wraps another Parser and merges any identifier-shaped
// run of tokens the dictionary recognizes as a single word (e.g. a
// programming identifier like "rate_limiter" that a code-aware dictionary
// has been taught about) back into one Word token, so downstream rules see
// it as a single unit rather than flagging "rate" and "limiter" as two
// unrelated words joined by stray punctuation.
//
// Only the maximal run starting at a given position is ever tried - if
// "a_b_c" isn't in the dictionary as a whole, CollapseIdentifiers does not
// fall back to checking "a_b" or "b_c"; the run either collapses whole or
// not at all.
type CollapseIdentifiers struct {
	Inner Parser
	Dict  Dictionary
}

// NewCollapseIdentifiers wraps inner, consulting dict to decide which runs
// collapse.
func NewCollapseIdentifiers(inner Parser, dict Dictionary) *CollapseIdentifiers {
	return &CollapseIdentifiers{Inner: inner, Dict: dict}
}

func (c *CollapseIdentifiers) Parse(source []rune) []Token {
	tokens := c.Inner.Parse(source)
	if c.Dict == nil {
		return tokens
	}

	type action struct {
		start, end int
		span       Span
	}
	var actions []action
	for _, m := range FindAllMatches(identifierRunPattern, tokens, source) {
		span := NewSpan(tokens[m.Start].Span.Start, tokens[m.End-1].Span.End)
		if c.Dict.ContainsStr(span.GetContentString(source)) {
			actions = append(actions, action{start: m.Start, end: m.End, span: span})
		}
	}
	if len(actions) == 0 {
		return tokens
	}

	out := make([]Token, 0, len(tokens))
	actionIdx := 0
	for i := 0; i < len(tokens); {
		if actionIdx < len(actions) && actions[actionIdx].start == i {
			a := actions[actionIdx]
			out = append(out, newWordToken(a.span, WordMetadata{}))
			i = a.end
			actionIdx++
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

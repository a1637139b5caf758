package prosecheck

// genitiveEnvironment is the token shape the genitive case should appear in:
// whitespace, then either one-or-more adjectives followed by a noun, or a
// bare noun. It's built once and shared by every trigger word below.
var genitiveEnvironment = NewSequencePattern().
	ThenWhitespace().
	Then(NewEitherPattern(
		NewSequencePattern().ThenOneOrMoreAdjectives().ThenWhitespace().ThenNoun(),
		NewSequencePattern().ThenNoun(),
	))

// genitiveGuard matches the handful of contexts where "there"/"they're"
// directly followed by a noun phrase is NOT a genitive mistake: right after
// a form of "to be" ("Is there any apples" - interrogative, not genitive)
// or after an adjective.
var genitiveGuard = NewEitherPattern(
	NewSequencePattern().ThenExactWordOrLowercase("Is"),
	NewSequencePattern().ThenExactWordOrLowercase("Were"),
	NewSequencePattern().ThenAdjective(),
)

func newGenitivePrimaryPattern() Pattern {
	group := NewWordPatternGroup()
	for _, word := range []string{"there", "they're"} {
		group.Add(word, NewSequencePattern().ThenExactWord(word).Then(genitiveEnvironment))
	}
	return group
}

// UseGenitive flags "there"/"they're" immediately in front of a noun phrase
// where the genitive "their" was almost certainly meant ("there big
// problems" -> "their big problems"), while leaving interrogative and
// existential uses ("Is there a problem?", "There is a cat") alone.
type UseGenitive struct {
	pattern Pattern
}

// NewUseGenitive builds the rule.
func NewUseGenitive() *UseGenitive {
	pattern := NewSequencePattern().
		Then(NewInvert(genitiveGuard)).
		ThenWhitespace().
		Then(newGenitivePrimaryPattern())
	return &UseGenitive{pattern: pattern}
}

func (r *UseGenitive) Name() string { return "UseGenitive" }

func (r *UseGenitive) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for _, window := range FindAllMatches(r.pattern, tokens, doc.Source()) {
		triggerIdx := window.Start + 2
		if triggerIdx >= window.End {
			continue
		}
		trigger := tokens[triggerIdx]
		out = append(out, Lint{
			Span:        trigger.Span,
			RuleName:    r.Name(),
			Kind:        LintKindMiscellaneous,
			Message:     "Use the genitive case.",
			Suggestions: []Suggestion{ReplaceWith("their")},
			Priority:    31,
		})
	}
	return out
}

package prosecheck

// MatcherEntry is one row of a Matcher's correction table: a bad spelling
// (or misuse) and the replacement to suggest, plus the message shown to the
// user.
type MatcherEntry struct {
	Bad         string
	Replacement string
	Message     string
}

// Matcher is a table-driven rule: an exact (case-insensitive) word lookup
// against a small fixed list of known mistakes, each with its own fix. It
// exists for corrections too specific or idiomatic to express as a
// Pattern - "alot" isn't two tokens wearing a mask, it's a word that simply
// isn't a word - while still sharing the rest of the Linter machinery with
// every pattern-based rule.
type Matcher struct {
	RuleName string
	Kind     LintKind
	byWord   map[string]MatcherEntry
}

// NewMatcher builds a Matcher from entries, indexing them by lowercase Bad
// spelling.
func NewMatcher(name string, kind LintKind, entries []MatcherEntry) *Matcher {
	byWord := make(map[string]MatcherEntry, len(entries))
	for _, e := range entries {
		byWord[normalizeWord(e.Bad)] = e
	}
	return &Matcher{RuleName: name, Kind: kind, byWord: byWord}
}

func (m *Matcher) Name() string { return m.RuleName }

func (m *Matcher) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsWord() {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		entry, ok := m.byWord[normalizeWord(text)]
		if !ok {
			continue
		}
		replacement := matchCase(text, entry.Replacement)
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    m.RuleName,
			Kind:        m.Kind,
			Message:     entry.Message,
			Suggestions: []Suggestion{ReplaceWith(replacement)},
			Priority:    2,
		})
	}
	return out
}

// matchCase mirrors original's capitalization onto replacement when
// original starts with an uppercase letter and replacement doesn't already
// have one.
func matchCase(original, replacement string) string {
	if !startsUpper(original) || startsUpper(replacement) {
		return replacement
	}
	return upperFirst(replacement)
}

// commonMisuses is a small, illustrative correction table. Hosts that need
// broader coverage supply their own entries via NewMatcher.
var commonMisuses = []MatcherEntry{
	{Bad: "alot", Replacement: "a lot", Message: `"Alot" is not a word; use "a lot".`},
	{Bad: "definately", Replacement: "definitely", Message: `"Definately" is a common misspelling of "definitely".`},
	{Bad: "seperate", Replacement: "separate", Message: `"Seperate" is a common misspelling of "separate".`},
	{Bad: "occured", Replacement: "occurred", Message: `"Occured" is missing a second "r".`},
	{Bad: "recieve", Replacement: "receive", Message: `Remember: "i" before "e" except after "c".`},
	{Bad: "untill", Replacement: "until", Message: `"Untill" has only one "l".`},
	{Bad: "noone", Replacement: "no one", Message: `"Noone" is conventionally written as two words.`},
	{Bad: "irregardless", Replacement: "regardless", Message: `"Irregardless" is non-standard; use "regardless".`},
}

// NewCommonMisusesMatcher returns a Matcher pre-loaded with commonMisuses.
func NewCommonMisusesMatcher() *Matcher {
	return NewMatcher("CommonMisuses", LintKindSpelling, commonMisuses)
}

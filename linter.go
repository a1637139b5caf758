package prosecheck

// Linter examines a Document and reports every Lint it finds. A Linter may
// run multiple independent checks as long as they share a RuleName per
// check consistent enough for LintGroupConfig to toggle individually. Each
// built-in rule in this package reports exactly one RuleName and implements
// Linter directly, walking the document itself (UseGenitive runs its
// pattern through FindAllMatches on its own); none is built on
// PatternLinter.
type Linter interface {
	Lint(doc *Document) []Lint
	// Name identifies the rule for LintGroupConfig and for a Lint's
	// RuleName field.
	Name() string
}

// PatternMatchToLint converts a single matched token window into a Lint.
// Implementations typically close over the Pattern they're paired with.
type PatternMatchToLint func(doc *Document, window TokenWindow) (Lint, bool)

// PatternLinter is a Linter built from a single Pattern plus a conversion
// function: find every
// non-overlapping match of a pattern across the whole token stream, then
// turn each match into a Lint (or skip it, if the conversion decides the
// match is a false positive once it has more context than the pattern
// alone could see).
type PatternLinter struct {
	RuleName string
	Kind     LintKind
	Pattern  Pattern
	Convert  PatternMatchToLint
}

// NewPatternLinter builds a PatternLinter. convert may return false to
// suppress a match the pattern found but further inspection disqualifies.
func NewPatternLinter(name string, kind LintKind, pattern Pattern, convert PatternMatchToLint) *PatternLinter {
	return &PatternLinter{RuleName: name, Kind: kind, Pattern: pattern, Convert: convert}
}

func (p *PatternLinter) Name() string { return p.RuleName }

func (p *PatternLinter) Lint(doc *Document) []Lint {
	var out []Lint
	for _, window := range FindAllMatches(p.Pattern, doc.Tokens(), doc.Source()) {
		lint, ok := p.Convert(doc, window)
		if !ok {
			continue
		}
		lint.RuleName = p.RuleName
		lint.Kind = p.Kind
		out = append(out, lint)
	}
	return out
}

// windowSpan returns the Span covering every token in [start, end) of a
// document's token slice - the usual way a PatternLinter's Convert callback
// turns a match window back into source coordinates.
func windowSpan(doc *Document, window TokenWindow) Span {
	tokens := doc.Tokens()
	if window.Start >= window.End {
		return Span{}
	}
	return NewSpan(tokens[window.Start].Span.Start, tokens[window.End-1].Span.End)
}

// windowText returns the literal source text a match window covers.
func windowText(doc *Document, window TokenWindow) string {
	return windowSpan(doc, window).GetContentString(doc.Source())
}

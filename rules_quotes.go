package prosecheck

// UnclosedQuotes flags every quote token with no partner within its
// paragraph. Straight quotes are ambiguous by nature (a lone `"` two
// sentences after another could be the close of the first or the open of
// the second), so this rule only ever reports the token itself; it doesn't
// try to guess where the matching quote should go.
type UnclosedQuotes struct{}

func NewUnclosedQuotes() *UnclosedQuotes { return &UnclosedQuotes{} }

func (r *UnclosedQuotes) Name() string { return "UnclosedQuotes" }

func (r *UnclosedQuotes) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for _, idx := range doc.UnmatchedQuotes() {
		tok := tokens[idx]
		side := "opening"
		if tok.Kind.Quote.Kind == QuoteClose {
			side = "closing"
		}
		out = append(out, Lint{
			Span:     tok.Span,
			RuleName: r.Name(),
			Kind:     LintKindPunctuation,
			Message:  "This " + side + " quote has no matching partner.",
			Priority: 4,
		})
	}
	return out
}

// WrongQuotes flags ASCII straight quotes (" and ') and suggests their
// typographic equivalents, matched to the token's already-resolved
// open/close classification so the suggestion is never backwards.
type WrongQuotes struct{}

func NewWrongQuotes() *WrongQuotes { return &WrongQuotes{} }

func (r *WrongQuotes) Name() string { return "WrongQuotes" }

func (r *WrongQuotes) Lint(doc *Document) []Lint {
	var out []Lint
	source := doc.Source()
	for _, tok := range doc.Tokens() {
		if !tok.IsQuote() {
			continue
		}
		text := tok.Span.GetContentString(source)
		if text != `"` && text != "'" {
			continue
		}
		replacement := typographicQuote(text, tok.Kind.Quote.Kind)
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindPunctuation,
			Message:     "Use a typographic quotation mark instead of a straight one.",
			Suggestions: []Suggestion{ReplaceWith(replacement)},
			Priority:    6,
		})
	}
	return out
}

func typographicQuote(straight string, kind QuoteKind) string {
	if straight == `"` {
		if kind == QuoteOpen {
			return "“"
		}
		return "”"
	}
	if kind == QuoteOpen {
		return "‘"
	}
	return "’"
}

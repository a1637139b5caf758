package prosecheck

import (
	"fmt"
	"unicode"
)

// SentenceCapitalization flags a sentence whose first word doesn't start
// with an uppercase letter, skipping sentences that open with a number or
// an unlintable token (code, an identifier) since those have no
// capitalization convention of their own.
type SentenceCapitalization struct{}

func NewSentenceCapitalization() *SentenceCapitalization { return &SentenceCapitalization{} }

func (r *SentenceCapitalization) Name() string { return "SentenceCapitalization" }

func (r *SentenceCapitalization) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for _, sentence := range doc.IterSentences() {
		idx := doc.FirstNonWhitespace(sentence.Start)
		if idx < 0 || idx >= sentence.End {
			continue
		}
		tok := tokens[idx]
		if !tok.IsWord() {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		first := []rune(text)[0]
		if unicode.IsUpper(first) {
			continue
		}
		fixed := upperFirst(text)
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindCapitalization,
			Message:     "Sentences should start with a capital letter.",
			Suggestions: []Suggestion{ReplaceWith(fixed)},
			Priority:    2,
		})
	}
	return out
}

// LongSentences flags a sentence whose word count exceeds MaxWords,
// the traditional readability complaint that a single sentence is trying
// to carry too many ideas at once.
type LongSentences struct {
	MaxWords int
}

// NewLongSentences returns the rule with its usual cutoff of forty words.
func NewLongSentences() *LongSentences {
	return &LongSentences{MaxWords: 40}
}

func (r *LongSentences) Name() string { return "LongSentences" }

func (r *LongSentences) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for _, sentence := range doc.IterSentences() {
		count := 0
		for _, tok := range doc.SentenceTokens(sentence) {
			if tok.IsWord() {
				count++
			}
		}
		if count <= r.MaxWords {
			continue
		}
		start := tokens[sentence.Start].Span.Start
		end := tokens[sentence.End-1].Span.End
		out = append(out, Lint{
			Span:     NewSpan(start, end),
			RuleName: r.Name(),
			Kind:     LintKindReadability,
			Message:  fmt.Sprintf("This sentence is %d words long; consider breaking it up.", count),
			Priority: 9,
		})
	}
	return out
}

// TerminatingConjunctions flags a sentence that ends with any word the
// dictionary marks as a conjunction, not only the coordinating ones,
// immediately before its terminator ("... but." or "... and."),
// almost always a sign the sentence was cut off mid-thought.
type TerminatingConjunctions struct{}

func NewTerminatingConjunctions() *TerminatingConjunctions { return &TerminatingConjunctions{} }

func (r *TerminatingConjunctions) Name() string { return "TerminatingConjunctions" }

func (r *TerminatingConjunctions) Lint(doc *Document) []Lint {
	var out []Lint
	for _, sentence := range doc.IterSentences() {
		tokens := doc.SentenceTokens(sentence)
		if len(tokens) < 2 {
			continue
		}
		last := tokens[len(tokens)-1]
		if !last.IsSentenceTerminator() {
			continue
		}
		j := len(tokens) - 2
		for j >= 0 && tokens[j].IsWhitespace() {
			j--
		}
		if j < 0 || !tokens[j].IsWord() || !tokens[j].Kind.Word.IsKnownConjunction() {
			continue
		}
		out = append(out, Lint{
			Span:     tokens[j].Span,
			RuleName: r.Name(),
			Kind:     LintKindEnhancement,
			Message:  "A sentence shouldn't end with a conjunction.",
			Priority: 7,
		})
	}
	return out
}

// CapitalizePersonalPronouns flags a lowercase standalone "i" that should
// be capitalized.
type CapitalizePersonalPronouns struct{}

func NewCapitalizePersonalPronouns() *CapitalizePersonalPronouns {
	return &CapitalizePersonalPronouns{}
}

func (r *CapitalizePersonalPronouns) Name() string { return "CapitalizePersonalPronouns" }

func (r *CapitalizePersonalPronouns) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsWord() {
			continue
		}
		if tok.Span.GetContentString(doc.Source()) != "i" {
			continue
		}
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindCapitalization,
			Message:     `The pronoun "I" is always capitalized.`,
			Suggestions: []Suggestion{ReplaceWith("I")},
			Priority:    1,
		})
	}
	return out
}

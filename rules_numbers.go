package prosecheck

import (
	"fmt"
	"strings"
)

// SpelledNumbers flags small whole numbers written as digits ("I have 3
// cats") and suggests the spelled-out form ("I have three cats"). Numbers
// with an ordinal suffix ("3rd") and non-whole numbers are left alone; a
// following unit word is not checked, so "5 km" is flagged like any other
// small number.
type SpelledNumbers struct {
	// Threshold is the smallest value left alone as digits; whole values
	// strictly below it get a spelled-out suggestion, unless spellOutNumber
	// can't render them (anything above 999), in which case no lint is
	// emitted.
	Threshold uint64
}

// NewSpelledNumbers returns the rule with its usual threshold of ten.
func NewSpelledNumbers() *SpelledNumbers {
	return &SpelledNumbers{Threshold: 10}
}

func (r *SpelledNumbers) Name() string { return "SpelledNumbers" }

func (r *SpelledNumbers) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for _, tok := range tokens {
		if !tok.IsNumber() {
			continue
		}
		if tok.Kind.Number.Suffix != "" {
			continue
		}
		if tok.Kind.Number.Value != float64(uint64(tok.Kind.Number.Value)) {
			continue // not a whole number
		}
		value := uint64(tok.Kind.Number.Value)
		if value >= r.Threshold {
			continue
		}
		word, ok := spellOutNumber(value)
		if !ok {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		if startsUpper(text) {
			word = upperFirst(word)
		}
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindStyle,
			Message:     fmt.Sprintf("Consider spelling out small numbers like %q as %q.", text, word),
			Suggestions: []Suggestion{ReplaceWith(word)},
			Priority:    5,
		})
	}
	return out
}

// CorrectNumberSuffix flags an ordinal suffix that doesn't match its
// number's last digit(s) - "1st" is right, "1th" isn't - and suggests the
// correct one.
type CorrectNumberSuffix struct{}

func NewCorrectNumberSuffix() *CorrectNumberSuffix { return &CorrectNumberSuffix{} }

func (r *CorrectNumberSuffix) Name() string { return "CorrectNumberSuffix" }

func (r *CorrectNumberSuffix) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsNumber() || tok.Kind.Number.Suffix == "" {
			continue
		}
		want := expectedOrdinalSuffix(tok.Kind.Number.Value)
		got := strings.ToLower(tok.Kind.Number.Suffix)
		if got == want {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		digits := text[:len(text)-len(tok.Kind.Number.Suffix)]
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindEnhancement,
			Message:     fmt.Sprintf("%q should end in %q, not %q.", text, want, tok.Kind.Number.Suffix),
			Suggestions: []Suggestion{ReplaceWith(digits + want)},
			Priority:    1,
		})
	}
	return out
}

func expectedOrdinalSuffix(value float64) string {
	n := int(value)
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// NumberSuffixCapitalization flags an ordinal suffix that isn't lowercase -
// lowercase is standard ("1st"), so any suffix with an uppercase letter
// ("1ST", "1St") gets flagged, whatever the rest of the document does.
type NumberSuffixCapitalization struct{}

func NewNumberSuffixCapitalization() *NumberSuffixCapitalization {
	return &NumberSuffixCapitalization{}
}

func (r *NumberSuffixCapitalization) Name() string { return "NumberSuffixCapitalization" }

func (r *NumberSuffixCapitalization) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsNumber() || tok.Kind.Number.Suffix == "" {
			continue
		}
		lower := strings.ToLower(tok.Kind.Number.Suffix)
		if tok.Kind.Number.Suffix == lower {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		digits := text[:len(text)-len(tok.Kind.Number.Suffix)]
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindCapitalization,
			Message:     "Ordinal suffixes are conventionally lowercase.",
			Suggestions: []Suggestion{ReplaceWith(digits + lower)},
			Priority:    3,
		})
	}
	return out
}

package prosecheck

import "strings"

// ApplySuggestion renders the result of applying one of a Lint's
// suggestions to source, returning the edited text. It never mutates
// source. Callers applying several lints to the same document should sort
// them by descending span start first (RemoveOverlaps returns them in
// ascending order; ApplyAll does this sorting itself) so that an earlier
// edit's offset shift never invalidates a later one.
func ApplySuggestion(source string, lint Lint, suggestion Suggestion) (string, error) {
	runes := []rune(source)
	if lint.Span.Start < 0 || lint.Span.End > len(runes) || lint.Span.Start > lint.Span.End {
		return "", ErrSpanOutOfRange
	}

	var b strings.Builder
	b.WriteString(string(runes[:lint.Span.Start]))

	switch suggestion.Kind {
	case SuggestionReplace:
		b.WriteString(suggestion.Text)
	case SuggestionRemove:
		// nothing to write for the span itself
	case SuggestionInsertAfter:
		b.WriteString(string(runes[lint.Span.Start:lint.Span.End]))
		b.WriteString(suggestion.Text)
	}
	b.WriteString(string(runes[lint.Span.End:]))

	return b.String(), nil
}

// ApplyAll applies the first suggestion of every lint in lints to source,
// in a single pass, working from the rightmost span to the leftmost so
// offsets never shift out from under an earlier computed span. Lints with
// no suggestions are skipped. Callers wanting only non-overlapping edits
// should run lints through RemoveOverlaps first.
func ApplyAll(source string, lints []Lint) (string, error) {
	ordered := append([]Lint(nil), lints...)
	sortLintsBySpanDescending(ordered)

	result := source
	for _, lint := range ordered {
		if len(lint.Suggestions) == 0 {
			continue
		}
		var err error
		result, err = ApplySuggestion(result, lint, lint.Suggestions[0])
		if err != nil {
			return "", err
		}
	}
	return result, nil
}

func sortLintsBySpanDescending(lints []Lint) {
	for i := 1; i < len(lints); i++ {
		for j := i; j > 0 && lints[j-1].Span.Start < lints[j].Span.Start; j-- {
			lints[j-1], lints[j] = lints[j], lints[j-1]
		}
	}
}

package prosecheck

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestLintGroup_PipelineSnapshots runs the default rule set end to end over
// a handful of representative documents and snapshots the resulting lints,
// so a change to rule ordering, priority, or overlap resolution shows up as
// a diff against a checked-in snapshot instead of silently passing.
func TestLintGroup_PipelineSnapshots(t *testing.T) {
	dict := Curated()
	group := NewLintGroup(nil, dict)

	documents := []struct {
		name string
		text string
	}{
		{"article_and_number", "There are 9 pigs eating a apple."},
		{"genitive_mistake", "What are there big problems?"},
		{"copular_prelude_no_lint", "Were there cats at her house?"},
		{"repeated_word", "The the cat sat on the mat."},
		{"lowercase_sentence_and_pronoun", "i think the the weather is nice. it is sunny."},
		{"clean_sentence", "The quick brown fox jumps over the lazy dog."},
	}

	for _, d := range documents {
		doc := NewPlainEnglishDocument(d.text, dict)
		lints := group.Lint(doc)
		summary := summarizeLints(lints, doc.Source())
		snaps.MatchSnapshot(t, fmt.Sprintf("lintgroup_%s", d.name), summary)
	}
}

func summarizeLints(lints []Lint, source []rune) []string {
	out := make([]string, len(lints))
	for i, l := range lints {
		suggestionText := "<none>"
		if len(l.Suggestions) > 0 {
			suggestionText = l.Suggestions[0].Text
		}
		out[i] = fmt.Sprintf("%s[%s] %q -> %s", l.RuleName, l.Kind, l.Span.GetContentString(source), suggestionText)
	}
	return out
}

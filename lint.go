package prosecheck

import "encoding/json"

// LintKind is a closed enumeration of the categories a Lint can belong to.
// A linter that needs a new kind adds a constant here rather than stringly
// typing it. LintGroupConfig enables and disables rules by rule name, not
// by kind.
type LintKind int

const (
	LintKindSpelling LintKind = iota
	LintKindCapitalization
	LintKindPunctuation
	LintKindStyle
	LintKindWordChoice
	LintKindRepetition
	LintKindBoundaryError
	LintKindReadability
	LintKindEnhancement
	LintKindMiscellaneous
)

func (k LintKind) String() string {
	switch k {
	case LintKindSpelling:
		return "Spelling"
	case LintKindCapitalization:
		return "Capitalization"
	case LintKindPunctuation:
		return "Punctuation"
	case LintKindStyle:
		return "Style"
	case LintKindWordChoice:
		return "WordChoice"
	case LintKindRepetition:
		return "Repetition"
	case LintKindBoundaryError:
		return "BoundaryError"
	case LintKindReadability:
		return "Readability"
	case LintKindEnhancement:
		return "Enhancement"
	default:
		return "Miscellaneous"
	}
}

// Suggestion is one way a Lint's span could be fixed. Exactly one of
// ReplaceWith or InsertAfter describes the edit; Remove needs neither.
type Suggestion struct {
	// Kind distinguishes how to interpret the rest of the struct.
	Kind SuggestionKind
	// Text is the replacement or insertion text, meaningful for
	// SuggestionReplace and SuggestionInsertAfter.
	Text string
}

// SuggestionKind is a closed enumeration of suggestion shapes.
type SuggestionKind int

const (
	SuggestionReplace SuggestionKind = iota
	SuggestionRemove
	SuggestionInsertAfter
)

// ReplaceWith builds a suggestion that swaps the lint's span for text.
func ReplaceWith(text string) Suggestion {
	return Suggestion{Kind: SuggestionReplace, Text: text}
}

// RemoveSpan builds a suggestion that deletes the lint's span entirely.
func RemoveSpan() Suggestion {
	return Suggestion{Kind: SuggestionRemove}
}

// InsertAfterSpan builds a suggestion that leaves the span untouched and
// inserts text immediately after it.
func InsertAfterSpan(text string) Suggestion {
	return Suggestion{Kind: SuggestionInsertAfter, Text: text}
}

// Lint is a single finding: a span of the source a rule flagged, a message
// explaining why, zero or more candidate fixes, and the rule name that
// produced it so LintGroupConfig can enable or disable it by name.
type Lint struct {
	Span        Span
	Kind        LintKind
	Message     string
	Suggestions []Suggestion
	RuleName    string
	// Priority breaks overlap ties: lower values win. Rules that are more
	// confident about the fix they propose (an exact dictionary match,
	// say) set a lower priority than rules relying on a heuristic.
	Priority int
}

// suggestionKindWireName returns the wire-format string for a SuggestionKind
// (§6's diagnostic wire format), "insert_after" being this module's own
// addition to the spec's "replace"/"remove" pair for InsertAfterSpan.
func (k SuggestionKind) suggestionKindWireName() string {
	switch k {
	case SuggestionReplace:
		return "replace"
	case SuggestionInsertAfter:
		return "insert_after"
	default:
		return "remove"
	}
}

// MarshalJSON renders a Suggestion as {kind, text?}, omitting text for a
// bare removal.
func (s Suggestion) MarshalJSON() ([]byte, error) {
	wire := struct {
		Kind string `json:"kind"`
		Text string `json:"text,omitempty"`
	}{Kind: s.Kind.suggestionKindWireName(), Text: s.Text}
	return json.Marshal(wire)
}

// MarshalJSON renders a Span as {start, end}, the shape §6's wire format
// names for a Lint's span field.
func (s Span) MarshalJSON() ([]byte, error) {
	wire := struct {
		Start int `json:"start"`
		End   int `json:"end"`
	}{Start: s.Start, End: s.End}
	return json.Marshal(wire)
}

// MarshalJSON renders a Lint in the diagnostic wire format spec.md §6
// names: span, lint_kind, suggestions, message, priority.
func (l Lint) MarshalJSON() ([]byte, error) {
	wire := struct {
		Span        Span         `json:"span"`
		LintKind    string       `json:"lint_kind"`
		Suggestions []Suggestion `json:"suggestions"`
		Message     string       `json:"message"`
		Priority    int          `json:"priority"`
	}{
		Span:        l.Span,
		LintKind:    l.Kind.String(),
		Suggestions: l.Suggestions,
		Message:     l.Message,
		Priority:    l.Priority,
	}
	if wire.Suggestions == nil {
		wire.Suggestions = []Suggestion{}
	}
	return json.Marshal(wire)
}

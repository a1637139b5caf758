package prosecheck

import "errors"

// ErrSpanOutOfRange is returned by ApplySuggestion when a Lint's span no
// longer fits inside the document it is being applied to - typically
// because an earlier suggestion's application shifted offsets and the
// caller applied them out of order instead of working from a fresh
// overlap-resolved set.
var ErrSpanOutOfRange = errors.New("prosecheck: lint span out of range")

// ErrConfigParse is returned by ParseLintGroupConfig, ParseDictionaryOverlay
// and their YAML variants when the input is not valid JSON (or YAML), is not
// an object, or holds a value of the wrong type.
var ErrConfigParse = errors.New("prosecheck: could not parse lint group configuration")

// ErrUnknownRule is returned when a configuration names a rule the group
// doesn't recognize - config files are expected to stay in sync with the
// closed rule registry, so this usually means a typo or a stale file.
var ErrUnknownRule = errors.New("prosecheck: unknown rule name")

// ErrNoPairedQuote is returned by callers that expect a quote token to have
// a partner (e.g. building an inline fix for an unclosed quote) and find
// PairIndex < 0 instead.
var ErrNoPairedQuote = errors.New("prosecheck: quote token has no pair")

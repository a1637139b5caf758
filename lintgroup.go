package prosecheck

import (
	"strings"
	"unicode"
)

// ruleRegistry is the closed, build-time list of every rule a LintGroup can
// run. Adding a rule means adding a row here - there is no runtime
// registration path, which keeps LintGroupConfig's rule names a fixed,
// enumerable set a host can validate configuration against ahead of time.
// DefaultEnabled values are taken directly from the grounding source's own
// `create_lint_group_config!` table (lint_group.rs), not reinvented.
type ruleRegistration struct {
	Name           string
	DefaultEnabled bool
	Build          func(dict Dictionary) Linter
}

var ruleRegistry = []ruleRegistration{
	{"SpelledNumbers", false, func(Dictionary) Linter { return NewSpelledNumbers() }},
	{"CorrectNumberSuffix", true, func(Dictionary) Linter { return NewCorrectNumberSuffix() }},
	{"NumberSuffixCapitalization", true, func(Dictionary) Linter { return NewNumberSuffixCapitalization() }},
	{"UnclosedQuotes", true, func(Dictionary) Linter { return NewUnclosedQuotes() }},
	{"WrongQuotes", false, func(Dictionary) Linter { return NewWrongQuotes() }},
	{"SentenceCapitalization", false, func(Dictionary) Linter { return NewSentenceCapitalization() }},
	{"LongSentences", true, func(Dictionary) Linter { return NewLongSentences() }},
	{"TerminatingConjunctions", true, func(Dictionary) Linter { return NewTerminatingConjunctions() }},
	{"CapitalizePersonalPronouns", true, func(Dictionary) Linter { return NewCapitalizePersonalPronouns() }},
	{"AnA", true, func(Dictionary) Linter { return NewAnA() }},
	{"RepeatedWords", true, func(Dictionary) Linter { return NewRepeatedWords() }},
	{"BoringWords", false, func(Dictionary) Linter { return NewBoringWords() }},
	{"AvoidCurses", true, func(Dictionary) Linter { return NewAvoidCurses() }},
	{"MultipleSequentialPronouns", true, func(Dictionary) Linter { return NewMultipleSequentialPronouns() }},
	{"LinkingVerbs", false, func(Dictionary) Linter { return NewLinkingVerbs() }},
	{"ThatWhich", true, func(Dictionary) Linter { return NewThatWhich() }},
	{"DotInitialisms", true, func(Dictionary) Linter { return NewDotInitialisms() }},
	{"Spaces", false, func(Dictionary) Linter { return NewSpaces() }},
	{"EllipsisLength", true, func(Dictionary) Linter { return NewEllipsisLength() }},
	{"UseGenitive", false, func(Dictionary) Linter { return NewUseGenitive() }},
	{"CommonMisuses", true, func(Dictionary) Linter { return NewCommonMisusesMatcher() }},
	{"SpellCheck", true, func(dict Dictionary) Linter { return NewSpellCheck(dict) }},
}

// ruleNameToSnakeCase converts a ruleRegistry entry's PascalCase Name to the
// snake_case form spec.md's LintGroupConfig wire format requires for keys
// ("snake_case_rule_name: bool|null"), matching the PascalCase -> snake_case
// conversion the grounding source's `paste! { [<$linter:snake>] }` macro
// performs for the same field names.
func ruleNameToSnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// canonicalRuleName looks up key (a snake_case rule name, as it appears in a
// serialized LintGroupConfig) and returns the registry's canonical
// PascalCase Name for it, or ("", false) if key names no registered rule.
func canonicalRuleName(key string) (string, bool) {
	for _, r := range ruleRegistry {
		if ruleNameToSnakeCase(r.Name) == key {
			return r.Name, true
		}
	}
	return "", false
}

// RegisteredRuleNames returns every rule name LintGroupConfig can toggle, in
// the snake_case form a serialized config uses, in registry order.
func RegisteredRuleNames() []string {
	names := make([]string, len(ruleRegistry))
	for i, r := range ruleRegistry {
		names[i] = ruleNameToSnakeCase(r.Name)
	}
	return names
}

// LintGroupConfig decides which registered rules run. A rule with no entry
// in the config uses its registry default; an explicit true/false set for
// it overrides that default.
type LintGroupConfig struct {
	overrides map[string]bool
}

// NewLintGroupConfig returns a config where every rule uses its registry
// default.
func NewLintGroupConfig() *LintGroupConfig {
	return &LintGroupConfig{overrides: make(map[string]bool)}
}

// None returns a config with every registered rule explicitly disabled,
// meant as a base a caller then selectively re-enables rules on top of -
// useful for a host that wants an opt-in, rather than opt-out, rule set.
func None() *LintGroupConfig {
	c := NewLintGroupConfig()
	for _, r := range ruleRegistry {
		c.overrides[r.Name] = false
	}
	return c
}

// Set overrides a single rule's enabled state. It is a no-op (silently, not
// an error) if name isn't registered, since a config built from a stale
// file shouldn't crash a linting pass over it - ParseLintGroupConfig is the
// place that surfaces ErrUnknownRule to a caller who wants to validate
// input strictly.
func (c *LintGroupConfig) Set(name string, enabled bool) {
	c.overrides[name] = enabled
}

func (c *LintGroupConfig) isEnabled(r ruleRegistration) bool {
	if enabled, ok := c.overrides[r.Name]; ok {
		return enabled
	}
	return r.DefaultEnabled
}

// LintGroup runs every enabled rule against a Document and returns the
// overlap-resolved union of their findings.
type LintGroup struct {
	linters []Linter
}

// NewLintGroup builds a LintGroup from config (nil means every rule at its
// registry default) and dict (used by rules that need dictionary access,
// currently just SpellCheck; may be nil).
func NewLintGroup(config *LintGroupConfig, dict Dictionary) *LintGroup {
	if config == nil {
		config = NewLintGroupConfig()
	}
	group := &LintGroup{}
	for _, r := range ruleRegistry {
		if !config.isEnabled(r) {
			continue
		}
		group.linters = append(group.linters, r.Build(dict))
	}
	return group
}

// Lint runs every enabled rule against doc and returns their findings with
// overlaps resolved.
func (g *LintGroup) Lint(doc *Document) []Lint {
	var all []Lint
	for _, linter := range g.linters {
		all = append(all, linter.Lint(doc)...)
	}
	return RemoveOverlaps(all)
}

package prosecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLintGroupConfig_ExplicitFalseDisablesRule(t *testing.T) {
	cfg, err := ParseLintGroupConfig(`{"an_a": false}`)
	require.NoError(t, err)
	assert.False(t, cfg.isEnabled(ruleRegistration{Name: "AnA", DefaultEnabled: true}))
}

func TestParseLintGroupConfig_ExplicitNullMeansRegistryDefault(t *testing.T) {
	cfg, err := ParseLintGroupConfig(`{"an_a": null}`)
	require.NoError(t, err)
	assert.True(t, cfg.isEnabled(ruleRegistration{Name: "AnA", DefaultEnabled: true}))
	assert.False(t, cfg.isEnabled(ruleRegistration{Name: "BoringWords", DefaultEnabled: false}))
}

func TestParseLintGroupConfig_MissingKeyMeansRegistryDefault(t *testing.T) {
	cfg, err := ParseLintGroupConfig(`{}`)
	require.NoError(t, err)
	assert.True(t, cfg.isEnabled(ruleRegistration{Name: "AnA", DefaultEnabled: true}))
}

func TestParseLintGroupConfig_UnknownRuleIsAnError(t *testing.T) {
	_, err := ParseLintGroupConfig(`{"not_a_real_rule": true}`)
	assert.ErrorIs(t, err, ErrUnknownRule)
}

func TestParseLintGroupConfig_InvalidJSONIsAnError(t *testing.T) {
	_, err := ParseLintGroupConfig(`{not json`)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestParseLintGroupConfig_NonObjectIsAnError(t *testing.T) {
	_, err := ParseLintGroupConfig(`[1, 2, 3]`)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestParseLintGroupConfig_NonBooleanValueIsAnError(t *testing.T) {
	_, err := ParseLintGroupConfig(`{"an_a": "yes"}`)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestParseLintGroupConfigYAML_MatchesEquivalentJSON(t *testing.T) {
	cfg, err := ParseLintGroupConfigYAML("an_a: false\nboring_words: true\n")
	require.NoError(t, err)
	assert.False(t, cfg.isEnabled(ruleRegistration{Name: "AnA", DefaultEnabled: true}))
	assert.True(t, cfg.isEnabled(ruleRegistration{Name: "BoringWords", DefaultEnabled: false}))
}

func TestRuleNameToSnakeCase_MatchesRegisteredRuleNames(t *testing.T) {
	assert.Equal(t, "spelled_numbers", ruleNameToSnakeCase("SpelledNumbers"))
	assert.Equal(t, "an_a", ruleNameToSnakeCase("AnA"))
	assert.Equal(t, "spell_check", ruleNameToSnakeCase("SpellCheck"))
	assert.Contains(t, RegisteredRuleNames(), "spelled_numbers")
	assert.Contains(t, RegisteredRuleNames(), "an_a")
}

func TestNone_DisablesEveryRegisteredRule(t *testing.T) {
	cfg := None()
	for _, r := range ruleRegistry {
		assert.False(t, cfg.isEnabled(r), "rule %q should be disabled by None()", r.Name)
	}
}

func TestLintGroupConfig_SetOverridesRegistryDefault(t *testing.T) {
	cfg := None()
	cfg.Set("AnA", true)
	assert.True(t, cfg.isEnabled(ruleRegistration{Name: "AnA", DefaultEnabled: true}))
	assert.False(t, cfg.isEnabled(ruleRegistration{Name: "RepeatedWords", DefaultEnabled: true}))
}

func TestParseDictionaryOverlay_SetsOnlyPresentFlags(t *testing.T) {
	dict, err := ParseDictionaryOverlay(`{"frobnicate": {"verb": true}}`)
	require.NoError(t, err)
	meta, ok := dict.LookupStr("frobnicate")
	require.True(t, ok)
	assert.True(t, meta.IsKnownVerb())
	assert.False(t, meta.IsKnownNoun())
}

func TestParseDictionaryOverlayYAML_MatchesEquivalentJSON(t *testing.T) {
	dict, err := ParseDictionaryOverlayYAML("gadget:\n  noun: true\n")
	require.NoError(t, err)
	assert.True(t, dict.ContainsStr("gadget"))
}

func TestParseDictionaryOverlay_NonObjectValueIsAnError(t *testing.T) {
	_, err := ParseDictionaryOverlay(`{"gadget": "not an object"}`)
	assert.ErrorIs(t, err, ErrConfigParse)
}

func TestNewLintGroup_RespectsConfigOverrides(t *testing.T) {
	dict := Curated()
	cfg := None()
	cfg.Set("AnA", true)
	group := NewLintGroup(cfg, dict)
	lints := group.Lint(NewPlainEnglishDocument("I saw a apple today.", dict))
	require.Len(t, lints, 1)
	assert.Equal(t, "AnA", lints[0].RuleName)
}

func TestNewLintGroup_NilConfigUsesRegistryDefaults(t *testing.T) {
	dict := Curated()
	group := NewLintGroup(nil, dict)
	lints := group.Lint(NewPlainEnglishDocument("i saw a apple today.", dict))
	var names []string
	for _, l := range lints {
		names = append(names, l.RuleName)
	}
	assert.Contains(t, names, "AnA")
	assert.Contains(t, names, "CapitalizePersonalPronouns")
}

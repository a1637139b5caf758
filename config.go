package prosecheck

import (
	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// ParseLintGroupConfig reads a JSON rule-enablement document - an object
// mapping snake_case rule names (spec.md §6: "snake_case_rule_name:
// bool|null") to true, false, or null - into a LintGroupConfig. A missing
// key and an explicit null both mean "use the rule's registry default";
// gjson is what makes that distinction cheap to make, since it reports a
// key's JSON type without requiring a target struct field to unmarshal into
// (unlike encoding/json, which can't tell "absent" from "the zero value"
// for a plain bool field).
func ParseLintGroupConfig(jsonText string) (*LintGroupConfig, error) {
	if !gjson.Valid(jsonText) {
		logConfigParseFailure(ErrConfigParse)
		return nil, ErrConfigParse
	}
	parsed := gjson.Parse(jsonText)
	if !parsed.IsObject() {
		logConfigParseFailure(ErrConfigParse)
		return nil, ErrConfigParse
	}

	config := NewLintGroupConfig()
	var firstErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		snakeName := key.String()
		name, ok := canonicalRuleName(snakeName)
		if !ok {
			logUnknownRule(snakeName)
			firstErr = ErrUnknownRule
			return false
		}
		switch value.Type {
		case gjson.Null:
			// explicit default; nothing to override
		case gjson.True, gjson.False:
			config.Set(name, value.Bool())
		default:
			firstErr = ErrConfigParse
			return false
		}
		return true
	})
	if firstErr != nil {
		logConfigParseFailure(firstErr)
		return nil, firstErr
	}
	return config, nil
}

// ParseLintGroupConfigYAML is ParseLintGroupConfig for a YAML document,
// converting to JSON first so both formats flow through the same
// null/missing/value logic.
func ParseLintGroupConfigYAML(yamlText string) (*LintGroupConfig, error) {
	jsonBytes, err := yaml.YAMLToJSON([]byte(yamlText))
	if err != nil {
		return nil, ErrConfigParse
	}
	return ParseLintGroupConfig(string(jsonBytes))
}

// ParseDictionaryOverlay reads a JSON object mapping a word to its
// part-of-speech flags into a standalone *FullDictionary, meant to be layered
// onto Curated() (or another base) via MergedDictionary.WithOverlay. Flags
// not present in a word's object default to false (unknown), matching
// WordMetadata's zero value.
func ParseDictionaryOverlay(jsonText string) (*FullDictionary, error) {
	if !gjson.Valid(jsonText) {
		logDictionaryLoadFailure(ErrConfigParse)
		return nil, ErrConfigParse
	}
	parsed := gjson.Parse(jsonText)
	if !parsed.IsObject() {
		logDictionaryLoadFailure(ErrConfigParse)
		return nil, ErrConfigParse
	}

	dict := NewFullDictionary()
	var firstErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			firstErr = ErrConfigParse
			return false
		}
		flag := func(name string) *bool {
			result := value.Get(name)
			if !result.Exists() {
				return nil
			}
			return boolPtr(result.Bool())
		}
		dict.AppendWord(key.String(), WordMetadata{
			IsNoun:        flag("noun"),
			IsVerb:        flag("verb"),
			IsAdjective:   flag("adjective"),
			IsAdverb:      flag("adverb"),
			IsPronoun:     flag("pronoun"),
			IsConjunction: flag("conjunction"),
			IsDeterminer:  flag("determiner"),
			IsPreposition: flag("preposition"),
			IsLinkingVerb: flag("linkingVerb"),
			IsCommon:      flag("common"),
		})
		return true
	})
	if firstErr != nil {
		logDictionaryLoadFailure(firstErr)
		return nil, firstErr
	}
	return dict, nil
}

// ParseDictionaryOverlayYAML is ParseDictionaryOverlay for a YAML document.
func ParseDictionaryOverlayYAML(yamlText string) (*FullDictionary, error) {
	jsonBytes, err := yaml.YAMLToJSON([]byte(yamlText))
	if err != nil {
		logDictionaryLoadFailure(ErrConfigParse)
		return nil, ErrConfigParse
	}
	return ParseDictionaryOverlay(string(jsonBytes))
}

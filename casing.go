package prosecheck

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerCaser and titleCaser apply English casing rules rather than a
// byte-level ASCII swap, so a character whose casing mapping is more than
// one rune comes out right instead of silently passing an accented or
// ligatured character through unconverted - the kind of input a
// spelling/casing rule can't simply refuse to look at.
var (
	lowerCaser = cases.Lower(language.English)
	titleCaser = cases.Title(language.English)
)

// foldCase lowercases s under English casing rules. Dictionary lookup keys,
// Matcher's table, WordPatternGroup's keys, AnA's article check, and
// stemming all go through this one function so they fold the same way.
// AnA's vowel-sound table and the ordinal-suffix rules use strings.ToLower,
// and RepeatedWords compares with strings.EqualFold.
func foldCase(s string) string {
	return lowerCaser.String(s)
}

// startsUpper reports whether s's first rune is uppercase.
func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r != utf8.RuneError && unicode.IsUpper(r)
}

// upperFirst capitalizes s's first rune, leaving the rest of the string
// untouched, using word-initial title-casing rules rather than unicode.ToUpper
// applied to a single code point.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return titleCaser.String(string(r)) + s[size:]
}

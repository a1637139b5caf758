package prosecheck

import "sort"

// damerauLevenshtein computes the Damerau-Levenshtein edit distance between
// a and b - insertions, deletions, substitutions, and adjacent
// transpositions each cost one edit. This is the "optimal string alignment"
// variant (a transposed pair is never re-edited afterward), which is the
// standard trade-off for spell-check candidate ranking: fast to compute,
// and transpositions ("hte" -> "the") are the most common single typo it
// adds over plain Levenshtein.
func damerauLevenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if trans := d[i-2][j-2] + 1; trans < best {
					best = trans
				}
			}
			d[i][j] = best
		}
	}
	return d[la][lb]
}

// spellCandidate is one scored dictionary word under consideration as a fix
// for an unknown word.
type spellCandidate struct {
	word     string
	distance int
	common   bool
}

// rankSpellCandidates returns the top k dictionary words closest to word by
// Damerau-Levenshtein distance, ties broken by (lower distance already
// sorted first, then) greater commonness, shorter word, and lexicographic
// order - in that priority.
func rankSpellCandidates(word string, dict Dictionary, k int) []string {
	full, ok := dict.(*FullDictionary)
	var vocabulary []string
	if ok {
		vocabulary = full.Words()
	} else if merged, ok := dict.(*MergedDictionary); ok {
		seen := make(map[string]struct{})
		for _, layer := range merged.layers {
			if fd, ok := layer.(*FullDictionary); ok {
				for _, w := range fd.Words() {
					seen[w] = struct{}{}
				}
			}
		}
		vocabulary = make([]string, 0, len(seen))
		for w := range seen {
			vocabulary = append(vocabulary, w)
		}
	}
	if len(vocabulary) == 0 {
		return nil
	}

	target := []rune(normalizeWord(word))
	candidates := make([]spellCandidate, 0, len(vocabulary))
	for _, v := range vocabulary {
		dist := damerauLevenshtein(target, []rune(v))
		common := false
		if meta, ok := dict.LookupStr(v); ok {
			common = meta.IsKnownCommon()
		}
		candidates = append(candidates, spellCandidate{word: v, distance: dist, common: common})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		if a.common != b.common {
			return a.common // common sorts first
		}
		if len(a.word) != len(b.word) {
			return len(a.word) < len(b.word)
		}
		return a.word < b.word
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out
}

// SpellCheck flags a word absent from its dictionary and suggests the
// closest known words by edit distance.
type SpellCheck struct {
	Dict           Dictionary
	CandidateCount int
	// MaxDistance discards a candidate too far from the unknown word to be
	// a useful suggestion (still reported as a lint, just with no fix).
	MaxDistance int
}

// NewSpellCheck builds the rule against dict, suggesting up to three
// candidates no more than two edits away.
func NewSpellCheck(dict Dictionary) *SpellCheck {
	return &SpellCheck{Dict: dict, CandidateCount: 3, MaxDistance: 2}
}

func (r *SpellCheck) Name() string { return "SpellCheck" }

func (r *SpellCheck) Lint(doc *Document) []Lint {
	if r.Dict == nil {
		return nil
	}
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsWord() {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		if r.Dict.ContainsStr(text) {
			continue
		}
		if stemKnown(text, r.Dict) {
			continue
		}

		candidates := rankSpellCandidates(text, r.Dict, r.CandidateCount)
		var suggestions []Suggestion
		for _, c := range candidates {
			if damerauLevenshtein([]rune(normalizeWord(text)), []rune(c)) > r.MaxDistance {
				continue
			}
			suggestions = append(suggestions, ReplaceWith(matchCase(text, c)))
		}

		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindSpelling,
			Message:     "\"" + text + "\" is not a recognized word.",
			Suggestions: suggestions,
			Priority:    20,
		})
	}
	return out
}

// stemKnown reports whether word's stem matches the stem of some word the
// dictionary recognizes, used to avoid flagging an inflected form
// ("runs", "jumping") of a known root as unrecognized.
func stemKnown(word string, dict Dictionary) bool {
	full, ok := dict.(*FullDictionary)
	if !ok {
		if merged, ok := dict.(*MergedDictionary); ok {
			for _, layer := range merged.layers {
				if stemKnown(word, layer) {
					return true
				}
			}
		}
		return false
	}
	target := stem(normalizeWord(word))
	for _, v := range full.Words() {
		if stem(v) == target {
			return true
		}
	}
	return false
}

package prosecheck

import "strings"

var vowelStartExceptions = map[string]bool{
	"university": true, "european": true, "one": true, "once": true,
	"unicorn": true, "unique": true, "user": true, "uniform": true,
	"usual": true, "eulogy": true, "euro": true,
}

var consonantStartExceptions = map[string]bool{
	"hour": true, "honest": true, "honor": true, "honorable": true,
	"heir": true, "herb": true,
}

func startsWithVowelSound(word string) bool {
	lower := strings.ToLower(word)
	if vowelStartExceptions[lower] {
		return false
	}
	if consonantStartExceptions[lower] {
		return true
	}
	if lower == "" {
		return false
	}
	switch lower[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// AnA flags "a"/"an" mismatched with the sound of the word that follows
// ("a apple", "an university") and suggests the correct article.
type AnA struct{}

func NewAnA() *AnA { return &AnA{} }

func (r *AnA) Name() string { return "AnA" }

func (r *AnA) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	source := doc.Source()
	for i, tok := range tokens {
		if !tok.IsWord() {
			continue
		}
		text := tok.Span.GetContentString(source)
		lower := foldCase(text)
		if lower != "a" && lower != "an" {
			continue
		}
		j := i + 1
		for j < len(tokens) && tokens[j].IsWhitespace() {
			j++
		}
		if j >= len(tokens) || !tokens[j].IsWord() {
			continue
		}
		next := tokens[j].Span.GetContentString(source)
		wantAn := startsWithVowelSound(next)
		if wantAn == (lower == "an") {
			continue
		}
		replacement := "a"
		if wantAn {
			replacement = "an"
		}
		if text == "A" || text == "An" {
			replacement = upperFirst(replacement)
		}
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindEnhancement,
			Message:     "Use \"" + replacement + "\" before a word that sounds like it starts with a " + vowelOrConsonant(wantAn) + ".",
			Suggestions: []Suggestion{ReplaceWith(replacement)},
			Priority:    1,
		})
	}
	return out
}

func vowelOrConsonant(vowel bool) string {
	if vowel {
		return "vowel"
	}
	return "consonant"
}

// RepeatedWords flags two identical words (case-insensitive) in a row,
// separated only by whitespace - "the the cat" - almost always a typo from
// editing.
type RepeatedWords struct{}

func NewRepeatedWords() *RepeatedWords { return &RepeatedWords{} }

func (r *RepeatedWords) Name() string { return "RepeatedWords" }

func (r *RepeatedWords) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	source := doc.Source()
	for i := 0; i < len(tokens); i++ {
		if !tokens[i].IsWord() {
			continue
		}
		j := i + 1
		for j < len(tokens) && tokens[j].IsWhitespace() {
			j++
		}
		if j >= len(tokens) || !tokens[j].IsWord() {
			continue
		}
		a := tokens[i].Span.GetContentString(source)
		b := tokens[j].Span.GetContentString(source)
		if !strings.EqualFold(a, b) {
			continue
		}
		span := NewSpan(tokens[i].Span.Start, tokens[j].Span.End)
		out = append(out, Lint{
			Span:        span,
			RuleName:    r.Name(),
			Kind:        LintKindRepetition,
			Message:     "Repeated word \"" + b + "\".",
			Suggestions: []Suggestion{ReplaceWith(a)},
			Priority:    2,
		})
		i = j
	}
	return out
}

// BoringWords flags a sentence where function words dominate the word
// count, a sign it could say more with fewer, more specific words.
type BoringWords struct {
	// MaxRatio is the largest fraction (0-1) of boring words tolerated
	// before a sentence is flagged.
	MaxRatio float64
	MinWords int
}

// NewBoringWords returns the rule with its usual threshold of 70%, only
// applied to sentences of at least six words (shorter sentences are too
// noisy a sample to judge).
func NewBoringWords() *BoringWords {
	return &BoringWords{MaxRatio: 0.7, MinWords: 6}
}

func (r *BoringWords) Name() string { return "BoringWords" }

func (r *BoringWords) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	source := doc.Source()
	for _, sentence := range doc.IterSentences() {
		total, boring := 0, 0
		for _, tok := range doc.SentenceTokens(sentence) {
			if !tok.IsWord() {
				continue
			}
			total++
			if isBoringWord(tok.Span.GetContentString(source)) {
				boring++
			}
		}
		if total < r.MinWords {
			continue
		}
		if float64(boring)/float64(total) <= r.MaxRatio {
			continue
		}
		start := tokens[sentence.Start].Span.Start
		end := tokens[sentence.End-1].Span.End
		out = append(out, Lint{
			Span:     NewSpan(start, end),
			RuleName: r.Name(),
			Kind:     LintKindStyle,
			Message:  "This sentence is mostly function words; consider saying more with fewer of them.",
			Priority: 10,
		})
	}
	return out
}

// AvoidCurses flags mild profanity from curseWords.
type AvoidCurses struct{}

func NewAvoidCurses() *AvoidCurses { return &AvoidCurses{} }

func (r *AvoidCurses) Name() string { return "AvoidCurses" }

func (r *AvoidCurses) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsWord() {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		if _, ok := curseWords[normalizeWord(text)]; !ok {
			continue
		}
		out = append(out, Lint{
			Span:     tok.Span,
			RuleName: r.Name(),
			Kind:     LintKindWordChoice,
			Message:  "Consider a milder word choice for a formal audience.",
			Priority: 8,
		})
	}
	return out
}

// MultipleSequentialPronouns flags two or more pronouns in a row ("he she
// left"), usually a sign of a dropped conjunction or a botched edit.
type MultipleSequentialPronouns struct{}

func NewMultipleSequentialPronouns() *MultipleSequentialPronouns {
	return &MultipleSequentialPronouns{}
}

func (r *MultipleSequentialPronouns) Name() string { return "MultipleSequentialPronouns" }

func (r *MultipleSequentialPronouns) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for i := 0; i < len(tokens); i++ {
		if !tokens[i].IsWord() || !tokens[i].Kind.Word.IsKnownPronoun() {
			continue
		}
		j := i + 1
		for j < len(tokens) && tokens[j].IsWhitespace() {
			j++
		}
		if j >= len(tokens) || !tokens[j].IsWord() || !tokens[j].Kind.Word.IsKnownPronoun() {
			continue
		}
		span := NewSpan(tokens[i].Span.Start, tokens[j].Span.End)
		out = append(out, Lint{
			Span:     span,
			RuleName: r.Name(),
			Kind:     LintKindEnhancement,
			Message:  "Two pronouns in a row is unusual; check for a missing word.",
			Priority: 6,
		})
		i = j
	}
	return out
}

// LinkingVerbs flags three or more linking verbs within one sentence, a
// sign the sentence is leaning on "is/was/seems" instead of stronger verbs.
type LinkingVerbs struct {
	MaxPerSentence int
}

func NewLinkingVerbs() *LinkingVerbs { return &LinkingVerbs{MaxPerSentence: 3} }

func (r *LinkingVerbs) Name() string { return "LinkingVerbs" }

func (r *LinkingVerbs) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	for _, sentence := range doc.IterSentences() {
		count := 0
		for _, tok := range doc.SentenceTokens(sentence) {
			if tok.IsWord() && tok.Kind.Word.IsKnownLinkingVerb() {
				count++
			}
		}
		if count < r.MaxPerSentence {
			continue
		}
		start := tokens[sentence.Start].Span.Start
		end := tokens[sentence.End-1].Span.End
		out = append(out, Lint{
			Span:     NewSpan(start, end),
			RuleName: r.Name(),
			Kind:     LintKindStyle,
			Message:  "This sentence leans heavily on linking verbs; consider a more active construction.",
			Priority: 10,
		})
	}
	return out
}

// ThatWhich flags a restrictive "which" clause (no comma before it) and
// suggests "that", the usual distinction in edited American English between
// restrictive "that" and non-restrictive, comma-set-off "which".
type ThatWhich struct{}

func NewThatWhich() *ThatWhich { return &ThatWhich{} }

func (r *ThatWhich) Name() string { return "ThatWhich" }

func (r *ThatWhich) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	source := doc.Source()
	for i, tok := range tokens {
		if !tok.IsWord() || tok.Span.GetContentString(source) != "which" {
			continue
		}
		j := i - 1
		for j >= 0 && tokens[j].IsWhitespace() {
			j--
		}
		if j >= 0 && tokens[j].IsPunctuation() && rune(tokens[j].Kind.Punctuation) == ',' {
			continue
		}
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindEnhancement,
			Message:     `Use "that" for a restrictive clause not set off by a comma.`,
			Suggestions: []Suggestion{ReplaceWith("that")},
			Priority:    8,
		})
	}
	return out
}

// DotInitialisms flags a bare initialism from knownInitialisms and
// suggests the dotted form.
type DotInitialisms struct{}

func NewDotInitialisms() *DotInitialisms { return &DotInitialisms{} }

func (r *DotInitialisms) Name() string { return "DotInitialisms" }

func (r *DotInitialisms) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsWord() {
			continue
		}
		text := tok.Span.GetContentString(doc.Source())
		dotted, ok := knownInitialisms[text]
		if !ok {
			continue
		}
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindBoundaryError,
			Message:     "Consider writing \"" + text + "\" with periods between its letters.",
			Suggestions: []Suggestion{ReplaceWith(dotted)},
			Priority:    9,
		})
	}
	return out
}

// Spaces flags a space token two or more characters wide (the tokenizer
// merges a run of spaces and tabs into one token).
type Spaces struct{}

func NewSpaces() *Spaces { return &Spaces{} }

func (r *Spaces) Name() string { return "Spaces" }

func (r *Spaces) Lint(doc *Document) []Lint {
	var out []Lint
	for _, tok := range doc.Tokens() {
		if !tok.IsSpace() || tok.Kind.SpaceWidth < 2 {
			continue
		}
		out = append(out, Lint{
			Span:        tok.Span,
			RuleName:    r.Name(),
			Kind:        LintKindBoundaryError,
			Message:     "Multiple consecutive spaces.",
			Suggestions: []Suggestion{ReplaceWith(" ")},
			Priority:    3,
		})
	}
	return out
}

// EllipsisLength flags a run of periods that isn't exactly three - "...."
// or ".." where an ellipsis ("...") was clearly meant.
type EllipsisLength struct{}

func NewEllipsisLength() *EllipsisLength { return &EllipsisLength{} }

func (r *EllipsisLength) Name() string { return "EllipsisLength" }

func (r *EllipsisLength) Lint(doc *Document) []Lint {
	var out []Lint
	tokens := doc.Tokens()
	i := 0
	for i < len(tokens) {
		if !tokens[i].IsPunctuation() || rune(tokens[i].Kind.Punctuation) != '.' {
			i++
			continue
		}
		start := i
		for i < len(tokens) && tokens[i].IsPunctuation() && rune(tokens[i].Kind.Punctuation) == '.' {
			i++
		}
		count := i - start
		if count < 2 || count == 3 {
			continue
		}
		span := NewSpan(tokens[start].Span.Start, tokens[i-1].Span.End)
		out = append(out, Lint{
			Span:        span,
			RuleName:    r.Name(),
			Kind:        LintKindPunctuation,
			Message:     "An ellipsis is conventionally written as a single \"…\" character.",
			Suggestions: []Suggestion{ReplaceWith("…")},
			Priority:    4,
		})
	}
	return out
}

package prosecheck

// wordEntry is one row of the built-in word list. The list here is
// intentionally small: it exists to make this package usable and testable
// out of the box, not to be a production-grade English dictionary. Hosts
// that need full coverage inject their own word list as a MergedDictionary
// overlay (or replace Curated's result outright) - the concrete dictionary
// data is a capability this package accepts, not one it ships.
type wordEntry struct {
	word string
	meta WordMetadata
}

var curatedWords = buildCuratedWords()

func buildCuratedWords() []wordEntry {
	entries := make([]wordEntry, 0, 256)

	add := func(meta WordMetadata, words ...string) {
		for _, w := range words {
			entries = append(entries, wordEntry{word: w, meta: meta})
		}
	}

	common := func(m WordMetadata) WordMetadata { return m.WithCommon() }

	// Pronouns.
	add(common(Pronoun()), "i", "me", "you", "he", "him", "she", "her", "it",
		"we", "us", "they", "them", "this", "that", "these", "those",
		"who", "whom", "which", "what", "myself", "yourself", "himself",
		"herself", "itself", "ourselves", "themselves")

	// Determiners.
	add(common(Determiner()), "the", "a", "an", "this", "that", "these",
		"those", "my", "your", "his", "its", "our", "their", "some", "any",
		"no", "every", "each", "either", "neither")

	// Conjunctions - includes the "FANBOYS" coordinating set checked by
	// TerminatingConjunctions.
	add(common(Conjunction()), "and", "but", "or", "nor", "for", "yet", "so",
		"because", "although", "since", "unless", "while", "whereas")

	// Linking verbs.
	add(common(LinkingVerb()), "is", "are", "was", "were", "be", "been",
		"being", "am", "seem", "seems", "seemed", "become", "becomes",
		"became", "appear", "appears", "appeared", "feel", "feels", "felt",
		"look", "looks", "looked", "sound", "sounds", "sounded")

	// Other common verbs.
	add(common(Verb()), "have", "has", "had", "do", "does", "did", "will",
		"would", "can", "could", "shall", "should", "may", "might", "must",
		"go", "goes", "went", "make", "makes", "made", "get", "gets", "got",
		"see", "saw", "seen", "know", "knew", "known", "think", "thought",
		"take", "took", "taken", "come", "came", "want", "wants", "wanted",
		"received", "receives", "receive", "sitting", "sit", "sat")

	// Common nouns used by the worked examples in rule tests.
	add(common(Noun()), "pig", "pigs", "problem", "problems", "cat", "cats",
		"apple", "apples", "house", "store", "fruit", "people", "party",
		"student", "students", "result", "results", "test", "tests",
		"friend", "friend's", "chair", "home", "dog", "dogs", "fox",
		"sentence", "sentences", "word", "words")

	// Adjectives.
	add(common(Adjective()), "big", "small", "many", "few", "more", "less",
		"cute", "faster", "slow", "quick", "lazy", "brown", "happy", "sad")

	// Adverbs.
	add(common(Adverb()), "very", "quickly", "slowly", "really", "always",
		"never", "often", "rarely", "today", "here", "there")

	// Prepositions.
	add(common(Preposition()), "at", "in", "on", "of", "to", "from", "with",
		"by", "about", "than", "over", "under")

	// Miscellaneous common function words that don't carry a strong part
	// of speech but appear in worked examples.
	add(common(WordMetadata{}), "were", "there", "they're", "their", "six",
		"more")

	return entries
}

// knownInitialisms is consulted by DotInitialisms: a bare uppercase run
// matching one of these is suggested with dots inserted between letters.
var knownInitialisms = map[string]string{
	"NASA": "N.A.S.A.",
	"FBI":  "F.B.I.",
	"CIA":  "C.I.A.",
	"USA":  "U.S.A.",
}

// curseWords is a deliberately small, mild placeholder lexicon for
// AvoidCurses - real deployments inject their own list as part of their
// dictionary capability.
var curseWords = map[string]struct{}{
	"damn":  {},
	"hell":  {},
	"crap":  {},
}

package prosecheck

import snowballeng "github.com/kljensen/snowball/english"

// stem reduces a word to its root form using the Snowball (Porter2)
// algorithm - "running" -> "run", "connection" -> "connect". Through
// stemKnown, SpellCheck uses it to leave an inflected form of a known word
// unflagged, and language detection and IsolateEnglish use it to count such
// a form as a known word. Spell-check candidate ranking does not stem.
func stem(word string) string {
	return snowballeng.Stem(word, false)
}

// isBoringWord reports whether word is a common filler word unlikely to
// carry meaning on its own - the set BoringWords flags when it dominates a
// sentence.
func isBoringWord(word string) bool {
	_, ok := boringWords[normalizeWord(word)]
	return ok
}

// boringWords is the closed set of high-frequency English function words:
// articles, prepositions, conjunctions, pronouns, and auxiliary verbs.
// Excluding these from a sentence leaves behind the words doing the actual
// work, which is what BoringWords measures the ratio against.
var boringWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "across": {}, "after": {}, "afterwards": {},
	"again": {}, "against": {}, "all": {}, "almost": {}, "alone": {}, "along": {},
	"already": {}, "also": {}, "although": {}, "always": {}, "am": {}, "among": {},
	"amongst": {}, "an": {}, "and": {}, "another": {}, "any": {}, "anyhow": {},
	"anyone": {}, "anything": {}, "anyway": {}, "anywhere": {}, "are": {}, "around": {},
	"as": {}, "at": {}, "back": {}, "be": {}, "became": {}, "because": {}, "become": {},
	"becomes": {}, "becoming": {}, "been": {}, "before": {}, "beforehand": {}, "behind": {},
	"being": {}, "below": {}, "beside": {}, "besides": {}, "between": {}, "beyond": {},
	"both": {}, "but": {}, "by": {}, "can": {}, "cannot": {}, "could": {}, "couldn't": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "done": {}, "down": {}, "during": {},
	"each": {}, "either": {}, "else": {}, "elsewhere": {}, "enough": {}, "even": {},
	"ever": {}, "every": {}, "everyone": {}, "everything": {}, "everywhere": {},
	"except": {}, "few": {}, "for": {}, "former": {}, "formerly": {}, "from": {},
	"further": {}, "had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "hence": {},
	"her": {}, "here": {}, "hereafter": {}, "hereby": {}, "herein": {}, "hereupon": {},
	"hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {}, "how": {}, "however": {},
	"i": {}, "if": {}, "in": {}, "indeed": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"itself": {}, "just": {}, "may": {}, "me": {}, "meanwhile": {}, "might": {}, "mine": {},
	"more": {}, "moreover": {}, "most": {}, "mostly": {}, "much": {}, "must": {}, "my": {},
	"myself": {}, "namely": {}, "neither": {}, "never": {}, "nevertheless": {}, "next": {},
	"no": {}, "nobody": {}, "none": {}, "nor": {}, "not": {}, "nothing": {}, "now": {},
	"nowhere": {}, "of": {}, "off": {}, "often": {}, "on": {}, "once": {}, "only": {},
	"onto": {}, "or": {}, "other": {}, "others": {}, "otherwise": {}, "our": {}, "ours": {},
	"ourselves": {}, "out": {}, "over": {}, "own": {}, "perhaps": {}, "rather": {}, "same": {},
	"seem": {}, "seemed": {}, "seeming": {}, "seems": {}, "several": {}, "she": {}, "should": {},
	"since": {}, "so": {}, "some": {}, "somehow": {}, "someone": {}, "something": {},
	"sometime": {}, "sometimes": {}, "somewhere": {}, "still": {}, "such": {}, "than": {},
	"that": {}, "the": {}, "their": {}, "theirs": {}, "them": {}, "themselves": {}, "then": {},
	"thence": {}, "there": {}, "thereafter": {}, "thereby": {}, "therefore": {}, "therein": {},
	"thereupon": {}, "these": {}, "they": {}, "this": {}, "those": {}, "though": {}, "through": {},
	"throughout": {}, "thru": {}, "thus": {}, "to": {}, "together": {}, "too": {}, "toward": {},
	"towards": {}, "under": {}, "until": {}, "up": {}, "upon": {}, "us": {}, "very": {},
	"was": {}, "we": {}, "well": {}, "were": {}, "what": {}, "whatever": {}, "when": {},
	"whence": {}, "whenever": {}, "where": {}, "whereafter": {}, "whereas": {}, "whereby": {},
	"wherein": {}, "whereupon": {}, "wherever": {}, "whether": {}, "which": {}, "while": {},
	"whither": {}, "who": {}, "whoever": {}, "whole": {}, "whom": {}, "whose": {}, "why": {},
	"will": {}, "with": {}, "within": {}, "without": {}, "would": {}, "yet": {}, "you": {},
	"your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

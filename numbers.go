package prosecheck

import "fmt"

var smallNumberWords = map[uint64]string{
	0: "zero", 1: "one", 2: "two", 3: "three", 4: "four", 5: "five",
	6: "six", 7: "seven", 8: "eight", 9: "nine", 10: "ten",
	11: "eleven", 12: "twelve", 13: "thirteen", 14: "fourteen",
	15: "fifteen", 16: "sixteen", 17: "seventeen", 18: "eighteen",
	19: "nineteen", 20: "twenty", 30: "thirty", 40: "forty", 50: "fifty",
	60: "sixty", 70: "seventy", 80: "eighty", 90: "ninety",
}

// spellOutNumber converts an integer in [0, 999] to its English spelling
// ("82" -> "eighty-two"). It is undefined (ok == false) outside that range;
// callers skip emitting a suggestion rather than propagating an error, per
// the rule that number-spelling failures never escalate to errors.
//
// The recursive split mirrors how a person reads the number aloud: peel off
// the largest power-of-ten chunk, spell the remainder, and join with a
// hyphen below one hundred or a space at or above it.
func spellOutNumber(num uint64) (string, bool) {
	if num > 999 {
		return "", false
	}
	if word, ok := smallNumberWords[num]; ok {
		return word, true
	}
	if num%100 == 0 {
		hundreds, _ := spellOutNumber(num / 100)
		return hundreds + " hundred", true
	}

	n := uint64(1)
	for n*10 <= num {
		n *= 10
	}
	parent := (num / n) * n
	child := num % n

	parentWord, _ := spellOutNumber(parent)
	childWord, _ := spellOutNumber(child)

	sep := " "
	if num <= 99 {
		sep = "-"
	}
	return fmt.Sprintf("%s%s%s", parentWord, sep, childWord), true
}

package textmetrics

import "unicode/utf8"

// personalPronouns is the closed set counted for the pronoun metric,
// matched against normalized tokens.
var personalPronouns = map[string]struct{}{
	"i": {}, "me": {}, "my": {}, "mine": {},
	"you": {}, "your": {}, "yours": {},
	"he": {}, "him": {}, "his": {},
	"she": {}, "her": {}, "hers": {},
	"it": {}, "its": {},
	"we": {}, "us": {}, "our": {}, "ours": {},
	"they": {}, "them": {}, "their": {}, "theirs": {},
}

// countPronouns counts personal pronouns over the full token stream, before
// stop-word removal.
func countPronouns(tokens []string) int {
	n := 0
	for _, tok := range tokens {
		if _, ok := personalPronouns[tok]; ok {
			n++
		}
	}
	return n
}

// countReadability tallies the raw readability inputs over content words.
// Character counts are in runes, not bytes.
func countReadability(words []string) (complexWords, syllables, chars int) {
	for _, w := range words {
		if IsComplexWord(w) {
			complexWords++
		}
		syllables += CountSyllables(w)
		chars += utf8.RuneCountInString(w)
	}
	return complexWords, syllables, chars
}

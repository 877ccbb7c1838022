package textmetrics

import (
	"strings"
	"unicode/utf8"
)

const vowels = "aeiouy"

// complexSuffixes are removed before the syllable threshold test.
var complexSuffixes = []string{"es", "ed", "ing"}

// CountSyllables estimates the syllables in a single lowercase word by
// counting maximal vowel runs, discounting a silent final 'e'. Any
// non-empty word counts at least one syllable; the empty string counts
// zero.
func CountSyllables(word string) int {
	if word == "" {
		return 0
	}
	count := vowelRuns(word)
	if count > 1 && silentFinalE(word) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// IsComplexWord reports whether word has three or more syllables once a
// trailing "-es", "-ed", or "-ing" is removed.
func IsComplexWord(word string) bool {
	for _, suffix := range complexSuffixes {
		if strings.HasSuffix(word, suffix) {
			return CountSyllables(strings.TrimSuffix(word, suffix)) >= 3
		}
	}
	return CountSyllables(word) >= 3
}

func vowelRuns(word string) int {
	runs := 0
	inRun := false
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			if !inRun {
				runs++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	return runs
}

// silentFinalE reports whether word ends in a consonant followed by 'e'.
// The "-le" ending does not count as silent.
func silentFinalE(word string) bool {
	last, size := utf8.DecodeLastRuneInString(word)
	if last != 'e' || size == len(word) {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(word[:len(word)-size])
	if prev == 'l' {
		return false
	}
	return !strings.ContainsRune(vowels, prev)
}

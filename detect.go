package textmetrics

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
)

const (
	// EnglishThreshold is the advisory EnglishScore cutoff below which the
	// heuristics in this package become unreliable.
	EnglishThreshold = 0.55

	// minDetectLen is the input length below which detection stays neutral.
	minDetectLen = 20
)

// EnglishScore estimates how strongly text resembles English prose, in
// [0, 1]. It combines the share of ASCII letters with the density of
// English stop words. Very short inputs score a neutral 0.5.
func EnglishScore(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minDetectLen {
		return 0.5
	}

	var letters, ascii int
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			letters++
			if r < 128 {
				ascii++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	asciiRatio := float64(ascii) / float64(letters)

	// English prose runs a third stop words or more; scale so that
	// density saturates well before that point.
	total := len(strings.Fields(trimmed))
	kept := len(strings.Fields(stopwords.CleanString(trimmed, "en", false)))
	density := 0.0
	if total > 0 {
		density = float64(total-kept) / float64(total) * 3
	}
	if density > 1 {
		density = 1
	}

	return 0.6*asciiRatio + 0.4*density
}

// LooksEnglish reports whether EnglishScore clears EnglishThreshold.
// Callers should warn rather than reject: the score is a heuristic.
func LooksEnglish(text string) bool {
	return EnglishScore(text) >= EnglishThreshold
}

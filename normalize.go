package textmetrics

import "strings"

// asciiPunctuation is the fixed set stripped during normalization.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// sanitizer maps typographic quotes to their ASCII forms so the punctuation
// strip treats them like any other quote.
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'",
)

var punctTable = func() [128]bool {
	var t [128]bool
	for _, r := range asciiPunctuation {
		t[r] = true
	}
	return t
}()

// Normalize lowercases text and removes the fixed punctuation set. Removed
// runes are dropped, not replaced: "don't" normalizes to "dont".
func Normalize(text string) string {
	return stripPunctuation(strings.ToLower(sanitizer.Replace(text)))
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 128 && punctTable[r] {
			return -1
		}
		return r
	}, s)
}

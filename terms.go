package textmetrics

import (
	"sort"

	"github.com/kljensen/snowball"
	"github.com/kljensen/snowball/english"
)

// A Term is one stem-grouped entry in a frequency table.
type Term struct {
	Stem  string `json:"stem" yaml:"stem"`   // The snowball stem shared by the group.
	Word  string `json:"word" yaml:"word"`   // The most frequent surface form.
	Count int    `json:"count" yaml:"count"` // Occurrences across all forms.
}

// TopTerms builds a frequency table of the content terms in text, grouping
// inflections under their snowball stem. Results are ordered by count,
// then stem, and truncated to n entries.
func TopTerms(text string, n int) []Term {
	if n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	surface := make(map[string]map[string]int)
	for _, tok := range defaultTokenizer.Tokenize(text) {
		if len(tok) < 2 || isNumeric(tok) || english.IsStopWord(tok) {
			continue
		}
		stem, err := snowball.Stem(tok, "english", false)
		if err != nil || stem == "" {
			stem = tok
		}
		counts[stem]++
		if surface[stem] == nil {
			surface[stem] = make(map[string]int)
		}
		surface[stem][tok]++
	}

	terms := make([]Term, 0, len(counts))
	for stem, count := range counts {
		terms = append(terms, Term{Stem: stem, Word: topSurface(surface[stem]), Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Stem < terms[j].Stem
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// topSurface picks the most frequent surface form, breaking ties
// alphabetically so results are deterministic.
func topSurface(forms map[string]int) string {
	best, bestCount := "", -1
	for form, count := range forms {
		if count > bestCount || (count == bestCount && form < best) {
			best, bestCount = form, count
		}
	}
	return best
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

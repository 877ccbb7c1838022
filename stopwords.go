package textmetrics

// filterStopWords partitions tokens into content words and a stop-word
// tally. Matching is exact set membership on the already-normalized token;
// no stemming or fuzzy matching is applied.
func filterStopWords(tokens []string, stop Lexicon) (words []string, removed int) {
	words = make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if stop.Contains(tok) {
			removed++
			continue
		}
		words = append(words, tok)
	}
	return words, removed
}

package textmetrics

// epsilon keeps the sentiment ratios defined when a tally or word count
// is zero.
const epsilon = 1e-6

// countSentiment tallies the content words found in the positive and
// negative lexicons. A word present in both lexicons counts toward both.
func countSentiment(words []string, positive, negative Lexicon) (pos, neg int) {
	for _, w := range words {
		if positive.Contains(w) {
			pos++
		}
		if negative.Contains(w) {
			neg++
		}
	}
	return pos, neg
}

// polarityScore maps the sentiment tallies onto [-1, 1].
func polarityScore(pos, neg int) float64 {
	return (float64(pos) - float64(neg)) / (float64(pos) + float64(neg) + epsilon)
}

// subjectivityScore reports the fraction of content words carrying
// sentiment. Words in both lexicons tally twice, so the raw ratio can
// exceed 1; the aggregator clamps the recorded value to [0, 1].
func subjectivityScore(pos, neg, wordCount int) float64 {
	return (float64(pos) + float64(neg)) / (float64(wordCount) + epsilon)
}

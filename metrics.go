package textmetrics

// textCounts carries the raw tallies the aggregator turns into a record.
type textCounts struct {
	sentences    int
	words        int
	stopWords    int
	complexWords int
	syllables    int
	chars        int
	pronouns     int
	positive     int
	negative     int
}

// assembleMetrics builds the record from raw tallies. Every zero-input
// ratio default lives here rather than in the individual scorers, so an
// empty document always produces the zero record.
func assembleMetrics(c textCounts) Metrics {
	asl := safeRatio(c.words, maxInt(c.sentences, 1))
	pcw := safeRatio(c.complexWords, c.words) * 100
	// A word in both lexicons tallies twice, so the raw ratio can pass 1.
	subjectivity := subjectivityScore(c.positive, c.negative, c.words)
	if subjectivity > 1 {
		subjectivity = 1
	}
	return Metrics{
		Polarity:          polarityScore(c.positive, c.negative),
		Subjectivity:      subjectivity,
		FogIndex:          0.4 * (asl + pcw),
		AvgSentenceLength: asl,
		PctComplexWords:   pcw,
		ComplexWordCount:  c.complexWords,
		WordCount:         c.words,
		AvgWordLength:     safeRatio(c.chars, c.words),
		SyllablesPerWord:  safeRatio(c.syllables, c.words),
		PersonalPronouns:  c.pronouns,
		StopWordCount:     c.stopWords,
		SentenceCount:     c.sentences,
		PositiveWords:     c.positive,
		NegativeWords:     c.negative,
	}
}

// scoreMetrics runs the scorers over an already-segmented, tokenized, and
// filtered document.
func scoreMetrics(sentences []Sentence, tokens, words []string, stopCount int, lex Lexicons) Metrics {
	complexWords, syllables, chars := countReadability(words)
	pos, neg := countSentiment(words, lex.Positive, lex.Negative)
	return assembleMetrics(textCounts{
		sentences:    len(sentences),
		words:        len(words),
		stopWords:    stopCount,
		complexWords: complexWords,
		syllables:    syllables,
		chars:        chars,
		pronouns:     countPronouns(tokens),
		positive:     pos,
		negative:     neg,
	})
}

// safeRatio divides as float64, returning 0 for an empty denominator.
func safeRatio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

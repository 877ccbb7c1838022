package textmetrics

import "time"

// A Metrics record holds every score computed for one block of text.
// Records are plain values: copy, compare, and marshal them freely.
// WordCount counts the tokens that survive stop-word removal, and every
// per-word ratio is computed over those survivors.
type Metrics struct {
	Polarity          float64 `json:"polarity" yaml:"polarity"`                       // -1.0 (negative) to 1.0 (positive)
	Subjectivity      float64 `json:"subjectivity" yaml:"subjectivity"`               // 0.0 (objective) to 1.0 (subjective)
	FogIndex          float64 `json:"fog_index" yaml:"fog_index"`                     // Gunning fog readability index
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"` // words per sentence
	PctComplexWords   float64 `json:"pct_complex_words" yaml:"pct_complex_words"`     // complex words as a percentage, 0-100
	ComplexWordCount  int     `json:"complex_word_count" yaml:"complex_word_count"`   // words with three or more syllables
	WordCount         int     `json:"word_count" yaml:"word_count"`                   // tokens remaining after stop-word removal
	AvgWordLength     float64 `json:"avg_word_length" yaml:"avg_word_length"`         // characters per word
	SyllablesPerWord  float64 `json:"syllables_per_word" yaml:"syllables_per_word"`   // estimated syllables per word
	PersonalPronouns  int     `json:"personal_pronouns" yaml:"personal_pronouns"`     // counted before stop-word removal
	StopWordCount     int     `json:"stop_word_count" yaml:"stop_word_count"`         // tokens removed by the stop list
	SentenceCount     int     `json:"sentence_count" yaml:"sentence_count"`           // segmented sentences
	PositiveWords     int     `json:"positive_words" yaml:"positive_words"`           // content words found in the positive lexicon
	NegativeWords     int     `json:"negative_words" yaml:"negative_words"`           // content words found in the negative lexicon
}

// A Sentence represents a segmented portion of text.
type Sentence struct {
	Text  string `json:"text"`  // The trimmed sentence text.
	Start int    `json:"start"` // Start position in original text
	End   int    `json:"end"`   // End position in original text
}

// String returns the text content of the sentence.
func (s Sentence) String() string {
	return s.Text
}

// DocumentMetadata contains metadata about processed documents.
type DocumentMetadata struct {
	ProcessedAt      time.Time
	ProcessingTimeMs int64
	TokenCount       int
	SentenceCount    int
}

package textmetrics

import (
	"math"
	"testing"
)

func TestPolarityScore(t *testing.T) {
	tests := []struct {
		pos      int
		neg      int
		expected float64
		delta    float64
		desc     string
	}{
		{3, 0, 1.0, 0.001, "All positive"},
		{0, 3, -1.0, 0.001, "All negative"},
		{2, 2, 0.0, 0.001, "Balanced"},
		{0, 0, 0.0, 0.001, "No sentiment words"},
		{5, 1, 0.667, 0.001, "Mostly positive"},
		{1, 4, -0.6, 0.001, "Mostly negative"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := polarityScore(tt.pos, tt.neg)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("pos=%d neg=%d\nExpected polarity: %.3f ± %.3f\nGot: %.3f",
					tt.pos, tt.neg, tt.expected, tt.delta, got)
			}
		})
	}
}

func TestPolarityScoreBounds(t *testing.T) {
	for pos := 0; pos <= 20; pos++ {
		for neg := 0; neg <= 20; neg++ {
			got := polarityScore(pos, neg)
			if got < -1 || got > 1 {
				t.Fatalf("polarityScore(%d, %d) = %f, outside [-1, 1]", pos, neg, got)
			}
		}
	}
}

func TestSubjectivityScore(t *testing.T) {
	tests := []struct {
		pos       int
		neg       int
		wordCount int
		expected  float64
		delta     float64
		desc      string
	}{
		{3, 0, 4, 0.75, 0.001, "Mostly subjective"},
		{1, 1, 2, 1.0, 0.001, "Every word carries sentiment"},
		{0, 2, 10, 0.2, 0.001, "Mostly objective"},
		{0, 0, 10, 0.0, 0.001, "No sentiment words"},
		{0, 0, 0, 0.0, 0.001, "Empty document"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := subjectivityScore(tt.pos, tt.neg, tt.wordCount)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("pos=%d neg=%d words=%d\nExpected subjectivity: %.3f ± %.3f\nGot: %.3f",
					tt.pos, tt.neg, tt.wordCount, tt.expected, tt.delta, got)
			}
			if got < 0 || got > 1 {
				t.Errorf("subjectivity %f outside [0, 1]", got)
			}
		})
	}
}

func TestCountSentiment(t *testing.T) {
	positive := NewLexicon("good", "fine")
	negative := NewLexicon("bad", "fine")

	tests := []struct {
		words       []string
		expectedPos int
		expectedNeg int
		desc        string
	}{
		{[]string{"good", "bad"}, 1, 1, "One of each"},
		{[]string{"good", "good", "good"}, 3, 0, "Duplicates counted"},
		{[]string{"fine"}, 1, 1, "Word in both lexicons counts toward both"},
		{[]string{"neutral", "words", "only"}, 0, 0, "No matches"},
		{nil, 0, 0, "No words"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			pos, neg := countSentiment(tt.words, positive, negative)
			if pos != tt.expectedPos || neg != tt.expectedNeg {
				t.Errorf("words=%v\nExpected pos=%d neg=%d\nGot pos=%d neg=%d",
					tt.words, tt.expectedPos, tt.expectedNeg, pos, neg)
			}
		})
	}
}

func TestCountSentimentNilLexicons(t *testing.T) {
	pos, neg := countSentiment([]string{"good", "bad"}, nil, nil)
	if pos != 0 || neg != 0 {
		t.Errorf("nil lexicons should match nothing, got pos=%d neg=%d", pos, neg)
	}
}

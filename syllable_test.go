package textmetrics

import "testing"

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word     string
		expected int
		desc     string
	}{
		{"", 0, "Empty string"},
		{"a", 1, "Single vowel"},
		{"cat", 1, "Single run"},
		{"hello", 2, "Two runs"},
		{"made", 1, "Silent final e"},
		{"apple", 2, "The -le ending keeps its e"},
		{"whale", 2, "The -le ending keeps its e after a vowel run"},
		{"queue", 1, "One long vowel run"},
		{"rhythm", 1, "y as the only vowel"},
		{"syzygy", 3, "Multiple y runs"},
		{"strength", 1, "Single vowel amid consonants"},
		{"see", 1, "Final e preceded by a vowel"},
		{"beautiful", 3, "Three runs"},
		{"sophisticated", 5, "Five runs"},
		{"xyz", 1, "Single y run"},
		{"pfft", 1, "Floor of one with no vowels"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.expected {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.expected)
			}
		})
	}
}

func TestIsComplexWord(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
		desc     string
	}{
		{"cat", false, "One syllable"},
		{"hello", false, "Two syllables"},
		{"beautiful", true, "Three syllables"},
		{"wonderful", true, "Three syllables, no suffix"},
		{"sophisticated", true, "Complex even after -ed removal"},
		{"created", false, "Simple once -ed is removed"},
		{"amazing", false, "Simple once -ing is removed"},
		{"running", false, "Simple once -ing is removed"},
		{"interesting", true, "Complex even after -ing removal"},
		{"classes", false, "Simple once -es is removed"},
		{"businesses", true, "Complex even after -es removal"},
		{"", false, "Empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := IsComplexWord(tt.word); got != tt.expected {
				t.Errorf("IsComplexWord(%q) = %v, want %v", tt.word, got, tt.expected)
			}
		})
	}
}

func TestSyllableFloor(t *testing.T) {
	words := []string{"the", "of", "by", "ox", "hmm", "shh"}
	for _, w := range words {
		if got := CountSyllables(w); got < 1 {
			t.Errorf("CountSyllables(%q) = %d, want at least 1", w, got)
		}
	}
}

func BenchmarkCountSyllables(b *testing.B) {
	words := []string{"cat", "hello", "beautiful", "sophisticated", "extraordinary", "made"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CountSyllables(words[i%len(words)])
	}
}

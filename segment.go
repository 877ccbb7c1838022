package textmetrics

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter splits raw text into sentences.
type Segmenter interface {
	Segment(string) []Sentence
}

// terminatorSegmenter ends a sentence at each run of '.', '!', or '?' and
// keeps the tail after the last terminator. Abbreviations are not
// special-cased.
type terminatorSegmenter struct{}

// NewTerminatorSegmenter creates the default segmenter. Fragments that trim
// to nothing are dropped, so empty input yields no sentences.
func NewTerminatorSegmenter() Segmenter {
	return terminatorSegmenter{}
}

var defaultSegmenter Segmenter = terminatorSegmenter{}

// Segment splits text into sentences on terminator runs.
func (terminatorSegmenter) Segment(text string) []Sentence {
	var out []Sentence
	start := 0
	i := 0
	for i < len(text) {
		if !isTerminator(text[i]) {
			i++
			continue
		}
		out = appendSentence(out, text, start, i)
		for i < len(text) && isTerminator(text[i]) {
			i++
		}
		start = i
	}
	return appendSentence(out, text, start, len(text))
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// appendSentence trims the fragment text[start:end] and appends it when
// anything remains.
func appendSentence(dst []Sentence, text string, start, end int) []Sentence {
	frag := text[start:end]
	trimmed := strings.TrimSpace(frag)
	if trimmed == "" {
		return dst
	}
	lead := len(frag) - len(strings.TrimLeftFunc(frag, unicode.IsSpace))
	s := start + lead
	return append(dst, Sentence{Text: trimmed, Start: s, End: s + len(trimmed)})
}

// PunktSegmenter segments with the trained punkt model for English. It
// handles the abbreviations and initials that the terminator segmenter
// splits naively. Metrics stay on the default segmenter unless a document
// opts in with UsingSegmenter.
type PunktSegmenter struct {
	tok *sentences.DefaultSentenceTokenizer
}

var (
	punktOnce sync.Once
	punktTok  *sentences.DefaultSentenceTokenizer
	punktErr  error
)

// NewPunktSegmenter loads the English punkt model. The model is built once
// and shared across instances.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	punktOnce.Do(func() {
		punktTok, punktErr = english.NewSentenceTokenizer(nil)
	})
	if punktErr != nil {
		return nil, fmt.Errorf("loading punkt model: %w", punktErr)
	}
	return &PunktSegmenter{tok: punktTok}, nil
}

// Segment splits text with the punkt model.
func (p *PunktSegmenter) Segment(text string) []Sentence {
	raw := p.tok.Tokenize(text)
	out := make([]Sentence, 0, len(raw))
	cursor := 0
	for _, s := range raw {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed == "" {
			continue
		}
		start := cursor
		if idx := strings.Index(text[cursor:], trimmed); idx >= 0 {
			start = cursor + idx
		}
		out = append(out, Sentence{Text: trimmed, Start: start, End: start + len(trimmed)})
		cursor = start + len(trimmed)
	}
	return out
}

package textmetrics

import "strings"

// A Tokenizer splits raw text into normalized word tokens.
type Tokenizer interface {
	Tokenize(string) []string
}

// wordTokenizer lowercases, strips punctuation, and splits on whitespace.
type wordTokenizer struct {
	sanitizer *strings.Replacer
}

type TokenizerOptFunc func(*wordTokenizer)

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *wordTokenizer) {
		tokenizer.sanitizer = x
	}
}

// NewWordTokenizer creates the default tokenizer. Token order follows the
// source text and duplicate words are kept.
func NewWordTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &wordTokenizer{sanitizer: sanitizer}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

var defaultTokenizer = NewWordTokenizer()

// Tokenize returns the normalized word tokens of text.
func (t *wordTokenizer) Tokenize(text string) []string {
	return strings.Fields(stripPunctuation(strings.ToLower(t.sanitizer.Replace(text))))
}

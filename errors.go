package textmetrics

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText reports that a text source produced no usable text.
	ErrEmptyText = errors.New("no usable text")

	// ErrNotText reports that a source served content that is not text.
	ErrNotText = errors.New("content is not text")
)

// An InputError reports an unusable text source: an empty submission, an
// unreachable URL, or a response that carried no prose. Callers should
// surface these to the user rather than the operator.
type InputError struct {
	Source string // "stdin", a file path, or a URL
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// A LexiconError reports a word list that could not be read or decoded.
// Lexicon paths are operator configuration, so callers should treat this
// as fatal.
type LexiconError struct {
	Path string
	Err  error
}

func (e *LexiconError) Error() string {
	return fmt.Sprintf("lexicon %s: %v", e.Path, e.Err)
}

func (e *LexiconError) Unwrap() error {
	return e.Err
}

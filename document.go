package textmetrics

import (
	"context"
	"time"
)

// A DocOpt represents a setting that changes the document creation process.
//
// For example, it might swap in the punkt sentence segmenter:
//
//	doc, err := textmetrics.NewDocument("...", textmetrics.UsingSegmenter(seg))
type DocOpt func(doc *Document, opts *DocOpts)

// DocOpts controls the Document creation process:
type DocOpts struct {
	Lexicons         Lexicons               // Positive, negative, and stop-word sets
	Segmenter        Segmenter              // Sentence segmenter to use
	Tokenizer        Tokenizer              // Tokenizer to use
	Context          context.Context        // Context for cancellation and timeouts
	Timeout          time.Duration          // Processing timeout
	ProgressCallback func(progress float64) // Progress reporting callback
}

// UsingLexicons specifies the word sets to score against. The default is
// the embedded English sets.
func UsingLexicons(lex Lexicons) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Lexicons = lex
	}
}

// UsingSegmenter specifies the sentence segmenter to use.
func UsingSegmenter(seg Segmenter) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Segmenter = seg
	}
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(tok Tokenizer) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Tokenizer = tok
	}
}

// WithContext sets the context for document processing.
func WithContext(ctx context.Context) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Context = ctx
	}
}

// WithTimeout sets a timeout for document processing.
func WithTimeout(timeout time.Duration) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.Timeout = timeout
	}
}

// WithProgressCallback sets a progress reporting callback.
func WithProgressCallback(callback func(float64)) DocOpt {
	return func(doc *Document, opts *DocOpts) {
		opts.ProgressCallback = callback
	}
}

// A Document represents an analyzed body of text.
type Document struct {
	Text     string
	Metadata DocumentMetadata

	sentences []Sentence
	tokens    []string
	words     []string
	metrics   Metrics
}

// Tokens returns `doc`'s normalized tokens, before stop-word removal.
func (doc *Document) Tokens() []string {
	return doc.tokens
}

// Words returns the content words that survived stop-word removal.
func (doc *Document) Words() []string {
	return doc.words
}

// Sentences returns `doc`'s sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// Metrics returns the computed record.
func (doc *Document) Metrics() Metrics {
	return doc.metrics
}

var defaultOpts = DocOpts{
	Segmenter: defaultSegmenter,
	Tokenizer: defaultTokenizer,
	Context:   context.Background(),
	Timeout:   30 * time.Second,
}

// NewDocument creates a Document according to the user-specified options.
//
// For example,
//
//	doc, err := textmetrics.NewDocument("...")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	startTime := time.Now()

	doc := Document{
		Text: text,
		Metadata: DocumentMetadata{
			ProcessedAt: startTime,
		},
	}

	base := defaultOpts
	for _, applyOpt := range opts {
		applyOpt(&doc, &base)
	}
	if base.Lexicons.isZero() {
		base.Lexicons = DefaultLexicons()
	}

	// Set up context with timeout
	ctx := base.Context
	if base.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.Timeout)
		defer cancel()
	}

	// Progress reporting helper
	reportProgress := func(p float64) {
		if base.ProgressCallback != nil {
			base.ProgressCallback(p)
		}
	}

	// Segmentation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	doc.sentences = base.Segmenter.Segment(text)
	doc.Metadata.SentenceCount = len(doc.sentences)
	reportProgress(0.25)

	// Tokenization
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	doc.tokens = base.Tokenizer.Tokenize(text)
	doc.Metadata.TokenCount = len(doc.tokens)
	reportProgress(0.5)

	// Stop-word filtering
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	var stopCount int
	doc.words, stopCount = filterStopWords(doc.tokens, base.Lexicons.StopWords)
	reportProgress(0.75)

	// Scoring
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	doc.metrics = scoreMetrics(doc.sentences, doc.tokens, doc.words, stopCount, base.Lexicons)
	reportProgress(1.0)

	// Finalize metadata
	doc.Metadata.ProcessingTimeMs = time.Since(startTime).Milliseconds()

	return &doc, nil
}

// Analyze computes the metrics record for text in one call. It is pure and
// safe for concurrent use; empty input produces the zero record.
func Analyze(text string, lex Lexicons) Metrics {
	sentences := defaultSegmenter.Segment(text)
	tokens := defaultTokenizer.Tokenize(text)
	words, stopCount := filterStopWords(tokens, lex.StopWords)
	return scoreMetrics(sentences, tokens, words, stopCount, lex)
}

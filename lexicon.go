package textmetrics

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// A Lexicon is an immutable set of lowercase words.
type Lexicon map[string]struct{}

// NewLexicon builds a lexicon from words, lowercasing and trimming each.
// Empty entries are skipped.
func NewLexicon(words ...string) Lexicon {
	lex := make(Lexicon, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			lex[w] = struct{}{}
		}
	}
	return lex
}

// Contains reports membership. A nil lexicon contains nothing.
func (l Lexicon) Contains(word string) bool {
	_, ok := l[word]
	return ok
}

// Len returns the number of words in the lexicon.
func (l Lexicon) Len() int {
	return len(l)
}

// Lexicons bundles the three word sets one analysis needs.
type Lexicons struct {
	Positive  Lexicon
	Negative  Lexicon
	StopWords Lexicon
}

func (l Lexicons) isZero() bool {
	return l.Positive == nil && l.Negative == nil && l.StopWords == nil
}

// DefaultLexicons returns the embedded word sets used when no files are
// configured. Each call returns fresh copies.
func DefaultLexicons() Lexicons {
	return Lexicons{
		Positive:  NewLexicon(defaultPositive...),
		Negative:  NewLexicon(defaultNegative...),
		StopWords: DefaultStopWords(),
	}
}

// DefaultStopWords returns the embedded English stop list. Entries are
// stored in post-normalization form, so contracted forms like "don't"
// never appear.
func DefaultStopWords() Lexicon {
	return NewLexicon(defaultStopWords...)
}

// A LexiconLoader reads word-list files and caches them for the life of
// the process. Files hold one word per line; blank lines are skipped.
// Decoding tries strict UTF-8 first and falls back to Windows-1252.
type LexiconLoader struct {
	mutex sync.RWMutex
	cache map[string]Lexicon
}

// NewLexiconLoader creates an empty loader.
func NewLexiconLoader() *LexiconLoader {
	return &LexiconLoader{cache: make(map[string]Lexicon)}
}

// Load reads the word list at path. Repeated loads of the same path return
// the cached set.
func (ll *LexiconLoader) Load(path string) (Lexicon, error) {
	ll.mutex.RLock()
	lex, ok := ll.cache[path]
	ll.mutex.RUnlock()
	if ok {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LexiconError{Path: path, Err: err}
	}
	text, err := decodeLexicon(data)
	if err != nil {
		return nil, &LexiconError{Path: path, Err: err}
	}
	lex = NewLexicon(strings.Split(text, "\n")...)

	ll.mutex.Lock()
	ll.cache[path] = lex
	ll.mutex.Unlock()
	return lex, nil
}

// LoadSet loads the word lists for an analysis. Empty paths keep the
// embedded defaults.
func (ll *LexiconLoader) LoadSet(positive, negative, stop string) (Lexicons, error) {
	lex := DefaultLexicons()
	var err error
	if positive != "" {
		if lex.Positive, err = ll.Load(positive); err != nil {
			return Lexicons{}, err
		}
	}
	if negative != "" {
		if lex.Negative, err = ll.Load(negative); err != nil {
			return Lexicons{}, err
		}
	}
	if stop != "" {
		if lex.StopWords, err = ll.Load(stop); err != nil {
			return Lexicons{}, err
		}
	}
	return lex, nil
}

var defaultLoader = NewLexiconLoader()

// LoadLexicon reads one word list through a process-wide cache.
func LoadLexicon(path string) (Lexicon, error) {
	return defaultLoader.Load(path)
}

// LoadLexicons reads up to three word lists through the process-wide
// cache. Empty paths keep the embedded defaults.
func LoadLexicons(positive, negative, stop string) (Lexicons, error) {
	return defaultLoader.LoadSet(positive, negative, stop)
}

// decodeLexicon interprets raw word-list bytes. Valid UTF-8 is used as is;
// anything else is decoded as Windows-1252, which accepts every byte value.
func decodeLexicon(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(decoded), nil
}

// defaultPositive and defaultNegative are compact general-purpose sentiment
// lists. Operators with domain-specific vocabularies should load their own
// files instead.
var defaultPositive = []string{
	"amazing", "awesome", "beautiful", "best", "better", "brilliant",
	"charming", "cheerful", "delight", "delightful", "elegant", "enjoy",
	"enjoyable", "enjoyed", "excellent", "excited", "exciting", "fantastic",
	"favorite", "fine", "flawless", "fresh", "friendly", "fun", "generous",
	"gentle", "glad", "good", "graceful", "grateful", "great", "happy",
	"impress", "impressive", "innovative", "inspiring", "joy", "love",
	"loved", "loves", "outstanding", "perfect", "pleasant", "pleased",
	"positive", "powerful", "recommend", "refreshing", "reliable",
	"remarkable", "robust", "satisfied", "smooth", "solid", "splendid",
	"strong", "stunning", "success", "successful", "superb", "terrific",
	"thrilled", "trusted", "valuable", "vibrant", "win", "winner", "wise",
	"wonderful", "worthy",
}

var defaultNegative = []string{
	"angry", "annoy", "annoyed", "annoying", "awful", "bad", "broken",
	"careless", "cheap", "clumsy", "confusing", "costly", "crash", "cruel",
	"damaged", "dead", "defective", "dirty", "disappointed",
	"disappointing", "disaster", "dreadful", "dull", "error", "fail",
	"failed", "failure", "faulty", "fear", "flawed", "fragile",
	"frustrated", "frustrating", "grim", "harsh", "hate", "hated", "hates",
	"hopeless", "horrible", "hurt", "inferior", "lack", "lazy", "lost",
	"mediocre", "mess", "miserable", "mistake", "negative", "noisy",
	"painful", "pathetic", "poor", "problem", "regret", "reject", "rough",
	"sad", "slow", "sloppy", "stale", "stupid", "terrible", "tired",
	"ugly", "unhappy", "unreliable", "unstable", "useless", "weak",
	"worse", "worst", "wrong",
}

// defaultStopWords carries plain function words only. Contracted forms are
// left out: once apostrophes are stripped they collide with content words
// such as "ill" and "well".
var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "cannot",
	"could", "did", "do", "does", "doing", "down", "during", "each", "few",
	"for", "from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
	"in", "into", "is", "it", "its", "itself", "just", "me", "more",
	"most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "ourselves", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with",
	"would", "you", "your", "yours", "yourself", "yourselves",
}

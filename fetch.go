package textmetrics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultUserAgent    = "Mozilla/5.0"
	defaultFetchTimeout = 10 * time.Second
	defaultMaxBody      = 8 << 20
)

// A Fetcher downloads a page and reduces it to analyzable prose.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

type FetcherOpt func(*Fetcher)

// WithHTTPClient replaces the default client and its timeout.
func WithHTTPClient(c *http.Client) FetcherOpt {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) FetcherOpt {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBody caps how many response bytes are read.
func WithMaxBody(n int64) FetcherOpt {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a Fetcher with a 10 second timeout and an 8 MiB body
// cap.
func NewFetcher(opts ...FetcherOpt) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: defaultFetchTimeout},
		userAgent: defaultUserAgent,
		maxBody:   defaultMaxBody,
	}
	for _, applyOpt := range opts {
		applyOpt(f)
	}
	return f
}

// Fetch downloads rawurl and returns its visible text, NFC-normalized.
// HTML responses are stripped to prose; plain text passes through with
// whitespace collapsed. Failures, non-text content types, and empty pages
// all produce an *InputError.
func (f *Fetcher) Fetch(ctx context.Context, rawurl string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return "", &InputError{Source: rawurl, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &InputError{Source: rawurl, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &InputError{Source: rawurl, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	contentType := resp.Header.Get("Content-Type")
	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBody), contentType)
	if err != nil {
		return "", &InputError{Source: rawurl, Err: err}
	}

	var text string
	switch {
	case strings.Contains(contentType, "text/html"), contentType == "":
		_, text, err = ExtractText(body)
		if err != nil {
			return "", &InputError{Source: rawurl, Err: err}
		}
	case strings.Contains(contentType, "text/plain"):
		data, err := io.ReadAll(body)
		if err != nil {
			return "", &InputError{Source: rawurl, Err: err}
		}
		text = collapseWhitespace(string(data))
	default:
		return "", &InputError{Source: rawurl, Err: fmt.Errorf("%w: %s", ErrNotText, contentType)}
	}

	text = norm.NFC.String(text)
	if text == "" {
		return "", &InputError{Source: rawurl, Err: ErrEmptyText}
	}
	return text, nil
}

// ExtractText parses HTML and returns the document title and the visible
// text with whitespace collapsed. Script, style, and similar non-prose
// elements contribute nothing.
func ExtractText(r io.Reader) (title, text string, err error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", "", fmt.Errorf("parsing html: %w", err)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "svg":
				return
			case "title":
				if title == "" && n.FirstChild != nil {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title, collapseWhitespace(sb.String()), nil
}

// collapseWhitespace reduces every whitespace run to a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

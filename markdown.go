package textmetrics

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// markdown is the shared converter. The frontmatter extension consumes any
// YAML or TOML header so metadata never leaks into the prose.
var markdown = goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))

// MarkdownText extracts the prose from a markdown document. Code blocks,
// inline code, and raw HTML are excluded; block boundaries become newlines
// so sentence splitting still works on the result.
func MarkdownText(source []byte) (string, error) {
	root := markdown.Parser().Parse(gmtext.NewReader(source))

	var buf bytes.Buffer
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n.Kind() {
		case ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindHTMLBlock,
			ast.KindRawHTML, ast.KindCodeSpan:
			if entering {
				return ast.WalkSkipChildren, nil
			}
			return ast.WalkContinue, nil
		}
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte(' ')
				}
			}
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			buf.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", fmt.Errorf("walking markdown: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

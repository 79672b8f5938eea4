package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings become
// their own paragraph so the text keeps its visible structure without any
// markdown syntax.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	title := titleFromFilename(filename)
	var blocks []string

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			heading := string(node.Text(src))
			if heading == "" {
				continue
			}
			// The first h1 names the document.
			if node.Level == 1 && title == titleFromFilename(filename) {
				title = heading
			}
			blocks = append(blocks, heading)
		default:
			if t := blockText(n, src); t != "" {
				blocks = append(blocks, t)
			}
		}
	}

	return &Document{
		Title: title,
		Text:  strings.Join(blocks, "\n\n"),
	}, nil
}

// blockText gets the plain text content of a goldmark AST block node.
// Inline children carry the text for most blocks; raw lines are only used
// for leaf blocks like code fences that have no inline children.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.FirstChild() == nil && n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			if inner := blockText(c, src); inner != "" {
				if buf.Len() > 0 && c.Type() == ast.TypeBlock {
					buf.WriteByte('\n')
				}
				buf.WriteString(inner)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

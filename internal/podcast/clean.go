package podcast

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	// Stage directions and production cues: [laughs], (pause), [SFX: ...].
	// Parentheticals go too; a TTS voice reading "(laughs)" aloud is worse
	// than losing the occasional real aside.
	cueRe        = regexp.MustCompile(`\[[^\]\n]*\]|\([^)\n]*\)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanForSpeech strips markdown structure and stage directions from a
// speaker turn, leaving plain sentences a voice can read. Formatting is
// removed by parsing the markdown and keeping only text nodes, so bold
// markers, headings, links and code fences all disappear.
func CleanForSpeech(s string) string {
	s = cueRe.ReplaceAllString(s, " ")
	src := []byte(s)

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.Paragraph, *ast.Heading:
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(buf.String(), " "))
}

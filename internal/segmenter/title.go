package segmenter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	titleMinSentence = 10
	titleMaxSentence = 80
	titleTruncateAt  = 50
)

var sentenceEndRe = regexp.MustCompile(`[.!?]`)

// deriveTitle produces a short display title for a segment: the first
// sentence when it lands in a readable range, otherwise a hard truncation
// with an ellipsis.
func deriveTitle(content string) string {
	s := strings.Join(strings.Fields(content), " ")
	if s == "" {
		return ""
	}
	if loc := sentenceEndRe.FindStringIndex(s); loc != nil {
		first := strings.TrimSpace(s[:loc[1]])
		if n := utf8.RuneCountInString(first); n >= titleMinSentence && n <= titleMaxSentence {
			return first
		}
	}
	return clampTitle(s)
}

// clampTitle truncates long titles to titleTruncateAt runes.
func clampTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleTruncateAt {
		return s
	}
	return string(runes[:titleTruncateAt]) + "..."
}

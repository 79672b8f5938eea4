package segmenter

import "strings"

type span struct {
	start, end int
}

// paragraphSpans returns byte ranges of blank-line-delimited paragraphs,
// first through last non-blank line.
func paragraphSpans(text string) []span {
	var spans []span
	start := -1
	end := 0
	pos := 0

	for pos <= len(text) {
		lineEnd := len(text)
		if nl := strings.IndexByte(text[pos:], '\n'); nl >= 0 {
			lineEnd = pos + nl
		}
		line := text[pos:lineEnd]
		if strings.TrimSpace(line) == "" {
			if start >= 0 {
				spans = append(spans, span{start, end})
				start = -1
			}
		} else {
			if start < 0 {
				start = pos
			}
			end = lineEnd
		}
		if lineEnd == len(text) {
			break
		}
		pos = lineEnd + 1
	}
	if start >= 0 {
		spans = append(spans, span{start, end})
	}
	return spans
}

// lineSpans returns byte ranges of individual lines, newline excluded.
// Blank lines are included so callers see the raw line structure.
func lineSpans(text string) []span {
	var spans []span
	pos := 0
	for pos <= len(text) {
		lineEnd := len(text)
		if nl := strings.IndexByte(text[pos:], '\n'); nl >= 0 {
			lineEnd = pos + nl
		}
		spans = append(spans, span{pos, lineEnd})
		if lineEnd == len(text) {
			break
		}
		pos = lineEnd + 1
	}
	return spans
}

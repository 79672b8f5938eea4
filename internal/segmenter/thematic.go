package segmenter

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// A segment must accumulate this much content before a transition word or
// separator is allowed to close it; below that, boundaries are ignored to
// avoid over-fragmenting.
const minThematicChars = 500

var (
	transitionRe = regexp.MustCompile(`^(?i:however|therefore|meanwhile|furthermore|moreover|nevertheless|conversely|in contrast|on the other hand|in conclusion|finally)[,\s]`)
	separatorRe  = regexp.MustCompile(`^(?:\*{3,}|-{3,}|_{3,}|\* \* \*)$`)
)

// byThematicBreaks walks paragraphs and closes a segment at transition-word
// openers or explicit separators (***, ---). Separator paragraphs belong to
// no segment.
func byThematicBreaks(text string) []Segment {
	var segs []Segment
	curStart := -1
	curEnd := 0

	closeSeg := func() {
		if curStart < 0 {
			return
		}
		content := text[curStart:curEnd]
		segs = append(segs, Segment{
			ID:      uuid.NewString(),
			Content: content,
			Type:    TypeThematicBreak,
			Start:   curStart,
			End:     curEnd,
			Title:   deriveTitle(content),
		})
		curStart = -1
	}

	for _, sp := range paragraphSpans(text) {
		para := text[sp.start:sp.end]
		if separatorRe.MatchString(strings.TrimSpace(para)) {
			if curStart >= 0 && curEnd-curStart > minThematicChars {
				closeSeg()
			}
			continue
		}
		if curStart >= 0 && curEnd-curStart > minThematicChars && transitionRe.MatchString(para) {
			closeSeg()
		}
		if curStart < 0 {
			curStart = sp.start
		}
		curEnd = sp.end
	}
	closeSeg()
	return segs
}

package segmenter

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// The dialogue strategy only activates when at least this many lines look
// like dialogue; otherwise it yields nothing and auto mode moves on.
const minDialogueLines = 3

var (
	speakerLineRe = regexp.MustCompile(`^[ \t]*([A-Z][A-Za-z]{0,19}(?:[ \t][A-Z][A-Za-z]{0,19})?):[ \t]`)
	quotedLineRe  = regexp.MustCompile(`^[ \t]*["\x{201C}]`)
	attributionRe = regexp.MustCompile(`\b(?:said|replied|asked|answered|shouted|whispered)[ \t]+[A-Z][a-z]+`)
)

func looksLikeDialogue(line string) bool {
	return speakerLineRe.MatchString(line) ||
		quotedLineRe.MatchString(line) ||
		attributionRe.MatchString(line)
}

// byDialogue groups lines into speaker turns, starting a new segment
// whenever a "Name:" prefix names a different speaker than the current one.
func byDialogue(text string) []Segment {
	lines := lineSpans(text)

	matched := 0
	for _, ln := range lines {
		if looksLikeDialogue(text[ln.start:ln.end]) {
			matched++
		}
	}
	if matched < minDialogueLines {
		return nil
	}

	var segs []Segment
	curStart := -1
	curEnd := 0
	curSpeaker := ""

	closeSeg := func() {
		if curStart < 0 {
			return
		}
		content := text[curStart:curEnd]
		title := curSpeaker
		if title == "" {
			title = deriveTitle(content)
		}
		segs = append(segs, Segment{
			ID:      uuid.NewString(),
			Content: content,
			Type:    TypeSpeakerChange,
			Start:   curStart,
			End:     curEnd,
			Title:   title,
		})
		curStart = -1
	}

	for _, ln := range lines {
		line := text[ln.start:ln.end]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if m := speakerLineRe.FindStringSubmatch(line); m != nil && m[1] != curSpeaker {
			closeSeg()
			curSpeaker = m[1]
		}
		if curStart < 0 {
			curStart = ln.start
		}
		curEnd = ln.end
	}
	closeSeg()
	return segs
}

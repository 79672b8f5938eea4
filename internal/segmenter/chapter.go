package segmenter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var (
	// Explicit "Chapter 3", "PART II", "Section 1.2" style headers, with an
	// optional trailing title on the same line.
	headerRe = regexp.MustCompile(`(?mi)^[ \t]*(chapter|part|section)[ \t]+(?:\d+(?:\.\d+)*|[ivxlcdm]+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\b[^\n]*`)

	// Standalone ALL-CAPS heading lines ("THE GATHERING STORM").
	capsHeadingRe = regexp.MustCompile(`(?m)^[ \t]*[A-Z][A-Z0-9 ,:;'&.\-]{2,58}[ \t]*$`)
)

// byChapters carves the text between consecutive detected headings. Text
// before the first heading is not covered by any segment.
func byChapters(text string) []Segment {
	type mark struct {
		start, end int
		kind       Type
	}
	var marks []mark

	for _, m := range headerRe.FindAllStringSubmatchIndex(text, -1) {
		kind := TypeChapter
		if strings.EqualFold(text[m[2]:m[3]], "section") {
			kind = TypeSection
		}
		marks = append(marks, mark{m[0], m[1], kind})
	}
	for _, m := range capsHeadingRe.FindAllStringIndex(text, -1) {
		marks = append(marks, mark{m[0], m[1], TypeSection})
	}

	sort.Slice(marks, func(i, j int) bool { return marks[i].start < marks[j].start })

	// Drop caps-heading matches that overlap an explicit header (an
	// all-caps "CHAPTER ONE" line matches both patterns).
	deduped := marks[:0]
	lastEnd := -1
	for _, mk := range marks {
		if mk.start <= lastEnd {
			continue
		}
		deduped = append(deduped, mk)
		lastEnd = mk.end
	}
	marks = deduped

	var segs []Segment
	for i, mk := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		segs = append(segs, Segment{
			ID:      uuid.NewString(),
			Content: text[mk.start:end],
			Type:    mk.kind,
			Start:   mk.start,
			End:     end,
			Title:   clampTitle(strings.TrimSpace(text[mk.start:mk.end])),
		})
	}
	return segs
}

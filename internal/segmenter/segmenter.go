// Package segmenter heuristically partitions document text into
// semantically-motivated segments for mind-map generation. Each strategy is
// a pure function from text to an ordered segment list; segments are not
// guaranteed gap-free (text before the first detected boundary is dropped).
package segmenter

import "fmt"

// Type classifies how a segment's boundary was chosen.
type Type string

const (
	TypeChapter       Type = "chapter"
	TypeSection       Type = "section"
	TypeParagraph     Type = "paragraph"
	TypeThematicBreak Type = "thematic_break"
	TypeSpeakerChange Type = "speaker_change"
)

// Segment is a semantically-delimited slice of a document. Start and End
// are byte offsets into the source text.
type Segment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Type    Type   `json:"type"`
	Start   int    `json:"start_position"`
	End     int    `json:"end_position"`
	Title   string `json:"title,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Method names a segmentation strategy.
type Method string

const (
	MethodAuto      Method = "auto"
	MethodChapter   Method = "chapter"
	MethodThematic  Method = "thematic"
	MethodDialogue  Method = "dialogue"
	MethodParagraph Method = "paragraph"
)

// Result pairs segments with the strategy that produced them.
type Result struct {
	Method   Method    `json:"method"`
	Segments []Segment `json:"segments"`
}

// autoRule is one entry in the fixed-priority selection policy: a strategy
// is accepted only when its segment count lands inside [minCount, maxCount].
// First match wins. This is a deliberate documented policy, not a scored
// ranking — a document satisfying two strategies' ranges always gets the
// earlier one.
type autoRule struct {
	method   Method
	run      func(string) []Segment
	minCount int
	maxCount int
}

var autoPolicy = []autoRule{
	{MethodChapter, byChapters, 2, 20},
	{MethodThematic, byThematicBreaks, 3, 15},
	{MethodDialogue, byDialogue, 2, 25},
}

// Split segments text with the given method. MethodAuto (or empty) walks
// the priority policy and falls back to paragraph grouping when no strategy
// produces a reasonable count.
func Split(text string, method Method) (Result, error) {
	switch method {
	case MethodChapter:
		return Result{Method: MethodChapter, Segments: byChapters(text)}, nil
	case MethodThematic:
		return Result{Method: MethodThematic, Segments: byThematicBreaks(text)}, nil
	case MethodDialogue:
		return Result{Method: MethodDialogue, Segments: byDialogue(text)}, nil
	case MethodParagraph:
		return Result{Method: MethodParagraph, Segments: byParagraphGroups(text)}, nil
	case MethodAuto, "":
		for _, rule := range autoPolicy {
			segs := rule.run(text)
			if len(segs) >= rule.minCount && len(segs) <= rule.maxCount {
				return Result{Method: rule.method, Segments: segs}, nil
			}
		}
		return Result{Method: MethodParagraph, Segments: byParagraphGroups(text)}, nil
	default:
		return Result{}, fmt.Errorf("unknown segmentation method: %q", method)
	}
}

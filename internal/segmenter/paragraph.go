package segmenter

import "github.com/google/uuid"

// Paragraph fallback batch size.
const paragraphsPerSegment = 4

// byParagraphGroups batches paragraphs into fixed-size segments. It is the
// fallback when no other strategy applies; empty text yields no segments.
func byParagraphGroups(text string) []Segment {
	spans := paragraphSpans(text)

	var segs []Segment
	for i := 0; i < len(spans); i += paragraphsPerSegment {
		end := i + paragraphsPerSegment
		if end > len(spans) {
			end = len(spans)
		}
		start := spans[i].start
		stop := spans[end-1].end
		content := text[start:stop]
		segs = append(segs, Segment{
			ID:      uuid.NewString(),
			Content: content,
			Type:    TypeParagraph,
			Start:   start,
			End:     stop,
			Title:   deriveTitle(content),
		})
	}
	return segs
}

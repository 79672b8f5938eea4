package segmenter

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MergeSeparator joins the content of merged segments.
const MergeSeparator = "\n\n---\n\n"

// ErrNoSegmentsSelected is returned when none of the requested ids match.
var ErrNoSegmentsSelected = errors.New("no segments selected for merging")

// Merge combines the segments whose ids are listed into one synthetic
// chapter segment. Content is joined in ascending start-position order
// regardless of the order ids were given in.
func Merge(segments []Segment, ids []string) (Segment, error) {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var picked []Segment
	for _, s := range segments {
		if want[s.ID] {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		return Segment{}, ErrNoSegmentsSelected
	}

	sort.Slice(picked, func(i, j int) bool { return picked[i].Start < picked[j].Start })

	parts := make([]string, 0, len(picked))
	for _, s := range picked {
		parts = append(parts, s.Content)
	}

	merged := Segment{
		ID:      uuid.NewString(),
		Content: strings.Join(parts, MergeSeparator),
		Type:    TypeChapter,
		Start:   picked[0].Start,
		End:     picked[len(picked)-1].End,
		Title:   picked[0].Title,
	}
	if merged.Title == "" {
		merged.Title = deriveTitle(merged.Content)
	}
	return merged, nil
}

package chunker

import "strings"

// Reconstruct rebuilds a document from its chunks, substituting replacement
// content for the chunk indexes present in replacements. Inter-chunk gaps
// (the original separators) are copied verbatim from the source text, so an
// empty replacement map reproduces the original byte-for-byte.
//
// Offsets are trusted as produced by ByParagraphs; documents chunked with
// ByWindow carry approximate offsets and do not round-trip.
func Reconstruct(doc Document, replacements map[int]string) string {
	if len(doc.Chunks) == 0 {
		return doc.Content
	}

	var b strings.Builder
	pos := 0
	for _, c := range doc.Chunks {
		if c.Start > pos && c.Start <= len(doc.Content) {
			b.WriteString(doc.Content[pos:c.Start])
		}
		if r, ok := replacements[c.Index]; ok {
			b.WriteString(r)
		} else {
			b.WriteString(c.Content)
		}
		if c.End > pos {
			pos = c.End
		}
	}
	if pos < len(doc.Content) {
		b.WriteString(doc.Content[pos:])
	}
	return b.String()
}

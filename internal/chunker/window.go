package chunker

import (
	"strings"

	"github.com/google/uuid"
)

// ByWindow chunks strictly every maxWords words with no paragraph
// awareness. Chunk offsets are approximate: each chunk's start is located
// by searching forward from the previous chunk's start for the chunk's
// first word, so a word that recurs earlier in the text can mis-locate a
// chunk. This matches the simpler chunker variant's behavior and is kept
// as-is; use ByParagraphs when exact offsets matter (Reconstruct assumes
// them).
func ByWindow(text string, maxWords int) Document {
	if maxWords <= 0 {
		maxWords = DefaultWindowMaxWords
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return Document{
			Content:    text,
			Chunks:     []Chunk{newChunk(0, text, 0, len(text))},
			TotalWords: 0,
			ChunkCount: 1,
		}
	}

	var chunks []Chunk
	searchFrom := 0
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		content := strings.Join(words[i:end], " ")

		start := strings.Index(text[searchFrom:], words[i])
		if start < 0 {
			start = 0
		}
		start += searchFrom

		chunks = append(chunks, Chunk{
			ID:        uuid.NewString(),
			Index:     len(chunks),
			Content:   content,
			WordCount: end - i,
			Start:     start,
			End:       start + len(content),
		})
		searchFrom = start
	}

	return Document{
		Content:    text,
		Chunks:     chunks,
		TotalWords: len(words),
		ChunkCount: len(chunks),
	}
}

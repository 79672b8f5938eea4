package chunker

import (
	"strings"

	"github.com/google/uuid"
)

// Chunk is a bounded-size contiguous slice of a document's text.
// Start and End are byte offsets into the original text; for the
// paragraph-aware chunker they are exact, so Content == original[Start:End].
type Chunk struct {
	ID        string `json:"id"`
	Index     int    `json:"chunk_index"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
	Start     int    `json:"start_position"`
	End       int    `json:"end_position"`
}

// Document is the result of chunking one text. It owns no state beyond the
// request that produced it; nothing here is persisted.
type Document struct {
	Content    string  `json:"original_content"`
	Chunks     []Chunk `json:"chunks"`
	TotalWords int     `json:"total_word_count"`
	ChunkCount int     `json:"chunk_count"`
}

// Default word caps per variant.
const (
	DefaultMaxWords       = 1000
	DefaultWindowMaxWords = 500
)

// CountWords counts whitespace-delimited words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ByParagraphs partitions text into chunks of at most maxWords words,
// cutting only at blank-line paragraph boundaries. A document at or under
// the cap comes back as a single chunk spanning the whole text, and a
// single paragraph larger than the cap is emitted whole rather than split,
// so individual chunks can exceed maxWords.
func ByParagraphs(text string, maxWords int) Document {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	total := CountWords(text)
	if total <= maxWords {
		return Document{
			Content:    text,
			Chunks:     []Chunk{newChunk(0, text, 0, len(text))},
			TotalWords: total,
			ChunkCount: 1,
		}
	}

	var chunks []Chunk
	curStart := -1
	curEnd := 0
	curWords := 0

	flush := func() {
		if curStart < 0 {
			return
		}
		chunks = append(chunks, newChunk(len(chunks), text[curStart:curEnd], curStart, curEnd))
		curStart = -1
		curWords = 0
	}

	for _, sp := range paragraphSpans(text) {
		words := CountWords(text[sp.start:sp.end])
		if curStart >= 0 && curWords+words > maxWords {
			flush()
		}
		if curStart < 0 {
			curStart = sp.start
		}
		curEnd = sp.end
		curWords += words
	}
	flush()

	return Document{
		Content:    text,
		Chunks:     chunks,
		TotalWords: total,
		ChunkCount: len(chunks),
	}
}

func newChunk(index int, content string, start, end int) Chunk {
	return Chunk{
		ID:        uuid.NewString(),
		Index:     index,
		Content:   content,
		WordCount: CountWords(content),
		Start:     start,
		End:       end,
	}
}

type span struct {
	start, end int
}

// paragraphSpans returns the byte ranges of blank-line-delimited paragraphs.
// A span covers the first through the last non-blank line of a paragraph;
// the separators between spans are whatever the original text contained.
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

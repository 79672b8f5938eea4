package chunker

import (
	"strings"
	"testing"
)

func TestByParagraphs_SmallTextFitsOneChunk(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph here."

	doc := ByParagraphs(text, 1000)

	if doc.ChunkCount != 1 {
		t.Fatalf("expected 1 chunk, got %d", doc.ChunkCount)
	}
	c := doc.Chunks[0]
	if c.Content != text {
		t.Errorf("expected chunk to hold the whole text, got %q", c.Content)
	}
	if c.Start != 0 || c.End != len(text) {
		t.Errorf("expected offsets [0,%d], got [%d,%d]", len(text), c.Start, c.End)
	}
	if c.WordCount != 6 {
		t.Errorf("expected word count 6, got %d", c.WordCount)
	}
}

func TestByParagraphs_LargeTextSplitsAtParagraphs(t *testing.T) {
	// Twelve paragraphs of 50 words each: 600 words total, max 500.
	para := strings.TrimSpace(strings.Repeat("word ", 50))
	text := strings.Repeat(para+"\n\n", 12)
	text = strings.TrimSuffix(text, "\n\n")

	doc := ByParagraphs(text, 500)

	if doc.ChunkCount < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", doc.ChunkCount)
	}
	if doc.TotalWords != 600 {
		t.Errorf("expected 600 total words, got %d", doc.TotalWords)
	}
	for i, c := range doc.Chunks {
		if c.WordCount > 500 {
			t.Errorf("chunk %d has %d words, exceeds max 500", i, c.WordCount)
		}
		if c.Index != i {
			t.Errorf("chunk %d has index %d", i, c.Index)
		}
		if got := text[c.Start:c.End]; got != c.Content {
			t.Errorf("chunk %d content does not match source at [%d,%d]", i, c.Start, c.End)
		}
	}
}

func TestByParagraphs_OversizedParagraphStaysWhole(t *testing.T) {
	big := strings.TrimSpace(strings.Repeat("word ", 1200))
	text := "Short intro.\n\n" + big

	doc := ByParagraphs(text, 500)

	found := false
	for _, c := range doc.Chunks {
		if c.WordCount == 1200 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the 1200-word paragraph to remain a single chunk; chunks: %d", doc.ChunkCount)
	}
}

func TestByParagraphs_EmptyText(t *testing.T) {
	doc := ByParagraphs("", 1000)

	if doc.ChunkCount != 1 {
		t.Fatalf("expected 1 chunk for empty text, got %d", doc.ChunkCount)
	}
	if doc.Chunks[0].WordCount != 0 {
		t.Errorf("expected word count 0, got %d", doc.Chunks[0].WordCount)
	}
	if doc.TotalWords != 0 {
		t.Errorf("expected 0 total words, got %d", doc.TotalWords)
	}
}

func TestByParagraphs_ChunkIDsAreUnique(t *testing.T) {
	para := strings.TrimSpace(strings.Repeat("word ", 100))
	text := strings.Repeat(para+"\n\n", 6)

	doc := ByParagraphs(text, 150)

	seen := make(map[string]bool)
	for _, c := range doc.Chunks {
		if c.ID == "" {
			t.Fatal("chunk has empty id")
		}
		if seen[c.ID] {
			t.Fatalf("duplicate chunk id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestByWindow_StrictSizes(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("alpha beta gamma delta epsilon ", 50)) // 250 words

	doc := ByWindow(text, 100)

	if doc.ChunkCount != 3 {
		t.Fatalf("expected 3 chunks, got %d", doc.ChunkCount)
	}
	if doc.Chunks[0].WordCount != 100 || doc.Chunks[1].WordCount != 100 {
		t.Errorf("expected first two chunks of exactly 100 words, got %d and %d",
			doc.Chunks[0].WordCount, doc.Chunks[1].WordCount)
	}
	if doc.Chunks[2].WordCount != 50 {
		t.Errorf("expected final chunk of 50 words, got %d", doc.Chunks[2].WordCount)
	}
}

func TestByWindow_EmptyText(t *testing.T) {
	doc := ByWindow("", 100)

	if doc.ChunkCount != 1 {
		t.Fatalf("expected 1 chunk, got %d", doc.ChunkCount)
	}
	if doc.Chunks[0].Content != "" {
		t.Errorf("expected empty content, got %q", doc.Chunks[0].Content)
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"simple", "one two three", 3},
		{"mixed whitespace", "one\ttwo\n\nthree  four", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.text); got != tt.want {
				t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

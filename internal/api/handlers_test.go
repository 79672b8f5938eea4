package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgallion1/docslice/internal/config"
	"github.com/dgallion1/docslice/internal/pipeline"
)

const testAPIKey = "test-key"

func testServer(t *testing.T) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		APIKey:          testAPIKey,
		MaxUploadBytes:  1 << 20,
		MaxTextBytes:    1 << 20,
		DefaultMaxWords: 800,
		MaxQueueSize:    10,
		WorkerCount:     1,
	}
	orch := pipeline.NewOrchestrator(cfg, nil, log)
	return NewServer(orch, nil, log, cfg)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpointIsPublic(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"wrong key", "Bearer nope", http.StatusUnauthorized},
		{"valid key", "Bearer " + testAPIKey, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/chunk", strings.NewReader(`{"text":"hello"}`))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandleChunk(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, "POST", "/api/chunk", map[string]any{
		"text":      "Paragraph one.\n\nParagraph two.",
		"max_words": 100,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Chunks     []map[string]any `json:"chunks"`
		ChunkCount int              `json:"chunk_count"`
		TotalWords int              `json:"total_word_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ChunkCount != 1 || len(resp.Chunks) != 1 {
		t.Errorf("expected 1 chunk, got %d", resp.ChunkCount)
	}
	if resp.TotalWords != 4 {
		t.Errorf("total words = %d, want 4", resp.TotalWords)
	}
}

func TestHandleChunk_UnknownStrategy(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, "POST", "/api/chunk", map[string]any{
		"text":     "hello",
		"strategy": "bogus",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleChunk_InvalidBody(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest("POST", "/api/chunk", strings.NewReader("not json"))
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleReconstruct_RoundTrip(t *testing.T) {
	srv := testServer(t)

	text := "First paragraph.\n\nSecond paragraph."
	chunkRec := doJSON(t, srv, "POST", "/api/chunk", map[string]any{"text": text})
	if chunkRec.Code != http.StatusOK {
		t.Fatalf("chunk status = %d", chunkRec.Code)
	}

	var doc json.RawMessage = chunkRec.Body.Bytes()
	rec := doJSON(t, srv, "POST", "/api/chunk/reconstruct", map[string]any{
		"document": doc,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("reconstruct status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Text != text {
		t.Errorf("round trip text = %q, want %q", resp.Text, text)
	}
}

func TestHandleSegment(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, "POST", "/api/segment", map[string]any{
		"text":   "Chapter One\n\nSome text.\n\nChapter Two\n\nMore text.",
		"method": "chapter",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Method       string           `json:"method"`
		Segments     []map[string]any `json:"segments"`
		SegmentCount int              `json:"segment_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Method != "chapter" {
		t.Errorf("method = %q, want chapter", resp.Method)
	}
	if resp.SegmentCount != 2 {
		t.Errorf("segment count = %d, want 2", resp.SegmentCount)
	}
}

func TestHandleSegment_EmptyTextReturnsEmptyList(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, "POST", "/api/segment", map[string]any{"text": ""})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"segments":[]`)) {
		t.Errorf("expected empty segments array, got %s", rec.Body)
	}
}

func TestHandleSegment_UnknownMethod(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, "POST", "/api/segment", map[string]any{
		"text":   "hello",
		"method": "bogus",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleMergeSegments_NoMatchingIDs(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, "POST", "/api/segment/merge", map[string]any{
		"segments": []map[string]any{{"id": "a", "content": "x"}},
		"ids":      []string{"missing"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("no segments selected")) {
		t.Errorf("unexpected error body: %s", rec.Body)
	}
}

func TestHandleCreatePodcast_UnavailableWithoutTTS(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, "POST", "/api/podcast", map[string]any{
		"title":  "Ep 1",
		"script": "HOST: hi\nGUEST: hello",
	})
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandlePodcastStatus_UnknownJob(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, "GET", "/api/podcast/nope/status", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleTTSStats_UnavailableWithoutTTS(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, "GET", "/api/stats/tts", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandleExtract_TextUpload(t *testing.T) {
	srv := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("First paragraph.\n\nSecond paragraph."))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/extract", &buf)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Title     string `json:"title"`
		Text      string `json:"text"`
		WordCount int    `json:"word_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Title != "notes" {
		t.Errorf("title = %q, want notes", resp.Title)
	}
	if resp.WordCount != 4 {
		t.Errorf("word count = %d, want 4", resp.WordCount)
	}
}

func TestHandleExtract_UnsupportedExtension(t *testing.T) {
	srv := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "payload.exe")
	fw.Write([]byte("binary"))
	mw.Close()

	req := httptest.NewRequest("POST", "/api/extract", &buf)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

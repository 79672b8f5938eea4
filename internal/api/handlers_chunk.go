package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dgallion1/docslice/internal/chunker"
)

type chunkRequest struct {
	Text     string `json:"text"`
	MaxWords int    `json:"max_words"`
	Strategy string `json:"strategy"` // "paragraph" (default) or "window"
}

func (s *Server) handleChunk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes)

	var req chunkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	maxWords := req.MaxWords
	if maxWords <= 0 {
		maxWords = s.cfg.DefaultMaxWords
	}

	var doc chunker.Document
	switch req.Strategy {
	case "", "paragraph":
		doc = chunker.ByParagraphs(req.Text, maxWords)
	case "window":
		doc = chunker.ByWindow(req.Text, maxWords)
	default:
		jsonError(w, fmt.Sprintf("unknown chunking strategy: %q", req.Strategy), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

type reconstructRequest struct {
	Document     chunker.Document `json:"document"`
	Replacements map[int]string   `json:"replacements"`
}

func (s *Server) handleReconstruct(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes*2)

	var req reconstructRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	text := chunker.Reconstruct(req.Document, req.Replacements)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"text":       text,
		"word_count": chunker.CountWords(text),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dgallion1/docslice/internal/segmenter"
)

type segmentRequest struct {
	Text   string           `json:"text"`
	Method segmenter.Method `json:"method"` // "auto" when empty
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes)

	var req segmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := segmenter.Split(req.Text, req.Method)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	segments := result.Segments
	if segments == nil {
		segments = []segmenter.Segment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"method":        result.Method,
		"segments":      segments,
		"segment_count": len(segments),
	})
}

// mergeRequest carries the client's segment list back to the server:
// segmentation results are not persisted, so a merge works on whatever the
// client received from /api/segment.
type mergeRequest struct {
	Segments []segmenter.Segment `json:"segments"`
	IDs      []string            `json:"ids"`
}

func (s *Server) handleMergeSegments(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes*2)

	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	merged, err := segmenter.Merge(req.Segments, req.IDs)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, segmenter.ErrNoSegmentsSelected) {
			code = http.StatusBadRequest
		}
		jsonError(w, err.Error(), code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(merged)
}

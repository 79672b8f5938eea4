package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleTTSStats(w http.ResponseWriter, r *http.Request) {
	if s.synth == nil || s.synth.Stats == nil {
		jsonError(w, "tts stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.synth.Stats.Snapshot(),
	})
}

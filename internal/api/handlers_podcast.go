package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dgallion1/docslice/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type podcastRequest struct {
	Title  string `json:"title"`
	Script string `json:"script"`
}

func (s *Server) handleCreatePodcast(w http.ResponseWriter, r *http.Request) {
	if s.synth == nil {
		jsonError(w, pipeline.ErrTTSUnavailable.Error(), http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxTextBytes)

	var req podcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		jsonError(w, "script is required", http.StatusBadRequest)
		return
	}

	job := pipeline.NewJob(uuid.NewString(), req.Title, req.Script)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Snapshot().Status,
		"poll_url": fmt.Sprintf("/api/podcast/%s/status", job.ID),
	})
}

func (s *Server) handlePodcastStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()

	resp := map[string]any{
		"job_id":   snap.ID,
		"title":    snap.Title,
		"status":   snap.Status,
		"phase":    snap.Phase,
		"progress": snap.Progress,
	}
	if snap.Status == pipeline.StatusCompleted || snap.Status == pipeline.StatusPartial {
		resp["audio_url"] = fmt.Sprintf("/api/podcast/%s/audio", snap.ID)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handlePodcastAudio(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	snap := job.Snapshot()
	audio := job.Audio()
	if (snap.Status != pipeline.StatusCompleted && snap.Status != pipeline.StatusPartial) || len(audio) == 0 {
		jsonError(w, fmt.Sprintf("audio not ready (status %s)", snap.Status), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(audio)))
	w.Write(audio)
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docslice/internal/config"
	"github.com/dgallion1/docslice/internal/pipeline"
	"github.com/dgallion1/docslice/internal/tts"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docslice.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	synth        *tts.Client // nil when speech synthesis is not configured
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, synth *tts.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		synth:        synth,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/extract", s.handleExtract)

		r.Post("/api/chunk", s.handleChunk)
		r.Post("/api/chunk/reconstruct", s.handleReconstruct)

		r.Post("/api/segment", s.handleSegment)
		r.Post("/api/segment/merge", s.handleMergeSegments)

		r.Post("/api/podcast", s.handleCreatePodcast)
		r.Get("/api/podcast/{jobID}/status", s.handlePodcastStatus)
		r.Get("/api/podcast/{jobID}/audio", s.handlePodcastAudio)

		r.Get("/api/stats/tts", s.handleTTSStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

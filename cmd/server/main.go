package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docslice/internal/api"
	"github.com/dgallion1/docslice/internal/config"
	"github.com/dgallion1/docslice/internal/pipeline"
	"github.com/dgallion1/docslice/internal/podcast"
	"github.com/dgallion1/docslice/internal/tts"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the speech client. Podcast routes stay up but refuse
	// work when credentials are absent.
	var speech *tts.Client
	var synth podcast.Synthesizer
	if cfg.TTSConfigured() {
		speech, err = tts.NewClient(cfg.AzureSpeechKey, cfg.AzureSpeechRegion, cfg.HostVoice)
		if err != nil {
			log.Error("speech client init failed", "error", err)
			os.Exit(1)
		}
		synth = speech
	} else {
		log.Warn("speech synthesis disabled: AZURE_SPEECH_KEY not set")
	}

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, synth, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, speech, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if speech != nil {
			speech.Close()
		}
	}()

	log.Info("starting docslice", "port", cfg.Port, "tts_enabled", cfg.TTSConfigured())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8090"`

	// Auth
	APIKey string `env:"DOCSLICE_API_KEY"`

	// Azure speech synthesis
	AzureSpeechKey    string        `env:"AZURE_SPEECH_KEY"`
	AzureSpeechRegion string        `env:"AZURE_SPEECH_REGION" envDefault:"eastus"`
	HostVoice         string        `env:"TTS_HOST_VOICE" envDefault:"en-US-AndrewNeural"`
	GuestVoice        string        `env:"TTS_GUEST_VOICE" envDefault:"en-US-AvaNeural"`
	TurnPause         time.Duration `env:"TTS_TURN_PAUSE" envDefault:"600ms"`

	// Worker pool
	WorkerCount  int `env:"WORKER_COUNT" envDefault:"2"`
	MaxQueueSize int `env:"MAX_QUEUE_SIZE" envDefault:"50"`

	// Request limits
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"52428800"` // 50MB
	MaxTextBytes   int64 `env:"MAX_TEXT_BYTES" envDefault:"10485760"`   // 10MB

	// Chunking defaults
	DefaultMaxWords int `env:"DEFAULT_MAX_WORDS" envDefault:"800"`

	// Job state
	JobTTL time.Duration `env:"JOB_TTL" envDefault:"1h"`

	// PDF
	PDFFallbackPdftotext bool `env:"PDF_FALLBACK_PDFTOTEXT" envDefault:"true"`
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.MaxTextBytes <= 0 {
		cfg.MaxTextBytes = 10485760
	}
	if cfg.DefaultMaxWords <= 0 {
		cfg.DefaultMaxWords = 800
	}
	if cfg.TurnPause < 0 {
		cfg.TurnPause = 0
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = time.Hour
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("DOCSLICE_API_KEY is required")
	}
	return nil
}

// TTSConfigured reports whether speech synthesis credentials are present.
// The podcast endpoints degrade to 503 when they are not.
func (c Config) TTSConfigured() bool {
	return c.AzureSpeechKey != ""
}

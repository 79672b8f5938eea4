package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client calls the Azure Cognitive Services speech-synthesis REST API.
// Construction validates credentials explicitly; there is no import-time
// configuration check anywhere in this package.
type Client struct {
	key          string
	region       string
	defaultVoice string
	httpClient   *http.Client
	format       AudioFormat

	// Stats tracks per-call synthesis latency for the stats endpoint.
	Stats *Stats
}

// ErrNotConfigured is returned by NewClient when credentials are missing.
var ErrNotConfigured = errors.New("azure speech credentials are not configured")

func NewClient(key, region, defaultVoice string) (*Client, error) {
	if key == "" || region == "" {
		return nil, ErrNotConfigured
	}
	if defaultVoice == "" {
		defaultVoice = "en-US-JennyNeural"
	}
	return &Client{
		key:          key,
		region:       region,
		defaultVoice: defaultVoice,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		format: DefaultFormat,
		Stats:  NewStats(time.Hour),
	}, nil
}

// Format reports the PCM framing of buffers returned by Synthesize.
func (c *Client) Format() AudioFormat {
	return c.format
}

var ssmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Synthesize converts one piece of text to raw PCM audio using the given
// voice. Failures are returned to the caller; retry policy (there is none
// per speaker turn) belongs to the caller.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty synthesis text")
	}
	if voice == "" {
		voice = c.defaultVoice
	}

	ssml := fmt.Sprintf(
		`<speak version="1.0" xml:lang="en-US"><voice name="%s">%s</voice></speak>`,
		voice, ssmlEscaper.Replace(text),
	)

	endpoint := fmt.Sprintf("https://%s.tts.speech.microsoft.com/cognitiveservices/v1", c.region)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(ssml))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/ssml+xml")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("X-Microsoft-OutputFormat", "raw-16khz-16bit-mono-pcm")
	req.Header.Set("User-Agent", "docslice")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("speech api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, 64<<20))
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	c.Stats.Record(time.Since(start))

	return audio, nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

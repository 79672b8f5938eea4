package podcast

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgallion1/docslice/internal/tts"
)

// Synthesizer produces speech audio for one piece of text. Implementations
// return raw PCM in the framing reported by Format.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
	Format() tts.AudioFormat
}

// ErrNoSpeakerSegments is returned when not a single turn could be
// synthesized.
var ErrNoSpeakerSegments = errors.New("no valid speaker segments found")

// GenerateDialogueAudio synthesizes each turn in order, one at a time, and
// stitches the results with a fixed pause after every successful turn.
// Output order always follows script order. A failed turn is logged,
// reported through notify, and simply omitted; it is not retried. Only a
// fully empty result is an error.
//
// notify may be nil; when set it is called once per turn with the turn's
// synthesis error (nil on success).
func GenerateDialogueAudio(ctx context.Context, synth Synthesizer, turns []Turn, pause time.Duration, log *slog.Logger, notify func(index int, err error)) ([]byte, error) {
	if log == nil {
		log = slog.Default()
	}
	silence := tts.Silence(pause, synth.Format())

	var out bytes.Buffer
	synthesized := 0
	for i, turn := range turns {
		audio, err := synth.Synthesize(ctx, turn.Text, turn.Voice)
		if notify != nil {
			notify(i, err)
		}
		if err != nil {
			log.Warn("turn synthesis failed, skipping",
				"turn", i,
				"speaker", turn.Speaker,
				"error", err,
			)
			continue
		}
		out.Write(audio)
		out.Write(silence)
		synthesized++
	}

	if synthesized == 0 {
		return nil, ErrNoSpeakerSegments
	}
	return out.Bytes(), nil
}

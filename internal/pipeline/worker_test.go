package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgallion1/docslice/internal/podcast"
	"github.com/dgallion1/docslice/internal/tts"
)

type fakeSynth struct {
	failOn string
	voices []string
}

func (f *fakeSynth) Synthesize(_ context.Context, text, voice string) ([]byte, error) {
	f.voices = append(f.voices, voice)
	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, errors.New("provider error")
	}
	return []byte{0xAB, 0xCD}, nil
}

func (f *fakeSynth) Format() tts.AudioFormat { return tts.DefaultFormat }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
}

func TestWorker_ProcessCompletes(t *testing.T) {
	synth := &fakeSynth{}
	w := NewWorker(synth, discardLogger(), 0, "voice-host", "voice-guest")

	job := NewJob("j1", "Title", "HOST: First line here.\nGUEST: Second line here.")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed (errors: %v)", snap.Status, snap.Progress.Errors)
	}
	if snap.Progress.TotalTurns != 2 || snap.Progress.TurnsSynthesized != 2 {
		t.Errorf("progress = %+v, want 2/2", snap.Progress)
	}
	audio := job.Audio()
	if len(audio) == 0 {
		t.Fatal("expected audio on a completed job")
	}
	if !bytes.HasPrefix(audio, []byte("RIFF")) {
		t.Error("job audio should be WAV-wrapped")
	}
	// HOST gets the host voice, GUEST the guest voice.
	if len(synth.voices) != 2 || synth.voices[0] != "voice-host" || synth.voices[1] != "voice-guest" {
		t.Errorf("voice assignment wrong: %v", synth.voices)
	}
}

func TestWorker_ProcessPartialOnSkippedTurn(t *testing.T) {
	synth := &fakeSynth{failOn: "broken"}
	w := NewWorker(synth, discardLogger(), 0, "vh", "vg")

	job := NewJob("j2", "Title", "HOST: Fine line.\nGUEST: This one is broken.\nHOST: Also fine.")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusPartial {
		t.Fatalf("status = %s, want partial", snap.Status)
	}
	if snap.Progress.TurnsSynthesized != 2 || snap.Progress.TurnsSkipped != 1 {
		t.Errorf("progress = %+v, want 2 synthesized / 1 skipped", snap.Progress)
	}
	if len(snap.Progress.Errors) == 0 {
		t.Error("expected the failed turn recorded in errors")
	}
	if len(job.Audio()) == 0 {
		t.Error("partial jobs still carry the stitched audio")
	}
}

func TestWorker_ProcessFailsOnUnparseableScript(t *testing.T) {
	w := NewWorker(&fakeSynth{}, discardLogger(), 0, "vh", "vg")

	job := NewJob("j3", "Title", "No speaker labels anywhere in this text.")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", snap.Status)
	}
	if job.Audio() != nil {
		t.Error("failed job should carry no audio")
	}
}

func TestWorker_ProcessFailsWhenAllTurnsFail(t *testing.T) {
	synth := &fakeSynth{failOn: "line"}
	w := NewWorker(synth, discardLogger(), 0, "vh", "vg")

	job := NewJob("j4", "Title", "HOST: A line.\nGUEST: Another line.")
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", snap.Status)
	}
	found := false
	for _, e := range snap.Progress.Errors {
		if strings.Contains(e, podcast.ErrNoSpeakerSegments.Error()) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the no-audio error recorded, got %v", snap.Progress.Errors)
	}
}

func TestWorker_AssignVoicesNamedSpeakers(t *testing.T) {
	w := NewWorker(&fakeSynth{}, discardLogger(), 0, "vh", "vg")
	turns := []podcast.Turn{
		{Speaker: "SARAH", Text: "a"},
		{Speaker: "JAMES", Text: "b"},
		{Speaker: "SARAH", Text: "c"},
	}
	w.assignVoices(turns)

	if turns[0].Voice != "vh" || turns[1].Voice != "vg" {
		t.Errorf("pool assignment wrong: %q, %q", turns[0].Voice, turns[1].Voice)
	}
	if turns[2].Voice != turns[0].Voice {
		t.Error("same speaker must keep the same voice")
	}
}

func TestWorker_AssignVoicesSpeakerNumbers(t *testing.T) {
	w := NewWorker(&fakeSynth{}, discardLogger(), 0, "vh", "vg")
	turns := []podcast.Turn{
		{Speaker: "SPEAKER 1", Text: "a"},
		{Speaker: "SPEAKER 2", Text: "b"},
	}
	w.assignVoices(turns)

	if turns[0].Voice != "vh" || turns[1].Voice != "vg" {
		t.Errorf("voices = %q, %q; want vh, vg", turns[0].Voice, turns[1].Voice)
	}
}

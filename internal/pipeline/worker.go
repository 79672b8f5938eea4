package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docslice/internal/podcast"
	"github.com/dgallion1/docslice/internal/tts"
)

// Worker runs one podcast job at a time: parse the script, synthesize the
// turns strictly in order, stitch the audio. There is no concurrency inside
// a job; the provider is called once per turn, sequentially.
type Worker struct {
	synth podcast.Synthesizer
	log   *slog.Logger

	pause      time.Duration
	hostVoice  string
	guestVoice string
}

func NewWorker(synth podcast.Synthesizer, log *slog.Logger, pause time.Duration, hostVoice, guestVoice string) *Worker {
	return &Worker{
		synth:      synth,
		log:        log,
		pause:      pause,
		hostVoice:  hostVoice,
		guestVoice: guestVoice,
	}
}

// Process runs the full generation flow for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)

	job.SetStatus(StatusPreparing, "parsing_script")
	turns := podcast.ParseScript(job.Script())
	if len(turns) == 0 {
		log.Error("script has no recognizable speaker turns")
		job.AddError(podcast.ErrNoSpeakerSegments.Error())
		job.SetStatus(StatusFailed, "parsing_script")
		return
	}
	w.assignVoices(turns)
	job.SetTotalTurns(len(turns))
	log.Info("parsed script", "turns", len(turns))

	job.SetStatus(StatusSynthesizing, "synthesizing")
	audio, err := podcast.GenerateDialogueAudio(ctx, w.synth, turns, w.pause, log, func(i int, err error) {
		if err != nil {
			job.AddError(fmt.Sprintf("turn %d (%s): %s", i, turns[i].Speaker, err))
		}
		job.AddTurnResult(err == nil)
	})
	if err != nil {
		log.Error("synthesis produced no audio", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "synthesizing")
		return
	}

	job.SetStatus(StatusStitching, "stitching")
	job.SetAudio(tts.WrapWAV(audio, w.synth.Format()))

	snap := job.Snapshot()
	if snap.Progress.TurnsSkipped > 0 {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
	log.Info("podcast generated",
		"turns_synthesized", snap.Progress.TurnsSynthesized,
		"turns_skipped", snap.Progress.TurnsSkipped,
		"audio_bytes", len(job.Audio()),
	)
}

// assignVoices maps speaker labels to provider voices. HOST/SPEAKER 1 get
// the host voice, GUEST/SPEAKER 2 the guest voice; any other label is
// assigned from the pool in order of first appearance.
func (w *Worker) assignVoices(turns []podcast.Turn) {
	pool := []string{w.hostVoice, w.guestVoice}
	assigned := make(map[string]string)
	next := 0

	for i := range turns {
		sp := turns[i].Speaker
		voice, ok := assigned[sp]
		if !ok {
			switch sp {
			case "HOST", "SPEAKER 1":
				voice = w.hostVoice
			case "GUEST", "SPEAKER 2":
				voice = w.guestVoice
			default:
				voice = pool[next%len(pool)]
				next++
			}
			assigned[sp] = voice
		}
		turns[i].Voice = voice
	}
}

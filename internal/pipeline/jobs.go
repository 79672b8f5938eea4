package pipeline

import (
	"sync"
	"time"
)

// Status represents the state of a podcast generation job.
type Status string

const (
	StatusQueued       Status = "queued"
	StatusPreparing    Status = "preparing_script"
	StatusSynthesizing Status = "synthesizing"
	StatusStitching    Status = "stitching"
	StatusCompleted    Status = "completed"
	StatusPartial      Status = "partial"
	StatusFailed       Status = "failed"
)

// Job tracks one script-to-audio generation from submission to audio.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	Title string `json:"title"`

	Status Status `json:"status"`
	Phase  string `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	script string
	audio  []byte
	errors []string
}

// Progress tracks per-turn synthesis progress.
type Progress struct {
	TotalTurns       int      `json:"total_turns"`
	TurnsSynthesized int      `json:"turns_synthesized"`
	TurnsSkipped     int      `json:"turns_skipped"`
	Errors           []string `json:"errors"`
}

// NewJob creates a queued job for the given script.
func NewJob(id, title, script string) *Job {
	now := time.Now()
	return &Job{
		ID:        id,
		Title:     title,
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		script:    script,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status Status, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetTotalTurns records how many turns the script parsed into.
func (j *Job) SetTotalTurns(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalTurns = n
	j.UpdatedAt = time.Now()
}

// AddTurnResult counts one turn as synthesized or skipped.
func (j *Job) AddTurnResult(ok bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if ok {
		j.Progress.TurnsSynthesized++
	} else {
		j.Progress.TurnsSkipped++
	}
	j.UpdatedAt = time.Now()
}

// Script returns the submitted script text.
func (j *Job) Script() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.script
}

// SetAudio stores the finished audio buffer.
func (j *Job) SetAudio(audio []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.audio = audio
	j.UpdatedAt = time.Now()
}

// Audio returns the finished audio buffer, nil until the job completes.
func (j *Job) Audio() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.audio
}

// Snapshot is a read-only, JSON-safe copy of job state.
type Snapshot struct {
	ID       string   `json:"job_id"`
	Title    string   `json:"title"`
	Status   Status   `json:"status"`
	Phase    string   `json:"phase"`
	Progress Progress `json:"progress"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return Snapshot{
		ID:     j.ID,
		Title:  j.Title,
		Status: j.Status,
		Phase:  j.Phase,
		Progress: Progress{
			TotalTurns:       j.Progress.TotalTurns,
			TurnsSynthesized: j.Progress.TurnsSynthesized,
			TurnsSkipped:     j.Progress.TurnsSkipped,
			Errors:           errs,
		},
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs (and their audio buffers with them).
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		updated := job.UpdatedAt
		job.mu.Unlock()
		if now.Sub(updated) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

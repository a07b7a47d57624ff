package jobstore

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codebuildervaibhav/voice2slide/internal/types"
)

// Store holds every job for the lifetime of the process. There is no
// persistence: a restart loses the index while uploaded and rendered files
// stay on disk.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*types.Job
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*types.Job),
	}
}

// Create inserts a new job with a fresh id and returns a snapshot of it.
// pathFor resolves the job's source file path from the generated id, so the
// path is fixed at creation; it may be nil when no source file exists yet.
func (s *Store) Create(filename string, pathFor func(id string) string) types.Job {
	job := &types.Job{
		ID:        uuid.New().String(),
		Status:    types.StatusUploaded,
		Progress:  types.ProgressUploaded,
		Filename:  filename,
		CreatedAt: time.Now(),
	}
	if pathFor != nil {
		job.FilePath = pathFor(job.ID)
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	return *job
}

// Get returns a snapshot of the job, or false if the id is unknown.
func (s *Store) Get(id string) (types.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return types.Job{}, false
	}
	return *job, true
}

// Update applies fn to the job under the store lock and reports whether the
// id was known. The lock covers a single Update call only: separate calls
// made while a pipeline leg runs are individually atomic but not serialized
// against other legs touching the same job.
func (s *Store) Update(id string, fn func(*types.Job)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return false
	}
	fn(job)
	return true
}

// SetStatus advances the job to status with the given progress value.
// Edges outside the pipeline's transition table are rejected and reported.
func (s *Store) SetStatus(id string, status types.Status, progress int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok || !types.ValidTransition(job.Status, status) {
		return false
	}
	job.Status = status
	job.Progress = progress
	return true
}

// SetError moves the job into the terminal error state and records the
// failure detail verbatim. Unlike SetStatus it does not consult the
// transition table: a failure report must never be dropped.
func (s *Store) SetError(id, detail string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return false
	}
	job.Status = types.StatusError
	job.Error = detail
	return true
}

// Prune drops jobs created before cutoff and returns how many were removed.
// Used by the optional cleanup scheduler; nothing else deletes records.
func (s *Store) Prune(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, job := range s.jobs {
		if job.CreatedAt.Before(cutoff) {
			delete(s.jobs, id)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of jobs tracked.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

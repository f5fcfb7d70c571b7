package repository

import (
	"context"
	"sync"
	"time"

	"calc-api/domain"
)

type memoryEntry struct {
	job       domain.FileJob
	expiresAt time.Time
}

// JobRepositoryMemory is an in-memory implementation of JobRepository.
type JobRepositoryMemory struct {
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
	data map[string]memoryEntry
}

// NewJobRepositoryMemory creates a new in-memory job repository. A ttl of
// zero keeps jobs forever.
func NewJobRepositoryMemory(ttl time.Duration) *JobRepositoryMemory {
	return &JobRepositoryMemory{
		ttl:  ttl,
		now:  time.Now,
		data: make(map[string]memoryEntry),
	}
}

// Save stores the job, refreshing its expiry.
func (r *JobRepositoryMemory) Save(_ context.Context, job domain.FileJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := memoryEntry{job: job}
	if r.ttl > 0 {
		entry.expiresAt = r.now().Add(r.ttl)
	}
	r.data[job.ID] = entry
	return nil
}

func (r *JobRepositoryMemory) Get(_ context.Context, id string) (domain.FileJob, bool, error) {
	r.mu.RLock()
	entry, ok := r.data[id]
	r.mu.RUnlock()

	if !ok {
		return domain.FileJob{}, false, nil
	}
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.data, id)
		r.mu.Unlock()
		return domain.FileJob{}, false, nil
	}
	return entry.job, true, nil
}

func (r *JobRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"construction-deepwiki-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// JobRecord pairs an ingest job with the context its worker runs under.
// The worker mutates step/progress while the status endpoint reads, so
// every access goes through the record lock.
type JobRecord struct {
	mu     sync.RWMutex
	job    entity.IngestJob
	ctx    context.Context
	cancel context.CancelFunc
}

// Snapshot returns a copy of the job for responses.
func (rec *JobRecord) Snapshot() entity.IngestJob {
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.job
}

// Update applies a mutation under the record lock.
func (rec *JobRecord) Update(fn func(job *entity.IngestJob)) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	fn(&rec.job)
}

// Context is the worker context. Done once the job is cancelled.
func (rec *JobRecord) Context() context.Context {
	return rec.ctx
}

// Cancel stops the worker between steps. Safe to call more than once,
// and a no-op on finished jobs.
func (rec *JobRecord) Cancel() {
	rec.cancel()
}

// JobRepository tracks ingest jobs. Finished jobs stay queryable until
// the cache expires them.
type JobRepository struct {
	cache *cache.Cache
}

func NewJobRepository(ttl time.Duration) *JobRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &JobRepository{
		cache: c,
	}
}

// Save registers a job and gives it a cancellable worker context. The
// context deliberately does not inherit from the submitting request:
// the job outlives it.
func (r *JobRepository) Save(job entity.IngestJob) *JobRecord {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &JobRecord{job: job, ctx: ctx, cancel: cancel}
	r.cache.Set(job.Id, rec, cache.DefaultExpiration)
	return rec
}

func (r *JobRepository) Get(jobId string) (*JobRecord, bool) {
	if x, found := r.cache.Get(jobId); found {
		return x.(*JobRecord), true
	}
	return nil, false
}

package memory

import (
	"sync"
	"time"

	"construction-deepwiki-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// BufferCap is the per-session log retention. The oldest entry falls
// off when the 101st arrives; the durable sink keeps everything.
const BufferCap = 100

// LogBuffer is one session's capped FIFO of activity entries. Request
// handlers and the ingest worker append concurrently.
type LogBuffer struct {
	mu      sync.RWMutex
	entries []entity.ActivityLog
}

func (b *LogBuffer) Append(entry entity.ActivityLog) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, entry)
	if len(b.entries) > BufferCap {
		b.entries = b.entries[len(b.entries)-BufferCap:]
	}
}

// Snapshot returns the buffered entries in append order.
func (b *LogBuffer) Snapshot() []entity.ActivityLog {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]entity.ActivityLog, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *LogBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// ActivityRepository hands out per-session log buffers. Buffers expire
// on the same schedule as the sessions they belong to.
type ActivityRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewActivityRepository(ttl time.Duration) *ActivityRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &ActivityRepository{
		cache: c,
	}
}

// Buffer returns the session's log buffer, creating it on first use.
func (r *ActivityRepository) Buffer(sessionId string) *LogBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionId); found {
		buf := x.(*LogBuffer)
		r.cache.Set(sessionId, buf, cache.DefaultExpiration)
		return buf
	}

	buf := &LogBuffer{}
	r.cache.Set(sessionId, buf, cache.DefaultExpiration)
	return buf
}

package memory

import (
	"time"

	"construction-deepwiki-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

// NewSessionRepository keeps navigation state per browser session.
// Sessions idle past the TTL are purged; expiry is the only way a
// session ends, there is no logout.
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// purge expired sessions every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Save stores the session and slides its expiry window.
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.Id, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionId string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}

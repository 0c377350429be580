package memory

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"mobile-order-be/pkg/recommend/session"
)

// SessionRepository keeps live browsing sessions in process memory. Sessions
// are short-lived by nature, so losing them on restart is acceptable.
//
// Every read and write goes through a per-session lock: Get hands out
// snapshot copies, and Update applies a mutation as one atomic
// read-modify-write, so concurrent requests against the same session never
// touch shared state.
type SessionRepository struct {
	cache *gocache.Cache
	ttl   time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	// Purge expired sessions every 10 minutes.
	c := gocache.New(ttl, 10*time.Minute)
	r := &SessionRepository{
		cache: c,
		ttl:   ttl,
		locks: make(map[string]*sync.Mutex),
	}
	// Drop the per-session lock when the cache evicts the session.
	c.OnEvicted(func(sessionID string, _ interface{}) {
		r.mu.Lock()
		delete(r.locks, sessionID)
		r.mu.Unlock()
	})
	return r
}

func (r *SessionRepository) lockFor(sessionID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		r.locks[sessionID] = l
	}
	return l
}

func (r *SessionRepository) Save(state *session.State) {
	l := r.lockFor(state.ID)
	l.Lock()
	defer l.Unlock()
	r.cache.Set(state.ID, state, gocache.DefaultExpiration)
}

// Get returns a snapshot of the session. Mutating the returned state does
// not affect the stored one; use Update for that.
func (r *SessionRepository) Get(sessionID string) (*session.State, bool) {
	l := r.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()
	if x, found := r.cache.Get(sessionID); found {
		return x.(*session.State).Clone(), true
	}
	return nil, false
}

// Update applies fn to the stored session under its lock and returns a
// snapshot of the result. The TTL is refreshed on every update.
func (r *SessionRepository) Update(sessionID string, fn func(*session.State)) (*session.State, bool) {
	l := r.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()

	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	state := x.(*session.State)
	fn(state)
	r.cache.Set(sessionID, state, gocache.DefaultExpiration)
	return state.Clone(), true
}

func (r *SessionRepository) Delete(sessionID string) {
	l := r.lockFor(sessionID)
	l.Lock()
	defer l.Unlock()
	r.cache.Delete(sessionID)
}

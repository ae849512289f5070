package server

import (
	"context"
	"sync"
	"time"

	"github.com/likhithlanka/pulse/internal/engage"
)

// session pairs one visitor's tracker with its last-activity timestamp.
type session struct {
	tracker  *engage.Tracker
	lastSeen time.Time
}

// sessionRegistry holds the per-visitor trackers. Sessions are created
// on first sight of an identifier and evicted after sitting idle past
// the TTL; trackers are never persisted.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func newSessionRegistry(ttl time.Duration) *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// get returns the tracker for a session identifier, creating it on
// first use, and refreshes the idle timer.
func (r *sessionRegistry) get(id string) *engage.Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		sess = &session{tracker: engage.NewTracker()}
		r.sessions[id] = sess
	}
	sess.lastSeen = r.now()
	return sess.tracker
}

// peek returns the tracker without creating one.
func (r *sessionRegistry) peek(id string) (*engage.Tracker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = r.now()
	return sess.tracker, true
}

// evictIdle drops sessions that have been silent past the TTL and
// returns how many were removed.
func (r *sessionRegistry) evictIdle() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// janitor evicts idle sessions periodically until ctx is cancelled.
func (r *sessionRegistry) janitor(ctx context.Context) {
	ticker := time.NewTicker(r.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.evictIdle()
		}
	}
}

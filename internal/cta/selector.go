package cta

import (
	"fmt"
	"sync"
	"time"

	"github.com/likhithlanka/pulse/internal/engage"
)

// DismissalStore is the persistence port for dismissed option identifiers.
// The set is union-only; identifiers are added, never removed.
type DismissalStore interface {
	Add(id string) error
	All() ([]string, error)
}

// Reveal gate defaults: the selector's output becomes visible no sooner
// than RevealDelay after page load, or immediately once scroll depth
// passes RevealScrollDepth, whichever occurs first.
const (
	RevealDelay       = 5 * time.Second
	RevealScrollDepth = 30.0
)

// Selector picks at most one Option for a snapshot. Dismissed identifiers
// are loaded once at construction and written through on every dismissal.
// Safe for concurrent use; selection and dismissal arrive on separate
// request goroutines.
type Selector struct {
	mu        sync.RWMutex
	opts      []Option
	dismissed map[string]bool
	store     DismissalStore
}

// NewSelector creates a Selector over the given option set, restoring
// previously dismissed identifiers from the store.
func NewSelector(opts []Option, store DismissalStore) (*Selector, error) {
	ids, err := store.All()
	if err != nil {
		return nil, fmt.Errorf("loading dismissed options: %w", err)
	}

	dismissed := make(map[string]bool, len(ids))
	for _, id := range ids {
		dismissed[id] = true
	}
	return &Selector{opts: opts, dismissed: dismissed, store: store}, nil
}

// Select returns the option to display for the snapshot, or false when
// nothing qualifies. Among eligible, non-dismissed options the highest
// priority wins; ties go to the first declared.
func (s *Selector) Select(snap engage.Snapshot) (Option, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best Option
	found := false
	for _, opt := range s.opts {
		if s.dismissed[opt.ID] || !opt.Eligible(snap) {
			continue
		}
		if !found || opt.Priority > best.Priority {
			best = opt
			found = true
		}
	}
	return best, found
}

// Dismiss records that the visitor dismissed an option. The identifier is
// excluded from all future selections and persisted across sessions.
func (s *Selector) Dismiss(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dismissed[id] {
		return nil
	}
	s.dismissed[id] = true
	if err := s.store.Add(id); err != nil {
		return fmt.Errorf("persisting dismissal: %w", err)
	}
	return nil
}

// Dismissed reports whether an option identifier has been dismissed.
func (s *Selector) Dismissed(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dismissed[id]
}

// Revealed reports whether the notifier may show anything yet: either the
// fixed delay since session start has elapsed, or the visitor has scrolled
// past the minimum depth.
func Revealed(snap engage.Snapshot, sessionStart, now time.Time, delay time.Duration, minDepth float64) bool {
	if now.Sub(sessionStart) >= delay {
		return true
	}
	return snap.ScrollDepth > minDepth
}

// Package watcher provides background monitoring of the visitor event
// journal, detecting engagement changes and emitting alerts.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/likhithlanka/pulse/internal/store"
)

// snapshotLimit bounds how much of the journal one snapshot reads.
const snapshotLimit = 1000

// WatchState captures a point-in-time summary of the visitor journal.
type WatchState struct {
	Timestamp       time.Time
	EventCount      int
	EventsByType    map[string]int
	Sessions        map[string]bool
	ResumeDownloads int
	LinkedInVisits  int
	DeepScrolls     int // scroll events at 90% depth or beyond
	Dismissals      int
}

// Alert represents a notable event detected by the watcher.
type Alert struct {
	Level   string // "info", "warning", "critical"
	Title   string
	Message string
	Time    time.Time
}

// Watcher summarizes the journal at a regular interval and emits alerts
// when notable changes are detected.
type Watcher struct {
	db            *store.DB
	interval      time.Duration
	previous      *WatchState
	alertFn       func(Alert)     // callback for emitting alerts
	lastAlertKeys map[string]bool // dedup: suppress repeated identical alerts
}

// New creates a Watcher over the given database.
func New(db *store.DB, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		db:            db,
		interval:      interval,
		alertFn:       alertFn,
		lastAlertKeys: make(map[string]bool),
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot()
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alerts := w.Check()
			for _, a := range alerts {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single check cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check() []Alert {
	curr, err := w.Snapshot()
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not read the event journal: %v", err),
			Time:    time.Now(),
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = Compare(w.previous, curr)
	}

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastAlertKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastAlertKeys = currentKeys

	w.previous = curr
	return alerts
}

// Snapshot summarizes the recent journal tail plus the dismissal set.
func (w *Watcher) Snapshot() (*WatchState, error) {
	state := &WatchState{
		Timestamp:    time.Now(),
		EventsByType: make(map[string]int),
		Sessions:     make(map[string]bool),
	}

	events, err := w.db.RecentVisitorEvents(snapshotLimit)
	if err != nil {
		return nil, fmt.Errorf("reading event journal: %w", err)
	}

	state.EventCount = len(events)
	for _, ev := range events {
		state.EventsByType[ev.EventType]++
		state.Sessions[ev.SessionID] = true

		switch ev.EventType {
		case "resume_download":
			state.ResumeDownloads++
		case "linkedin_visit":
			state.LinkedInVisits++
		case "scroll":
			if ev.Value >= 90 {
				state.DeepScrolls++
			}
		}
	}

	dismissed, err := w.db.Dismissals().All()
	if err != nil {
		return nil, fmt.Errorf("reading dismissals: %w", err)
	}
	state.Dismissals = len(dismissed)

	return state, nil
}

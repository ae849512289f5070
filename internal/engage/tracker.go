// Package engage accumulates a per-visitor behavior snapshot from the
// event stream the frontend reports: section visibility, scroll position,
// project views, and one-shot interaction flags.
package engage

import (
	"sync"
	"time"
)

// Theme is the visitor's active color theme.
type Theme string

// Recognized themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Section identifies one of the three tracked page sections.
type Section string

// Tracked sections.
const (
	SectionSkills     Section = "skills"
	SectionProjects   Section = "projects"
	SectionExperience Section = "experience"
)

// Sections lists all tracked sections.
var Sections = []Section{SectionSkills, SectionProjects, SectionExperience}

// Snapshot is the visitor-behavior state the CTA selector consumes. Dwell
// times are cumulative seconds in-viewport; ScrollDepth is the running
// maximum percentage of scrollable height reached. The one-shot flags are
// set once and never reset within a session.
type Snapshot struct {
	TimeOnSkills        float64 `json:"time_on_skills"`
	TimeOnProjects      float64 `json:"time_on_projects"`
	TimeOnExperience    float64 `json:"time_on_experience"`
	ViewedProjects      int     `json:"viewed_projects"`
	ScrollDepth         float64 `json:"scroll_depth"`
	PreferredTheme      Theme   `json:"preferred_theme"`
	HasDownloadedResume bool    `json:"has_downloaded_resume"`
	HasVisitedLinkedIn  bool    `json:"has_visited_linkedin"`
}

// Tracker owns one visitor session's Snapshot and updates it from reported
// events. It is never persisted; a page reload starts a fresh session.
type Tracker struct {
	mu        sync.Mutex
	now       func() time.Time
	snap      Snapshot
	openSince map[Section]time.Time
	viewed    map[string]bool
	started   time.Time
	subs      []func(Snapshot)
}

// NewTracker creates a Tracker using the wall clock.
func NewTracker() *Tracker {
	return NewTrackerAt(time.Now)
}

// NewTrackerAt creates a Tracker with an injected clock, so tests can
// drive dwell accounting deterministically.
func NewTrackerAt(now func() time.Time) *Tracker {
	return &Tracker{
		now:       now,
		snap:      Snapshot{PreferredTheme: ThemeLight},
		openSince: make(map[Section]time.Time),
		viewed:    make(map[string]bool),
		started:   now(),
	}
}

// SessionStart returns when this session began, used by the CTA reveal
// gate.
func (t *Tracker) SessionStart() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}

// SectionEnter records that a section became visible. Entering a section
// that is already open is ignored; only one start timestamp is kept per
// section, so overlapping visibility reports never double count.
func (t *Tracker) SectionEnter(sec Section) {
	t.mu.Lock()
	if _, open := t.openSince[sec]; !open {
		t.openSince[sec] = t.now()
	}
	t.mu.Unlock()
	t.notify()
}

// SectionLeave records that a section left the viewport, folding the open
// interval into the section's accumulated dwell time. Leaving a section
// that was never entered is ignored.
func (t *Tracker) SectionLeave(sec Section) {
	t.mu.Lock()
	if since, open := t.openSince[sec]; open {
		addDwell(&t.snap, sec, t.now().Sub(since).Seconds())
		delete(t.openSince, sec)
	}
	t.mu.Unlock()
	t.notify()
}

// Scroll records a scroll position as a percentage of total scrollable
// height. The value is clamped to [0,100] and the snapshot keeps the
// running maximum.
func (t *Tracker) Scroll(depthPercent float64) {
	if depthPercent < 0 {
		depthPercent = 0
	}
	if depthPercent > 100 {
		depthPercent = 100
	}

	t.mu.Lock()
	if depthPercent > t.snap.ScrollDepth {
		t.snap.ScrollDepth = depthPercent
	}
	t.mu.Unlock()
	t.notify()
}

// ProjectViewed counts a project card crossing the visibility threshold.
// Each card identity is counted once; repeat crossings are ignored.
func (t *Tracker) ProjectViewed(projectID string) {
	t.mu.Lock()
	if !t.viewed[projectID] {
		t.viewed[projectID] = true
		t.snap.ViewedProjects++
	}
	t.mu.Unlock()
	t.notify()
}

// ResumeDownloaded flags that the visitor downloaded the resume.
func (t *Tracker) ResumeDownloaded() {
	t.mu.Lock()
	t.snap.HasDownloadedResume = true
	t.mu.Unlock()
	t.notify()
}

// LinkedInVisited flags that the visitor opened the LinkedIn profile.
func (t *Tracker) LinkedInVisited() {
	t.mu.Lock()
	t.snap.HasVisitedLinkedIn = true
	t.mu.Unlock()
	t.notify()
}

// SetTheme mirrors the visitor's active theme.
func (t *Tracker) SetTheme(theme Theme) {
	if theme != ThemeLight && theme != ThemeDark {
		return
	}
	t.mu.Lock()
	t.snap.PreferredTheme = theme
	t.mu.Unlock()
	t.notify()
}

// Current returns the snapshot as of now. Sections that are still visible
// contribute their open interval without closing it, so dwell times are
// monotonically non-decreasing while a section stays on screen.
func (t *Tracker) Current() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.snap
	now := t.now()
	for sec, since := range t.openSince {
		addDwell(&snap, sec, now.Sub(since).Seconds())
	}
	return snap
}

// Subscribe registers a callback invoked with the current snapshot after
// every reported event. Callbacks run on the reporting goroutine.
func (t *Tracker) Subscribe(fn func(Snapshot)) {
	t.mu.Lock()
	t.subs = append(t.subs, fn)
	t.mu.Unlock()
}

func (t *Tracker) notify() {
	t.mu.Lock()
	subs := t.subs
	t.mu.Unlock()

	if len(subs) == 0 {
		return
	}
	snap := t.Current()
	for _, fn := range subs {
		fn(snap)
	}
}

func addDwell(s *Snapshot, sec Section, seconds float64) {
	switch sec {
	case SectionSkills:
		s.TimeOnSkills += seconds
	case SectionProjects:
		s.TimeOnProjects += seconds
	case SectionExperience:
		s.TimeOnExperience += seconds
	}
}

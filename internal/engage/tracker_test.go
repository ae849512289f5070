package engage

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDwellAccumulatesAcrossVisits(t *testing.T) {
	clock := newFakeClock()
	tr := NewTrackerAt(clock.now)

	tr.SectionEnter(SectionSkills)
	clock.advance(5 * time.Second)
	tr.SectionLeave(SectionSkills)

	tr.SectionEnter(SectionSkills)
	clock.advance(2 * time.Second)

	snap := tr.Current()
	if snap.TimeOnSkills != 7 {
		t.Errorf("expected 7s on skills, got %.1f", snap.TimeOnSkills)
	}

	// The open interval is not closed by Current.
	clock.advance(3 * time.Second)
	snap = tr.Current()
	if snap.TimeOnSkills != 10 {
		t.Errorf("expected 10s on skills, got %.1f", snap.TimeOnSkills)
	}
}

func TestDoubleEnterIsIgnored(t *testing.T) {
	clock := newFakeClock()
	tr := NewTrackerAt(clock.now)

	tr.SectionEnter(SectionProjects)
	clock.advance(4 * time.Second)
	// Re-entering while already visible must not reset the start timestamp.
	tr.SectionEnter(SectionProjects)
	clock.advance(4 * time.Second)
	tr.SectionLeave(SectionProjects)

	snap := tr.Current()
	if snap.TimeOnProjects != 8 {
		t.Errorf("expected 8s on projects, got %.1f", snap.TimeOnProjects)
	}
}

func TestLeaveWithoutEnterIsIgnored(t *testing.T) {
	clock := newFakeClock()
	tr := NewTrackerAt(clock.now)

	tr.SectionLeave(SectionExperience)
	clock.advance(time.Second)
	tr.SectionLeave(SectionExperience)

	snap := tr.Current()
	if snap.TimeOnExperience != 0 {
		t.Errorf("expected 0s on experience, got %.1f", snap.TimeOnExperience)
	}
}

func TestScrollDepthKeepsClampedMaximum(t *testing.T) {
	tr := NewTracker()

	tr.Scroll(30)
	tr.Scroll(62.5)
	tr.Scroll(45) // going back up must not lower the maximum
	if d := tr.Current().ScrollDepth; d != 62.5 {
		t.Errorf("expected depth 62.5, got %.1f", d)
	}

	tr.Scroll(150)
	if d := tr.Current().ScrollDepth; d != 100 {
		t.Errorf("expected clamp to 100, got %.1f", d)
	}

	tr2 := NewTracker()
	tr2.Scroll(-10)
	if d := tr2.Current().ScrollDepth; d != 0 {
		t.Errorf("expected clamp to 0, got %.1f", d)
	}
}

func TestProjectViewsCountDistinctCards(t *testing.T) {
	tr := NewTracker()

	tr.ProjectViewed("ai-cover-letter")
	tr.ProjectViewed("ai-cover-letter")
	tr.ProjectViewed("data-pipeline")

	if n := tr.Current().ViewedProjects; n != 2 {
		t.Errorf("expected 2 distinct projects, got %d", n)
	}
}

func TestOneShotFlags(t *testing.T) {
	tr := NewTracker()

	snap := tr.Current()
	if snap.HasDownloadedResume || snap.HasVisitedLinkedIn {
		t.Fatal("flags must start false")
	}

	tr.ResumeDownloaded()
	tr.LinkedInVisited()

	snap = tr.Current()
	if !snap.HasDownloadedResume || !snap.HasVisitedLinkedIn {
		t.Error("flags must be set after the corresponding events")
	}
}

func TestThemeMirrorsLastReport(t *testing.T) {
	tr := NewTracker()

	if th := tr.Current().PreferredTheme; th != ThemeLight {
		t.Errorf("expected default light theme, got %q", th)
	}

	tr.SetTheme(ThemeDark)
	tr.SetTheme("solarized") // unknown themes are ignored
	if th := tr.Current().PreferredTheme; th != ThemeDark {
		t.Errorf("expected dark theme, got %q", th)
	}
}

func TestSubscriberSeesEveryEvent(t *testing.T) {
	clock := newFakeClock()
	tr := NewTrackerAt(clock.now)

	var seen []Snapshot
	tr.Subscribe(func(s Snapshot) { seen = append(seen, s) })

	tr.Scroll(20)
	tr.ProjectViewed("p1")

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if seen[1].ScrollDepth != 20 || seen[1].ViewedProjects != 1 {
		t.Errorf("final notification should carry the latest snapshot: %+v", seen[1])
	}
}

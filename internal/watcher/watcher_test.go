package watcher

import (
	"testing"
	"time"

	"github.com/likhithlanka/pulse/internal/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertEvent(t *testing.T, db *store.DB, sessionID, eventType string, value float64) {
	t.Helper()
	err := db.InsertVisitorEvent(&store.VisitorEvent{
		SessionID:  sessionID,
		EventType:  eventType,
		Value:      value,
		OccurredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("inserting event: %v", err)
	}
}

func TestSnapshotSummarizesJournal(t *testing.T) {
	db := testDB(t)
	insertEvent(t, db, "s1", "scroll", 95)
	insertEvent(t, db, "s1", "resume_download", 0)
	insertEvent(t, db, "s2", "linkedin_visit", 0)

	w := New(db, time.Minute, nil)
	state, err := w.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if state.EventCount != 3 {
		t.Errorf("expected 3 events, got %d", state.EventCount)
	}
	if len(state.Sessions) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(state.Sessions))
	}
	if state.DeepScrolls != 1 {
		t.Errorf("expected 1 deep scroll, got %d", state.DeepScrolls)
	}
	if state.ResumeDownloads != 1 || state.LinkedInVisits != 1 {
		t.Errorf("unexpected follow-through counts: %d downloads, %d visits",
			state.ResumeDownloads, state.LinkedInVisits)
	}
}

func TestCheckEmitsAndDeduplicates(t *testing.T) {
	db := testDB(t)
	insertEvent(t, db, "s1", "scroll", 20)

	w := New(db, time.Minute, nil)
	initial, err := w.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	w.previous = initial

	// A dismissal lands between cycles.
	if err := db.Dismissals().Add("connect-linkedin"); err != nil {
		t.Fatalf("adding dismissal: %v", err)
	}

	alerts := w.Check()
	if !hasTitle(alerts, "dismissed") {
		t.Fatalf("expected a dismissal alert, got %v", titles(alerts))
	}

	// Nothing changed, and the same condition must not re-alert.
	if alerts := w.Check(); len(alerts) != 0 {
		t.Errorf("expected repeat alerts suppressed, got %v", titles(alerts))
	}
}

func TestCheckReportsNewVisitorSession(t *testing.T) {
	db := testDB(t)
	insertEvent(t, db, "s1", "scroll", 20)

	w := New(db, time.Minute, nil)
	initial, err := w.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	w.previous = initial

	insertEvent(t, db, "s2", "section_enter", 0)

	alerts := w.Check()
	if !hasTitle(alerts, "New visitors") {
		t.Errorf("expected a new-visitors alert, got %v", titles(alerts))
	}
}

package store

import (
	"database/sql"
	"time"
)

// VisitorEvent is one journaled engagement event. The journal is
// append-only and best-effort; it backs the owner's behavior review, not
// any visitor-facing feature.
type VisitorEvent struct {
	ID         int64     `json:"id"`
	SessionID  string    `json:"session_id"`
	EventType  string    `json:"event_type"`
	Section    string    `json:"section,omitempty"`
	Value      float64   `json:"value,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// InsertVisitorEvent appends an engagement event to the journal.
func (db *DB) InsertVisitorEvent(ev *VisitorEvent) error {
	_, err := db.conn.Exec(
		"INSERT INTO visitor_events (session_id, event_type, section, value, occurred_at) VALUES (?, ?, ?, ?, ?)",
		ev.SessionID, ev.EventType, ev.Section, ev.Value,
		ev.OccurredAt.UTC().Format(time.RFC3339),
	)
	return err
}

// RecentVisitorEvents returns the most recent events, newest first.
func (db *DB) RecentVisitorEvents(limit int) ([]VisitorEvent, error) {
	rows, err := db.conn.Query(
		`SELECT id, session_id, event_type, section, value, occurred_at
		 FROM visitor_events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []VisitorEvent
	for rows.Next() {
		var ev VisitorEvent
		var section sql.NullString
		var value sql.NullFloat64
		var occurredAt string
		if err := rows.Scan(&ev.ID, &ev.SessionID, &ev.EventType, &section, &value, &occurredAt); err != nil {
			return nil, err
		}
		ev.Section = section.String
		ev.Value = value.Float64
		ev.OccurredAt, _ = time.Parse(time.RFC3339, occurredAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

package store

import "time"

// Dismissals adapts the dismissed_ctas table to the cta.DismissalStore
// port. Dismissals are union-only: rows are added, never removed, except by
// an explicit Clear.
type Dismissals struct {
	db *DB
}

// Dismissals returns the persistence handle for dismissed CTA identifiers.
func (db *DB) Dismissals() *Dismissals {
	return &Dismissals{db: db}
}

// Add records a dismissed CTA identifier. Re-dismissing is a no-op.
func (d *Dismissals) Add(id string) error {
	_, err := d.db.conn.Exec(
		"INSERT INTO dismissed_ctas (id, dismissed_at) VALUES (?, ?) ON CONFLICT(id) DO NOTHING",
		id, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// All returns every dismissed CTA identifier.
func (d *Dismissals) All() ([]string, error) {
	rows, err := d.db.conn.Query("SELECT id FROM dismissed_ctas ORDER BY dismissed_at")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Clear removes every dismissal (explicit reset only).
func (d *Dismissals) Clear() error {
	_, err := d.db.conn.Exec("DELETE FROM dismissed_ctas")
	return err
}

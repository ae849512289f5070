package store

import "database/sql"

// contentKey is the kv key holding the JSON-serialized content override.
const contentKey = "portfolio_content"

// ContentPersistence adapts the kv table to the content.Persistence port.
type ContentPersistence struct {
	db *DB
}

// Content returns the persistence handle for the content override.
func (db *DB) Content() *ContentPersistence {
	return &ContentPersistence{db: db}
}

// Load returns the stored override, or nil when none has been saved.
func (p *ContentPersistence) Load() ([]byte, error) {
	var value string
	row := p.db.conn.QueryRow("SELECT value FROM kv WHERE key = ?", contentKey)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return []byte(value), nil
}

// Save stores the override, replacing any previous value.
func (p *ContentPersistence) Save(data []byte) error {
	_, err := p.db.conn.Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		contentKey, string(data),
	)
	return err
}

// Clear deletes the stored override.
func (p *ContentPersistence) Clear() error {
	_, err := p.db.conn.Exec("DELETE FROM kv WHERE key = ?", contentKey)
	return err
}

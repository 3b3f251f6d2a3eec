package store

import (
	"database/sql"
	_ "modernc.org/sqlite"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil { return nil, err }
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tokens (
	id INTEGER PRIMARY KEY,
	access_token TEXT,
	refresh_token TEXT,
	expires_at INTEGER
);
CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT
);
`); err != nil { return nil, err }
	return db, nil
}

// apps/solver/internal/db/db.go
//
// Database helpers for the solver server.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying the embedded migrations (idempotent, recorded in _migrations).
//
// Note: This package assumes SQLite but can be adapted for other backends.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// migration is one named schema step. Names are recorded in _migrations so
// each step runs at most once per database.
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_users",
		sql: `CREATE TABLE users (
			id              TEXT PRIMARY KEY,
			username        TEXT NOT NULL UNIQUE,
			password_hash   TEXT NOT NULL,
			created_at      TEXT NOT NULL,
			sessions_played INTEGER NOT NULL DEFAULT 0,
			sessions_solved INTEGER NOT NULL DEFAULT 0,
			streak          INTEGER NOT NULL DEFAULT 0
		);`,
	},
	{
		name: "002_sessions",
		sql: `CREATE TABLE sessions (
			id           TEXT PRIMARY KEY,
			user_id      TEXT REFERENCES users(id),
			anonymous_id TEXT,
			word_size    INTEGER NOT NULL,
			status       TEXT NOT NULL DEFAULT 'solving',
			rounds       INTEGER NOT NULL DEFAULT 0,
			remaining    INTEGER NOT NULL DEFAULT 0,
			started_at   TEXT NOT NULL,
			finished_at  TEXT
		);
		CREATE INDEX idx_sessions_user ON sessions(user_id, started_at);
		CREATE INDEX idx_sessions_anon ON sessions(anonymous_id, started_at);`,
	},
	{
		name: "003_rounds",
		sql: `CREATE TABLE rounds (
			session_id TEXT NOT NULL REFERENCES sessions(id),
			seq        INTEGER NOT NULL,
			guess      TEXT NOT NULL,
			feedback   TEXT NOT NULL,
			remaining  INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			PRIMARY KEY (session_id, seq)
		);`,
	},
}

// Open opens (and creates if missing) a SQLite database file.
//
// Ensures the parent directory exists for relative DSNs (e.g. ./data/app.db),
// configures busy timeout and WAL journaling, and enforces foreign keys.
func Open(dsn string) (*sql.DB, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded migrations in order, skipping steps already
// recorded in _migrations.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	for _, m := range migrations {
		var done int
		if err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, m.name).Scan(&done); err == nil {
			log.Debug().Str("migration", m.name).Msg("already applied")
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin %s: %w", m.name, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES(?)`, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.name, err)
		}
		log.Info().Str("migration", m.name).Msg("applied")
	}
	return nil
}

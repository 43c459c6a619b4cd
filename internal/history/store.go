// apps/solver/internal/history/store.go
//
// SQLite-backed record of solving sessions.
// Each session row tracks its owner (user or anonymous cookie), word size,
// final status, and round count; each round row records one guess+feedback
// pair and the candidate count it left behind.

package history

import (
	"context"
	"database/sql"
	"time"
)

// SessionRow mirrors the sessions table.
type SessionRow struct {
	ID         string `json:"id"`
	WordSize   int    `json:"wordSize"`
	Status     string `json:"status"`
	Rounds     int    `json:"rounds"`
	Remaining  int    `json:"remaining"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

// Round mirrors the rounds table.
type Round struct {
	Seq       int    `json:"seq"`
	Guess     string `json:"guess"`
	Feedback  string `json:"feedback"`
	Remaining int    `json:"remaining"`
}

// Store wraps the database handle with session-history queries.
type Store struct{ db *sql.DB }

// NewStore constructs a history store over an open database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// now formats the current UTC time the way the schema stores timestamps.
func now() string { return time.Now().UTC().Format(time.RFC3339) }

// InsertSession records a freshly started session for its owner.
// Exactly one of userID/anonID should be non-empty.
func (s *Store) InsertSession(ctx context.Context, id, userID, anonID string, wordSize, remaining int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(id, user_id, anonymous_id, word_size, status, remaining, started_at)
		 VALUES(?,?,?,?,?,?,?)`,
		id, nullable(userID), nullable(anonID), wordSize, "solving", remaining, now(),
	)
	return err
}

// InsertRound appends one guess+feedback record to a session.
func (s *Store) InsertRound(ctx context.Context, sessionID string, seq int, guess, feedback string, remaining int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds(session_id, seq, guess, feedback, remaining, created_at)
		 VALUES(?,?,?,?,?,?)`,
		sessionID, seq, guess, feedback, remaining, now(),
	)
	return err
}

// FinishSession stamps a session's final status, round count, and remaining
// candidate count.
func (s *Store) FinishSession(ctx context.Context, sessionID, status string, rounds, remaining int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status=?, rounds=?, remaining=?, finished_at=? WHERE id=?`,
		status, rounds, remaining, now(), sessionID,
	)
	return err
}

// TouchSession updates the running round/remaining counters mid-session.
func (s *Store) TouchSession(ctx context.Context, sessionID string, rounds, remaining int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET rounds=?, remaining=? WHERE id=?`,
		rounds, remaining, sessionID,
	)
	return err
}

// RecentSessions returns the owner's most recent sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, userID string, limit int) ([]SessionRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, word_size, status, rounds, remaining, started_at, COALESCE(finished_at,'')
		 FROM sessions WHERE user_id=? ORDER BY started_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []SessionRow{}
	for rows.Next() {
		var r SessionRow
		if err := rows.Scan(&r.ID, &r.WordSize, &r.Status, &r.Rounds, &r.Remaining, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Rounds returns the guess history of one session in play order.
func (s *Store) Rounds(ctx context.Context, sessionID string) ([]Round, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, guess, feedback, remaining FROM rounds WHERE session_id=? ORDER BY seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Round{}
	for rows.Next() {
		var r Round
		if err := rows.Scan(&r.Seq, &r.Guess, &r.Feedback, &r.Remaining); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimAnonSessions transfers anonymous sessions to a user account after auth.
func (s *Store) ClaimAnonSessions(ctx context.Context, anonID, userID string) error {
	if anonID == "" || userID == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET user_id=?, anonymous_id=NULL WHERE anonymous_id=?`,
		userID, anonID,
	)
	return err
}

// BumpStats increments a user's session counters after a finished session.
// A solved session extends the streak; an exhausted one resets it.
func (s *Store) BumpStats(ctx context.Context, userID string, solved bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var played, won, streak int
	row := tx.QueryRowContext(ctx, `SELECT sessions_played, sessions_solved, streak FROM users WHERE id=?`, userID)
	if err := row.Scan(&played, &won, &streak); err != nil {
		return err
	}
	played++
	if solved {
		won++
		streak++
	} else {
		streak = 0
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET sessions_played=?, sessions_solved=?, streak=? WHERE id=?`,
		played, won, streak, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// nullable maps "" to NULL so owner columns stay clean.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

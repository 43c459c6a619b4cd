// apps/solver/internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Holds live solving sessions for the HTTP layer; state is lost when the
// process restarts (finished sessions are persisted separately in SQLite).
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - The map is concurrency-safe via RWMutex (concurrent reads allowed,
//     writes exclusive).
//   - Each Session embeds its own Mutex because Solver.Update is not safe
//     for concurrent use; handlers lock the session around updates.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Session states.
const (
	StateSolving   = "solving"   // candidates remain, word not found yet
	StateSolved    = "solved"    // all-green feedback reported
	StateExhausted = "exhausted" // no candidates remain
)

// Session is one live solving session: a solver plus bookkeeping.
type Session struct {
	sync.Mutex // guards Solver, Rounds, State

	ID        string
	UserID    string // owning user, if authenticated
	AnonID    string // anonymous cookie id, for guests
	WordSize  int
	Solver    *solver.Solver
	Rounds    int
	State     string
	StartedAt time.Time
}

// Store defines the persistence interface for live sessions.
// Implementations may be backed by memory (this package), Redis, etc.
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns an error if the session is not found.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.New("not found")
}

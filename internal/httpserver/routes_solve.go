// apps/solver/internal/httpserver/routes_solve.go
//
// HTTP routes for solving sessions.
// Exposes four endpoints under /solve:
//   - POST /solve/new          → start a session over the default dictionary
//   - POST /solve/update       → apply one guess+feedback pair
//   - GET  /solve/{id}/words   → remaining candidates (capped by ?limit=)
//   - GET  /solve/{id}/history → recorded rounds of the session
//
// Live sessions are held in the memory store; every round is persisted to
// the DB, and a finished session (solved or exhausted) is stamped there too.
// The solver itself is not concurrency-safe, so handlers lock the session
// around every update.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

const (
	defaultWordSize   = 5
	defaultSuggestLen = 10
	maxWordsLimit     = 500
)

// mountSolve registers all /solve routes.
func (s *Server) mountSolve(r chi.Router) {
	r.Route("/solve", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.Post("/update", s.handleUpdate)
		r.Get("/{id}/words", s.handleWords)
		r.Get("/{id}/history", s.handleHistory)
	})
}

// ownerID returns (userID, anonID) for the request; exactly one is set.
func (s *Server) ownerID(w http.ResponseWriter, r *http.Request) (string, string) {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID, ""
	}
	return "", s.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /solve/new

// newSessionReq/Res payloads for POST /solve/new.
type newSessionReq struct {
	WordSize int `json:"wordSize"` // defaults to 5
}
type newSessionRes struct {
	SessionID   string   `json:"sessionId"`
	WordSize    int      `json:"wordSize"`
	Remaining   int      `json:"remaining"`
	Suggestions []string `json:"suggestions"`
}

// handleNewSession builds a fresh solver over the default dictionary and
// registers the session for its owner.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)
	size := req.WordSize
	if size == 0 {
		size = defaultWordSize
	}
	if size < 2 || size > 16 {
		http.Error(w, `{"error":"word size out of range"}`, http.StatusBadRequest)
		return
	}

	uid, anon := s.ownerID(w, r)
	sess := &store.Session{
		ID:       genID(),
		UserID:   uid,
		AnonID:   anon,
		WordSize: size,
		Solver:   solver.NewRanked(size, words.Dictionary()),
		State:    store.StateSolving,
	}
	if err := s.st.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.hist.InsertSession(r.Context(), sess.ID, uid, anon, size, sess.Solver.Size()); err != nil {
		log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert session row")
	}
	_ = json.NewEncoder(w).Encode(newSessionRes{
		SessionID:   sess.ID,
		WordSize:    size,
		Remaining:   sess.Solver.Size(),
		Suggestions: sess.Solver.Words(defaultSuggestLen),
	})
}

// -----------------------------------------------------------------------------
// /solve/update

// updateReq/Res payloads for POST /solve/update.
type updateReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
	Feedback  string `json:"feedback"` // b/y/g per letter
}
type updateRes struct {
	Remaining   int      `json:"remaining"`
	State       string   `json:"state"` // solving | solved | exhausted
	Rounds      int      `json:"rounds"`
	Suggestions []string `json:"suggestions"`
}

// handleUpdate applies one guess+feedback pair to a session.
// - All-green feedback marks the session solved without filtering.
// - Invalid guess/feedback input → 400 with the solver's diagnostic, and the
//   session is left untouched (the caller re-prompts).
// - Zero remaining candidates marks the session exhausted.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	req.Guess = strings.ToLower(strings.TrimSpace(req.Guess))
	req.Feedback = strings.ToLower(strings.TrimSpace(req.Feedback))

	sess, err := s.st.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	uid, anon := s.ownerID(w, r)
	if sess.UserID != uid || sess.AnonID != anon {
		http.Error(w, `{"error":"no session"}`, http.StatusConflict)
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.State != store.StateSolving {
		http.Error(w, `{"error":"session finished"}`, http.StatusConflict)
		return
	}

	if solver.Solved(req.Feedback) && len(req.Feedback) == sess.WordSize {
		sess.Rounds++
		sess.State = store.StateSolved
		s.recordRound(r, sess, req.Guess, req.Feedback)
		if err := s.hist.FinishSession(r.Context(), sess.ID, sess.State, sess.Rounds, sess.Solver.Size()); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("finish session")
		}
		s.bumpOwnerStats(r, sess, true)
		_ = json.NewEncoder(w).Encode(updateRes{
			Remaining: sess.Solver.Size(),
			State:     sess.State,
			Rounds:    sess.Rounds,
		})
		return
	}

	remaining, err := sess.Solver.Update(req.Guess, req.Feedback)
	if err != nil {
		if errors.Is(err, solver.ErrInvalidArgument) {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"update_failed"}`, http.StatusInternalServerError)
		return
	}
	sess.Rounds++
	s.recordRound(r, sess, req.Guess, req.Feedback)

	if remaining == 0 {
		sess.State = store.StateExhausted
		if err := s.hist.FinishSession(r.Context(), sess.ID, sess.State, sess.Rounds, 0); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("finish session")
		}
		s.bumpOwnerStats(r, sess, false)
	} else {
		if err := s.hist.TouchSession(r.Context(), sess.ID, sess.Rounds, remaining); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("touch session")
		}
	}

	_ = json.NewEncoder(w).Encode(updateRes{
		Remaining:   remaining,
		State:       sess.State,
		Rounds:      sess.Rounds,
		Suggestions: sess.Solver.Words(defaultSuggestLen),
	})
}

// recordRound persists one round, best effort.
func (s *Server) recordRound(r *http.Request, sess *store.Session, guess, feedback string) {
	if err := s.hist.InsertRound(r.Context(), sess.ID, sess.Rounds, guess, feedback, sess.Solver.Size()); err != nil {
		log.Warn().Err(err).Str("sessionId", sess.ID).Msg("insert round")
	}
}

// bumpOwnerStats updates user counters for finished sessions; guests have no
// stats row.
func (s *Server) bumpOwnerStats(r *http.Request, sess *store.Session, solved bool) {
	if sess.UserID == "" {
		return
	}
	if err := s.hist.BumpStats(r.Context(), sess.UserID, solved); err != nil {
		log.Warn().Err(err).Str("user", sess.UserID).Msg("bump stats")
	}
}

// -----------------------------------------------------------------------------
// /solve/{id}/words

// handleWords returns up to ?limit= remaining candidates in suggestion order.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	sess, err := s.st.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	limit := defaultSuggestLen
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, `{"error":"bad limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}
	if limit > maxWordsLimit {
		limit = maxWordsLimit
	}
	sess.Lock()
	out := map[string]any{"remaining": sess.Solver.Size(), "words": sess.Solver.Words(limit)}
	sess.Unlock()
	_ = json.NewEncoder(w).Encode(out)
}

// -----------------------------------------------------------------------------
// /solve/{id}/history

// handleHistory returns the persisted rounds of a session in play order.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rounds, err := s.hist.Rounds(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"sessionId": id, "rounds": rounds})
}

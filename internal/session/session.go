// Package session holds the game-state collaborator around the puzzle
// engine: live boards, givens, mistake counts, and scoring. The engine
// itself stays stateless; everything mutable lives here.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/metrics"
	"svw.info/sudokugen/internal/ports"
)

var (
	// ErrNotFound means no session exists under the given id.
	ErrNotFound = errors.New("session not found")
	// ErrCellFixed means the addressed cell already holds a value,
	// either an original clue or a previously confirmed move.
	ErrCellFixed = errors.New("cell already filled")
)

// Session is one player's game: the puzzle pair plus play state.
type Session struct {
	ID     string
	Puzzle *domain.Puzzle

	mu        sync.Mutex
	board     domain.Grid
	given     [9][9]bool
	mistakes  int
	startedAt time.Time
	now       func() time.Time
}

// MoveResult reports the outcome of a single placement attempt.
type MoveResult struct {
	Correct  bool `json:"correct"`
	Mistakes int  `json:"mistakes"`
	Done     bool `json:"done"`
	Score    int  `json:"score"`
}

// Move checks v at pos against the solution. Correct moves are written to
// the board; wrong ones only bump the mistake count. Cells that already
// hold a value are rejected, matching the caller contract that fixed clues
// are never re-validated.
func (s *Session) Move(pos domain.Position, v uint8) (MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !pos.InRange() {
		return MoveResult{}, domain.ErrOutOfRange
	}
	if s.given[pos.Row][pos.Col] || s.board[pos.Row][pos.Col] != domain.Empty {
		return MoveResult{}, ErrCellFixed
	}
	ok, err := s.Puzzle.IsCorrectNumber(v, pos)
	if err != nil {
		return MoveResult{}, err
	}
	if ok {
		s.board[pos.Row][pos.Col] = v
		metrics.MovesChecked.WithLabelValues("correct").Inc()
	} else {
		s.mistakes++
		metrics.MovesChecked.WithLabelValues("wrong").Inc()
	}
	return MoveResult{
		Correct:  ok,
		Mistakes: s.mistakes,
		Done:     s.board.CountEmpty() == 0,
		Score:    s.scoreLocked(),
	}, nil
}

// Board returns a copy of the current play state.
func (s *Session) Board() domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Mistakes returns the number of wrong moves so far.
func (s *Session) Mistakes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mistakes
}

// Score computes the session's current score from difficulty, elapsed
// time, and mistakes. This is the integer an external leaderboard would
// be keyed by; nothing in this repo submits it anywhere.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreLocked()
}

func (s *Session) scoreLocked() int {
	base := 1000 * (int(s.Puzzle.Difficulty) + 1)
	elapsed := int(s.now().Sub(s.startedAt).Seconds())
	score := base - elapsed - 50*s.mistakes
	if score < 0 {
		score = 0
	}
	return score
}

// Manager owns all live sessions and creates new ones from the generator.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	gen      ports.Generator
	now      func() time.Time
}

func NewManager(g ports.Generator) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		gen:      g,
		now:      time.Now,
	}
}

// New generates a puzzle at the requested difficulty and registers a
// session around it. Each call produces a fresh seed, so back-to-back
// games differ.
func (m *Manager) New(ctx context.Context, diff domain.Difficulty) (*Session, error) {
	seed := m.now().UnixNano()
	p, _, err := m.gen.Generate(ctx, seed, diff)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()

	s := &Session{
		ID:        p.ID,
		Puzzle:    p,
		board:     p.Board,
		startedAt: m.now(),
		now:       m.now,
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s.given[r][c] = p.Board[r][c] != domain.Empty
		}
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get looks up a live session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Drop removes a session, if present.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

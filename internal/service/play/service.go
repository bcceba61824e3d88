package play

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tictacnext/tictacnext/internal/model/game"
)

var (
	ErrNamesRequired   = errors.New("both player names are required")
	ErrSessionNotFound = errors.New("play session not found")
	ErrRoundInProgress = errors.New("round is still in progress")
)

// Service owns the live play sessions for the web tier. Each browser tab
// drives one session; the UI serializes one action at a time, the mutex only
// guards the map across tabs.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService bootstraps the in-memory play service.
func NewService() *Service {
	return &Service{sessions: make(map[string]*Session)}
}

// Start creates a live session for the two named players. Both names must be
// non-empty after trimming.
func (s *Service) Start(player1, player2 string) (*Session, error) {
	player1 = strings.TrimSpace(player1)
	player2 = strings.TrimSpace(player2)
	if player1 == "" || player2 == "" {
		return nil, ErrNamesRequired
	}

	session := newSession(uuid.NewString(), player1, player2)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// Get retrieves a live session by identifier.
func (s *Service) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Place applies a move to the session's current round. Rejected clicks are
// silent no-ops; the session is returned unchanged.
func (s *Service) Place(id string, cell int) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.place(cell)
	return session, nil
}

// PlayAgain starts the next round of a session whose round is over.
func (s *Service) PlayAgain(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	session.playAgain()
	return session, nil
}

// End packages the accumulated session for persistence. The live session
// stays in RoundOver until Finish confirms the save, so a failed save leaves
// it resumable.
func (s *Service) End(id string) (game.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return game.Session{}, ErrSessionNotFound
	}
	if session.Phase != PhaseRoundOver {
		return game.Session{}, ErrRoundInProgress
	}
	return session.snapshot(), nil
}

// Finish marks the session ended and drops it, after a successful save.
func (s *Service) Finish(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Phase = PhaseEnded
		delete(s.sessions, id)
	}
}

package play

import (
	"fmt"

	"github.com/tictacnext/tictacnext/internal/model/game"
)

// Phase is the lifecycle state of a live session. A session object exists
// from the moment both names are accepted, so its phases run
// Playing -> RoundOver -> (Playing | Ended); name entry is the page shown
// before any session exists.
type Phase string

const (
	PhasePlaying   Phase = "playing"
	PhaseRoundOver Phase = "round-over"
	PhaseEnded     Phase = "ended"
)

// Outcome is the state of the current round, always derived from the board.
type Outcome string

const (
	OutcomeInProgress Outcome = ""
	OutcomeXWins      Outcome = "X"
	OutcomeOWins      Outcome = "O"
	OutcomeDraw       Outcome = "Draw"
)

// Session is one live play session: two named players, the session-wide move
// history across rounds, and cumulative counters. History and descriptions
// stay index-aligned; each round contributes its opening empty board tagged
// "Game Start".
type Session struct {
	ID          string
	Player1Name string
	Player2Name string
	Phase       Phase

	History      []game.Board
	Descriptions []string

	Player1Wins int
	Player2Wins int
	Draws       int

	// roundStart indexes the empty-board snapshot that opened the current
	// round.
	roundStart int
}

func newSession(id, player1, player2 string) *Session {
	return &Session{
		ID:           id,
		Player1Name:  player1,
		Player2Name:  player2,
		Phase:        PhasePlaying,
		History:      []game.Board{{}},
		Descriptions: []string{"Game Start"},
	}
}

// Board returns the current board, the last snapshot in the history.
func (s *Session) Board() game.Board {
	return s.History[len(s.History)-1]
}

// Outcome recomputes the current round's result from the board.
func (s *Session) Outcome() Outcome {
	board := s.Board()
	switch board.Winner() {
	case game.MarkerX:
		return OutcomeXWins
	case game.MarkerO:
		return OutcomeOWins
	}
	if board.Full() {
		return OutcomeDraw
	}
	return OutcomeInProgress
}

// NextMarker returns the marker that moves next in the current round.
func (s *Session) NextMarker() game.Cell {
	return game.MarkerForMove(len(s.History) - 1 - s.roundStart)
}

// NextPlayer returns the name of the player holding NextMarker.
func (s *Session) NextPlayer() string {
	if s.NextMarker() == game.MarkerX {
		return s.Player1Name
	}
	return s.Player2Name
}

// place applies one move. A click on an occupied cell, outside the board, or
// after the round has ended mutates nothing. When the move ends the round the
// transition to RoundOver and the counter update happen here, synchronously.
func (s *Session) place(cell int) {
	if s.Phase != PhasePlaying || cell < 0 || cell > 8 {
		return
	}

	board := s.Board()
	if board.Winner() != game.Empty || board[cell] != game.Empty {
		return
	}

	marker := s.NextMarker()
	player := s.NextPlayer()
	board[cell] = marker

	s.History = append(s.History, board)
	s.Descriptions = append(s.Descriptions,
		fmt.Sprintf("%s (%s) picked (%d, %d)", player, marker, cell/3, cell%3))

	switch {
	case board.Winner() == game.MarkerX:
		s.Player1Wins++
		s.Phase = PhaseRoundOver
	case board.Winner() == game.MarkerO:
		s.Player2Wins++
		s.Phase = PhaseRoundOver
	case board.Full():
		s.Draws++
		s.Phase = PhaseRoundOver
	}
}

// playAgain starts a fresh round, keeping counters and the session-wide
// history.
func (s *Session) playAgain() {
	if s.Phase != PhaseRoundOver {
		return
	}
	s.History = append(s.History, game.Board{})
	s.Descriptions = append(s.Descriptions, "Game Start")
	s.roundStart = len(s.History) - 1
	s.Phase = PhasePlaying
}

// snapshot packages the accumulated session as an immutable create request.
func (s *Session) snapshot() game.Session {
	history := make([]game.Board, len(s.History))
	copy(history, s.History)
	descriptions := make([]string, len(s.Descriptions))
	copy(descriptions, s.Descriptions)

	return game.Session{
		Player1Name:      s.Player1Name,
		Player2Name:      s.Player2Name,
		Player1Wins:      s.Player1Wins,
		Player2Wins:      s.Player2Wins,
		Draws:            s.Draws,
		GameHistory:      history,
		MoveDescriptions: descriptions,
	}
}

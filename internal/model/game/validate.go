package game

import "strings"

// Issue describes one validation failure, naming the offending field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks a create request and returns every problem found. An empty
// slice means the session is acceptable. The history and description arrays
// are expected to be index-aligned by convention, but alignment is not
// checked here; see the design notes.
func (s Session) Validate() []Issue {
	var issues []Issue

	if strings.TrimSpace(s.Player1Name) == "" {
		issues = append(issues, Issue{Field: "player1Name", Message: "must be a non-empty string"})
	}
	if strings.TrimSpace(s.Player2Name) == "" {
		issues = append(issues, Issue{Field: "player2Name", Message: "must be a non-empty string"})
	}
	if s.Player1Wins < 0 {
		issues = append(issues, Issue{Field: "player1Wins", Message: "must be a non-negative integer"})
	}
	if s.Player2Wins < 0 {
		issues = append(issues, Issue{Field: "player2Wins", Message: "must be a non-negative integer"})
	}
	if s.Draws < 0 {
		issues = append(issues, Issue{Field: "draws", Message: "must be a non-negative integer"})
	}
	if s.GameHistory == nil {
		issues = append(issues, Issue{Field: "gameHistory", Message: "must be an array of board snapshots"})
	}
	if s.MoveDescriptions == nil {
		issues = append(issues, Issue{Field: "moveDescriptions", Message: "must be an array of strings"})
	}

	return issues
}

package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinnerEveryLine(t *testing.T) {
	tests := []struct {
		name string
		line [3]int
	}{
		{"top row", [3]int{0, 1, 2}},
		{"middle row", [3]int{3, 4, 5}},
		{"bottom row", [3]int{6, 7, 8}},
		{"left column", [3]int{0, 3, 6}},
		{"middle column", [3]int{1, 4, 7}},
		{"right column", [3]int{2, 5, 8}},
		{"diagonal", [3]int{0, 4, 8}},
		{"anti-diagonal", [3]int{2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var board Board
			for _, i := range tt.line {
				board[i] = MarkerO
			}
			assert.Equal(t, MarkerO, board.Winner())
		})
	}
}

func TestWinnerChecksRowZeroFirst(t *testing.T) {
	// Two complete lines with different owners: the top row is scanned
	// before the bottom row, so its owner is reported.
	board := Board{
		MarkerX, MarkerX, MarkerX,
		Empty, Empty, Empty,
		MarkerO, MarkerO, MarkerO,
	}
	assert.Equal(t, MarkerX, board.Winner())
}

func TestWinnerRowZero(t *testing.T) {
	board := Board{MarkerX, MarkerX, MarkerX}
	assert.Equal(t, MarkerX, board.Winner())
}

func TestWinnerNone(t *testing.T) {
	assert.Equal(t, Empty, Board{}.Winner())

	// Fully filled with no completed line: a draw, decided by the caller.
	full := Board{
		MarkerX, MarkerO, MarkerX,
		MarkerO, MarkerX, MarkerO,
		MarkerO, MarkerX, MarkerO,
	}
	assert.Equal(t, Empty, full.Winner())
	assert.True(t, full.Full())
}

func TestFull(t *testing.T) {
	assert.False(t, Board{}.Full())

	board := Board{MarkerX, MarkerO, MarkerX, MarkerO, MarkerX, MarkerO, MarkerX, MarkerO}
	assert.False(t, board.Full())
	board[8] = MarkerX
	assert.True(t, board.Full())
}

func TestMarkerForMove(t *testing.T) {
	assert.Equal(t, MarkerX, MarkerForMove(0))
	assert.Equal(t, MarkerO, MarkerForMove(1))
	assert.Equal(t, MarkerX, MarkerForMove(6))
}

func TestCellJSONNull(t *testing.T) {
	board := Board{MarkerX, MarkerO}
	data, err := json.Marshal(board)
	require.NoError(t, err)
	assert.JSONEq(t, `["X","O",null,null,null,null,null,null,null]`, string(data))

	var decoded Board
	require.NoError(t, json.Unmarshal([]byte(`["X","X","X",null,null,null,null,null,null]`), &decoded))
	assert.Equal(t, MarkerX, decoded.Winner())
	assert.Equal(t, Empty, decoded[3])
}

package game

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Cell is one square of the board. The zero value means unoccupied; on the
// wire and in stored documents an unoccupied cell is null, not "".
type Cell string

const (
	Empty   Cell = ""
	MarkerX Cell = "X"
	MarkerO Cell = "O"
)

// Board is the 3x3 grid in row-major order.
type Board [9]Cell

// lines lists every winning triple; Winner scans them in this order.
var lines = [8][3]int{
	{0, 1, 2}, // top row
	{3, 4, 5}, // middle row
	{6, 7, 8}, // bottom row
	{0, 3, 6}, // left column
	{1, 4, 7}, // middle column
	{2, 5, 8}, // right column
	{0, 4, 8}, // diagonal
	{2, 4, 6}, // anti-diagonal
}

// Winner returns the marker occupying the first completed line, or Empty when
// no line is complete. A full board with no winner is a draw; that check is
// the caller's via Full.
func (b Board) Winner() Cell {
	for _, line := range lines {
		a, m, c := line[0], line[1], line[2]
		if b[a] != Empty && b[a] == b[m] && b[m] == b[c] {
			return b[a]
		}
	}
	return Empty
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

// MarkerForMove returns the marker that moves at the given zero-based move
// index: X on even indices, O on odd.
func MarkerForMove(move int) Cell {
	if move%2 == 0 {
		return MarkerX
	}
	return MarkerO
}

// MarshalJSON encodes an unoccupied cell as null.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c == Empty {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON accepts either a string or null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Empty
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Cell(s)
	return nil
}

// MarshalBSONValue stores unoccupied cells as BSON null so documents keep the
// same shape as the wire format.
func (c Cell) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c == Empty {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(string(c))
}

// UnmarshalBSONValue accepts a BSON string or null.
func (c *Cell) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bson.TypeNull:
		*c = Empty
		return nil
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return fmt.Errorf("malformed BSON string for cell")
		}
		*c = Cell(s)
		return nil
	default:
		return fmt.Errorf("cannot decode BSON %s into a cell", t)
	}
}

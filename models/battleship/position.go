package battleship

import (
	"strconv"
	"strings"

	cerr "battleship-cli/internal/error"
)

type Position struct {
	Row    int
	Column int
}

func NewPosition(row, column int) Position {
	return Position{Row: row, Column: column}
}

// ParsePosition turns a raw input line such as "3, 4" into an in-bounds
// Position. The line must split on a single comma into exactly two
// non-negative integer tokens, both below GridSize. Everything that
// reaches Board.Fire goes through this gate first.
func ParsePosition(input string) (Position, error) {
	tokens := strings.Split(strings.TrimSpace(input), ",")
	if len(tokens) != 2 {
		return Position{}, cerr.ErrMalformedCoordinates(input)
	}

	row, err := strconv.Atoi(strings.TrimSpace(tokens[0]))
	if err != nil || row < 0 {
		return Position{}, cerr.ErrMalformedCoordinates(input)
	}

	column, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
	if err != nil || column < 0 {
		return Position{}, cerr.ErrMalformedCoordinates(input)
	}

	if row >= GridSize || column >= GridSize {
		return Position{}, cerr.ErrCoordsOutOfGridBound(row, column)
	}

	return NewPosition(row, column), nil
}

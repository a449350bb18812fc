package battleship

// GridSize is the fixed side length of the game board.
const GridSize = 10

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateHit
	CellStateMiss
)

type Visibility uint8

const (
	// Visible boards render their ships, hidden boards render ship and
	// empty cells alike. Rendering concern only, never consulted by the
	// game logic.
	BoardVisible Visibility = iota
	BoardHidden
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

type Grid [][]CellState

// Creates a new default grid
// All indexes are CellStateEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]CellState, gridSize)
	}
	return grid
}
